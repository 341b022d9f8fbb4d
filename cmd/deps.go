package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"brandpulse/internal/config"
	"brandpulse/internal/controller"
	"brandpulse/internal/model"
	"brandpulse/internal/repository"
	"brandpulse/internal/router"
	"brandpulse/internal/service"
	"brandpulse/internal/task"
	"brandpulse/pkg/database"
)

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Recorder    *service.CallRecorder
	Gemini      *service.GeminiService
	Controllers router.Controllers
	Tasks       *task.TaskManager

	log *zap.Logger
}

// Close 按创建的逆序释放资源
func (d *Dependencies) Close() {
	// 等异步的调用日志写完再关库
	d.Recorder.Wait()

	if d.Gemini != nil {
		if err := d.Gemini.Close(); err != nil {
			d.log.Warn("关闭 Gemini 客户端失败", zap.Error(err))
		}
	}
	if d.DB != nil {
		if err := database.Close(d.DB); err != nil {
			d.log.Warn("关闭数据库失败", zap.Error(err))
		}
	}
}

// ==================== 初始化函数 ====================

// initDependencies 初始化当前进程需要的依赖
// 数据库可选：没有 DATABASE_DSN 时调用日志只进指标
func initDependencies(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{log: log}

	// -------- 存储 --------
	var callLogRepo repository.AICallLogRepository
	if cfg.Database.DSN != "" {
		db, err := database.InitDB(cfg.Database.DSN, log, database.Options{}, &model.AICallLog{})
		if err != nil {
			return nil, err
		}
		deps.DB = db
		callLogRepo = repository.NewAICallLogRepository(db)
	} else {
		log.Info("DATABASE_DSN 未配置，上游调用日志不落库")
	}
	deps.Recorder = service.NewCallRecorder(cfg.Service, callLogRepo, log)

	// -------- 服务 & 控制器 --------
	ctls, gemini, err := buildControllers(ctx, cfg, deps.Recorder, log)
	if err != nil {
		deps.Close()
		return nil, err
	}
	deps.Gemini = gemini
	deps.Controllers = ctls

	// -------- 后台任务 --------
	deps.Tasks = task.NewTaskManager(task.TaskManagerDeps{
		CallLogRepo: callLogRepo,
		Logger:      log,
	}, task.TaskManagerConfig{
		CallLogEnabled:       callLogRepo != nil,
		CallLogRetentionDays: cfg.Database.RetentionDays,
	})

	return deps, nil
}

// buildControllers 只创建当前进程用到的上游客户端
// 返回的 GeminiService 可能为 nil，由调用方关闭
func buildControllers(ctx context.Context, cfg *config.Config, recorder *service.CallRecorder, log *zap.Logger) (router.Controllers, *service.GeminiService, error) {
	ctls := router.Controllers{Health: controller.NewHealthController(cfg.Service)}

	var gemini *service.GeminiService
	newGemini := func() (*service.GeminiService, error) {
		g, err := service.NewGeminiService(ctx, service.GeminiConfig{
			APIKey:  cfg.Gemini.APIKey,
			Model:   cfg.Gemini.Model,
			Timeout: cfg.UpstreamTimeout,
		}, recorder, log.Named("gemini"))
		if err != nil {
			return nil, err
		}
		gemini = g
		return g, nil
	}

	switch cfg.Service {
	case config.ServiceImage:
		images := service.NewImageService(service.PollinationsConfig{
			BaseURL: cfg.Pollinations.BaseURL,
			Timeout: cfg.UpstreamTimeout,
		}, recorder, log.Named("pollinations"))
		ctls.Image = controller.NewImageController(images)

	case config.ServiceAudio:
		text, err := newGemini()
		if err != nil {
			return ctls, nil, err
		}
		speech := service.NewSpeechService(service.ElevenLabsConfig{
			APIKey:  cfg.ElevenLabs.APIKey,
			BaseURL: cfg.ElevenLabs.BaseURL,
			VoiceID: cfg.ElevenLabs.VoiceID,
			ModelID: cfg.ElevenLabs.ModelID,
			Timeout: cfg.UpstreamTimeout,
		}, recorder, log.Named("elevenlabs"))
		ctls.Audio = controller.NewAudioController(service.NewAudioAdService(text, speech, log))

	case config.ServiceInfluencer:
		text, err := newGemini()
		if err != nil {
			return ctls, nil, err
		}
		channels, err := service.NewYouTubeService(ctx, service.YouTubeConfig{
			APIKey:   cfg.YouTube.APIKey,
			Endpoint: cfg.YouTube.Endpoint,
			Timeout:  cfg.UpstreamTimeout,
		}, recorder, log.Named("youtube"))
		if err != nil {
			_ = text.Close()
			return ctls, nil, err
		}
		ctls.Influencer = controller.NewInfluencerController(service.NewInfluencerService(channels, text, log))

	case config.ServiceContent:
		text, err := newGemini()
		if err != nil {
			return ctls, nil, err
		}
		ctls.Content = controller.NewContentController(service.NewContentService(text, log))

	case config.ServiceStrategy:
		text, err := newGemini()
		if err != nil {
			return ctls, nil, err
		}
		ctls.Strategy = controller.NewStrategyController(service.NewStrategyService(text, log))

	default:
		return ctls, nil, fmt.Errorf("unknown service %q", cfg.Service)
	}

	return ctls, gemini, nil
}
