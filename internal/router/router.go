package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"

	"brandpulse/internal/api/dto"
	"brandpulse/internal/controller"
	"brandpulse/internal/middleware"

	_ "brandpulse/docs"
)

// Options 引擎级配置
type Options struct {
	CORSOrigins []string // 为空时允许所有来源
	// Metrics 挂载 /metrics，指标注册在全局 registry，一个进程只能开一次
	Metrics bool
}

// Controllers 当前进程提供的接口，nil 的不注册
type Controllers struct {
	Health     *controller.HealthController
	Image      *controller.ImageController
	Content    *controller.ContentController
	Audio      *controller.AudioController
	Influencer *controller.InfluencerController
	Strategy   *controller.StrategyController
}

// New 创建 gin 引擎并挂好公共中间件
func New(log *zap.Logger, opts Options) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.CustomRecovery(recoveryHandler(log)))
	r.Use(middleware.ZapLogger(log))
	r.Use(cors.New(corsConfig(opts.CORSOrigins)))

	if opts.Metrics {
		p := ginprometheus.NewPrometheus("brandpulse_http")
		p.Use(r)
	}
	return r
}

// recoveryHandler panic 也按 JSON 错误体返回
func recoveryHandler(log *zap.Logger) gin.RecoveryFunc {
	return func(c *gin.Context, recovered any) {
		log.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResp{Error: "internal server error"})
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Content-Length", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Disposition", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// InitRoutes 注册路由
func InitRoutes(r *gin.Engine, ctls Controllers) {
	// 1. Swagger 文档路由
	// 访问 http://localhost:<port>/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 2. 健康检查
	if ctls.Health != nil {
		r.GET("/health", ctls.Health.Check)
	}

	// 3. 营销策略，前端直接请求根路径
	if ctls.Strategy != nil {
		r.POST("/ai-text", ctls.Strategy.Generate)
	}

	// 4. API 路由组
	api := r.Group("/api")
	{
		// 海报
		if ctls.Image != nil {
			api.GET("/generate-image", ctls.Image.Generate)
		}
		// 文案
		if ctls.Content != nil {
			api.POST("/captions/generate", ctls.Content.GenerateCaptions)
			api.POST("/copywriting/generate", ctls.Content.GenerateCopywriting)
		}
		// 音频广告
		if ctls.Audio != nil {
			api.POST("/audio/auto-ad", ctls.Audio.AutoAd)
		}
		// 博主
		if ctls.Influencer != nil {
			api.POST("/influencers", ctls.Influencer.Search)
			api.POST("/outreach-email", ctls.Influencer.OutreachEmail)
		}
	}
}
