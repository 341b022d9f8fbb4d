package task

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"brandpulse/internal/model"
	"brandpulse/internal/repository"
)

// CallLogTask 调用日志维护：每天汇总前一天的用量，并清理过期记录
type CallLogTask struct {
	repo          repository.AICallLogRepository
	retentionDays int
	cron          *cron.Cron
	log           *zap.Logger
	now           func() time.Time
}

func NewCallLogTask(repo repository.AICallLogRepository, retentionDays int, log *zap.Logger) *CallLogTask {
	if log == nil {
		log = zap.NewNop()
	}
	return &CallLogTask{
		repo:          repo,
		retentionDays: retentionDays,
		cron:          cron.New(cron.WithSeconds()), // 支持秒级控制
		log:           log,
		now:           time.Now,
	}
}

// Start 启动定时任务，调度表达式错误时返回 error
func (t *CallLogTask) Start() error {
	// 每天 00:10 汇总，00:30 清理
	if _, err := t.cron.AddFunc("0 10 0 * * *", t.withTimeout(t.reportJob)); err != nil {
		return err
	}
	if t.retentionDays > 0 {
		if _, err := t.cron.AddFunc("0 30 0 * * *", t.withTimeout(t.cleanupJob)); err != nil {
			return err
		}
	}

	t.cron.Start()
	t.log.Info("调用日志维护任务已启动", zap.Int("retention_days", t.retentionDays))
	return nil
}

// Stop 等待正在执行的任务结束
func (t *CallLogTask) Stop() {
	<-t.cron.Stop().Done()
}

func (t *CallLogTask) withTimeout(job func(ctx context.Context)) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		job(ctx)
	}
}

// cleanupJob 硬删除保留期之前的记录
func (t *CallLogTask) cleanupJob(ctx context.Context) {
	before := t.now().AddDate(0, 0, -t.retentionDays)

	deleted, err := t.repo.DeleteBefore(ctx, before)
	if err != nil {
		t.log.Error("调用日志清理失败", zap.Time("before", before), zap.Error(err))
		return
	}
	t.log.Info("调用日志清理完成", zap.Time("before", before), zap.Int64("deleted", deleted))
}

var reportUpstreams = []string{
	model.UpstreamGemini,
	model.UpstreamElevenLabs,
	model.UpstreamPollinations,
	model.UpstreamYouTube,
}

// reportJob 把前一天的用量写进日志
func (t *CallLogTask) reportJob(ctx context.Context) {
	today := truncateDay(t.now())
	yesterday := today.AddDate(0, 0, -1)

	daily, err := t.repo.GetDailyUsage(ctx, yesterday, today)
	if err != nil {
		t.log.Error("用量汇总失败", zap.Error(err))
		return
	}
	for _, d := range daily {
		t.log.Info("每日调用汇总",
			zap.String("date", d.Date),
			zap.Int64("calls", d.TotalCalls),
			zap.Int64("failed", d.FailedCount),
			zap.Int64("input_tokens", d.TotalInputTokens),
			zap.Int64("output_tokens", d.TotalOutputTokens),
		)
	}

	for _, upstream := range reportUpstreams {
		stats, err := t.repo.GetUsageByUpstream(ctx, upstream, yesterday, today)
		if err != nil {
			t.log.Error("上游用量汇总失败", zap.String("upstream", upstream), zap.Error(err))
			continue
		}
		if stats.TotalCalls == 0 {
			continue
		}
		t.log.Info("上游调用汇总",
			zap.String("upstream", upstream),
			zap.Int64("calls", stats.TotalCalls),
			zap.Int64("failed", stats.FailedCount),
			zap.Float64("avg_duration_ms", stats.AvgDurationMs),
			zap.Int64("output_bytes", stats.TotalOutputBytes),
		)
	}
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
