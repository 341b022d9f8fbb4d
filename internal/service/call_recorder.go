package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"brandpulse/internal/model"
	"brandpulse/internal/repository"
)

// CallRecord 一次上游调用的元数据
type CallRecord struct {
	Upstream     string
	CallType     string
	ModelName    string
	InputTokens  int
	OutputTokens int
	OutputBytes  int64
	Duration     time.Duration
	Err          error
}

type routeKey struct{}

// WithRoute 把入口路由放进 context，调用日志里会带上
func WithRoute(ctx context.Context, route string) context.Context {
	return context.WithValue(ctx, routeKey{}, route)
}

func routeFrom(ctx context.Context) string {
	route, _ := ctx.Value(routeKey{}).(string)
	return route
}

// CallRecorder 记录上游调用：指标总是更新，配置了数据库时再异步落库
// 落库失败只打日志，不影响请求结果
type CallRecorder struct {
	service string
	repo    repository.AICallLogRepository // 可为 nil
	log     *zap.Logger
	wg      sync.WaitGroup
}

// NewCallRecorder repo 为 nil 时只更新指标
func NewCallRecorder(service string, repo repository.AICallLogRepository, log *zap.Logger) *CallRecorder {
	if log == nil {
		log = zap.NewNop()
	}
	return &CallRecorder{service: service, repo: repo, log: log}
}

// Record 记录一次调用，nil receiver 安全
func (r *CallRecorder) Record(ctx context.Context, rec CallRecord) {
	if r == nil {
		return
	}

	status := model.AICallStatusSuccess
	if rec.Err != nil {
		status = model.AICallStatusFailed
	}
	upstreamRequestsTotal.WithLabelValues(rec.Upstream, rec.CallType, status).Inc()
	upstreamRequestDuration.WithLabelValues(rec.Upstream, rec.CallType).Observe(rec.Duration.Seconds())

	if r.repo == nil {
		return
	}

	entry := &model.AICallLog{
		Service:      r.service,
		Route:        routeFrom(ctx),
		Upstream:     rec.Upstream,
		CallType:     rec.CallType,
		ModelName:    rec.ModelName,
		InputTokens:  rec.InputTokens,
		OutputTokens: rec.OutputTokens,
		OutputBytes:  rec.OutputBytes,
		DurationMs:   rec.Duration.Milliseconds(),
		Status:       status,
	}
	if rec.Err != nil {
		entry.ErrorMsg = truncate(rec.Err.Error(), 1000)
		var upErr *UpstreamError
		if errors.As(rec.Err, &upErr) {
			entry.UpstreamStatus = upErr.StatusCode
		}
	}

	// 请求结束后 ctx 会被取消，落库用独立的超时
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := r.repo.Create(writeCtx, entry); err != nil {
			r.log.Warn("写入调用日志失败",
				zap.String("upstream", entry.Upstream),
				zap.Error(err),
			)
		}
	}()
}

// Wait 等待尚未完成的落库，关闭进程前调用
func (r *CallRecorder) Wait() {
	if r == nil {
		return
	}
	r.wg.Wait()
}
