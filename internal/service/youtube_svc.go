package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"brandpulse/internal/model"
)

// Channel 搜索结果里用到的频道信息
type Channel struct {
	ID               string
	Title            string
	Description      string
	SubscriberCount  uint64
	SubscriberHidden bool
}

// ChannelSearcher 频道搜索上游
type ChannelSearcher interface {
	Ready() error
	// SearchChannels 先 search 再批量查 channels，搜索为空时不发第二个请求
	SearchChannels(ctx context.Context, query string, maxResults int64) ([]Channel, error)
}

// ==================== 配置 ====================

// YouTubeConfig YouTube Data API 配置
type YouTubeConfig struct {
	APIKey   string
	Endpoint string // 为空时使用 SDK 默认地址
	Timeout  time.Duration
}

// ==================== 服务 ====================

type YouTubeService struct {
	yt       *youtube.Service // APIKey 为空时为 nil
	timeout  time.Duration
	recorder *CallRecorder
	log      *zap.Logger
}

var _ ChannelSearcher = (*YouTubeService)(nil)

// NewYouTubeService 创建 YouTube 服务
func NewYouTubeService(ctx context.Context, cfg YouTubeConfig, recorder *CallRecorder, log *zap.Logger) (*YouTubeService, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}

	s := &YouTubeService{timeout: cfg.Timeout, recorder: recorder, log: log}

	if cfg.APIKey == "" {
		log.Warn("YOUTUBE_API_KEY 未配置，博主搜索接口将返回配置错误")
		return s, nil
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	yt, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("youtube client init failed: %w", err)
	}
	s.yt = yt
	return s, nil
}

func (s *YouTubeService) Ready() error {
	if s.yt == nil {
		return &ConfigurationError{Variable: "YOUTUBE_API_KEY"}
	}
	return nil
}

func (s *YouTubeService) SearchChannels(ctx context.Context, query string, maxResults int64) ([]Channel, error) {
	if err := s.Ready(); err != nil {
		return nil, err
	}

	// 两次请求共用一个超时
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	ids, err := s.searchChannelIDs(ctx, query, maxResults)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	return s.listChannels(ctx, ids)
}

func (s *YouTubeService) searchChannelIDs(ctx context.Context, query string, maxResults int64) ([]string, error) {
	start := time.Now()
	resp, err := s.yt.Search.List([]string{"snippet"}).
		Type("channel").
		MaxResults(maxResults).
		Q(query).
		Context(ctx).
		Do()

	rec := CallRecord{Upstream: model.UpstreamYouTube, CallType: model.AICallTypeSearch, ModelName: "search", Duration: time.Since(start)}
	if err != nil {
		rec.Err = newUpstreamError(model.UpstreamYouTube, err)
		s.recorder.Record(ctx, rec)
		s.log.Error("YouTube search 调用失败", zap.String("query", query), zap.Error(err))
		return nil, rec.Err
	}
	s.recorder.Record(ctx, rec)

	ids := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		id := ""
		if item.Snippet != nil {
			id = item.Snippet.ChannelId
		}
		if id == "" && item.Id != nil {
			id = item.Id.ChannelId
		}
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (s *YouTubeService) listChannels(ctx context.Context, ids []string) ([]Channel, error) {
	start := time.Now()
	resp, err := s.yt.Channels.List([]string{"snippet", "statistics"}).
		Id(strings.Join(ids, ",")).
		Context(ctx).
		Do()

	rec := CallRecord{Upstream: model.UpstreamYouTube, CallType: model.AICallTypeSearch, ModelName: "channels", Duration: time.Since(start)}
	if err != nil {
		rec.Err = newUpstreamError(model.UpstreamYouTube, err)
		s.recorder.Record(ctx, rec)
		s.log.Error("YouTube channels 调用失败", zap.Int("ids", len(ids)), zap.Error(err))
		return nil, rec.Err
	}
	s.recorder.Record(ctx, rec)

	channels := make([]Channel, 0, len(resp.Items))
	for _, item := range resp.Items {
		ch := Channel{ID: item.Id}
		if item.Snippet != nil {
			ch.Title = item.Snippet.Title
			ch.Description = item.Snippet.Description
		}
		if item.Statistics != nil {
			ch.SubscriberCount = item.Statistics.SubscriberCount
			ch.SubscriberHidden = item.Statistics.HiddenSubscriberCount
		}
		channels = append(channels, ch)
	}
	return channels, nil
}
