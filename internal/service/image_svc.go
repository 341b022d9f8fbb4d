package service

import (
	"context"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"brandpulse/internal/model"
	"brandpulse/pkg/utils"
)

const (
	DefaultImageWidth  = 768
	DefaultImageHeight = 1024
)

// ImageGenerator 文生图上游
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string, width, height int) ([]byte, error)
}

// ==================== 配置 ====================

// PollinationsConfig Pollinations 配置，不需要凭证
type PollinationsConfig struct {
	BaseURL string
	Timeout time.Duration
}

// ==================== 服务 ====================

type ImageService struct {
	client   *resty.Client
	timeout  time.Duration
	seed     func() int
	recorder *CallRecorder
	log      *zap.Logger
}

var _ ImageGenerator = (*ImageService)(nil)

// NewImageService 创建 Pollinations 服务
func NewImageService(cfg PollinationsConfig, recorder *CallRecorder, log *zap.Logger) *ImageService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://image.pollinations.ai"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &ImageService{
		client:   utils.NewHTTPClient(cfg.BaseURL, cfg.Timeout),
		timeout:  cfg.Timeout,
		seed:     func() int { return rand.IntN(10000) },
		recorder: recorder,
		log:      log,
	}
}

// Generate GET /prompt/{prompt}?width&height&seed
// 每次随机 seed，同一 prompt 不会命中 Pollinations 的缓存
func (s *ImageService) Generate(ctx context.Context, prompt string, width, height int) ([]byte, error) {
	if width <= 0 {
		width = DefaultImageWidth
	}
	if height <= 0 {
		height = DefaultImageHeight
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	resp, err := s.client.R().
		SetContext(ctx).
		SetPathParam("prompt", prompt).
		SetQueryParams(map[string]string{
			"width":  strconv.Itoa(width),
			"height": strconv.Itoa(height),
			"seed":   strconv.Itoa(s.seed()),
		}).
		Get("/prompt/{prompt}")

	rec := CallRecord{
		Upstream: model.UpstreamPollinations,
		CallType: model.AICallTypeImage,
		Duration: time.Since(start),
	}

	switch {
	case err != nil:
		rec.Err = newUpstreamError(model.UpstreamPollinations, err)
	case resp.IsError():
		rec.Err = newStatusError(model.UpstreamPollinations, resp.StatusCode(), resp.Body())
	}
	if rec.Err != nil {
		s.recorder.Record(ctx, rec)
		s.log.Error("Pollinations 调用失败", zap.Int("width", width), zap.Int("height", height), zap.Error(rec.Err))
		return nil, rec.Err
	}

	img := resp.Body()
	rec.OutputBytes = int64(len(img))
	s.recorder.Record(ctx, rec)

	return img, nil
}
