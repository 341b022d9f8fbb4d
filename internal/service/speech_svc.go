package service

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"brandpulse/internal/model"
	"brandpulse/pkg/utils"
)

// SpeechSynthesizer 文本转语音上游
type SpeechSynthesizer interface {
	Ready() error
	// Synthesize 返回 mp3 音频
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// ==================== 配置 ====================

// ElevenLabsConfig ElevenLabs 配置
type ElevenLabsConfig struct {
	APIKey          string
	BaseURL         string
	VoiceID         string
	ModelID         string
	Stability       float64
	SimilarityBoost float64
	Timeout         time.Duration
}

// ==================== 服务 ====================

type SpeechService struct {
	cfg      ElevenLabsConfig
	client   *resty.Client
	recorder *CallRecorder
	log      *zap.Logger
}

var _ SpeechSynthesizer = (*SpeechService)(nil)

// NewSpeechService 创建 ElevenLabs 服务，客户端进程内只建一次
func NewSpeechService(cfg ElevenLabsConfig, recorder *CallRecorder, log *zap.Logger) *SpeechService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.elevenlabs.io"
	}
	if cfg.VoiceID == "" {
		cfg.VoiceID = "21m00Tcm4TlvDq8ikWAM"
	}
	if cfg.ModelID == "" {
		cfg.ModelID = "eleven_multilingual_v2"
	}
	if cfg.Stability == 0 {
		cfg.Stability = 0.6
	}
	if cfg.SimilarityBoost == 0 {
		cfg.SimilarityBoost = 0.8
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.APIKey == "" {
		log.Warn("ELEVENLABS_API_KEY 未配置，语音接口将返回配置错误")
	}

	return &SpeechService{
		cfg:      cfg,
		client:   utils.NewHTTPClient(cfg.BaseURL, cfg.Timeout),
		recorder: recorder,
		log:      log,
	}
}

func (s *SpeechService) Ready() error {
	if s.cfg.APIKey == "" {
		return &ConfigurationError{Variable: "ELEVENLABS_API_KEY"}
	}
	return nil
}

type ttsVoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type ttsRequest struct {
	Text          string           `json:"text"`
	ModelID       string           `json:"model_id"`
	VoiceSettings ttsVoiceSettings `json:"voice_settings"`
}

// Synthesize POST /v1/text-to-speech/{voiceId}
func (s *SpeechService) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if err := s.Ready(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	start := time.Now()
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("xi-api-key", s.cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "audio/mpeg").
		SetPathParam("voiceId", s.cfg.VoiceID).
		SetBody(ttsRequest{
			Text:    text,
			ModelID: s.cfg.ModelID,
			VoiceSettings: ttsVoiceSettings{
				Stability:       s.cfg.Stability,
				SimilarityBoost: s.cfg.SimilarityBoost,
			},
		}).
		Post("/v1/text-to-speech/{voiceId}")

	rec := CallRecord{
		Upstream:  model.UpstreamElevenLabs,
		CallType:  model.AICallTypeSpeech,
		ModelName: s.cfg.ModelID,
		Duration:  time.Since(start),
	}

	switch {
	case err != nil:
		rec.Err = newUpstreamError(model.UpstreamElevenLabs, err)
	case resp.IsError():
		rec.Err = newStatusError(model.UpstreamElevenLabs, resp.StatusCode(), resp.Body())
	}
	if rec.Err != nil {
		s.recorder.Record(ctx, rec)
		s.log.Error("ElevenLabs 调用失败", zap.String("voice_id", s.cfg.VoiceID), zap.Error(rec.Err))
		return nil, rec.Err
	}

	audio := resp.Body()
	rec.OutputBytes = int64(len(audio))
	s.recorder.Record(ctx, rec)

	return audio, nil
}
