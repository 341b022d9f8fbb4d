package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"brandpulse/internal/model"
)

// TextGenerator 文本生成上游
type TextGenerator interface {
	// Ready 凭证缺失时返回 ConfigurationError
	Ready() error
	// GenerateText 返回模型的纯文本回复
	GenerateText(ctx context.Context, prompt string) (string, error)
	// GenerateJSON 要求模型输出 JSON，仍然返回原始文本，由调用方提取
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

// ==================== 配置 ====================

// GeminiConfig Gemini 服务配置
type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	// 测试或私有部署时覆盖
	ClientOptions []option.ClientOption
}

// ==================== 服务 ====================

// GeminiService 进程内唯一的 Gemini 客户端
type GeminiService struct {
	client   *genai.Client // APIKey 为空时为 nil
	model    string
	timeout  time.Duration
	recorder *CallRecorder
	log      *zap.Logger
}

var _ TextGenerator = (*GeminiService)(nil)

// NewGeminiService 创建 Gemini 服务
// APIKey 为空时不报错，之后每次调用都返回 ConfigurationError
func NewGeminiService(ctx context.Context, cfg GeminiConfig, recorder *CallRecorder, log *zap.Logger) (*GeminiService, error) {
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}

	s := &GeminiService{
		model:    cfg.Model,
		timeout:  cfg.Timeout,
		recorder: recorder,
		log:      log,
	}

	if cfg.APIKey == "" {
		log.Warn("GEMINI_API_KEY 未配置，文本生成接口将返回配置错误")
		return s, nil
	}

	opts := append([]option.ClientOption{option.WithAPIKey(cfg.APIKey)}, cfg.ClientOptions...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gemini client init failed: %w", err)
	}
	s.client = client
	return s, nil
}

// Close 释放底层连接
func (s *GeminiService) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

func (s *GeminiService) Ready() error {
	if s.client == nil {
		return &ConfigurationError{Variable: "GEMINI_API_KEY"}
	}
	return nil
}

func (s *GeminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	return s.generate(ctx, prompt, "")
}

func (s *GeminiService) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	return s.generate(ctx, prompt, "application/json")
}

func (s *GeminiService) generate(ctx context.Context, prompt, mimeType string) (string, error) {
	if err := s.Ready(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	genModel := s.client.GenerativeModel(s.model)
	if mimeType != "" {
		genModel.ResponseMIMEType = mimeType
	}

	start := time.Now()
	resp, err := genModel.GenerateContent(ctx, genai.Text(prompt))
	rec := CallRecord{
		Upstream:  model.UpstreamGemini,
		CallType:  model.AICallTypeText,
		ModelName: s.model,
		Duration:  time.Since(start),
	}

	if err != nil {
		rec.Err = classifyGeminiError(err)
		s.recorder.Record(ctx, rec)
		s.log.Error("Gemini 调用失败", zap.String("model", s.model), zap.Duration("duration", rec.Duration), zap.Error(err))
		return "", rec.Err
	}

	if resp.UsageMetadata != nil {
		rec.InputTokens = int(resp.UsageMetadata.PromptTokenCount)
		rec.OutputTokens = int(resp.UsageMetadata.CandidatesTokenCount)
	}
	s.recorder.Record(ctx, rec)

	return responseText(resp), nil
}

// classifyGeminiError 安全拦截也算上游失败
func classifyGeminiError(err error) error {
	var blocked *genai.BlockedError
	if errors.As(err, &blocked) {
		return &UpstreamError{Upstream: model.UpstreamGemini, Message: blocked.Error(), Err: err}
	}
	return newUpstreamError(model.UpstreamGemini, err)
}

// responseText 拼接第一个候选的所有文本片段
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String()
}
