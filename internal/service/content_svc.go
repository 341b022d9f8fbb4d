package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"brandpulse/internal/api/dto"
	"brandpulse/internal/model"
	"brandpulse/pkg/llmjson"
)

const defaultTone = "professional"

// ContentService captions / copywriting，共用一个内容结构
type ContentService struct {
	text TextGenerator
	log  *zap.Logger
}

func NewContentService(text TextGenerator, log *zap.Logger) *ContentService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ContentService{text: text, log: log}
}

// GenerateCaptions 按一句话描述生成整套内容
func (s *ContentService) GenerateCaptions(ctx context.Context, req dto.CaptionsReq) (map[string]any, error) {
	if req.Tone == "" {
		req.Tone = defaultTone
	}
	return s.generate(ctx, "captions", buildCaptionsPrompt(req))
}

// GenerateCopywriting 按已确认的营销策略生成文案，策略原样缩进嵌入 prompt
func (s *ContentService) GenerateCopywriting(ctx context.Context, strategy map[string]any) (map[string]any, error) {
	raw, err := json.MarshalIndent(strategy, "", "  ")
	if err != nil {
		return nil, &ValidationError{Fields: []string{"strategy"}, Message: fmt.Sprintf("strategy is not serializable: %v", err)}
	}
	return s.generate(ctx, "copywriting", buildCopywritingPrompt(string(raw)))
}

func (s *ContentService) generate(ctx context.Context, route, prompt string) (map[string]any, error) {
	if err := s.text.Ready(); err != nil {
		return nil, err
	}

	reply, err := s.text.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, err
	}

	obj, err := extractReply(s.log, route, reply)
	if err != nil {
		return nil, err
	}
	return model.NormalizeContent(obj), nil
}

// extractReply 从模型回复里取 JSON，失败时计数并保留原文
func extractReply(log *zap.Logger, route, reply string) (map[string]any, error) {
	obj, err := llmjson.Extract(reply)
	if err != nil {
		llmExtractionFailuresTotal.WithLabelValues(route).Inc()
		log.Warn("模型回复解析失败",
			zap.String("route", route),
			zap.Int("reply_len", len(reply)),
			zap.Error(err),
		)
		return nil, err
	}
	return obj, nil
}
