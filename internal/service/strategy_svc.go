package service

import (
	"context"

	"go.uber.org/zap"

	"brandpulse/internal/api/dto"
	"brandpulse/internal/model"
)

// StrategyService 品牌简报 -> 营销策略
type StrategyService struct {
	text TextGenerator
	log  *zap.Logger
}

func NewStrategyService(text TextGenerator, log *zap.Logger) *StrategyService {
	if log == nil {
		log = zap.NewNop()
	}
	return &StrategyService{text: text, log: log}
}

// Generate 返回补齐后的策略对象，前端图表读取的嵌套字段都保证存在
func (s *StrategyService) Generate(ctx context.Context, req dto.StrategyReq) (map[string]any, error) {
	if err := s.text.Ready(); err != nil {
		return nil, err
	}

	reply, err := s.text.GenerateJSON(ctx, buildStrategyPrompt(req))
	if err != nil {
		return nil, err
	}

	obj, err := extractReply(s.log, "strategy", reply)
	if err != nil {
		return nil, err
	}
	return model.NormalizeStrategy(obj), nil
}
