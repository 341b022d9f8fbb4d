package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"brandpulse/internal/api/dto"
	"brandpulse/internal/mocks"
	"brandpulse/internal/model"
	"brandpulse/internal/service"
	"brandpulse/pkg/llmjson"
)

func TestStrategyService_Generate(t *testing.T) {
	req := dto.StrategyReq{
		BrandName:        "Acme",
		ProductOrService: "Widgets",
		Goal:             "Sales",
		Platforms:        []string{"Instagram", "TikTok"},
	}

	text := mocks.NewMockTextGenerator(t)
	text.On("Ready").Return(nil)
	text.On("GenerateJSON", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return assert.Contains(t, prompt, "Brand Name: Acme") &&
			assert.Contains(t, prompt, "Platforms: Instagram, TikTok") &&
			assert.NotContains(t, prompt, "Budget Range:")
	})).Return(`{"campaignTheme":"Widgets for all","analytics":{"expectedKPIs":{"CTR":2.1}}}`, nil)

	svc := service.NewStrategyService(text, zap.NewNop())

	data, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)

	for key := range model.StrategyShape {
		assert.Contains(t, data, key)
	}
	assert.Equal(t, "Widgets for all", data["campaignTheme"])

	timeline := data["timeline"].(map[string]any)
	for _, day := range model.Weekdays {
		assert.Equal(t, []any{}, timeline[day])
	}
}

func TestStrategyService_ParseError(t *testing.T) {
	text := mocks.NewMockTextGenerator(t)
	text.On("Ready").Return(nil)
	text.On("GenerateJSON", mock.Anything, mock.Anything).Return(`{"campaignTheme": }`, nil)

	svc := service.NewStrategyService(text, zap.NewNop())

	_, err := svc.Generate(context.Background(), dto.StrategyReq{BrandName: "a", ProductOrService: "b", Goal: "c"})

	var parseErr *llmjson.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, `{"campaignTheme": }`, parseErr.Raw)
}
