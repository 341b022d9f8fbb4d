package controller

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"brandpulse/internal/mocks"
	"brandpulse/internal/model"
	"brandpulse/internal/service"
)

const strategyReply = `{
  "campaignTheme": "Widgets Everywhere",
  "campaignObjective": "Drive sales",
  "coreMessage": "Widgets that work",
  "targetAudienceProfile": {"ageRange": "25-40", "interests": ["tools"], "psychographics": []},
  "brandPositioning": {"marketPosition": "premium", "emotionalAppeal": "trust", "differentiation": "quality"},
  "recommendedPlatforms": [{"platform": "Instagram", "role": "awareness"}],
  "contentStyle": {"tone": "confident", "formats": ["reels"]},
  "keyConstraints": [],
  "timeline": {"monday": ["teaser"], "tuesday": [], "wednesday": [], "thursday": [], "friday": [], "saturday": [], "sunday": []},
  "analytics": {"platformDistribution": {"Instagram": 60}, "contentTypeSplit": {}, "funnelFocus": {}, "expectedKPIs": {"CTR": 2.5}}
}`

func setupStrategyRouter(text *mocks.MockTextGenerator) *gin.Engine {
	ctl := NewStrategyController(service.NewStrategyService(text, zap.NewNop()))

	r := newTestEngine()
	r.POST("/ai-text", ctl.Generate)
	return r
}

func TestStrategyController_Generate(t *testing.T) {
	text := mocks.NewMockTextGenerator(t)
	text.On("Ready").Return(nil)
	text.On("GenerateJSON", mock.Anything, mock.Anything).Return("```json\n"+strategyReply+"\n```", nil)

	w := performRequest(setupStrategyRouter(text), http.MethodPost, "/ai-text",
		`{"brandName":"Acme","productOrService":"Widgets","goal":"Sales"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]any)
	for key := range model.StrategyShape {
		assert.Contains(t, data, key)
	}
	assert.Equal(t, "Widgets Everywhere", data["campaignTheme"])
	analytics := data["analytics"].(map[string]any)
	assert.Equal(t, map[string]any{"CTR": 2.5}, analytics["expectedKPIs"])
}

func TestStrategyController_Generate_MissingFields(t *testing.T) {
	text := mocks.NewMockTextGenerator(t)

	w := performRequest(setupStrategyRouter(text), http.MethodPost, "/ai-text", `{"brandName":"Acme"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "productOrService and goal are required", body["message"])
}

func TestStrategyController_Generate_UpstreamTimeout(t *testing.T) {
	text := mocks.NewMockTextGenerator(t)
	text.On("Ready").Return(nil)
	text.On("GenerateJSON", mock.Anything, mock.Anything).
		Return("", &service.UpstreamError{Upstream: "gemini", Timeout: true})

	w := performRequest(setupStrategyRouter(text), http.MethodPost, "/ai-text",
		`{"brandName":"Acme","productOrService":"Widgets","goal":"Sales"}`)

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "gemini request timed out", body["message"])
}
