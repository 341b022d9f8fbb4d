package controller

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"brandpulse/internal/mocks"
	"brandpulse/internal/service"
)

func setupInfluencerRouter(channels *mocks.MockChannelSearcher, text *mocks.MockTextGenerator) *gin.Engine {
	ctl := NewInfluencerController(service.NewInfluencerService(channels, text, zap.NewNop()))

	r := newTestEngine()
	api := r.Group("/api")
	api.POST("/influencers", ctl.Search)
	api.POST("/outreach-email", ctl.OutreachEmail)
	return r
}

func TestInfluencerController_Search(t *testing.T) {
	channels := mocks.NewMockChannelSearcher(t)
	channels.On("Ready").Return(nil)
	channels.On("SearchChannels", mock.Anything, "fitness", int64(10)).Return([]service.Channel{
		{ID: "UC9", Title: "Fit Daily", Description: "Contact: team@fitdaily.com", SubscriberCount: 4200},
	}, nil)

	r := setupInfluencerRouter(channels, mocks.NewMockTextGenerator(t))
	w := performRequest(r, http.MethodPost, "/api/influencers", `{"niche":"fitness"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	list := decodeBody(t, w)["influencers"].([]any)
	assert.Len(t, list, 1)

	first := list[0].(map[string]any)
	assert.Equal(t, "Fit Daily", first["name"])
	assert.Equal(t, "https://youtube.com/channel/UC9", first["youtube"])
	assert.Equal(t, "4200", first["followers"])
	assert.Equal(t, "team@fitdaily.com", first["email"])
}

func TestInfluencerController_Search_Empty(t *testing.T) {
	channels := mocks.NewMockChannelSearcher(t)
	channels.On("Ready").Return(nil)
	channels.On("SearchChannels", mock.Anything, "obscure", int64(10)).Return(nil, nil)

	r := setupInfluencerRouter(channels, mocks.NewMockTextGenerator(t))
	w := performRequest(r, http.MethodPost, "/api/influencers", `{"niche":"obscure"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"influencers":[]}`, w.Body.String())
}

func TestInfluencerController_Search_Quota(t *testing.T) {
	channels := mocks.NewMockChannelSearcher(t)
	channels.On("Ready").Return(nil)
	channels.On("SearchChannels", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &service.UpstreamError{Upstream: "youtube", StatusCode: http.StatusForbidden, Message: "quotaExceeded"})

	r := setupInfluencerRouter(channels, mocks.NewMockTextGenerator(t))
	w := performRequest(r, http.MethodPost, "/api/influencers", `{"niche":"fitness"}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	body := decodeBody(t, w)
	assert.Contains(t, body["error"], "quotaExceeded")
	assert.EqualValues(t, http.StatusForbidden, body["upstreamStatus"])
}

func TestInfluencerController_Search_MissingNiche(t *testing.T) {
	r := setupInfluencerRouter(mocks.NewMockChannelSearcher(t), mocks.NewMockTextGenerator(t))
	w := performRequest(r, http.MethodPost, "/api/influencers", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "niche is required", decodeBody(t, w)["error"])
}

func TestInfluencerController_OutreachEmail(t *testing.T) {
	text := mocks.NewMockTextGenerator(t)
	text.On("Ready").Return(nil)
	text.On("GenerateText", mock.Anything, mock.Anything).Return("Hi Fit Daily, ...", nil)

	r := setupInfluencerRouter(mocks.NewMockChannelSearcher(t), text)
	w := performRequest(r, http.MethodPost, "/api/outreach-email",
		`{"influencer":{"name":"Fit Daily","youtube":"https://youtube.com/channel/UC9"},"product":"Protein Bar","brand":"Acme"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email":"Hi Fit Daily, ..."}`, w.Body.String())
}

func TestInfluencerController_OutreachEmail_MissingFields(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantFields []any
	}{
		{"缺少 influencer", `{"product":"p","brand":"b"}`, []any{"influencer"}},
		{"influencer 没有 name", `{"influencer":{},"product":"p","brand":"b"}`, []any{"influencer.name"}},
		{"缺少 brand", `{"influencer":{"name":"n"},"product":"p"}`, []any{"brand"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupInfluencerRouter(mocks.NewMockChannelSearcher(t), mocks.NewMockTextGenerator(t))
			w := performRequest(r, http.MethodPost, "/api/outreach-email", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantFields, decodeBody(t, w)["fields"])
		})
	}
}
