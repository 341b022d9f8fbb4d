package controller

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"brandpulse/internal/mocks"
	"brandpulse/internal/service"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\nfake-image-data")

func setupImageRouter(t *testing.T, handler http.HandlerFunc) (*gin.Engine, *atomic.Int32) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	svc := service.NewImageService(service.PollinationsConfig{BaseURL: srv.URL}, nil, zap.NewNop())
	ctl := NewImageController(svc)

	r := newTestEngine()
	r.GET("/api/generate-image", ctl.Generate)
	return r, &hits
}

func TestImageController_Generate(t *testing.T) {
	r, hits := setupImageRouter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/prompt/sunset", r.URL.Path)
		assert.Equal(t, "512", r.URL.Query().Get("width"))
		assert.Equal(t, "512", r.URL.Query().Get("height"))
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(pngBytes)
	})

	w := performRequest(r, http.MethodGet, "/api/generate-image?prompt=sunset&width=512&height=512", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", w.Header().Get("Cache-Control"))
	assert.Equal(t, pngBytes, w.Body.Bytes())
	assert.EqualValues(t, 1, hits.Load())
}

func TestImageController_InvalidParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"缺少 prompt", "/api/generate-image"},
		{"prompt 为空", "/api/generate-image?prompt="},
		{"width 不是数字", "/api/generate-image?prompt=sunset&width=abc"},
		{"height 为负数", "/api/generate-image?prompt=sunset&height=-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, hits := setupImageRouter(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write(pngBytes)
			})

			w := performRequest(r, http.MethodGet, tt.query, "")

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, decodeBody(t, w)["error"])
			assert.Zero(t, hits.Load())
		})
	}
}

func TestImageController_MissingPromptNamesField(t *testing.T) {
	r, _ := setupImageRouter(t, func(w http.ResponseWriter, r *http.Request) {})

	w := performRequest(r, http.MethodGet, "/api/generate-image", "")

	body := decodeBody(t, w)
	assert.Equal(t, "prompt is required", body["error"])
	assert.Equal(t, []any{"prompt"}, body["fields"])
}

func TestImageController_UpstreamFailure(t *testing.T) {
	r, _ := setupImageRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("busy"))
	})

	w := performRequest(r, http.MethodGet, "/api/generate-image?prompt=sunset", "")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	body := decodeBody(t, w)
	assert.Contains(t, body["error"], "busy")
	assert.EqualValues(t, http.StatusServiceUnavailable, body["upstreamStatus"])
}

func TestImageController_PassesQueryThrough(t *testing.T) {
	images := mocks.NewMockImageGenerator(t)
	// 宽高缺省时传 0，由服务层补默认值
	images.On("Generate", mock.Anything, "eco brand / summer sale", 0, 0).Return(pngBytes, nil)

	r := newTestEngine()
	r.GET("/api/generate-image", NewImageController(images).Generate)

	w := performRequest(r, http.MethodGet, "/api/generate-image?prompt=eco+brand+%2F+summer+sale", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, pngBytes, w.Body.Bytes())
}
