package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"brandpulse/internal/controller"
	"brandpulse/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func routeSet(r *gin.Engine) map[string]bool {
	set := make(map[string]bool)
	for _, ri := range r.Routes() {
		set[ri.Method+" "+ri.Path] = true
	}
	return set
}

func TestInitRoutes_OnlyConfiguredControllers(t *testing.T) {
	r := New(zap.NewNop(), Options{})
	InitRoutes(r, Controllers{
		Health: controller.NewHealthController("content"),
		Content: controller.NewContentController(
			service.NewContentService(nil, zap.NewNop()),
		),
	})

	routes := routeSet(r)
	assert.True(t, routes["GET /health"])
	assert.True(t, routes["POST /api/captions/generate"])
	assert.True(t, routes["POST /api/copywriting/generate"])
	assert.False(t, routes["GET /api/generate-image"])
	assert.False(t, routes["POST /ai-text"])
	assert.False(t, routes["POST /api/influencers"])
}

func TestHealth(t *testing.T) {
	r := New(zap.NewNop(), Options{})
	InitRoutes(r, Controllers{Health: controller.NewHealthController("image")})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"OK","service":"image"}`, w.Body.String())
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name    string
		origins []string
		origin  string
		want    string
	}{
		{"默认允许所有来源", nil, "http://localhost:5173", "*"},
		{"白名单内", []string{"https://app.example.com"}, "https://app.example.com", "https://app.example.com"},
		{"白名单外", []string{"https://app.example.com"}, "https://evil.example.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(zap.NewNop(), Options{CORSOrigins: tt.origins})
			InitRoutes(r, Controllers{Health: controller.NewHealthController("image")})

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestNew_RecoversPanicAsJSON(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := New(zap.New(core), Options{})
	r.GET("/boom", func(c *gin.Context) {
		panic("nil map")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}
