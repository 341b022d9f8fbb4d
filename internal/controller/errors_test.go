package controller

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"brandpulse/internal/service"
	"brandpulse/pkg/llmjson"
)

func TestDescribe_Status(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"参数错误", &service.ValidationError{Fields: []string{"prompt"}}, http.StatusBadRequest},
		{"未配置", &service.ConfigurationError{Variable: "YOUTUBE_API_KEY"}, http.StatusInternalServerError},
		{"上游失败", &service.UpstreamError{Upstream: "gemini", StatusCode: 429}, http.StatusBadGateway},
		{"上游超时", &service.UpstreamError{Upstream: "gemini", Timeout: true}, http.StatusGatewayTimeout},
		{"包装后的上游错误", fmt.Errorf("generate: %w", &service.UpstreamError{Upstream: "youtube"}), http.StatusBadGateway},
		{"提取失败", &llmjson.ExtractionError{Raw: "x"}, http.StatusInternalServerError},
		{"未知错误", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describe(tt.err).status)
		})
	}
}

func TestDescribe_RawResponse(t *testing.T) {
	_, err := llmjson.Extract("{not json}")

	d := describe(err)
	assert.Equal(t, http.StatusInternalServerError, d.status)
	assert.Equal(t, "{not json}", d.rawResponse)
}

func TestBindError(t *testing.T) {
	verr := bindError(errors.New("EOF"))
	assert.Empty(t, verr.Fields)
	assert.Equal(t, "invalid request: EOF", verr.Error())
}
