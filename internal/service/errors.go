package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/googleapis/gax-go/v2/apierror"
	"google.golang.org/api/googleapi"
)

// ==================== 错误类型 ====================
// 解析失败的两类错误在 pkg/llmjson

// ValidationError 必填参数缺失或格式不对，不会发起任何上游调用
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	switch len(e.Fields) {
	case 0:
		return "invalid request"
	case 1:
		return e.Fields[0] + " is required"
	default:
		return strings.Join(e.Fields[:len(e.Fields)-1], ", ") + " and " + e.Fields[len(e.Fields)-1] + " are required"
	}
}

// ConfigurationError 凭证未配置，Variable 是对应的环境变量名
type ConfigurationError struct {
	Variable string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s is not configured", e.Variable)
}

// UpstreamError 上游返回非 2xx、网络失败或超时
type UpstreamError struct {
	Upstream   string
	StatusCode int // 0 表示没有拿到 HTTP 响应
	Message    string
	Timeout    bool
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.Timeout:
		return fmt.Sprintf("%s request timed out", e.Upstream)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s request failed with status %d: %s", e.Upstream, e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("%s request failed: %s", e.Upstream, e.Message)
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// HTTPStatus 对外返回的状态码：超时 504，其余 502
func (e *UpstreamError) HTTPStatus() int {
	if e.Timeout {
		return http.StatusGatewayTimeout
	}
	return http.StatusBadGateway
}

// ==================== 构造 ====================

const maxUpstreamMessage = 300

// newUpstreamError 把调用上游时拿到的 error 归类
// 已经是 UpstreamError / ConfigurationError 的原样返回
func newUpstreamError(upstream string, err error) error {
	if err == nil {
		return nil
	}

	var upErr *UpstreamError
	var cfgErr *ConfigurationError
	if errors.As(err, &upErr) || errors.As(err, &cfgErr) {
		return err
	}

	e := &UpstreamError{Upstream: upstream, Err: err, Message: truncate(err.Error(), maxUpstreamMessage)}

	var netErr interface{ Timeout() bool }
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		e.Timeout = true
		return e
	}

	// Google SDK：REST 错误是 googleapi.Error，生成式 SDK 外面还包了一层 apierror
	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPCode() > 0 {
		e.StatusCode = apiErr.HTTPCode()
	}
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		e.StatusCode = gErr.Code
		if gErr.Message != "" {
			e.Message = truncate(gErr.Message, maxUpstreamMessage)
		}
	}

	return e
}

// newStatusError 上游返回了非 2xx 的 HTTP 响应
func newStatusError(upstream string, status int, body []byte) *UpstreamError {
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &UpstreamError{
		Upstream:   upstream,
		StatusCode: status,
		Message:    truncate(msg, maxUpstreamMessage),
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
