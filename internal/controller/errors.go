package controller

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"brandpulse/internal/api/dto"
	"brandpulse/internal/service"
	"brandpulse/pkg/llmjson"
)

func init() {
	// 校验错误里用 json / form 标签名，和前端提交的字段名一致
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(fieldName)
	}
}

func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// ==================== 参数绑定 ====================

// bindError 把 gin 绑定失败转换成 ValidationError
func bindError(err error) *service.ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &service.ValidationError{Message: "invalid request: " + err.Error()}
	}

	fields := make([]string, 0, len(verrs))
	invalid := false
	for _, fe := range verrs {
		fields = append(fields, trimNamespace(fe.Namespace()))
		if fe.Tag() != "required" {
			invalid = true
		}
	}

	verr := &service.ValidationError{Fields: fields}
	if invalid {
		verr.Message = "invalid value for " + strings.Join(fields, ", ")
	}
	return verr
}

// trimNamespace 去掉最外层的结构体名: OutreachEmailReq.influencer.name -> influencer.name
func trimNamespace(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// ==================== 错误返回 ====================

// errorStyle 各前端页面读取的错误字段不同
type errorStyle int

const (
	styleError   errorStyle = iota // {"error": ...}
	styleStatus                    // {"status": "ERROR", "message": ...}
	styleSuccess                   // {"success": false, "message": ...}
)

// errorDetail 从 error 中取出状态码和附加字段
type errorDetail struct {
	status         int
	message        string
	fields         []string
	rawResponse    string
	upstreamStatus int
}

func describe(err error) errorDetail {
	d := errorDetail{status: http.StatusInternalServerError, message: err.Error()}

	var verr *service.ValidationError
	var cfgErr *service.ConfigurationError
	var upErr *service.UpstreamError
	switch {
	case errors.As(err, &verr):
		d.status = http.StatusBadRequest
		d.fields = verr.Fields
	case errors.As(err, &cfgErr):
		d.status = http.StatusInternalServerError
	case errors.As(err, &upErr):
		d.status = upErr.HTTPStatus()
		d.upstreamStatus = upErr.StatusCode
	}

	if raw, ok := llmjson.RawText(err); ok {
		d.rawResponse = raw
	}
	return d
}

// abortWithError 按页面约定的格式写错误响应
func abortWithError(c *gin.Context, style errorStyle, err error) {
	d := describe(err)

	if d.status >= http.StatusInternalServerError {
		zap.L().Warn("请求处理失败",
			zap.String("path", c.FullPath()),
			zap.Int("status", d.status),
			zap.Error(err),
		)
	}

	var body any
	switch style {
	case styleStatus:
		body = dto.StatusErrorResp{
			Status:         "ERROR",
			Message:        d.message,
			Fields:         d.fields,
			RawResponse:    d.rawResponse,
			UpstreamStatus: d.upstreamStatus,
		}
	case styleSuccess:
		body = dto.SuccessErrorResp{
			Success:        false,
			Message:        d.message,
			Fields:         d.fields,
			RawResponse:    d.rawResponse,
			UpstreamStatus: d.upstreamStatus,
		}
	default:
		body = dto.ErrorResp{
			Error:          d.message,
			Fields:         d.fields,
			RawResponse:    d.rawResponse,
			UpstreamStatus: d.upstreamStatus,
		}
	}
	c.AbortWithStatusJSON(d.status, body)
}
