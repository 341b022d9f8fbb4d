package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultUserAgent = "brandpulse/1.0"

// NewHTTPClient 创建上游调用用的 Resty 客户端
// 每个上游一个实例，进程启动时构建后注入到 service
// 不开启重试，超时由调用方的 context 控制，这里的 timeout 只是兜底
func NewHTTPClient(baseURL string, timeout time.Duration) *resty.Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("User-Agent", defaultUserAgent)

	return client
}
