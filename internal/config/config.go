package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ==================== 进程 ====================

// 每个进程只代理一个上游，端口沿用前端已经写死的默认值
const (
	ServiceImage      = "image"
	ServiceAudio      = "audio"
	ServiceInfluencer = "influencer"
	ServiceContent    = "content"
	ServiceStrategy   = "strategy"
)

var defaultPorts = map[string]string{
	ServiceImage:      "4000",
	ServiceAudio:      "4001",
	ServiceInfluencer: "4003",
	ServiceContent:    "5000",
	ServiceStrategy:   "3000",
}

// Services 返回全部进程名，顺序固定
func Services() []string {
	return []string{ServiceImage, ServiceAudio, ServiceInfluencer, ServiceContent, ServiceStrategy}
}

// DefaultPort 进程的默认端口，未知进程返回空串
func DefaultPort(service string) string {
	return defaultPorts[service]
}

// ==================== 配置结构 ====================

// Config 单个进程的运行配置，启动时读取一次
type Config struct {
	Service         string
	Port            string
	AppEnv          string
	UpstreamTimeout time.Duration
	CORSOrigins     []string

	Log          LogConfig
	Gemini       GeminiConfig
	ElevenLabs   ElevenLabsConfig
	Pollinations PollinationsConfig
	YouTube      YouTubeConfig
	Database     DatabaseConfig
}

type LogConfig struct {
	Level    string
	Encoding string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type ElevenLabsConfig struct {
	APIKey  string
	BaseURL string
	VoiceID string
	ModelID string
}

type PollinationsConfig struct {
	BaseURL string
}

type YouTubeConfig struct {
	APIKey   string
	Endpoint string // 为空时使用 SDK 默认地址
}

// DatabaseConfig 调用日志库，DSN 为空表示不记录
type DatabaseConfig struct {
	DSN           string
	RetentionDays int
}

// IsProduction 是否生产环境
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// ==================== 加载 ====================

const (
	DefaultUpstreamTimeout = 30 * time.Second
	DefaultGeminiModel     = "gemini-2.5-flash"
)

// key -> 环境变量
var envBindings = map[string]string{
	"port":                    "PORT",
	"app.env":                 "APP_ENV",
	"upstream.timeout":        "UPSTREAM_TIMEOUT",
	"cors.allowed_origins":    "CORS_ALLOWED_ORIGINS",
	"log.level":               "LOG_LEVEL",
	"log.encoding":            "LOG_ENCODING",
	"gemini.api_key":          "GEMINI_API_KEY",
	"gemini.model":            "GEMINI_MODEL",
	"elevenlabs.api_key":      "ELEVENLABS_API_KEY",
	"elevenlabs.base_url":     "ELEVENLABS_BASE_URL",
	"elevenlabs.voice_id":     "ELEVENLABS_VOICE_ID",
	"elevenlabs.model_id":     "ELEVENLABS_MODEL_ID",
	"pollinations.base_url":   "POLLINATIONS_BASE_URL",
	"youtube.api_key":         "YOUTUBE_API_KEY",
	"youtube.endpoint":        "YOUTUBE_ENDPOINT",
	"database.dsn":            "DATABASE_DSN",
	"database.retention_days": "CALL_LOG_RETENTION_DAYS",
}

func setDefaults(v *viper.Viper, service string) {
	v.SetDefault("port", DefaultPort(service))
	v.SetDefault("app.env", "development")
	v.SetDefault("upstream.timeout", DefaultUpstreamTimeout)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "json")
	v.SetDefault("gemini.model", DefaultGeminiModel)
	v.SetDefault("elevenlabs.base_url", "https://api.elevenlabs.io")
	v.SetDefault("elevenlabs.voice_id", "21m00Tcm4TlvDq8ikWAM") // Rachel
	v.SetDefault("elevenlabs.model_id", "eleven_multilingual_v2")
	v.SetDefault("pollinations.base_url", "https://image.pollinations.ai")
	v.SetDefault("database.retention_days", 30)
}

// Load 读取 service 进程的配置
// 优先级：环境变量 > configFile > 默认值；.env 只补充未设置的环境变量
// 缺少凭证不算错误，由各路由在请求时返回 ConfigurationError
func Load(service, configFile string) (*Config, error) {
	if _, ok := defaultPorts[service]; !ok {
		return nil, fmt.Errorf("unknown service %q, expected one of %s", service, strings.Join(Services(), ", "))
	}

	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v, service)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	timeout := v.GetDuration("upstream.timeout")
	if timeout <= 0 {
		timeout = DefaultUpstreamTimeout
	}

	return &Config{
		Service:         service,
		Port:            v.GetString("port"),
		AppEnv:          v.GetString("app.env"),
		UpstreamTimeout: timeout,
		CORSOrigins:     splitList(v.GetString("cors.allowed_origins")),
		Log: LogConfig{
			Level:    v.GetString("log.level"),
			Encoding: v.GetString("log.encoding"),
		},
		Gemini: GeminiConfig{
			APIKey: v.GetString("gemini.api_key"),
			Model:  v.GetString("gemini.model"),
		},
		ElevenLabs: ElevenLabsConfig{
			APIKey:  v.GetString("elevenlabs.api_key"),
			BaseURL: v.GetString("elevenlabs.base_url"),
			VoiceID: v.GetString("elevenlabs.voice_id"),
			ModelID: v.GetString("elevenlabs.model_id"),
		},
		Pollinations: PollinationsConfig{
			BaseURL: v.GetString("pollinations.base_url"),
		},
		YouTube: YouTubeConfig{
			APIKey:   v.GetString("youtube.api_key"),
			Endpoint: v.GetString("youtube.endpoint"),
		},
		Database: DatabaseConfig{
			DSN:           v.GetString("database.dsn"),
			RetentionDays: v.GetInt("database.retention_days"),
		},
	}, nil
}

// splitList "a, b,,c" -> [a b c]
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
