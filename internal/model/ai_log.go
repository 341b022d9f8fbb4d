package model

// AICallLog 上游调用日志
// 只记录元数据，不保存 prompt 和生成内容
type AICallLog struct {
	BaseModel

	// 来源
	Service  string `gorm:"size:32;index;comment:进程(image/audio/influencer/content/strategy)"`
	Route    string `gorm:"size:64;comment:入口路由"`
	Upstream string `gorm:"size:32;index;comment:上游(gemini/elevenlabs/pollinations/youtube)"`

	// 调用信息
	CallType  string `gorm:"size:32;index;comment:调用类型(text/speech/image/search)"`
	ModelName string `gorm:"size:64;comment:模型名称"`

	// 用量统计
	InputTokens  int   `gorm:"default:0;comment:输入token数"`
	OutputTokens int   `gorm:"default:0;comment:输出token数"`
	OutputBytes  int64 `gorm:"default:0;comment:返回的二进制字节数"`

	// 性能
	DurationMs int64 `gorm:"comment:耗时(毫秒)"`

	// 状态
	Status         string `gorm:"size:32;index;default:success;comment:状态(success/failed)"`
	UpstreamStatus int    `gorm:"default:0;comment:上游HTTP状态码"`
	ErrorMsg       string `gorm:"size:1024;comment:错误信息"`
}

func (AICallLog) TableName() string {
	return "ai_call_logs"
}

// ==================== 上游常量 ====================

const (
	UpstreamGemini       = "gemini"
	UpstreamElevenLabs   = "elevenlabs"
	UpstreamPollinations = "pollinations"
	UpstreamYouTube      = "youtube"
)

// ==================== 调用类型常量 ====================

const (
	AICallTypeText   = "text"
	AICallTypeSpeech = "speech"
	AICallTypeImage  = "image"
	AICallTypeSearch = "search"
)

// ==================== 状态常量 ====================

const (
	AICallStatusSuccess = "success"
	AICallStatusFailed  = "failed"
)
