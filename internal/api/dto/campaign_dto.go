package dto

// Request DTO (前端传进来的数据)

// GenerateImageReq 海报生成，参数在 query 上
type GenerateImageReq struct {
	Prompt string `form:"prompt" binding:"required"`
	Width  int    `form:"width" binding:"omitempty,gt=0"`  // 默认 768
	Height int    `form:"height" binding:"omitempty,gt=0"` // 默认 1024
}

// CaptionsReq 根据一句话描述生成整套营销内容
type CaptionsReq struct {
	Prompt      string `json:"prompt" binding:"required"`
	Tone        string `json:"tone"` // 默认 professional
	ServiceType string `json:"serviceType"`
}

// AudioAdReq 20 秒音频广告
type AudioAdReq struct {
	Company string `json:"company" binding:"required"`
	Product string `json:"product" binding:"required"`
}

// InfluencerSearchReq 按细分领域搜索 YouTube 博主
type InfluencerSearchReq struct {
	Niche string `json:"niche" binding:"required"`
}

// OutreachInfluencer 外联邮件只用到博主名字，其余字段前端原样回传
type OutreachInfluencer struct {
	Name      string `json:"name" binding:"required"`
	YouTube   string `json:"youtube"`
	Instagram string `json:"instagram"`
}

// OutreachEmailReq 生成博主外联邮件
type OutreachEmailReq struct {
	Influencer *OutreachInfluencer `json:"influencer" binding:"required"`
	Product    string              `json:"product" binding:"required"`
	Brand      string              `json:"brand" binding:"required"`
}

// StrategyReq 品牌简报，生成营销策略
type StrategyReq struct {
	BrandName        string   `json:"brandName" binding:"required"`
	ProductOrService string   `json:"productOrService" binding:"required"`
	Goal             string   `json:"goal" binding:"required"`
	Description      string   `json:"description"`
	TargetAudience   string   `json:"targetAudience"`
	Platforms        []string `json:"platforms"`
	BudgetRange      string   `json:"budgetRange"`
	Tone             string   `json:"tone"`
	UniqueValue      string   `json:"uniqueValue"`
	CallToAction     string   `json:"callToAction"`
}

// Response DTO (返回给前端的数据)

// InfluencerResp 单个博主
type InfluencerResp struct {
	Name        string `json:"name"`
	YouTube     string `json:"youtube"`
	Followers   string `json:"followers"`
	Email       string `json:"email"`     // 找不到时为 "Not public"
	Instagram   string `json:"instagram"` // 找不到时为 "Not found"
	Description string `json:"description"`
}

// InfluencersResp 博主列表，没有结果时为空数组
type InfluencersResp struct {
	Influencers []InfluencerResp `json:"influencers"`
}

// OutreachEmailResp 外联邮件正文
type OutreachEmailResp struct {
	Email string `json:"email"`
}

// ContentResp captions / copywriting 成功返回
type ContentResp struct {
	Status string         `json:"status" example:"SUCCESS"`
	Data   map[string]any `json:"data"`
}

// StrategyResp /ai-text 成功返回
type StrategyResp struct {
	Success bool           `json:"success" example:"true"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

// HealthResp 健康检查
type HealthResp struct {
	Status  string `json:"status" example:"OK"`
	Service string `json:"service"`
}

// ==================== 错误返回 ====================
// 三种写法沿用各前端页面已经在读的字段

// ErrorResp image / audio / influencer / outreach
type ErrorResp struct {
	Error          string   `json:"error"`
	Fields         []string `json:"fields,omitempty"`
	RawResponse    string   `json:"rawResponse,omitempty"`
	UpstreamStatus int      `json:"upstreamStatus,omitempty"`
}

// StatusErrorResp captions / copywriting
type StatusErrorResp struct {
	Status         string   `json:"status" example:"ERROR"`
	Message        string   `json:"message"`
	Fields         []string `json:"fields,omitempty"`
	RawResponse    string   `json:"rawResponse,omitempty"`
	UpstreamStatus int      `json:"upstreamStatus,omitempty"`
}

// SuccessErrorResp /ai-text
type SuccessErrorResp struct {
	Success        bool     `json:"success" example:"false"`
	Message        string   `json:"message"`
	Fields         []string `json:"fields,omitempty"`
	RawResponse    string   `json:"rawResponse,omitempty"`
	UpstreamStatus int      `json:"upstreamStatus,omitempty"`
}
