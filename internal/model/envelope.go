package model

import "brandpulse/pkg/llmjson"

// ==================== 生成内容 ====================

// ContentShape captions / copywriting 返回给前端的结构
//
//	instagram_captions: []string
//	ad_copy:            [{headline, description}]
//	blog_content:       {titles: []string, intro: string}
//	ctas:               []string
var ContentShape = llmjson.Shape{
	"instagram_captions": llmjson.List(),
	"ad_copy":            llmjson.List(),
	"blog_content": llmjson.Object(llmjson.Shape{
		"titles": llmjson.List(),
		"intro":  llmjson.Text(),
	}),
	"ctas": llmjson.List(),
}

// NormalizeContent 补齐生成内容的四个顶层字段
func NormalizeContent(obj map[string]any) map[string]any {
	return llmjson.Normalize(obj, ContentShape)
}

// ==================== 营销策略 ====================

// Weekdays 策略时间线的键，顺序即前端展示顺序
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// StrategyShape /ai-text 返回的营销策略结构
// analytics 下的四个对象键值任意，前端按数值渲染图表
var StrategyShape = llmjson.Shape{
	"campaignTheme":     llmjson.Text(),
	"campaignObjective": llmjson.Text(),
	"coreMessage":       llmjson.Text(),
	"targetAudienceProfile": llmjson.Object(llmjson.Shape{
		"ageRange":       llmjson.Text(),
		"interests":      llmjson.List(),
		"psychographics": llmjson.List(),
	}),
	"brandPositioning": llmjson.Object(llmjson.Shape{
		"marketPosition":  llmjson.Text(),
		"emotionalAppeal": llmjson.Text(),
		"differentiation": llmjson.Text(),
	}),
	"recommendedPlatforms": llmjson.List(),
	"contentStyle": llmjson.Object(llmjson.Shape{
		"tone":    llmjson.Text(),
		"formats": llmjson.List(),
	}),
	"keyConstraints": llmjson.List(),
	"timeline":       llmjson.Object(weekdayShape()),
	"analytics": llmjson.Object(llmjson.Shape{
		"platformDistribution": llmjson.Object(nil),
		"contentTypeSplit":     llmjson.Object(nil),
		"funnelFocus":          llmjson.Object(nil),
		"expectedKPIs":         llmjson.Object(nil),
	}),
}

func weekdayShape() llmjson.Shape {
	shape := make(llmjson.Shape, len(Weekdays))
	for _, day := range Weekdays {
		shape[day] = llmjson.List()
	}
	return shape
}

// NormalizeStrategy 补齐策略对象里前端会读取的所有嵌套字段
func NormalizeStrategy(obj map[string]any) map[string]any {
	return llmjson.Normalize(obj, StrategyShape)
}
