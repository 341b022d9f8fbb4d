package service

import (
	"fmt"
	"strings"

	"brandpulse/internal/api/dto"
)

// ==================== 内容生成 ====================

const contentOutputFormat = `OUTPUT FORMAT (STRICT JSON ONLY)

{
  "instagram_captions": [],
  "ad_copy": [
    { "headline": "", "description": "" }
  ],
  "blog_content": {
    "titles": [],
    "intro": ""
  },
  "ctas": []
}

Return ONLY JSON.`

const contentRequirements = `OUTPUT REQUIREMENTS

1) INSTAGRAM CAPTIONS (5)
2) AD COPY (3, headline + description)
3) BLOG CONTENT (2 titles + 1 intro of 100-120 words)
4) CALL TO ACTION (5 variations)`

func buildCaptionsPrompt(req dto.CaptionsReq) string {
	var sb strings.Builder
	sb.WriteString("You are a senior brand copywriter and digital marketing expert.\n\n")
	sb.WriteString("Generate a complete marketing content package for the following brief.\n\n")
	fmt.Fprintf(&sb, "Brief: %s\n", req.Prompt)
	fmt.Fprintf(&sb, "Tone: %s\n", req.Tone)
	if req.ServiceType != "" {
		fmt.Fprintf(&sb, "Service type: %s\n", req.ServiceType)
	}
	sb.WriteString("\nIf the brief names a brand, use that name consistently. Avoid generic marketing buzzwords.\n\n")
	sb.WriteString(contentRequirements)
	sb.WriteString("\n\n")
	sb.WriteString(contentOutputFormat)
	return sb.String()
}

func buildCopywritingPrompt(strategyJSON string) string {
	return `You are a senior brand copywriter and digital marketing expert.

Your task is to generate high-quality, brand-consistent marketing copy
based strictly on the provided campaign strategy.

IMPORTANT RULES:
- Do NOT invent new brand values.
- Do NOT change the tone.
- Do NOT add platforms not mentioned.
- Avoid generic marketing buzzwords.

INPUT: APPROVED CAMPAIGN STRATEGY

` + strategyJSON + `

` + contentRequirements + `

` + contentOutputFormat
}

// ==================== 营销策略 ====================

const strategyOutputFormat = `{
  "campaignTheme": "",
  "campaignObjective": "",
  "coreMessage": "",
  "targetAudienceProfile": {
    "ageRange": "",
    "interests": [],
    "psychographics": []
  },
  "brandPositioning": {
    "marketPosition": "",
    "emotionalAppeal": "",
    "differentiation": ""
  },
  "recommendedPlatforms": [
    { "platform": "", "role": "" }
  ],
  "contentStyle": {
    "tone": "",
    "formats": []
  },
  "keyConstraints": [],
  "timeline": {
    "monday": [],
    "tuesday": [],
    "wednesday": [],
    "thursday": [],
    "friday": [],
    "saturday": [],
    "sunday": []
  },
  "analytics": {
    "platformDistribution": {},
    "contentTypeSplit": {},
    "funnelFocus": {},
    "expectedKPIs": {}
  }
}`

func buildStrategyPrompt(req dto.StrategyReq) string {
	var sb strings.Builder
	sb.WriteString(`You are a senior brand strategist.

Your task is to interpret the brand context, audience, and goal,
then formulate a detailed marketing campaign strategy.

IMPORTANT RULES:
- Do NOT generate ad copy
- Think strategically
- Infer missing details logically
- Respond ONLY in valid JSON
- All analytics values must be numeric only. Do not include %, +, or text.
- Include a detailed weekly timeline with specific tasks for each day of the week.

Brand Brief:
`)
	writeBriefLine(&sb, "Brand Name", req.BrandName)
	writeBriefLine(&sb, "Description", req.Description)
	writeBriefLine(&sb, "Product / Service", req.ProductOrService)
	writeBriefLine(&sb, "Target Audience", req.TargetAudience)
	writeBriefLine(&sb, "Goal", req.Goal)
	writeBriefLine(&sb, "Platforms", strings.Join(req.Platforms, ", "))
	writeBriefLine(&sb, "Budget Range", req.BudgetRange)
	writeBriefLine(&sb, "Tone", req.Tone)
	writeBriefLine(&sb, "Unique Value", req.UniqueValue)
	writeBriefLine(&sb, "Call To Action", req.CallToAction)
	sb.WriteString("\nReturn JSON with the following structure:\n")
	sb.WriteString(strategyOutputFormat)
	return sb.String()
}

// 可选字段没填就不写，避免模型看到空值
func writeBriefLine(sb *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(sb, "%s: %s\n", label, value)
}

// ==================== 音频广告 / 外联 ====================

func buildAdScriptPrompt(company, product string) string {
	return fmt.Sprintf(`Create a powerful 20-second advertising script (approximately 50-60 words when spoken at normal pace).

Company/Brand: %s
Product: %s

Requirements:
- Exactly 20 seconds when spoken (50-60 words)
- Tone: energetic, emotional, convincing
- Include: problem identification, solution/benefits, emotional hook, clear call-to-action
- End with a strong brand tagline for %s
- Make it engaging and memorable

Write only the script text, no additional commentary.`, company, product, company)
}

func buildOutreachPrompt(influencerName, product, brand string) string {
	return fmt.Sprintf(`Write a short, personalized influencer outreach email.

Brand: %s
Product: %s
Influencer name: %s
Platform: YouTube / Instagram

Tone:
- Friendly
- Professional
- Non-salesy
- Collaborative

End with a soft call to action.`, brand, product, influencerName)
}
