package service

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"brandpulse/internal/api/dto"
	"brandpulse/internal/model"
	"brandpulse/pkg/utils"
)

const (
	influencerSearchLimit = 10
	descriptionPreviewLen = 160

	emailNotPublic    = "Not public"
	instagramNotFound = "Not found"
	followersHidden   = "Hidden"
)

// InfluencerService 博主发现 + 外联邮件
type InfluencerService struct {
	channels ChannelSearcher
	text     TextGenerator
	log      *zap.Logger
}

func NewInfluencerService(channels ChannelSearcher, text TextGenerator, log *zap.Logger) *InfluencerService {
	if log == nil {
		log = zap.NewNop()
	}
	return &InfluencerService{channels: channels, text: text, log: log}
}

// Search 按细分领域找 YouTube 频道，从简介里尽力提取联系方式
func (s *InfluencerService) Search(ctx context.Context, niche string) ([]dto.InfluencerResp, error) {
	if err := s.channels.Ready(); err != nil {
		return nil, err
	}

	channels, err := s.channels.SearchChannels(ctx, niche, influencerSearchLimit)
	if err != nil {
		return nil, err
	}

	result := make([]dto.InfluencerResp, 0, len(channels))
	for _, ch := range channels {
		result = append(result, toInfluencer(ch))
	}
	return result, nil
}

func toInfluencer(ch Channel) dto.InfluencerResp {
	resp := dto.InfluencerResp{
		Name:        ch.Title,
		YouTube:     "https://youtube.com/channel/" + ch.ID,
		Followers:   strconv.FormatUint(ch.SubscriberCount, 10),
		Email:       emailNotPublic,
		Instagram:   instagramNotFound,
		Description: previewText(ch.Description, descriptionPreviewLen),
	}
	if ch.SubscriberHidden {
		resp.Followers = followersHidden
	}
	if email, ok := utils.ExtractEmail(ch.Description); ok {
		resp.Email = email
	}
	if handle, ok := utils.ExtractInstagram(ch.Description); ok {
		resp.Instagram = "https://instagram.com/" + handle
	}
	return resp
}

// previewText 按字符截断，不切断多字节字符
func previewText(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// OutreachEmail 生成给博主的合作邀请邮件
func (s *InfluencerService) OutreachEmail(ctx context.Context, req dto.OutreachEmailReq) (string, error) {
	if err := s.text.Ready(); err != nil {
		return "", err
	}

	email, err := s.text.GenerateText(ctx, buildOutreachPrompt(req.Influencer.Name, req.Product, req.Brand))
	if err != nil {
		return "", err
	}

	email = strings.TrimSpace(email)
	if email == "" {
		return "", &UpstreamError{Upstream: model.UpstreamGemini, Message: "empty response"}
	}
	return email, nil
}
