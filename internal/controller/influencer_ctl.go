package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brandpulse/internal/api/dto"
	"brandpulse/internal/service"
)

type InfluencerController struct {
	influencerService *service.InfluencerService
}

func NewInfluencerController(influencerService *service.InfluencerService) *InfluencerController {
	return &InfluencerController{influencerService: influencerService}
}

// Search 搜索博主
// @Summary 按领域搜索 YouTube 博主
// @Description 返回最多 10 个频道，邮箱和 Instagram 从频道简介中尽力提取
// @Tags Influencer
// @Accept json
// @Produce json
// @Param request body dto.InfluencerSearchReq true "领域"
// @Success 200 {object} dto.InfluencersResp
// @Failure 400 {object} dto.ErrorResp "参数错误"
// @Failure 500 {object} dto.ErrorResp "凭证未配置"
// @Failure 502 {object} dto.ErrorResp "上游失败"
// @Router /api/influencers [post]
func (h *InfluencerController) Search(c *gin.Context) {
	var req dto.InfluencerSearchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, styleError, bindError(err))
		return
	}

	ctx := service.WithRoute(c.Request.Context(), c.FullPath())
	list, err := h.influencerService.Search(ctx, req.Niche)
	if err != nil {
		abortWithError(c, styleError, err)
		return
	}

	c.JSON(http.StatusOK, dto.InfluencersResp{Influencers: list})
}

// OutreachEmail 生成外联邮件
// @Summary 生成博主外联邮件
// @Tags Influencer
// @Accept json
// @Produce json
// @Param request body dto.OutreachEmailReq true "博主、产品与品牌"
// @Success 200 {object} dto.OutreachEmailResp
// @Failure 400 {object} dto.ErrorResp "参数错误"
// @Failure 500 {object} dto.ErrorResp "凭证未配置"
// @Failure 502 {object} dto.ErrorResp "上游失败"
// @Router /api/outreach-email [post]
func (h *InfluencerController) OutreachEmail(c *gin.Context) {
	var req dto.OutreachEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, styleError, bindError(err))
		return
	}

	ctx := service.WithRoute(c.Request.Context(), c.FullPath())
	email, err := h.influencerService.OutreachEmail(ctx, req)
	if err != nil {
		abortWithError(c, styleError, err)
		return
	}

	c.JSON(http.StatusOK, dto.OutreachEmailResp{Email: email})
}
