package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brandpulse/internal/api/dto"
	"brandpulse/internal/service"
)

type ContentController struct {
	contentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{contentService: contentService}
}

// GenerateCaptions 一句话描述生成营销内容
// @Summary 生成营销内容
// @Description 根据描述生成 Instagram 文案、广告语、博客开头和 CTA
// @Tags Content
// @Accept json
// @Produce json
// @Param request body dto.CaptionsReq true "生成参数"
// @Success 200 {object} dto.ContentResp
// @Failure 400 {object} dto.StatusErrorResp "参数错误"
// @Failure 500 {object} dto.StatusErrorResp "未配置或模型回复无法解析"
// @Failure 502 {object} dto.StatusErrorResp "上游失败"
// @Router /api/captions/generate [post]
func (h *ContentController) GenerateCaptions(c *gin.Context) {
	var req dto.CaptionsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, styleStatus, bindError(err))
		return
	}

	ctx := service.WithRoute(c.Request.Context(), c.FullPath())
	data, err := h.contentService.GenerateCaptions(ctx, req)
	if err != nil {
		abortWithError(c, styleStatus, err)
		return
	}

	c.JSON(http.StatusOK, dto.ContentResp{Status: "SUCCESS", Data: data})
}

// GenerateCopywriting 按营销策略生成文案
// @Summary 按策略生成文案
// @Description 请求体是已确认的营销策略对象，原样嵌入 prompt
// @Tags Content
// @Accept json
// @Produce json
// @Param request body object true "营销策略"
// @Success 200 {object} dto.ContentResp
// @Failure 400 {object} dto.StatusErrorResp "请求体不是 JSON 对象"
// @Failure 500 {object} dto.StatusErrorResp "未配置或模型回复无法解析"
// @Failure 502 {object} dto.StatusErrorResp "上游失败"
// @Router /api/copywriting/generate [post]
func (h *ContentController) GenerateCopywriting(c *gin.Context) {
	var strategy map[string]any
	if err := c.ShouldBindJSON(&strategy); err != nil {
		abortWithError(c, styleStatus, bindError(err))
		return
	}
	if strategy == nil {
		abortWithError(c, styleStatus, &service.ValidationError{Fields: []string{"strategy"}})
		return
	}

	ctx := service.WithRoute(c.Request.Context(), c.FullPath())
	data, err := h.contentService.GenerateCopywriting(ctx, strategy)
	if err != nil {
		abortWithError(c, styleStatus, err)
		return
	}

	c.JSON(http.StatusOK, dto.ContentResp{Status: "SUCCESS", Data: data})
}
