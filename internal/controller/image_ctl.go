package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brandpulse/internal/api/dto"
	"brandpulse/internal/service"
)

type ImageController struct {
	imageService service.ImageGenerator
}

func NewImageController(imageService service.ImageGenerator) *ImageController {
	return &ImageController{imageService: imageService}
}

// Generate 生成海报
// @Summary 生成海报图片
// @Description 调用 Pollinations 按提示词生成图片，直接返回 PNG 字节
// @Tags Image
// @Produce png
// @Produce json
// @Param prompt query string true "提示词"
// @Param width query int false "宽度 (默认 768)"
// @Param height query int false "高度 (默认 1024)"
// @Success 200 {file} binary "image/png"
// @Failure 400 {object} dto.ErrorResp "参数错误"
// @Failure 502 {object} dto.ErrorResp "上游失败"
// @Failure 504 {object} dto.ErrorResp "上游超时"
// @Router /api/generate-image [get]
func (h *ImageController) Generate(c *gin.Context) {
	var req dto.GenerateImageReq
	if err := c.ShouldBindQuery(&req); err != nil {
		abortWithError(c, styleError, bindError(err))
		return
	}

	ctx := service.WithRoute(c.Request.Context(), c.FullPath())
	img, err := h.imageService.Generate(ctx, req.Prompt, req.Width, req.Height)
	if err != nil {
		abortWithError(c, styleError, err)
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "image/png", img)
}
