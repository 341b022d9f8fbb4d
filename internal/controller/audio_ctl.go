package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"brandpulse/internal/api/dto"
	"brandpulse/internal/service"
)

type AudioController struct {
	audioService *service.AudioAdService
}

func NewAudioController(audioService *service.AudioAdService) *AudioController {
	return &AudioController{audioService: audioService}
}

// AutoAd 生成音频广告
// @Summary 生成 20 秒音频广告
// @Description Gemini 写脚本，ElevenLabs 配音，返回 mp3 附件
// @Tags Audio
// @Accept json
// @Produce audio/mpeg
// @Produce json
// @Param request body dto.AudioAdReq true "公司与产品"
// @Success 200 {file} binary "audio/mpeg"
// @Failure 400 {object} dto.ErrorResp "参数错误"
// @Failure 500 {object} dto.ErrorResp "凭证未配置"
// @Failure 502 {object} dto.ErrorResp "上游失败"
// @Router /api/audio/auto-ad [post]
func (h *AudioController) AutoAd(c *gin.Context) {
	var req dto.AudioAdReq
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, styleError, bindError(err))
		return
	}

	ctx := service.WithRoute(c.Request.Context(), c.FullPath())
	ad, err := h.audioService.Generate(ctx, req)
	if err != nil {
		abortWithError(c, styleError, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, ad.Filename))
	c.Data(http.StatusOK, "audio/mpeg", ad.Audio)
}
