package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brandpulse/internal/api/dto"
	"brandpulse/internal/service"
)

type StrategyController struct {
	strategyService *service.StrategyService
}

func NewStrategyController(strategyService *service.StrategyService) *StrategyController {
	return &StrategyController{strategyService: strategyService}
}

// Generate 生成营销策略
// @Summary 根据品牌简报生成营销策略
// @Description 返回的策略对象里所有前端会读取的字段都保证存在
// @Tags Strategy
// @Accept json
// @Produce json
// @Param request body dto.StrategyReq true "品牌简报"
// @Success 200 {object} dto.StrategyResp
// @Failure 400 {object} dto.SuccessErrorResp "参数错误"
// @Failure 500 {object} dto.SuccessErrorResp "未配置或模型回复无法解析"
// @Failure 502 {object} dto.SuccessErrorResp "上游失败"
// @Router /ai-text [post]
func (h *StrategyController) Generate(c *gin.Context) {
	var req dto.StrategyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, styleSuccess, bindError(err))
		return
	}

	ctx := service.WithRoute(c.Request.Context(), c.FullPath())
	data, err := h.strategyService.Generate(ctx, req)
	if err != nil {
		abortWithError(c, styleSuccess, err)
		return
	}

	c.JSON(http.StatusOK, dto.StrategyResp{
		Success: true,
		Message: "Campaign strategy generated successfully",
		Data:    data,
	})
}
