package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brandpulse/internal/api/dto"
)

type HealthController struct {
	service string
}

func NewHealthController(service string) *HealthController {
	return &HealthController{service: service}
}

// Check 健康检查
// @Summary 健康检查
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResp
// @Router /health [get]
func (h *HealthController) Check(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResp{Status: "OK", Service: h.service})
}
