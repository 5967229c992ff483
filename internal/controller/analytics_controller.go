package controller

import (
	"educrate/internal/service"
	"educrate/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Service *service.AnalyticsService
}

func NewAnalyticsController(svc *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Service: svc}
}

// @Summary 获取用户学习统计
// @Tags 统计
// @Produce json
// @Param id path string true "用户ID"
// @Success 200 {object} util.Response
// @Router /api/users/{id}/analytics [get]
func (c *AnalyticsController) ForUser(ctx *gin.Context) {
	analytics, err := c.Service.ForUser(ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, analytics)
}
