package controller

import (
	"educrate/internal/service"
	"educrate/internal/util"

	"github.com/gin-gonic/gin"
)

type MotivationController struct {
	Service *service.MotivationService
}

func NewMotivationController(svc *service.MotivationService) *MotivationController {
	return &MotivationController{Service: svc}
}

// @Summary 获取当前激励短句
// @Tags 激励
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/motivation [get]
func (c *MotivationController) GetCurrent(ctx *gin.Context) {
	content, err := c.Service.GetCurrentMotivation()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"content": content})
}
