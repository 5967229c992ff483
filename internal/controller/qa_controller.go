package controller

import (
	"educrate/internal/service"
	"educrate/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type QAController struct {
	Service *service.QAService
}

func NewQAController(svc *service.QAService) *QAController {
	return &QAController{Service: svc}
}

// @Summary 针对学习包提问
// @Description 以学习包原文为上下文生成答案，按用户主导风格定制
// @Tags 问答
// @Accept json
// @Produce json
// @Param body body service.AskRequest true "问题"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/qa-sessions [post]
func (c *QAController) Ask(ctx *gin.Context) {
	var req service.AskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.Service.Ask(req)
	if err != nil {
		if errors.Is(err, util.ErrKitNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"answer":     session.Answer,
		"session_id": session.ID,
	})
}
