package controller

import (
	"educrate/internal/service"
	"educrate/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type StudySessionController struct {
	Service *service.StudySessionService
}

func NewStudySessionController(svc *service.StudySessionService) *StudySessionController {
	return &StudySessionController{Service: svc}
}

// @Summary 开始学习会话
// @Description 记录心情/时长/精力/专注度并返回学习建议
// @Tags 学习会话
// @Accept json
// @Produce json
// @Param id path string true "用户ID"
// @Param body body service.StartSessionRequest true "会话参数"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/users/{id}/study-session [post]
func (c *StudySessionController) Start(ctx *gin.Context) {
	var req service.StartSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.Service.Start(ctx.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidMood):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"session_id":  session.ID,
		"suggestions": session.Suggestion,
	})
}

// @Summary 结束学习会话
// @Description 显式关闭会话，记录结束时间
// @Tags 学习会话
// @Produce json
// @Param id path string true "会话ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response "会话已结束"
// @Router /api/study-sessions/{id}/end [post]
func (c *StudySessionController) End(ctx *gin.Context) {
	err := c.Service.End(ctx.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSessionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrSessionEnded):
			util.Error(ctx, 409, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"ended": true})
}
