package controller

import (
	"educrate/internal/service"
	"educrate/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	Service *service.AssessmentService
}

func NewAssessmentController(svc *service.AssessmentService) *AssessmentController {
	return &AssessmentController{Service: svc}
}

// @Summary 获取学习风格测评题
// @Description 固定五题，按 order 升序返回
// @Tags 测评
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/learning-assessment-questions [get]
func (c *AssessmentController) ListQuestions(ctx *gin.Context) {
	qs, err := c.Service.ListQuestions()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"questions": qs})
}

// @Summary 提交测评结果
// @Description 保存各风格得分和原始作答，并更新用户的主导学习风格
// @Tags 测评
// @Accept json
// @Produce json
// @Param id path string true "用户ID"
// @Param body body service.AssessmentSubmissionRequest true "测评结果"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/users/{id}/assessment [post]
func (c *AssessmentController) Submit(ctx *gin.Context) {
	var req service.AssessmentSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.SubmitAssessment(ctx.Param("id"), req)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
