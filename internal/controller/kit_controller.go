package controller

import (
	"bytes"
	"educrate/internal/model"
	"educrate/internal/service"
	"educrate/internal/util"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// 上传素材文档的大小上限
const maxSourceUploadBytes = 2 << 20

type KitController struct {
	Service *service.KitService
	Storage *service.StorageService
}

func NewKitController(svc *service.KitService, storage *service.StorageService) *KitController {
	return &KitController{Service: svc, Storage: storage}
}

// @Summary 创建学习包
// @Description 参数走查询串：user_id、topic、source_content、重复的 target_styles
// @Tags 学习包
// @Produce json
// @Param user_id query string true "用户ID"
// @Param topic query string true "主题"
// @Param source_content query string true "学习素材原文"
// @Param target_styles query []string false "目标学习风格，可重复"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/learning-kits [post]
func (c *KitController) Create(ctx *gin.Context) {
	styles := make([]model.LearningStyle, 0)
	for _, raw := range ctx.QueryArray("target_styles") {
		styles = append(styles, model.LearningStyle(raw))
	}

	req := service.CreateKitRequest{
		UserID:        ctx.Query("user_id"),
		Topic:         ctx.Query("topic"),
		SourceContent: ctx.Query("source_content"),
		TargetStyles:  styles,
	}
	if req.UserID == "" {
		util.BadRequest(ctx, "user_id is required")
		return
	}

	kit, err := c.Service.CreateKit(ctx.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidStyle):
			util.BadRequest(ctx, err.Error())
		default:
			util.BadRequest(ctx, err.Error())
		}
		return
	}

	util.Created(ctx, gin.H{"kit": kit, "content_count": len(kit.ContentItems)})
}

// @Summary 获取用户的学习包列表
// @Description 按创建时间倒序，最多 50 条
// @Tags 学习包
// @Produce json
// @Param id path string true "用户ID"
// @Success 200 {object} util.Response
// @Router /api/users/{id}/learning-kits [get]
func (c *KitController) ListByUser(ctx *gin.Context) {
	kits, err := c.Service.ListByUser(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"kits": kits})
}

// @Summary 获取学习包详情
// @Tags 学习包
// @Produce json
// @Param id path string true "学习包ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/learning-kits/{id} [get]
func (c *KitController) Get(ctx *gin.Context) {
	kit, err := c.Service.Get(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrKitNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, kit)
}

// @Summary 上传学习素材文档
// @Description 纯文本文档入库存储，返回可直接用于建包的 source_content
// @Tags 学习包
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "素材文件"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/learning-kits/source-upload [post]
func (c *KitController) UploadSource(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	if header.Size > maxSourceUploadBytes {
		util.BadRequest(ctx, "file too large")
		return
	}

	file, err := header.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxSourceUploadBytes))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	filename := fmt.Sprintf("sources/%s%s", model.GenerateUUID(), filepath.Ext(header.Filename))
	url, err := c.Storage.Upload(ctx.Request.Context(), filename, bytes.NewReader(content), int64(len(content)), "text/plain")
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"source_content": string(content), "url": url})
}
