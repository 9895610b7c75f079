package controller

import (
	"attendance_backend/internal/service"
	"attendance_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ClassController 班级管理
type ClassController struct {
	ClassService *service.ClassService
}

func NewClassController(classService *service.ClassService) *ClassController {
	return &ClassController{ClassService: classService}
}

// CreateClassRequest 创建班级请求
// swagger:model CreateClassRequest
type CreateClassRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// UpdateClassRequest 更新班级请求，未提供的字段保持不变
// swagger:model UpdateClassRequest
type UpdateClassRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=255"`
}

// ListClasses godoc
// @Summary 班级列表
// @Tags 班级管理
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Class} "成功"
// @Router /api/classes [get]
func (c *ClassController) ListClasses(ctx *gin.Context) {
	classes, err := c.ClassService.List(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, classes)
}

// GetClass godoc
// @Summary 班级详情
// @Tags 班级管理
// @Produce json
// @Param classId path int true "班级ID"
// @Success 200 {object} util.Response{data=model.Class} "成功"
// @Failure 404 {object} util.Response "班级不存在"
// @Router /api/classes/{classId} [get]
func (c *ClassController) GetClass(ctx *gin.Context) {
	ids, ok := pathIDs(ctx, "classId")
	if !ok {
		return
	}

	class, err := c.ClassService.Get(ctx.Request.Context(), ids[0])
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, class)
}

// CreateClass godoc
// @Summary 创建班级
// @Tags 班级管理
// @Accept json
// @Produce json
// @Param request body CreateClassRequest true "班级信息"
// @Success 201 {object} util.Response{data=model.Class} "创建成功"
// @Failure 422 {object} util.Response "参数校验失败"
// @Router /api/classes [post]
func (c *ClassController) CreateClass(ctx *gin.Context) {
	var req CreateClassRequest
	if !bindJSON(ctx, &req) {
		return
	}

	class, err := c.ClassService.Create(ctx.Request.Context(), req.Name)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Created(ctx, class)
}

// UpdateClass godoc
// @Summary 更新班级
// @Tags 班级管理
// @Accept json
// @Produce json
// @Param classId path int true "班级ID"
// @Param request body UpdateClassRequest true "需要修改的字段"
// @Success 200 {object} util.Response{data=model.Class} "成功"
// @Failure 404 {object} util.Response "班级不存在"
// @Failure 422 {object} util.Response "参数校验失败"
// @Router /api/classes/{classId} [put]
func (c *ClassController) UpdateClass(ctx *gin.Context) {
	ids, ok := pathIDs(ctx, "classId")
	if !ok {
		return
	}
	var req UpdateClassRequest
	if !bindJSON(ctx, &req) {
		return
	}

	class, err := c.ClassService.Update(ctx.Request.Context(), ids[0], service.ClassUpdate{Name: req.Name})
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, class)
}

// DeleteClass godoc
// @Summary 删除班级
// @Description 班级下仍有分组时返回 409
// @Tags 班级管理
// @Param classId path int true "班级ID"
// @Success 204 "删除成功"
// @Failure 404 {object} util.Response "班级不存在"
// @Failure 409 {object} util.Response "存在关联分组"
// @Router /api/classes/{classId} [delete]
func (c *ClassController) DeleteClass(ctx *gin.Context) {
	ids, ok := pathIDs(ctx, "classId")
	if !ok {
		return
	}

	if err := c.ClassService.Delete(ctx.Request.Context(), ids[0]); err != nil {
		handleError(ctx, err)
		return
	}
	util.NoContent(ctx)
}
