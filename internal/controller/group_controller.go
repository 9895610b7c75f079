package controller

import (
	"attendance_backend/internal/service"
	"attendance_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// GroupController 分组管理，分组只能通过所属班级访问
type GroupController struct {
	GroupService *service.GroupService
}

func NewGroupController(groupService *service.GroupService) *GroupController {
	return &GroupController{GroupService: groupService}
}

// CreateGroupRequest 创建分组请求，所属班级取自路径
// swagger:model CreateGroupRequest
type CreateGroupRequest struct {
	Name string `json:"name" binding:"required,max=255"`
	Type string `json:"type" binding:"required,max=255"`
}

// UpdateGroupRequest 更新分组请求
// swagger:model UpdateGroupRequest
type UpdateGroupRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=255"`
	Type *string `json:"type" binding:"omitempty,min=1,max=255"`
}

// ListAllGroups godoc
// @Summary 全部分组
// @Tags 分组管理
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Group} "成功"
// @Router /api/groups [get]
func (c *GroupController) ListAllGroups(ctx *gin.Context) {
	groups, err := c.GroupService.ListAll(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, groups)
}

// ListGroups godoc
// @Summary 班级下的分组
// @Tags 分组管理
// @Produce json
// @Param classId path int true "班级ID"
// @Success 200 {object} util.Response{data=[]model.Group} "成功"
// @Failure 404 {object} util.Response "班级不存在"
// @Router /api/classes/{classId}/groups [get]
func (c *GroupController) ListGroups(ctx *gin.Context) {
	ids, ok := pathIDs(ctx, "classId")
	if !ok {
		return
	}

	groups, err := c.GroupService.ListByClass(ctx.Request.Context(), ids[0])
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, groups)
}

// GetGroup godoc
// @Summary 分组详情
// @Tags 分组管理
// @Produce json
// @Param classId path int true "班级ID"
// @Param groupId path int true "分组ID"
// @Success 200 {object} util.Response{data=model.Group} "成功"
// @Failure 404 {object} util.Response "分组不存在或不属于该班级"
// @Router /api/classes/{classId}/groups/{groupId} [get]
func (c *GroupController) GetGroup(ctx *gin.Context) {
	ids, ok := pathIDs(ctx, "classId", "groupId")
	if !ok {
		return
	}

	group, err := c.GroupService.Get(ctx.Request.Context(), ids[0], ids[1])
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, group)
}

// CreateGroup godoc
// @Summary 创建分组
// @Tags 分组管理
// @Accept json
// @Produce json
// @Param classId path int true "班级ID"
// @Param request body CreateGroupRequest true "分组信息"
// @Success 201 {object} util.Response{data=model.Group} "创建成功"
// @Failure 404 {object} util.Response "班级不存在"
// @Failure 422 {object} util.Response "参数校验失败"
// @Router /api/classes/{classId}/groups [post]
func (c *GroupController) CreateGroup(ctx *gin.Context) {
	ids, ok := pathIDs(ctx, "classId")
	if !ok {
		return
	}
	var req CreateGroupRequest
	if !bindJSON(ctx, &req) {
		return
	}

	group, err := c.GroupService.Create(ctx.Request.Context(), ids[0], req.Name, req.Type)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Created(ctx, group)
}

// UpdateGroup godoc
// @Summary 更新分组
// @Tags 分组管理
// @Accept json
// @Produce json
// @Param classId path int true "班级ID"
// @Param groupId path int true "分组ID"
// @Param request body UpdateGroupRequest true "需要修改的字段"
// @Success 200 {object} util.Response{data=model.Group} "成功"
// @Failure 404 {object} util.Response "分组不存在"
// @Failure 422 {object} util.Response "参数校验失败"
// @Router /api/classes/{classId}/groups/{groupId} [put]
func (c *GroupController) UpdateGroup(ctx *gin.Context) {
	ids, ok := pathIDs(ctx, "classId", "groupId")
	if !ok {
		return
	}
	var req UpdateGroupRequest
	if !bindJSON(ctx, &req) {
		return
	}

	group, err := c.GroupService.Update(ctx.Request.Context(), ids[0], ids[1], service.GroupUpdate{
		Name: req.Name,
		Type: req.Type,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, group)
}

// DeleteGroup godoc
// @Summary 删除分组
// @Description 分组下仍有学生或课次时返回 409
// @Tags 分组管理
// @Param classId path int true "班级ID"
// @Param groupId path int true "分组ID"
// @Success 204 "删除成功"
// @Failure 404 {object} util.Response "分组不存在"
// @Failure 409 {object} util.Response "存在关联学生或课次"
// @Router /api/classes/{classId}/groups/{groupId} [delete]
func (c *GroupController) DeleteGroup(ctx *gin.Context) {
	ids, ok := pathIDs(ctx, "classId", "groupId")
	if !ok {
		return
	}

	if err := c.GroupService.Delete(ctx.Request.Context(), ids[0], ids[1]); err != nil {
		handleError(ctx, err)
		return
	}
	util.NoContent(ctx)
}
