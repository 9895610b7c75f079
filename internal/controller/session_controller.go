package controller

import (
	"attendance_backend/internal/service"
	"attendance_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	SessionService *service.SessionService
}

func NewSessionController(sessionService *service.SessionService) *SessionController {
	return &SessionController{SessionService: sessionService}
}

// CreateSessionRequest 创建课次请求，日期格式 YYYY-MM-DD，时间格式 HH:MM
// swagger:model CreateSessionRequest
type CreateSessionRequest struct {
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" binding:"omitempty,datetime=15:04"`
	EndTime   string `json:"end_time" binding:"omitempty,datetime=15:04"`
	Topic     string `json:"topic" binding:"max=255"`
}

// UpdateSessionRequest 更新课次请求
// swagger:model UpdateSessionRequest
type UpdateSessionRequest struct {
	Date      *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	StartTime *string `json:"start_time" binding:"omitempty"`
	EndTime   *string `json:"end_time" binding:"omitempty"`
	Topic     *string `json:"topic" binding:"omitempty,max=255"`
}

// ListSessions godoc
// @Summary 分组的课次列表
// @Tags 课次管理
// @Produce json
// @Param groupId path int true "分组ID"
// @Success 200 {object} util.Response{data=[]model.Session} "成功"
// @Failure 404 {object} util.Response "分组不存在"
// @Router /api/groups/{groupId}/session [get]
func (c *SessionController) ListSessions(ctx *gin.Context) {
	ids, ok := pathIDs(ctx, "groupId")
	if !ok {
		return
	}

	sessions, err := c.SessionService.ListByGroup(ctx.Request.Context(), ids[0])
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, sessions)
}

// GetSession godoc
// @Summary 课次详情
// @Tags 课次管理
// @Produce json
// @Param groupId path int true "分组ID"
// @Param sessionId path int true "课次ID"
// @Success 200 {object} util.Response{data=model.Session} "成功"
// @Failure 404 {object} util.Response "课次不存在或不属于该分组"
// @Router /api/groups/{groupId}/session/{sessionId} [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	ids, ok := pathIDs(ctx, "groupId", "sessionId")
	if !ok {
		return
	}

	session, err := c.SessionService.Get(ctx.Request.Context(), ids[0], ids[1])
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, session)
}

// CreateSession godoc
// @Summary 创建课次
// @Tags 课次管理
// @Accept json
// @Produce json
// @Param groupId path int true "分组ID"
// @Param request body CreateSessionRequest true "课次信息"
// @Success 201 {object} util.Response{data=model.Session} "创建成功"
// @Failure 404 {object} util.Response "分组不存在"
// @Failure 422 {object} util.Response "参数校验失败"
// @Router /api/groups/{groupId}/session [post]
func (c *SessionController) CreateSession(ctx *gin.Context) {
	ids, ok := pathIDs(ctx, "groupId")
	if !ok {
		return
	}
	var req CreateSessionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	session, err := c.SessionService.Create(ctx.Request.Context(), ids[0], service.SessionInput{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Topic:     req.Topic,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Created(ctx, session)
}

// UpdateSession godoc
// @Summary 更新课次
// @Description start_time/end_time 传空字符串表示清空
// @Tags 课次管理
// @Accept json
// @Produce json
// @Param groupId path int true "分组ID"
// @Param sessionId path int true "课次ID"
// @Param request body UpdateSessionRequest true "需要修改的字段"
// @Success 200 {object} util.Response{data=model.Session} "成功"
// @Failure 404 {object} util.Response "课次不存在"
// @Failure 422 {object} util.Response "参数校验失败"
// @Router /api/groups/{groupId}/session/{sessionId} [put]
func (c *SessionController) UpdateSession(ctx *gin.Context) {
	ids, ok := pathIDs(ctx, "groupId", "sessionId")
	if !ok {
		return
	}
	var req UpdateSessionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	session, err := c.SessionService.Update(ctx.Request.Context(), ids[0], ids[1], service.SessionUpdate{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Topic:     req.Topic,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, session)
}

// DeleteSession godoc
// @Summary 删除课次
// @Description 课次已有出勤记录时返回 409
// @Tags 课次管理
// @Param groupId path int true "分组ID"
// @Param sessionId path int true "课次ID"
// @Success 204 "删除成功"
// @Failure 404 {object} util.Response "课次不存在"
// @Failure 409 {object} util.Response "存在出勤记录"
// @Router /api/groups/{groupId}/session/{sessionId} [delete]
func (c *SessionController) DeleteSession(ctx *gin.Context) {
	ids, ok := pathIDs(ctx, "groupId", "sessionId")
	if !ok {
		return
	}

	if err := c.SessionService.Delete(ctx.Request.Context(), ids[0], ids[1]); err != nil {
		handleError(ctx, err)
		return
	}
	util.NoContent(ctx)
}
