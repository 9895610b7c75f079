package controller

import (
	"attendance_backend/internal/service"
	"attendance_backend/internal/util"
	"bytes"
	"encoding/json"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
)

// AttendanceController 课次点名
type AttendanceController struct {
	AttendanceService *service.AttendanceService
}

func NewAttendanceController(attendanceService *service.AttendanceService) *AttendanceController {
	return &AttendanceController{AttendanceService: attendanceService}
}

// MarkAttendanceRequest 单个学生点名，status 缺省为 present
// swagger:model MarkAttendanceRequest
type MarkAttendanceRequest struct {
	StudentID uint   `json:"student_id" binding:"required"`
	Status    string `json:"status"`
}

// BulkAttendanceItem 批量点名条目，逐条校验
// swagger:model BulkAttendanceItem
type BulkAttendanceItem struct {
	StudentID uint   `json:"student_id"`
	Status    string `json:"status"`
}

// BulkAttendanceRequest 批量点名请求，也可直接提交 BulkAttendanceItem 数组
// swagger:model BulkAttendanceRequest
type BulkAttendanceRequest struct {
	Attendances []BulkAttendanceItem `json:"attendances"`
}

// UpdateAttendanceRequest 修改出勤状态
// swagger:model UpdateAttendanceRequest
type UpdateAttendanceRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListAttendances godoc
// @Summary 课次点名册
// @Description 包含学生姓名，按姓、名排序
// @Tags 点名
// @Produce json
// @Param sessionId path int true "课次ID"
// @Success 200 {object} util.Response{data=[]model.Attendance} "成功"
// @Failure 404 {object} util.Response "课次不存在"
// @Router /api/session/{sessionId}/attendances [get]
func (c *AttendanceController) ListAttendances(ctx *gin.Context) {
	ids, ok := pathIDs(ctx, "sessionId")
	if !ok {
		return
	}

	rows, err := c.AttendanceService.ListForSession(ctx.Request.Context(), ids[0])
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, rows)
}

// MarkAttendance godoc
// @Summary 点名（单个或批量）
// @Description 请求体为对象时按单个学生点名：新建返回 201，覆盖已有记录返回 200。
// @Description 请求体为数组或 {"attendances":[...]} 时批量点名，按学生去重（后者覆盖前者），
// @Description 合法条目一次性写入，非法条目在 errors 中返回。重复提交结果不变
// @Tags 点名
// @Accept json
// @Produce json
// @Param sessionId path int true "课次ID"
// @Param request body MarkAttendanceRequest true "点名信息"
// @Success 200 {object} util.Response{data=service.BulkResult} "批量点名结果"
// @Success 201 {object} util.Response{data=model.Attendance} "新建出勤记录"
// @Failure 404 {object} util.Response "课次不存在"
// @Failure 422 {object} util.Response "参数校验失败"
// @Router /api/session/{sessionId}/attendances [post]
func (c *AttendanceController) MarkAttendance(ctx *gin.Context) {
	ids, ok := pathIDs(ctx, "sessionId")
	if !ok {
		return
	}
	sessionID := ids[0]

	body, err := ctx.GetRawData()
	if err != nil {
		handleError(ctx, util.NewValidationError("body", "could not be read"))
		return
	}
	body = bytes.TrimSpace(body)

	if len(body) > 0 && body[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(body, &items); err != nil {
			handleError(ctx, util.TranslateBindError(err))
			return
		}
		c.markBulk(ctx, sessionID, items)
		return
	}

	var probe struct {
		Attendances *[]json.RawMessage `json:"attendances"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		handleError(ctx, util.TranslateBindError(err))
		return
	}
	if probe.Attendances != nil {
		c.markBulk(ctx, sessionID, *probe.Attendances)
		return
	}

	var req MarkAttendanceRequest
	if err := json.Unmarshal(body, &req); err != nil {
		handleError(ctx, util.TranslateBindError(err))
		return
	}
	if err := util.ValidateStruct(&req); err != nil {
		handleError(ctx, err)
		return
	}

	row, created, err := c.AttendanceService.MarkOne(ctx.Request.Context(), sessionID, req.StudentID, req.Status)
	if err != nil {
		handleError(ctx, err)
		return
	}
	if created {
		util.Created(ctx, row)
		return
	}
	util.Success(ctx, row)
}

// markBulk 条目逐个解码，类型不对的条目只影响自身
func (c *AttendanceController) markBulk(ctx *gin.Context, sessionID uint, items []json.RawMessage) {
	entries := make([]service.BulkEntry, len(items))
	for i, raw := range items {
		var it BulkAttendanceItem
		if err := json.Unmarshal(raw, &it); err != nil {
			entries[i] = service.BulkEntry{Malformed: decodeReason(err)}
			continue
		}
		entries[i] = service.BulkEntry{StudentID: it.StudentID, Status: it.Status}
	}

	result, err := c.AttendanceService.MarkBulk(ctx.Request.Context(), sessionID, entries)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// UpdateAttendance godoc
// @Summary 修改出勤状态
// @Tags 点名
// @Accept json
// @Produce json
// @Param sessionId path int true "课次ID"
// @Param attendanceId path int true "出勤记录ID"
// @Param request body UpdateAttendanceRequest true "新的状态"
// @Success 200 {object} util.Response{data=model.Attendance} "成功"
// @Failure 404 {object} util.Response "记录不存在或不属于该课次"
// @Failure 422 {object} util.Response "状态不合法"
// @Router /api/session/{sessionId}/attendances/{attendanceId} [put]
func (c *AttendanceController) UpdateAttendance(ctx *gin.Context) {
	ids, ok := pathIDs(ctx, "sessionId", "attendanceId")
	if !ok {
		return
	}
	var req UpdateAttendanceRequest
	if !bindJSON(ctx, &req) {
		return
	}

	row, err := c.AttendanceService.UpdateStatus(ctx.Request.Context(), ids[0], ids[1], req.Status)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, row)
}

// DeleteAttendance godoc
// @Summary 删除出勤记录
// @Tags 点名
// @Param sessionId path int true "课次ID"
// @Param attendanceId path int true "出勤记录ID"
// @Success 204 "删除成功"
// @Failure 404 {object} util.Response "记录不存在或不属于该课次"
// @Router /api/session/{sessionId}/attendances/{attendanceId} [delete]
func (c *AttendanceController) DeleteAttendance(ctx *gin.Context) {
	ids, ok := pathIDs(ctx, "sessionId", "attendanceId")
	if !ok {
		return
	}

	if err := c.AttendanceService.Remove(ctx.Request.Context(), ids[0], ids[1]); err != nil {
		handleError(ctx, err)
		return
	}
	util.NoContent(ctx)
}

func decodeReason(err error) string {
	ve, ok := util.IsValidationError(util.TranslateBindError(err))
	if !ok || !ve.HasErrors() {
		return "entry is malformed"
	}
	parts := make([]string, 0, len(ve.Fields))
	for field, msg := range ve.Fields {
		if field == "body" {
			field = "entry"
		}
		parts = append(parts, field+" "+msg)
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}
