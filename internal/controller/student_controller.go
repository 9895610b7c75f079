package controller

import (
	"attendance_backend/internal/service"
	"attendance_backend/internal/util"
	"fmt"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
)

// StudentController 学生管理与批量导入
type StudentController struct {
	StudentService *service.StudentService
	ImportService  *service.ImportService
}

func NewStudentController(studentService *service.StudentService, importService *service.ImportService) *StudentController {
	return &StudentController{StudentService: studentService, ImportService: importService}
}

// CreateStudentRequest 创建学生请求
// swagger:model CreateStudentRequest
type CreateStudentRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	FName   string `json:"fname" binding:"required,max=255"`
	GroupID uint   `json:"group_id" binding:"required"`
}

// UpdateStudentRequest 更新学生请求，修改 group_id 即转组
// swagger:model UpdateStudentRequest
type UpdateStudentRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=255"`
	FName   *string `json:"fname" binding:"omitempty,min=1,max=255"`
	GroupID *uint   `json:"group_id" binding:"omitempty,gt=0"`
}

// ImportStudentItem 列表导入的一条数据，空字段按导入策略处理
// swagger:model ImportStudentItem
type ImportStudentItem struct {
	FName string `json:"fname"`
	Name  string `json:"name"`
}

// ImportStudentsRequest 列表导入请求；路径中带分组时忽略 group_id
// swagger:model ImportStudentsRequest
type ImportStudentsRequest struct {
	GroupID  uint                `json:"group_id"`
	Students []ImportStudentItem `json:"students"`
}

func (r ImportStudentsRequest) entries() []service.ImportEntry {
	out := make([]service.ImportEntry, len(r.Students))
	for i, s := range r.Students {
		out[i] = service.ImportEntry{FName: s.FName, Name: s.Name}
	}
	return out
}

// ListStudents godoc
// @Summary 分组的学生列表
// @Tags 学生管理
// @Produce json
// @Param groupId path int true "分组ID"
// @Success 200 {object} util.Response{data=[]model.Student} "成功"
// @Failure 404 {object} util.Response "分组不存在"
// @Router /api/students/{groupId} [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	ids, ok := pathIDs(ctx, "groupId")
	if !ok {
		return
	}

	students, err := c.StudentService.ListByGroup(ctx.Request.Context(), ids[0])
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, students)
}

// CreateStudent godoc
// @Summary 创建学生
// @Tags 学生管理
// @Accept json
// @Produce json
// @Param request body CreateStudentRequest true "学生信息"
// @Success 201 {object} util.Response{data=model.Student} "创建成功"
// @Failure 422 {object} util.Response "参数校验失败或分组不存在"
// @Router /api/students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req CreateStudentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	student, err := c.StudentService.Create(ctx.Request.Context(), service.StudentInput{
		Name:    req.Name,
		FName:   req.FName,
		GroupID: req.GroupID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Created(ctx, student)
}

// UpdateStudent godoc
// @Summary 更新学生
// @Description 已有出勤记录的学生不能转到其他分组，返回 409
// @Tags 学生管理
// @Accept json
// @Produce json
// @Param studentId path int true "学生ID"
// @Param request body UpdateStudentRequest true "需要修改的字段"
// @Success 200 {object} util.Response{data=model.Student} "成功"
// @Failure 404 {object} util.Response "学生不存在"
// @Failure 409 {object} util.Response "学生已有出勤记录，不能转组"
// @Failure 422 {object} util.Response "参数校验失败"
// @Router /api/students/{studentId} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	ids, ok := pathIDs(ctx, "studentId")
	if !ok {
		return
	}
	var req UpdateStudentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	student, err := c.StudentService.Update(ctx.Request.Context(), ids[0], service.StudentUpdate{
		Name:    req.Name,
		FName:   req.FName,
		GroupID: req.GroupID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, student)
}

// DeleteStudent godoc
// @Summary 删除学生
// @Description 学生已有出勤记录时返回 409
// @Tags 学生管理
// @Param studentId path int true "学生ID"
// @Success 204 "删除成功"
// @Failure 404 {object} util.Response "学生不存在"
// @Failure 409 {object} util.Response "存在出勤记录"
// @Router /api/students/{studentId} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	ids, ok := pathIDs(ctx, "studentId")
	if !ok {
		return
	}

	if err := c.StudentService.Delete(ctx.Request.Context(), ids[0]); err != nil {
		handleError(ctx, err)
		return
	}
	util.NoContent(ctx)
}

// ImportToGroup godoc
// @Summary 批量导入学生到分组
// @Description multipart 上传 file 字段（csv/xls/xlsx，首行为表头，需包含 name 和/或 family name 列），
// @Description 或提交 JSON {"students":[{"fname":"","name":""}]}。导入只追加，不去重
// @Tags 学生管理
// @Accept multipart/form-data,json
// @Produce json
// @Param groupId path int true "分组ID"
// @Param file formData file false "名单文件"
// @Param request body ImportStudentsRequest false "学生列表"
// @Success 201 {object} util.Response{data=service.ImportResult} "导入完成"
// @Failure 404 {object} util.Response "分组不存在"
// @Failure 422 {object} util.Response "文件无法识别或参数校验失败"
// @Router /api/students/{groupId}/import [post]
func (c *StudentController) ImportToGroup(ctx *gin.Context) {
	ids, ok := pathIDs(ctx, "groupId")
	if !ok {
		return
	}
	groupID := ids[0]

	if strings.HasPrefix(ctx.ContentType(), "multipart/") {
		c.importFile(ctx, groupID)
		return
	}

	var req ImportStudentsRequest
	if !bindJSON(ctx, &req) {
		return
	}
	result, err := c.ImportService.ImportList(ctx.Request.Context(), groupID, req.entries())
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Created(ctx, result)
}

// ImportList godoc
// @Summary 按列表批量导入学生
// @Description 请求体中 group_id 必填，缺失时不会创建任何学生
// @Tags 学生管理
// @Accept json
// @Produce json
// @Param request body ImportStudentsRequest true "分组与学生列表"
// @Success 201 {object} util.Response{data=service.ImportResult} "导入完成"
// @Failure 404 {object} util.Response "分组不存在"
// @Failure 422 {object} util.Response "参数校验失败"
// @Router /api/students/import [post]
func (c *StudentController) ImportList(ctx *gin.Context) {
	var req ImportStudentsRequest
	if !bindJSON(ctx, &req) {
		return
	}

	result, err := c.ImportService.ImportList(ctx.Request.Context(), req.GroupID, req.entries())
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Created(ctx, result)
}

// ListImports godoc
// @Summary 分组的导入记录
// @Tags 学生管理
// @Produce json
// @Param groupId path int true "分组ID"
// @Success 200 {object} util.Response{data=[]model.StudentImport} "成功"
// @Failure 404 {object} util.Response "分组不存在"
// @Router /api/students/{groupId}/imports [get]
func (c *StudentController) ListImports(ctx *gin.Context) {
	ids, ok := pathIDs(ctx, "groupId")
	if !ok {
		return
	}

	imports, err := c.ImportService.ListImports(ctx.Request.Context(), ids[0])
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Success(ctx, imports)
}

func (c *StudentController) importFile(ctx *gin.Context, groupID uint) {
	fh, err := ctx.FormFile(util.ImportFormField)
	if err != nil {
		handleError(ctx, util.NewValidationError(util.ImportFormField, "is required"))
		return
	}

	limit := c.ImportService.Policy().MaxFileSize()
	if fh.Size > limit {
		handleError(ctx, util.NewValidationError(util.ImportFormField, fmt.Sprintf("may not be larger than %d bytes", limit)))
		return
	}

	f, err := fh.Open()
	if err != nil {
		handleError(ctx, err)
		return
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		handleError(ctx, err)
		return
	}

	result, err := c.ImportService.ImportFile(ctx.Request.Context(), groupID, fh.Filename, content)
	if err != nil {
		handleError(ctx, err)
		return
	}
	util.Created(ctx, result)
}
