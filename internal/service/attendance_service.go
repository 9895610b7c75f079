package service

import (
	"attendance_backend/internal/model"
	"attendance_backend/internal/repository"
	"attendance_backend/internal/util"
	"attendance_backend/pkg/logger"
	"attendance_backend/pkg/monitoring"
	"attendance_backend/pkg/tracing"
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AttendanceService struct {
	Repo        *repository.AttendanceRepository
	SessionRepo *repository.SessionRepository
	StudentRepo *repository.StudentRepository
	Cache       *repository.RosterCacheRepository
}

func NewAttendanceService(
	repo *repository.AttendanceRepository,
	sessionRepo *repository.SessionRepository,
	studentRepo *repository.StudentRepository,
	cache *repository.RosterCacheRepository,
) *AttendanceService {
	return &AttendanceService{
		Repo:        repo,
		SessionRepo: sessionRepo,
		StudentRepo: studentRepo,
		Cache:       cache,
	}
}

// BulkEntry Status 为空时按 present 处理；Malformed 非空表示条目无法解析，直接记为错误
type BulkEntry struct {
	StudentID uint
	Status    string
	Malformed string
}

// BulkEntryError 批量点名中被拒绝的条目，Index 为请求列表中的下标
type BulkEntryError struct {
	Index     int    `json:"index"`
	StudentID uint   `json:"student_id"`
	Reason    string `json:"reason"`
}

type BulkResult struct {
	Applied     int                `json:"applied"`
	Attendances []model.Attendance `json:"attendances"`
	Errors      []BulkEntryError   `json:"errors"`
}

// ParseStatus 空串返回默认值 present，其余必须在固定取值内
func ParseStatus(raw string) (model.AttendanceStatus, bool) {
	if strings.TrimSpace(raw) == "" {
		return model.AttendancePresent, true
	}
	status := model.AttendanceStatus(raw)
	return status, status.Valid()
}

// statusLabel 非法取值统一记为 invalid，避免指标标签无限增长
func statusLabel(status model.AttendanceStatus, ok bool) string {
	if !ok {
		return "invalid"
	}
	return string(status)
}

func statusMessage() string {
	names := make([]string, len(model.AttendanceStatuses))
	for i, st := range model.AttendanceStatuses {
		names[i] = string(st)
	}
	return "must be one of: " + strings.Join(names, ", ")
}

// MarkOne 为单个学生点名。记录不存在时新建，存在时覆盖 status。
// created 表示本次是否新建，仅用于响应码：写入前未读到记录，且写入后 created_at 与 updated_at 相同。
// 并发首次点名同一学生时，至多一个请求得到 created
func (s *AttendanceService) MarkOne(ctx context.Context, sessionID, studentID uint, rawStatus string) (*model.Attendance, bool, error) {
	ctx, span := tracing.StartSpan(ctx, "AttendanceService.MarkOne",
		attribute.Int64("session.id", int64(sessionID)),
		attribute.Int64("student.id", int64(studentID)),
	)
	var err error
	defer func() { tracing.EndSpan(span, err) }()

	session, err := s.session(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}

	verr := &util.ValidationError{}
	status, ok := ParseStatus(rawStatus)
	if !ok {
		verr.Add("status", statusMessage())
	}
	if reason, ferr := s.checkStudent(ctx, session, studentID); ferr != nil {
		err = ferr
		return nil, false, err
	} else if reason != "" {
		verr.Add("student_id", reason)
	}
	if verr.HasErrors() {
		monitoring.AttendanceMarks.WithLabelValues(statusLabel(status, ok), "rejected").Inc()
		err = verr
		return nil, false, err
	}

	existing, err := s.Repo.FindBySessionAndStudents(ctx, sessionID, []uint{studentID})
	if err != nil {
		return nil, false, err
	}

	row := model.Attendance{SessionID: sessionID, StudentID: studentID, Status: status}
	if err = s.Repo.Upsert(ctx, []model.Attendance{row}); err != nil {
		return nil, false, err
	}
	s.Cache.Invalidate(ctx, sessionID)
	monitoring.AttendanceMarks.WithLabelValues(string(status), "applied").Inc()

	rows, err := s.Repo.FindBySessionAndStudents(ctx, sessionID, []uint{studentID})
	if err != nil {
		return nil, false, err
	}
	if len(rows) == 0 {
		err = fmt.Errorf("attendance for student %d vanished after upsert", studentID)
		return nil, false, err
	}
	row = rows[0]
	created := len(existing) == 0 && row.CreatedAt.Equal(row.UpdatedAt)
	return &row, created, nil
}

// MarkBulk 批量点名。每个条目独立校验，非法条目收集到 Errors 中；
// 合法条目按学生去重（同一学生以最后一条为准）后用一条 upsert 语句写入。
// 相同输入重复调用结果不变。
func (s *AttendanceService) MarkBulk(ctx context.Context, sessionID uint, entries []BulkEntry) (*BulkResult, error) {
	ctx, span := tracing.StartSpan(ctx, "AttendanceService.MarkBulk",
		attribute.Int64("session.id", int64(sessionID)),
		attribute.Int("entries", len(entries)),
	)
	var err error
	defer func() { tracing.EndSpan(span, err) }()

	session, err := s.session(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		err = util.NewValidationError("attendances", "must contain at least one entry")
		return nil, err
	}

	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		if e.StudentID != 0 {
			ids = append(ids, e.StudentID)
		}
	}
	students, err := s.StudentRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	groupOf := make(map[uint]uint, len(students))
	for _, st := range students {
		groupOf[st.ID] = st.GroupID
	}

	result := &BulkResult{Errors: []BulkEntryError{}}
	latest := make(map[uint]model.AttendanceStatus)
	var order []uint
	for i, e := range entries {
		status, ok := ParseStatus(e.Status)
		reason := ""
		switch {
		case e.Malformed != "":
			reason = e.Malformed
		case e.StudentID == 0:
			reason = "student_id is required"
		case !ok:
			reason = "status " + statusMessage()
		default:
			gid, exists := groupOf[e.StudentID]
			if !exists {
				reason = "student does not exist"
			} else if gid != session.GroupID {
				reason = "student is not a member of the session's group"
			}
		}
		if reason != "" {
			result.Errors = append(result.Errors, BulkEntryError{Index: i, StudentID: e.StudentID, Reason: reason})
			monitoring.AttendanceMarks.WithLabelValues(statusLabel(status, ok), "rejected").Inc()
			continue
		}

		if _, seen := latest[e.StudentID]; !seen {
			order = append(order, e.StudentID)
		}
		latest[e.StudentID] = status
	}

	rows := make([]model.Attendance, 0, len(order))
	for _, id := range order {
		rows = append(rows, model.Attendance{SessionID: sessionID, StudentID: id, Status: latest[id]})
	}

	if len(rows) > 0 {
		if err = s.Repo.Upsert(ctx, rows); err != nil {
			return nil, err
		}
		s.Cache.Invalidate(ctx, sessionID)
		for _, r := range rows {
			monitoring.AttendanceMarks.WithLabelValues(string(r.Status), "applied").Inc()
		}
	}

	result.Applied = len(rows)
	result.Attendances, err = s.Repo.FindBySessionAndStudents(ctx, sessionID, order)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("bulk attendance marked",
		zap.Uint("session_id", sessionID),
		zap.Int("applied", result.Applied),
		zap.Int("rejected", len(result.Errors)),
	)
	return result, nil
}

// UpdateStatus 只在指定课次范围内查找记录，其他课次的记录视为不存在
func (s *AttendanceService) UpdateStatus(ctx context.Context, sessionID, attendanceID uint, rawStatus string) (*model.Attendance, error) {
	status := model.AttendanceStatus(rawStatus)
	if !status.Valid() {
		return nil, util.NewValidationError("status", statusMessage())
	}

	if _, err := s.Repo.FindInSession(ctx, sessionID, attendanceID); err != nil {
		return nil, notFound(err, util.ErrAttendanceNotFound)
	}
	if _, err := s.Repo.UpdateStatus(ctx, sessionID, attendanceID, status); err != nil {
		return nil, err
	}
	s.Cache.Invalidate(ctx, sessionID)
	monitoring.AttendanceMarks.WithLabelValues(string(status), "applied").Inc()

	row, err := s.Repo.FindInSession(ctx, sessionID, attendanceID)
	if err != nil {
		return nil, notFound(err, util.ErrAttendanceNotFound)
	}
	return row, nil
}

func (s *AttendanceService) Remove(ctx context.Context, sessionID, attendanceID uint) error {
	affected, err := s.Repo.Delete(ctx, sessionID, attendanceID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return util.ErrAttendanceNotFound
	}
	s.Cache.Invalidate(ctx, sessionID)
	return nil
}

// ListForSession 点名册，按学生姓、名排序
func (s *AttendanceService) ListForSession(ctx context.Context, sessionID uint) ([]model.Attendance, error) {
	if _, err := s.session(ctx, sessionID); err != nil {
		return nil, err
	}

	if rows, ok := s.Cache.Get(ctx, sessionID); ok {
		return rows, nil
	}

	rows, err := s.Repo.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	s.Cache.Set(ctx, sessionID, rows)
	return rows, nil
}

func (s *AttendanceService) session(ctx context.Context, sessionID uint) (*model.Session, error) {
	session, err := s.SessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, notFound(err, util.ErrSessionNotFound)
	}
	return session, nil
}

// checkStudent 返回非空 reason 表示校验失败；error 只用于存储层故障
func (s *AttendanceService) checkStudent(ctx context.Context, session *model.Session, studentID uint) (string, error) {
	if studentID == 0 {
		return "is required", nil
	}
	student, err := s.StudentRepo.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "does not reference an existing student", nil
		}
		return "", err
	}
	if student.GroupID != session.GroupID {
		return "student is not a member of the session's group", nil
	}
	return "", nil
}
