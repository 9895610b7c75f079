package repository

import (
	"attendance_backend/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttendanceRepository struct {
	DB *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{DB: db}
}

// rosterOrder 按学生姓、名排序，最后按记录 ID 保证稳定
var rosterOrder = clause.OrderBy{Columns: []clause.OrderByColumn{
	{Column: clause.Column{Table: "Student", Name: "fname"}},
	{Column: clause.Column{Table: "Student", Name: "name"}},
	{Column: clause.Column{Table: clause.CurrentTable, Name: "id"}},
}}

// Upsert 以 (session_id, student_id) 为键的单条语句批量写入，
// 已存在的记录只覆盖 status；并发点名同一学生不会产生重复行
func (r *AttendanceRepository) Upsert(ctx context.Context, rows []model.Attendance) error {
	if len(rows) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}, {Name: "student_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
		}).
		Create(&rows).Error
}

// FindBySession 点名册，附带学生姓名
func (r *AttendanceRepository) FindBySession(ctx context.Context, sessionID uint) ([]model.Attendance, error) {
	var rows []model.Attendance
	err := r.DB.WithContext(ctx).
		Joins("Student").
		Where("attendances.session_id = ?", sessionID).
		Clauses(rosterOrder).
		Find(&rows).Error
	return rows, err
}

// FindBySessionAndStudents 取回刚写入的记录（upsert 后 ID 不可靠）
func (r *AttendanceRepository) FindBySessionAndStudents(ctx context.Context, sessionID uint, studentIDs []uint) ([]model.Attendance, error) {
	var rows []model.Attendance
	if len(studentIDs) == 0 {
		return rows, nil
	}
	err := r.DB.WithContext(ctx).
		Joins("Student").
		Where("attendances.session_id = ? AND attendances.student_id IN ?", sessionID, studentIDs).
		Clauses(rosterOrder).
		Find(&rows).Error
	return rows, err
}

// FindInSession 按课次范围查找，其他课次的 ID 视为不存在
func (r *AttendanceRepository) FindInSession(ctx context.Context, sessionID, attendanceID uint) (*model.Attendance, error) {
	var row model.Attendance
	err := r.DB.WithContext(ctx).
		Joins("Student").
		Where("attendances.session_id = ?", sessionID).
		First(&row, "attendances.id = ?", attendanceID).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateStatus 条件中带上 session_id，防止跨课次修改
func (r *AttendanceRepository) UpdateStatus(ctx context.Context, sessionID, attendanceID uint, status model.AttendanceStatus) (int64, error) {
	res := r.DB.WithContext(ctx).
		Model(&model.Attendance{}).
		Where("id = ? AND session_id = ?", attendanceID, sessionID).
		Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *AttendanceRepository) Delete(ctx context.Context, sessionID, attendanceID uint) (int64, error) {
	res := r.DB.WithContext(ctx).
		Where("id = ? AND session_id = ?", attendanceID, sessionID).
		Delete(&model.Attendance{})
	return res.RowsAffected, res.Error
}
