package repository

import (
	"attendance_backend/internal/model"
	"context"

	"gorm.io/gorm"
)

type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{DB: db}
}

func (r *StudentRepository) FindByGroup(ctx context.Context, groupID uint) ([]model.Student, error) {
	var students []model.Student
	err := r.DB.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("fname asc, name asc, id asc").
		Find(&students).Error
	return students, err
}

func (r *StudentRepository) FindByID(ctx context.Context, id uint) (*model.Student, error) {
	var student model.Student
	if err := r.DB.WithContext(ctx).First(&student, id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

// FindByIDs 批量点名时一次取出所有涉及的学生
func (r *StudentRepository) FindByIDs(ctx context.Context, ids []uint) ([]model.Student, error) {
	var students []model.Student
	if len(ids) == 0 {
		return students, nil
	}
	err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&students).Error
	return students, err
}

func (r *StudentRepository) Create(ctx context.Context, student *model.Student) error {
	return r.DB.WithContext(ctx).Create(student).Error
}

func (r *StudentRepository) Updates(ctx context.Context, student *model.Student, fields map[string]interface{}) error {
	return r.DB.WithContext(ctx).Model(student).Updates(fields).Error
}

func (r *StudentRepository) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&model.Student{}, id).Error
}

func (r *StudentRepository) CountAttendances(ctx context.Context, studentID uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Attendance{}).Where("student_id = ?", studentID).Count(&count).Error
	return count, err
}

// AttendedSessionIDs 该学生有出勤记录的全部课次
func (r *StudentRepository) AttendedSessionIDs(ctx context.Context, studentID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.WithContext(ctx).
		Model(&model.Attendance{}).
		Where("student_id = ?", studentID).
		Distinct().
		Pluck("session_id", &ids).Error
	return ids, err
}
