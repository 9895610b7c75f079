package repository

import (
	"attendance_backend/internal/model"
	"context"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) FindByGroup(ctx context.Context, groupID uint) ([]model.Session, error) {
	var sessions []model.Session
	err := r.DB.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("date asc, start_time asc, id asc").
		Find(&sessions).Error
	return sessions, err
}

func (r *SessionRepository) FindByID(ctx context.Context, id uint) (*model.Session, error) {
	var session model.Session
	if err := r.DB.WithContext(ctx).First(&session, id).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) FindInGroup(ctx context.Context, groupID, sessionID uint) (*model.Session, error) {
	var session model.Session
	err := r.DB.WithContext(ctx).Where("group_id = ?", groupID).First(&session, sessionID).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) Create(ctx context.Context, session *model.Session) error {
	return r.DB.WithContext(ctx).Create(session).Error
}

func (r *SessionRepository) Updates(ctx context.Context, session *model.Session, fields map[string]interface{}) error {
	return r.DB.WithContext(ctx).Model(session).Updates(fields).Error
}

func (r *SessionRepository) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&model.Session{}, id).Error
}

func (r *SessionRepository) CountAttendances(ctx context.Context, sessionID uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Attendance{}).Where("session_id = ?", sessionID).Count(&count).Error
	return count, err
}
