package repository

import (
	"attendance_backend/internal/model"
	"context"

	"gorm.io/gorm"
)

type GroupRepository struct {
	DB *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{DB: db}
}

// FindAll classID 为 0 时返回全部分组
func (r *GroupRepository) FindAll(ctx context.Context, classID uint) ([]model.Group, error) {
	var groups []model.Group
	query := r.DB.WithContext(ctx).Order("id asc")
	if classID != 0 {
		query = query.Where("class_id = ?", classID)
	}
	err := query.Find(&groups).Error
	return groups, err
}

func (r *GroupRepository) FindByID(ctx context.Context, id uint) (*model.Group, error) {
	var group model.Group
	if err := r.DB.WithContext(ctx).First(&group, id).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

// FindInClass 只在指定班级范围内查找
func (r *GroupRepository) FindInClass(ctx context.Context, classID, groupID uint) (*model.Group, error) {
	var group model.Group
	err := r.DB.WithContext(ctx).Where("class_id = ?", classID).First(&group, groupID).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepository) Create(ctx context.Context, group *model.Group) error {
	return r.DB.WithContext(ctx).Create(group).Error
}

func (r *GroupRepository) Updates(ctx context.Context, group *model.Group, fields map[string]interface{}) error {
	return r.DB.WithContext(ctx).Model(group).Updates(fields).Error
}

// Delete 同时清理该分组的导入记录
func (r *GroupRepository) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ?", id).Delete(&model.StudentImport{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Group{}, id).Error
	})
}

// CountDependents 返回分组下的学生数与课次数
func (r *GroupRepository) CountDependents(ctx context.Context, groupID uint) (students int64, sessions int64, err error) {
	db := r.DB.WithContext(ctx)
	if err = db.Model(&model.Student{}).Where("group_id = ?", groupID).Count(&students).Error; err != nil {
		return
	}
	err = db.Model(&model.Session{}).Where("group_id = ?", groupID).Count(&sessions).Error
	return
}
