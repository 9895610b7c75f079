package repository

import (
	"attendance_backend/internal/model"
	"context"

	"gorm.io/gorm"
)

type ClassRepository struct {
	DB *gorm.DB
}

func NewClassRepository(db *gorm.DB) *ClassRepository {
	return &ClassRepository{DB: db}
}

func (r *ClassRepository) FindAll(ctx context.Context) ([]model.Class, error) {
	var classes []model.Class
	err := r.DB.WithContext(ctx).Order("id asc").Find(&classes).Error
	return classes, err
}

func (r *ClassRepository) FindByID(ctx context.Context, id uint) (*model.Class, error) {
	var class model.Class
	if err := r.DB.WithContext(ctx).First(&class, id).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *ClassRepository) Create(ctx context.Context, class *model.Class) error {
	return r.DB.WithContext(ctx).Create(class).Error
}

func (r *ClassRepository) Updates(ctx context.Context, class *model.Class, fields map[string]interface{}) error {
	return r.DB.WithContext(ctx).Model(class).Updates(fields).Error
}

func (r *ClassRepository) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&model.Class{}, id).Error
}

// CountGroups 删除前检查是否仍有分组
func (r *ClassRepository) CountGroups(ctx context.Context, classID uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Group{}).Where("class_id = ?", classID).Count(&count).Error
	return count, err
}
