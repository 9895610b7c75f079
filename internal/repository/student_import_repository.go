package repository

import (
	"attendance_backend/internal/model"
	"context"

	"gorm.io/gorm"
)

const importBatchSize = 200

type StudentImportRepository struct {
	DB *gorm.DB
}

func NewStudentImportRepository(db *gorm.DB) *StudentImportRepository {
	return &StudentImportRepository{DB: db}
}

// Save 在同一事务中写入学生和导入记录，任一失败全部回滚
func (r *StudentImportRepository) Save(ctx context.Context, students []model.Student, record *model.StudentImport) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(students) > 0 {
			if err := tx.CreateInBatches(&students, importBatchSize).Error; err != nil {
				return err
			}
		}
		return tx.Create(record).Error
	})
}

func (r *StudentImportRepository) FindByGroup(ctx context.Context, groupID uint) ([]model.StudentImport, error) {
	var records []model.StudentImport
	err := r.DB.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("id desc").
		Find(&records).Error
	return records, err
}
