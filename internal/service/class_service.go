package service

import (
	"attendance_backend/internal/model"
	"attendance_backend/internal/repository"
	"attendance_backend/internal/util"
	"context"
)

type ClassService struct {
	Repo *repository.ClassRepository
}

func NewClassService(repo *repository.ClassRepository) *ClassService {
	return &ClassService{Repo: repo}
}

// ClassUpdate 为空的字段不修改
type ClassUpdate struct {
	Name *string
}

func (s *ClassService) List(ctx context.Context) ([]model.Class, error) {
	return s.Repo.FindAll(ctx)
}

func (s *ClassService) Get(ctx context.Context, id uint) (*model.Class, error) {
	class, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, util.ErrClassNotFound)
	}
	return class, nil
}

func (s *ClassService) Create(ctx context.Context, name string) (*model.Class, error) {
	class := &model.Class{Name: name}
	if err := s.Repo.Create(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *ClassService) Update(ctx context.Context, id uint, in ClassUpdate) (*model.Class, error) {
	class, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if len(fields) == 0 {
		return class, nil
	}

	if err := s.Repo.Updates(ctx, class, fields); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete 班级下仍有分组时拒绝删除
func (s *ClassService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	count, err := s.Repo.CountGroups(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return util.ErrClassHasGroups
	}

	return storeConflict(s.Repo.Delete(ctx, id), util.ErrClassHasGroups)
}
