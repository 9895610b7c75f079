package service

import (
	"attendance_backend/internal/model"
	"attendance_backend/internal/repository"
	"attendance_backend/internal/util"
	"context"
)

type GroupService struct {
	Repo      *repository.GroupRepository
	ClassRepo *repository.ClassRepository
}

func NewGroupService(repo *repository.GroupRepository, classRepo *repository.ClassRepository) *GroupService {
	return &GroupService{Repo: repo, ClassRepo: classRepo}
}

type GroupUpdate struct {
	Name *string
	Type *string
}

func (s *GroupService) ListAll(ctx context.Context) ([]model.Group, error) {
	return s.Repo.FindAll(ctx, 0)
}

func (s *GroupService) ListByClass(ctx context.Context, classID uint) ([]model.Group, error) {
	if err := s.ensureClass(ctx, classID); err != nil {
		return nil, err
	}
	return s.Repo.FindAll(ctx, classID)
}

// Get 分组不属于该班级时按不存在处理
func (s *GroupService) Get(ctx context.Context, classID, groupID uint) (*model.Group, error) {
	if err := s.ensureClass(ctx, classID); err != nil {
		return nil, err
	}
	group, err := s.Repo.FindInClass(ctx, classID, groupID)
	if err != nil {
		return nil, notFound(err, util.ErrGroupNotFound)
	}
	return group, nil
}

func (s *GroupService) Create(ctx context.Context, classID uint, name, groupType string) (*model.Group, error) {
	if err := s.ensureClass(ctx, classID); err != nil {
		return nil, err
	}

	group := &model.Group{Name: name, Type: groupType, ClassID: classID}
	if err := s.Repo.Create(ctx, group); err != nil {
		return nil, storeConflict(err, util.ErrClassNotFound)
	}
	return group, nil
}

func (s *GroupService) Update(ctx context.Context, classID, groupID uint, in GroupUpdate) (*model.Group, error) {
	group, err := s.Get(ctx, classID, groupID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Type != nil {
		fields["type"] = *in.Type
	}
	if len(fields) == 0 {
		return group, nil
	}

	if err := s.Repo.Updates(ctx, group, fields); err != nil {
		return nil, err
	}
	return s.Get(ctx, classID, groupID)
}

// Delete 分组下仍有学生或课次时拒绝删除
func (s *GroupService) Delete(ctx context.Context, classID, groupID uint) error {
	if _, err := s.Get(ctx, classID, groupID); err != nil {
		return err
	}

	students, sessions, err := s.Repo.CountDependents(ctx, groupID)
	if err != nil {
		return err
	}
	if students > 0 || sessions > 0 {
		return util.ErrGroupHasDependents
	}

	return storeConflict(s.Repo.Delete(ctx, groupID), util.ErrGroupHasDependents)
}

func (s *GroupService) ensureClass(ctx context.Context, classID uint) error {
	if _, err := s.ClassRepo.FindByID(ctx, classID); err != nil {
		return notFound(err, util.ErrClassNotFound)
	}
	return nil
}
