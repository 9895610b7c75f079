package service

import (
	"attendance_backend/internal/model"
	"attendance_backend/internal/repository"
	"attendance_backend/internal/util"
	"context"
	"errors"

	"gorm.io/gorm"
)

type StudentService struct {
	Repo      *repository.StudentRepository
	GroupRepo *repository.GroupRepository
	Cache     *repository.RosterCacheRepository
}

func NewStudentService(
	repo *repository.StudentRepository,
	groupRepo *repository.GroupRepository,
	cache *repository.RosterCacheRepository,
) *StudentService {
	return &StudentService{Repo: repo, GroupRepo: groupRepo, Cache: cache}
}

type StudentInput struct {
	Name    string
	FName   string
	GroupID uint
}

type StudentUpdate struct {
	Name    *string
	FName   *string
	GroupID *uint
}

func (s *StudentService) ListByGroup(ctx context.Context, groupID uint) ([]model.Student, error) {
	if _, err := s.GroupRepo.FindByID(ctx, groupID); err != nil {
		return nil, notFound(err, util.ErrGroupNotFound)
	}
	return s.Repo.FindByGroup(ctx, groupID)
}

func (s *StudentService) Get(ctx context.Context, id uint) (*model.Student, error) {
	student, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, util.ErrStudentNotFound)
	}
	return student, nil
}

func (s *StudentService) Create(ctx context.Context, in StudentInput) (*model.Student, error) {
	if err := s.checkGroupRef(ctx, in.GroupID); err != nil {
		return nil, err
	}

	student := &model.Student{Name: in.Name, FName: in.FName, GroupID: in.GroupID}
	if err := s.Repo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *StudentService) Update(ctx context.Context, id uint, in StudentUpdate) (*model.Student, error) {
	student, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.FName != nil {
		fields["fname"] = *in.FName
	}
	if in.GroupID != nil && *in.GroupID != student.GroupID {
		if err := s.checkGroupRef(ctx, *in.GroupID); err != nil {
			return nil, err
		}
		// 出勤记录挂在原分组的课次上，有记录时不允许转组
		count, err := s.Repo.CountAttendances(ctx, id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, util.ErrStudentTransferHasAttendances
		}
		fields["group_id"] = *in.GroupID
	}
	if len(fields) == 0 {
		return student, nil
	}

	if err := s.Repo.Updates(ctx, student, fields); err != nil {
		return nil, err
	}

	// 点名册缓存里带着学生姓名
	sessionIDs, err := s.Repo.AttendedSessionIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Cache.Invalidate(ctx, sessionIDs...)

	return s.Get(ctx, id)
}

// Delete 已有出勤记录的学生不能删除
func (s *StudentService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	count, err := s.Repo.CountAttendances(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return util.ErrStudentHasAttendances
	}

	return storeConflict(s.Repo.Delete(ctx, id), util.ErrStudentHasAttendances)
}

// checkGroupRef 请求体里引用的分组不存在属于校验错误
func (s *StudentService) checkGroupRef(ctx context.Context, groupID uint) error {
	if groupID == 0 {
		return util.NewValidationError("group_id", "is required")
	}
	if _, err := s.GroupRepo.FindByID(ctx, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NewValidationError("group_id", "does not reference an existing group")
		}
		return err
	}
	return nil
}
