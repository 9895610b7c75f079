package service

import (
	"attendance_backend/internal/model"
	"attendance_backend/internal/repository"
	"attendance_backend/internal/util"
	"context"
	"time"
)

type SessionService struct {
	Repo      *repository.SessionRepository
	GroupRepo *repository.GroupRepository
}

func NewSessionService(repo *repository.SessionRepository, groupRepo *repository.GroupRepository) *SessionService {
	return &SessionService{Repo: repo, GroupRepo: groupRepo}
}

type SessionInput struct {
	Date      string
	StartTime string
	EndTime   string
	Topic     string
}

type SessionUpdate struct {
	Date      *string
	StartTime *string
	EndTime   *string
	Topic     *string
}

func (s *SessionService) ListByGroup(ctx context.Context, groupID uint) ([]model.Session, error) {
	if err := s.ensureGroup(ctx, groupID); err != nil {
		return nil, err
	}
	return s.Repo.FindByGroup(ctx, groupID)
}

// Get 课次不属于该分组时按不存在处理
func (s *SessionService) Get(ctx context.Context, groupID, sessionID uint) (*model.Session, error) {
	if err := s.ensureGroup(ctx, groupID); err != nil {
		return nil, err
	}
	session, err := s.Repo.FindInGroup(ctx, groupID, sessionID)
	if err != nil {
		return nil, notFound(err, util.ErrSessionNotFound)
	}
	return session, nil
}

func (s *SessionService) Create(ctx context.Context, groupID uint, in SessionInput) (*model.Session, error) {
	if err := s.ensureGroup(ctx, groupID); err != nil {
		return nil, err
	}
	if err := validateSchedule(in.Date, in.StartTime, in.EndTime); err != nil {
		return nil, err
	}

	session := &model.Session{
		GroupID:   groupID,
		Date:      in.Date,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Topic:     in.Topic,
	}
	if err := s.Repo.Create(ctx, session); err != nil {
		return nil, storeConflict(err, util.ErrGroupNotFound)
	}
	return session, nil
}

func (s *SessionService) Update(ctx context.Context, groupID, sessionID uint, in SessionUpdate) (*model.Session, error) {
	session, err := s.Get(ctx, groupID, sessionID)
	if err != nil {
		return nil, err
	}

	date, start, end := session.Date, session.StartTime, session.EndTime
	fields := map[string]interface{}{}
	if in.Date != nil {
		date = *in.Date
		fields["date"] = date
	}
	if in.StartTime != nil {
		start = *in.StartTime
		fields["start_time"] = start
	}
	if in.EndTime != nil {
		end = *in.EndTime
		fields["end_time"] = end
	}
	if in.Topic != nil {
		fields["topic"] = *in.Topic
	}
	if len(fields) == 0 {
		return session, nil
	}
	if err := validateSchedule(date, start, end); err != nil {
		return nil, err
	}

	if err := s.Repo.Updates(ctx, session, fields); err != nil {
		return nil, err
	}
	return s.Get(ctx, groupID, sessionID)
}

// Delete 已点过名的课次不能删除
func (s *SessionService) Delete(ctx context.Context, groupID, sessionID uint) error {
	if _, err := s.Get(ctx, groupID, sessionID); err != nil {
		return err
	}

	count, err := s.Repo.CountAttendances(ctx, sessionID)
	if err != nil {
		return err
	}
	if count > 0 {
		return util.ErrSessionHasAttendances
	}

	return storeConflict(s.Repo.Delete(ctx, sessionID), util.ErrSessionHasAttendances)
}

func (s *SessionService) ensureGroup(ctx context.Context, groupID uint) error {
	if _, err := s.GroupRepo.FindByID(ctx, groupID); err != nil {
		return notFound(err, util.ErrGroupNotFound)
	}
	return nil
}

// validateSchedule 日期必填；起止时间可选，同时给出时结束不得早于开始
func validateSchedule(date, start, end string) error {
	verr := &util.ValidationError{}
	if _, err := time.Parse(util.DateFormat, date); err != nil {
		verr.Add("date", "must match the format "+util.DateFormat)
	}

	var startAt, endAt time.Time
	var err error
	if start != "" {
		if startAt, err = time.Parse(util.ClockFormat, start); err != nil {
			verr.Add("start_time", "must match the format "+util.ClockFormat)
		}
	}
	if end != "" {
		if endAt, err = time.Parse(util.ClockFormat, end); err != nil {
			verr.Add("end_time", "must match the format "+util.ClockFormat)
		}
	}
	if !verr.HasErrors() && start != "" && end != "" && endAt.Before(startAt) {
		verr.Add("end_time", "must not be earlier than start_time")
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}
