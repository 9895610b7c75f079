package service

import (
	"attendance_backend/internal/model"
	"attendance_backend/internal/testutil"
	"attendance_backend/internal/util"
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	st, ok := ParseStatus("")
	assert.True(t, ok)
	assert.Equal(t, model.AttendancePresent, st)

	st, ok = ParseStatus("late")
	assert.True(t, ok)
	assert.Equal(t, model.AttendanceLate, st)

	_, ok = ParseStatus("sick")
	assert.False(t, ok)
	_, ok = ParseStatus("LATE")
	assert.False(t, ok)
}

func TestMarkOneIsIdempotent(t *testing.T) {
	e := newEnv(t)
	f := testutil.Seed(t, e.db, "10A", "G1")
	jane := f.AddStudent(t, e.db, "Jane", "Doe")
	session := f.AddSession(t, e.db, "2024-09-02")
	ctx := context.Background()

	row, created, err := e.attendance.MarkOne(ctx, session.ID, jane.ID, "present")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, model.AttendancePresent, row.Status)

	row, created, err = e.attendance.MarkOne(ctx, session.ID, jane.ID, "late")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, model.AttendanceLate, row.Status)

	rows, err := e.attendance.ListForSession(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, model.AttendanceLate, rows[0].Status)
}

func TestMarkOneValidation(t *testing.T) {
	e := newEnv(t)
	f := testutil.Seed(t, e.db, "10A", "G1")
	other := testutil.Seed(t, e.db, "10B", "G2")
	jane := f.AddStudent(t, e.db, "Jane", "Doe")
	outsider := other.AddStudent(t, e.db, "Max", "Mustermann")
	session := f.AddSession(t, e.db, "2024-09-02")
	ctx := context.Background()

	_, _, err := e.attendance.MarkOne(ctx, session.ID+100, jane.ID, "present")
	assert.ErrorIs(t, err, util.ErrSessionNotFound)

	_, _, err = e.attendance.MarkOne(ctx, session.ID, jane.ID, "sick")
	ve, ok := util.IsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "status")

	_, _, err = e.attendance.MarkOne(ctx, session.ID, 9999, "present")
	ve, ok = util.IsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "student_id")

	_, _, err = e.attendance.MarkOne(ctx, session.ID, outsider.ID, "present")
	ve, ok = util.IsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields["student_id"], "not a member")

	rows, err := e.attendance.ListForSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestMarkBulk(t *testing.T) {
	e := newEnv(t)
	f := testutil.Seed(t, e.db, "10A", "G1")
	other := testutil.Seed(t, e.db, "10B", "G2")
	jane := f.AddStudent(t, e.db, "Jane", "Doe")
	john := f.AddStudent(t, e.db, "John", "Smith")
	outsider := other.AddStudent(t, e.db, "Max", "Mustermann")
	session := f.AddSession(t, e.db, "2024-09-02")
	ctx := context.Background()

	entries := []BulkEntry{
		{StudentID: jane.ID, Status: "absent"},
		{StudentID: john.ID},
		{StudentID: jane.ID, Status: "late"},
		{StudentID: outsider.ID, Status: "present"},
		{StudentID: 9999, Status: "present"},
		{StudentID: john.ID, Status: "asleep"},
		{Status: "present"},
	}

	result, err := e.attendance.MarkBulk(ctx, session.ID, entries)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Applied)
	require.Len(t, result.Attendances, 2)

	byStudent := map[uint]model.AttendanceStatus{}
	for _, r := range result.Attendances {
		byStudent[r.StudentID] = r.Status
	}
	assert.Equal(t, model.AttendanceLate, byStudent[jane.ID])
	assert.Equal(t, model.AttendancePresent, byStudent[john.ID])

	require.Len(t, result.Errors, 4)
	assert.Equal(t, []int{3, 4, 5, 6}, []int{
		result.Errors[0].Index, result.Errors[1].Index, result.Errors[2].Index, result.Errors[3].Index,
	})
	assert.Equal(t, outsider.ID, result.Errors[0].StudentID)

	// 重复提交不产生新行
	again, err := e.attendance.MarkBulk(ctx, session.ID, entries)
	require.NoError(t, err)
	assert.Equal(t, 2, again.Applied)

	var count int64
	require.NoError(t, e.db.Model(&model.Attendance{}).Where("session_id = ?", session.ID).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestMarkBulkReportsMalformedEntry(t *testing.T) {
	e := newEnv(t)
	f := testutil.Seed(t, e.db, "10A", "G1")
	jane := f.AddStudent(t, e.db, "Jane", "Doe")
	session := f.AddSession(t, e.db, "2024-09-02")

	result, err := e.attendance.MarkBulk(context.Background(), session.ID, []BulkEntry{
		{Malformed: "student_id must be of type uint"},
		{StudentID: jane.ID, Status: "late"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Applied)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 0, result.Errors[0].Index)
	assert.Equal(t, "student_id must be of type uint", result.Errors[0].Reason)
}

func TestConcurrentMarksKeepOneRow(t *testing.T) {
	e := newEnv(t)
	f := testutil.Seed(t, e.db, "10A", "G1")
	jane := f.AddStudent(t, e.db, "Jane", "Doe")
	session := f.AddSession(t, e.db, "2024-09-02")
	ctx := context.Background()

	const workers = 12
	var (
		wg      sync.WaitGroup
		created int32
	)
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			status := string(model.AttendanceStatuses[i%len(model.AttendanceStatuses)])
			if i%2 == 0 {
				_, err := e.attendance.MarkBulk(ctx, session.ID, []BulkEntry{{StudentID: jane.ID, Status: status}})
				errs <- err
				return
			}
			_, isNew, err := e.attendance.MarkOne(ctx, session.ID, jane.ID, status)
			if isNew {
				atomic.AddInt32(&created, 1)
			}
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, e.db.Model(&model.Attendance{}).
		Where("session_id = ? AND student_id = ?", session.ID, jane.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
	assert.LessOrEqual(t, atomic.LoadInt32(&created), int32(1))

	rows, err := e.attendance.ListForSession(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Contains(t, model.AttendanceStatuses, rows[0].Status)
}

func TestMarkBulkRejectsEmptyList(t *testing.T) {
	e := newEnv(t)
	f := testutil.Seed(t, e.db, "10A", "G1")
	session := f.AddSession(t, e.db, "2024-09-02")

	_, err := e.attendance.MarkBulk(context.Background(), session.ID, nil)
	ve, ok := util.IsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "attendances")

	_, err = e.attendance.MarkBulk(context.Background(), session.ID+1, []BulkEntry{{StudentID: 1}})
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}

func TestUpdateAndRemoveAreScopedToSession(t *testing.T) {
	e := newEnv(t)
	f := testutil.Seed(t, e.db, "10A", "G1")
	jane := f.AddStudent(t, e.db, "Jane", "Doe")
	first := f.AddSession(t, e.db, "2024-09-02")
	second := f.AddSession(t, e.db, "2024-09-03")
	ctx := context.Background()

	row, _, err := e.attendance.MarkOne(ctx, first.ID, jane.ID, "present")
	require.NoError(t, err)

	_, err = e.attendance.UpdateStatus(ctx, second.ID, row.ID, "late")
	assert.ErrorIs(t, err, util.ErrAttendanceNotFound)

	_, err = e.attendance.UpdateStatus(ctx, first.ID, row.ID, "sick")
	_, ok := util.IsValidationError(err)
	assert.True(t, ok)

	updated, err := e.attendance.UpdateStatus(ctx, first.ID, row.ID, "absent")
	require.NoError(t, err)
	assert.Equal(t, model.AttendanceAbsent, updated.Status)

	assert.ErrorIs(t, e.attendance.Remove(ctx, second.ID, row.ID), util.ErrAttendanceNotFound)
	require.NoError(t, e.attendance.Remove(ctx, first.ID, row.ID))
	assert.ErrorIs(t, e.attendance.Remove(ctx, first.ID, row.ID), util.ErrAttendanceNotFound)
}

func TestListForSessionUnknownSession(t *testing.T) {
	e := newEnv(t)

	_, err := e.attendance.ListForSession(context.Background(), 42)
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}
