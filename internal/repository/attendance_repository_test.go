package repository

import (
	"attendance_backend/internal/model"
	"attendance_backend/internal/testutil"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceUpsertKeepsOneRowPerStudent(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db, "10A", "G1")
	jane := f.AddStudent(t, db, "Jane", "Doe")
	session := f.AddSession(t, db, "2024-09-02")
	repo := NewAttendanceRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, []model.Attendance{
		{SessionID: session.ID, StudentID: jane.ID, Status: model.AttendancePresent},
	}))
	require.NoError(t, repo.Upsert(ctx, []model.Attendance{
		{SessionID: session.ID, StudentID: jane.ID, Status: model.AttendanceLate},
	}))

	rows, err := repo.FindBySession(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, model.AttendanceLate, rows[0].Status)
	require.NotNil(t, rows[0].Student)
	assert.Equal(t, "Jane", rows[0].Student.Name)
}

func TestAttendanceConcurrentUpsert(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db, "10A", "G1")
	jane := f.AddStudent(t, db, "Jane", "Doe")
	session := f.AddSession(t, db, "2024-09-02")
	repo := NewAttendanceRepository(db)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 9)
	for i := 0; i < 9; i++ {
		wg.Add(1)
		go func(status model.AttendanceStatus) {
			defer wg.Done()
			errs <- repo.Upsert(ctx, []model.Attendance{{SessionID: session.ID, StudentID: jane.ID, Status: status}})
		}(model.AttendanceStatuses[i%len(model.AttendanceStatuses)])
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	rows, err := repo.FindBySession(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Status.Valid())
}

func TestAttendanceRosterOrder(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db, "10A", "G1")
	zed := f.AddStudent(t, db, "Anna", "Zed")
	doeB := f.AddStudent(t, db, "Bob", "Doe")
	doeA := f.AddStudent(t, db, "Alice", "Doe")
	session := f.AddSession(t, db, "2024-09-02")
	repo := NewAttendanceRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, []model.Attendance{
		{SessionID: session.ID, StudentID: zed.ID, Status: model.AttendancePresent},
		{SessionID: session.ID, StudentID: doeB.ID, Status: model.AttendanceAbsent},
		{SessionID: session.ID, StudentID: doeA.ID, Status: model.AttendanceLate},
	}))

	rows, err := repo.FindBySession(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []uint{doeA.ID, doeB.ID, zed.ID}, []uint{rows[0].StudentID, rows[1].StudentID, rows[2].StudentID})
}

func TestAttendanceScopedBySession(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db, "10A", "G1")
	jane := f.AddStudent(t, db, "Jane", "Doe")
	first := f.AddSession(t, db, "2024-09-02")
	second := f.AddSession(t, db, "2024-09-03")
	repo := NewAttendanceRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, []model.Attendance{
		{SessionID: first.ID, StudentID: jane.ID, Status: model.AttendancePresent},
	}))
	rows, err := repo.FindBySession(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	id := rows[0].ID

	_, err = repo.FindInSession(ctx, second.ID, id)
	assert.Error(t, err)

	affected, err := repo.UpdateStatus(ctx, second.ID, id, model.AttendanceAbsent)
	require.NoError(t, err)
	assert.Zero(t, affected)

	affected, err = repo.Delete(ctx, second.ID, id)
	require.NoError(t, err)
	assert.Zero(t, affected)

	affected, err = repo.Delete(ctx, first.ID, id)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)
}
