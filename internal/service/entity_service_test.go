package service

import (
	"attendance_backend/internal/model"
	"attendance_backend/internal/testutil"
	"attendance_backend/internal/util"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestClassLifecycle(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	class, err := e.class.Create(ctx, "10A")
	require.NoError(t, err)
	assert.NotZero(t, class.ID)

	updated, err := e.class.Update(ctx, class.ID, ClassUpdate{Name: strPtr("10B")})
	require.NoError(t, err)
	assert.Equal(t, "10B", updated.Name)

	unchanged, err := e.class.Update(ctx, class.ID, ClassUpdate{})
	require.NoError(t, err)
	assert.Equal(t, "10B", unchanged.Name)

	_, err = e.class.Update(ctx, class.ID+1, ClassUpdate{Name: strPtr("x")})
	assert.ErrorIs(t, err, util.ErrClassNotFound)

	require.NoError(t, e.class.Delete(ctx, class.ID))
	_, err = e.class.Get(ctx, class.ID)
	assert.ErrorIs(t, err, util.ErrClassNotFound)
}

func TestClassDeleteRestrictedByGroups(t *testing.T) {
	e := newEnv(t)
	f := testutil.Seed(t, e.db, "10A", "G1")

	err := e.class.Delete(context.Background(), f.Class.ID)
	assert.ErrorIs(t, err, util.ErrConflict)

	_, err = e.class.Get(context.Background(), f.Class.ID)
	assert.NoError(t, err)
}

func TestGroupScopedToClass(t *testing.T) {
	e := newEnv(t)
	a := testutil.Seed(t, e.db, "10A", "G1")
	b := testutil.Seed(t, e.db, "10B", "G2")
	ctx := context.Background()

	_, err := e.group.Get(ctx, b.Class.ID, a.Group.ID)
	assert.ErrorIs(t, err, util.ErrGroupNotFound)

	_, err = e.group.Update(ctx, b.Class.ID, a.Group.ID, GroupUpdate{Name: strPtr("x")})
	assert.ErrorIs(t, err, util.ErrGroupNotFound)

	assert.ErrorIs(t, e.group.Delete(ctx, b.Class.ID, a.Group.ID), util.ErrGroupNotFound)

	groups, err := e.group.ListByClass(ctx, a.Class.ID)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "G1", groups[0].Name)

	all, err := e.group.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = e.group.ListByClass(ctx, 999)
	assert.ErrorIs(t, err, util.ErrClassNotFound)

	_, err = e.group.Create(ctx, 999, "G3", "lab")
	assert.ErrorIs(t, err, util.ErrClassNotFound)
}

func TestGroupDeleteRestrict(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	withStudent := testutil.Seed(t, e.db, "10A", "G1")
	withStudent.AddStudent(t, e.db, "Jane", "Doe")
	err := e.group.Delete(ctx, withStudent.Class.ID, withStudent.Group.ID)
	assert.ErrorIs(t, err, util.ErrConflict)

	withSession := testutil.Seed(t, e.db, "10B", "G2")
	withSession.AddSession(t, e.db, "2024-09-02")
	err = e.group.Delete(ctx, withSession.Class.ID, withSession.Group.ID)
	assert.ErrorIs(t, err, util.ErrConflict)

	empty := testutil.Seed(t, e.db, "10C", "G3")
	_, err = e.importer.ImportList(ctx, empty.Group.ID, []ImportEntry{{FName: "", Name: ""}})
	require.NoError(t, err)
	require.NoError(t, e.group.Delete(ctx, empty.Class.ID, empty.Group.ID))

	var imports int64
	require.NoError(t, e.db.Model(&model.StudentImport{}).Where("group_id = ?", empty.Group.ID).Count(&imports).Error)
	assert.Zero(t, imports)
}

func TestStudentCreateAndTransfer(t *testing.T) {
	e := newEnv(t)
	a := testutil.Seed(t, e.db, "10A", "G1")
	b := testutil.Seed(t, e.db, "10A-2", "G2")
	ctx := context.Background()

	_, err := e.student.Create(ctx, StudentInput{Name: "Jane", FName: "Doe", GroupID: 999})
	ve, ok := util.IsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "group_id")

	jane, err := e.student.Create(ctx, StudentInput{Name: "Jane", FName: "Doe", GroupID: a.Group.ID})
	require.NoError(t, err)

	moved, err := e.student.Update(ctx, jane.ID, StudentUpdate{GroupID: &b.Group.ID})
	require.NoError(t, err)
	assert.Equal(t, b.Group.ID, moved.GroupID)
	assert.Equal(t, "Jane", moved.Name)

	list, err := e.student.ListByGroup(ctx, a.Group.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = e.student.ListByGroup(ctx, 999)
	assert.ErrorIs(t, err, util.ErrGroupNotFound)

	_, err = e.student.Update(ctx, 999, StudentUpdate{Name: strPtr("x")})
	assert.ErrorIs(t, err, util.ErrStudentNotFound)
}

func TestStudentDeleteRestrictedByAttendance(t *testing.T) {
	e := newEnv(t)
	f := testutil.Seed(t, e.db, "10A", "G1")
	jane := f.AddStudent(t, e.db, "Jane", "Doe")
	john := f.AddStudent(t, e.db, "John", "Smith")
	session := f.AddSession(t, e.db, "2024-09-02")
	ctx := context.Background()

	_, _, err := e.attendance.MarkOne(ctx, session.ID, jane.ID, "present")
	require.NoError(t, err)

	assert.ErrorIs(t, e.student.Delete(ctx, jane.ID), util.ErrConflict)
	require.NoError(t, e.student.Delete(ctx, john.ID))
	assert.ErrorIs(t, e.student.Delete(ctx, john.ID), util.ErrStudentNotFound)
}

func TestStudentTransferRestrictedByAttendance(t *testing.T) {
	e := newEnv(t)
	a := testutil.Seed(t, e.db, "10A", "G1")
	b := testutil.Seed(t, e.db, "10A-2", "G2")
	jane := a.AddStudent(t, e.db, "Jane", "Doe")
	session := a.AddSession(t, e.db, "2024-09-02")
	ctx := context.Background()

	_, _, err := e.attendance.MarkOne(ctx, session.ID, jane.ID, "late")
	require.NoError(t, err)

	_, err = e.student.Update(ctx, jane.ID, StudentUpdate{GroupID: &b.Group.ID})
	assert.ErrorIs(t, err, util.ErrStudentTransferHasAttendances)
	assert.ErrorIs(t, err, util.ErrConflict)

	renamed, err := e.student.Update(ctx, jane.ID, StudentUpdate{Name: strPtr("Janet"), GroupID: &a.Group.ID})
	require.NoError(t, err)
	assert.Equal(t, "Janet", renamed.Name)
	assert.Equal(t, a.Group.ID, renamed.GroupID)

	ids, err := e.student.Repo.AttendedSessionIDs(ctx, jane.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{session.ID}, ids)
}

func TestSessionLifecycle(t *testing.T) {
	e := newEnv(t)
	a := testutil.Seed(t, e.db, "10A", "G1")
	b := testutil.Seed(t, e.db, "10B", "G2")
	jane := a.AddStudent(t, e.db, "Jane", "Doe")
	ctx := context.Background()

	_, err := e.session.Create(ctx, a.Group.ID, SessionInput{Date: "02/09/2024"})
	ve, ok := util.IsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "date")

	_, err = e.session.Create(ctx, a.Group.ID, SessionInput{Date: "2024-09-02", StartTime: "10:00", EndTime: "09:00"})
	ve, ok = util.IsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "end_time")

	session, err := e.session.Create(ctx, a.Group.ID, SessionInput{Date: "2024-09-02", StartTime: "09:00", EndTime: "10:30", Topic: "Fractions"})
	require.NoError(t, err)

	_, err = e.session.Get(ctx, b.Group.ID, session.ID)
	assert.ErrorIs(t, err, util.ErrSessionNotFound)

	updated, err := e.session.Update(ctx, a.Group.ID, session.ID, SessionUpdate{Topic: strPtr("Decimals")})
	require.NoError(t, err)
	assert.Equal(t, "Decimals", updated.Topic)
	assert.Equal(t, "09:00", updated.StartTime)

	_, _, err = e.attendance.MarkOne(ctx, session.ID, jane.ID, "late")
	require.NoError(t, err)
	assert.ErrorIs(t, e.session.Delete(ctx, a.Group.ID, session.ID), util.ErrConflict)

	empty, err := e.session.Create(ctx, a.Group.ID, SessionInput{Date: "2024-09-03"})
	require.NoError(t, err)
	require.NoError(t, e.session.Delete(ctx, a.Group.ID, empty.ID))

	sessions, err := e.session.ListByGroup(ctx, a.Group.ID)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}
