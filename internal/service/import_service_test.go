package service

import (
	"attendance_backend/internal/config"
	"attendance_backend/internal/model"
	"attendance_backend/internal/testutil"
	"attendance_backend/internal/util"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const rosterCSV = "Family Name,Name\nDoe,Jane\n,\nSmith,\nRoe,Richard\n"

func countStudents(t *testing.T, e *env, groupID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(&model.Student{}).Where("group_id = ?", groupID).Count(&n).Error)
	return n
}

func TestImportFileStrict(t *testing.T) {
	e := newEnv(t)
	f := testutil.Seed(t, e.db, "10A", "G1")

	result, err := e.importer.ImportFile(context.Background(), f.Group.ID, "roster.csv", []byte(rosterCSV))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Created)
	require.Len(t, result.Students, 2)
	assert.Equal(t, "Jane", result.Students[0].Name)
	assert.Equal(t, "Doe", result.Students[0].FName)
	assert.NotZero(t, result.Students[0].ID)

	// 空行跳过，缺名字的第 4 行被拒绝
	require.Len(t, result.Rejected, 1)
	assert.Equal(t, 4, result.Rejected[0].Row)
	assert.Contains(t, result.Rejected[0].Reason, "name")

	assert.EqualValues(t, 2, countStudents(t, e, f.Group.ID))
	assert.NotZero(t, result.ImportID)
	assert.True(t, strings.HasPrefix(result.FileURL, "/uploads/imports/"))

	archived := filepath.Join(e.storageDir, filepath.FromSlash(strings.TrimPrefix(result.FileURL, "/uploads/")))
	content, err := os.ReadFile(archived)
	require.NoError(t, err)
	assert.Equal(t, rosterCSV, string(content))
}

func TestImportFileLenient(t *testing.T) {
	e := newEnv(t)
	f := testutil.Seed(t, e.db, "10A", "G1")
	e.importer.UpdatePolicy(config.ImportConfig{AllowEmptyNames: true})

	result, err := e.importer.ImportFile(context.Background(), f.Group.ID, "roster.csv", []byte(rosterCSV))
	require.NoError(t, err)

	assert.Equal(t, 3, result.Created)
	assert.Empty(t, result.Rejected)
	assert.Equal(t, "", result.Students[1].Name)
	assert.Equal(t, "Smith", result.Students[1].FName)
}

func TestImportFileOnlyOneNameColumn(t *testing.T) {
	e := newEnv(t)
	f := testutil.Seed(t, e.db, "10A", "G1")
	e.importer.UpdatePolicy(config.ImportConfig{AllowEmptyNames: true})

	result, err := e.importer.ImportFile(context.Background(), f.Group.ID, "roster.csv", []byte("NAME\nJane\n"))
	require.NoError(t, err)
	require.Equal(t, 1, result.Created)
	assert.Equal(t, "Jane", result.Students[0].Name)
	assert.Equal(t, "", result.Students[0].FName)
}

func TestImportFileXLSX(t *testing.T) {
	e := newEnv(t)
	f := testutil.Seed(t, e.db, "10A", "G1")

	x := excelize.NewFile()
	require.NoError(t, x.SetSheetRow("Sheet1", "A1", &[]interface{}{"name", "fname"}))
	require.NoError(t, x.SetSheetRow("Sheet1", "A2", &[]interface{}{"Jane", "Doe"}))
	require.NoError(t, x.SetSheetRow("Sheet1", "A3", &[]interface{}{"John", "Smith"}))
	var buf bytes.Buffer
	require.NoError(t, x.Write(&buf))
	x.Close()

	result, err := e.importer.ImportFile(context.Background(), f.Group.ID, "roster.xlsx", buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, "Smith", result.Students[1].FName)
}

func TestImportFileRejectsBadInput(t *testing.T) {
	e := newEnv(t)
	f := testutil.Seed(t, e.db, "10A", "G1")
	ctx := context.Background()

	cases := map[string]struct {
		filename string
		content  string
	}{
		"unsupported extension": {"roster.pdf", "name\nJane\n"},
		"mismatched content":    {"roster.xlsx", "name\nJane\n"},
		"missing columns":       {"roster.csv", "first,last\nJane,Doe\n"},
		"empty file":            {"roster.csv", ""},
	}
	for name, tc := range cases {
		_, err := e.importer.ImportFile(ctx, f.Group.ID, tc.filename, []byte(tc.content))
		ve, ok := util.IsValidationError(err)
		require.True(t, ok, name)
		assert.Contains(t, ve.Fields, util.ImportFormField, name)
	}
	assert.Zero(t, countStudents(t, e, f.Group.ID))

	_, err := e.importer.ImportFile(ctx, f.Group.ID+50, "roster.csv", []byte(rosterCSV))
	assert.ErrorIs(t, err, util.ErrGroupNotFound)
}

func TestImportFileMaxRows(t *testing.T) {
	e := newEnv(t)
	f := testutil.Seed(t, e.db, "10A", "G1")
	e.importer.UpdatePolicy(config.ImportConfig{MaxRows: 1})

	_, err := e.importer.ImportFile(context.Background(), f.Group.ID, "roster.csv", []byte(rosterCSV))
	_, ok := util.IsValidationError(err)
	assert.True(t, ok)
	assert.Zero(t, countStudents(t, e, f.Group.ID))
}

func TestImportListRequiresGroup(t *testing.T) {
	e := newEnv(t)
	f := testutil.Seed(t, e.db, "10A", "G1")
	ctx := context.Background()
	entries := []ImportEntry{{FName: "Doe", Name: "Jane"}}

	_, err := e.importer.ImportList(ctx, 0, entries)
	ve, ok := util.IsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "group_id")

	var n int64
	require.NoError(t, e.db.Model(&model.Student{}).Count(&n).Error)
	assert.Zero(t, n)

	_, err = e.importer.ImportList(ctx, f.Group.ID+1, entries)
	assert.ErrorIs(t, err, util.ErrGroupNotFound)

	_, err = e.importer.ImportList(ctx, f.Group.ID, nil)
	ve, ok = util.IsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "students")
}

func TestImportListIsAppendOnly(t *testing.T) {
	e := newEnv(t)
	f := testutil.Seed(t, e.db, "10A", "G1")
	ctx := context.Background()
	entries := []ImportEntry{
		{FName: " Doe ", Name: "Jane"},
		{FName: "Smith", Name: ""},
	}

	first, err := e.importer.ImportList(ctx, f.Group.ID, entries)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Created)
	assert.Equal(t, "Doe", first.Students[0].FName)
	require.Len(t, first.Rejected, 1)
	assert.Equal(t, 2, first.Rejected[0].Row)

	_, err = e.importer.ImportList(ctx, f.Group.ID, entries)
	require.NoError(t, err)
	assert.EqualValues(t, 2, countStudents(t, e, f.Group.ID))

	history, err := e.importer.ListImports(ctx, f.Group.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, model.ImportSourceList, history[0].Source)
	assert.Equal(t, 1, history[0].CreatedCount)
	assert.Equal(t, 1, history[0].RejectedCount)
	assert.Greater(t, history[0].ID, history[1].ID)
}

func TestImportListRejectsLongNames(t *testing.T) {
	e := newEnv(t)
	f := testutil.Seed(t, e.db, "10A", "G1")

	result, err := e.importer.ImportList(context.Background(), f.Group.ID, []ImportEntry{
		{FName: "Doe", Name: strings.Repeat("a", 256)},
	})
	require.NoError(t, err)
	assert.Zero(t, result.Created)
	require.Len(t, result.Rejected, 1)
	assert.Contains(t, result.Rejected[0].Reason, "longer than")
}
