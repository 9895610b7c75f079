package service

import (
	"attendance_backend/internal/config"
	"attendance_backend/internal/repository"
	"attendance_backend/internal/testutil"
	"testing"

	"gorm.io/gorm"
)

// env 基于内存库组装全部服务，不启用缓存，归档写入临时目录
type env struct {
	db         *gorm.DB
	class      *ClassService
	group      *GroupService
	student    *StudentService
	session    *SessionService
	attendance *AttendanceService
	importer   *ImportService
	storageDir string
}

func newEnv(t *testing.T) *env {
	t.Helper()

	db := testutil.NewDB(t)
	dir := t.TempDir()

	classRepo := repository.NewClassRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	cache := repository.NewRosterCacheRepository(nil, 0)
	storage := NewStorageService(&config.StorageConfig{Type: "local", LocalPath: dir})

	return &env{
		db:         db,
		class:      NewClassService(classRepo),
		group:      NewGroupService(groupRepo, classRepo),
		student:    NewStudentService(studentRepo, groupRepo, cache),
		session:    NewSessionService(sessionRepo, groupRepo),
		attendance: NewAttendanceService(repository.NewAttendanceRepository(db), sessionRepo, studentRepo, cache),
		importer:   NewImportService(repository.NewStudentImportRepository(db), groupRepo, storage, config.ImportConfig{MaxRows: 100}),
		storageDir: dir,
	}
}
