// Package testutil 测试用的内存数据库与基础数据
package testutil

import (
	"attendance_backend/internal/model"
	"attendance_backend/pkg/database"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 每次返回一个独立的内存 SQLite，外键约束开启，表结构与生产迁移一致
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// 内存库按连接隔离，只保留一个连接
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// Fixture 一个班级下的一个分组
type Fixture struct {
	Class model.Class
	Group model.Group
}

func Seed(t *testing.T, db *gorm.DB, className, groupName string) Fixture {
	t.Helper()

	f := Fixture{Class: model.Class{Name: className}}
	require.NoError(t, db.Create(&f.Class).Error)

	f.Group = model.Group{Name: groupName, Type: "lecture", ClassID: f.Class.ID}
	require.NoError(t, db.Create(&f.Group).Error)
	return f
}

func (f Fixture) AddStudent(t *testing.T, db *gorm.DB, name, fname string) model.Student {
	t.Helper()

	s := model.Student{Name: name, FName: fname, GroupID: f.Group.ID}
	require.NoError(t, db.Create(&s).Error)
	return s
}

func (f Fixture) AddSession(t *testing.T, db *gorm.DB, date string) model.Session {
	t.Helper()

	s := model.Session{GroupID: f.Group.ID, Date: date, StartTime: "09:00", EndTime: "10:30"}
	require.NoError(t, db.Create(&s).Error)
	return s
}
