package service

import (
	"errors"

	"gorm.io/gorm"
)

// notFound 把 gorm 的未找到错误换成具体实体的 ErrNotFound
func notFound(err error, target error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return err
}

// storeConflict 外键或唯一键冲突统一视为 ErrConflict
func storeConflict(err error, target error) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return target
	}
	return err
}
