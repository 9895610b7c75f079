package util

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")

	ErrClassNotFound      = fmt.Errorf("class %w", ErrNotFound)
	ErrGroupNotFound      = fmt.Errorf("group %w", ErrNotFound)
	ErrStudentNotFound    = fmt.Errorf("student %w", ErrNotFound)
	ErrSessionNotFound    = fmt.Errorf("session %w", ErrNotFound)
	ErrAttendanceNotFound = fmt.Errorf("attendance %w", ErrNotFound)

	ErrClassHasGroups        = fmt.Errorf("%w: class still has groups", ErrConflict)
	ErrGroupHasDependents    = fmt.Errorf("%w: group still has students or sessions", ErrConflict)
	ErrStudentHasAttendances = fmt.Errorf("%w: student still has attendance records", ErrConflict)
	ErrSessionHasAttendances = fmt.Errorf("%w: session still has attendance records", ErrConflict)

	ErrStudentTransferHasAttendances = fmt.Errorf("%w: student with attendance records cannot change group", ErrConflict)
)

// ValidationError 字段级校验失败，key 为请求中的 json 字段名
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = message
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
