package service

import (
	"attendance_backend/internal/config"
	"attendance_backend/internal/model"
	"attendance_backend/internal/repository"
	"attendance_backend/internal/util"
	"attendance_backend/pkg/logger"
	"attendance_backend/pkg/monitoring"
	"attendance_backend/pkg/spreadsheet"
	"attendance_backend/pkg/tracing"
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const maxNameLength = 255

// 可识别的表头（已转小写）
var (
	nameHeaders       = []string{"name"}
	familyNameHeaders = []string{"family name", "fname", "family_name"}
)

// ImportService 学生批量导入。导入只追加，不做去重，重复导入会产生重复学生
type ImportService struct {
	Repo      *repository.StudentImportRepository
	GroupRepo *repository.GroupRepository
	Storage   *StorageService

	mu     sync.RWMutex
	policy config.ImportConfig
}

func NewImportService(
	repo *repository.StudentImportRepository,
	groupRepo *repository.GroupRepository,
	storage *StorageService,
	policy config.ImportConfig,
) *ImportService {
	return &ImportService{
		Repo:      repo,
		GroupRepo: groupRepo,
		Storage:   storage,
		policy:    policy,
	}
}

// ImportEntry 列表模式的一条学生数据
type ImportEntry struct {
	FName string
	Name  string
}

// RowError Row 在文件模式下是表格行号（表头为第 1 行），列表模式下是从 1 开始的序号
type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type ImportResult struct {
	ImportID uint            `json:"import_id"`
	Created  int             `json:"created"`
	Students []model.Student `json:"students"`
	Rejected []RowError      `json:"rejected"`
	FileURL  string          `json:"file_url,omitempty"`
}

// UpdatePolicy 配置热更新时调用
func (s *ImportService) UpdatePolicy(policy config.ImportConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.policy = policy
}

func (s *ImportService) Policy() config.ImportConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.policy
}

// ImportFile 文件模式：首行为表头，识别 name 与 family name 两列（不区分大小写）
func (s *ImportService) ImportFile(ctx context.Context, groupID uint, filename string, content []byte) (*ImportResult, error) {
	ctx, span := tracing.StartSpan(ctx, "ImportService.ImportFile",
		attribute.Int64("group.id", int64(groupID)),
		attribute.String("file.name", filename),
		attribute.Int("file.size", len(content)),
	)
	var err error
	defer func() { tracing.EndSpan(span, err) }()

	if err = s.ensureGroup(ctx, groupID); err != nil {
		return nil, err
	}

	policy := s.Policy()
	if int64(len(content)) > policy.MaxFileSize() {
		err = util.NewValidationError(util.ImportFormField, fmt.Sprintf("may not be larger than %d bytes", policy.MaxFileSize()))
		return nil, err
	}

	table, err := spreadsheet.Parse(filename, content)
	if err != nil {
		err = fileError(err)
		return nil, err
	}

	nameIdx := table.Index(nameHeaders...)
	fnameIdx := table.Index(familyNameHeaders...)
	if nameIdx < 0 && fnameIdx < 0 {
		err = util.NewValidationError(util.ImportFormField, "header row must contain a 'name' and/or 'family name' column")
		return nil, err
	}
	if policy.MaxRows > 0 && len(table.Rows) > policy.MaxRows {
		err = util.NewValidationError(util.ImportFormField, fmt.Sprintf("may not contain more than %d data rows", policy.MaxRows))
		return nil, err
	}

	var students []model.Student
	rejected := []RowError{}
	for i, row := range table.Rows {
		if spreadsheet.IsBlank(row) {
			continue
		}
		rowNum := i + 2
		entry := ImportEntry{
			Name:  spreadsheet.Cell(row, nameIdx),
			FName: spreadsheet.Cell(row, fnameIdx),
		}
		if reason := checkEntry(entry, policy); reason != "" {
			rejected = append(rejected, RowError{Row: rowNum, Reason: reason})
			continue
		}
		students = append(students, model.Student{Name: entry.Name, FName: entry.FName, GroupID: groupID})
	}

	record := &model.StudentImport{
		GroupID:  groupID,
		Source:   model.ImportSourceFile,
		Filename: filepath.Base(filename),
	}
	archiveKey := s.archive(ctx, groupID, filename, content, record)

	result, err := s.save(ctx, students, rejected, record)
	if err != nil {
		if archiveKey != "" {
			if derr := s.Storage.Delete(ctx, archiveKey); derr != nil {
				logger.Log.Warn("failed to remove archived import file", zap.String("key", archiveKey), zap.Error(derr))
			}
		}
		return nil, err
	}
	return result, nil
}

// ImportList 列表模式：group_id 必填，缺失时不写入任何学生
func (s *ImportService) ImportList(ctx context.Context, groupID uint, entries []ImportEntry) (*ImportResult, error) {
	ctx, span := tracing.StartSpan(ctx, "ImportService.ImportList",
		attribute.Int64("group.id", int64(groupID)),
		attribute.Int("entries", len(entries)),
	)
	var err error
	defer func() { tracing.EndSpan(span, err) }()

	if groupID == 0 {
		err = util.NewValidationError("group_id", "is required")
		return nil, err
	}
	if err = s.ensureGroup(ctx, groupID); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		err = util.NewValidationError("students", "must contain at least one student")
		return nil, err
	}

	policy := s.Policy()
	if policy.MaxRows > 0 && len(entries) > policy.MaxRows {
		err = util.NewValidationError("students", fmt.Sprintf("may not contain more than %d entries", policy.MaxRows))
		return nil, err
	}

	var students []model.Student
	rejected := []RowError{}
	for i, e := range entries {
		e.Name = strings.TrimSpace(e.Name)
		e.FName = strings.TrimSpace(e.FName)
		if reason := checkEntry(e, policy); reason != "" {
			rejected = append(rejected, RowError{Row: i + 1, Reason: reason})
			continue
		}
		students = append(students, model.Student{Name: e.Name, FName: e.FName, GroupID: groupID})
	}

	record := &model.StudentImport{GroupID: groupID, Source: model.ImportSourceList}
	result, err := s.save(ctx, students, rejected, record)
	return result, err
}

func (s *ImportService) ListImports(ctx context.Context, groupID uint) ([]model.StudentImport, error) {
	if err := s.ensureGroup(ctx, groupID); err != nil {
		return nil, err
	}
	return s.Repo.FindByGroup(ctx, groupID)
}

func (s *ImportService) save(ctx context.Context, students []model.Student, rejected []RowError, record *model.StudentImport) (*ImportResult, error) {
	record.CreatedCount = len(students)
	record.RejectedCount = len(rejected)

	if err := s.Repo.Save(ctx, students, record); err != nil {
		return nil, storeConflict(err, util.ErrGroupNotFound)
	}

	monitoring.StudentsImported.WithLabelValues(record.Source, "created").Add(float64(len(students)))
	monitoring.StudentsImported.WithLabelValues(record.Source, "rejected").Add(float64(len(rejected)))
	logger.Log.Info("students imported",
		zap.Uint("group_id", record.GroupID),
		zap.String("source", record.Source),
		zap.Int("created", len(students)),
		zap.Int("rejected", len(rejected)),
	)

	if students == nil {
		students = []model.Student{}
	}
	return &ImportResult{
		ImportID: record.ID,
		Created:  len(students),
		Students: students,
		Rejected: rejected,
		FileURL:  record.FileURL,
	}, nil
}

// archive 归档原始文件，失败只记日志不影响导入；返回对象 key，失败为空
func (s *ImportService) archive(ctx context.Context, groupID uint, filename string, content []byte, record *model.StudentImport) string {
	if s.Storage == nil {
		return ""
	}
	format, _ := spreadsheet.FormatOf(filename)
	key := path.Join(util.ImportArchiveDir, fmt.Sprint(groupID), uuid.NewString()+strings.ToLower(filepath.Ext(filename)))

	url, err := s.Storage.Upload(ctx, key, bytes.NewReader(content), int64(len(content)), format.ContentType())
	if err != nil {
		logger.Log.Warn("failed to archive import file", zap.String("key", key), zap.Error(err))
		return ""
	}
	record.FileURL = url
	return key
}

func (s *ImportService) ensureGroup(ctx context.Context, groupID uint) error {
	if _, err := s.GroupRepo.FindByID(ctx, groupID); err != nil {
		return notFound(err, util.ErrGroupNotFound)
	}
	return nil
}

// checkEntry 返回非空字符串表示该行被拒绝
func checkEntry(e ImportEntry, policy config.ImportConfig) string {
	if !policy.AllowEmptyNames {
		var missing []string
		if e.Name == "" {
			missing = append(missing, "name")
		}
		if e.FName == "" {
			missing = append(missing, "family name")
		}
		if len(missing) > 0 {
			return "missing " + strings.Join(missing, " and ")
		}
	}
	if utf8.RuneCountInString(e.Name) > maxNameLength {
		return fmt.Sprintf("name longer than %d characters", maxNameLength)
	}
	if utf8.RuneCountInString(e.FName) > maxNameLength {
		return fmt.Sprintf("family name longer than %d characters", maxNameLength)
	}
	return ""
}

func fileError(err error) error {
	switch {
	case errors.Is(err, spreadsheet.ErrUnsupportedFormat),
		errors.Is(err, spreadsheet.ErrContentMismatch),
		errors.Is(err, spreadsheet.ErrEmpty):
		return util.NewValidationError(util.ImportFormField, err.Error())
	}
	return util.NewValidationError(util.ImportFormField, "could not be read: "+err.Error())
}
