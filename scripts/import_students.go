// 离线导入学生名单
//
// 与 POST /api/students/{groupId}/import 使用同一套解析与校验规则，
// 适合学期初批量建档。原始文件同样会按 storage 配置归档。
//
// 用法: go run scripts/import_students.go -group 3 -file roster.xlsx [-lenient]

package main

import (
	"attendance_backend/internal/config"
	"attendance_backend/internal/repository"
	"attendance_backend/internal/service"
	"attendance_backend/pkg/database"
	"attendance_backend/pkg/logger"
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"
)

func main() {
	groupID := flag.Uint("group", 0, "目标分组ID")
	file := flag.String("file", "", "名单文件（csv/xls/xlsx）")
	lenient := flag.Bool("lenient", false, "允许姓名为空的行")
	flag.Parse()

	if *groupID == 0 || *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}
	if *lenient {
		cfg.Import.AllowEmptyNames = true
	}

	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	content, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("无法读取名单文件: %v", err)
	}

	importer := service.NewImportService(
		repository.NewStudentImportRepository(db),
		repository.NewGroupRepository(db),
		service.NewStorageService(&cfg.Storage),
		cfg.Import,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	result, err := importer.ImportFile(ctx, uint(*groupID), filepath.Base(*file), content)
	if err != nil {
		log.Fatalf("导入失败: %v", err)
	}

	log.Printf("导入完成：新增 %d 名学生，拒绝 %d 行（导入记录 #%d）", result.Created, len(result.Rejected), result.ImportID)
	for _, r := range result.Rejected {
		log.Printf("  第 %d 行: %s", r.Row, r.Reason)
	}
}
