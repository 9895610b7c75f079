package logger

import (
	"attendance_backend/internal/config"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log 在 InitLogger 之前为空实现，测试中可直接使用
var Log = zap.NewNop()

var encoderConfig = zapcore.EncoderConfig{
	TimeKey:        "time",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	LineEnding:     zapcore.DefaultLineEnding,
	EncodeLevel:    zapcore.CapitalLevelEncoder,
	EncodeTime:     zapcore.ISO8601TimeEncoder,
	EncodeDuration: zapcore.StringDurationEncoder,
	EncodeCaller:   zapcore.ShortCallerEncoder,
}

// InitLogger 文件写 JSON，控制台写可读格式；启动时记录影响点名与导入行为的配置
func InitLogger(cfg *config.Config) {
	Log = newLogger(cfg, os.Stdout)
	logRuntime(cfg)
}

func newLogger(cfg *config.Config, console io.Writer) *zap.Logger {
	level := zap.InfoLevel
	if cfg.Server.Mode == "debug" {
		level = zap.DebugLevel
	}

	file := zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Log.Filename(),
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAgeDays,
		Compress:   true,
	})

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), file, level),
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(console), level),
	)

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel)).
		With(zap.String("service", "attendance"))
}

func logRuntime(cfg *config.Config) {
	cache := "disabled"
	if cfg.Redis.Enabled {
		cache = "redis"
	}
	importPolicy := "strict"
	if cfg.Import.AllowEmptyNames {
		importPolicy = "lenient"
	}

	Log.Info("Logger initialized",
		zap.String("mode", cfg.Server.Mode),
		zap.String("roster_cache", cache),
		zap.Duration("roster_ttl", cfg.Redis.RosterTTL()),
		zap.String("import_policy", importPolicy),
		zap.Int("import_max_rows", cfg.Import.MaxRows),
		zap.String("archive_storage", cfg.Storage.Type),
	)
}
