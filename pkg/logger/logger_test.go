package logger

import (
	"attendance_backend/internal/config"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWritesFileAndConsole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attendance.log")
	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "release"},
		Log:    config.LogConfig{File: path, MaxSizeMB: 1},
		Redis:  config.RedisConfig{Enabled: true, RosterTTLSeconds: 30},
		Import: config.ImportConfig{AllowEmptyNames: true, MaxRows: 50},
	}

	var console bytes.Buffer
	prev := Log
	Log = newLogger(cfg, &console)
	t.Cleanup(func() { Log = prev })

	logRuntime(cfg)
	Log.Debug("hidden below info")

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"roster_cache":"redis"`)
	assert.Contains(t, string(out), `"roster_ttl":"30s"`)
	assert.Contains(t, string(out), `"import_policy":"lenient"`)
	assert.Contains(t, string(out), `"service":"attendance"`)
	assert.NotContains(t, string(out), "hidden below info")

	assert.Contains(t, console.String(), "Logger initialized")
}
