package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
server:
  port: "9090"
  mode: release
database:
  host: db.internal
  port: 3306
storage:
  type: minio
redis:
  enabled: true
  roster_ttl_seconds: 30
import:
  allow_empty_names: true
`

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(sampleConfig), 0644))
	t.Setenv("DATABASE_HOST", "db.override")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "db.override", cfg.Database.Host)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.True(t, cfg.Import.AllowEmptyNames)
	assert.Equal(t, 2000, cfg.Import.MaxRows)
	assert.Equal(t, 30*time.Second, cfg.Redis.RosterTTL())
	assert.Equal(t, 6000, cfg.RateLimit.MaxRequests)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, int64(10<<20), ImportConfig{}.MaxFileSize())
	assert.Equal(t, int64(2<<20), ImportConfig{MaxFileSizeMB: 2}.MaxFileSize())
	assert.Equal(t, 5*time.Minute, RedisConfig{}.RosterTTL())
	assert.Equal(t, time.Minute, RateLimitConfig{}.Window())
}
