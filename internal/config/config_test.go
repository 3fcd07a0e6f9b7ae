package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-pos/internal/models"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://x")
	t.Setenv("SCHEDULE_MAX_DAYS", "")
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://x", cfg.DBUrl)
	assert.Equal(t, 62, cfg.ScheduleMaxDays)
	assert.Equal(t, 30*time.Second, cfg.ClosingLockTTL)
	assert.False(t, cfg.RedisEnabled())
	assert.False(t, cfg.ArchiveEnabled())
	assert.Empty(t, cfg.CORSOrigins)
}

func TestLoad_CORSOrigins(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, ,https://admin.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
}

func TestLoad_YAMLOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	t.Setenv("TEST_REDIS_HOST", "cache:6379")
	yml := []byte("server_port: \"9000\"\nredis:\n  addr: ${TEST_REDIS_HOST}\nschedule_max_days: 14\n")
	require.NoError(t, os.WriteFile(path, yml, 0o600))

	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, 14, cfg.ScheduleMaxDays)
}

func TestLoad_MissingOverlay(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestSettingsFor(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := SettingsFor(&models.Salon{
		ID:                "salon-1",
		Timezone:          "Europe/Berlin",
		MinAdvanceMinutes: -10,
		CreatedAt:         created,
	})

	assert.Equal(t, "salon-1", s.SalonID)
	assert.Equal(t, "Europe/Berlin", s.Location.String())
	assert.Equal(t, 0, s.MinAdvanceMinutes)
	assert.Equal(t, created, s.CreatedAt)
}
