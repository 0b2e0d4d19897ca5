package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("REPORT_INTERVAL_HOURS", "")
	t.Setenv("IMPORT_BATCH_SIZE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "social_network.db", cfg.DatabaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Zero(t, cfg.ReportInterval)
	assert.Equal(t, 100, cfg.ImportBatchSize)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", " data/sn.db ")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REPORT_INTERVAL_HOURS", "1.5")
	t.Setenv("IMPORT_BATCH_SIZE", "25")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "data/sn.db", cfg.DatabaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 90*time.Minute, cfg.ReportInterval)
	assert.Equal(t, 25, cfg.ImportBatchSize)
}

func TestLoadRejectsBadBatchSize(t *testing.T) {
	t.Setenv("IMPORT_BATCH_SIZE", "zero")
	_, err := Load()
	assert.Error(t, err)
}

func TestParseInterval(t *testing.T) {
	assert.Equal(t, 5*time.Hour, parseInterval("5"))
	assert.Zero(t, parseInterval("-2"))
	assert.Zero(t, parseInterval("soon"))
	assert.Zero(t, parseInterval(""))
}
