package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the CLI.
type Config struct {
	DatabaseURL     string
	LogLevel        string
	ReportInterval  time.Duration
	ImportBatchSize int
}

const (
	defaultDatabaseURL = "social_network.db"
	defaultBatchSize   = 100
)

// Load reads configuration from environment variables (and a .env file, if present) with sane defaults.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		LogLevel:       strings.TrimSpace(os.Getenv("LOG_LEVEL")),
		ReportInterval: parseInterval(strings.TrimSpace(os.Getenv("REPORT_INTERVAL_HOURS"))),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = defaultDatabaseURL
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	cfg.ImportBatchSize = defaultBatchSize
	if raw := strings.TrimSpace(os.Getenv("IMPORT_BATCH_SIZE")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("invalid IMPORT_BATCH_SIZE %q", raw)
		}
		cfg.ImportBatchSize = n
	}

	return cfg, nil
}

func parseInterval(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	hours, err := time.ParseDuration(raw + "h")
	if err != nil || hours <= 0 {
		return 0
	}
	return hours
}
