package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jwebster45206/balatro-meta/pkg/compress"
)

type Config struct {
	Environment      string
	LogLevel         slog.Level
	RedisURL         string        // empty disables backups
	BackupTTL        time.Duration // how long a backup snapshot is kept
	CompressionLevel int
}

// BackupsEnabled reports whether a backup store is configured.
func (c *Config) BackupsEnabled() bool {
	return c.RedisURL != ""
}

func Load() (*Config, error) {
	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    ParseLogLevel(getEnv("LOG_LEVEL", "info")),
		RedisURL:    getEnv("REDIS_URL", ""),
	}

	ttl, err := time.ParseDuration(getEnv("BACKUP_TTL", "720h"))
	if err != nil {
		return nil, fmt.Errorf("invalid BACKUP_TTL: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("invalid BACKUP_TTL: must be positive, got %s", ttl)
	}
	cfg.BackupTTL = ttl

	level, err := strconv.Atoi(getEnv("COMPRESSION_LEVEL", strconv.Itoa(compress.DefaultLevel)))
	if err != nil {
		return nil, fmt.Errorf("invalid COMPRESSION_LEVEL: %w", err)
	}
	if !compress.ValidLevel(level) {
		return nil, fmt.Errorf("invalid COMPRESSION_LEVEL: %d is out of range", level)
	}
	cfg.CompressionLevel = level

	return cfg, nil
}

func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
