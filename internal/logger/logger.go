package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/jwebster45206/balatro-meta/internal/config"
)

// Setup configures the global slog logger based on environment. Logs go to
// stderr so command output on stdout stays clean.
func Setup(cfg *config.Config) *slog.Logger {
	logger := New(os.Stderr, cfg)

	// Set as default logger
	slog.SetDefault(logger)

	return logger
}

// New builds a logger writing to w without touching the global default.
func New(w io.Writer, cfg *config.Config) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	if cfg.Environment == "production" {
		// JSON format for production
		handler = slog.NewJSONHandler(w, opts)
	} else {
		// Text format for development
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// WithPath adds the save file path to logger context
func WithPath(logger *slog.Logger, path string) *slog.Logger {
	return logger.With("path", path)
}

// WithError adds error to logger context
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}
