// Package logging configures the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewFileLogger opens (or creates) a log file under dataDir and returns a
// logger writing to it. The terminal belongs to the TUI, so nothing is
// ever logged to stdout or stderr. The caller closes the returned file.
func NewFileLogger(dataDir string, level slog.Level) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating data directory %s: %w", dataDir, err)
	}

	path := filepath.Join(dataDir, "contactflow.log")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", path, err)
	}

	logger := slog.New(tint.NewHandler(file, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    true,
	}))
	return logger, file, nil
}

// NewStderrLogger returns a colorized logger for one-shot CLI commands.
func NewStderrLogger(level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	}))
}
