package logging_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactflow/internal/logging"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, logging.ParseLevel(tt.in), "level %q", tt.in)
	}
}

func TestNewFileLoggerWritesToDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	logger, closer, err := logging.NewFileLogger(dir, slog.LevelInfo)
	require.NoError(t, err)

	logger.Info("session opened", "user", "client1")
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(filepath.Join(dir, "contactflow.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "session opened")
}
