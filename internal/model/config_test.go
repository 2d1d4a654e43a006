package model_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactflow/internal/model"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := model.LoadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10, cfg.Display.PageSize)
	assert.NotEmpty(t, cfg.DataDir)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	want := &model.AppConfig{
		DataDir:  "/var/lib/contactflow",
		LogLevel: "debug",
		Auth:     model.AuthConfig{Endpoint: "https://auth.example.com/login"},
		Display:  model.DisplayConfig{Theme: "default", PageSize: 25},
	}
	require.NoError(t, model.SaveConfig(path, want))

	got, err := model.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
