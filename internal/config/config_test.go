package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doomforge/ngplus/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "Custom New Game Plus", cfg.ModName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.InstallDir)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("NGPLUS_INSTALL_DIR", "/games/DOOM")
	t.Setenv("NGPLUS_MOD_NAME", "custom-name")
	t.Setenv("NGPLUS_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/games/DOOM", cfg.InstallDir)
	assert.Equal(t, "custom-name", cfg.ModName)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"garbage", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		cfg := &config.Config{LogLevel: tt.level}
		assert.Equal(t, tt.want, cfg.SlogLevel(), "level %q", tt.level)
	}
}
