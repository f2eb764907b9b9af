package config

import (
	"bytes"
	"testing"

	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{Simplify: true, Mixed: false, LogLevel: "info", Color: true}, cfg)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FRAC_SIMPLIFY", "false")
	t.Setenv("FRAC_MIXED", "true")
	t.Setenv("FRAC_LOG_LEVEL", "debug")
	t.Setenv("FRAC_COLOR", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{Simplify: false, Mixed: true, LogLevel: "debug", Color: false}, cfg)
}

func TestLoadError(t *testing.T) {
	t.Setenv("FRAC_SIMPLIFY", "not-a-bool")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := Config{LogLevel: "warn"}.Logger(&buf)
	require.NoError(t, err)

	require.NoError(t, level.Info(logger).Log("msg", "hidden"))
	require.NoError(t, level.Warn(logger).Log("msg", "shown"))
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "level=warn msg=shown")

	_, err = Config{LogLevel: "loud"}.Logger(&buf)
	require.Error(t, err)
}
