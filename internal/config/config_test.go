package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glasses.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
max_states = 5000
log_level = "debug"
log_format = "json"
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.MaxStates)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	// unset keys keep their defaults
	assert.Equal(t, ColorAuto, cfg.Color)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("max_states = ["), 0644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "failed to parse config")

	invalid := filepath.Join(dir, "invalid.toml")
	require.NoError(t, os.WriteFile(invalid, []byte(`log_level = "loud"`), 0644))
	_, err = Load(invalid)
	assert.ErrorContains(t, err, "unknown log level")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())

	cfg.MaxStates = -1
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.LogFormat = "xml"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Color = "sometimes"
	assert.Error(t, cfg.Validate())
}

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"":      slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(name)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}
}

func TestLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()
	cfg.LogFormat = "json"
	cfg.Logger(&buf).Info("hello", "k", 1)
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	cfg.LogFormat = "text"
	cfg.LogLevel = "warn"
	l := cfg.Logger(&buf)
	l.Info("quiet")
	assert.Empty(t, buf.String())
	l.Warn("loud")
	assert.Contains(t, buf.String(), "msg=loud")
}

func TestPathFromEnv(t *testing.T) {
	t.Setenv(EnvConfig, "/tmp/x.toml")
	assert.Equal(t, "/tmp/x.toml", PathFromEnv())
}
