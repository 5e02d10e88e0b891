// Package config manages glasses configuration: an optional TOML file whose
// values act as defaults beneath command-line flags.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// EnvConfig names the environment variable that points at a config file.
const EnvConfig = "GLASSES_CONFIG"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the glasses configuration
type Config struct {
	MaxStates int    `toml:"max_states"` // 0 = unbounded search
	LogLevel  string `toml:"log_level"`  // debug, info, warn, error
	LogFormat string `toml:"log_format"` // text, json
	Color     string `toml:"color"`      // auto, always, never
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		MaxStates: 0,
		LogLevel:  "info",
		LogFormat: "text",
		Color:     ColorAuto,
	}
}

// PathFromEnv returns the config path named by GLASSES_CONFIG, or "".
func PathFromEnv() string {
	return os.Getenv(EnvConfig)
}

// Load reads the TOML file at path over Default. An empty path yields the
// defaults; a named file that cannot be read is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks enumerated fields and limits.
func (c *Config) Validate() error {
	if c.MaxStates < 0 {
		return fmt.Errorf("max_states must be >= 0, got %d", c.MaxStates)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", c.LogFormat)
	}
	switch strings.ToLower(c.Color) {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color mode %q (want auto, always or never)", c.Color)
	}

	return nil
}

// ParseLevel maps a level name to slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", s)
	}
}

// Logger builds a slog.Logger writing to w with the configured level and
// format. Invalid values fall back to info / text.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, _ := ParseLevel(c.LogLevel)
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(c.LogFormat, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
