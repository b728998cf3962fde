package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Environment variables read by Load
const (
	// EnvLogLevel sets the minimum log level ("debug", "info", "warn" or "error")
	EnvLogLevel = "RECTANGLE_LOG_LEVEL"

	// EnvPrompt replaces the instruction line printed before reading input
	EnvPrompt = "RECTANGLE_PROMPT"
)

// DefaultPrompt is printed before the dimensions are read
const DefaultPrompt = "Enter the width and height of the rectangle, separated by a space:"

// Config represents the program configuration
type Config struct {
	// Prompt is the instruction line written to stdout before reading input
	Prompt string `json:"prompt"`

	// LogLevel is the minimum level of diagnostics written to stderr
	LogLevel slog.Level `json:"logLevel"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Prompt:   DefaultPrompt,
		LogLevel: slog.LevelWarn, // Keep stderr quiet unless something is off
	}
}

// Load returns the default configuration with environment overrides applied
func Load(getenv func(key string) string) (*Config, error) {
	cfg := DefaultConfig()

	if level := getenv(EnvLogLevel); level != "" {
		parsed, err := parseLogLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = parsed
	}

	if prompt := getenv(EnvPrompt); prompt != "" {
		cfg.Prompt = prompt
	}

	return cfg, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}
