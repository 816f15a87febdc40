package logger

import (
	"fmt"
	"log/slog"
	"strings"

	appconfig "github.com/sigforge/sigforge/pkg/config"
)

// Config carries logger settings read from the environment.
type Config struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format Format `env:"LOG_FORMAT" envDefault:"json"`
}

// ParseLevel maps a level name to its slog.Level. Matching is
// case-insensitive.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q", s)
	}
}

// NewFromEnv builds a logger from LOG_LEVEL and LOG_FORMAT environment
// variables. Extra options are applied on top of the environment settings.
func NewFromEnv(opts ...Option) (*slog.Logger, error) {
	var cfg Config
	if err := appconfig.Load(&cfg); err != nil {
		return nil, err
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	switch cfg.Format {
	case FormatJSON, FormatText:
	default:
		return nil, fmt.Errorf("invalid log format %q: must be %q or %q", cfg.Format, FormatJSON, FormatText)
	}

	base := []Option{WithLevel(level), WithFormat(cfg.Format)}
	return New(append(base, opts...)...), nil
}
