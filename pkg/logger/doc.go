// Package logger provides a thin factory around log/slog with consistent
// defaults and a small set of domain attribute helpers.
//
// # Usage
//
// Create a logger with functional options:
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithTextFormatter(),
//		logger.WithAttr(slog.String("service", "sigforge")),
//	)
//
// Or from the environment (LOG_LEVEL, LOG_FORMAT):
//
//	log, err := logger.NewFromEnv()
//
// Attribute helpers keep log keys consistent across the codebase:
//
//	log.Warn("logo probe failed", logger.URL(raw), logger.Error(err))
//
// Defaults are production-safe: JSON output at info level on stdout.
package logger
