// Package logging provides structured logging configuration using log/slog.
//
// Generation runs are correlated through a run_id attribute attached by the
// batch orchestrator, so every log entry of one run can be traced together.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup configures the global slog logger based on level and format.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
func Setup(level, format string) {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
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

// WithFields returns a logger with additional structured fields.
//
// Useful for creating run-scoped loggers that carry consistent context
// through a multi-step batch:
//
//	runLogger := logging.WithFields("run_id", runID, "mode", mode)
//	runLogger.Info("generation started")
func WithFields(args ...any) *slog.Logger {
	return slog.Default().With(args...)
}
