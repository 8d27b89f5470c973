// SPDX-License-Identifier: MIT
// Package: clados/registry
//
// logger.go — log/slog wrapper with registry field names.

package registry

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with registry-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogBuild logs the outcome of a construction.
func (l *Logger) LogBuild(kind, key string, elapsed time.Duration, err error) {
	if err != nil {
		l.Error("build failed",
			"kind", kind,
			"key", key,
			"error", err,
		)
	} else {
		l.Debug("build completed",
			"kind", kind,
			"key", key,
			"elapsed", elapsed,
		)
	}
}

// LogRemove logs a removal; removed is false when the key was absent.
func (l *Logger) LogRemove(kind, key string, removed bool) {
	l.Debug("entry removed",
		"kind", kind,
		"key", key,
		"present", removed,
	)
}

// LogReset logs a full registry reset.
func (l *Logger) LogReset(bases, products int) {
	l.Info("registry reset",
		"bases", bases,
		"products", products,
	)
}
