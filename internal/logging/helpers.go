package logging

import (
	"log/slog"
	"time"
)

// Debug logs a debug message when a logger is configured.
func Debug(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Debug(msg, args...)
	}
}

// Info logs an info message when a logger is configured.
func Info(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

// Warn logs a warning when a logger is configured.
func Warn(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

// Error logs msg with err under the "error" key when a logger is configured.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if logger == nil {
		return
	}
	if err != nil {
		args = append(args, slog.Any("error", err))
	}
	logger.Error(msg, args...)
}

// Duration renders d as whole milliseconds under FieldDurationMS.
func Duration(d time.Duration) slog.Attr {
	return slog.Int64(FieldDurationMS, d.Milliseconds())
}

// Season tags a record with the season label; empty labels are dropped.
func Season(label string) slog.Attr {
	if label == "" {
		return slog.Attr{}
	}
	return slog.String(FieldSeason, label)
}
