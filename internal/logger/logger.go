// Package logger holds the process-wide structured logger.
package logger

import (
	"log/slog"
	"os"
)

var Logger *slog.Logger

var level = new(slog.LevelVar)

func init() {
	level.Set(slog.LevelWarn)
	// stdout carries the diagnostic and summary lines, so logs go to stderr.
	Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// SetVerbose switches between debug and warning level logging.
func SetVerbose(verbose bool) {
	if verbose {
		level.Set(slog.LevelDebug)
		return
	}
	level.Set(slog.LevelWarn)
}

func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}
