package logger

import (
	"log/slog"
	"strings"
)

// ParseLevel reads LOG_LEVEL values. On failure it still returns debug so the error can be logged.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelDebug, false
	}
}
