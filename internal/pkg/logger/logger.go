// Package logger configures the process-wide slog logger.
package logger

import (
	"io"
	"log/slog"
	"strings"

	"github.com/go-chi/httplog/v3"
)

// ParseLevel maps LOG_LEVEL to a slog level. Unknown values fall back to info
// and report false.
func ParseLevel(level string) (slog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug, true
	case "INFO", "":
		return slog.LevelInfo, true
	case "WARN", "WARNING":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// NewJSON returns an ECS-shaped JSON logger for the API server.
func NewJSON(w io.Writer, level, app, env string) *slog.Logger {
	lvl, _ := ParseLevel(level)
	logFormat := httplog.SchemaECS.Concise(false)
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       lvl,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", app),
		slog.String("env", env),
	)
}

// NewText returns a human-readable logger for the command line tool.
func NewText(w io.Writer, level string) *slog.Logger {
	lvl, _ := ParseLevel(level)
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// Install sets l as the default logger and warns about an unknown level.
func Install(l *slog.Logger, level string) {
	slog.SetDefault(l)
	if _, ok := ParseLevel(level); !ok {
		slog.Warn("Invalid log level, defaulting to info", "log_level", level)
	}
}
