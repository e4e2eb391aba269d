// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   = &slog.LevelVar{}
)

// Setup installs a text logger writing to w (stderr when nil) as the slog
// default and sets its level from a name such as "debug".
func Setup(w io.Writer, rawLevel string) *slog.Logger {
	loggerOnce.Do(func() {
		if w == nil {
			w = os.Stderr
		}
		logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: levelVar,
		}))
		slog.SetDefault(logger)
	})
	SetRawLevel(rawLevel)
	return logger
}

// ParseLevel maps a level name to a slog.Level, defaulting to Info.
func ParseLevel(rawLevel string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
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

// SetRawLevel changes the level of the installed logger.
func SetRawLevel(rawLevel string) {
	levelVar.Set(ParseLevel(rawLevel))
}

// Level reports the current level.
func Level() slog.Level {
	return levelVar.Level()
}
