// Package logger provides a logger implementation using slog
package logger

import (
	"io"
	"log/slog"

	"github.com/8thgencore/blip/internal/config"
	"github.com/golang-cz/devslog"
)

// New creates a new logger writing to w with configured formatting and
// logging level. An unknown level falls back to info in production and
// debug otherwise.
func New(w io.Writer, env config.Env, level string) *slog.Logger {
	var log *slog.Logger

	if env == config.Prod {
		slogOpts := &slog.HandlerOptions{
			AddSource: true,
			Level:     parseLevel(level, slog.LevelInfo),
		}
		log = slog.New(slog.NewJSONHandler(w, slogOpts))
	} else {
		slogOpts := &slog.HandlerOptions{
			AddSource: true,
			Level:     parseLevel(level, slog.LevelDebug),
		}
		opts := &devslog.Options{
			HandlerOptions:    slogOpts,
			MaxSlicePrintSize: 10,
			SortKeys:          true,
			NewLineAfterLog:   true,
			StringerFormatter: true,
			TimeFormat:        "[15:04:05.000]",
		}

		log = slog.New(devslog.NewHandler(w, opts))
	}

	// Set the logger as the default logger
	slog.SetDefault(log)

	return log
}

func parseLevel(level string, fallback slog.Level) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fallback
	}

	return l
}
