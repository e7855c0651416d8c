package console

import (
	"log/slog"

	"github.com/pterm/pterm"
)

// NewLogger returns a slog logger that prints through pterm.
func NewLogger(level slog.Level) *slog.Logger {
	logger := pterm.DefaultLogger.WithLevel(ptermLevel(level))
	return slog.New(pterm.NewSlogHandler(logger))
}

func ptermLevel(level slog.Level) pterm.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case level <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case level <= slog.LevelWarn:
		return pterm.LogLevelWarn
	}
	return pterm.LogLevelError
}
