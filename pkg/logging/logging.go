// Package logging builds the structured logger used by revline.
package logging

import (
	"io"
	"log/slog"

	"github.com/ssargent/revline/pkg/config"
)

// ParseLevel converts a configured level name to a slog level
func ParseLevel(level string) (slog.Level, error) {
	name, err := config.NormalizeLevel(level)
	if err != nil {
		return slog.LevelInfo, err
	}

	switch name {
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, nil
	}
}

// New creates a logger writing to w as configured by cfg
func New(w io.Writer, cfg config.Logging) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}

	format, err := config.NormalizeFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler), nil
}

// Nop returns a logger that discards everything
func Nop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
