// Package logging builds the command-line logger.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New creates a text logger at the provided level.
func New(w io.Writer, level slog.Leveler) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	})

	return slog.New(handler)
}

// ParseLevel parses a level name such as "debug", "info", "warn" or "error".
// An empty name is "warn".
func ParseLevel(name string) (slog.Level, error) {
	if strings.TrimSpace(name) == "" {
		return slog.LevelWarn, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, err
	}

	return level, nil
}
