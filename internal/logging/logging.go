// Package logging configures structured JSON logging for the pipeline.
package logging

import (
	"io"
	"log/slog"
)

// New creates a JSON slog logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
