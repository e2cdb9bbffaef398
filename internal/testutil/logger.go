package testutil

import (
	"io"
	"log/slog"
	"os"
)

// NewTestLogger returns a verbose logger for debugging failing tests.
func NewTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// NewNullLogger returns a logger that discards everything. Most tests use
// this one to keep output readable.
func NewNullLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
