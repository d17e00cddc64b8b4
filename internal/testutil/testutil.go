// Package testutil provides shared helpers for unit tests.
package testutil

import (
	"io"
	"log/slog"
	"time"
)

// DiscardLogger returns a logger that drops everything, keeping test
// output clean while still exercising logging code paths.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestTime returns a fixed time for testing.
func TestTime() time.Time {
	return time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
}
