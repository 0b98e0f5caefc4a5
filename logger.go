package main

import (
	"log/slog"
	"os"
)

// NewLogger returns the digitizer's structured JSON logger at the given
// level. Debug level additionally surfaces per-load raster dimensions and
// crop state transitions.
func NewLogger(level slog.Leveler) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(h).With(slog.String("app", "chart-digitizer"))
}
