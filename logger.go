package main

import (
	"log/slog"
	"os"
)

// NewLogger returns the process-wide structured logger. Debug mode
// lowers the level and annotates records with their source location,
// which keeps capture and session traces attributable.
func NewLogger(debug bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
