//go:build !windows

package debug

import (
	"log/slog"
	"time"
)

// StartMemLogger is a no-op where no native RSS query is wired; the
// runtime logger still covers heap and goroutine growth.
func StartMemLogger(interval time.Duration, logger *slog.Logger) {}
