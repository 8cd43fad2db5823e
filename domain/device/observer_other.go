//go:build !darwin

package device

import "log/slog"

// startObserver is a no-op outside darwin; the driver re-enumerates on
// every directory query.
func startObserver(_ *slog.Logger) {}
