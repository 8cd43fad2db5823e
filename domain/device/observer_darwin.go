//go:build darwin

package device

import (
	"log/slog"

	mediadevicescamera "github.com/pion/mediadevices/pkg/driver/camera"
)

// startObserver starts the darwin camera device observer so the driver
// refreshes its registry on unplug/replug instead of caching a stale
// device set. Safe to call more than once; failure is non-fatal.
func startObserver(logger *slog.Logger) {
	if err := mediadevicescamera.StartObserver(); err != nil && logger != nil {
		logger.Error("darwin camera observer failed to start; hot unplug/replug may be delayed", "error", err)
	}
}
