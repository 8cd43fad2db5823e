//go:build !darwin

package capture

// No per-application camera permission outside darwin.
const authGated = false
