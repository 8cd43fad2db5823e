//go:build darwin

package capture

// The OS gates camera access behind a per-application permission.
const authGated = true
