package capture

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/pion/mediadevices"

	"github.com/soocke/campip-go/domain/session"
)

// ProbeAuthorizer implements the session Authorizer over the capture
// stack itself: on permission-gated platforms the first device open is
// what makes the OS raise its camera prompt, so Request probes a device
// open and classifies the outcome. Elsewhere access is always granted.
// The status only moves forward within one process; OS-level settings
// changes after a denial are not observed.
type ProbeAuthorizer struct {
	logger *slog.Logger

	mu     sync.Mutex
	status session.AuthStatus
	probed bool
}

func NewProbeAuthorizer(logger *slog.Logger) *ProbeAuthorizer {
	st := session.AuthUndetermined
	if !authGated {
		st = session.AuthGranted
	}
	return &ProbeAuthorizer{logger: logger, status: st}
}

func (a *ProbeAuthorizer) Status() session.AuthStatus {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status
}

// Request issues the probe asynchronously and reports the decision.
func (a *ProbeAuthorizer) Request(cb func(granted bool)) {
	a.mu.Lock()
	if a.probed {
		granted := a.status == session.AuthGranted
		a.mu.Unlock()
		go cb(granted)
		return
	}
	a.probed = true
	a.mu.Unlock()

	go func() {
		granted := a.probe()
		a.mu.Lock()
		if granted {
			a.status = session.AuthGranted
		} else {
			a.status = session.AuthDenied
		}
		a.mu.Unlock()
		cb(granted)
	}()
}

// probe opens and immediately closes a default video stream. The open
// blocks until the user answers the OS prompt when one is shown.
func (a *ProbeAuthorizer) probe() bool {
	stream, err := mediadevices.GetUserMedia(mediadevices.MediaStreamConstraints{
		Video: func(c *mediadevices.MediaTrackConstraints) {},
	})
	if err == nil {
		for _, t := range stream.GetTracks() {
			_ = t.Close()
		}
		return true
	}
	if a.logger != nil {
		a.logger.Debug("authorization probe open failed", "error", err)
	}
	// No camera attached is not a denial; only a permission-shaped
	// failure counts as one.
	return !isPermissionError(err)
}

func isPermissionError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, needle := range []string{"permission", "not authorized", "denied", "declined"} {
		if strings.Contains(msg, needle) {
			return true
		}
	}
	return false
}

var _ session.Authorizer = (*ProbeAuthorizer)(nil)
