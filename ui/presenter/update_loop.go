package presenter

import (
	"image"
	"time"
)

// Repositioner moves the overlay window for a new display rectangle.
type Repositioner interface {
	Reposition(display image.Rectangle)
}

// Loop aggregates feature presenters and drives periodic updates.
//
// It calls Tick/ProcessFrame on the sub-presenters, drains pending
// display changes and invokes a scheduler callback. The zero value is
// usable (methods are nil-safe).
type Loop struct {
	Session  *SessionPresenter
	Preview  *PreviewPresenter
	Menu     *MenuPresenter
	Uptime   *UptimePresenter
	Display  *DisplayWatcher
	Overlay  Repositioner
	Schedule func()
}

func NewLoop(sess *SessionPresenter, preview *PreviewPresenter, menu *MenuPresenter, uptime *UptimePresenter, display *DisplayWatcher, overlay Repositioner, schedule func()) *Loop {
	return &Loop{Session: sess, Preview: preview, Menu: menu, Uptime: uptime, Display: display, Overlay: overlay, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	// Flush pending state changes before drawing so a placeholder never
	// overdraws a frame from the same tick.
	if l.Session != nil {
		l.Session.Tick(now)
	}
	if l.Preview != nil {
		l.Preview.ProcessFrame()
	}
	if l.Menu != nil {
		l.Menu.Tick()
	}
	if l.Uptime != nil {
		l.Uptime.Tick(now)
	}
	if l.Display != nil && l.Overlay != nil {
		if bounds, ok := l.Display.TakeChange(); ok {
			l.Overlay.Reposition(bounds)
		}
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
