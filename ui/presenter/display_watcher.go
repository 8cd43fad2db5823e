package presenter

import (
	"image"
	"log/slog"
	"sync/atomic"
	"time"
)

// DisplayWatcher polls the main display bounds and records changes so
// the overlay can be repositioned after a resolution switch or monitor
// change.
//
// Polling happens on a background goroutine; the Tk thread must not be
// touched from there, so changes are handed over through TakeChange
// which the update loop drains on its own ticks.
type DisplayWatcher struct {
	Bounds   func() image.Rectangle
	Logger   *slog.Logger
	interval time.Duration

	running atomic.Bool
	done    chan struct{}
	primed  bool
	last    image.Rectangle
	changed atomic.Pointer[image.Rectangle]
}

func NewDisplayWatcher(bounds func() image.Rectangle, logger *slog.Logger, interval time.Duration) *DisplayWatcher {
	if interval <= 0 {
		interval = time.Second
	}
	return &DisplayWatcher{Bounds: bounds, Logger: logger, interval: interval}
}

func (w *DisplayWatcher) Start() {
	if w == nil || w.Bounds == nil || w.running.Load() {
		return
	}
	w.done = make(chan struct{})
	w.running.Store(true)
	w.primed = false
	go w.loop()
}

func (w *DisplayWatcher) Stop() {
	if w == nil || !w.running.Load() {
		return
	}
	close(w.done)
	w.running.Store(false)
}

// TakeChange returns the most recent unseen display bounds and clears
// the pending change. Called from the UI thread.
func (w *DisplayWatcher) TakeChange() (image.Rectangle, bool) {
	if w == nil {
		return image.Rectangle{}, false
	}
	if r := w.changed.Swap(nil); r != nil {
		return *r, true
	}
	return image.Rectangle{}, false
}

func (w *DisplayWatcher) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	w.poll()
	for {
		select {
		case <-ticker.C:
			w.poll()
		case <-w.done:
			return
		}
	}
}

func (w *DisplayWatcher) poll() {
	bounds := w.Bounds()
	if !w.primed {
		w.primed = true
		w.last = bounds
		return
	}
	if bounds == w.last {
		return
	}
	w.last = bounds
	b := bounds
	w.changed.Store(&b)
	if w.Logger != nil {
		w.Logger.Debug("display change", "bounds", bounds.String())
	}
}
