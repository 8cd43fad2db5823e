package device

import (
	"log/slog"
	"sync/atomic"
	"time"
)

// ChangeSink receives wholesale device-list refreshes produced by the watcher.
type ChangeSink interface {
	DevicesChanged(List)
}

// Watcher polls the directory and publishes a refreshed device list to
// the sink whenever the set of attached devices changes. There is no
// incremental diffing; every hot-plug produces a full new list.
type Watcher struct {
	dir      Directory
	sink     ChangeSink
	logger   *slog.Logger
	interval time.Duration
	running  atomic.Bool
	done     chan struct{}
	last     List
}

// NewWatcher constructs a hot-plug watcher polling at the given interval.
func NewWatcher(dir Directory, sink ChangeSink, logger *slog.Logger, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = time.Second
	}
	return &Watcher{dir: dir, sink: sink, logger: logger, interval: interval}
}

// Start begins polling. Idempotent.
func (w *Watcher) Start() {
	if w == nil || w.dir == nil || w.sink == nil {
		return
	}
	if w.running.Load() {
		return
	}
	done := make(chan struct{})
	w.done = done
	w.running.Store(true)
	w.last = nil
	startObserver(w.logger)
	go w.loop(done)
}

// Stop halts polling. Idempotent.
func (w *Watcher) Stop() {
	if w == nil || !w.running.Load() {
		return
	}
	close(w.done)
	w.running.Store(false)
}

// Running reports whether the watcher is active.
func (w *Watcher) Running() bool { return w != nil && w.running.Load() }

func (w *Watcher) loop(done chan struct{}) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			w.poll()
		case <-done:
			return
		}
	}
}

// poll compares against the last delivered list, starting from empty.
// A camera attached between the session manager's own directory query
// and the first poll is therefore still delivered; the manager treats a
// refresh that changes nothing as a plain list update.
func (w *Watcher) poll() {
	current := w.dir.List()
	if SameIDs(w.last, current) {
		return
	}
	w.last = current
	if w.logger != nil {
		w.logger.Info("device hot-plug detected", "count", len(current))
	}
	w.sink.DevicesChanged(current)
}
