package presenter

import (
	"image"
	"sync"
	"testing"
	"time"
)

type boundsStub struct {
	mu sync.Mutex
	r  image.Rectangle
}

func (b *boundsStub) get() image.Rectangle {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.r
}

func (b *boundsStub) set(r image.Rectangle) {
	b.mu.Lock()
	b.r = r
	b.mu.Unlock()
}

func waitForChange(t *testing.T, w *DisplayWatcher, timeout time.Duration) (image.Rectangle, bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if r, ok := w.TakeChange(); ok {
			return r, true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return image.Rectangle{}, false
}

func TestDisplayWatcher_ReportsBoundsChange(t *testing.T) {
	stub := &boundsStub{r: image.Rect(0, 0, 1920, 1080)}
	w := NewDisplayWatcher(stub.get, nil, 10*time.Millisecond)
	w.Start()
	defer w.Stop()

	// Baseline poll must not report.
	if _, ok := waitForChange(t, w, 100*time.Millisecond); ok {
		t.Fatalf("baseline reported as change")
	}

	want := image.Rect(0, 0, 2560, 1440)
	stub.set(want)
	got, ok := waitForChange(t, w, time.Second)
	if !ok || got != want {
		t.Fatalf("change not reported: ok=%v got=%v", ok, got)
	}

	// Change is consumed once.
	if _, ok := w.TakeChange(); ok {
		t.Fatalf("change reported twice")
	}
}

func TestDisplayWatcher_StartStopIdempotent(t *testing.T) {
	stub := &boundsStub{r: image.Rect(0, 0, 1920, 1080)}
	w := NewDisplayWatcher(stub.get, nil, 10*time.Millisecond)
	w.Start()
	w.Start()
	w.Stop()
	w.Stop()
}
