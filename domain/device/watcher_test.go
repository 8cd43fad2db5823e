package device

import (
	"log/slog"
	"sync"
	"testing"
	"time"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// fakeDirectory serves a swappable device list.
type fakeDirectory struct {
	mu   sync.Mutex
	list List
}

func (f *fakeDirectory) List() List {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.list
}

func (f *fakeDirectory) set(l List) {
	f.mu.Lock()
	f.list = l
	f.mu.Unlock()
}

type recordingSink struct {
	mu    sync.Mutex
	calls []List
}

func (r *recordingSink) DevicesChanged(l List) {
	r.mu.Lock()
	r.calls = append(r.calls, l)
	r.mu.Unlock()
}

func (r *recordingSink) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("timeout waiting for condition")
}

func TestWatcher_NotifiesOnChange(t *testing.T) {
	dir := &fakeDirectory{}
	sink := &recordingSink{}
	w := NewWatcher(dir, sink, discardLogger, 10*time.Millisecond)
	w.Start()
	defer w.Stop()

	// Nothing attached and nothing changing: no notifications.
	time.Sleep(50 * time.Millisecond)
	if sink.count() != 0 {
		t.Fatalf("unexpected notification with an empty stable directory: %d", sink.count())
	}

	dir.set(List{external("a", "Cam A"), external("b", "Cam B")})
	waitFor(t, time.Second, func() bool { return sink.count() == 1 })

	sink.mu.Lock()
	got := sink.calls[0]
	sink.mu.Unlock()
	if len(got) != 2 || got[1].ID != "b" {
		t.Fatalf("unexpected refreshed list: %+v", got)
	}
}

func TestWatcher_DeliversCameraAttachedBeforeFirstPoll(t *testing.T) {
	// A camera landing after the session manager's own directory query
	// but before the first poll must still be delivered, or a no-camera
	// session never recovers.
	dir := &fakeDirectory{}
	sink := &recordingSink{}
	w := NewWatcher(dir, sink, discardLogger, 10*time.Millisecond)
	w.Start()
	defer w.Stop()
	dir.set(List{frontBuiltIn("cam-0", "FaceTime")})

	waitFor(t, time.Second, func() bool { return sink.count() == 1 })
	sink.mu.Lock()
	got := sink.calls[0]
	sink.mu.Unlock()
	if len(got) != 1 || got[0].ID != "cam-0" {
		t.Fatalf("expected the freshly attached camera, got %+v", got)
	}

	// Unchanged thereafter: no repeat delivery.
	time.Sleep(80 * time.Millisecond)
	if sink.count() != 1 {
		t.Fatalf("stable list must not re-notify: %d calls", sink.count())
	}
}

func TestWatcher_UnplugProducesEmptyList(t *testing.T) {
	dir := &fakeDirectory{list: List{external("a", "Cam A")}}
	sink := &recordingSink{}
	w := NewWatcher(dir, sink, discardLogger, 10*time.Millisecond)
	w.Start()
	defer w.Stop()

	// First poll delivers the present camera, then the unplug follows
	// as a wholesale empty refresh.
	waitFor(t, time.Second, func() bool { return sink.count() == 1 })
	dir.set(nil)
	waitFor(t, time.Second, func() bool { return sink.count() == 2 })

	sink.mu.Lock()
	got := sink.calls[1]
	sink.mu.Unlock()
	if len(got) != 0 {
		t.Fatalf("expected empty wholesale refresh, got %+v", got)
	}
}

func TestWatcher_NoNotifyOnRenameOnly(t *testing.T) {
	dir := &fakeDirectory{list: List{external("a", "Cam A")}}
	sink := &recordingSink{}
	w := NewWatcher(dir, sink, discardLogger, 10*time.Millisecond)
	w.Start()
	defer w.Stop()

	waitFor(t, time.Second, func() bool { return sink.count() == 1 })
	// Same identity, new label: identity is the ID, not the name.
	dir.set(List{external("a", "Cam A (renamed)")})
	time.Sleep(80 * time.Millisecond)
	if sink.count() != 1 {
		t.Fatalf("rename alone must not look like hot-plug: %d calls", sink.count())
	}
}

func TestWatcher_StartStopIdempotent(t *testing.T) {
	dir := &fakeDirectory{}
	w := NewWatcher(dir, &recordingSink{}, discardLogger, 10*time.Millisecond)
	w.Start()
	w.Start()
	if !w.Running() {
		t.Fatal("expected running")
	}
	w.Stop()
	w.Stop()
	if w.Running() {
		t.Fatal("expected stopped")
	}
}
