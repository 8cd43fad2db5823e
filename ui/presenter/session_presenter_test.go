package presenter

import (
	"testing"
	"time"

	"github.com/soocke/campip-go/domain/device"
	"github.com/soocke/campip-go/domain/session"
	"github.com/soocke/campip-go/ui/model"
)

type mockManager struct {
	snap     session.Snapshot
	switched []device.Device
}

func (m *mockManager) Snapshot() session.Snapshot   { return m.snap }
func (m *mockManager) SwitchCamera(d device.Device) { m.switched = append(m.switched, d) }

type mockStatusView struct {
	liveCalls        int
	placeholderCalls int
	lastPlaceholder  string
}

func (v *mockStatusView) ShowLive() { v.liveCalls++ }
func (v *mockStatusView) ShowPlaceholder(text string) {
	v.placeholderCalls++
	v.lastPlaceholder = text
}

func TestSessionPresenter_TickReflectsLatestState(t *testing.T) {
	mgr := &mockManager{snap: session.Snapshot{State: session.StateRunning}}
	view := &mockStatusView{}
	p := NewSessionPresenter(mgr, model.NewStatusModel(), view)

	// No queued transition: nothing happens.
	p.Tick(time.Now())
	if view.liveCalls != 0 || view.placeholderCalls != 0 {
		t.Fatalf("tick without transitions touched the view")
	}

	p.OnState(session.StateAuthorizing, session.StateRunning)
	p.Tick(time.Now())
	if view.liveCalls != 1 {
		t.Fatalf("expected live surface, got live=%d placeholder=%d", view.liveCalls, view.placeholderCalls)
	}

	// Same state queued again: model filters the redundant update.
	p.OnState(session.StateRunning, session.StateRunning)
	p.Tick(time.Now())
	if view.liveCalls != 1 {
		t.Fatalf("redundant state reapplied: live=%d", view.liveCalls)
	}
}

func TestSessionPresenter_PlaceholderTexts(t *testing.T) {
	cases := []struct {
		state session.State
		want  string
	}{
		{session.StateDenied, "Camera access denied"},
		{session.StateNoCamera, "No camera available"},
		{session.StateAuthorizing, "Starting camera…"},
	}
	for _, tc := range cases {
		mgr := &mockManager{snap: session.Snapshot{State: tc.state}}
		view := &mockStatusView{}
		p := NewSessionPresenter(mgr, model.NewStatusModel(), view)
		p.OnState(session.StateIdle, tc.state)
		p.Tick(time.Now())
		if view.lastPlaceholder != tc.want {
			t.Fatalf("state %v: placeholder %q, want %q", tc.state, view.lastPlaceholder, tc.want)
		}
	}
}

func TestSessionPresenter_RefreshIsUnconditional(t *testing.T) {
	mgr := &mockManager{snap: session.Snapshot{State: session.StateNoCamera}}
	view := &mockStatusView{}
	p := NewSessionPresenter(mgr, model.NewStatusModel(), view)
	p.Refresh()
	if view.placeholderCalls != 1 || view.lastPlaceholder != "No camera available" {
		t.Fatalf("refresh did not render: calls=%d text=%q", view.placeholderCalls, view.lastPlaceholder)
	}
}

func TestUptimePresenter_Tick(t *testing.T) {
	mgr := &mockManager{snap: session.Snapshot{State: session.StateRunning}}
	up := model.NewUptimeModel()
	view := &mockUptimeView{}
	p := NewUptimePresenter(mgr, up, view)

	base := time.Unix(0, 0)
	p.Tick(base)
	p.Tick(base.Add(2 * time.Second))
	if view.current != 2*time.Second {
		t.Fatalf("current uptime = %v, want 2s", view.current)
	}

	// The last period stays visible after the feed drops.
	mgr.snap.State = session.StateNoCamera
	p.Tick(base.Add(3 * time.Second))
	if view.current != 3*time.Second || view.total != 3*time.Second {
		t.Fatalf("after drop: current=%v total=%v", view.current, view.total)
	}
}

type mockUptimeView struct{ current, total time.Duration }

func (v *mockUptimeView) SetUptime(current, total time.Duration) {
	v.current, v.total = current, total
}
