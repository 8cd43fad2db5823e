package presenter

import (
	"sync"
	"time"

	"github.com/soocke/campip-go/domain/session"
	"github.com/soocke/campip-go/ui/model"
)

// SnapshotSource provides the session manager methods the presenter requires.
type SnapshotSource interface {
	Snapshot() session.Snapshot
}

// StatusView switches the overlay between the live feed surface and a
// textual placeholder.
type StatusView interface {
	ShowLive()
	ShowPlaceholder(text string)
}

// SessionPresenter receives session transitions and reflects the current
// state onto the overlay surface.
type SessionPresenter struct {
	mgr    SnapshotSource
	status *model.StatusModel
	view   StatusView

	mu      sync.Mutex // guards pending; OnState fires on the manager goroutine
	pending []session.State
}

func NewSessionPresenter(mgr SnapshotSource, status *model.StatusModel, view StatusView) *SessionPresenter {
	return &SessionPresenter{mgr: mgr, status: status, view: view}
}

// OnState queues a transitioned state from the session listener.
//
// The latest queued state will be reflected on the next Tick. Safe to
// call from the manager goroutine.
func (p *SessionPresenter) OnState(prev, next session.State) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.pending = append(p.pending, next)
	p.mu.Unlock()
}

// Tick processes queued states and updates the view from the current
// snapshot. It clears the pending queue after processing.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.mgr == nil || p.view == nil {
		return
	}
	p.mu.Lock()
	n := len(p.pending)
	p.pending = p.pending[:0]
	p.mu.Unlock()
	if n == 0 {
		return
	}
	snap := p.mgr.Snapshot()
	if p.status != nil && !p.status.Update(snap) {
		return
	}
	p.apply(snap)
}

// Refresh pushes the current snapshot unconditionally, regardless of
// queued transitions. Used for the initial render.
func (p *SessionPresenter) Refresh() {
	if p == nil || p.mgr == nil || p.view == nil {
		return
	}
	snap := p.mgr.Snapshot()
	if p.status != nil {
		p.status.Update(snap)
	}
	p.apply(snap)
}

func (p *SessionPresenter) apply(snap session.Snapshot) {
	switch snap.State {
	case session.StateRunning:
		p.view.ShowLive()
	case session.StateDenied:
		p.view.ShowPlaceholder("Camera access denied")
	case session.StateNoCamera:
		p.view.ShowPlaceholder("No camera available")
	case session.StateAuthorizing:
		p.view.ShowPlaceholder("Starting camera…")
	default:
		p.view.ShowPlaceholder("")
	}
}
