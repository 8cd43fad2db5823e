package presenter

import (
	"time"

	"github.com/soocke/campip-go/domain/session"
	"github.com/soocke/campip-go/ui/model"
)

// UptimeView displays formatted feed uptime durations.
type UptimeView interface {
	SetUptime(current, total time.Duration)
}

// UptimePresenter advances the uptime model from the session state and
// pushes the values to the settings panel.
type UptimePresenter struct {
	mgr    SnapshotSource
	uptime *model.UptimeModel
	view   UptimeView
}

func NewUptimePresenter(mgr SnapshotSource, uptime *model.UptimeModel, view UptimeView) *UptimePresenter {
	return &UptimePresenter{mgr: mgr, uptime: uptime, view: view}
}

// Tick updates the presenter: advance the uptime model and push values
// to the view.
func (p *UptimePresenter) Tick(now time.Time) {
	if p == nil || p.mgr == nil || p.uptime == nil || p.view == nil {
		return
	}
	live := p.mgr.Snapshot().State == session.StateRunning
	p.uptime.OnTick(live, now)
	c, t := p.uptime.Values()
	p.view.SetUptime(c, t)
}
