package model

import (
	"time"
)

// UptimeModel tracks how long the live feed has been up and the
// accumulated live time across camera switches and interruptions.
// It is decoupled from the UI; presenters should poll Values() and
// update views. The zero value is ready to use.
type UptimeModel struct {
	live             bool
	liveSince        time.Time
	lastLiveDuration time.Duration
	accumulated      time.Duration
}

// NewUptimeModel returns a pointer to a ready-to-use UptimeModel.
func NewUptimeModel() *UptimeModel { return &UptimeModel{} }

// OnTick updates the model using the current feed state and timestamp.
// Call periodically (for example, from a presenter tick).
func (m *UptimeModel) OnTick(live bool, now time.Time) {
	if m == nil {
		return
	}
	if live {
		if !m.live { // transition down -> up
			m.live = true
			m.liveSince = now
			m.lastLiveDuration = 0
		}
		m.lastLiveDuration = now.Sub(m.liveSince)
	} else if m.live { // transition up -> down
		m.lastLiveDuration = now.Sub(m.liveSince)
		m.accumulated += m.lastLiveDuration
		m.live = false
	}
}

// Values returns the current live duration and the total accumulated
// live time. The total includes the ongoing period when live.
func (m *UptimeModel) Values() (current, total time.Duration) {
	if m == nil {
		return 0, 0
	}
	current = m.lastLiveDuration
	total = m.accumulated
	if m.live {
		total += current
	}
	return
}
