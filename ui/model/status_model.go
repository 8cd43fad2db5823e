package model

import (
	"github.com/soocke/campip-go/domain/session"
)

// StatusModel holds the last session snapshot reflected in the UI.
// No synchronization needed: updates occur on the UI thread tick.
type StatusModel struct {
	snap session.Snapshot
	set  bool
}

func NewStatusModel() *StatusModel { return &StatusModel{} }

// Update stores the snapshot and reports whether the UI-relevant parts
// changed since the last reflected value.
func (m *StatusModel) Update(s session.Snapshot) (changed bool) {
	if m == nil {
		return false
	}
	if m.set && statusEqual(m.snap, s) {
		return false
	}
	m.snap = s
	m.set = true
	return true
}

// Snapshot returns the last stored snapshot.
func (m *StatusModel) Snapshot() session.Snapshot {
	if m == nil {
		return session.Snapshot{}
	}
	return m.snap
}

func statusEqual(a, b session.Snapshot) bool {
	if a.State != b.State || a.SettingUp != b.SettingUp || a.CameraAvailable != b.CameraAvailable {
		return false
	}
	return currentID(a) == currentID(b)
}

func currentID(s session.Snapshot) string {
	if s.Current == nil {
		return ""
	}
	return s.Current.ID
}
