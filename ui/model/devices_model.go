package model

import (
	"github.com/soocke/campip-go/domain/device"
)

// DevicesModel tracks the device list and current selection last rendered
// into the camera submenu. Menu rebuilds are wholesale, so the model only
// answers "did anything change since the last render".
type DevicesModel struct {
	rendered   device.List
	currentID  string
	everRender bool
}

func NewDevicesModel() *DevicesModel { return &DevicesModel{} }

// NeedsRebuild reports whether the menu content would differ from the
// last rendered state. A rename counts as a change here even though the
// session layer ignores it: the menu shows labels.
func (m *DevicesModel) NeedsRebuild(list device.List, currentID string) bool {
	if m == nil {
		return false
	}
	if !m.everRender {
		return true
	}
	if m.currentID != currentID {
		return true
	}
	if len(m.rendered) != len(list) {
		return true
	}
	for i := range list {
		if m.rendered[i].ID != list[i].ID || m.rendered[i].Name != list[i].Name {
			return true
		}
	}
	return false
}

// MarkRendered records the state the menu now reflects.
func (m *DevicesModel) MarkRendered(list device.List, currentID string) {
	if m == nil {
		return
	}
	m.rendered = append(device.List(nil), list...)
	m.currentID = currentID
	m.everRender = true
}

// Rendered returns the device list behind the current menu entries.
// Index positions correspond to menu entry order.
func (m *DevicesModel) Rendered() device.List {
	if m == nil {
		return nil
	}
	return m.rendered
}
