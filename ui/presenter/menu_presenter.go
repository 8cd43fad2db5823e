package presenter

import (
	"fmt"
	"log/slog"

	"github.com/soocke/campip-go/domain/device"
	"github.com/soocke/campip-go/ui/model"
)

// SwitchTarget narrows what the menu presenter needs from the session
// layer.
type SwitchTarget interface {
	SnapshotSource
	SwitchCamera(d device.Device)
}

// MenuEntry is one selectable camera row in the menu.
type MenuEntry struct {
	Label       string
	Accelerator string // shortcut hint shown next to the label, may be empty
	Current     bool
}

// MenuView rebuilds the camera menu wholesale from the given entries.
type MenuView interface {
	RebuildCameraMenu(entries []MenuEntry)
}

// MenuPresenter keeps the camera menu in sync with the device directory
// and routes selections back to the session manager.
type MenuPresenter struct {
	mgr     SwitchTarget
	devices *model.DevicesModel
	view    MenuView
	logger  *slog.Logger
}

func NewMenuPresenter(mgr SwitchTarget, devices *model.DevicesModel, view MenuView, logger *slog.Logger) *MenuPresenter {
	return &MenuPresenter{mgr: mgr, devices: devices, view: view, logger: logger}
}

// Tick rebuilds the menu if the device list or the selection changed.
// Runs on the UI thread.
func (p *MenuPresenter) Tick() {
	if p == nil || p.mgr == nil || p.devices == nil || p.view == nil {
		return
	}
	snap := p.mgr.Snapshot()
	currentID := ""
	if snap.Current != nil {
		currentID = snap.Current.ID
	}
	if !p.devices.NeedsRebuild(snap.Devices, currentID) {
		return
	}
	entries := make([]MenuEntry, 0, len(snap.Devices))
	for i, d := range snap.Devices {
		e := MenuEntry{Label: d.Name, Current: d.ID == currentID}
		if i < 9 {
			e.Accelerator = fmt.Sprintf("%s+%d", modifierLabel, i+1)
		}
		entries = append(entries, e)
	}
	p.view.RebuildCameraMenu(entries)
	p.devices.MarkRendered(snap.Devices, currentID)
}

// Select switches to the device behind menu entry i, as last rendered.
func (p *MenuPresenter) Select(i int) {
	if p == nil || p.mgr == nil || p.devices == nil {
		return
	}
	rendered := p.devices.Rendered()
	if i < 0 || i >= len(rendered) {
		return
	}
	if p.logger != nil {
		p.logger.Debug("menu select", "index", i, "device", rendered[i].Name)
	}
	p.mgr.SwitchCamera(rendered[i])
}

// SelectNth handles a numbered shortcut. Index is zero-based and applies
// to the live device list, not the rendered menu, so a shortcut pressed
// right after a hot-plug targets the device the user sees.
func (p *MenuPresenter) SelectNth(i int) {
	if p == nil || p.mgr == nil {
		return
	}
	snap := p.mgr.Snapshot()
	if i < 0 || i >= len(snap.Devices) {
		return
	}
	p.mgr.SwitchCamera(snap.Devices[i])
}
