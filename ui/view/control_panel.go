package view

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/soocke/campip-go/config"
	"github.com/soocke/campip-go/ui/presenter"
	"github.com/soocke/campip-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ControlPanel is the on-demand settings window opened from the
// overlay. It hosts the camera picker, preview settings and the feed
// uptime readout. The overlay itself stays chrome-less, so everything
// interactive lives here.
type ControlPanel interface {
	OpenOrFocus()
	RebuildCameraMenu(entries []presenter.MenuEntry)
	SetUptime(current, total time.Duration)
}

// PanelCallbacks carries the actions the panel can trigger.
type PanelCallbacks struct {
	OnSelectCamera func(index int)
	OnQuit         func()
}

type controlPanel struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger
	cb      PanelCallbacks

	win       *ToplevelWidget
	picker    *TComboboxWidget
	uptimeLbl *LabelWidget
	fields    map[string]*TextWidget

	entries []presenter.MenuEntry
	uptime  string
}

func NewControlPanel(cfg *config.Config, cfgPath string, logger *slog.Logger, cb PanelCallbacks) ControlPanel {
	return &controlPanel{cfg: cfg, cfgPath: cfgPath, logger: logger, cb: cb, fields: make(map[string]*TextWidget)}
}

func (v *controlPanel) OpenOrFocus() {
	if v.win != nil {
		WmGeometry(v.win.Window)
		return
	}
	win := App.Toplevel(Borderwidth(1), Background(theme.ColorSettingsBg))
	win.WmTitle("CamPiP Settings")
	v.win = win
	WmAttributes(win.Window, "-topmost", 1)
	WmProtocol(win.Window, "WM_DELETE_WINDOW", v.close)

	row := 0
	pickLbl := win.Label(Txt("Camera"), Anchor("w"))
	Grid(pickLbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.3m"))
	v.picker = win.TCombobox(Values(v.pickerValues()), Width(30))
	Grid(v.picker, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	v.syncPickerSelection()
	Bind(v.picker, "<<ComboboxSelected>>", Command(func() {
		if v.picker == nil || v.cb.OnSelectCamera == nil {
			return
		}
		idxStr := v.picker.Current(nil)
		idx, err := strconv.Atoi(idxStr)
		if err != nil || idx < 0 || idx >= len(v.entries) {
			if v.logger != nil {
				v.logger.Error("camera selection parse error", "value", idxStr, "error", err)
			}
			return
		}
		v.cb.OnSelectCamera(idx)
	}))
	row++

	makeField := func(id, label, value string) {
		lbl := win.Label(Txt(label), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := win.Text(Height(1), Width(10))
		Grid(w, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		v.fields[id] = w
		row++
	}
	makeField("previewFPS", "Preview FPS", fmt.Sprintf("%d", v.cfg.PreviewFPS))
	makeField("cornerPadding", "Corner Padding", fmt.Sprintf("%d", v.cfg.CornerPadding))

	applyBtn := win.Button(Txt("Apply"), Command(v.applyChanges))
	Grid(applyBtn, Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++

	v.uptimeLbl = win.Label(Txt(v.uptimeText()), Anchor("w"))
	Grid(v.uptimeLbl, Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++

	quitBtn := win.Button(Txt("Quit CamPiP"), Command(func() {
		if v.cb.OnQuit != nil {
			v.cb.OnQuit()
		}
	}))
	Grid(quitBtn, Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	Bind(win, "<Escape>", Command(v.close))
}

// RebuildCameraMenu replaces the picker entries wholesale. Safe to call
// while the panel is closed; the stored entries seed the next open.
func (v *controlPanel) RebuildCameraMenu(entries []presenter.MenuEntry) {
	v.entries = entries
	if v.picker == nil {
		return
	}
	v.picker.Configure(Values(v.pickerValues()))
	v.syncPickerSelection()
}

func (v *controlPanel) SetUptime(current, total time.Duration) {
	v.uptime = fmt.Sprintf("Feed %s, total %s", formatDuration(current), formatDuration(total))
	if v.uptimeLbl == nil {
		return
	}
	v.uptimeLbl.Configure(Txt(v.uptimeText()))
}

func (v *controlPanel) pickerValues() []string {
	if len(v.entries) == 0 {
		return []string{"<no cameras>"}
	}
	vals := make([]string, 0, len(v.entries))
	for _, e := range v.entries {
		label := e.Label
		if e.Accelerator != "" {
			label = fmt.Sprintf("%s  (%s)", label, e.Accelerator)
		}
		vals = append(vals, label)
	}
	return vals
}

func (v *controlPanel) syncPickerSelection() {
	if v.picker == nil {
		return
	}
	for i, e := range v.entries {
		if e.Current {
			v.picker.Current(i)
			return
		}
	}
	v.picker.Current(0)
}

func (v *controlPanel) uptimeText() string {
	if v.uptime == "" {
		return "Feed 00:00, total 00:00"
	}
	return v.uptime
}

func (v *controlPanel) applyChanges() {
	if v.cfg == nil {
		return
	}
	cfg := *v.cfg // copy
	if w := v.fields["previewFPS"]; w != nil {
		if i, err := strconv.Atoi(strings.TrimSpace(v.text(w))); err == nil {
			cfg.PreviewFPS = i
		}
	}
	if w := v.fields["cornerPadding"]; w != nil {
		if i, err := strconv.Atoi(strings.TrimSpace(v.text(w))); err == nil {
			cfg.CornerPadding = i
		}
	}
	if err := cfg.Validate(); err != nil {
		if v.logger != nil {
			v.logger.Error("settings rejected", "error", err)
		}
		return
	}
	*v.cfg = cfg
	if err := v.cfg.Save(v.cfgPath); err != nil {
		if v.logger != nil {
			v.logger.Error("config save failed", "error", err)
		}
		return
	}
	if v.logger != nil {
		v.logger.Info("config saved", "path", v.cfgPath)
	}
}

func (v *controlPanel) text(w *TextWidget) string {
	if w == nil {
		return ""
	}
	return strings.Join(w.Get("1.0", END), "")
}

func (v *controlPanel) close() {
	if v.win != nil {
		Destroy(v.win)
		v.win = nil
		v.picker = nil
		v.uptimeLbl = nil
		v.fields = make(map[string]*TextWidget)
	}
}

func formatDuration(d time.Duration) string {
	seconds := int(d.Seconds())
	min, sec := seconds/60, seconds%60
	return fmt.Sprintf("%02d:%02d", min, sec)
}
