package view

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/soocke/campip-go/config"
	"github.com/soocke/campip-go/ui/images"
	"github.com/soocke/campip-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// OverlayCallbacks carries the user actions the overlay window can
// trigger.
type OverlayCallbacks struct {
	OnOpenPanel func()          // secondary click
	OnShortcut  func(index int) // modifier plus digit, zero-based index
	OnExit      func()
}

// OverlayView is the chrome-less always-on-top preview window. The Tk
// root window itself serves as the overlay; there is no other primary
// window in this application.
//
// The window alternates between a live frame surface and a textual
// placeholder on the same label, using a centered compound so the text
// renders over the dark backdrop image.
type OverlayView struct {
	cfg     *config.Config
	display DisplayMetrics
	logger  *slog.Logger

	surface *LabelWidget
	photo   *Img

	// drag state, window-relative press point
	dragX, dragY int
}

func NewOverlayView(cfg *config.Config, display DisplayMetrics, logger *slog.Logger) *OverlayView {
	if display == nil {
		display = StaticDisplay{W: cfg.ScreenWidth, H: cfg.ScreenHeight}
	}
	return &OverlayView{cfg: cfg, display: display, logger: logger}
}

// Build strips the window chrome, pins the window above other windows
// and places it in the padded top-right corner of the display.
func (v *OverlayView) Build(cb OverlayCallbacks) {
	if v == nil {
		return
	}
	App.WmTitle("CamPiP")
	WmOverrideRedirect(App, true)
	WmAttributes(App, "-topmost", 1)

	w, h := v.cfg.WindowWidth, v.cfg.WindowHeight
	origin := ComputeOrigin(v.display.Bounds(), w, h, v.cfg.CornerPadding)
	WmGeometry(App, fmt.Sprintf("%dx%d+%d+%d", w, h, origin.X, origin.Y))

	v.photo = NewPhoto(Data(images.EncodePNG(v.backdrop())))
	v.surface = Label(Image(v.photo), Compound("center"), Anchor("center"),
		Background(theme.ColorBg), Foreground(theme.ColorText), Borderwidth(0))
	GridRowConfigure(App, 0, Weight(1))
	GridColumnConfigure(App, 0, Weight(1))
	Grid(v.surface, Row(0), Column(0), Sticky("nsew"))

	// Drag anywhere. Motion coordinates are window relative, so the
	// press point offset keeps the grab point under the pointer.
	Bind(App, "<ButtonPress-1>", Command(func(e *Event) {
		v.dragX, v.dragY = e.X, e.Y
	}))
	Bind(App, "<B1-Motion>", Command(func(e *Event) {
		v.dragBy(e.X-v.dragX, e.Y-v.dragY)
	}))

	// Secondary click opens the control panel. Button-2 covers
	// two-finger click setups that report the middle button.
	if cb.OnOpenPanel != nil {
		Bind(App, "<Button-3>", Command(func() { cb.OnOpenPanel() }))
		Bind(App, "<Button-2>", Command(func() { cb.OnOpenPanel() }))
	}

	// Numbered camera bindings. The same chords are registered
	// system-wide, so with the overlay focused a press dispatches twice.
	if cb.OnShortcut != nil {
		for i := 1; i <= 9; i++ {
			idx := i - 1
			Bind(App, fmt.Sprintf("<%s-Key-%d>", bindModifier, i), Command(func() { cb.OnShortcut(idx) }))
		}
	}

	if cb.OnExit != nil {
		WmProtocol(App, "WM_DELETE_WINDOW", cb.OnExit)
	}
}

// SurfaceSize reports the preview surface dimensions.
func (v *OverlayView) SurfaceSize() (int, int) {
	if v == nil || v.cfg == nil {
		return 0, 0
	}
	return v.cfg.WindowWidth, v.cfg.WindowHeight
}

// UpdatePreview replaces the surface image with a prepared frame.
// The previous Tk photo is deleted so pixel data does not accumulate.
func (v *OverlayView) UpdatePreview(img image.Image) {
	if v == nil || v.surface == nil || img == nil {
		return
	}
	pngBytes := images.EncodePNG(img)
	if v.photo != nil {
		v.photo.Delete()
	}
	v.photo = NewPhoto(Data(pngBytes))
	v.surface.Configure(Image(v.photo))
}

// ShowLive clears any placeholder text; the next UpdatePreview draws
// the frame.
func (v *OverlayView) ShowLive() {
	if v == nil || v.surface == nil {
		return
	}
	v.surface.Configure(Txt(""), Foreground(theme.ColorText))
}

// ShowPlaceholder swaps the surface to the dark backdrop with the given
// text centered on it.
func (v *OverlayView) ShowPlaceholder(text string) {
	if v == nil || v.surface == nil {
		return
	}
	if v.photo != nil {
		v.photo.Delete()
	}
	v.photo = NewPhoto(Data(images.EncodePNG(v.backdrop())))
	fg := theme.ColorText
	if text == "Camera access denied" {
		fg = theme.ColorDanger
	}
	v.surface.Configure(Image(v.photo), Txt(text), Foreground(fg))
}

// Reposition re-anchors the window to the top-right corner of the given
// display bounds. Called after a display or resolution change.
func (v *OverlayView) Reposition(display image.Rectangle) {
	if v == nil || v.cfg == nil {
		return
	}
	w, h := v.cfg.WindowWidth, v.cfg.WindowHeight
	origin := ComputeOrigin(display, w, h, v.cfg.CornerPadding)
	WmGeometry(App, fmt.Sprintf("%dx%d+%d+%d", w, h, origin.X, origin.Y))
	if v.logger != nil {
		v.logger.Debug("overlay repositioned", "origin", origin.String())
	}
}

func (v *OverlayView) dragBy(dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	cur, ok := parseGeometry(WmGeometry(App))
	if !ok {
		return
	}
	WmGeometry(App, fmt.Sprintf("%dx%d+%d+%d", cur.Dx(), cur.Dy(), cur.Min.X+dx, cur.Min.Y+dy))
}

// backdrop returns the blank dark surface sized to the window.
func (v *OverlayView) backdrop() image.Image {
	w, h := v.cfg.WindowWidth, v.cfg.WindowHeight
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return images.Solid(w, h, theme.ColorBg)
}
