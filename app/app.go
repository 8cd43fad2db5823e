package app

import (
	"image"
	"time"

	. "modernc.org/tk9.0"

	"github.com/soocke/campip-go/debug"
	"github.com/soocke/campip-go/ui/presenter"
	"github.com/soocke/campip-go/ui/theme"
	"github.com/soocke/campip-go/ui/view"
)

// app owns the Tk lifecycle: it builds the overlay and control panel,
// wires the presenters and drives the update loop on Tk's event thread.
type app struct {
	c       *Container
	loop    *presenter.Loop
	keys    *presenter.KeyRouter
	display *presenter.DisplayWatcher
	afterID string
	exiting bool
}

func NewApp(c *Container) *app {
	return &app{c: c}
}

// Run builds the UI, starts the session and blocks until the overlay is
// closed.
func (a *app) Run() {
	cfg := a.c.Config
	logger := a.c.Logger

	theme.InitStyles()

	// Display bounds currently come from config; the provider seam is
	// where a live Tk winfo query would slot in.
	metrics := view.StaticDisplay{W: cfg.ScreenWidth, H: cfg.ScreenHeight}

	var menu *presenter.MenuPresenter

	panel := view.NewControlPanel(cfg, a.c.CfgPath, logger, view.PanelCallbacks{
		OnSelectCamera: func(i int) { menu.Select(i) },
		OnQuit:         a.exitHandler,
	})

	a.keys = presenter.NewKeyRouter(func(i int) { menu.SelectNth(i) }, logger)

	overlay := view.NewOverlayView(cfg, metrics, logger)
	overlay.Build(view.OverlayCallbacks{
		OnOpenPanel: panel.OpenOrFocus,
		OnShortcut:  func(i int) { a.keys.DispatchLocal(i) },
		OnExit:      a.exitHandler,
	})

	sess := presenter.NewSessionPresenter(a.c.Manager, a.c.Status, overlay)
	preview := presenter.NewPreviewPresenter(a.c.Manager, a.c.Pipeline, overlay, logger)
	menu = presenter.NewMenuPresenter(a.c.Manager, a.c.Devices, panel, logger)
	uptime := presenter.NewUptimePresenter(a.c.Manager, a.c.Uptime, panel)
	a.display = presenter.NewDisplayWatcher(
		func() image.Rectangle { return metrics.Bounds() },
		logger,
		time.Duration(cfg.DisplayPollMS)*time.Millisecond,
	)
	a.loop = presenter.NewLoop(sess, preview, menu, uptime, a.display, overlay, a.scheduleUpdate)

	a.c.Manager.AddListener(sess.OnState)
	sess.Refresh()

	if cfg.Debug {
		debug.StartRuntimeLogger(2*time.Second, a.c.Pipeline, logger)
		debug.StartMemLogger(2*time.Second, logger)
	}

	a.c.Manager.Start()
	a.c.Watcher.Start()
	a.display.Start()
	a.keys.Start()

	a.scheduleUpdate()
	App.Wait()
}

func (a *app) update() {
	if a.exiting {
		return
	}
	a.loop.Tick()
}

func (a *app) scheduleUpdate() {
	// Schedule the next update using TclAfter to stay on Tk's event
	// loop thread. The interval follows the configured preview rate so
	// an Apply in the panel takes effect on the next tick.
	a.afterID = TclAfter(a.tickInterval(), func() { a.update() })
}

func (a *app) tickInterval() time.Duration {
	fps := a.c.Config.PreviewFPS
	if fps < 1 {
		fps = 1
	}
	return time.Second / time.Duration(fps)
}

func (a *app) exitHandler() {
	if a.exiting {
		return
	}
	a.exiting = true
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	a.keys.Stop()
	a.display.Stop()
	a.c.Watcher.Stop()
	a.c.Manager.StopSession()
	a.c.Manager.Close()
	a.c.Pipeline.Detach()
	Destroy(App)
}
