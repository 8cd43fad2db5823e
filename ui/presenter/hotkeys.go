package presenter

import (
	"log/slog"
	"sync/atomic"

	"golang.design/x/hotkey"
)

var shortcutKeys = [9]hotkey.Key{
	hotkey.Key1, hotkey.Key2, hotkey.Key3,
	hotkey.Key4, hotkey.Key5, hotkey.Key6,
	hotkey.Key7, hotkey.Key8, hotkey.Key9,
}

// KeyRouter registers the system-wide camera shortcuts (modifier plus
// digits 1 to 9) and exposes a handler for the matching in-window key
// bindings.
//
// When the overlay has keyboard focus a shortcut arrives twice, once
// through the window binding and once through the global registration.
// Both are dispatched; switching to the already-selected camera is a
// full reattach, so the second dispatch is a visible restart rather
// than corruption. The window binding claims the key so it does not
// additionally reach the focused widget.
type KeyRouter struct {
	Handler func(index int) // zero-based device index
	Logger  *slog.Logger

	running atomic.Bool
	done    chan struct{}
	keys    []*hotkey.Hotkey
}

func NewKeyRouter(handler func(index int), logger *slog.Logger) *KeyRouter {
	return &KeyRouter{Handler: handler, Logger: logger}
}

// Start registers the global shortcuts. Registration failures are
// logged and skipped; the in-window bindings still work.
func (r *KeyRouter) Start() {
	if r == nil || r.running.Load() {
		return
	}
	r.done = make(chan struct{})
	r.running.Store(true)
	for i := 0; i < len(shortcutKeys); i++ {
		hk := hotkey.New(shortcutMods, shortcutKeys[i])
		if err := hk.Register(); err != nil {
			if r.Logger != nil {
				r.Logger.Error("hotkey register", "index", i+1, "error", err)
			}
			continue
		}
		r.keys = append(r.keys, hk)
		go r.listen(hk, i)
	}
}

// Stop unregisters all global shortcuts.
func (r *KeyRouter) Stop() {
	if r == nil || !r.running.Load() {
		return
	}
	close(r.done)
	r.running.Store(false)
	for _, hk := range r.keys {
		if err := hk.Unregister(); err != nil && r.Logger != nil {
			r.Logger.Error("hotkey unregister", "error", err)
		}
	}
	r.keys = nil
}

func (r *KeyRouter) listen(hk *hotkey.Hotkey, index int) {
	for {
		select {
		case <-hk.Keydown():
			r.dispatch(index)
		case <-r.done:
			return
		}
	}
}

// DispatchLocal handles a shortcut delivered through the window binding.
// Returns true so the caller can claim the key event.
func (r *KeyRouter) DispatchLocal(index int) bool {
	if r == nil {
		return false
	}
	r.dispatch(index)
	return true
}

func (r *KeyRouter) dispatch(index int) {
	if r.Handler == nil {
		return
	}
	if r.Logger != nil {
		r.Logger.Debug("camera shortcut", "index", index+1)
	}
	r.Handler(index)
}
