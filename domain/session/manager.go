package session

import (
	"log/slog"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/soocke/campip-go/domain/device"
)

// Manager owns the single capture session and runs the lifecycle state
// machine. Every operation, device query and configuration change is
// applied on one event-loop goroutine fed by the events channel, so
// concurrent requests are strictly ordered by arrival with no priority
// override. Observable state is published as an immutable Snapshot.
type Manager struct {
	logger   *slog.Logger
	auth     Authorizer
	dir      device.Directory
	pipeline Pipeline

	settleDelay time.Duration
	retryDelay  time.Duration

	state          State
	authKnown      bool
	authorized     bool
	settingUp      bool
	devices        device.List
	current        *device.Device
	lastRequested  *device.Device
	retryScheduled bool
	wasRunning     bool
	promptIssued   bool

	events    chan interface{}
	listeners []Listener
	snapshot  atomic.Pointer[Snapshot]
	closed    atomic.Bool
}

// NewManager constructs the manager and starts its event loop. The
// settle delay is inserted between a permission grant and device setup;
// the retry delay spaces the single deferred recovery attempt after a
// runtime error.
func NewManager(logger *slog.Logger, auth Authorizer, dir device.Directory, pipe Pipeline, settle, retry time.Duration) *Manager {
	if retry <= 0 {
		retry = time.Second
	}
	if settle < 0 {
		settle = 0
	}
	m := &Manager{
		logger:      logger,
		auth:        auth,
		dir:         dir,
		pipeline:    pipe,
		settleDelay: settle,
		retryDelay:  retry,
		state:       StateIdle,
		events:      make(chan interface{}, 64),
	}
	m.publish()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				stack := string(debug.Stack())
				if logger != nil {
					logger.Error("session loop panic", "error", r, "stack", stack)
				}
			}
		}()
		m.loop()
	}()
	return m
}

// events
type (
	evtStart             struct{}
	evtAuthResult        struct{ granted bool }
	evtSetup             struct{}
	evtDevicesChanged    struct{ list device.List }
	evtSwitch            struct{ dev device.Device }
	evtRuntimeError      struct{}
	evtRetry             struct{}
	evtInterruptionBegan struct{}
	evtInterruptionEnded struct{}
	evtStopSession       struct{}
	evtAddListener       struct{ l Listener }
)

func (m *Manager) loop() {
	for ev := range m.events {
		switch e := ev.(type) {
		case evtAddListener:
			m.listeners = append(m.listeners, e.l)
		case evtStart:
			m.handleStart()
		case evtAuthResult:
			m.handleAuthResult(e.granted)
		case evtSetup:
			if m.state == StateAuthorizing {
				m.runSetup()
			}
		case evtDevicesChanged:
			m.handleDevicesChanged(e.list)
		case evtSwitch:
			m.handleSwitch(e.dev)
		case evtRuntimeError:
			m.handleRuntimeError()
		case evtRetry:
			m.handleRetry()
		case evtInterruptionBegan:
			m.wasRunning = m.pipeline.Running()
			m.pipeline.Stop()
			if m.logger != nil {
				m.logger.Info("session interrupted", "was_running", m.wasRunning)
			}
		case evtInterruptionEnded:
			if m.wasRunning {
				if err := m.pipeline.Start(); err != nil && m.logger != nil {
					m.logger.Error("session restart after interruption failed", "error", err)
				}
			}
			m.wasRunning = false
		case evtStopSession:
			// Stops the running session without detaching the input.
			m.pipeline.Stop()
		}
		m.publish()
	}
}

func (m *Manager) handleStart() {
	if m.state != StateIdle {
		return
	}
	switch m.auth.Status() {
	case AuthGranted:
		m.authKnown, m.authorized = true, true
		m.transition(StateAuthorizing)
		m.runSetup()
	case AuthDenied:
		m.authKnown, m.authorized = true, false
		m.transition(StateDenied)
	default:
		if m.promptIssued {
			return
		}
		m.promptIssued = true
		m.auth.Request(func(granted bool) { m.post(evtAuthResult{granted: granted}) })
	}
}

func (m *Manager) handleAuthResult(granted bool) {
	if m.authKnown {
		return
	}
	m.authKnown = true
	m.authorized = granted
	if !granted {
		m.transition(StateDenied)
		return
	}
	m.transition(StateAuthorizing)
	// Let the OS capture subsystem settle before touching devices.
	if m.settleDelay > 0 {
		time.AfterFunc(m.settleDelay, func() { m.post(evtSetup{}) })
		return
	}
	m.runSetup()
}

// runSetup queries the directory, applies the selection policy and
// attempts the initial attach. Runs on the session queue.
func (m *Manager) runSetup() {
	m.settingUp = true
	m.publish()
	m.devices = m.dir.List().Dedup()
	sel, ok := device.SelectDefault(m.devices)
	if !ok {
		m.settingUp = false
		m.current = nil
		m.transition(StateNoCamera)
		return
	}
	err := m.attach(sel)
	m.settingUp = false
	if err != nil {
		if m.logger != nil {
			m.logger.Error("initial attach failed", "device", sel.Name, "error", err)
		}
		m.transition(StateNoCamera)
		return
	}
	m.transition(StateRunning)
}

func (m *Manager) handleDevicesChanged(list device.List) {
	m.devices = list.Dedup()
	switch m.state {
	case StateIdle, StateAuthorizing, StateDenied:
		// Setup queries the directory itself; Denied never recovers.
		return
	}
	if m.state == StateRunning && m.current != nil && m.devices.Contains(m.current.ID) {
		return
	}
	// Current device vanished, or we were camera-less: re-run selection
	// over the refreshed list.
	sel, ok := device.SelectDefault(m.devices)
	if !ok {
		m.pipeline.Detach()
		m.current = nil
		m.transition(StateNoCamera)
		return
	}
	if err := m.attach(sel); err != nil {
		if m.logger != nil {
			m.logger.Error("attach after hot-plug failed", "device", sel.Name, "error", err)
		}
		m.transition(StateNoCamera)
		return
	}
	m.transition(StateRunning)
}

func (m *Manager) handleSwitch(dev device.Device) {
	switch m.state {
	case StateRunning, StateNoCamera:
	default:
		return
	}
	// Deliberately no short-circuit when dev equals the current device:
	// a switch request always runs the full detach+reattach transaction.
	if err := m.attach(dev); err != nil {
		if m.logger != nil {
			m.logger.Error("switch failed", "device", dev.Name, "error", err)
		}
		m.transition(StateNoCamera)
		return
	}
	m.transition(StateRunning)
}

func (m *Manager) handleRuntimeError() {
	if m.state != StateRunning || m.current == nil {
		return
	}
	target := *m.current
	if m.logger != nil {
		m.logger.Error("session runtime error", "device", target.Name)
	}
	if err := m.attach(target); err == nil && m.pipeline.Running() {
		return
	}
	m.transition(StateNoCamera)
	if m.retryScheduled {
		return
	}
	// Exactly one deferred attempt, no backoff and no further retries.
	m.retryScheduled = true
	time.AfterFunc(m.retryDelay, func() { m.post(evtRetry{}) })
}

func (m *Manager) handleRetry() {
	m.retryScheduled = false
	if m.state == StateDenied || m.state == StateIdle {
		return
	}
	// The retry applies the attach algorithm against current state: a
	// switch request that raced the timer simply redirects the attempt.
	var target device.Device
	switch {
	case m.current != nil:
		target = *m.current
	case m.lastRequested != nil:
		target = *m.lastRequested
	default:
		sel, ok := device.SelectDefault(m.devices)
		if !ok {
			m.transition(StateNoCamera)
			return
		}
		target = sel
	}
	if err := m.attach(target); err != nil {
		if m.logger != nil {
			m.logger.Error("deferred recovery attach failed", "device", target.Name, "error", err)
		}
		m.transition(StateNoCamera)
		return
	}
	m.transition(StateRunning)
}

// attach runs the configuration transaction for d and reports the
// outcome as a single error value, never as flags that could disagree.
// On failure nothing stays attached and current is cleared; on success
// exactly one input is attached, the session is running and current is d.
func (m *Manager) attach(d device.Device) error {
	m.lastRequested = &d
	if err := m.pipeline.Attach(d); err != nil {
		m.current = nil
		return err
	}
	if !m.pipeline.Running() {
		if err := m.pipeline.Start(); err != nil {
			m.pipeline.Detach()
			m.current = nil
			return err
		}
	}
	m.current = &d
	return nil
}

func (m *Manager) transition(next State) {
	prev := m.state
	m.state = next
	m.publish()
	if prev == next {
		return
	}
	if m.logger != nil {
		m.logger.Debug("session state transition", "from", prev.String(), "to", next.String())
	}
	for _, l := range m.listeners {
		l(prev, next)
	}
}

func (m *Manager) publish() {
	snap := Snapshot{
		State:           m.state,
		AuthKnown:       m.authKnown,
		Authorized:      m.authorized,
		SettingUp:       m.settingUp,
		Devices:         m.devices,
		CameraAvailable: m.state == StateRunning && m.current != nil,
	}
	if m.current != nil {
		cur := *m.current
		snap.Current = &cur
	}
	m.snapshot.Store(&snap)
}

// post enqueues an event; safe against the channel closing mid-shutdown.
func (m *Manager) post(ev interface{}) {
	if m.closed.Load() {
		return
	}
	defer func() { _ = recover() }()
	m.events <- ev
}

// Public API implements ManagerContract.

// Snapshot returns the latest published observable state.
func (m *Manager) Snapshot() Snapshot { return *m.snapshot.Load() }

// Start kicks off the authorization check and, when permitted, setup.
func (m *Manager) Start() { m.post(evtStart{}) }

// SwitchCamera requests an attach of the given device. Fire and forget;
// the outcome is observable through the published snapshot.
func (m *Manager) SwitchCamera(d device.Device) { m.post(evtSwitch{dev: d}) }

// StopSession stops the running session without detaching the input.
func (m *Manager) StopSession() { m.post(evtStopSession{}) }

// DevicesChanged feeds a wholesale device-list refresh into the machine.
func (m *Manager) DevicesChanged(l device.List) { m.post(evtDevicesChanged{list: l}) }

// RuntimeError reports an OS session fault.
func (m *Manager) RuntimeError() { m.post(evtRuntimeError{}) }

// InterruptionBegan reports that the OS paused the session.
func (m *Manager) InterruptionBegan() { m.post(evtInterruptionBegan{}) }

// InterruptionEnded reports that the OS released the session.
func (m *Manager) InterruptionEnded() { m.post(evtInterruptionEnded{}) }

// AddListener registers a transition listener, invoked on the session queue.
func (m *Manager) AddListener(l Listener) { m.post(evtAddListener{l: l}) }

// Close shuts the event loop down. Pending timer events are discarded.
func (m *Manager) Close() {
	if m.closed.Swap(true) {
		return
	}
	close(m.events)
}

var _ ManagerContract = (*Manager)(nil)
