package session

import (
	"github.com/soocke/campip-go/domain/device"
)

// State enumerates the observable states of the session lifecycle.
type State int

const (
	StateIdle        State = iota // authorization not yet examined
	StateAuthorizing              // permission granted, device setup in flight
	StateRunning                  // session live with an attached device
	StateNoCamera                 // authorized but no usable device
	StateDenied                   // permission denied; terminal for the process
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAuthorizing:
		return "authorizing"
	case StateRunning:
		return "running"
	case StateNoCamera:
		return "no-camera"
	case StateDenied:
		return "denied"
	default:
		return "unknown"
	}
}

// AuthStatus is the tri-state camera permission. It only moves forward:
// undetermined to granted or denied, never back, within one process.
type AuthStatus int

const (
	AuthUndetermined AuthStatus = iota
	AuthGranted
	AuthDenied
)

// Authorizer abstracts the OS camera-permission facility.
type Authorizer interface {
	// Status reports the current authorization state without prompting.
	Status() AuthStatus
	// Request issues the permission prompt and delivers the user's
	// decision asynchronously. Called at most once per process.
	Request(func(granted bool))
}

// Pipeline is the single capture session. At most one device input is
// attached at any time; Attach applies detach plus construct plus
// commit as one transaction, so a failed attach leaves no input
// attached and a successful one leaves exactly one.
type Pipeline interface {
	Attach(device.Device) error
	Detach()
	Start() error
	Stop()
	Running() bool
}

// Snapshot is the immutable published state consumed by the UI thread.
type Snapshot struct {
	State           State
	AuthKnown       bool
	Authorized      bool
	SettingUp       bool
	Devices         device.List
	Current         *device.Device
	CameraAvailable bool
}

// Listener is invoked on each state transition, on the session queue.
type Listener func(prev, next State)

// Narrow contracts consumed by presenters.
type StateSource interface{ Snapshot() Snapshot }
type Switcher interface{ SwitchCamera(device.Device) }
type Lifecycle interface {
	Start()
	StopSession()
	Close()
}

// ManagerContract aggregates the manager surface for DI.
type ManagerContract interface {
	StateSource
	Switcher
	Lifecycle
	DevicesChanged(device.List)
	RuntimeError()
	InterruptionBegan()
	InterruptionEnded()
	AddListener(Listener)
}
