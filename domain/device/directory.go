package device

import (
	"log/slog"
	"strings"

	"github.com/pion/mediadevices"
	_ "github.com/pion/mediadevices/pkg/driver/camera" // register the camera driver
)

// Directory queries the OS for currently attached video capture devices.
// List is synchronous with respect to the caller but performs a hardware
// query; call it off the UI loop. An empty list is a valid result and
// means no camera is available.
type Directory interface {
	List() List
}

// MediaDirectory enumerates cameras through the mediadevices driver
// registry. Only video inputs are returned; audio-only and other media
// kinds are excluded.
type MediaDirectory struct {
	logger *slog.Logger
}

// NewMediaDirectory returns a directory backed by the registered
// mediadevices camera driver.
func NewMediaDirectory(logger *slog.Logger) *MediaDirectory {
	return &MediaDirectory{logger: logger}
}

func (m *MediaDirectory) List() List {
	infos := mediadevices.EnumerateDevices()
	out := make(List, 0, len(infos))
	for _, info := range infos {
		if info.Kind != mediadevices.VideoInput {
			continue
		}
		name := info.Label
		if name == "" {
			name = info.DeviceID
		}
		out = append(out, Device{
			ID:       info.DeviceID,
			Name:     name,
			Class:    classify(name),
			Position: position(name),
		})
	}
	out = out.Dedup()
	if m.logger != nil {
		m.logger.Debug("device directory query", "count", len(out))
	}
	return out
}

// classify derives the device class from the reported label. UVC labels
// carry no structured class field, so this leans on the conventional
// names used by built-in cameras.
func classify(label string) Class {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "facetime"),
		strings.Contains(l, "built-in"),
		strings.Contains(l, "builtin"),
		strings.Contains(l, "integrated"):
		return ClassBuiltInWideAngle
	default:
		return ClassExternal
	}
}

func position(label string) Position {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "back"), strings.Contains(l, "rear"):
		return PositionBack
	case strings.Contains(l, "front"),
		strings.Contains(l, "facetime"),
		strings.Contains(l, "built-in"),
		strings.Contains(l, "builtin"),
		strings.Contains(l, "integrated"):
		return PositionFront
	default:
		return PositionUnspecified
	}
}
