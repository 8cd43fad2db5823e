package capture

import (
	"image"
	"time"
)

// FrameSnapshot carries the latest captured frame and metadata.
type FrameSnapshot struct {
	Image      *image.RGBA
	CapturedAt time.Time
	Sequence   uint64
}

// CaptureStats summarises frame-pump behaviour for instrumentation.
type CaptureStats struct {
	Captures       uint64
	Skipped        uint64
	AvgAcquire     time.Duration
	LastCapture    time.Time
	LatestFrameAge time.Duration
	Sequence       uint64
}

// FrameSource provides read-only access to captured frames.
type FrameSource interface {
	LatestFrame() FrameSnapshot
	Running() bool
}

// StatsSource exposes pump instrumentation.
type StatsSource interface{ Stats() CaptureStats }
