package presenter

import (
	"image"
	"log/slog"

	"github.com/soocke/campip-go/domain/capture"
	"github.com/soocke/campip-go/domain/session"
	"github.com/soocke/campip-go/ui/images"
)

// FrameSource supplies the most recent frame delivered by the camera.
type FrameSource interface {
	Running() bool
	LatestFrame() capture.FrameSnapshot
}

// PreviewView receives a fully prepared image sized for the overlay
// surface.
type PreviewView interface {
	UpdatePreview(img image.Image)
	SurfaceSize() (w, h int)
}

// PreviewPresenter pulls frames from the camera and renders them
// aspect-filled into the overlay surface.
//
// Frames are center-cropped to the surface aspect ratio and then scaled
// to the exact surface size, so the feed fills the window with no
// letterboxing.
type PreviewPresenter struct {
	mgr    SnapshotSource
	source FrameSource
	view   PreviewView
	logger *slog.Logger

	lastSeq uint64
}

func NewPreviewPresenter(mgr SnapshotSource, source FrameSource, view PreviewView, logger *slog.Logger) *PreviewPresenter {
	return &PreviewPresenter{mgr: mgr, source: source, view: view, logger: logger}
}

// ProcessFrame renders the latest frame if a new one arrived since the
// previous tick. Frames that arrive between ticks are dropped, only the
// newest is shown.
func (p *PreviewPresenter) ProcessFrame() {
	if p == nil || p.mgr == nil || p.source == nil || p.view == nil {
		return
	}
	if p.mgr.Snapshot().State != session.StateRunning {
		return
	}
	if !p.source.Running() {
		return
	}
	snapshot := p.source.LatestFrame()
	frame := snapshot.Image
	if frame == nil {
		return
	}
	if snapshot.Sequence == p.lastSeq {
		return
	}
	p.lastSeq = snapshot.Sequence

	w, h := p.view.SurfaceSize()
	if w <= 0 || h <= 0 {
		return
	}
	cropped, _, err := images.CenterCrop(frame, w, h)
	if err != nil {
		if p.logger != nil {
			p.logger.Error("preview crop", "error", err)
		}
		return
	}
	p.view.UpdatePreview(images.ScaleTo(cropped, w, h))
}
