package capture

import (
	"errors"
	"image"
	"image/draw"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pion/mediadevices"
	_ "github.com/pion/mediadevices/pkg/driver/camera" // register the camera driver
	"github.com/pion/mediadevices/pkg/io/video"
	"github.com/pion/mediadevices/pkg/prop"

	"github.com/soocke/campip-go/domain/device"
	"github.com/soocke/campip-go/domain/session"
)

const statsLogInterval = 5 * time.Second

// CameraPipeline is the single capture session over mediadevices. It
// implements the session manager's Pipeline contract: Attach applies
// detach+construct+commit as one transaction under the pipeline lock so
// readers never observe two inputs, and a failed attach leaves none.
// The frame pump copies camera frames into pooled RGBA buffers and
// publishes the latest one atomically for the preview presenter.
type CameraPipeline struct {
	logger *slog.Logger
	width  int
	height int

	mu        sync.Mutex
	stream    mediadevices.MediaStream
	track     *mediadevices.VideoTrack
	reader    video.Reader
	detaching bool

	running atomic.Bool
	done    chan struct{}

	latest       atomic.Pointer[FrameSnapshot]
	captures     atomic.Uint64
	skipped      atomic.Uint64
	acquireNanos atomic.Uint64
	sequence     atomic.Uint64

	onFault func()
}

// NewCameraPipeline constructs a pipeline requesting the given capture
// resolution; the driver may negotiate a different one.
func NewCameraPipeline(logger *slog.Logger, width, height int) *CameraPipeline {
	return &CameraPipeline{logger: logger, width: width, height: height}
}

// SetFaultHandler registers the callback invoked when the attached
// track ends unexpectedly (OS-reported session fault). Set before use.
func (p *CameraPipeline) SetFaultHandler(fn func()) { p.onFault = fn }

// Attach opens the given device and commits it as the session input,
// detaching any previous input first. On any failure the transaction is
// aborted: no input remains attached and the error describes why.
func (p *CameraPipeline) Attach(d device.Device) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closeLocked()

	stream, err := mediadevices.GetUserMedia(mediadevices.MediaStreamConstraints{
		Video: func(c *mediadevices.MediaTrackConstraints) {
			c.DeviceID = prop.String(d.ID)
			c.Width = prop.Int(p.width)
			c.Height = prop.Int(p.height)
		},
	})
	if err != nil {
		return err
	}
	tracks := stream.GetVideoTracks()
	if len(tracks) == 0 {
		for _, t := range stream.GetTracks() {
			_ = t.Close()
		}
		return errors.New("device produced no video track")
	}
	vt, ok := tracks[0].(*mediadevices.VideoTrack)
	if !ok {
		for _, t := range stream.GetTracks() {
			_ = t.Close()
		}
		return errors.New("unexpected track type")
	}
	vt.OnEnded(func(err error) {
		p.mu.Lock()
		deliberate := p.detaching
		p.mu.Unlock()
		if deliberate {
			return
		}
		if p.logger != nil {
			p.logger.Error("video track ended", "device", d.Name, "error", err)
		}
		if p.onFault != nil {
			p.onFault()
		}
	})

	p.stream = stream
	p.track = vt
	p.reader = vt.NewReader(false)
	if p.logger != nil {
		p.logger.Info("input attached", "device", d.Name, "id", d.ID)
	}
	return nil
}

// Detach closes and removes the attached input, if any.
func (p *CameraPipeline) Detach() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closeLocked()
}

// closeLocked tears down the current track. Caller holds p.mu.
func (p *CameraPipeline) closeLocked() {
	if p.stream == nil {
		return
	}
	p.detaching = true
	for _, t := range p.stream.GetTracks() {
		_ = t.Close()
	}
	p.detaching = false
	p.stream = nil
	p.track = nil
	p.reader = nil
}

// Start launches the frame pump. Idempotent. A pump superseded by a
// stop/start cycle exits on its own channel, so at most one pump reads
// the session at any time.
func (p *CameraPipeline) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running.Load() {
		return nil
	}
	done := make(chan struct{})
	p.done = done
	p.running.Store(true)
	go p.pump(done)
	return nil
}

// Stop halts the frame pump without detaching the input. Idempotent.
func (p *CameraPipeline) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running.Load() {
		return
	}
	close(p.done)
	p.done = nil
	p.running.Store(false)
}

// Running reports whether the frame pump is active.
func (p *CameraPipeline) Running() bool { return p.running.Load() }

// LatestFrame returns the freshest captured frame snapshot.
func (p *CameraPipeline) LatestFrame() FrameSnapshot {
	snap := p.latest.Load()
	if snap == nil {
		return FrameSnapshot{}
	}
	return *snap
}

// Stats returns pump instrumentation counters.
func (p *CameraPipeline) Stats() CaptureStats {
	captures := p.captures.Load()
	total := p.acquireNanos.Load()
	var avg time.Duration
	if captures > 0 && total > 0 {
		avg = time.Duration(total / captures)
	}
	snapshot := p.LatestFrame()
	age := time.Duration(0)
	if !snapshot.CapturedAt.IsZero() {
		age = time.Since(snapshot.CapturedAt)
	}
	return CaptureStats{
		Captures:       captures,
		Skipped:        p.skipped.Load(),
		AvgAcquire:     avg,
		LastCapture:    snapshot.CapturedAt,
		LatestFrameAge: age,
		Sequence:       snapshot.Sequence,
	}
}

// pump owns the channel it was started with; it never re-reads the
// pipeline's start/stop fields, so a restart cannot resurrect it.
func (p *CameraPipeline) pump(done chan struct{}) {
	logTicker := time.NewTicker(statsLogInterval)
	defer logTicker.Stop()
	// Buffers are recycled two generations behind the published frame so
	// a consumer copying the latest snapshot never races the reuse.
	var older *FrameSnapshot
	for {
		select {
		case <-done:
			return
		default:
		}

		p.mu.Lock()
		reader := p.reader
		p.mu.Unlock()
		if reader == nil {
			p.skipped.Add(1)
			time.Sleep(10 * time.Millisecond)
			continue
		}

		start := time.Now()
		img, release, err := reader.Read()
		if err != nil {
			p.skipped.Add(1)
			time.Sleep(10 * time.Millisecond)
			continue
		}
		frame := copyToRGBA(img)
		if release != nil {
			release()
		}
		if frame == nil {
			p.skipped.Add(1)
			continue
		}

		elapsed := time.Since(start)
		p.acquireNanos.Add(uint64(elapsed.Nanoseconds()))
		p.captures.Add(1)
		seq := p.sequence.Add(1)
		prev := p.latest.Swap(&FrameSnapshot{Image: frame, CapturedAt: time.Now(), Sequence: seq})
		if older != nil {
			recycleFrame(older.Image)
		}
		older = prev

		select {
		case <-logTicker.C:
			p.logStats()
		default:
		}
	}
}

func (p *CameraPipeline) logStats() {
	if p.logger == nil {
		return
	}
	stats := p.Stats()
	p.logger.Debug("capture.stats",
		"captures", stats.Captures,
		"skipped", stats.Skipped,
		"avg_acquire", stats.AvgAcquire,
		"age", stats.LatestFrameAge,
	)
}

// copyToRGBA copies a decoded camera frame into a pooled RGBA buffer so
// the pixels stay valid after the reader's release callback runs.
func copyToRGBA(img image.Image) *image.RGBA {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil
	}
	dst := acquireFrame(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

var _ session.Pipeline = (*CameraPipeline)(nil)
var _ FrameSource = (*CameraPipeline)(nil)
