package capture

import (
	"image"
	"image/color"
	"runtime"
	"testing"
	"time"
)

func TestAcquireFrameSizing(t *testing.T) {
	r := image.Rect(0, 0, 8, 6)
	img := acquireFrame(r)
	if img.Rect != r {
		t.Fatalf("rect = %v, want %v", img.Rect, r)
	}
	if len(img.Pix) != 8*6*4 || img.Stride != 8*4 {
		t.Fatalf("pix len %d stride %d", len(img.Pix), img.Stride)
	}
	recycleFrame(img)

	// A recycled buffer large enough must be resliced, not reallocated.
	small := acquireFrame(image.Rect(0, 0, 4, 4))
	if len(small.Pix) != 4*4*4 {
		t.Fatalf("reused buffer not resliced: %d", len(small.Pix))
	}
}

func TestAcquireFrameDegenerateRect(t *testing.T) {
	img := acquireFrame(image.Rect(0, 0, 0, 0))
	if len(img.Pix) != 0 {
		t.Fatalf("degenerate rect should carry no pixels, got %d", len(img.Pix))
	}
	recycleFrame(img) // must not panic or pollute the pool
}

func TestCopyToRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(2, 3, 6, 7))
	src.SetNRGBA(2, 3, color.NRGBA{R: 200, G: 10, B: 30, A: 255})
	got := copyToRGBA(src)
	if got == nil {
		t.Fatal("nil result")
	}
	if got.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Fatalf("bounds = %v", got.Bounds())
	}
	r, _, _, _ := got.At(0, 0).RGBA()
	if uint8(r>>8) != 200 {
		t.Fatalf("pixel not copied, r=%d", uint8(r>>8))
	}
	if copyToRGBA(nil) != nil {
		t.Fatal("nil source must yield nil")
	}
}

func TestPipelineStartStopWithoutInput(t *testing.T) {
	p := NewCameraPipeline(nil, 640, 480)
	if err := p.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if !p.Running() {
		t.Fatal("expected running")
	}
	p.Stop()
	if p.Running() {
		t.Fatal("expected stopped")
	}
	// No input attached: latest frame stays empty.
	if snap := p.LatestFrame(); snap.Image != nil {
		t.Fatalf("unexpected frame: %+v", snap)
	}
}

func TestPipelineRestartSupersedesPump(t *testing.T) {
	// A stop immediately followed by a start (session stop then switch,
	// or interruption resume) must leave exactly one pump reading the
	// session; the superseded one exits on its own channel.
	p := NewCameraPipeline(nil, 640, 480)
	base := runtime.NumGoroutine()

	if err := p.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	p.Stop()
	if err := p.Start(); err != nil {
		t.Fatalf("restart: %v", err)
	}
	defer p.Stop()

	if !p.Running() {
		t.Fatal("expected running after restart")
	}
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if runtime.NumGoroutine() <= base+1 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("superseded pump still alive: %d goroutines, want at most %d", runtime.NumGoroutine(), base+1)
}

func TestPipelineRepeatedRestartsStaySingle(t *testing.T) {
	p := NewCameraPipeline(nil, 640, 480)
	base := runtime.NumGoroutine()
	for i := 0; i < 10; i++ {
		if err := p.Start(); err != nil {
			t.Fatalf("start %d: %v", i, err)
		}
		p.Stop()
	}
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if runtime.NumGoroutine() <= base {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("pumps leaked across restarts: %d goroutines, want %d", runtime.NumGoroutine(), base)
}
