package view

import (
	"image"
	"testing"
)

func TestComputeOriginTopRight(t *testing.T) {
	display := image.Rect(0, 0, 1920, 1080)
	got := ComputeOrigin(display, 320, 240, 20)
	want := image.Pt(1920-20-320, 20)
	if got != want {
		t.Fatalf("origin = %v, want %v", got, want)
	}
}

func TestComputeOriginClampsToDisplay(t *testing.T) {
	display := image.Rect(0, 0, 300, 200)
	got := ComputeOrigin(display, 320, 240, 20)
	if got != image.Pt(0, 0) {
		t.Fatalf("oversized window should clamp to display origin, got %v", got)
	}
}

func TestComputeOriginSecondaryDisplayOffset(t *testing.T) {
	// A display positioned right of the primary keeps its own corner.
	display := image.Rect(1920, 0, 1920+1440, 900)
	got := ComputeOrigin(display, 320, 240, 20)
	want := image.Pt(1920+1440-20-320, 20)
	if got != want {
		t.Fatalf("origin = %v, want %v", got, want)
	}
}

func TestParseGeometry(t *testing.T) {
	r, ok := parseGeometry("320x240+1580+20")
	if !ok || r != image.Rect(1580, 20, 1580+320, 20+240) {
		t.Fatalf("parse = %v %v", r, ok)
	}
	if _, ok := parseGeometry("garbage"); ok {
		t.Fatalf("garbage parsed")
	}
	if _, ok := parseGeometry("0x0+1+1"); ok {
		t.Fatalf("degenerate geometry parsed")
	}
	if r, ok := parseGeometry("320x240+-50+20"); !ok || r.Min.X != -50 {
		t.Fatalf("negative origin: %v %v", r, ok)
	}
}
