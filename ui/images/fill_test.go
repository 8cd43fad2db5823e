package images

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
	}{
		{"#111318", color.RGBA{R: 0x11, G: 0x13, B: 0x18, A: 0xff}},
		{"#FFffFF", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"bogus", color.RGBA{A: 0xff}},
		{"#12345", color.RGBA{A: 0xff}},
	}
	for _, tc := range cases {
		if got := parseHexColor(tc.in); got != tc.want {
			t.Fatalf("parseHexColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSolidDimensions(t *testing.T) {
	img := Solid(320, 240, "#111318")
	b := img.Bounds()
	if b.Dx() != 320 || b.Dy() != 240 {
		t.Fatalf("bounds = %v", b)
	}
	if got := img.RGBAAt(10, 10); got != (color.RGBA{R: 0x11, G: 0x13, B: 0x18, A: 0xff}) {
		t.Fatalf("pixel = %v", got)
	}
	if img := Solid(0, -5, "#000000"); img.Bounds().Dx() != 1 || img.Bounds().Dy() != 1 {
		t.Fatalf("degenerate size not clamped: %v", img.Bounds())
	}
}
