package images

import (
	"image"
	"image/color"
	"image/draw"
)

// Solid returns a w x h image filled with the given #rrggbb color.
// Unparseable colors fall back to black.
func Solid(w, h int, hex string) *image.RGBA {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(parseHexColor(hex)), image.Point{}, draw.Src)
	return img
}

func parseHexColor(s string) color.RGBA {
	c := color.RGBA{A: 0xff}
	if len(s) != 7 || s[0] != '#' {
		return c
	}
	hex := func(b byte) (uint8, bool) {
		switch {
		case b >= '0' && b <= '9':
			return b - '0', true
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10, true
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10, true
		}
		return 0, false
	}
	comp := func(i int) (uint8, bool) {
		hi, ok1 := hex(s[i])
		lo, ok2 := hex(s[i+1])
		return hi<<4 | lo, ok1 && ok2
	}
	r, ok1 := comp(1)
	g, ok2 := comp(3)
	b, ok3 := comp(5)
	if !ok1 || !ok2 || !ok3 {
		return c
	}
	c.R, c.G, c.B = r, g, b
	return c
}
