package view

import (
	"image"
	"regexp"
	"strconv"
	"strings"
)

// DisplayMetrics reports the bounds of the display the overlay anchors
// to.
type DisplayMetrics interface {
	Bounds() image.Rectangle
}

// StaticDisplay is a DisplayMetrics with fixed bounds, used when no
// live display query is available.
type StaticDisplay struct{ W, H int }

func (d StaticDisplay) Bounds() image.Rectangle { return image.Rect(0, 0, d.W, d.H) }

// ComputeOrigin places a window of the given size in the top-right
// corner of the display, inset by padding on both axes. The origin is
// clamped so the window stays on the display even when it is larger
// than the padded area.
func ComputeOrigin(display image.Rectangle, winW, winH, padding int) image.Point {
	x := display.Max.X - padding - winW
	y := display.Min.Y + padding
	if x < display.Min.X {
		x = display.Min.X
	}
	if y+winH > display.Max.Y {
		y = display.Max.Y - winH
	}
	if y < display.Min.Y {
		y = display.Min.Y
	}
	return image.Pt(x, y)
}

// geomRe matches window geometry strings in the format "WIDTHxHEIGHT+X+Y".
var geomRe = regexp.MustCompile(`^(\d+)x(\d+)\+(-?\d+)\+(-?\d+)$`)

// parseGeometry parses a Tk geometry string and returns the
// corresponding rectangle.
func parseGeometry(g string) (image.Rectangle, bool) {
	g = strings.TrimSpace(g)
	m := geomRe.FindStringSubmatch(g)
	if len(m) != 5 {
		return image.Rectangle{}, false
	}
	w, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	x, _ := strconv.Atoi(m[3])
	y, _ := strconv.Atoi(m[4])
	if w <= 0 || h <= 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(x, y, x+w, y+h), true
}
