package images

import (
	"errors"
	"image"
	"image/draw"
)

// CenterCrop extracts the largest centered sub-rectangle of frame whose
// aspect ratio matches targetW:targetH, clamped to the frame bounds and
// guaranteed at least 1x1. Used to aspect-fill the preview surface.
// Returns the crop (always *image.RGBA) and its rectangle within frame.
func CenterCrop(frame *image.RGBA, targetW, targetH int) (*image.RGBA, image.Rectangle, error) {
	if frame == nil {
		return nil, image.Rectangle{}, errors.New("nil frame")
	}
	if targetW < 1 {
		targetW = 1
	}
	if targetH < 1 {
		targetH = 1
	}
	b := frame.Bounds()
	fw, fh := b.Dx(), b.Dy()
	if fw < 1 || fh < 1 {
		return nil, image.Rectangle{}, errors.New("empty frame")
	}

	// Pick the largest crop with the target aspect that fits the frame.
	cw := fw
	ch := cw * targetH / targetW
	if ch > fh {
		ch = fh
		cw = ch * targetW / targetH
	}
	if cw < 1 {
		cw = 1
	}
	if ch < 1 {
		ch = 1
	}
	x0 := b.Min.X + (fw-cw)/2
	y0 := b.Min.Y + (fh-ch)/2
	roi := image.Rect(x0, y0, x0+cw, y0+ch)

	sub := frame.SubImage(roi)
	if rgba, ok := sub.(*image.RGBA); ok {
		return rgba, roi, nil
	}
	out := image.NewRGBA(image.Rect(0, 0, roi.Dx(), roi.Dy()))
	draw.Draw(out, out.Bounds(), sub, roi.Min, draw.Src)
	return out, roi, nil
}
