package capture

import (
	"image"
	"sync"
)

// Reusable frame pool to reduce heap churn from copying every camera
// frame into an RGBA buffer the UI can keep past the reader's release
// callback. If consumers never recycle, behaviour degrades gracefully
// to plain allocation.

var framePool sync.Pool // stores *image.RGBA

// acquireFrame returns a reusable RGBA image sized to rect. The returned
// Pix length exactly matches rect area * 4, and Stride is width*4.
func acquireFrame(rect image.Rectangle) *image.RGBA {
	w, h := rect.Dx(), rect.Dy()
	if w <= 0 || h <= 0 {
		return &image.RGBA{Rect: rect}
	}
	needed := w * h * 4
	var img *image.RGBA
	if v := framePool.Get(); v != nil {
		img = v.(*image.RGBA)
	}
	if img == nil || cap(img.Pix) < needed {
		img = &image.RGBA{Pix: make([]byte, needed), Stride: w * 4, Rect: rect}
	} else {
		img.Stride = w * 4
		img.Rect = rect
		img.Pix = img.Pix[:needed]
	}
	return img
}

// recycleFrame returns a frame to the pool for reuse.
func recycleFrame(img *image.RGBA) {
	if img == nil || len(img.Pix) == 0 {
		return
	}
	framePool.Put(img)
}
