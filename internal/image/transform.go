package image

import (
	xdraw "golang.org/x/image/draw"
)

// Resample clears dst and draws src into it through the transform m, which
// maps source pixel space onto destination pixel space. Destination pixels
// that no source pixel maps onto stay transparent, so content shifted or
// shrunk inside the canvas is letterboxed rather than edge-extended.
//
// A singular transform (for example a zero scale) leaves dst fully
// transparent.
func Resample(dst, src *ImageBuf, m Affine) {
	dst.Clear()
	if m.IsSingular() {
		return
	}
	sr := src.NRGBA()
	xdraw.BiLinear.Transform(dst.NRGBA(), m.Aff3(), sr, sr.Bounds(), xdraw.Src, nil)
}

// Shift copies src into dst offset by whole pixels (dx, dy). Vacated pixels
// become transparent. It is the exact fast path for integral translations.
func Shift(dst, src *ImageBuf, dx, dy int) {
	dst.Clear()

	w, h := src.Bounds()
	x0 := max(0, dx)
	x1 := min(w, w+dx)
	if x0 >= x1 {
		return
	}

	for y := range h {
		sy := y - dy
		if sy < 0 || sy >= h {
			continue
		}
		srcRow := src.RowBytes(sy)
		dstRow := dst.RowBytes(y)
		copy(dstRow[x0*BytesPerPixel:x1*BytesPerPixel], srcRow[(x0-dx)*BytesPerPixel:(x1-dx)*BytesPerPixel])
	}
}
