package filter

import (
	"github.com/gogpu/framefx/internal/image"
)

// MorphFilter grows or shrinks the alpha channel with a square structuring
// element of side 2|Radius|+1. Positive Radius dilates (the opaque region
// grows), negative Radius erodes. Color channels are copied unchanged.
type MorphFilter struct {
	Radius int
}

// Apply runs the morphology from src into dst. src and dst may be the same buffer.
func (f *MorphFilter) Apply(src, dst *image.ImageBuf) {
	if src == nil || dst == nil || !src.SameSize(dst) {
		return
	}
	if src != dst {
		_ = dst.CopyFrom(src)
	}
	if f.Radius == 0 {
		return
	}

	dilate := f.Radius > 0
	r := f.Radius
	if r < 0 {
		r = -r
	}

	w, h := dst.Bounds()
	alpha := make([]uint8, w*h)
	tmp := make([]uint8, w*h)
	for y := range h {
		row := dst.RowBytes(y)
		for x := range w {
			alpha[y*w+x] = row[x*image.BytesPerPixel+3]
		}
	}

	// A square element is separable: rows then columns.
	for y := range h {
		for x := range w {
			lo, hi := max(x-r, 0), min(x+r, w-1)
			v := alpha[y*w+lo]
			for k := lo + 1; k <= hi; k++ {
				v = pick(v, alpha[y*w+k], dilate)
			}
			tmp[y*w+x] = v
		}
	}
	for y := range h {
		lo, hi := max(y-r, 0), min(y+r, h-1)
		row := dst.RowBytes(y)
		for x := range w {
			v := tmp[lo*w+x]
			for k := lo + 1; k <= hi; k++ {
				v = pick(v, tmp[k*w+x], dilate)
			}
			row[x*image.BytesPerPixel+3] = v
		}
	}
}

func pick(a, b uint8, dilate bool) uint8 {
	if dilate {
		return max(a, b)
	}
	return min(a, b)
}

// OpenAlpha performs a morphological opening (erode then dilate) on the alpha
// channel of buf in place. It removes opaque specks smaller than the element.
func OpenAlpha(buf *image.ImageBuf, radius int) {
	if radius <= 0 {
		return
	}
	(&MorphFilter{Radius: -radius}).Apply(buf, buf)
	(&MorphFilter{Radius: radius}).Apply(buf, buf)
}

// ThresholdAlpha zeroes alpha for every pixel whose alpha is below threshold.
func ThresholdAlpha(buf *image.ImageBuf, threshold float64) {
	if buf == nil || threshold <= 0 {
		return
	}
	w, h := buf.Bounds()
	for y := range h {
		row := buf.RowBytes(y)
		for x := range w {
			i := x*image.BytesPerPixel + 3
			if float64(row[i]) < threshold {
				row[i] = 0
			}
		}
	}
}
