package filter

import (
	"math"
	"math/rand/v2"

	"github.com/gogpu/framefx/internal/image"
)

// VignetteFilter darkens the image toward its corners.
//
// Pixels closer to the center than Radius*maxDist are untouched; beyond that
// the darkening ramps linearly to Intensity at the corners, where maxDist is
// the center-to-corner distance.
type VignetteFilter struct {
	Intensity float64 // [0,1]
	Radius    float64 // [0,1]
}

// Apply vignettes src into dst. src and dst may be the same buffer.
func (f *VignetteFilter) Apply(src, dst *image.ImageBuf) {
	if src == nil || dst == nil || !src.SameSize(dst) {
		return
	}
	if src != dst {
		_ = dst.CopyFrom(src)
	}
	if f.Intensity <= 0 {
		return
	}

	w, h := dst.Bounds()
	cx := float64(w) / 2
	cy := float64(h) / 2
	maxDist := math.Hypot(cx, cy)
	start := f.Radius * maxDist
	span := maxDist - start
	if span <= 0 {
		return
	}

	for y := range h {
		row := dst.RowBytes(y)
		dy := float64(y) + 0.5 - cy
		for x := range w {
			d := math.Hypot(float64(x)+0.5-cx, dy)
			if d <= start {
				continue
			}
			t := min((d-start)/span, 1)
			k := 1 - f.Intensity*t

			i := x * image.BytesPerPixel
			row[i+0] = clampUint8(float32(float64(row[i+0]) * k))
			row[i+1] = clampUint8(float32(float64(row[i+1]) * k))
			row[i+2] = clampUint8(float32(float64(row[i+2]) * k))
		}
	}
}

// GrainFilter adds independent uniform noise to each color channel.
//
// The noise amplitude is Intensity*255/2 in either direction. The same Seed
// always produces the same grain, which keeps renders reproducible.
type GrainFilter struct {
	Intensity float64 // [0,1]
	Seed      uint64
}

// Apply adds grain from src into dst. src and dst may be the same buffer.
func (f *GrainFilter) Apply(src, dst *image.ImageBuf) {
	if src == nil || dst == nil || !src.SameSize(dst) {
		return
	}
	if src != dst {
		_ = dst.CopyFrom(src)
	}
	if f.Intensity <= 0 {
		return
	}

	rng := rand.New(rand.NewPCG(f.Seed, f.Seed^0x9e3779b97f4a7c15))
	amp := f.Intensity * 255

	w, h := dst.Bounds()
	for y := range h {
		row := dst.RowBytes(y)
		for x := range w {
			i := x * image.BytesPerPixel
			for c := range 3 {
				n := (rng.Float64() - 0.5) * amp
				row[i+c] = clampUint8(float32(float64(row[i+c]) + n))
			}
		}
	}
}
