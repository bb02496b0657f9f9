package filter

import (
	"github.com/gogpu/framefx/internal/color"
	"github.com/gogpu/framefx/internal/image"
)

// HueRotateFilter shifts the hue of every pixel through HSL space.
// Saturation and lightness are preserved exactly (up to 8-bit rounding).
type HueRotateFilter struct {
	// Degrees is the hue shift. Any finite value is accepted; it wraps.
	Degrees float64
}

// NewHueRotateFilter creates a filter that rotates hue by the given angle in degrees.
func NewHueRotateFilter(degrees float64) *HueRotateFilter {
	return &HueRotateFilter{Degrees: degrees}
}

// Apply rotates hue from src into dst. src and dst may be the same buffer.
func (f *HueRotateFilter) Apply(src, dst *image.ImageBuf) {
	if src == nil || dst == nil || !src.SameSize(dst) {
		return
	}

	shift := color.WrapUnit(f.Degrees / 360)
	if shift == 0 {
		if src != dst {
			_ = dst.CopyFrom(src)
		}
		return
	}

	w, h := src.Bounds()
	for y := range h {
		srcRow := src.RowBytes(y)
		dstRow := dst.RowBytes(y)
		for x := range w {
			i := x * image.BytesPerPixel
			c := color.U8ToF64(color.ColorU8{R: srcRow[i], G: srcRow[i+1], B: srcRow[i+2], A: srcRow[i+3]})

			hh, s, l := color.RGBToHSL(c.R, c.G, c.B)
			c.R, c.G, c.B = color.HSLToRGB(hh+shift, s, l)

			out := color.F64ToU8(c)
			dstRow[i+0] = out.R
			dstRow[i+1] = out.G
			dstRow[i+2] = out.B
			dstRow[i+3] = out.A
		}
	}
}
