package filter

import (
	"sync"

	"github.com/gogpu/framefx/internal/image"
)

// BlurFilter applies separable Gaussian blur to an image.
// The separable algorithm processes horizontal and vertical passes
// independently, achieving O(w*h*(rx+ry)) complexity instead of O(w*h*rx*ry).
//
// Color channels are blurred in premultiplied space so transparent pixels
// do not bleed black into their neighbours; the output is straight alpha.
type BlurFilter struct {
	// RadiusX is the horizontal standard deviation in pixels.
	RadiusX float64

	// RadiusY is the vertical standard deviation in pixels.
	RadiusY float64

	// AlphaOnly restricts the blur to the alpha channel, leaving color
	// untouched. Used to feather mattes.
	AlphaOnly bool
}

// NewBlurFilter creates a new blur filter with equal radius in both directions.
func NewBlurFilter(radius float64) *BlurFilter {
	return &BlurFilter{
		RadiusX: radius,
		RadiusY: radius,
	}
}

// NewBlurFilterXY creates a new blur filter with different X and Y radii.
func NewBlurFilterXY(radiusX, radiusY float64) *BlurFilter {
	return &BlurFilter{
		RadiusX: radiusX,
		RadiusY: radiusY,
	}
}

// NewAlphaBlurFilter creates a blur filter that only softens the alpha channel.
func NewAlphaBlurFilter(radius float64) *BlurFilter {
	return &BlurFilter{
		RadiusX:   radius,
		RadiusY:   radius,
		AlphaOnly: true,
	}
}

// Apply blurs src into dst. src and dst may be the same buffer; mismatched
// sizes are ignored.
func (f *BlurFilter) Apply(src, dst *image.ImageBuf) {
	if src == nil || dst == nil || !src.SameSize(dst) {
		return
	}

	// Handle zero radius (identity)
	if f.RadiusX <= 0 && f.RadiusY <= 0 {
		if src != dst {
			_ = dst.CopyFrom(src)
		}
		return
	}

	w, h := src.Bounds()
	channels := 4
	if f.AlphaOnly {
		channels = 1
	}

	temp := getTempBuffer(w * h * channels)
	defer putTempBuffer(temp)

	kernelX := CachedGaussianKernel(f.RadiusX)
	kernelY := CachedGaussianKernel(f.RadiusY)

	if f.AlphaOnly {
		blurAlphaHorizontal(src, temp.data, kernelX)
		blurAlphaVertical(temp.data, src, dst, kernelY)
		return
	}

	// Pass 1: Horizontal blur (src -> temp), premultiplying on read
	blurHorizontal(src, temp.data, kernelX)

	// Pass 2: Vertical blur (temp -> dst), unpremultiplying on write
	blurVertical(temp.data, dst, kernelY)
}

// blurHorizontal applies 1D horizontal convolution into a premultiplied
// float buffer.
func blurHorizontal(src *image.ImageBuf, temp []float32, kernel []float32) {
	half := len(kernel) / 2
	w, h := src.Bounds()

	for y := range h {
		row := src.RowBytes(y)
		for x := range w {
			var r, g, b, a float32

			for k, weight := range kernel {
				kx := x + k - half

				// Clamp to source bounds (edge extension)
				if kx < 0 {
					kx = 0
				} else if kx >= w {
					kx = w - 1
				}

				i := kx * image.BytesPerPixel
				pa := float32(row[i+3]) * weight
				r += float32(row[i+0]) * pa
				g += float32(row[i+1]) * pa
				b += float32(row[i+2]) * pa
				a += pa
			}

			t := (y*w + x) * 4
			temp[t+0] = r / 255
			temp[t+1] = g / 255
			temp[t+2] = b / 255
			temp[t+3] = a
		}
	}
}

// blurVertical applies 1D vertical convolution from the premultiplied float
// buffer and writes straight-alpha bytes to dst.
func blurVertical(temp []float32, dst *image.ImageBuf, kernel []float32) {
	half := len(kernel) / 2
	w, h := dst.Bounds()

	for y := range h {
		row := dst.RowBytes(y)
		for x := range w {
			var r, g, b, a float32

			for k, weight := range kernel {
				ky := y + k - half

				// Clamp to temp buffer bounds (edge extension)
				if ky < 0 {
					ky = 0
				} else if ky >= h {
					ky = h - 1
				}

				t := (ky*w + x) * 4
				r += temp[t+0] * weight
				g += temp[t+1] * weight
				b += temp[t+2] * weight
				a += temp[t+3] * weight
			}

			i := x * image.BytesPerPixel
			if a <= 0 {
				row[i+0], row[i+1], row[i+2], row[i+3] = 0, 0, 0, 0
				continue
			}
			inv := 255 / a
			row[i+0] = clampUint8(r * inv)
			row[i+1] = clampUint8(g * inv)
			row[i+2] = clampUint8(b * inv)
			row[i+3] = clampUint8(a)
		}
	}
}

// blurAlphaHorizontal convolves the alpha channel of each row.
func blurAlphaHorizontal(src *image.ImageBuf, temp []float32, kernel []float32) {
	half := len(kernel) / 2
	w, h := src.Bounds()

	for y := range h {
		row := src.RowBytes(y)
		for x := range w {
			var a float32
			for k, weight := range kernel {
				kx := min(max(x+k-half, 0), w-1)
				a += float32(row[kx*image.BytesPerPixel+3]) * weight
			}
			temp[y*w+x] = a
		}
	}
}

// blurAlphaVertical convolves the alpha columns and writes them to dst,
// carrying the color channels over from src.
func blurAlphaVertical(temp []float32, src, dst *image.ImageBuf, kernel []float32) {
	half := len(kernel) / 2
	w, h := dst.Bounds()

	for y := range h {
		srcRow := src.RowBytes(y)
		dstRow := dst.RowBytes(y)
		for x := range w {
			var a float32
			for k, weight := range kernel {
				ky := min(max(y+k-half, 0), h-1)
				a += temp[ky*w+x] * weight
			}
			i := x * image.BytesPerPixel
			if src != dst {
				copy(dstRow[i:i+3], srcRow[i:i+3])
			}
			dstRow[i+3] = clampUint8(a)
		}
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

// Temporary buffer pool for blur operations.
var tempBufferPool = sync.Pool{
	New: func() any {
		return &floatBuffer{}
	},
}

// getTempBuffer retrieves a scratch buffer with exactly size elements.
// Contents are unspecified; every blur pass overwrites all of them.
func getTempBuffer(size int) *floatBuffer {
	fb := tempBufferPool.Get().(*floatBuffer)
	if cap(fb.data) < size {
		fb.data = make([]float32, size)
	}
	fb.data = fb.data[:size]
	return fb
}

// putTempBuffer returns a scratch buffer to the pool.
func putTempBuffer(fb *floatBuffer) {
	// Only pool reasonably-sized buffers (4K RGBA)
	if cap(fb.data) <= 3840*2160*4 {
		tempBufferPool.Put(fb)
	}
}

// clampUint8 clamps a float32 to [0, 255] and converts to uint8.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5) // Round to nearest
}
