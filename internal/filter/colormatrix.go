package filter

import (
	"github.com/gogpu/framefx/internal/image"
)

// Luma weights used by the saturation operator.
const (
	lumaR = 0.2989
	lumaG = 0.587
	lumaB = 0.114
)

// ColorMatrixFilter applies a 4x5 color transformation matrix to an image.
// The transformation is:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// The fifth column provides bias/offset values.
// Color values are straight alpha in [0, 255] during transformation,
// then clamped back to valid range.
type ColorMatrixFilter struct {
	// Matrix is the 4x5 transformation matrix in row-major order.
	// [0-4] = row 0 (R), [5-9] = row 1 (G), [10-14] = row 2 (B), [15-19] = row 3 (A)
	Matrix [20]float32
}

// NewColorMatrixFilter creates a color matrix filter with the given matrix.
func NewColorMatrixFilter(matrix [20]float32) *ColorMatrixFilter {
	return &ColorMatrixFilter{Matrix: matrix}
}

// NewIdentityColorMatrix creates a color matrix filter that passes through unchanged.
func NewIdentityColorMatrix() *ColorMatrixFilter {
	return &ColorMatrixFilter{
		Matrix: [20]float32{
			1, 0, 0, 0, 0, // R
			0, 1, 0, 0, 0, // G
			0, 0, 1, 0, 0, // B
			0, 0, 0, 1, 0, // A
		},
	}
}

// NewBrightnessFilter creates a filter that adds value to R, G and B.
// value: -255 = black, 0 = unchanged, 255 = white
func NewBrightnessFilter(value float32) *ColorMatrixFilter {
	return &ColorMatrixFilter{
		Matrix: [20]float32{
			1, 0, 0, 0, value,
			0, 1, 0, 0, value,
			0, 0, 1, 0, value,
			0, 0, 0, 1, 0,
		},
	}
}

// ContrastFactor maps a contrast value in [-255, 254] to the slope applied
// around mid-gray.
func ContrastFactor(value float32) float32 {
	return 259 * (value + 255) / (255 * (259 - value))
}

// NewContrastFilter creates a filter that adjusts contrast.
// value: -255 = flat gray, 0 = unchanged, 254 = near threshold
func NewContrastFilter(value float32) *ColorMatrixFilter {
	// (color - 128) * factor + 128
	factor := ContrastFactor(value)
	offset := 128 * (1 - factor)
	return &ColorMatrixFilter{
		Matrix: [20]float32{
			factor, 0, 0, 0, offset,
			0, factor, 0, 0, offset,
			0, 0, factor, 0, offset,
			0, 0, 0, 1, 0,
		},
	}
}

// NewSaturationFilter creates a filter that adjusts color saturation.
// value: -100 = grayscale, 0 = unchanged, positive = oversaturated
func NewSaturationFilter(value float32) *ColorMatrixFilter {
	// Blend between luma (s=0) and identity (s=1)
	s := 1 + value/100
	inv := 1 - s

	return &ColorMatrixFilter{
		Matrix: [20]float32{
			lumaR*inv + s, lumaG * inv, lumaB * inv, 0, 0,
			lumaR * inv, lumaG*inv + s, lumaB * inv, 0, 0,
			lumaR * inv, lumaG * inv, lumaB*inv + s, 0, 0,
			0, 0, 0, 1, 0,
		},
	}
}

// Apply applies the color matrix transformation from src to dst.
// src and dst may be the same buffer.
func (f *ColorMatrixFilter) Apply(src, dst *image.ImageBuf) {
	if src == nil || dst == nil || !src.SameSize(dst) {
		return
	}

	m := &f.Matrix
	w, h := src.Bounds()

	for y := range h {
		srcRow := src.RowBytes(y)
		dstRow := dst.RowBytes(y)
		for x := range w {
			i := x * image.BytesPerPixel

			r := float32(srcRow[i+0])
			g := float32(srcRow[i+1])
			b := float32(srcRow[i+2])
			a := float32(srcRow[i+3])

			newR := m[0]*r + m[1]*g + m[2]*b + m[3]*a + m[4]
			newG := m[5]*r + m[6]*g + m[7]*b + m[8]*a + m[9]
			newB := m[10]*r + m[11]*g + m[12]*b + m[13]*a + m[14]
			newA := m[15]*r + m[16]*g + m[17]*b + m[18]*a + m[19]

			dstRow[i+0] = clampUint8(newR)
			dstRow[i+1] = clampUint8(newG)
			dstRow[i+2] = clampUint8(newB)
			dstRow[i+3] = clampUint8(newA)
		}
	}
}
