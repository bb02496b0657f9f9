package image

import "math"

// Rect represents a rectangular region in pixel coordinates.
type Rect struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// intersect clips r to a w×h canvas.
func (r Rect) intersect(w, h int) Rect {
	if r.X < 0 {
		r.Width += r.X
		r.X = 0
	}
	if r.Y < 0 {
		r.Height += r.Y
		r.Y = 0
	}
	if r.X+r.Width > w {
		r.Width = w - r.X
	}
	if r.Y+r.Height > h {
		r.Height = h - r.Y
	}
	return r
}

// BlendMode defines how source pixels are blended with destination pixels.
type BlendMode uint8

const (
	// BlendNormal performs standard alpha blending (source over destination).
	BlendNormal BlendMode = iota

	// BlendMultiply multiplies source and destination colors.
	// Result is always darker or equal. Formula: dst * src
	BlendMultiply

	// BlendScreen performs inverse multiply for lighter results.
	// Formula: 1 - (1-dst) * (1-src)
	BlendScreen

	// BlendOverlay combines multiply and screen based on destination brightness.
	// Dark areas are multiplied, bright areas are screened.
	BlendOverlay

	// BlendAdd sums the alpha-weighted source and destination ("lighter").
	BlendAdd
)

const unknownBlendMode = "Unknown"

// String returns a string representation of the blend mode.
func (b BlendMode) String() string {
	switch b {
	case BlendNormal:
		return "Normal"
	case BlendMultiply:
		return "Multiply"
	case BlendScreen:
		return "Screen"
	case BlendOverlay:
		return "Overlay"
	case BlendAdd:
		return "Add"
	default:
		return unknownBlendMode
	}
}

// DrawParams specifies parameters for the Composite operation.
type DrawParams struct {
	// Clip restricts drawing to a destination rectangle.
	// If nil, the whole canvas is drawn.
	Clip *Rect

	// Opacity scales the source alpha (0.0 to 1.0).
	Opacity float64

	// BlendMode specifies how to blend source and destination pixels.
	BlendMode BlendMode
}

// Composite draws src onto dst, pixel for pixel, using the given parameters.
// Both buffers must have the same dimensions. Pixels outside Clip keep their
// destination value. The destination image is modified in place.
func Composite(dst, src *ImageBuf, params DrawParams) error {
	if !dst.SameSize(src) {
		return ErrSizeMismatch
	}

	w, h := dst.Bounds()
	area := Rect{Width: w, Height: h}
	if params.Clip != nil {
		area = params.Clip.intersect(w, h)
	}
	if area.Empty() {
		return nil
	}

	opacity := math.Max(0.0, math.Min(1.0, params.Opacity))
	if opacity == 0 {
		return nil
	}

	for y := area.Y; y < area.Y+area.Height; y++ {
		srcRow := src.RowBytes(y)
		dstRow := dst.RowBytes(y)
		for x := area.X; x < area.X+area.Width; x++ {
			i := x * BytesPerPixel
			srcA := srcRow[i+3]
			if opacity < 1.0 {
				srcA = uint8(float64(srcA)*opacity + 0.5)
			}

			r, g, b, a := blend(
				srcRow[i], srcRow[i+1], srcRow[i+2], srcA,
				dstRow[i], dstRow[i+1], dstRow[i+2], dstRow[i+3],
				params.BlendMode,
			)
			dstRow[i] = r
			dstRow[i+1] = g
			dstRow[i+2] = b
			dstRow[i+3] = a
		}
	}
	return nil
}

// blend blends source and destination colors using the specified blend mode.
func blend(srcR, srcG, srcB, srcA, dstR, dstG, dstB, dstA uint8, mode BlendMode) (r, g, b, a byte) {
	if srcA == 0 {
		// Fully transparent source, return destination unchanged
		return dstR, dstG, dstB, dstA
	}

	switch mode {
	case BlendNormal:
		return blendNormal(srcR, srcG, srcB, srcA, dstR, dstG, dstB, dstA)
	case BlendAdd:
		return blendAdd(srcR, srcG, srcB, srcA, dstR, dstG, dstB, dstA)
	}

	// Separable modes: B(Cs, Cd) is weighted by backdrop alpha so that an
	// empty backdrop shows the plain source color.
	var blendedR, blendedG, blendedB uint8

	switch mode {
	case BlendMultiply:
		blendedR, blendedG, blendedB = blendMultiply(srcR, srcG, srcB, dstR, dstG, dstB)
	case BlendScreen:
		blendedR, blendedG, blendedB = blendScreen(srcR, srcG, srcB, dstR, dstG, dstB)
	case BlendOverlay:
		blendedR, blendedG, blendedB = blendOverlay(srcR, srcG, srcB, dstR, dstG, dstB)
	default:
		blendedR, blendedG, blendedB = srcR, srcG, srcB
	}

	blendedR = mixByte(srcR, blendedR, dstA)
	blendedG = mixByte(srcG, blendedG, dstA)
	blendedB = mixByte(srcB, blendedB, dstA)

	return blendNormal(blendedR, blendedG, blendedB, srcA, dstR, dstG, dstB, dstA)
}

// mixByte returns a*(1-t) + b*t for t given in 0-255.
func mixByte(a, b, t uint8) uint8 {
	return uint8((int(a)*(255-int(t)) + int(b)*int(t) + 127) / 255)
}

// blendNormal performs standard alpha blending (source over destination).
func blendNormal(srcR, srcG, srcB, srcA, dstR, dstG, dstB, dstA uint8) (r, g, b, a byte) {
	if srcA == 255 {
		// Fully opaque source, just return source
		return srcR, srcG, srcB, 255
	}

	if dstA == 0 {
		// Transparent destination, just return source
		return srcR, srcG, srcB, srcA
	}

	// Porter-Duff "source over" formula
	// out_a = src_a + dst_a * (1 - src_a)
	// out_c = (src_c * src_a + dst_c * dst_a * (1 - src_a)) / out_a

	srcAlpha := float64(srcA) / 255.0
	dstAlpha := float64(dstA) / 255.0

	outAlpha := srcAlpha + dstAlpha*(1-srcAlpha)

	r = roundByte((float64(srcR)*srcAlpha + float64(dstR)*dstAlpha*(1-srcAlpha)) / outAlpha)
	g = roundByte((float64(srcG)*srcAlpha + float64(dstG)*dstAlpha*(1-srcAlpha)) / outAlpha)
	b = roundByte((float64(srcB)*srcAlpha + float64(dstB)*dstAlpha*(1-srcAlpha)) / outAlpha)
	a = roundByte(outAlpha * 255.0)

	return r, g, b, a
}

// blendAdd adds premultiplied source and destination, clamping at white.
func blendAdd(srcR, srcG, srcB, srcA, dstR, dstG, dstB, dstA uint8) (r, g, b, a byte) {
	srcAlpha := float64(srcA) / 255.0
	dstAlpha := float64(dstA) / 255.0

	outAlpha := math.Min(1, srcAlpha+dstAlpha)

	r = roundByte((float64(srcR)*srcAlpha + float64(dstR)*dstAlpha) / outAlpha)
	g = roundByte((float64(srcG)*srcAlpha + float64(dstG)*dstAlpha) / outAlpha)
	b = roundByte((float64(srcB)*srcAlpha + float64(dstB)*dstAlpha) / outAlpha)
	a = roundByte(outAlpha * 255.0)

	return r, g, b, a
}

// blendMultiply multiplies source and destination colors.
func blendMultiply(srcR, srcG, srcB, dstR, dstG, dstB uint8) (r, g, b byte) {
	r = uint8((int(srcR) * int(dstR)) / 255)
	g = uint8((int(srcG) * int(dstG)) / 255)
	b = uint8((int(srcB) * int(dstB)) / 255)
	return r, g, b
}

// blendScreen performs screen blending for lighter results.
func blendScreen(srcR, srcG, srcB, dstR, dstG, dstB uint8) (r, g, b byte) {
	// Formula: 1 - (1-src) * (1-dst) = src + dst - src*dst
	r = uint8(255 - (255-int(srcR))*(255-int(dstR))/255)
	g = uint8(255 - (255-int(srcG))*(255-int(dstG))/255)
	b = uint8(255 - (255-int(srcB))*(255-int(dstB))/255)
	return r, g, b
}

// blendOverlay combines multiply and screen based on destination brightness.
func blendOverlay(srcR, srcG, srcB, dstR, dstG, dstB uint8) (r, g, b byte) {
	r = overlayChannel(srcR, dstR)
	g = overlayChannel(srcG, dstG)
	b = overlayChannel(srcB, dstB)
	return r, g, b
}

// overlayChannel applies overlay blending to a single channel.
func overlayChannel(src, dst uint8) uint8 {
	// If dst < 0.5: 2 * src * dst
	// Else: 1 - 2 * (1-src) * (1-dst)
	if dst < 128 {
		return uint8((2 * int(src) * int(dst)) / 255)
	}
	return uint8(255 - (2*(255-int(src))*(255-int(dst)))/255)
}

// roundByte rounds a float to the nearest byte, clamping to [0, 255].
func roundByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
