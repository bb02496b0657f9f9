// Package color provides the color-space conversions used by the effect
// operators.
package color

// ColorU8 represents a straight-alpha color with uint8 components in [0,255].
type ColorU8 struct {
	R, G, B, A uint8
}

// ColorF64 represents a color with float64 components in [0,1].
type ColorF64 struct {
	R, G, B, A float64
}

// U8ToF64 maps each [0,255] component to [0,1].
func U8ToF64(c ColorU8) ColorF64 {
	return ColorF64{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
		A: float64(c.A) / 255.0,
	}
}

// F64ToU8 maps each [0,1] component to [0,255] with rounding.
func F64ToU8(c ColorF64) ColorU8 {
	return ColorU8{
		R: clampAndRound(c.R),
		G: clampAndRound(c.G),
		B: clampAndRound(c.B),
		A: clampAndRound(c.A),
	}
}

// clampAndRound clamps to [0,1] and converts to uint8 with rounding.
func clampAndRound(v float64) uint8 {
	if v <= 0 || v != v {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}
