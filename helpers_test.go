package framefx

import "testing"

// Test helper functions shared across framefx tests.

// solidFrame creates a frame filled with one color.
func solidFrame(w, h int, r, g, b, a uint8) *Frame {
	f := NewFrame(w, h)
	f.Fill(r, g, b, a)
	return f
}

// patternFrame creates an opaque frame with a smooth diagonal gradient and a
// bright square near the center, so geometric effects have structure to move.
func patternFrame(w, h int) *Frame {
	f := NewFrame(w, h)
	for y := range h {
		for x := range w {
			f.SetPixel(x, y, uint8(x*255/max(w-1, 1)), uint8(y*255/max(h-1, 1)), 128, 255)
		}
	}
	for y := h / 3; y < 2*h/3; y++ {
		for x := w / 3; x < 2*w/3; x++ {
			f.SetPixel(x, y, 250, 250, 40, 255)
		}
	}
	return f
}

// pixelOf returns the channels at (x, y) as an array for easy comparison.
func pixelOf(f *Frame, x, y int) [4]uint8 {
	r, g, b, a := f.Pixel(x, y)
	return [4]uint8{r, g, b, a}
}

// mustRender renders and fails the test on error.
func mustRender(t *testing.T, c *Compositor, src *Frame, stack Stack, at float64) *Frame {
	t.Helper()
	out, err := c.Render(src, stack, at)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return out
}

// absDiff returns |a-b| for bytes.
func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
