package filter

import "github.com/gogpu/framefx/internal/image"

// Test helper functions shared across filter tests.

// createTestBuf creates a buffer filled with the given color.
func createTestBuf(w, h int, r, g, b, a uint8) *image.ImageBuf {
	buf, err := image.NewImageBuf(w, h)
	if err != nil {
		panic(err)
	}
	buf.Fill(r, g, b, a)
	return buf
}

// pixel returns the four channels at (x, y) as an array for easy comparison.
func pixel(buf *image.ImageBuf, x, y int) [4]uint8 {
	r, g, b, a := buf.GetRGBA(x, y)
	return [4]uint8{r, g, b, a}
}

// pixelApproxEqual compares two pixels with a per-channel tolerance.
func pixelApproxEqual(a, b [4]uint8, tolerance int) bool {
	for i := range a {
		d := int(a[i]) - int(b[i])
		if d < 0 {
			d = -d
		}
		if d > tolerance {
			return false
		}
	}
	return true
}

// formatFloat formats a float for benchmark names.
func formatFloat(f float64) string {
	if f == float64(int(f)) {
		return formatInt(int(f))
	}
	intPart := int(f)
	fracPart := int((f - float64(intPart)) * 100)
	if fracPart < 0 {
		fracPart = -fracPart
	}
	return formatInt(intPart) + "." + formatInt(fracPart)
}

// formatInt formats an integer without using fmt.
func formatInt(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var digits []byte
	for i > 0 {
		digits = append([]byte{byte('0' + i%10)}, digits...)
		i /= 10
	}
	if neg {
		digits = append([]byte{'-'}, digits...)
	}
	return string(digits)
}
