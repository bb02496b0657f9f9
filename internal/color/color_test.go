package color

import (
	"errors"
	"math"
	"testing"
)

func TestHSLRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
	}{
		{"red", 1, 0, 0},
		{"green", 0, 1, 0},
		{"blue", 0, 0, 1},
		{"gray", 0.5, 0.5, 0.5},
		{"orange", 1, 0.5, 0},
		{"dark teal", 0.1, 0.4, 0.35},
		{"pastel", 0.9, 0.8, 0.95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := RGBToHSL(tt.r, tt.g, tt.b)
			r, g, b := HSLToRGB(h, s, l)
			if math.Abs(r-tt.r) > 1e-9 || math.Abs(g-tt.g) > 1e-9 || math.Abs(b-tt.b) > 1e-9 {
				t.Errorf("round trip = (%f, %f, %f), want (%f, %f, %f)", r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestRGBToHSLPrimaries(t *testing.T) {
	tests := []struct {
		r, g, b float64
		wantH   float64
	}{
		{1, 0, 0, 0},
		{0, 1, 0, 1.0 / 3},
		{0, 0, 1, 2.0 / 3},
		{1, 0, 1, 5.0 / 6},
	}

	for _, tt := range tests {
		h, s, l := RGBToHSL(tt.r, tt.g, tt.b)
		if math.Abs(h-tt.wantH) > 1e-9 {
			t.Errorf("hue(%v,%v,%v) = %f, want %f", tt.r, tt.g, tt.b, h, tt.wantH)
		}
		if math.Abs(s-1) > 1e-9 || math.Abs(l-0.5) > 1e-9 {
			t.Errorf("s,l(%v,%v,%v) = %f,%f, want 1,0.5", tt.r, tt.g, tt.b, s, l)
		}
	}
}

func TestHSLToRGBWrapsHue(t *testing.T) {
	r1, g1, b1 := HSLToRGB(1.0/3, 1, 0.5)
	r2, g2, b2 := HSLToRGB(-2.0/3, 1, 0.5)
	if math.Abs(r1-r2) > 1e-9 || math.Abs(g1-g2) > 1e-9 || math.Abs(b1-b2) > 1e-9 {
		t.Errorf("wrapped hue mismatch: (%f,%f,%f) vs (%f,%f,%f)", r1, g1, b1, r2, g2, b2)
	}
}

func TestWrapUnit(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0}, {0.25, 0.25}, {1, 0}, {1.5, 0.5}, {-0.25, 0.75}, {-3, 0},
	}
	for _, tt := range tests {
		if got := WrapUnit(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("WrapUnit(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want ColorU8
	}{
		{"#00ff00", ColorU8{0, 255, 0, 255}},
		{"00FF00", ColorU8{0, 255, 0, 255}},
		{"0x0000ff", ColorU8{0, 0, 255, 255}},
		{"#f00", ColorU8{255, 0, 0, 255}},
		{"#f008", ColorU8{255, 0, 0, 136}},
		{" #11223344 ", ColorU8{0x11, 0x22, 0x33, 0x44}},
	}

	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if err != nil {
			t.Errorf("ParseHex(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#gg0000", "#12345", "green"} {
		if _, err := ParseHex(in); !errors.Is(err, ErrInvalidHex) {
			t.Errorf("ParseHex(%q) error = %v, want ErrInvalidHex", in, err)
		}
	}
}

func TestFromPacked(t *testing.T) {
	if got := FromPacked(0x12ab34); got != (ColorU8{0x12, 0xab, 0x34, 255}) {
		t.Errorf("FromPacked = %+v", got)
	}
}

func TestU8F64(t *testing.T) {
	c := ColorU8{R: 255, G: 128, B: 0, A: 255}
	if back := F64ToU8(U8ToF64(c)); back != c {
		t.Errorf("round trip = %+v, want %+v", back, c)
	}
	if got := F64ToU8(ColorF64{R: -1, G: 2, B: math.NaN(), A: 0.5}); got != (ColorU8{0, 255, 0, 128}) {
		t.Errorf("clamped = %+v", got)
	}
}
