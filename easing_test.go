package framefx

import (
	"errors"
	"math"
	"testing"
)

func TestEasingEase(t *testing.T) {
	tests := []struct {
		e    Easing
		u    float64
		want float64
	}{
		{EaseLinear, 0.25, 0.25},
		{EaseIn, 0.5, 0.25},
		{EaseOut, 0.5, 0.75},
		{EaseInOut, 0.25, 0.125},
		{EaseInOut, 0.5, 0.5},
		{EaseInOut, 0.75, 0.875},
		{EaseIn, 1, 1},
		{EaseOut, 0, 0},
	}

	for _, tt := range tests {
		if got := tt.e.Ease(tt.u, nil); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%v.Ease(%v) = %v, want %v", tt.e, tt.u, got, tt.want)
		}
	}
}

func TestEasingBezier(t *testing.T) {
	ctrl := &[4]float64{0, 0, 1, 1}
	if got := EaseBezier.Ease(0.5, ctrl); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("bezier(0.5) = %v, want 0.5", got)
	}
	if got := EaseBezier.Ease(0, ctrl); got != 0 {
		t.Errorf("bezier(0) = %v, want 0", got)
	}
	if got := EaseBezier.Ease(1, ctrl); got != 1 {
		t.Errorf("bezier(1) = %v, want 1", got)
	}
	// Missing control points degrade to linear.
	if got := EaseBezier.Ease(0.3, nil); got != 0.3 {
		t.Errorf("bezier without control = %v, want 0.3", got)
	}
}

func TestEasingEndpoints(t *testing.T) {
	for e := EaseLinear; e <= EaseInOut; e++ {
		if got := e.Ease(0, nil); got != 0 {
			t.Errorf("%v.Ease(0) = %v, want 0", e, got)
		}
		if got := e.Ease(1, nil); math.Abs(got-1) > 1e-12 {
			t.Errorf("%v.Ease(1) = %v, want 1", e, got)
		}
	}
}

func TestParseEasing(t *testing.T) {
	tests := []struct {
		in   string
		want Easing
	}{
		{"linear", EaseLinear},
		{"ease-in", EaseIn},
		{"easeIn", EaseIn},
		{"EASE_IN", EaseIn},
		{"ease-out", EaseOut},
		{"easeInOut", EaseInOut},
		{"ease in out", EaseInOut},
		{"Bezier", EaseBezier},
	}
	for _, tt := range tests {
		got, err := ParseEasing(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseEasing(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}

	if _, err := ParseEasing("bounce"); !errors.Is(err, ErrUnknownName) {
		t.Errorf("ParseEasing(bounce) error = %v, want ErrUnknownName", err)
	}
}

func TestEasingString(t *testing.T) {
	if EaseInOut.String() != "ease-in-out" {
		t.Errorf("EaseInOut.String() = %q", EaseInOut.String())
	}
	if Easing(99).String() != "unknown" {
		t.Errorf("Easing(99).String() = %q", Easing(99).String())
	}
}
