package framefx

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Easing selects the curve used between a keyframe and the next one.
type Easing uint8

// Supported easing curves.
const (
	EaseLinear Easing = iota
	EaseIn
	EaseOut
	EaseInOut
	EaseBezier
)

var easingNames = [...]string{
	EaseLinear: "linear",
	EaseIn:     "ease-in",
	EaseOut:    "ease-out",
	EaseInOut:  "ease-in-out",
	EaseBezier: "bezier",
}

// String returns the canonical hyphenated name.
func (e Easing) String() string {
	if int(e) < len(easingNames) {
		return easingNames[e]
	}
	return "unknown"
}

// ParseEasing resolves an easing name. Matching ignores case and the
// separators '-', '_' and ' ', so "ease-in", "easeIn" and "EASE_IN" are
// equivalent.
func ParseEasing(name string) (Easing, error) {
	key := foldName(name)
	for i, n := range easingNames {
		if foldName(n) == key {
			return Easing(i), nil
		}
	}
	return EaseLinear, fmt.Errorf("%w: easing %q", ErrUnknownName, name)
}

// Ease maps linear progress u in [0,1] through the curve. For EaseBezier the
// four control scalars are blended with the cubic Bernstein polynomials; a
// nil bezier degrades to linear. Unknown easings are linear.
func (e Easing) Ease(u float64, bezier *[4]float64) float64 {
	switch e {
	case EaseIn:
		return u * u
	case EaseOut:
		return u * (2 - u)
	case EaseInOut:
		if u < 0.5 {
			return 2 * u * u
		}
		return -1 + (4-2*u)*u
	case EaseBezier:
		if bezier == nil {
			return u
		}
		v := 1 - u
		return v*v*v*bezier[0] + 3*v*v*u*bezier[1] + 3*v*u*u*bezier[2] + u*u*u*bezier[3]
	default:
		return u
	}
}

// foldName case-folds s and strips word separators. A fresh Caser is used
// per call since Casers are not safe for concurrent use.
func foldName(s string) string {
	s = cases.Fold().String(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, s)
}
