package framefx

import (
	"fmt"
	"maps"
)

// Kind identifies an effect operator. The set is closed.
type Kind uint8

// Effect kinds, in no particular order. KindUnknown marks an effect whose
// kind could not be resolved; the compositor skips it.
const (
	KindUnknown Kind = iota
	KindBrightness
	KindContrast
	KindSaturation
	KindHue
	KindGaussianBlur
	KindMotionBlur
	KindScale
	KindRotate
	KindPosition
	KindFade
	KindDissolve
	KindWipe
	KindVignette
	KindGrain
	KindChromaKey
	KindBlendMode

	numKinds
)

var kindNames = [numKinds]string{
	KindUnknown:      "unknown",
	KindBrightness:   "brightness",
	KindContrast:     "contrast",
	KindSaturation:   "saturation",
	KindHue:          "hue",
	KindGaussianBlur: "gaussian-blur",
	KindMotionBlur:   "motion-blur",
	KindScale:        "scale",
	KindRotate:       "rotate",
	KindPosition:     "position",
	KindFade:         "fade",
	KindDissolve:     "dissolve",
	KindWipe:         "wipe",
	KindVignette:     "vignette",
	KindGrain:        "grain",
	KindChromaKey:    "chroma-key",
	KindBlendMode:    "blend-mode",
}

// String returns the canonical hyphenated name of the kind.
func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k names an operator.
func (k Kind) Valid() bool {
	return k > KindUnknown && k < numKinds
}

// ParseKind resolves an effect kind name. Matching ignores case and the
// separators '-', '_' and ' ': "gaussian-blur", "GaussianBlur" and
// "gaussian_blur" all resolve to KindGaussianBlur.
func ParseKind(name string) (Kind, error) {
	key := foldName(name)
	for k := KindBrightness; k < numKinds; k++ {
		if foldName(kindNames[k]) == key {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("%w: effect kind %q", ErrUnknownName, name)
}

// Effect is one entry of an effect stack.
//
// Params holds static parameter values. Keyframes, when present for a
// parameter, override its static value. The compositor only reads effects.
type Effect struct {
	Kind      Kind
	Enabled   bool
	Params    map[string]Value
	Keyframes map[string][]Keyframe
}

// NewEffect returns an enabled effect of the given kind with no parameters.
func NewEffect(kind Kind) Effect {
	return Effect{Kind: kind, Enabled: true}
}

// With returns a copy of e with a static parameter set.
func (e Effect) With(name string, v Value) Effect {
	params := maps.Clone(e.Params)
	if params == nil {
		params = make(map[string]Value, 1)
	}
	params[name] = v
	e.Params = params
	return e
}

// WithKeyframes returns a copy of e with a keyframe series set for a parameter.
func (e Effect) WithKeyframes(name string, kfs ...Keyframe) Effect {
	series := maps.Clone(e.Keyframes)
	if series == nil {
		series = make(map[string][]Keyframe, 1)
	}
	series[name] = kfs
	e.Keyframes = series
	return e
}

// Stack is an ordered list of effects. Index order is compositing order.
type Stack []Effect
