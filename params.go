package framefx

import (
	"fmt"
	"math"

	"github.com/gogpu/framefx/internal/color"
)

// paramReader resolves the parameters of one effect at a playhead time.
//
// Lookup order is keyframes, then static value, then default. Keyframe
// series of the wrong type are errors; everything else degrades to the
// default.
type paramReader struct {
	effect *Effect
	index  int
	t      float64
}

func (p paramReader) typeError(name string, got Value, want string) error {
	return fmt.Errorf("effect %d (%s) parameter %q: %w: %s keyframe in %s series",
		p.index, p.effect.Kind, name, ErrParamType, got.Type(), want)
}

func (p paramReader) warnStatic(name string, got Value, want string) {
	Logger().Warn("framefx: static parameter has wrong type, using default",
		"index", p.index, "kind", p.effect.Kind, "param", name,
		"got", got.Type(), "want", want)
}

// number resolves a numeric parameter clamped to [lo, hi]. Non-finite
// results fall back to def.
func (p paramReader) number(name string, def, lo, hi float64) (float64, error) {
	v := def
	if kfs := p.effect.Keyframes[name]; len(kfs) > 0 {
		for _, k := range kfs {
			if !k.Value.IsNumber() {
				return 0, p.typeError(name, k.Value, "number")
			}
		}
		v, _ = Evaluate(kfs, p.t).AsNumber()
	} else if sv, ok := p.effect.Params[name]; ok {
		if n, ok := sv.AsNumber(); ok {
			v = n
		} else {
			p.warnStatic(name, sv, "number")
		}
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = def
	}
	return min(max(v, lo), hi), nil
}

// optionalNumber reports a numeric parameter only when the effect sets it.
func (p paramReader) optionalNumber(name string) (float64, bool, error) {
	_, keyed := p.effect.Keyframes[name]
	_, static := p.effect.Params[name]
	if !keyed && !static {
		return 0, false, nil
	}
	v, err := p.number(name, math.NaN(), math.Inf(-1), math.Inf(1))
	if err != nil || math.IsNaN(v) {
		return 0, false, err
	}
	return v, true, nil
}

// text resolves a string parameter. String series step between keyframes.
func (p paramReader) text(name, def string) (string, error) {
	if kfs := p.effect.Keyframes[name]; len(kfs) > 0 {
		for _, k := range kfs {
			if k.Value.Type() != TypeString {
				return "", p.typeError(name, k.Value, "string")
			}
		}
		s, _ := Evaluate(kfs, p.t).AsString()
		return s, nil
	}
	if sv, ok := p.effect.Params[name]; ok {
		if s, ok := sv.AsString(); ok {
			return s, nil
		}
		p.warnStatic(name, sv, "string")
	}
	return def, nil
}

// color resolves a color parameter given as a hex string or a 0xRRGGBB
// number. Keyframed colors interpolate per channel.
func (p paramReader) color(name string, def color.ColorU8) (color.ColorU8, error) {
	if kfs := p.effect.Keyframes[name]; len(kfs) > 0 {
		var ch [3][]Keyframe
		for _, k := range kfs {
			if k.Value.Type() == TypeBool {
				return def, p.typeError(name, k.Value, "color")
			}
			c := p.toColor(name, k.Value, def)
			for i, v := range [3]uint8{c.R, c.G, c.B} {
				ch[i] = append(ch[i], Keyframe{Time: k.Time, Value: Number(float64(v)), Easing: k.Easing, Bezier: k.Bezier})
			}
		}
		var out [3]uint8
		for i := range ch {
			v, _ := Evaluate(ch[i], p.t).AsNumber()
			out[i] = uint8(min(max(math.Round(v), 0), 255))
		}
		return color.ColorU8{R: out[0], G: out[1], B: out[2], A: 255}, nil
	}
	if sv, ok := p.effect.Params[name]; ok {
		if sv.Type() == TypeBool {
			p.warnStatic(name, sv, "color")
			return def, nil
		}
		return p.toColor(name, sv, def), nil
	}
	return def, nil
}

func (p paramReader) toColor(name string, v Value, def color.ColorU8) color.ColorU8 {
	if n, ok := v.AsNumber(); ok {
		if math.IsNaN(n) || n < 0 || n > 0xffffff {
			return def
		}
		return color.FromPacked(uint32(n))
	}
	s, _ := v.AsString()
	c, err := color.ParseHex(s)
	if err != nil {
		Logger().Warn("framefx: unparseable color, using default",
			"index", p.index, "kind", p.effect.Kind, "param", name, "value", s)
		return def
	}
	c.A = 255
	return c
}
