package framefx

import (
	"math"

	"github.com/gogpu/framefx/internal/chromakey"
	"github.com/gogpu/framefx/internal/filter"
	"github.com/gogpu/framefx/internal/image"
)

// operator is a fully resolved effect, ready to run against a pass.
type operator interface {
	apply(p *pass)
}

type (
	brightnessOp struct{ value float64 }
	contrastOp   struct{ value float64 }
	saturationOp struct{ value float64 }
	hueOp        struct{ degrees float64 }
	blurOp       struct{ radius float64 }

	// motionBlurOp carries its parameters but renders nothing.
	motionBlurOp struct{ angle, distance float64 }

	scaleOp    struct{ sx, sy float64 }
	rotateOp   struct{ degrees float64 }
	positionOp struct{ x, y float64 }

	// drawOp covers fade, dissolve and wipe: each composites the frame
	// onto the backdrop, optionally clipped.
	drawOp struct {
		weight float64
		wipe   bool
		dir    WipeDirection
		reveal float64
	}

	vignetteOp struct{ intensity, radius float64 }
	grainOp    struct {
		intensity float64
		seed      uint64
	}
	chromaKeyOp struct{ params chromakey.Params }
	blendModeOp struct{ state DrawState }
)

// resolveOperator reads an effect's parameters at time t and returns its
// typed operator. It returns nil for kinds without an operator.
func resolveOperator(e *Effect, index int, t float64, grainSeed uint64) (operator, error) {
	p := paramReader{effect: e, index: index, t: t}
	inf := math.Inf(1)

	switch e.Kind {
	case KindBrightness:
		v, err := p.number("value", 0, -255, 255)
		return brightnessOp{v}, err

	case KindContrast:
		v, err := p.number("value", 0, -255, 254)
		return contrastOp{v}, err

	case KindSaturation:
		v, err := p.number("value", 0, -100, 1000)
		return saturationOp{v}, err

	case KindHue:
		v, err := p.number("value", 0, -inf, inf)
		return hueOp{v}, err

	case KindGaussianBlur:
		v, err := p.number("radius", 0, 0, 250)
		return blurOp{v}, err

	case KindMotionBlur:
		angle, err := p.number("angle", 0, -inf, inf)
		if err != nil {
			return nil, err
		}
		dist, err := p.number("distance", 0, 0, inf)
		return motionBlurOp{angle, dist}, err

	case KindScale:
		sx, err := p.number("scaleX", 1, 0, 100)
		if err != nil {
			return nil, err
		}
		sy, err := p.number("scaleY", 1, 0, 100)
		return scaleOp{sx, sy}, err

	case KindRotate:
		v, err := p.number("angle", 0, -inf, inf)
		return rotateOp{v}, err

	case KindPosition:
		x, err := p.number("x", 0, -inf, inf)
		if err != nil {
			return nil, err
		}
		y, err := p.number("y", 0, -inf, inf)
		return positionOp{x, y}, err

	case KindFade:
		v, err := p.number("opacity", 1, 0, 1)
		return drawOp{weight: v}, err

	case KindDissolve:
		v, err := p.number("amount", 0, 0, 1)
		return drawOp{weight: 1 - v}, err

	case KindWipe:
		progress, err := p.number("progress", 1, 0, 1)
		if err != nil {
			return nil, err
		}
		name, err := p.text("direction", WipeLeftToRight.String())
		if err != nil {
			return nil, err
		}
		dir, perr := ParseWipeDirection(name)
		if perr != nil {
			Logger().Warn("framefx: unknown wipe direction, using default", "index", index, "direction", name)
		}
		return drawOp{weight: 1, wipe: true, dir: dir, reveal: progress}, nil

	case KindVignette:
		intensity, err := p.number("intensity", 0, 0, 1)
		if err != nil {
			return nil, err
		}
		radius, err := p.number("radius", 0.5, 0, 1)
		return vignetteOp{intensity, radius}, err

	case KindGrain:
		intensity, err := p.number("intensity", 0, 0, 1)
		if err != nil {
			return nil, err
		}
		seed, ok, err := p.optionalNumber("seed")
		if err != nil {
			return nil, err
		}
		s := frameSeed(grainSeed, index, t)
		if ok {
			s = seedBits(seed)
		}
		return grainOp{intensity, s}, nil

	case KindChromaKey:
		return resolveChromaKey(p)

	case KindBlendMode:
		name, err := p.text("mode", BlendNormal.String())
		if err != nil {
			return nil, err
		}
		mode, perr := ParseBlendMode(name)
		if perr != nil {
			Logger().Warn("framefx: unknown blend mode, using default", "index", index, "mode", name)
		}
		opacity, err := p.number("opacity", 100, 0, 100)
		return blendModeOp{DrawState{Mode: mode, Opacity: opacity / 100}}, err

	default:
		return nil, nil
	}
}

func resolveChromaKey(p paramReader) (operator, error) {
	def := chromakey.DefaultParams()
	var (
		cp  chromakey.Params
		err error
	)

	if cp.Key, err = p.color("keyColor", def.Key); err != nil {
		return nil, err
	}

	fields := []struct {
		name   string
		dst    *float64
		def    float64
		lo, hi float64
	}{
		{"similarity", &cp.Similarity, def.Similarity, 0, 1},
		{"smoothness", &cp.Smoothness, def.Smoothness, 0, 1},
		{"spillSuppression", &cp.SpillSuppression, def.SpillSuppression, 0, 1},
		{"edgeThickness", &cp.EdgeThickness, def.EdgeThickness, -50, 50},
		{"choke", &cp.Choke, def.Choke, -50, 50},
		{"edgeFeather", &cp.EdgeFeather, def.EdgeFeather, 0, 50},
		{"matteCleanup", &cp.MatteCleanup, def.MatteCleanup, 0, 1},
	}
	for _, f := range fields {
		if *f.dst, err = p.number(f.name, f.def, f.lo, f.hi); err != nil {
			return nil, err
		}
	}
	return chromaKeyOp{cp}, nil
}

// seedBits converts a seed parameter to a grain seed. Integral values in
// the int64 range map to themselves; anything else uses its bit pattern.
func seedBits(v float64) uint64 {
	if v == math.Trunc(v) && v >= math.MinInt64 && v < math.MaxInt64 {
		return uint64(int64(v))
	}
	return math.Float64bits(v)
}

// frameSeed derives a grain seed from the base seed, the effect's position
// in the stack and the playhead. Grain animates across frames, and a fixed
// base renders any single frame identically every time.
func frameSeed(base uint64, index int, t float64) uint64 {
	h := base ^ 0x9e3779b97f4a7c15
	h ^= uint64(index) * 0xbf58476d1ce4e5b9
	h ^= math.Float64bits(t) * 0x94d049bb133111eb
	h ^= h >> 31
	return h
}

func (o brightnessOp) apply(p *pass) {
	if o.value == 0 {
		return
	}
	filter.NewBrightnessFilter(float32(o.value)).Apply(p.cur, p.cur)
}

func (o contrastOp) apply(p *pass) {
	if o.value == 0 {
		return
	}
	filter.NewContrastFilter(float32(o.value)).Apply(p.cur, p.cur)
}

func (o saturationOp) apply(p *pass) {
	if o.value == 0 {
		return
	}
	filter.NewSaturationFilter(float32(o.value)).Apply(p.cur, p.cur)
}

func (o hueOp) apply(p *pass) {
	filter.NewHueRotateFilter(o.degrees).Apply(p.cur, p.cur)
}

func (o blurOp) apply(p *pass) {
	if o.radius <= 0 {
		return
	}
	filter.NewBlurFilter(o.radius).Apply(p.cur, p.cur)
}

func (o motionBlurOp) apply(*pass) {
	Logger().Debug("framefx: motion-blur is not rendered", "angle", o.angle, "distance", o.distance)
}

func (o scaleOp) apply(p *pass) {
	if o.sx == 1 && o.sy == 1 {
		return
	}
	w, h := p.cur.Bounds()
	image.Resample(p.scratch, p.cur, image.ScaleAt(o.sx, o.sy, float64(w)/2, float64(h)/2))
	p.swap()
}

func (o rotateOp) apply(p *pass) {
	if math.Mod(o.degrees, 360) == 0 {
		return
	}
	w, h := p.cur.Bounds()
	image.Resample(p.scratch, p.cur, image.RotateAt(o.degrees*math.Pi/180, float64(w)/2, float64(h)/2))
	p.swap()
}

func (o positionOp) apply(p *pass) {
	if o.x == 0 && o.y == 0 {
		return
	}
	if o.x == math.Trunc(o.x) && o.y == math.Trunc(o.y) {
		image.Shift(p.scratch, p.cur, clampShift(o.x), clampShift(o.y))
	} else {
		image.Resample(p.scratch, p.cur, image.Translate(o.x, o.y))
	}
	p.swap()
}

// clampShift bounds an integral offset so int conversion cannot overflow.
func clampShift(v float64) int {
	return int(min(max(v, -1<<30), 1<<30))
}

func (o drawOp) apply(p *pass) {
	if !o.wipe {
		p.draw(o.weight, nil)
		return
	}
	w, h := p.cur.Bounds()
	clip := o.dir.reveal(o.reveal, w, h)
	p.draw(o.weight, &clip)
}

func (o vignetteOp) apply(p *pass) {
	(&filter.VignetteFilter{Intensity: o.intensity, Radius: o.radius}).Apply(p.cur, p.cur)
}

func (o grainOp) apply(p *pass) {
	(&filter.GrainFilter{Intensity: o.intensity, Seed: o.seed}).Apply(p.cur, p.cur)
}

func (o chromaKeyOp) apply(p *pass) {
	chromakey.Apply(p.cur, o.params)
}

func (o blendModeOp) apply(p *pass) {
	p.state = o.state
	p.pending = true
}
