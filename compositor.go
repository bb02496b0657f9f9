package framefx

import (
	"fmt"
	"math/rand/v2"

	"github.com/gogpu/framefx/internal/image"
)

// Compositor renders effect stacks onto frames.
//
// A Compositor holds only its configuration. Render is stateless between
// calls and safe for concurrent use; every call works on its own buffers.
type Compositor struct {
	opts options
}

// NewCompositor creates a compositor with the given options.
func NewCompositor(opts ...Option) *Compositor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Compositor{opts: o}
}

// defaultCompositor backs the package-level Render.
var defaultCompositor = NewCompositor()

// Render applies stack to src at time t using default options.
func Render(src *Frame, stack Stack, t float64) (*Frame, error) {
	return defaultCompositor.Render(src, stack, t)
}

// Render applies the enabled effects of stack, in order, to a copy of src
// at playhead time t (seconds) and returns the result.
//
// src is never modified, including when Render fails. Render fails only for
// structural problems: an invalid source or backdrop (ErrInvalidFrame), a
// backdrop of different size (ErrDimensionMismatch), or a keyframe series of
// the wrong type (ErrParamType). Effects of unknown kind are skipped.
func (c *Compositor) Render(src *Frame, stack Stack, t float64) (*Frame, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}

	backdrop, err := c.backdropFor(src)
	if err != nil {
		return nil, err
	}

	pool := c.opts.pool.pool
	p := &pass{
		cur:      pool.Get(src.Width, src.Height),
		scratch:  pool.Get(src.Width, src.Height),
		backdrop: backdrop,
		state:    DefaultDrawState(),
	}
	defer func() {
		pool.Put(p.cur)
		pool.Put(p.scratch)
	}()
	copy(p.cur.Data(), src.Pix)

	grainSeed := c.opts.grainSeed
	if !c.opts.seeded {
		grainSeed = rand.Uint64()
	}

	log := Logger()
	for i := range stack {
		e := &stack[i]
		if !e.Enabled {
			continue
		}
		if !e.Kind.Valid() {
			log.Warn("framefx: skipping effect of unknown kind", "index", i, "kind", e.Kind)
			continue
		}

		op, err := resolveOperator(e, i, t, grainSeed)
		if err != nil {
			return nil, err
		}
		log.Debug("framefx: apply effect", "index", i, "kind", e.Kind, "op", op)
		op.apply(p)
	}

	if p.pending {
		p.draw(1, nil)
	}

	return frameFromBuf(p.cur), nil
}

func (c *Compositor) backdropFor(src *Frame) (*image.ImageBuf, error) {
	bd := c.opts.backdrop
	if bd == nil {
		return nil, nil
	}
	if err := bd.Validate(); err != nil {
		return nil, fmt.Errorf("backdrop: %w", err)
	}
	if bd.Width != src.Width || bd.Height != src.Height {
		return nil, fmt.Errorf("%w: backdrop %dx%d, source %dx%d",
			ErrDimensionMismatch, bd.Width, bd.Height, src.Width, src.Height)
	}
	return bd.buf(), nil
}

// pass is the mutable state of one Render call.
type pass struct {
	cur     *image.ImageBuf // the frame as processed so far
	scratch *image.ImageBuf // destination for operators that cannot work in place

	backdrop *image.ImageBuf // nil means transparent

	state   DrawState
	pending bool // state was set by blend-mode and not yet consumed
}

func (p *pass) swap() {
	p.cur, p.scratch = p.scratch, p.cur
}

// draw composites the current frame onto the backdrop with the pending
// draw state scaled by weight, then resets the draw state. Pixels outside
// clip show the backdrop.
func (p *pass) draw(weight float64, clip *image.Rect) {
	st := p.state
	p.state, p.pending = DefaultDrawState(), false

	if p.backdrop != nil {
		_ = p.scratch.CopyFrom(p.backdrop)
	} else {
		p.scratch.Clear()
	}
	_ = image.Composite(p.scratch, p.cur, image.DrawParams{
		Clip:      clip,
		Opacity:   weight * st.Opacity,
		BlendMode: st.Mode.internal(),
	})
	p.swap()
}
