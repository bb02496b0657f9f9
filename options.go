package framefx

import "github.com/gogpu/framefx/internal/image"

// Option configures a Compositor during creation.
// Use functional options to customize compositing behavior.
//
// Example:
//
//	// Transparent backdrop, default pool
//	c := framefx.NewCompositor()
//
//	// Fades reveal a solid background frame
//	c := framefx.NewCompositor(framefx.WithBackdrop(bg))
type Option func(*options)

// options holds optional configuration for Compositor creation.
type options struct {
	backdrop  *Frame
	grainSeed uint64
	seeded    bool // grainSeed was set explicitly
	workers   int
	pool      *BufferPool
}

// defaultOptions returns the default compositor options.
func defaultOptions() options {
	return options{
		workers: 0, // GOMAXPROCS
		pool:    defaultBufferPool,
	}
}

// WithBackdrop sets the frame that draws (fade, dissolve, wipe and blend
// modes) composite onto. It must have the same dimensions as every source
// frame rendered; otherwise Render fails with ErrDimensionMismatch.
// The backdrop is read, never modified.
func WithBackdrop(f *Frame) Option {
	return func(o *options) {
		o.backdrop = f
	}
}

// WithGrainSeed sets the base seed for grain effects that carry no "seed"
// parameter. The per-frame seed is derived from it, the effect's stack
// index and the playhead time, so renders are reproducible. Without it the
// base seed is drawn at random for every Render call.
func WithGrainSeed(seed uint64) Option {
	return func(o *options) {
		o.grainSeed = seed
		o.seeded = true
	}
}

// WithWorkers sets the number of goroutines RenderSequence uses.
// Zero or negative means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithBufferPool sets the pool scratch buffers are drawn from. Compositors
// share a package-level pool by default.
func WithBufferPool(p *BufferPool) Option {
	return func(o *options) {
		if p != nil {
			o.pool = p
		}
	}
}

// BufferPool recycles the scratch buffers used while rendering.
// It is safe for concurrent use.
type BufferPool struct {
	pool *image.Pool
}

// NewBufferPool creates a pool that keeps at most maxPerSize idle buffers of
// each frame size. Zero means unlimited.
func NewBufferPool(maxPerSize int) *BufferPool {
	return &BufferPool{pool: image.NewPool(maxPerSize)}
}

// Idle returns the number of idle buffers held for the given frame size.
func (p *BufferPool) Idle(width, height int) int {
	return p.pool.Len(width, height)
}

var defaultBufferPool = &BufferPool{pool: image.DefaultPool()}
