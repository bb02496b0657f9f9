package framefx

import "testing"

func TestDefaultOptions(t *testing.T) {
	c := NewCompositor()
	if c.opts.backdrop != nil {
		t.Error("default backdrop should be transparent (nil)")
	}
	if c.opts.pool != defaultBufferPool {
		t.Error("default compositor should share the package buffer pool")
	}
	if c.opts.workers != 0 {
		t.Errorf("workers = %d, want 0", c.opts.workers)
	}
	if c.opts.seeded {
		t.Error("default grain seed should be random, not explicit")
	}
}

func TestOptionsApplied(t *testing.T) {
	bg := solidFrame(2, 2, 0, 0, 0, 255)
	pool := NewBufferPool(1)

	c := NewCompositor(WithBackdrop(bg), WithGrainSeed(5), WithWorkers(3), WithBufferPool(pool))
	if c.opts.backdrop != bg {
		t.Error("WithBackdrop not applied")
	}
	if !c.opts.seeded {
		t.Error("WithGrainSeed should mark the seed as explicit")
	}
	if c.opts.grainSeed != 5 {
		t.Errorf("grainSeed = %d, want 5", c.opts.grainSeed)
	}
	if c.opts.workers != 3 {
		t.Errorf("workers = %d, want 3", c.opts.workers)
	}
	if c.opts.pool != pool {
		t.Error("WithBufferPool not applied")
	}
}

func TestWithBufferPoolNil(t *testing.T) {
	c := NewCompositor(WithBufferPool(nil))
	if c.opts.pool != defaultBufferPool {
		t.Error("WithBufferPool(nil) should keep the default pool")
	}
}

func TestBufferPoolLimit(t *testing.T) {
	pool := NewBufferPool(1)
	c := NewCompositor(WithBufferPool(pool))

	_ = mustRender(t, c, patternFrame(3, 3), nil, 0)
	if n := pool.Idle(3, 3); n != 1 {
		t.Errorf("Idle(3, 3) = %d, want 1", n)
	}
	if n := pool.Idle(4, 4); n != 0 {
		t.Errorf("Idle(4, 4) = %d, want 0", n)
	}
}
