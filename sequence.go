package framefx

import (
	"context"

	"github.com/gogpu/framefx/internal/parallel"
)

// RenderSequence renders src at each playhead time in times, in parallel,
// and returns the frames in the same order as times.
//
// Each frame is rendered independently with its own buffers. The context is
// checked between frames; a frame already rendering runs to completion. On
// the first error, or when ctx is done, no further frames are started and
// the error is returned.
func (c *Compositor) RenderSequence(ctx context.Context, src *Frame, stack Stack, times []float64) ([]*Frame, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	if _, err := c.backdropFor(src); err != nil {
		return nil, err
	}

	pool := parallel.NewWorkerPool(c.opts.workers)
	defer pool.Close()

	frames := make([]*Frame, len(times))
	jobs := make([]parallel.Job, len(times))
	for i, t := range times {
		jobs[i] = func(context.Context) error {
			f, err := c.Render(src, stack, t)
			if err != nil {
				return err
			}
			frames[i] = f
			return nil
		}
	}

	if err := pool.Run(ctx, jobs); err != nil {
		return nil, err
	}
	return frames, nil
}
