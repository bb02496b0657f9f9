package filter

import (
	"math"
	"sync"
)

// GaussianKernel returns a normalized 1D Gaussian kernel with standard
// deviation sigma. The kernel spans ±ceil(3σ) taps, which covers 99.7% of
// the distribution. For sigma <= 0 it returns the identity kernel [1].
func GaussianKernel(sigma float64) []float32 {
	if sigma <= 0 || math.IsNaN(sigma) {
		return []float32{1.0}
	}

	half := int(math.Ceil(sigma * 3))
	kernel := make([]float32, half*2+1)

	// The 1/(σ√2π) constant cancels out in the normalization below.
	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i := range kernel {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}

	inv := float32(1.0 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

// KernelSize returns the tap count GaussianKernel produces for sigma.
func KernelSize(sigma float64) int {
	if sigma <= 0 || math.IsNaN(sigma) {
		return 1
	}
	return int(math.Ceil(sigma*3))*2 + 1
}

// kernelCache memoizes kernels keyed by sigma quantized to 1/100 pixel.
// Animated blur radii revisit the same values across neighbouring frames.
type kernelCache struct {
	mu      sync.RWMutex
	kernels map[int][]float32
	maxLen  int
}

var defaultKernelCache = newKernelCache(64)

func newKernelCache(maxLen int) *kernelCache {
	return &kernelCache{
		kernels: make(map[int][]float32),
		maxLen:  maxLen,
	}
}

func (c *kernelCache) get(sigma float64) []float32 {
	key := int(math.Round(sigma * 100))

	c.mu.RLock()
	kernel, ok := c.kernels[key]
	c.mu.RUnlock()
	if ok {
		return kernel
	}

	kernel = GaussianKernel(float64(key) / 100)

	c.mu.Lock()
	if len(c.kernels) >= c.maxLen {
		// Drop everything; a new animation rarely revisits old radii.
		clear(c.kernels)
	}
	c.kernels[key] = kernel
	c.mu.Unlock()

	return kernel
}

// len reports the number of cached kernels.
func (c *kernelCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.kernels)
}

// CachedGaussianKernel returns a shared kernel for sigma, computing it on
// first use. Callers must not modify the returned slice.
func CachedGaussianKernel(sigma float64) []float32 {
	return defaultKernelCache.get(sigma)
}
