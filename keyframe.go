package framefx

import (
	"cmp"
	"math"
	"slices"
)

// Keyframe pins a parameter to Value at Time (seconds). Easing shapes the
// transition toward the following keyframe.
type Keyframe struct {
	Time   float64
	Value  Value
	Easing Easing

	// Bezier holds the control scalars for EaseBezier. Optional.
	Bezier *[4]float64
}

// Evaluate returns the value of a keyframed parameter at time t.
//
// Keyframes may be given in any order. Before the first keyframe the first
// value holds, after the last the last value holds. Between two numeric
// keyframes the value is interpolated through the earlier keyframe's easing;
// any other pair steps, holding the earlier value. An empty series evaluates
// to Number(0). Keyframes with a NaN time are ignored.
//
// Evaluate never modifies keyframes and is safe for concurrent use.
func Evaluate(keyframes []Keyframe, t float64) Value {
	kfs := make([]Keyframe, 0, len(keyframes))
	for _, k := range keyframes {
		if !math.IsNaN(k.Time) {
			kfs = append(kfs, k)
		}
	}

	switch len(kfs) {
	case 0:
		return Number(0)
	case 1:
		return kfs[0].Value
	}

	slices.SortStableFunc(kfs, func(a, b Keyframe) int {
		return cmp.Compare(a.Time, b.Time)
	})

	first, last := kfs[0], kfs[len(kfs)-1]
	// NaN t lands here too.
	if !(t > first.Time) {
		return first.Value
	}
	if t >= last.Time {
		return last.Value
	}

	i, _ := slices.BinarySearchFunc(kfs, t, func(k Keyframe, t float64) int {
		if k.Time <= t {
			return -1
		}
		return 1
	})
	k1, k2 := kfs[i-1], kfs[i]

	a, okA := k1.Value.AsNumber()
	b, okB := k2.Value.AsNumber()
	if !okA || !okB {
		return k1.Value
	}

	u := (t - k1.Time) / (k2.Time - k1.Time)
	if math.IsNaN(u) || math.IsInf(u, 0) {
		return k1.Value
	}
	u = k1.Easing.Ease(min(max(u, 0), 1), k1.Bezier)

	v := a + (b-a)*u
	if math.IsNaN(v) {
		return k1.Value
	}
	return Number(v)
}
