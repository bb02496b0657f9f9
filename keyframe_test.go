package framefx

import (
	"math"
	"math/rand/v2"
	"testing"
)

func num(t *testing.T, v Value) float64 {
	t.Helper()
	n, ok := v.AsNumber()
	if !ok {
		t.Fatalf("value %v is not a number", v)
	}
	return n
}

func TestEvaluateEmpty(t *testing.T) {
	if got := Evaluate(nil, 3); got != Number(0) {
		t.Errorf("Evaluate(nil) = %v, want 0", got)
	}
}

func TestEvaluateSingle(t *testing.T) {
	kfs := []Keyframe{{Time: 2, Value: Number(7)}}
	for _, at := range []float64{-10, 2, 100} {
		if got := Evaluate(kfs, at); got != Number(7) {
			t.Errorf("Evaluate(single, %v) = %v, want 7", at, got)
		}
	}
}

func TestEvaluateLinearMidpoint(t *testing.T) {
	kfs := []Keyframe{
		{Time: 0, Value: Number(0)},
		{Time: 1, Value: Number(100)},
	}
	if got := num(t, Evaluate(kfs, 0.5)); got != 50 {
		t.Errorf("linear midpoint = %v, want exactly 50", got)
	}
}

func TestEvaluateClampBeforeAndAfter(t *testing.T) {
	kfs := []Keyframe{
		{Time: 1, Value: Number(10)},
		{Time: 2, Value: Number(20)},
		{Time: 3, Value: Number(30)},
	}

	for _, at := range []float64{math.Inf(-1), -5, 0, 1} {
		if got := num(t, Evaluate(kfs, at)); got != 10 {
			t.Errorf("Evaluate(%v) = %v, want earliest 10", at, got)
		}
	}
	for _, at := range []float64{3, 4, 1e9, math.Inf(1)} {
		if got := num(t, Evaluate(kfs, at)); got != 30 {
			t.Errorf("Evaluate(%v) = %v, want latest 30", at, got)
		}
	}
}

func TestEvaluateOrderInvariant(t *testing.T) {
	kfs := []Keyframe{
		{Time: 0, Value: Number(0), Easing: EaseIn},
		{Time: 1, Value: Number(10), Easing: EaseOut},
		{Time: 2.5, Value: Number(-4), Easing: EaseInOut},
		{Time: 4, Value: Number(8)},
	}
	rng := rand.New(rand.NewPCG(42, 42))

	for range 20 {
		shuffled := append([]Keyframe(nil), kfs...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		for at := -1.0; at <= 5; at += 0.25 {
			want := Evaluate(kfs, at)
			if got := Evaluate(shuffled, at); got != want {
				t.Fatalf("Evaluate(shuffled, %v) = %v, want %v", at, got, want)
			}
		}
	}
}

func TestEvaluateDoesNotMutateInput(t *testing.T) {
	kfs := []Keyframe{
		{Time: 3, Value: Number(3)},
		{Time: 1, Value: Number(1)},
	}
	_ = Evaluate(kfs, 2)
	if kfs[0].Time != 3 || kfs[1].Time != 1 {
		t.Error("Evaluate reordered the caller's slice")
	}
}

func TestEvaluateUsesEarlierEasing(t *testing.T) {
	kfs := []Keyframe{
		{Time: 0, Value: Number(0), Easing: EaseIn},
		{Time: 1, Value: Number(100), Easing: EaseOut},
	}
	if got := num(t, Evaluate(kfs, 0.5)); math.Abs(got-25) > 1e-9 {
		t.Errorf("ease-in midpoint = %v, want 25", got)
	}
}

func TestEvaluateBezier(t *testing.T) {
	kfs := []Keyframe{
		{Time: 0, Value: Number(0), Easing: EaseBezier, Bezier: &[4]float64{0, 0, 0, 1}},
		{Time: 1, Value: Number(8)},
	}
	// u³ at 0.5 = 0.125
	if got := num(t, Evaluate(kfs, 0.5)); math.Abs(got-1) > 1e-9 {
		t.Errorf("bezier midpoint = %v, want 1", got)
	}
}

func TestEvaluateNonNumericSteps(t *testing.T) {
	kfs := []Keyframe{
		{Time: 0, Value: String("multiply")},
		{Time: 1, Value: String("screen")},
	}
	if got := Evaluate(kfs, 0.99); got != String("multiply") {
		t.Errorf("Evaluate(0.99) = %v, want multiply", got)
	}
	if got := Evaluate(kfs, 1); got != String("screen") {
		t.Errorf("Evaluate(1) = %v, want screen", got)
	}

	mixed := []Keyframe{
		{Time: 0, Value: Number(1)},
		{Time: 1, Value: Bool(true)},
	}
	if got := Evaluate(mixed, 0.5); got != Number(1) {
		t.Errorf("mixed pair = %v, want earlier value", got)
	}
}

func TestEvaluateNonFinite(t *testing.T) {
	kfs := []Keyframe{
		{Time: 0, Value: Number(0)},
		{Time: math.NaN(), Value: Number(999)},
		{Time: 2, Value: Number(20)},
	}
	if got := num(t, Evaluate(kfs, 1)); got != 10 {
		t.Errorf("Evaluate with NaN keyframe = %v, want 10", got)
	}
	if got := num(t, Evaluate(kfs, math.NaN())); got != 0 {
		t.Errorf("Evaluate(NaN) = %v, want earliest 0", got)
	}

	inf := []Keyframe{
		{Time: 0, Value: Number(math.Inf(1))},
		{Time: 1, Value: Number(math.Inf(1))},
	}
	_ = Evaluate(inf, 0.5) // must not panic

	open := []Keyframe{
		{Time: math.Inf(-1), Value: Number(5)},
		{Time: 1, Value: Number(6)},
	}
	if got := num(t, Evaluate(open, 0)); got != 5 {
		t.Errorf("Evaluate with -Inf keyframe = %v, want 5", got)
	}
}
