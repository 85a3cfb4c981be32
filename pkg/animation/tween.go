package animation

// Tween interpolates between Begin and End values based on animation progress.
//
// Tween maps the 0-1 range of an [AnimationController] to any value range or type.
// Use the helper constructors ([TweenFloat64s]) for
// common types, or create custom tweens with a Lerp function.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp linearly interpolates between Begin and End. Receives the begin value,
	// end value, and progress t in [0, 1]. Returns the interpolated value.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform returns the interpolated value using the controller's current value.
func (tw *Tween[T]) Transform(controller *AnimationController) T {
	return tw.Evaluate(controller.Value)
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpFloat64s interpolates two value arrays element by element. The result
// has the length of the shorter input.
func LerpFloat64s(a, b []float64, t float64) []float64 {
	n := min(len(a), len(b))
	out := make([]float64, n)
	for i := range n {
		out[i] = LerpFloat64(a[i], b[i], t)
	}
	return out
}

// TweenFloat64s creates a tween over arrays of float64 values, such as
// gradient stop locations.
func TweenFloat64s(begin, end []float64) *Tween[[]float64] {
	return &Tween[[]float64]{
		Begin: append([]float64(nil), begin...),
		End:   append([]float64(nil), end...),
		Lerp:  LerpFloat64s,
	}
}
