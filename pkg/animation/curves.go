package animation

// LinearCurve returns linear progress (no easing). Shimmer sweeps use it so
// the band moves at constant speed across the whole loop.
func LinearCurve(t float64) float64 {
	return t
}
