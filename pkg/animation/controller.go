package animation

import "time"

// AnimationController produces a value that sweeps from LowerBound to
// UpperBound over Duration and then starts over, until stopped.
//
// The Curve function shapes progress within each loop. Use [Tween] to map
// the value to other ranges or types such as gradient stop locations.
//
// Always call Dispose when done to stop the ticker.
type AnimationController struct {
	// Value is the current animation value, between LowerBound and UpperBound.
	Value float64

	// Duration is the length of one loop.
	Duration time.Duration

	// Curve transforms linear progress (optional).
	Curve func(float64) float64

	// LowerBound is the value at the start of each loop (default 0.0).
	LowerBound float64

	// UpperBound is the value approached at the end of each loop (default 1.0).
	UpperBound float64

	ticker *Ticker
}

// NewAnimationController creates a stopped controller with the given loop
// duration.
func NewAnimationController(duration time.Duration) *AnimationController {
	return &AnimationController{
		Duration:   duration,
		LowerBound: 0,
		UpperBound: 1,
		Curve:      LinearCurve,
	}
}

// Repeat runs the animation from the lower to the upper bound over and over
// until Stop or Dispose is called. Each loop restarts at the lower bound and
// no completion is ever reported. Calling Repeat again restarts the loop.
func (c *AnimationController) Repeat() {
	if c.ticker != nil {
		c.ticker.Stop()
	}
	c.Value = c.LowerBound
	c.ticker = NewTicker(c.tick)
	c.ticker.Start()
}

// IsRepeating reports whether the controller was started with Repeat and
// has not been stopped since.
func (c *AnimationController) IsRepeating() bool {
	return c.ticker != nil
}

func (c *AnimationController) tick(elapsed time.Duration) {
	if c.Duration <= 0 {
		c.Value = c.UpperBound
		return
	}
	progress := float64(elapsed%c.Duration) / float64(c.Duration)
	if c.Curve != nil {
		progress = c.Curve(progress)
	}
	c.Value = c.LowerBound + (c.UpperBound-c.LowerBound)*progress
}

// Stop stops the animation at the current value.
func (c *AnimationController) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Dispose stops the animation. The controller must not be reused.
func (c *AnimationController) Dispose() {
	c.Stop()
}
