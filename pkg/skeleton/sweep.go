package skeleton

import (
	"time"

	"github.com/go-drift/skeleton/pkg/animation"
	"github.com/go-drift/skeleton/pkg/graphics"
	"github.com/go-drift/skeleton/pkg/theme"
	"github.com/go-drift/skeleton/pkg/view"
)

// SweepKeyframes describes the looping stop animation of a sweep. Stop
// locations are fractions of the gradient axis, which extends past the node
// on both sides so the band starts and ends fully off screen.
type SweepKeyframes struct {
	// Width is the sweep width the keyframes were derived from.
	Width    float64
	From     [5]float64
	To       [5]float64
	Duration time.Duration
	Repeat   bool
}

// NewSweepKeyframes derives keyframes from a configuration.
func NewSweepKeyframes(cfg Config) SweepKeyframes {
	w, f := cfg.SweepWidth, cfg.FirstStopOffset
	return SweepKeyframes{
		Width:    w,
		From:     [5]float64{w - 1, w - 1, 0, w, 1 + w},
		To:       [5]float64{0, 1, 1, 1 + (w - f), 1 + w},
		Duration: cfg.Duration,
		Repeat:   true,
	}
}

// Locations returns the stop locations at progress t, clamped to [0, 1].
// Interpolation is linear.
func (k SweepKeyframes) Locations(t float64) [5]float64 {
	t = min(max(t, 0), 1)
	var out [5]float64
	copy(out[:], animation.LerpFloat64s(k.From[:], k.To[:], t))
	return out
}

// GradientSweep is the shimmer layer of a loader. It paints below the
// host's children and is driven by a repeating animation controller.
type GradientSweep struct {
	keyframes  SweepKeyframes
	colors     [5]graphics.Color
	bounds     graphics.Rect
	controller *animation.AnimationController
	tween      *animation.Tween[[]float64]
}

var _ view.Layer = (*GradientSweep)(nil)

// NewGradientSweep creates a stopped sweep using the palette's colors.
func NewGradientSweep(cfg Config, palette theme.LoaderPalette) *GradientSweep {
	k := NewSweepKeyframes(cfg)
	c := animation.NewAnimationController(k.Duration)
	c.Curve = animation.LinearCurve
	return &GradientSweep{
		keyframes:  k,
		colors:     palette.SweepColors(),
		controller: c,
		tween:      animation.TweenFloat64s(k.From[:], k.To[:]),
	}
}

// Keyframes returns the animation description.
func (s *GradientSweep) Keyframes() SweepKeyframes { return s.keyframes }

// Colors returns the five ramp colors.
func (s *GradientSweep) Colors() [5]graphics.Color { return s.colors }

// Bounds returns the area painted at the last layout.
func (s *GradientSweep) Bounds() graphics.Rect { return s.bounds }

// Start begins the endless sweep. It never completes on its own.
func (s *GradientSweep) Start() {
	s.controller.Repeat()
}

// Stop ends the sweep and releases its ticker. A stopped sweep cannot be
// restarted.
func (s *GradientSweep) Stop() {
	s.controller.Dispose()
}

// IsRunning reports whether the sweep is animating.
func (s *GradientSweep) IsRunning() bool {
	return s.controller.IsRepeating()
}

// Progress returns the position within the current loop, from 0 to 1.
func (s *GradientSweep) Progress() float64 {
	return s.controller.Value
}

// Locations returns the current stop locations.
func (s *GradientSweep) Locations() [5]float64 {
	var out [5]float64
	copy(out[:], s.tween.Transform(s.controller))
	return out
}

// Gradient returns the gradient for the current frame. The axis runs from
// (w-1)*width to (1+w)*width horizontally, so location 0 and 1 correspond
// to points left and right of the node.
func (s *GradientSweep) Gradient() *graphics.Gradient {
	width := s.bounds.Width()
	w := s.keyframes.Width
	loc := s.Locations()
	stops := make([]graphics.GradientStop, len(loc))
	for i := range loc {
		stops[i] = graphics.GradientStop{Position: loc[i], Color: s.colors[i]}
	}
	return graphics.NewLinearGradient(
		graphics.Offset{X: s.bounds.Left + (w-1)*width, Y: s.bounds.Top},
		graphics.Offset{X: s.bounds.Left + (1+w)*width, Y: s.bounds.Top},
		stops,
	)
}

// Layout resizes the sweep to the host's bounds.
func (s *GradientSweep) Layout(host *view.Node) {
	s.bounds = host.Bounds()
}

// Paint fills the bounds with the current gradient frame.
func (s *GradientSweep) Paint(canvas graphics.Canvas) {
	if s.bounds.IsEmpty() {
		return
	}
	paint := graphics.DefaultPaint()
	paint.Gradient = s.Gradient()
	canvas.DrawRect(s.bounds, paint)
}
