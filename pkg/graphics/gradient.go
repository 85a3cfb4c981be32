package graphics

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// GradientType describes the gradient variant.
type GradientType int

const (
	// GradientTypeNone indicates no gradient is applied.
	GradientTypeNone GradientType = iota
	// GradientTypeLinear indicates a linear gradient.
	GradientTypeLinear
)

// String returns a human-readable representation of the gradient type.
func (t GradientType) String() string {
	switch t {
	case GradientTypeNone:
		return "none"
	case GradientTypeLinear:
		return "linear"
	default:
		return fmt.Sprintf("GradientType(%d)", int(t))
	}
}

// GradientStop defines a color stop within a gradient.
//
// Position is measured along the gradient axis, where 0 is the start point
// and 1 the end point. Positions outside [0, 1] are allowed; they describe
// stops that lie beyond the axis end points and are reached only when the
// painted area extends past them.
type GradientStop struct {
	Position float64
	Color    Color
}

// LinearGradient defines a gradient between two points.
type LinearGradient struct {
	Start Offset
	End   Offset
	Stops []GradientStop
}

// Gradient describes a gradient fill.
type Gradient struct {
	Type   GradientType
	Linear LinearGradient
}

// NewLinearGradient constructs a linear gradient definition.
func NewLinearGradient(start, end Offset, stops []GradientStop) *Gradient {
	return &Gradient{
		Type: GradientTypeLinear,
		Linear: LinearGradient{
			Start: start,
			End:   end,
			Stops: cloneGradientStops(stops),
		},
	}
}

// Stops returns the gradient stops for the configured type.
func (g *Gradient) Stops() []GradientStop {
	if g == nil || g.Type != GradientTypeLinear {
		return nil
	}
	return g.Linear.Stops
}

// IsValid reports whether the gradient has at least two stops in
// non-decreasing position order and a non-degenerate axis.
func (g *Gradient) IsValid() bool {
	if g == nil || g.Type != GradientTypeLinear {
		return false
	}
	stops := g.Stops()
	if len(stops) < 2 {
		return false
	}
	if g.Linear.Start == g.Linear.End {
		return false
	}
	for i := 1; i < len(stops); i++ {
		if stops[i].Position < stops[i-1].Position {
			return false
		}
	}
	return true
}

// ColorAt returns the gradient color at the given device point.
// Points before the first stop take the first stop's color, points after
// the last stop take the last stop's color.
func (g *Gradient) ColorAt(p Offset) Color {
	if !g.IsValid() {
		return ColorTransparent
	}
	s, e := g.Linear.Start, g.Linear.End
	dx, dy := e.X-s.X, e.Y-s.Y
	t := ((p.X-s.X)*dx + (p.Y-s.Y)*dy) / (dx*dx + dy*dy)
	return g.sample(t)
}

func (g *Gradient) sample(t float64) Color {
	stops := g.Stops()
	if t <= stops[0].Position {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Position {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Position {
			continue
		}
		span := b.Position - a.Position
		if span <= 0 {
			return b.Color
		}
		return lerpColor(a.Color, b.Color, (t-a.Position)/span)
	}
	return last.Color
}

// lerpColor blends two colors in RGB space with a linearly interpolated alpha.
func lerpColor(a, b Color, t float64) Color {
	ar, ag, ab, aa := a.RGBAF()
	br, bg, bb, ba := b.RGBAF()
	c := colorful.Color{R: ar, G: ag, B: ab}.BlendRgb(colorful.Color{R: br, G: bg, B: bb}, t).Clamped()
	r8, g8, b8 := c.RGB255()
	return RGBA(r8, g8, b8, aa+(ba-aa)*t)
}

func cloneGradientStops(stops []GradientStop) []GradientStop {
	if len(stops) == 0 {
		return nil
	}
	clone := make([]GradientStop, len(stops))
	copy(clone, stops)
	return clone
}
