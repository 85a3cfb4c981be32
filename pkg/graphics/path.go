package graphics

import "fmt"

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpQuadTo                // Draw quadratic curve to (x2, y2) via control (x1, y1)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathFillRule determines how path interiors are calculated for filling.
type PathFillRule int

const (
	// FillRuleNonZero fills regions with nonzero winding count.
	// A point is inside if a ray from it crosses more left-to-right edges
	// than right-to-left edges (or vice versa).
	FillRuleNonZero PathFillRule = iota

	// FillRuleEvenOdd fills regions crossed an odd number of times.
	// Useful for creating holes: nested shapes alternate between filled/unfilled.
	FillRuleEvenOdd
)

// String returns a human-readable representation of the path fill rule.
func (r PathFillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "nonzero"
	case FillRuleEvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("PathFillRule(%d)", int(r))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], QuadTo=[x1,y1,x2,y2], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for drawing or clipping arbitrary shapes.
//
// Build paths using MoveTo, LineTo, QuadTo, CubicTo, and Close methods.
// Use with Canvas.DrawPath to stroke/fill, or Canvas.ClipPath to clip.
type Path struct {
	Commands []PathCommand
	FillRule PathFillRule
}

// NewPath creates a new empty path with nonzero fill rule.
func NewPath() *Path {
	return &Path{FillRule: FillRuleNonZero}
}

// NewPathWithFillRule creates a new empty path with the specified fill rule.
func NewPathWithFillRule(fillRule PathFillRule) *Path {
	return &Path{FillRule: fillRule}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
}

// QuadTo adds a quadratic bezier curve from the current point to (x2, y2)
// with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpQuadTo,
		Args: []float64{x1, y1, x2, y2},
	})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpCubicTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// Clear removes all commands from the path.
func (p *Path) Clear() {
	p.Commands = p.Commands[:0]
}

// kappa is the control point distance for approximating a quarter circle
// with a cubic bezier.
const kappa = 0.5522847498

// AddRect adds a closed rectangle subpath.
func (p *Path) AddRect(r Rect) {
	p.MoveTo(r.Left, r.Top)
	p.LineTo(r.Right, r.Top)
	p.LineTo(r.Right, r.Bottom)
	p.LineTo(r.Left, r.Bottom)
	p.Close()
}

// AddRRect adds a closed rounded rectangle subpath. Radii larger than half
// the rectangle are clamped. A rounded rect with zero radii is added as a
// plain rectangle.
func (p *Path) AddRRect(rr RRect) {
	rr = rr.Clamped()
	r := rr.Rect
	if rr.isSharp() {
		p.AddRect(r)
		return
	}
	tl, tr, br, bl := rr.TopLeft, rr.TopRight, rr.BottomRight, rr.BottomLeft

	p.MoveTo(r.Left+tl.X, r.Top)
	p.LineTo(r.Right-tr.X, r.Top)
	p.CubicTo(
		r.Right-tr.X+tr.X*kappa, r.Top,
		r.Right, r.Top+tr.Y-tr.Y*kappa,
		r.Right, r.Top+tr.Y,
	)
	p.LineTo(r.Right, r.Bottom-br.Y)
	p.CubicTo(
		r.Right, r.Bottom-br.Y+br.Y*kappa,
		r.Right-br.X+br.X*kappa, r.Bottom,
		r.Right-br.X, r.Bottom,
	)
	p.LineTo(r.Left+bl.X, r.Bottom)
	p.CubicTo(
		r.Left+bl.X-bl.X*kappa, r.Bottom,
		r.Left, r.Bottom-bl.Y+bl.Y*kappa,
		r.Left, r.Bottom-bl.Y,
	)
	p.LineTo(r.Left, r.Top+tl.Y)
	p.CubicTo(
		r.Left, r.Top+tl.Y-tl.Y*kappa,
		r.Left+tl.X-tl.X*kappa, r.Top,
		r.Left+tl.X, r.Top,
	)
	p.Close()
}
