package graphics

import "fmt"

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// BlendMode controls how source and destination colors are composited.
// Values follow Skia's SkBlendMode numbering.
type BlendMode int

const (
	BlendModeClear   BlendMode = iota // clear
	BlendModeSrc                      // src
	BlendModeDst                      // dst
	BlendModeSrcOver                  // src_over
	BlendModeDstOver                  // dst_over
	BlendModeSrcIn                    // src_in
	BlendModeDstIn                    // dst_in
	BlendModeSrcOut                   // src_out
	BlendModeDstOut                   // dst_out
)

var _BlendMode_names = []string{
	"clear", "src", "dst", "src_over", "dst_over",
	"src_in", "dst_in", "src_out", "dst_out",
}

// String returns a human-readable representation of the blend mode.
func (b BlendMode) String() string {
	if int(b) >= 0 && int(b) < len(_BlendMode_names) {
		return _BlendMode_names[b]
	}
	return fmt.Sprintf("BlendMode(%d)", int(b))
}

// Paint describes how to draw a shape on the canvas.
//
// A zero-value Paint draws nothing (BlendModeClear with Alpha 0).
// Use DefaultPaint for a basic opaque white fill.
type Paint struct {
	Color       Color
	Gradient    *Gradient  // If set, overrides Color for the fill
	Style       PaintStyle // Fill or stroke
	StrokeWidth float64    // Width of stroke in pixels

	// Compositing
	BlendMode BlendMode // Compositing mode
	Alpha     float64   // Overall opacity 0.0-1.0
}

// DefaultPaint returns a basic opaque white fill paint with standard compositing.
func DefaultPaint() Paint {
	return Paint{
		Color:       ColorWhite,
		Style:       PaintStyleFill,
		StrokeWidth: 1,
		BlendMode:   BlendModeSrcOver,
		Alpha:       1.0,
	}
}

// FillPaint returns an opaque fill of the given color.
func FillPaint(c Color) Paint {
	p := DefaultPaint()
	p.Color = c
	return p
}

// ErasePaint returns a fill that clears whatever it covers, regardless of
// the destination color. Drawing order among erased shapes does not matter.
func ErasePaint() Paint {
	p := DefaultPaint()
	p.Color = ColorBlack
	p.BlendMode = BlendModeDstOut
	return p
}
