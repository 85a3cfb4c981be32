package theme

import "github.com/go-drift/skeleton/pkg/graphics"

// LoaderPalette holds the concrete colors of a shimmer for one brightness.
type LoaderPalette struct {
	// Base is the color at both ends of the sweep ramp.
	Base graphics.Color
	// Edge is the color at the soft edges of the bright band.
	Edge graphics.Color
	// Highlight is the color at the center of the bright band.
	Highlight graphics.Color
	// DefaultCover is used when no ancestor has an opaque background.
	DefaultCover graphics.Color
}

var (
	shimmerBase      = Adaptive(graphics.RGB(246, 247, 248), graphics.RGB(9, 8, 7))
	shimmerEdge      = Adaptive(graphics.RGB(238, 238, 238), graphics.RGB(17, 17, 17))
	shimmerHighlight = Adaptive(graphics.RGB(221, 221, 221), graphics.RGB(34, 34, 34))

	// DefaultCoverColor is opaque white in light mode and opaque black in dark
	// mode. A cover must never be transparent.
	DefaultCoverColor = Adaptive(graphics.ColorWhite, graphics.ColorBlack)
)

// LoaderPaletteFor returns the palette for the given brightness.
func LoaderPaletteFor(b Brightness) LoaderPalette {
	return LoaderPalette{
		Base:         shimmerBase.Resolve(b),
		Edge:         shimmerEdge.Resolve(b),
		Highlight:    shimmerHighlight.Resolve(b),
		DefaultCover: DefaultCoverColor.Resolve(b),
	}
}

// SweepColors returns the five ramp colors: base, edge, highlight, edge, base.
func (p LoaderPalette) SweepColors() [5]graphics.Color {
	return [5]graphics.Color{p.Base, p.Edge, p.Highlight, p.Edge, p.Base}
}
