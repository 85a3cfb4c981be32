package graphics

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// RasterCanvas renders drawing commands into an in-memory RGBA image.
//
// It supports the subset of compositing needed by overlays: source-over,
// source, clear and destination-out fills, plus offscreen layers created
// by SaveLayer. Only translation transforms are supported.
type RasterCanvas struct {
	size   Size
	layers []*image.RGBA
	state  rasterState
	stack  []rasterState
}

type rasterState struct {
	origin Offset
	clip   image.Rectangle
	layer  bool
	alpha  float64
}

// NewRasterCanvas creates a transparent canvas of the given size. Fractional
// sizes are rounded up to whole pixels.
func NewRasterCanvas(size Size) *RasterCanvas {
	w := int(math.Ceil(math.Max(size.Width, 0)))
	h := int(math.Ceil(math.Max(size.Height, 0)))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	return &RasterCanvas{
		size:   size,
		layers: []*image.RGBA{img},
		state:  rasterState{clip: img.Bounds(), alpha: 1},
	}
}

// Image returns the base image. Content drawn into a layer that has not
// been restored yet is not visible in it.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.layers[0]
}

// Size returns the size of the canvas in pixels.
func (c *RasterCanvas) Size() Size {
	return c.size
}

// Save pushes the current transform and clip state.
func (c *RasterCanvas) Save() {
	c.stack = append(c.stack, c.state)
	c.state.layer = false
}

// SaveLayer starts an offscreen layer. The bounds only hint the layer
// extent; the layer always covers the whole canvas.
func (c *RasterCanvas) SaveLayer(bounds Rect, paint *Paint) {
	c.stack = append(c.stack, c.state)
	alpha := 1.0
	if paint != nil {
		alpha = clamp01(paint.Alpha)
	}
	c.state.layer = true
	c.state.alpha = alpha
	c.layers = append(c.layers, image.NewRGBA(c.layers[0].Bounds()))
}

// Restore pops the most recent state, compositing the current layer onto
// its parent if the state was pushed by SaveLayer.
func (c *RasterCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	if c.state.layer && len(c.layers) > 1 {
		top := c.layers[len(c.layers)-1]
		c.layers = c.layers[:len(c.layers)-1]
		dst := c.layers[len(c.layers)-1]
		mask := image.NewUniform(color.Alpha{A: alpha01ToByte(c.state.alpha)})
		draw.DrawMask(dst, dst.Bounds(), top, image.Point{}, mask, image.Point{}, draw.Over)
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate moves the origin by the given offset.
func (c *RasterCanvas) Translate(dx, dy float64) {
	c.state.origin = c.state.origin.Add(Offset{X: dx, Y: dy})
}

// ClipRect restricts future drawing to the given rectangle.
func (c *RasterCanvas) ClipRect(rect Rect) {
	r := rect.Shift(c.state.origin)
	px := image.Rect(
		int(math.Floor(r.Left)), int(math.Floor(r.Top)),
		int(math.Ceil(r.Right)), int(math.Ceil(r.Bottom)),
	)
	c.state.clip = c.state.clip.Intersect(px)
}

// Clear fills the clip region of the current layer with the given color,
// replacing whatever was there.
func (c *RasterCanvas) Clear(col Color) {
	draw.Draw(c.current(), c.state.clip, image.NewUniform(col), image.Point{}, draw.Src)
}

// DrawRect draws a rectangle with the provided paint.
func (c *RasterCanvas) DrawRect(rect Rect, paint Paint) {
	path := NewPath()
	path.AddRect(rect)
	c.DrawPath(path, paint)
}

// DrawRRect draws a rounded rectangle with the provided paint.
func (c *RasterCanvas) DrawRRect(rrect RRect, paint Paint) {
	path := NewPath()
	path.AddRRect(rrect)
	c.DrawPath(path, paint)
}

// DrawPath fills a path with the provided paint. Stroke styles are not
// supported and draw nothing.
func (c *RasterCanvas) DrawPath(path *Path, paint Paint) {
	if path == nil || path.IsEmpty() || paint.Style != PaintStyleFill || paint.Alpha <= 0 {
		return
	}
	r := c.state.clip
	if r.Empty() {
		return
	}
	coverage := c.rasterize(path)
	if paint.Alpha < 1 {
		scaleAlpha(coverage, r, paint.Alpha)
	}

	dst := c.current()
	switch paint.BlendMode {
	case BlendModeClear:
		erase(dst, r, coverage, 0xFF)
	case BlendModeDstOut:
		erase(dst, r, coverage, c.sourceAlpha(paint))
	case BlendModeDst:
		// Leaves the destination untouched.
	case BlendModeSrc:
		draw.DrawMask(dst, r, c.source(paint), r.Min, coverage, r.Min, draw.Src)
	default:
		draw.DrawMask(dst, r, c.source(paint), r.Min, coverage, r.Min, draw.Over)
	}
}

func (c *RasterCanvas) current() *image.RGBA {
	return c.layers[len(c.layers)-1]
}

// rasterize computes the path's anti-aliased coverage in device space.
func (c *RasterCanvas) rasterize(path *Path) *image.Alpha {
	b := c.layers[0].Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Src
	ox, oy := c.state.origin.X, c.state.origin.Y
	pt := func(x, y float64) (float32, float32) {
		return float32(x + ox), float32(y + oy)
	}
	open := false
	for _, cmd := range path.Commands {
		switch cmd.Op {
		case PathOpMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(pt(cmd.Args[0], cmd.Args[1]))
			open = true
		case PathOpLineTo:
			z.LineTo(pt(cmd.Args[0], cmd.Args[1]))
		case PathOpQuadTo:
			x1, y1 := pt(cmd.Args[0], cmd.Args[1])
			x2, y2 := pt(cmd.Args[2], cmd.Args[3])
			z.QuadTo(x1, y1, x2, y2)
		case PathOpCubicTo:
			x1, y1 := pt(cmd.Args[0], cmd.Args[1])
			x2, y2 := pt(cmd.Args[2], cmd.Args[3])
			x3, y3 := pt(cmd.Args[4], cmd.Args[5])
			z.CubeTo(x1, y1, x2, y2, x3, y3)
		case PathOpClose:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
	mask := image.NewAlpha(b)
	z.Draw(mask, b, image.Opaque, image.Point{})
	return mask
}

func (c *RasterCanvas) source(paint Paint) image.Image {
	if paint.Gradient.IsValid() {
		return &gradientImage{gradient: paint.Gradient, origin: c.state.origin}
	}
	return image.NewUniform(paint.Color)
}

// sourceAlpha returns the alpha used by erase modes. Gradients erase fully.
func (c *RasterCanvas) sourceAlpha(paint Paint) uint8 {
	if paint.Gradient.IsValid() {
		return 0xFF
	}
	return paint.Color.Alpha8()
}

// erase scales destination pixels by (1 - coverage*alpha).
func erase(dst *image.RGBA, r image.Rectangle, coverage *image.Alpha, alpha uint8) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			k := uint32(coverage.AlphaAt(x, y).A) * uint32(alpha) / 0xFF
			if k == 0 {
				continue
			}
			keep := 0xFF - k
			i := dst.PixOffset(x, y)
			px := dst.Pix[i : i+4 : i+4]
			for j := range px {
				px[j] = uint8(uint32(px[j]) * keep / 0xFF)
			}
		}
	}
}

func scaleAlpha(mask *image.Alpha, r image.Rectangle, alpha float64) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			a := mask.AlphaAt(x, y).A
			mask.SetAlpha(x, y, color.Alpha{A: uint8(math.Round(float64(a) * alpha))})
		}
	}
}

// gradientImage exposes a gradient as an unbounded image in device space.
type gradientImage struct {
	gradient *Gradient
	origin   Offset
}

func (g *gradientImage) ColorModel() color.Model {
	return color.NRGBAModel
}

func (g *gradientImage) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

func (g *gradientImage) At(x, y int) color.Color {
	p := Offset{X: float64(x) + 0.5 - g.origin.X, Y: float64(y) + 0.5 - g.origin.Y}
	return g.gradient.ColorAt(p)
}
