package graphics

import "testing"

func TestRasterCanvasFillsRect(t *testing.T) {
	c := NewRasterCanvas(Size{Width: 20, Height: 10})
	c.DrawRect(RectFromLTWH(0, 0, 10, 10), FillPaint(ColorRed))

	if got := c.Image().RGBAAt(5, 5); got.R != 0xFF || got.A != 0xFF {
		t.Errorf("inside pixel = %+v, want opaque red", got)
	}
	if got := c.Image().RGBAAt(15, 5); got.A != 0 {
		t.Errorf("outside pixel alpha = %d, want 0", got.A)
	}
}

func TestRasterCanvasTranslate(t *testing.T) {
	c := NewRasterCanvas(Size{Width: 20, Height: 20})
	c.Save()
	c.Translate(10, 10)
	c.DrawRect(RectFromLTWH(0, 0, 5, 5), FillPaint(ColorBlue))
	c.Restore()
	c.DrawRect(RectFromLTWH(0, 0, 2, 2), FillPaint(ColorGreen))

	if got := c.Image().RGBAAt(12, 12); got.B != 0xFF || got.A != 0xFF {
		t.Errorf("translated pixel = %+v, want opaque blue", got)
	}
	if got := c.Image().RGBAAt(1, 1); got.G != 0xFF {
		t.Errorf("restored pixel = %+v, want green", got)
	}
}

func TestRasterCanvasClip(t *testing.T) {
	c := NewRasterCanvas(Size{Width: 20, Height: 20})
	c.Save()
	c.ClipRect(RectFromLTWH(0, 0, 10, 20))
	c.DrawRect(RectFromLTWH(0, 0, 20, 20), FillPaint(ColorRed))
	c.Restore()

	if got := c.Image().RGBAAt(15, 5); got.A != 0 {
		t.Errorf("clipped pixel alpha = %d, want 0", got.A)
	}
}

func TestRasterCanvasDstOutOnlyAffectsLayer(t *testing.T) {
	c := NewRasterCanvas(Size{Width: 30, Height: 30})
	c.DrawRect(RectFromLTWH(0, 0, 30, 30), FillPaint(ColorRed))

	c.SaveLayer(RectFromLTWH(0, 0, 30, 30), nil)
	c.DrawRect(RectFromLTWH(0, 0, 30, 30), FillPaint(ColorWhite))
	c.DrawRect(RectFromLTWH(10, 10, 10, 10), ErasePaint())
	c.Restore()

	// The hole reveals the red base instead of clearing to transparent.
	if got := c.Image().RGBAAt(15, 15); got.R != 0xFF || got.G != 0 || got.A != 0xFF {
		t.Errorf("hole pixel = %+v, want opaque red", got)
	}
	if got := c.Image().RGBAAt(5, 5); got.R != 0xFF || got.G != 0xFF || got.B != 0xFF {
		t.Errorf("cover pixel = %+v, want white", got)
	}
}

func TestRasterCanvasRoundedCornersStayCovered(t *testing.T) {
	c := NewRasterCanvas(Size{Width: 40, Height: 40})
	c.DrawRect(RectFromLTWH(0, 0, 40, 40), FillPaint(ColorWhite))
	c.DrawRRect(RRectFromRectAndRadius(RectFromLTWH(10, 10, 20, 20), CircularRadius(8)), ErasePaint())

	if got := c.Image().RGBAAt(10, 10); got.A != 0xFF {
		t.Errorf("corner pixel alpha = %d, want 255", got.A)
	}
	if got := c.Image().RGBAAt(20, 20); got.A != 0 {
		t.Errorf("center pixel alpha = %d, want 0", got.A)
	}
	if got := c.Image().RGBAAt(20, 10); got.A != 0 {
		t.Errorf("top edge midpoint alpha = %d, want 0", got.A)
	}
}

func TestRasterCanvasGradientFill(t *testing.T) {
	c := NewRasterCanvas(Size{Width: 100, Height: 4})
	g := NewLinearGradient(Offset{X: 0}, Offset{X: 100}, []GradientStop{
		{Position: 0, Color: ColorBlack},
		{Position: 1, Color: ColorWhite},
	})
	c.DrawRect(RectFromLTWH(0, 0, 100, 4), Paint{Gradient: g, Style: PaintStyleFill, BlendMode: BlendModeSrcOver, Alpha: 1})

	left := c.Image().RGBAAt(0, 1)
	right := c.Image().RGBAAt(99, 1)
	if left.R >= right.R {
		t.Errorf("gradient not increasing: left %d right %d", left.R, right.R)
	}
	if right.A != 0xFF {
		t.Errorf("gradient alpha = %d, want 255", right.A)
	}
}

func TestRasterCanvasZeroPaintDrawsNothing(t *testing.T) {
	c := NewRasterCanvas(Size{Width: 4, Height: 4})
	c.DrawRect(RectFromLTWH(0, 0, 4, 4), Paint{Color: ColorRed})
	if got := c.Image().RGBAAt(1, 1); got.A != 0 {
		t.Errorf("alpha = %d, want 0", got.A)
	}
}
