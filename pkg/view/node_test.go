package view

import (
	"testing"

	"github.com/go-drift/skeleton/pkg/graphics"
	"github.com/go-drift/skeleton/pkg/theme"
)

type recordingLayer struct {
	layouts []graphics.Rect
	paints  int
}

func (l *recordingLayer) Layout(host *Node)            { l.layouts = append(l.layouts, host.Bounds()) }
func (l *recordingLayer) Paint(canvas graphics.Canvas) { l.paints++ }

func TestAddChildReparents(t *testing.T) {
	a := NewView("a", graphics.Rect{})
	b := NewView("b", graphics.Rect{})
	c := NewView("c", graphics.Rect{})

	a.AddChild(c)
	b.AddChild(c)

	if len(a.Children()) != 0 {
		t.Error("child should be removed from previous parent")
	}
	if c.Parent() != b {
		t.Error("parent should be updated")
	}
}

func TestLayoutNotifiesLayersWithCurrentBounds(t *testing.T) {
	n := NewView("n", graphics.RectFromLTWH(0, 0, 100, 50))
	l := &recordingLayer{}
	n.InsertLayer(l, LayerAboveContent)
	n.InsertLayer(l, LayerAboveContent)

	n.Layout()
	n.SetFrame(graphics.RectFromLTWH(0, 0, 50, 100))
	n.Layout()

	if len(l.layouts) != 2 {
		t.Fatalf("layouts = %d, want 2 (duplicate insert must be ignored)", len(l.layouts))
	}
	if l.layouts[1].Width() != 50 || l.layouts[1].Height() != 100 {
		t.Errorf("second layout bounds = %v", l.layouts[1])
	}
	if !n.RemoveLayer(l) || n.RemoveLayer(l) {
		t.Error("RemoveLayer should succeed exactly once")
	}
}

func TestHitTestRespectsInteraction(t *testing.T) {
	root := NewView("root", graphics.RectFromLTWH(0, 0, 100, 100))
	child := NewView("child", graphics.RectFromLTWH(10, 10, 20, 20))
	root.AddChild(child)

	if got := root.HitTest(graphics.Offset{X: 15, Y: 15}); got != child {
		t.Errorf("HitTest = %v, want child", got)
	}
	root.SetInteractive(false)
	if got := root.HitTest(graphics.Offset{X: 15, Y: 15}); got != nil {
		t.Errorf("HitTest on disabled root = %v, want nil", got)
	}
}

func TestConvertRectToAncestor(t *testing.T) {
	root := NewView("root", graphics.RectFromLTWH(0, 0, 200, 200))
	a := NewContainer("a", graphics.RectFromLTWH(10, 10, 100, 100))
	b := NewContainer("b", graphics.RectFromLTWH(5, 5, 50, 50))
	root.AddChild(a)
	a.AddChild(b)

	got, ok := b.ConvertRectToAncestor(graphics.RectFromLTWH(0, 0, 20, 20), root)
	if !ok || got != graphics.RectFromLTWH(15, 15, 20, 20) {
		t.Errorf("ConvertRectToAncestor = %v, %v", got, ok)
	}
	if _, ok := root.ConvertRectToAncestor(graphics.Rect{}, b); ok {
		t.Error("descendant is not an ancestor")
	}
}

func TestPaintSkipsTransparentChildren(t *testing.T) {
	root := NewView("root", graphics.RectFromLTWH(0, 0, 20, 20))
	root.SetBackground(theme.Fixed(graphics.ColorWhite))
	child := NewView("child", graphics.RectFromLTWH(0, 0, 10, 10))
	child.SetBackground(theme.Fixed(graphics.ColorRed))
	root.AddChild(child)

	canvas := graphics.NewRasterCanvas(graphics.Size{Width: 20, Height: 20})
	child.SetAlpha(0)
	root.Paint(canvas, theme.BrightnessLight)
	if got := canvas.Image().RGBAAt(5, 5); got.G != 0xFF {
		t.Errorf("pixel = %+v, want white background", got)
	}

	child.SetAlpha(1)
	root.Paint(canvas, theme.BrightnessLight)
	if got := canvas.Image().RGBAAt(5, 5); got.R != 0xFF || got.G != 0 {
		t.Errorf("pixel = %+v, want red child", got)
	}
}

func TestContainerPaintsNoBackground(t *testing.T) {
	c := NewContainer("c", graphics.RectFromLTWH(0, 0, 10, 10))
	c.SetBackground(theme.Fixed(graphics.ColorRed))
	canvas := graphics.NewRasterCanvas(graphics.Size{Width: 10, Height: 10})
	c.Paint(canvas, theme.BrightnessLight)
	if got := canvas.Image().RGBAAt(5, 5); got.A != 0 {
		t.Errorf("container painted alpha %d", got.A)
	}
}
