package skeleton

import (
	"testing"

	"github.com/go-drift/skeleton/pkg/graphics"
	"github.com/go-drift/skeleton/pkg/view"
)

func TestCollectHolesProjectsNestedContainers(t *testing.T) {
	host := view.NewView("host", graphics.RectFromLTWH(0, 0, 200, 200))
	a := view.NewContainer("a", graphics.RectFromLTWH(10, 10, 100, 100))
	b := view.NewContainer("b", graphics.RectFromLTWH(5, 5, 50, 50))
	leaf := view.NewView("leaf", graphics.RectFromLTWH(0, 0, 20, 20))
	leaf.SetCornerRadius(3)
	b.AddChild(leaf)
	a.AddChild(b)
	host.AddChild(a)

	holes := CollectHoles(host)
	if len(holes) != 1 {
		t.Fatalf("got %d holes, want 1", len(holes))
	}
	if got, want := holes[0].Rect, graphics.RectFromLTWH(15, 15, 20, 20); got != want {
		t.Errorf("hole = %v, want %v", got, want)
	}
	if got := holes[0].UniformRadius(); got != 3 {
		t.Errorf("radius = %v, want 3", got)
	}
}

func TestCollectHolesOrderAndHidden(t *testing.T) {
	host := view.NewView("host", graphics.RectFromLTWH(0, 0, 100, 100))
	first := view.NewView("first", graphics.RectFromLTWH(0, 0, 10, 10))
	hidden := view.NewView("hidden", graphics.RectFromLTWH(20, 0, 10, 10))
	hidden.SetHidden(true)
	group := view.NewContainer("group", graphics.RectFromLTWH(0, 50, 100, 50))
	inner := view.NewView("inner", graphics.RectFromLTWH(5, 5, 10, 10))
	group.AddChild(inner)
	last := view.NewView("last", graphics.RectFromLTWH(80, 0, 10, 10))
	for _, c := range []*view.Node{first, hidden, group, last} {
		host.AddChild(c)
	}

	holes := CollectHoles(host)
	want := []graphics.Rect{
		graphics.RectFromLTWH(0, 0, 10, 10),
		graphics.RectFromLTWH(5, 55, 10, 10),
		graphics.RectFromLTWH(80, 0, 10, 10),
	}
	if len(holes) != len(want) {
		t.Fatalf("got %d holes, want %d", len(holes), len(want))
	}
	for i := range want {
		if holes[i].Rect != want[i] {
			t.Errorf("hole %d = %v, want %v", i, holes[i].Rect, want[i])
		}
	}
}

func TestCutoutMaskWithoutChildrenIsOpaque(t *testing.T) {
	host := view.NewView("host", graphics.RectFromLTWH(0, 0, 20, 20))
	m := NewCutoutMask(graphics.ColorWhite)
	m.Layout(host)

	if len(m.Holes()) != 0 {
		t.Fatalf("holes = %v, want none", m.Holes())
	}
	c := graphics.NewRasterCanvas(graphics.Size{Width: 20, Height: 20})
	m.Paint(c)
	for _, p := range [][2]int{{0, 0}, {10, 10}, {19, 19}} {
		if a := pixelAlpha(c, p[0], p[1]); a != 0xFF {
			t.Errorf("pixel %v alpha = %d, want 255", p, a)
		}
	}
}

func TestCutoutMaskPixels(t *testing.T) {
	host := card()
	m := NewCutoutMask(graphics.ColorWhite)
	m.Layout(host)

	c := graphics.NewRasterCanvas(graphics.Size{Width: 100, Height: 60})
	m.Paint(c)

	transparent := [][2]int{
		{25, 20}, {11, 20}, {38, 12}, // title, away from its 4px corners
		{70, 30}, {52, 30}, {70, 11}, // avatar, away from its 8px corners
	}
	for _, p := range transparent {
		if a := pixelAlpha(c, p[0], p[1]); a != 0 {
			t.Errorf("hole pixel %v alpha = %d, want 0", p, a)
		}
	}
	opaque := [][2]int{
		{5, 5}, {45, 30}, {95, 55}, {25, 40},
		{10, 10}, // title's rounded corner
		{50, 10}, // avatar's rounded corner
	}
	for _, p := range opaque {
		px := c.Image().RGBAAt(p[0], p[1])
		if px.A != 0xFF || px.R != 0xFF {
			t.Errorf("cover pixel %v = %+v, want opaque white", p, px)
		}
	}
}

func TestCutoutMaskFollowsRelayout(t *testing.T) {
	host := card()
	m := NewCutoutMask(graphics.ColorWhite)
	m.Layout(host)

	title := host.Children()[0]
	title.SetFrame(graphics.RectFromLTWH(0, 40, 10, 10))
	host.SetFrame(graphics.RectFromLTWH(0, 0, 200, 80))
	m.Layout(host)

	if got := m.Bounds(); got != graphics.RectFromLTWH(0, 0, 200, 80) {
		t.Errorf("bounds = %v", got)
	}
	if got := m.Holes()[0].Rect; got != graphics.RectFromLTWH(0, 40, 10, 10) {
		t.Errorf("title hole = %v", got)
	}
}

func TestBuildCutoutRecordsOneErasePerHole(t *testing.T) {
	holes := []graphics.RRect{
		graphics.RRectFromRectAndRadius(graphics.RectFromLTWH(0, 0, 5, 5), graphics.Radius{}),
		graphics.RRectFromRectAndRadius(graphics.RectFromLTWH(10, 0, 5, 5), graphics.CircularRadius(2)),
	}
	dl := BuildCutout(graphics.RectFromLTWH(0, 0, 20, 20), graphics.ColorWhite, holes)
	// save layer, cover, two holes, restore
	if got := dl.Len(); got != 5 {
		t.Errorf("ops = %d, want 5", got)
	}
}

func TestCollectHolesMatchAncestorProjection(t *testing.T) {
	host := view.NewView("host", graphics.RectFromLTWH(0, 0, 300, 300))
	outer := view.NewContainer("outer", graphics.RectFromLTWH(12, 7, 200, 200))
	middle := view.NewContainer("middle", graphics.RectFromLTWH(3, 30, 150, 150))
	leaves := []*view.Node{
		view.NewView("a", graphics.RectFromLTWH(0, 0, 40, 10)),
		view.NewView("b", graphics.RectFromLTWH(60, 25, 30, 30)),
	}
	for _, l := range leaves {
		middle.AddChild(l)
	}
	outer.AddChild(middle)
	host.AddChild(outer)

	holes := CollectHoles(host)
	if len(holes) != len(leaves) {
		t.Fatalf("got %d holes, want %d", len(holes), len(leaves))
	}
	for i, l := range leaves {
		want, ok := l.ConvertRectToAncestor(l.Bounds(), host)
		if !ok {
			t.Fatalf("%s is not below host", l.Name)
		}
		if holes[i].Rect != want {
			t.Errorf("hole %d = %v, want %v", i, holes[i].Rect, want)
		}
	}
	if got, want := holes[1].Rect, graphics.RectFromLTWH(75, 62, 30, 30); got != want {
		t.Errorf("hole 1 = %v, want %v", got, want)
	}
}
