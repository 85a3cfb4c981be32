package skeleton

import (
	"testing"
	"time"

	"github.com/go-drift/skeleton/pkg/animation"
	"github.com/go-drift/skeleton/pkg/graphics"
	"github.com/go-drift/skeleton/pkg/platform"
	"github.com/go-drift/skeleton/pkg/theme"
	"github.com/go-drift/skeleton/pkg/view"
)

func useFakeClock(t *testing.T) *animation.ManualClock {
	t.Helper()
	clk := animation.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	prev := animation.SetClock(clk)
	t.Cleanup(func() { animation.SetClock(prev) })
	return clk
}

func newTestRegistry(t *testing.T) (*Registry, *platform.AppearanceService) {
	t.Helper()
	appearance := platform.NewAppearanceService(theme.BrightnessLight)
	r, err := NewRegistry(DefaultConfig(), appearance)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	t.Cleanup(func() {
		r.Close()
		r.mu.Lock()
		for _, a := range r.attachments {
			a.sweep.Stop()
		}
		r.mu.Unlock()
	})
	return r, appearance
}

// card builds a 100x60 view with a title and an avatar inside a container.
func card() *view.Node {
	n := view.NewView("card", graphics.RectFromLTWH(0, 0, 100, 60))
	title := view.NewView("title", graphics.RectFromLTWH(10, 10, 30, 20))
	title.SetCornerRadius(4)
	title.SetBackground(theme.Fixed(graphics.ColorRed))
	row := view.NewContainer("row", graphics.RectFromLTWH(50, 10, 40, 40))
	avatar := view.NewView("avatar", graphics.RectFromLTWH(0, 0, 40, 40))
	avatar.SetCornerRadius(8)
	avatar.SetBackground(theme.Fixed(graphics.ColorRed))
	row.AddChild(avatar)
	n.AddChild(title)
	n.AddChild(row)
	return n
}

func pixelAlpha(c *graphics.RasterCanvas, x, y int) uint8 {
	return c.Image().RGBAAt(x, y).A
}
