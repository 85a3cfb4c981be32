package skeleton_test

import (
	"fmt"

	"github.com/go-drift/skeleton/pkg/graphics"
	"github.com/go-drift/skeleton/pkg/platform"
	"github.com/go-drift/skeleton/pkg/skeleton"
	"github.com/go-drift/skeleton/pkg/theme"
	"github.com/go-drift/skeleton/pkg/view"
)

func ExampleRegistry() {
	appearance := platform.NewAppearanceService(theme.BrightnessLight)
	reg, err := skeleton.NewRegistry(skeleton.DefaultConfig(), appearance)
	if err != nil {
		panic(err)
	}
	defer reg.Close()

	card := view.NewView("card", graphics.RectFromLTWH(0, 0, 320, 80))
	card.SetBackground(theme.Adaptive(graphics.ColorWhite, graphics.RGB(28, 28, 30)))
	title := view.NewView("title", graphics.RectFromLTWH(16, 16, 200, 18))
	title.SetCornerRadius(4)
	card.AddChild(title)

	reg.ShowLoader(card)
	a, _ := reg.Attachment(card)
	fmt.Println(reg.IsShowing(card), a.Mask().Holes()[0].Rect, a.Cover() == graphics.ColorWhite)

	appearance.Update(theme.BrightnessDark)
	a, _ = reg.Attachment(card)
	fmt.Println(a.Cover() == graphics.RGB(28, 28, 30))

	reg.HideLoader(card)
	fmt.Println(reg.IsShowing(card), title.Alpha())
	// Output:
	// true {16 16 216 34} true
	// true
	// false 1
}
