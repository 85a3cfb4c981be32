package skeleton

import (
	"github.com/go-drift/skeleton/pkg/graphics"
	"github.com/go-drift/skeleton/pkg/theme"
	"github.com/go-drift/skeleton/pkg/view"
)

// ResolveCoverColor picks the opaque color a loader on n should cover it
// with: n's own background if it has one, else the nearest ancestor's, else
// the palette default for the brightness. Transparent backgrounds are
// skipped at every level, including the root, so the result is never
// transparent. Containers paint nothing and are skipped as well.
func ResolveCoverColor(n *view.Node, brightness theme.Brightness) graphics.Color {
	for cur := n; cur != nil; cur = cur.Parent() {
		if cur.IsContainer() {
			continue
		}
		if c := cur.Background().Resolve(brightness); !c.IsTransparent() {
			return c
		}
	}
	return theme.LoaderPaletteFor(brightness).DefaultCover
}
