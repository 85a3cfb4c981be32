package skeleton

import (
	"github.com/go-drift/skeleton/pkg/graphics"
	"github.com/go-drift/skeleton/pkg/theme"
	"github.com/go-drift/skeleton/pkg/view"
)

// Attachment is the loader state installed on one node: the owned mask and
// sweep layers and the cover color they were built with. It holds no
// reference to the node itself.
type Attachment struct {
	mask  *CutoutMask
	sweep *GradientSweep
	cover graphics.Color
}

// Mask returns the installed cutout layer.
func (a *Attachment) Mask() *CutoutMask { return a.mask }

// Sweep returns the installed shimmer layer.
func (a *Attachment) Sweep() *GradientSweep { return a.sweep }

// Cover returns the cover color.
func (a *Attachment) Cover() graphics.Color { return a.cover }

// attach installs a loader on n: sweep below the children, mask above,
// children faded out and interaction disabled. Both layers are laid out
// immediately so the first frame is already masked.
func attach(n *view.Node, cover graphics.Color, cfg Config, palette theme.LoaderPalette) *Attachment {
	a := &Attachment{
		mask:  NewCutoutMask(cover),
		sweep: NewGradientSweep(cfg, palette),
		cover: cover,
	}
	n.InsertLayer(a.sweep, view.LayerBelowContent)
	n.InsertLayer(a.mask, view.LayerAboveContent)
	a.sweep.Layout(n)
	a.mask.Layout(n)
	for _, c := range n.Children() {
		c.SetAlpha(0)
	}
	n.SetInteractive(false)
	a.sweep.Start()
	return a
}

// detach removes the loader from n and restores every direct child to full
// opacity. Prior per-child opacity is not tracked. A nil node only stops the
// animation; that happens when the node has already been collected.
func (a *Attachment) detach(n *view.Node) {
	a.sweep.Stop()
	if n == nil {
		return
	}
	n.RemoveLayer(a.mask)
	n.RemoveLayer(a.sweep)
	for _, c := range n.Children() {
		c.SetAlpha(1)
	}
	n.SetInteractive(true)
}
