package skeleton

import (
	"github.com/go-drift/skeleton/pkg/graphics"
	"github.com/go-drift/skeleton/pkg/view"
)

// CollectHoles enumerates the holes a cutout over host must leave open: one
// rounded rect per visible leaf child, in host coordinates, with the child's
// own corner radius. Containers are not holes themselves; their children are
// projected through every level of nesting into host space instead. Hidden
// children are skipped.
func CollectHoles(host *view.Node) []graphics.RRect {
	if host == nil {
		return nil
	}
	return appendHoles(nil, host, host.Children())
}

func appendHoles(holes []graphics.RRect, host *view.Node, children []*view.Node) []graphics.RRect {
	for _, child := range children {
		if child.Hidden() {
			continue
		}
		if child.Kind() == view.KindContainer {
			holes = appendHoles(holes, host, child.Children())
			continue
		}
		rect, ok := child.ConvertRectToAncestor(child.Bounds(), host)
		if !ok {
			continue
		}
		holes = append(holes, graphics.RRectFromRectAndRadius(rect, graphics.CircularRadius(child.CornerRadius())))
	}
	return holes
}

// BuildCutout records the cover for an overlay: bounds filled with cover,
// then every hole erased. The drawing happens in its own layer so erasing
// never reaches content painted below the cutout.
func BuildCutout(bounds graphics.Rect, cover graphics.Color, holes []graphics.RRect) *graphics.DisplayList {
	var rec graphics.PictureRecorder
	canvas := rec.BeginRecording(bounds.Size())
	canvas.SaveLayer(bounds, nil)
	canvas.DrawRect(bounds, graphics.FillPaint(cover))
	erase := graphics.ErasePaint()
	for _, h := range holes {
		canvas.DrawRRect(h, erase)
	}
	canvas.Restore()
	return rec.EndRecording()
}

// CutoutMask is the opaque cover layer of a loader. It re-enumerates the
// host's children on every layout pass, so holes follow resizes, rotation
// and content changes.
type CutoutMask struct {
	cover   graphics.Color
	bounds  graphics.Rect
	holes   []graphics.RRect
	picture *graphics.DisplayList
}

var _ view.Layer = (*CutoutMask)(nil)

// NewCutoutMask creates a mask with the given cover color. It draws nothing
// until its first layout.
func NewCutoutMask(cover graphics.Color) *CutoutMask {
	return &CutoutMask{cover: cover}
}

// Cover returns the cover color.
func (m *CutoutMask) Cover() graphics.Color { return m.cover }

// Bounds returns the area covered at the last layout.
func (m *CutoutMask) Bounds() graphics.Rect { return m.bounds }

// Holes returns the holes computed at the last layout.
func (m *CutoutMask) Holes() []graphics.RRect {
	out := make([]graphics.RRect, len(m.holes))
	copy(out, m.holes)
	return out
}

// Layout recomputes bounds and holes from the host's current geometry.
func (m *CutoutMask) Layout(host *view.Node) {
	m.bounds = host.Bounds()
	m.holes = CollectHoles(host)
	m.picture = BuildCutout(m.bounds, m.cover, m.holes)
}

// Paint draws the cover with its holes.
func (m *CutoutMask) Paint(canvas graphics.Canvas) {
	m.picture.Paint(canvas)
}
