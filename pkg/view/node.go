// Package view is a minimal retained element tree for hosting loaders.
//
// A [Node] is either a rendering view or a non-rendering container that only
// groups children for layout. Frames are expressed in the parent's
// coordinate space. Layers installed on a node draw below or above its
// children and are told about every layout pass.
package view

import (
	"fmt"

	"github.com/go-drift/skeleton/pkg/graphics"
	"github.com/go-drift/skeleton/pkg/theme"
)

// Kind distinguishes rendering views from grouping containers.
type Kind int

const (
	// KindView is a node that paints its background and children.
	KindView Kind = iota
	// KindContainer is a layout-only grouping; it paints nothing itself.
	KindContainer
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindView:
		return "view"
	case KindContainer:
		return "container"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// LayerPosition selects where a layer is painted relative to children.
type LayerPosition int

const (
	// LayerBelowContent paints after the background, before children.
	LayerBelowContent LayerPosition = iota
	// LayerAboveContent paints after all children.
	LayerAboveContent
)

// Layer is a drawing attached to a node.
type Layer interface {
	// Layout is called on every layout pass of the host node.
	Layout(host *Node)
	// Paint draws the layer in the host's local coordinates.
	Paint(canvas graphics.Canvas)
}

// Node is an element of the view tree.
type Node struct {
	// Name identifies the node in scenes and debug output.
	Name string

	kind         Kind
	frame        graphics.Rect
	background   theme.DynamicColor
	cornerRadius float64
	alpha        float64
	hidden       bool
	interactive  bool

	parent   *Node
	children []*Node
	below    []Layer
	above    []Layer
}

// NewView creates a rendering node with a transparent background.
func NewView(name string, frame graphics.Rect) *Node {
	return &Node{
		Name:        name,
		kind:        KindView,
		frame:       frame,
		alpha:       1,
		interactive: true,
	}
}

// NewContainer creates a grouping node.
func NewContainer(name string, frame graphics.Rect) *Node {
	n := NewView(name, frame)
	n.kind = KindContainer
	return n
}

// Kind returns whether the node is a view or a container.
func (n *Node) Kind() Kind { return n.kind }

// IsContainer reports whether the node is a grouping container.
func (n *Node) IsContainer() bool { return n.kind == KindContainer }

// Frame returns the node's rectangle in its parent's coordinate space.
func (n *Node) Frame() graphics.Rect { return n.frame }

// SetFrame moves or resizes the node. Call Layout on the root afterwards.
func (n *Node) SetFrame(frame graphics.Rect) { n.frame = frame }

// Bounds returns the node's rectangle in its own coordinate space.
func (n *Node) Bounds() graphics.Rect { return graphics.RectFromSize(n.frame.Size()) }

// Background returns the background color; transparent means "no color".
func (n *Node) Background() theme.DynamicColor { return n.background }

// SetBackground sets the background color.
func (n *Node) SetBackground(c theme.DynamicColor) { n.background = c }

// CornerRadius returns the radius used to round the node's corners.
func (n *Node) CornerRadius() float64 { return n.cornerRadius }

// SetCornerRadius sets the corner radius.
func (n *Node) SetCornerRadius(r float64) { n.cornerRadius = r }

// Alpha returns the node's opacity.
func (n *Node) Alpha() float64 { return n.alpha }

// SetAlpha sets the node's opacity, clamped to [0, 1].
func (n *Node) SetAlpha(a float64) { n.alpha = min(max(a, 0), 1) }

// Hidden reports whether the node is excluded from painting and layout holes.
func (n *Node) Hidden() bool { return n.hidden }

// SetHidden hides or shows the node.
func (n *Node) SetHidden(hidden bool) { n.hidden = hidden }

// Interactive reports whether the node receives hit tests.
func (n *Node) Interactive() bool { return n.interactive }

// SetInteractive enables or disables hit testing for the node's subtree.
func (n *Node) SetInteractive(enabled bool) { n.interactive = enabled }

// Parent returns the containing node, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the child list in paint order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// AddChild appends child, detaching it from any previous parent.
func (n *Node) AddChild(child *Node) {
	if child == nil || child == n {
		return
	}
	child.RemoveFromParent()
	child.parent = n
	n.children = append(n.children, child)
}

// RemoveFromParent detaches the node from its parent.
func (n *Node) RemoveFromParent() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// InsertLayer installs a layer. Inserting a layer that is already installed
// is a no-op.
func (n *Node) InsertLayer(l Layer, pos LayerPosition) {
	if l == nil || n.hasLayer(l) {
		return
	}
	if pos == LayerBelowContent {
		n.below = append([]Layer{l}, n.below...)
	} else {
		n.above = append(n.above, l)
	}
}

// RemoveLayer uninstalls a layer and reports whether it was installed.
func (n *Node) RemoveLayer(l Layer) bool {
	for i, x := range n.below {
		if x == l {
			n.below = append(n.below[:i], n.below[i+1:]...)
			return true
		}
	}
	for i, x := range n.above {
		if x == l {
			n.above = append(n.above[:i], n.above[i+1:]...)
			return true
		}
	}
	return false
}

// Layers returns the installed layers at the given position.
func (n *Node) Layers(pos LayerPosition) []Layer {
	src := n.above
	if pos == LayerBelowContent {
		src = n.below
	}
	out := make([]Layer, len(src))
	copy(out, src)
	return out
}

func (n *Node) hasLayer(l Layer) bool {
	for _, x := range n.below {
		if x == l {
			return true
		}
	}
	for _, x := range n.above {
		if x == l {
			return true
		}
	}
	return false
}

// Layout runs a layout pass: installed layers are laid out against the
// node's current geometry, then children are laid out recursively.
func (n *Node) Layout() {
	for _, l := range n.below {
		l.Layout(n)
	}
	for _, l := range n.above {
		l.Layout(n)
	}
	for _, c := range n.children {
		c.Layout()
	}
}

// Paint draws the node's subtree in the node's local coordinates.
func (n *Node) Paint(canvas graphics.Canvas, brightness theme.Brightness) {
	if n.kind == KindView {
		if bg := n.background.Resolve(brightness); !bg.IsTransparent() {
			canvas.DrawRRect(
				graphics.RRectFromRectAndRadius(n.Bounds(), graphics.CircularRadius(n.cornerRadius)),
				graphics.FillPaint(bg),
			)
		}
	}
	for _, l := range n.below {
		l.Paint(canvas)
	}
	for _, c := range n.children {
		c.paintInParent(canvas, brightness)
	}
	for _, l := range n.above {
		l.Paint(canvas)
	}
}

func (n *Node) paintInParent(canvas graphics.Canvas, brightness theme.Brightness) {
	if n.hidden || n.alpha <= 0 {
		return
	}
	canvas.Save()
	canvas.Translate(n.frame.Left, n.frame.Top)
	if n.alpha < 1 {
		paint := graphics.DefaultPaint()
		paint.Alpha = n.alpha
		canvas.SaveLayer(n.Bounds(), &paint)
		n.Paint(canvas, brightness)
		canvas.Restore()
	} else {
		n.Paint(canvas, brightness)
	}
	canvas.Restore()
}

// HitTest returns the deepest interactive, visible node containing p, given
// in the node's local coordinates. A non-interactive node hides its whole
// subtree from hit testing.
func (n *Node) HitTest(p graphics.Offset) *Node {
	if !n.interactive || n.hidden || !n.Bounds().Contains(p) {
		return nil
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		c := n.children[i]
		local := graphics.Offset{X: p.X - c.frame.Left, Y: p.Y - c.frame.Top}
		if hit := c.HitTest(local); hit != nil {
			return hit
		}
	}
	return n
}

// ConvertRectToAncestor projects a rect from this node's local space into
// the local space of ancestor. It returns false if ancestor is not an
// ancestor of the node.
func (n *Node) ConvertRectToAncestor(r graphics.Rect, ancestor *Node) (graphics.Rect, bool) {
	for cur := n; cur != nil; cur = cur.parent {
		if cur == ancestor {
			return r, true
		}
		r = r.Translate(cur.frame.Left, cur.frame.Top)
	}
	return r, false
}

// String returns a short description for debugging.
func (n *Node) String() string {
	return fmt.Sprintf("%s(%q %v)", n.kind, n.Name, n.frame)
}
