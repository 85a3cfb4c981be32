package view

import (
	"fmt"

	"github.com/go-drift/skeleton/pkg/graphics"
)

// ListLoadable is implemented by scrollable containers whose loaders apply
// to the content of each currently visible item. Implementations must
// compute the visible set on every call because it changes with scrolling.
type ListLoadable interface {
	VisibleContentNodes() []*Node
}

// List is a vertically scrolling column of fixed-height rows. Each row is a
// cell node wrapping a content node that fills it.
type List struct {
	node      *Node
	rowHeight float64
	offset    float64
	cells     []*Node
}

var _ ListLoadable = (*List)(nil)

// NewList creates a list viewport with the given frame and row height.
func NewList(name string, frame graphics.Rect, rowHeight float64) *List {
	return &List{
		node:      NewView(name, frame),
		rowHeight: rowHeight,
	}
}

// Node returns the viewport node to insert into a tree.
func (l *List) Node() *Node { return l.node }

// Len returns the number of rows.
func (l *List) Len() int { return len(l.cells) }

// AppendRow adds a row and returns its content node, which callers fill
// with child views.
func (l *List) AppendRow() *Node {
	i := len(l.cells)
	width := l.node.Frame().Width()
	cell := NewView(fmt.Sprintf("%s/cell[%d]", l.node.Name, i), graphics.RectFromLTWH(0, 0, width, l.rowHeight))
	content := NewView(fmt.Sprintf("%s/content[%d]", l.node.Name, i), graphics.RectFromLTWH(0, 0, width, l.rowHeight))
	cell.AddChild(content)
	l.node.AddChild(cell)
	l.cells = append(l.cells, cell)
	l.position(i)
	return content
}

// RemoveRow deletes the row at index i, discarding its cell.
func (l *List) RemoveRow(i int) {
	if i < 0 || i >= len(l.cells) {
		return
	}
	l.cells[i].RemoveFromParent()
	l.cells = append(l.cells[:i], l.cells[i+1:]...)
	for j := i; j < len(l.cells); j++ {
		l.position(j)
	}
}

// Offset returns the scroll offset.
func (l *List) Offset() float64 { return l.offset }

// ScrollTo sets the scroll offset, clamped to the scrollable extent, and
// repositions rows.
func (l *List) ScrollTo(offset float64) {
	extent := float64(len(l.cells))*l.rowHeight - l.node.Frame().Height()
	l.offset = min(max(offset, 0), max(extent, 0))
	for i := range l.cells {
		l.position(i)
	}
}

func (l *List) position(i int) {
	cell := l.cells[i]
	y := float64(i)*l.rowHeight - l.offset
	cell.SetFrame(graphics.RectFromLTWH(0, y, l.node.Frame().Width(), l.rowHeight))
	visible := y < l.node.Frame().Height() && y+l.rowHeight > 0
	cell.SetHidden(!visible)
}

// VisibleContentNodes returns the content node of every row that currently
// intersects the viewport, top to bottom.
func (l *List) VisibleContentNodes() []*Node {
	var out []*Node
	for _, cell := range l.cells {
		if cell.Hidden() {
			continue
		}
		out = append(out, cell.children...)
	}
	return out
}
