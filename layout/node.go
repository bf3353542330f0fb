// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"strings"

	"awkit.org/f32"
)

// Node is the result of laying out a widget: its bounds relative to
// the parent and the nodes of its children, in widget order.
type Node struct {
	bounds   f32.Rectangle
	children []Node
}

// Layout is a Node placed in absolute coordinates. A zero Layout is
// valid and describes an empty area with no children.
type Layout struct {
	node   *Node
	offset f32.Point
}

// NewNode returns a leaf node of the given size at the origin.
func NewNode(size f32.Size) Node {
	return Node{bounds: f32.RectAt(f32.Point{}, size)}
}

// WithChildren returns a node of the given size owning children.
func WithChildren(size f32.Size, children []Node) Node {
	n := NewNode(size)
	n.children = children
	return n
}

// Size returns the node size.
func (n Node) Size() f32.Size {
	return n.bounds.Size()
}

// Bounds returns the node bounds relative to its parent.
func (n Node) Bounds() f32.Rectangle {
	return n.bounds
}

// Children returns the child nodes.
func (n Node) Children() []Node {
	return n.children
}

// Len returns the number of children.
func (n Node) Len() int {
	return len(n.children)
}

// Move places the node at p, keeping its size.
func (n *Node) Move(p f32.Point) {
	n.bounds = f32.RectAt(p, n.bounds.Size())
}

// Translate moves the node by d.
func (n *Node) Translate(d f32.Point) {
	n.bounds = n.bounds.Add(d)
}

// Align positions the node inside space, measured from the node's
// current position.
func (n *Node) Align(h, v Alignment, space f32.Size) {
	sz := n.bounds.Size()
	d := f32.Pt(
		(space.Width-sz.Width)*h.Factor(),
		(space.Height-sz.Height)*v.Factor(),
	)
	n.bounds = n.bounds.Add(d)
}

// Resize changes the node size, keeping its position.
func (n *Node) Resize(size f32.Size) {
	n.bounds = f32.RectAt(n.bounds.Min, size)
}

func (n Node) String() string {
	var b strings.Builder
	n.format(&b, 0)
	return b.String()
}

func (n Node) format(b *strings.Builder, depth int) {
	fmt.Fprintf(b, "%s%v\n", strings.Repeat("  ", depth), n.bounds)
	for _, c := range n.children {
		c.format(b, depth+1)
	}
}

// Place returns the Layout of n positioned at origin.
func Place(n *Node, origin f32.Point) Layout {
	return Layout{node: n, offset: origin}
}

// Bounds returns the absolute bounds.
func (l Layout) Bounds() f32.Rectangle {
	if l.node == nil {
		return f32.Rectangle{Min: l.offset, Max: l.offset}
	}
	return l.node.bounds.Add(l.offset)
}

// Position returns the absolute top left corner.
func (l Layout) Position() f32.Point {
	return l.Bounds().Min
}

// Len returns the number of children.
func (l Layout) Len() int {
	if l.node == nil {
		return 0
	}
	return len(l.node.children)
}

// Child returns the i'th child layout, or an empty layout at the
// parent's position if there is no such child.
func (l Layout) Child(i int) Layout {
	pos := l.Position()
	if l.node == nil || i < 0 || i >= len(l.node.children) {
		return Layout{offset: pos}
	}
	return Layout{node: &l.node.children[i], offset: pos}
}

// Children returns the child layouts in order.
func (l Layout) Children() []Layout {
	n := l.Len()
	if n == 0 {
		return nil
	}
	ls := make([]Layout, n)
	for i := range ls {
		ls[i] = l.Child(i)
	}
	return ls
}

// Node returns the underlying node, or nil for an empty layout.
func (l Layout) Node() *Node {
	return l.node
}
