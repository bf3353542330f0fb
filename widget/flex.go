// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"awkit.org/f32"
	"awkit.org/io/clipboard"
	"awkit.org/io/event"
	"awkit.org/io/pointer"
	"awkit.org/layout"
	"awkit.org/op"
	"awkit.org/unit"
)

// Flex lays out its children along an axis. Children with a filling
// length on the main axis share the space left by the others in
// proportion to their fill factors.
type Flex[M any] struct {
	Sizing
	Axis      layout.Axis
	Spacing   float32
	Padding   float32
	Alignment layout.Alignment
	Children  []Widget[M]
}

// Row returns a horizontal Flex.
func Row[M any](children ...Widget[M]) Flex[M] {
	return Flex[M]{Axis: layout.Horizontal, Children: children}
}

// Column returns a vertical Flex.
func Column[M any](children ...Widget[M]) Flex[M] {
	return Flex[M]{Axis: layout.Vertical, Children: children}
}

// Push appends w to the children.
func (f Flex[M]) Push(w Widget[M]) Flex[M] {
	f.Children = append(f.Children[:len(f.Children):len(f.Children)], w)
	return f
}

func (f Flex[M]) Layout(r Renderer, l layout.Limits) layout.Node {
	l = l.Width(f.W).Height(f.H)
	return ResolveFlex(r, l, layout.Flex{
		Axis:      f.Axis,
		Spacing:   f.Spacing,
		Padding:   f.Padding,
		Alignment: f.Alignment,
	}, f.Children)
}

// ResolveFlex lays out children with fl. A child is flexed by the
// fill factor of its length along the main axis.
func ResolveFlex[M any](r Renderer, l layout.Limits, fl layout.Flex, children []Widget[M]) layout.Node {
	items := make([]layout.FlexChild, len(children))
	for i, c := range children {
		c := c
		lay := func(cl layout.Limits) layout.Node {
			return c.Layout(r, cl)
		}
		var main unit.Length
		if fl.Axis == layout.Horizontal {
			main = c.Width()
		} else {
			main = c.Height()
		}
		items[i] = layout.Flexed(main.FillFactor(), lay)
	}
	return fl.Resolve(l, items...)
}

func (f Flex[M]) Hash(h *Hasher) {
	h.String("flex")
	h.Int(int64(f.Axis))
	h.Float(f.Spacing)
	h.Float(f.Padding)
	h.Int(int64(f.Alignment))
	f.Sizing.Hash(h)
	HashChildren(f.Children, h)
}

func (f Flex[M]) Draw(r Renderer, d Defaults, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) (op.Primitive, pointer.Cursor) {
	return DrawChildren(f.Children, r, d, l, cursor, viewport)
}

func (f Flex[M]) OnEvent(e event.Event, l layout.Layout, cursor f32.Point, r Renderer, cb clipboard.Clipboard, sh *Shell[M]) event.Status {
	return DispatchChildren(f.Children, e, l, cursor, r, cb, sh)
}
