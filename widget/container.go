// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"awkit.org/f32"
	"awkit.org/io/clipboard"
	"awkit.org/io/event"
	"awkit.org/io/pointer"
	"awkit.org/layout"
	"awkit.org/op"
	"awkit.org/style"
)

// Container lays out a single child inside padding, aligned within
// its bounds, and optionally draws a background behind it.
type Container[M any] struct {
	Sizing
	Content Widget[M]
	Padding layout.Inset
	// MaxWidth and MaxHeight cap the container size when positive.
	MaxWidth, MaxHeight  float32
	Horizontal, Vertical layout.Alignment
	// Style is optional.
	Style style.Sheet[ContainerStyle]
}

// ContainerStyle is the appearance of a Container.
type ContainerStyle struct {
	Background color.NRGBA
	Border     op.Border
	// TextColor overrides the inherited text colour when not
	// transparent.
	TextColor color.NRGBA
}

// NewContainer returns a Container of w.
func NewContainer[M any](w Widget[M]) Container[M] {
	return Container[M]{Content: w}
}

func (c Container[M]) limits(l layout.Limits) layout.Limits {
	l = l.Width(c.W).Height(c.H)
	if c.MaxWidth > 0 {
		l = l.MaxWidth(c.MaxWidth)
	}
	if c.MaxHeight > 0 {
		l = l.MaxHeight(c.MaxHeight)
	}
	return l
}

func (c Container[M]) Layout(r Renderer, l layout.Limits) layout.Node {
	l = c.limits(l)
	if c.Content == nil {
		return layout.NewNode(l.Resolve(c.Padding.Expand(f32.Size{})))
	}
	n := c.Content.Layout(r, l.Inset(c.Padding).Loose())
	size := l.Resolve(c.Padding.Expand(n.Size()))
	n.Move(c.Padding.Offset())
	inner := f32.Sz(size.Width-c.Padding.Horizontal(), size.Height-c.Padding.Vertical())
	n.Align(c.Horizontal, c.Vertical, inner)
	return layout.WithChildren(size, []layout.Node{n})
}

func (c Container[M]) Hash(h *Hasher) {
	h.String("container")
	h.Float(c.Padding.Top)
	h.Float(c.Padding.Right)
	h.Float(c.Padding.Bottom)
	h.Float(c.Padding.Left)
	h.Float(c.MaxWidth)
	h.Float(c.MaxHeight)
	h.Int(int64(c.Horizontal))
	h.Int(int64(c.Vertical))
	c.Sizing.Hash(h)
	if c.Content != nil {
		c.Content.Hash(h)
	}
}

func (c Container[M]) Draw(r Renderer, d Defaults, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) (op.Primitive, pointer.Cursor) {
	var g op.Group
	if c.Style != nil {
		s := c.Style.Active()
		if !op.Transparent(s.Background) || s.Border.Width > 0 {
			g = g.Add(op.Quad{Bounds: l.Bounds(), Background: s.Background, Border: s.Border})
		}
		if !op.Transparent(s.TextColor) {
			d.TextColor = s.TextColor
		}
	}
	cur := pointer.CursorDefault
	if c.Content != nil {
		p, cc := c.Content.Draw(r, d, l.Child(0), cursor, viewport)
		g = g.Add(p)
		cur = cc
	}
	return op.Simplify(g), cur
}

func (c Container[M]) OnEvent(e event.Event, l layout.Layout, cursor f32.Point, r Renderer, cb clipboard.Clipboard, sh *Shell[M]) event.Status {
	if c.Content == nil {
		return event.Ignored
	}
	return c.Content.OnEvent(e, l.Child(0), cursor, r, cb, sh)
}
