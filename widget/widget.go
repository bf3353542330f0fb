// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"awkit.org/f32"
	"awkit.org/font"
	"awkit.org/io/clipboard"
	"awkit.org/io/event"
	"awkit.org/io/pointer"
	"awkit.org/layout"
	"awkit.org/op"
	"awkit.org/style"
	"awkit.org/unit"
)

// Widget is a node of the user interface publishing messages of type
// M.
type Widget[M any] interface {
	// Width and Height are the sizing policies the widget prefers.
	Width() unit.Length
	Height() unit.Length
	// Layout returns the node of the widget sized within l, with
	// child nodes positioned relative to it. Layout must not change
	// any state.
	Layout(r Renderer, l layout.Limits) layout.Node
	// Hash writes every field affecting layout to h.
	Hash(h *Hasher)
	// Draw returns the primitives of the widget laid out at l and the
	// cursor it wants to show when the pointer is at cursor.
	Draw(r Renderer, d Defaults, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) (op.Primitive, pointer.Cursor)
	// OnEvent processes e, publishing messages to sh.
	OnEvent(e event.Event, l layout.Layout, cursor f32.Point, r Renderer, cb clipboard.Clipboard, sh *Shell[M]) event.Status
}

// Renderer measures text for layout. Measurements must be pure.
type Renderer interface {
	DefaultTextSize() float32
	Measure(s string, size float32, f font.Font, bounds f32.Size) f32.Size
}

// Defaults are inherited drawing properties.
type Defaults struct {
	TextColor color.NRGBA
}

// DefaultDefaults are the Defaults of a root widget.
var DefaultDefaults = Defaults{TextColor: style.Black}

// Shell collects the messages published while handling events.
type Shell[M any] struct {
	messages []M
}

// Publish queues m for the application.
func (s *Shell[M]) Publish(m M) {
	s.messages = append(s.messages, m)
}

// Messages returns the published messages in order.
func (s *Shell[M]) Messages() []M {
	return s.messages
}

// Len returns the number of published messages.
func (s *Shell[M]) Len() int {
	return len(s.messages)
}

// Reset drops all messages.
func (s *Shell[M]) Reset() {
	s.messages = s.messages[:0]
}

// DrawChildren draws each child against the matching child layout of
// l. The cursor is the first non-default cursor of a child containing
// the pointer.
func DrawChildren[M any](children []Widget[M], r Renderer, d Defaults, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) (op.Primitive, pointer.Cursor) {
	var g op.Group
	c := pointer.CursorDefault
	for i, child := range children {
		cl := l.Child(i)
		p, cc := child.Draw(r, d, cl, cursor, viewport)
		g = g.Add(p)
		if cl.Bounds().Contains(cursor) {
			c = c.Or(cc)
		}
	}
	return op.Simplify(g), c
}

// DispatchChildren passes e to every child and merges the statuses.
func DispatchChildren[M any](children []Widget[M], e event.Event, l layout.Layout, cursor f32.Point, r Renderer, cb clipboard.Clipboard, sh *Shell[M]) event.Status {
	st := event.Ignored
	for i, child := range children {
		st = st.Merge(child.OnEvent(e, l.Child(i), cursor, r, cb, sh))
	}
	return st
}

// HashChildren hashes each child in order.
func HashChildren[M any](children []Widget[M], h *Hasher) {
	h.Int(int64(len(children)))
	for _, c := range children {
		c.Hash(h)
	}
}

// textSize returns size, or the renderer's default when size is not
// positive.
func textSize(r Renderer, size float32) float32 {
	if size > 0 {
		return size
	}
	return r.DefaultTextSize()
}

// TextSize returns size, or the renderer default when size is not
// positive.
func TextSize(r Renderer, size float32) float32 {
	return textSize(r, size)
}
