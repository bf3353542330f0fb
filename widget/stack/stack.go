// SPDX-License-Identifier: Unlicense OR MIT

// Package stack implements a container layering its children on top
// of each other.
package stack

import (
	"awkit.org/f32"
	"awkit.org/io/clipboard"
	"awkit.org/io/event"
	"awkit.org/io/pointer"
	"awkit.org/layout"
	"awkit.org/op"
	"awkit.org/widget"
)

// Overflow is the policy for children positioned past the stack
// bounds.
type Overflow uint8

const (
	// Visible grows the stack to fit positioned children.
	Visible Overflow = iota
	// Clip sizes the stack by its unpositioned children and clips
	// the rest.
	Clip
)

type child[M any] struct {
	w          widget.Widget[M]
	offset     f32.Point
	positioned bool
}

// Stack draws its children in order, later children on top.
type Stack[M any] struct {
	widget.Sizing
	Overflow Overflow
	children []child[M]
}

// New returns a stack of unpositioned children.
func New[M any](children ...widget.Widget[M]) Stack[M] {
	var s Stack[M]
	for _, c := range children {
		s = s.Push(c)
	}
	return s
}

// Push adds w at the origin of the stack.
func (s Stack[M]) Push(w widget.Widget[M]) Stack[M] {
	s.children = append(s.children[:len(s.children):len(s.children)], child[M]{w: w})
	return s
}

// PushAt adds w at offset from the origin of the stack.
func (s Stack[M]) PushAt(w widget.Widget[M], offset f32.Point) Stack[M] {
	s.children = append(s.children[:len(s.children):len(s.children)], child[M]{w: w, offset: offset, positioned: true})
	return s
}

func (s Stack[M]) Layout(r widget.Renderer, l layout.Limits) layout.Node {
	l = l.Width(s.W).Height(s.H)
	cl := l.Loose()
	nodes := make([]layout.Node, len(s.children))
	var size f32.Size
	for i, c := range s.children {
		n := c.w.Layout(r, cl)
		n.Move(c.offset)
		nodes[i] = n
		if c.positioned && s.Overflow == Clip {
			continue
		}
		size = size.Max(f32.Sz(n.Bounds().Max.X, n.Bounds().Max.Y))
	}
	return layout.WithChildren(l.Resolve(size), nodes)
}

func (s Stack[M]) Hash(h *widget.Hasher) {
	h.String("stack")
	h.Int(int64(s.Overflow))
	s.Sizing.Hash(h)
	h.Int(int64(len(s.children)))
	for _, c := range s.children {
		h.Bool(c.positioned)
		h.Float(c.offset.X)
		h.Float(c.offset.Y)
		c.w.Hash(h)
	}
}

func (s Stack[M]) Draw(r widget.Renderer, d widget.Defaults, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) (op.Primitive, pointer.Cursor) {
	var g op.Group
	c := pointer.CursorDefault
	for i, ch := range s.children {
		cl := l.Child(i)
		p, cc := ch.w.Draw(r, d, cl, cursor, viewport)
		g = g.Add(p)
		// Later children are on top and win the cursor.
		if cl.Bounds().Contains(cursor) && cc != pointer.CursorDefault {
			c = cc
		}
	}
	if s.Overflow == Clip {
		return op.Clip{Bounds: l.Bounds(), Content: op.Simplify(g)}, c
	}
	return op.Simplify(g), c
}

func (s Stack[M]) OnEvent(e event.Event, l layout.Layout, cursor f32.Point, r widget.Renderer, cb clipboard.Clipboard, sh *widget.Shell[M]) event.Status {
	for i := len(s.children) - 1; i >= 0; i-- {
		if s.children[i].w.OnEvent(e, l.Child(i), cursor, r, cb, sh) == event.Captured {
			return event.Captured
		}
	}
	return event.Ignored
}
