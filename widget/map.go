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

type mapped[A, B any] struct {
	w Widget[A]
	f func(A) B
}

// Map returns w publishing f(m) for every message m of w.
func Map[A, B any](w Widget[A], f func(A) B) Widget[B] {
	return mapped[A, B]{w: w, f: f}
}

func (m mapped[A, B]) Width() unit.Length  { return m.w.Width() }
func (m mapped[A, B]) Height() unit.Length { return m.w.Height() }

func (m mapped[A, B]) Layout(r Renderer, l layout.Limits) layout.Node {
	return m.w.Layout(r, l)
}

func (m mapped[A, B]) Hash(h *Hasher) {
	m.w.Hash(h)
}

func (m mapped[A, B]) Draw(r Renderer, d Defaults, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) (op.Primitive, pointer.Cursor) {
	return m.w.Draw(r, d, l, cursor, viewport)
}

func (m mapped[A, B]) OnEvent(e event.Event, l layout.Layout, cursor f32.Point, r Renderer, cb clipboard.Clipboard, sh *Shell[B]) event.Status {
	var inner Shell[A]
	st := m.w.OnEvent(e, l, cursor, r, cb, &inner)
	for _, msg := range inner.messages {
		sh.Publish(m.f(msg))
	}
	return st
}
