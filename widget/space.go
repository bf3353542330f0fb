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

// Space is an empty widget.
type Space[M any] struct {
	Sizing
}

// NewSpace returns a Space with the given policies.
func NewSpace[M any](w, h unit.Length) Space[M] {
	return Space[M]{Sizing{W: w, H: h}}
}

func (s Space[M]) Layout(r Renderer, l layout.Limits) layout.Node {
	return layout.NewNode(l.Width(s.W).Height(s.H).Resolve(f32.Size{}))
}

func (s Space[M]) Hash(h *Hasher) {
	h.String("space")
	s.Sizing.Hash(h)
}

func (s Space[M]) Draw(Renderer, Defaults, layout.Layout, f32.Point, f32.Rectangle) (op.Primitive, pointer.Cursor) {
	return op.None{}, pointer.CursorDefault
}

func (s Space[M]) OnEvent(event.Event, layout.Layout, f32.Point, Renderer, clipboard.Clipboard, *Shell[M]) event.Status {
	return event.Ignored
}
