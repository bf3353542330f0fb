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
)

// Text is a widget for laying out and drawing a run of text.
type Text[M any] struct {
	Sizing
	Content string
	// Size is the text size. Zero means the renderer default.
	Size float32
	Font font.Font
	// Color is the text colour. The zero value inherits the text
	// colour from Defaults.
	Color color.NRGBA
	// Alignment of the text within the widget bounds.
	Horizontal, Vertical layout.Alignment
}

// NewText returns a shrinking Text for s.
func NewText[M any](s string) Text[M] {
	return Text[M]{Content: s}
}

func (t Text[M]) Layout(r Renderer, l layout.Limits) layout.Node {
	l = l.Width(t.W).Height(t.H)
	sz := r.Measure(t.Content, textSize(r, t.Size), t.Font, l.Max)
	return layout.NewNode(l.Resolve(sz))
}

func (t Text[M]) Hash(h *Hasher) {
	h.String("text")
	h.String(t.Content)
	h.Float(t.Size)
	h.Font(t.Font)
	t.Sizing.Hash(h)
}

func (t Text[M]) Draw(r Renderer, d Defaults, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) (op.Primitive, pointer.Cursor) {
	if t.Content == "" {
		return op.None{}, pointer.CursorDefault
	}
	c := t.Color
	if c == (color.NRGBA{}) {
		c = d.TextColor
	}
	return op.Text{
		Content:    t.Content,
		Bounds:     l.Bounds(),
		Color:      c,
		Size:       textSize(r, t.Size),
		Font:       t.Font,
		Horizontal: TextAlign(t.Horizontal),
		Vertical:   TextAlign(t.Vertical),
	}, pointer.CursorDefault
}

func (t Text[M]) OnEvent(event.Event, layout.Layout, f32.Point, Renderer, clipboard.Clipboard, *Shell[M]) event.Status {
	return event.Ignored
}

// TextAlign converts a layout alignment to a text alignment.
func TextAlign(a layout.Alignment) op.TextAlign {
	switch a {
	case layout.Middle:
		return op.AlignMiddle
	case layout.End:
		return op.AlignEnd
	default:
		return op.AlignStart
	}
}
