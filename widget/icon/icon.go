// SPDX-License-Identifier: Unlicense OR MIT

// Package icon draws single glyphs from an icon font.
package icon

import (
	"image/color"

	"awkit.org/f32"
	"awkit.org/font"
	"awkit.org/io/clipboard"
	"awkit.org/io/event"
	"awkit.org/io/pointer"
	"awkit.org/layout"
	"awkit.org/op"
	"awkit.org/widget"
)

// Typeface is the default icon typeface.
const Typeface font.Typeface = "icons"

// Code points of common glyphs in the default icon font.
const (
	Check   rune = '✓'
	Close   rune = '✕'
	Plus    rune = '+'
	Minus   rune = '−'
	Up      rune = '▲'
	Down    rune = '▼'
	Gear    rune = '⚙'
	Warning rune = '⚠'
)

// Icon is a glyph rendered as text.
type Icon[M any] struct {
	widget.Sizing
	Code rune
	// Size is the glyph size. Zero means the renderer default.
	Size                 float32
	Color                color.NRGBA
	Font                 font.Font
	Horizontal, Vertical layout.Alignment
}

// New returns an icon for code in the default icon typeface.
func New[M any](code rune) Icon[M] {
	return Icon[M]{
		Code: code,
		Font: font.Font{Typeface: Typeface},
	}
}

// Text returns the text widget the icon draws as.
func (i Icon[M]) Text() widget.Text[M] {
	return widget.Text[M]{
		Sizing:     i.Sizing,
		Content:    string(i.Code),
		Size:       i.Size,
		Font:       i.Font,
		Color:      i.Color,
		Horizontal: i.Horizontal,
		Vertical:   i.Vertical,
	}
}

func (i Icon[M]) Layout(r widget.Renderer, l layout.Limits) layout.Node {
	return i.Text().Layout(r, l)
}

func (i Icon[M]) Hash(h *widget.Hasher) {
	h.String("icon")
	i.Text().Hash(h)
}

func (i Icon[M]) Draw(r widget.Renderer, d widget.Defaults, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) (op.Primitive, pointer.Cursor) {
	return i.Text().Draw(r, d, l, cursor, viewport)
}

func (i Icon[M]) OnEvent(event.Event, layout.Layout, f32.Point, widget.Renderer, clipboard.Clipboard, *widget.Shell[M]) event.Status {
	return event.Ignored
}
