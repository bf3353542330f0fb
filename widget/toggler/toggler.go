// SPDX-License-Identifier: Unlicense OR MIT

// Package toggler implements a labelled on/off switch.
package toggler

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
	"awkit.org/widget"
)

// Style is the appearance of a toggler. Pressed is used while active.
type Style struct {
	Background color.NRGBA
	Border     op.Border
	Foreground color.NRGBA
	Label      color.NRGBA
}

type defaultStyle struct{}

// DefaultStyle is a gray switch turning primary when active.
var DefaultStyle style.Sheet[Style] = defaultStyle{}

func (defaultStyle) Active() Style {
	return Style{
		Background: style.LightGray,
		Foreground: style.White,
		Label:      style.Black,
	}
}

func (s defaultStyle) Hovered() Style {
	st := s.Active()
	st.Background = style.Mix(style.LightGray, style.Gray, .3)
	return st
}

func (s defaultStyle) Pressed() Style {
	st := s.Active()
	st.Background = style.Primary
	return st
}

func (s defaultStyle) Disabled() Style {
	st := s.Active()
	st.Label = style.Gray
	return st
}

// Toggler is a label followed by a switch. Pressing anywhere inside
// publishes OnToggle with the negated state.
type Toggler[M any] struct {
	widget.Sizing
	Active   bool
	Label    string
	OnToggle func(bool) M
	// Size is the height of the switch. Its width is twice that.
	Size float32
	// TextSize is the label size. Zero means the renderer default.
	TextSize  float32
	TextAlign layout.Alignment
	Spacing   float32
	Font      font.Font
	Style     style.Sheet[Style]
}

// New returns a toggler filling the available width.
func New[M any](isActive bool, label string, onToggle func(bool) M) Toggler[M] {
	return Toggler[M]{
		Sizing:   widget.Sizing{W: unit.Fill},
		Active:   isActive,
		Label:    label,
		OnToggle: onToggle,
		Size:     20,
		Spacing:  10,
	}
}

func (t Toggler[M]) label() widget.Text[M] {
	return widget.Text[M]{
		Sizing:     widget.Sizing{W: unit.Fill},
		Content:    t.Label,
		Size:       t.TextSize,
		Font:       t.Font,
		Horizontal: t.TextAlign,
		Vertical:   layout.Middle,
	}
}

func (t Toggler[M]) children() []widget.Widget[M] {
	sw := widget.NewSpace[M](unit.Px(2*t.Size), unit.Px(t.Size))
	if t.Label == "" {
		return []widget.Widget[M]{sw}
	}
	return []widget.Widget[M]{t.label(), sw}
}

func (t Toggler[M]) Layout(r widget.Renderer, l layout.Limits) layout.Node {
	fl := layout.Flex{Axis: layout.Horizontal, Spacing: t.Spacing, Alignment: layout.Middle}
	return widget.ResolveFlex(r, l.Width(t.W).Height(t.H), fl, t.children())
}

func (t Toggler[M]) Hash(h *widget.Hasher) {
	h.String("toggler")
	h.String(t.Label)
	h.Float(t.Size)
	h.Float(t.TextSize)
	h.Float(t.Spacing)
	h.Int(int64(t.TextAlign))
	h.Font(t.Font)
	t.Sizing.Hash(h)
}

func (t Toggler[M]) Draw(r widget.Renderer, d widget.Defaults, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) (op.Primitive, pointer.Cursor) {
	sheet := t.Style
	if sheet == nil {
		sheet = DefaultStyle
	}
	hovered := l.Bounds().Contains(cursor)
	s := style.Resolve(sheet, style.Of(hovered, t.Active, false))
	var g op.Group
	sw := l.Child(l.Len() - 1).Bounds()
	if t.Label != "" {
		d.TextColor = s.Label
		p, _ := t.label().Draw(r, d, l.Child(0), cursor, viewport)
		g = g.Add(p)
	}
	radius := sw.Dy() / 2
	border := s.Border
	border.Radius = radius
	g = g.Add(op.Quad{Bounds: sw, Background: s.Background, Border: border})
	knob := sw.Dy() - 4
	x := sw.Min.X + 2
	if t.Active {
		x = sw.Max.X - 2 - knob
	}
	g = g.Add(op.Quad{
		Bounds:     f32.Rect(x, sw.Min.Y+2, x+knob, sw.Max.Y-2),
		Background: s.Foreground,
		Border:     op.Border{Radius: knob / 2},
	})
	c := pointer.CursorDefault
	if hovered {
		c = pointer.CursorPointer
	}
	return g, c
}

func (t Toggler[M]) OnEvent(e event.Event, l layout.Layout, cursor f32.Point, r widget.Renderer, cb clipboard.Clipboard, sh *widget.Shell[M]) event.Status {
	if pe, ok := e.(pointer.Event); ok && pe.Pressed() && l.Bounds().Contains(cursor) {
		if t.OnToggle != nil {
			sh.Publish(t.OnToggle(!t.Active))
		}
		return event.Captured
	}
	return event.Ignored
}
