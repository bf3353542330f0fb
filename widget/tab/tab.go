// SPDX-License-Identifier: Unlicense OR MIT

// Package tab implements a clickable tab bound to a value.
package tab

import (
	"image/color"

	"awkit.org/f32"
	"awkit.org/io/clipboard"
	"awkit.org/io/event"
	"awkit.org/io/pointer"
	"awkit.org/layout"
	"awkit.org/op"
	"awkit.org/style"
	"awkit.org/widget"
)

// Position is the edge an indicator is drawn along.
type Position uint8

const (
	Top Position = iota
	Bottom
	Left
	Right
)

// Indicator is a strip drawn along an edge of the selected tab.
type Indicator struct {
	Position Position
	// Offset is the distance from the start of the edge.
	Offset float32
	// Length is the length of the strip. Zero spans the rest of the
	// edge.
	Length    float32
	Thickness float32
}

// Style is the appearance of a tab. A selected tab uses the Pressed
// style.
type Style struct {
	Background color.NRGBA
	Text       color.NRGBA
	Indicator  color.NRGBA
	Border     op.Border
}

type defaultStyle struct{}

// DefaultStyle marks the selected tab with a primary indicator.
var DefaultStyle style.Sheet[Style] = defaultStyle{}

func (defaultStyle) Active() Style {
	return Style{Background: style.Transparent, Text: style.Gray, Indicator: style.Primary}
}

func (s defaultStyle) Hovered() Style {
	st := s.Active()
	st.Background = style.RGB(0xf0f0f0)
	st.Text = style.Black
	return st
}

func (s defaultStyle) Pressed() Style {
	st := s.Active()
	st.Text = style.Primary
	return st
}

func (s defaultStyle) Disabled() Style {
	st := s.Active()
	st.Text = style.LightGray
	return st
}

// Tab shows content and publishes OnClick of its value when pressed.
// It is selected when its value equals the selected value.
type Tab[T comparable, M any] struct {
	widget.Sizing
	value, selected      T
	onClick              func(T) M
	content              widget.Widget[M]
	padding              float32
	minWidth, maxWidth   float32
	minHeight, maxHeight float32
	indicator            *Indicator
	style                style.Sheet[Style]
}

// New returns a tab for value.
func New[T comparable, M any](value, selected T, onClick func(T) M, content widget.Widget[M]) Tab[T, M] {
	return Tab[T, M]{
		value:    value,
		selected: selected,
		onClick:  onClick,
		content:  content,
		padding:  8,
		style:    DefaultStyle,
	}
}

// Padding sets the space around the content.
func (t Tab[T, M]) Padding(p float32) Tab[T, M] {
	t.padding = max(p, 0)
	return t
}

// MinWidth sets the minimum width.
func (t Tab[T, M]) MinWidth(w float32) Tab[T, M] {
	t.minWidth = w
	return t
}

// MaxWidth sets the maximum width.
func (t Tab[T, M]) MaxWidth(w float32) Tab[T, M] {
	t.maxWidth = w
	return t
}

// MinHeight sets the minimum height.
func (t Tab[T, M]) MinHeight(h float32) Tab[T, M] {
	t.minHeight = h
	return t
}

// MaxHeight sets the maximum height.
func (t Tab[T, M]) MaxHeight(h float32) Tab[T, M] {
	t.maxHeight = h
	return t
}

// Indicator draws ind on the tab while selected. A zero thickness
// is 2.
func (t Tab[T, M]) Indicator(ind Indicator) Tab[T, M] {
	if ind.Thickness <= 0 {
		ind.Thickness = 2
	}
	t.indicator = &ind
	return t
}

// Style sets the style.
func (t Tab[T, M]) Style(s style.Sheet[Style]) Tab[T, M] {
	t.style = s
	return t
}

// Selected reports whether the tab is the selected one.
func (t Tab[T, M]) Selected() bool {
	return t.value == t.selected
}

func (t Tab[T, M]) Layout(r widget.Renderer, l layout.Limits) layout.Node {
	l = l.Width(t.W).Height(t.H)
	if t.maxWidth > 0 {
		l = l.MaxWidth(t.maxWidth)
	}
	if t.maxHeight > 0 {
		l = l.MaxHeight(t.maxHeight)
	}
	l = l.MinWidth(t.minWidth).MinHeight(t.minHeight)
	if t.content == nil {
		return layout.NewNode(l.Resolve(f32.Size{}.Pad(t.padding)))
	}
	n := t.content.Layout(r, l.Pad(t.padding).Loose())
	size := l.Resolve(n.Size().Pad(t.padding))
	n.Move(f32.Pt(t.padding, t.padding))
	n.Align(layout.Middle, layout.Middle, f32.Sz(size.Width-2*t.padding, size.Height-2*t.padding))
	return layout.WithChildren(size, []layout.Node{n})
}

func (t Tab[T, M]) Hash(h *widget.Hasher) {
	h.String("tab")
	h.Float(t.padding)
	h.Float(t.minWidth)
	h.Float(t.maxWidth)
	h.Float(t.minHeight)
	h.Float(t.maxHeight)
	t.Sizing.Hash(h)
	if t.content != nil {
		t.content.Hash(h)
	}
}

// strip returns the bounds of the indicator in b.
func (ind Indicator) strip(b f32.Rectangle) f32.Rectangle {
	length := func(edge float32) float32 {
		l := edge - ind.Offset
		if ind.Length > 0 {
			l = min(ind.Length, l)
		}
		return max(l, 0)
	}
	switch ind.Position {
	case Bottom:
		x := b.Min.X + ind.Offset
		return f32.Rect(x, b.Max.Y-ind.Thickness, x+length(b.Dx()), b.Max.Y)
	case Left:
		y := b.Min.Y + ind.Offset
		return f32.Rect(b.Min.X, y, b.Min.X+ind.Thickness, y+length(b.Dy()))
	case Right:
		y := b.Min.Y + ind.Offset
		return f32.Rect(b.Max.X-ind.Thickness, y, b.Max.X, y+length(b.Dy()))
	default:
		x := b.Min.X + ind.Offset
		return f32.Rect(x, b.Min.Y, x+length(b.Dx()), b.Min.Y+ind.Thickness)
	}
}

func (t Tab[T, M]) Draw(r widget.Renderer, d widget.Defaults, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) (op.Primitive, pointer.Cursor) {
	sheet := t.style
	if sheet == nil {
		sheet = DefaultStyle
	}
	b := l.Bounds()
	hovered := b.Contains(cursor)
	s := style.Resolve(sheet, style.Of(hovered, t.Selected(), false))
	var g op.Group
	if !op.Transparent(s.Background) || s.Border.Width > 0 {
		g = g.Add(op.Quad{Bounds: b, Background: s.Background, Border: s.Border})
	}
	if t.content != nil {
		d.TextColor = s.Text
		p, _ := t.content.Draw(r, d, l.Child(0), cursor, viewport)
		g = g.Add(p)
	}
	if t.indicator != nil && t.Selected() {
		g = g.Add(op.Quad{Bounds: t.indicator.strip(b), Background: s.Indicator})
	}
	c := pointer.CursorDefault
	if hovered {
		c = pointer.CursorPointer
	}
	return op.Simplify(g), c
}

func (t Tab[T, M]) OnEvent(e event.Event, l layout.Layout, cursor f32.Point, r widget.Renderer, cb clipboard.Clipboard, sh *widget.Shell[M]) event.Status {
	if pe, ok := e.(pointer.Event); ok && pe.Pressed() && l.Bounds().Contains(cursor) {
		if t.onClick != nil {
			sh.Publish(t.onClick(t.value))
		}
		return event.Captured
	}
	return event.Ignored
}
