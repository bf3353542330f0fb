// SPDX-License-Identifier: Unlicense OR MIT

// Package outline implements a bordered button whose colours invert
// while pressed.
package outline

import (
	"image/color"

	"awkit.org/f32"
	"awkit.org/gesture"
	"awkit.org/io/clipboard"
	"awkit.org/io/event"
	"awkit.org/io/pointer"
	"awkit.org/layout"
	"awkit.org/op"
	"awkit.org/style"
	"awkit.org/widget"
)

// State is the persistent state of a button.
type State struct {
	click gesture.Click
}

// Pressed reports whether the button is held down.
func (s *State) Pressed() bool {
	return s.click.Pressed()
}

// Style is the appearance of an outline button. While pressed,
// Foreground and Background are swapped.
type Style struct {
	Foreground color.NRGBA
	Background color.NRGBA
	Border     op.Border
}

type defaultStyle struct{}

// DefaultStyle is a primary outline on white.
var DefaultStyle style.Sheet[Style] = defaultStyle{}

func (defaultStyle) Active() Style {
	return Style{
		Foreground: style.Primary,
		Background: style.White,
		Border:     op.Border{Radius: 4, Width: 1, Color: style.Primary},
	}
}

func (s defaultStyle) Hovered() Style {
	st := s.Active()
	st.Background = style.Mix(style.White, style.Primary, .1)
	return st
}

func (s defaultStyle) Pressed() Style {
	return s.Active()
}

func (s defaultStyle) Disabled() Style {
	st := s.Active()
	st.Foreground = style.Gray
	st.Border.Color = style.LightGray
	return st
}

// Button frames content with an outline. It publishes the OnPress
// message when a press inside is released inside. A button without a
// message is disabled.
type Button[M any] struct {
	widget.Sizing
	state     *State
	content   widget.Widget[M]
	onPress   M
	pressable bool
	padding   layout.Inset
	minWidth  float32
	minHeight float32
	style     style.Sheet[Style]
}

// New returns a button showing content.
func New[M any](state *State, content widget.Widget[M]) Button[M] {
	return Button[M]{
		state:   state,
		content: content,
		padding: layout.Inset{Top: 5, Right: 10, Bottom: 5, Left: 10},
		style:   DefaultStyle,
	}
}

// OnPress sets the message published on click and enables the button.
func (b Button[M]) OnPress(m M) Button[M] {
	b.onPress = m
	b.pressable = true
	return b
}

// Padding sets the space around the content.
func (b Button[M]) Padding(in layout.Inset) Button[M] {
	b.padding = in
	return b
}

// MinWidth sets the minimum width.
func (b Button[M]) MinWidth(w float32) Button[M] {
	b.minWidth = w
	return b
}

// MinHeight sets the minimum height.
func (b Button[M]) MinHeight(h float32) Button[M] {
	b.minHeight = h
	return b
}

// Style sets the style.
func (b Button[M]) Style(s style.Sheet[Style]) Button[M] {
	b.style = s
	return b
}

func (b Button[M]) Layout(r widget.Renderer, l layout.Limits) layout.Node {
	l = l.Width(b.W).Height(b.H).MinWidth(b.minWidth).MinHeight(b.minHeight)
	n := b.content.Layout(r, l.Inset(b.padding).Loose())
	size := l.Resolve(b.padding.Expand(n.Size()))
	n.Move(b.padding.Offset())
	inner := f32.Sz(size.Width-b.padding.Horizontal(), size.Height-b.padding.Vertical())
	n.Align(layout.Middle, layout.Middle, inner)
	return layout.WithChildren(size, []layout.Node{n})
}

func (b Button[M]) Hash(h *widget.Hasher) {
	h.String("outline")
	h.Float(b.padding.Top)
	h.Float(b.padding.Right)
	h.Float(b.padding.Bottom)
	h.Float(b.padding.Left)
	h.Float(b.minWidth)
	h.Float(b.minHeight)
	b.Sizing.Hash(h)
	b.content.Hash(h)
}

// status resolves the style status. A button without state is inert
// and draws as active.
func (b Button[M]) status(l layout.Layout, cursor f32.Point) style.Status {
	if b.state == nil {
		return style.Of(false, false, !b.pressable)
	}
	hovered := l.Bounds().Contains(cursor)
	return style.Of(hovered, b.state.Pressed(), !b.pressable)
}

func (b Button[M]) Draw(r widget.Renderer, d widget.Defaults, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) (op.Primitive, pointer.Cursor) {
	sheet := b.style
	if sheet == nil {
		sheet = DefaultStyle
	}
	st := b.status(l, cursor)
	s := style.Resolve(sheet, st)
	if st == style.Pressed {
		s.Foreground, s.Background = s.Background, s.Foreground
	}
	d.TextColor = s.Foreground
	content, _ := b.content.Draw(r, d, l.Child(0), cursor, viewport)
	g := op.Group{op.Quad{Bounds: l.Bounds(), Background: s.Background, Border: s.Border}}.Add(content)
	c := pointer.CursorDefault
	switch {
	case st == style.Disabled && l.Bounds().Contains(cursor):
		c = pointer.CursorNotAllowed
	case st != style.Active && st != style.Disabled:
		c = pointer.CursorPointer
	}
	return g, c
}

func (b Button[M]) OnEvent(e event.Event, l layout.Layout, cursor f32.Point, r widget.Renderer, cb clipboard.Clipboard, sh *widget.Shell[M]) event.Status {
	pe, ok := e.(pointer.Event)
	if !ok || !b.pressable || b.state == nil {
		return event.Ignored
	}
	switch b.state.click.Update(pe, l.Bounds().Contains(cursor)) {
	case gesture.KindClick:
		sh.Publish(b.onPress)
		return event.Captured
	case gesture.KindPress, gesture.KindCancel:
		return event.Captured
	}
	return event.Ignored
}
