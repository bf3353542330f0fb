// SPDX-License-Identifier: Unlicense OR MIT

// Package card implements a framed container with a header, a body
// and an optional footer.
package card

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

// CloseGlyph is drawn in the header of closable cards.
const CloseGlyph = "✕"

// State is the persistent state of a card.
type State struct {
	click gesture.Click
}

// Style is the appearance of a card.
type Style struct {
	Background       color.NRGBA
	Border           op.Border
	Shadow           op.Shadow
	HeaderBackground color.NRGBA
	HeaderText       color.NRGBA
	BodyText         color.NRGBA
	FooterBackground color.NRGBA
	FooterText       color.NRGBA
	Close            color.NRGBA
}

type defaultStyle struct{}

// DefaultStyle is a white card with a soft shadow.
var DefaultStyle style.Sheet[Style] = defaultStyle{}

func (defaultStyle) Active() Style {
	return Style{
		Background:       style.White,
		Border:           op.Border{Radius: 4, Width: 1, Color: style.LightGray},
		Shadow:           op.Shadow{Offset: f32.Pt(0, 2), Color: style.ARGB(0x30000000)},
		HeaderBackground: style.RGB(0xf4f4f4),
		HeaderText:       style.Black,
		BodyText:         style.Black,
		FooterBackground: style.RGB(0xf4f4f4),
		FooterText:       style.Gray,
		Close:            style.Gray,
	}
}

func (s defaultStyle) Hovered() Style {
	st := s.Active()
	st.Shadow.Offset = f32.Pt(0, 4)
	st.Close = style.Black
	return st
}

func (s defaultStyle) Pressed() Style {
	st := s.Active()
	st.Shadow.Offset = f32.Pt(0, 1)
	return st
}

func (s defaultStyle) Disabled() Style {
	st := s.Active()
	st.HeaderText = style.Gray
	st.BodyText = style.Gray
	return st
}

// Card frames a header, a body and an optional footer. Clicking the
// card publishes the OnPressed message.
type Card[M any] struct {
	widget.Sizing
	state                *State
	header, body, footer widget.Widget[M]
	padding              float32
	margin               float32
	minWidth, maxWidth   float32
	minHeight, maxHeight float32
	onPressed, onClose   M
	pressable, closable  bool
	textSize             float32
	style                style.Sheet[Style]
}

const (
	headerSection = iota
	bodySection
	footerSection
)

// New returns a card. The header may be nil.
func New[M any](state *State, header, body widget.Widget[M]) Card[M] {
	return Card[M]{
		state:   state,
		header:  header,
		body:    body,
		padding: 10,
		style:   DefaultStyle,
	}
}

// Footer sets the footer.
func (c Card[M]) Footer(w widget.Widget[M]) Card[M] {
	c.footer = w
	return c
}

// Padding sets the padding of each section.
func (c Card[M]) Padding(p float32) Card[M] {
	c.padding = max(p, 0)
	return c
}

// Margin sets the space around the card frame.
func (c Card[M]) Margin(m float32) Card[M] {
	c.margin = max(m, 0)
	return c
}

// MinWidth sets the minimum width of the card.
func (c Card[M]) MinWidth(w float32) Card[M] {
	c.minWidth = w
	return c
}

// MaxWidth sets the maximum width of the card.
func (c Card[M]) MaxWidth(w float32) Card[M] {
	c.maxWidth = w
	return c
}

// MinHeight sets the minimum height of the card.
func (c Card[M]) MinHeight(h float32) Card[M] {
	c.minHeight = h
	return c
}

// MaxHeight sets the maximum height of the card.
func (c Card[M]) MaxHeight(h float32) Card[M] {
	c.maxHeight = h
	return c
}

// OnPressed sets the message published when the card is clicked.
func (c Card[M]) OnPressed(m M) Card[M] {
	c.onPressed, c.pressable = m, true
	return c
}

// OnClose adds a close button to the header publishing m.
func (c Card[M]) OnClose(m M) Card[M] {
	c.onClose, c.closable = m, true
	return c
}

// CloseSize sets the size of the close glyph.
func (c Card[M]) CloseSize(s float32) Card[M] {
	c.textSize = s
	return c
}

// Style sets the style.
func (c Card[M]) Style(s style.Sheet[Style]) Card[M] {
	c.style = s
	return c
}

func (c Card[M]) sections() [3]widget.Widget[M] {
	return [3]widget.Widget[M]{c.header, c.body, c.footer}
}

func (c Card[M]) limits(l layout.Limits) layout.Limits {
	l = l.Width(c.W).Height(c.H)
	if c.maxWidth > 0 {
		l = l.MaxWidth(c.maxWidth)
	}
	if c.maxHeight > 0 {
		l = l.MaxHeight(c.maxHeight)
	}
	return l.MinWidth(c.minWidth).MinHeight(c.minHeight)
}

// Layout returns a node with the three sections as children, in
// order. Missing sections have empty nodes. The header section has
// the close button as second child.
func (c Card[M]) Layout(r widget.Renderer, l layout.Limits) layout.Node {
	l = c.limits(l)
	frame := l.Pad(c.margin)
	cl := frame.Pad(c.padding).Loose()
	closeSize := widget.TextSize(r, c.textSize)
	var nodes [3]layout.Node
	var width, height float32
	for i, w := range c.sections() {
		if w == nil {
			continue
		}
		n := w.Layout(r, cl)
		n.Move(f32.Pt(c.padding, c.padding))
		sz := n.Size().Pad(c.padding)
		children := []layout.Node{n}
		if i == headerSection && c.closable {
			sz.Width += closeSize + c.padding
			sz.Height = max(sz.Height, closeSize+2*c.padding)
			children = append(children, layout.NewNode(f32.Sz(closeSize, closeSize)))
		}
		nodes[i] = layout.WithChildren(sz, children)
		width = max(width, sz.Width)
		height += sz.Height
	}
	inner := frame.Resolve(f32.Sz(width, height))
	y := c.margin
	for i := range nodes {
		n := &nodes[i]
		if c.sections()[i] == nil {
			n.Move(f32.Pt(c.margin, y))
			continue
		}
		h := n.Size().Height
		if i == bodySection {
			// The body takes the height the limits add.
			h += inner.Height - height
		}
		n.Resize(f32.Sz(inner.Width, h))
		n.Move(f32.Pt(c.margin, y))
		if i == headerSection && c.closable {
			cb := &n.Children()[1]
			cb.Move(f32.Pt(inner.Width-c.padding-closeSize, (h-closeSize)/2))
		}
		y += h
	}
	return layout.WithChildren(inner.Pad(c.margin), nodes[:])
}

func (c Card[M]) Hash(h *widget.Hasher) {
	h.String("card")
	h.Float(c.padding)
	h.Float(c.margin)
	h.Float(c.minWidth)
	h.Float(c.maxWidth)
	h.Float(c.minHeight)
	h.Float(c.maxHeight)
	h.Bool(c.closable)
	h.Float(c.textSize)
	c.Sizing.Hash(h)
	for _, w := range c.sections() {
		h.Bool(w != nil)
		if w != nil {
			w.Hash(h)
		}
	}
}

func (c Card[M]) frame(l layout.Layout) f32.Rectangle {
	return l.Bounds().Inset(c.margin)
}

func (c Card[M]) closeBounds(l layout.Layout) f32.Rectangle {
	if !c.closable {
		return f32.Rectangle{}
	}
	return l.Child(headerSection).Child(1).Bounds()
}

func (c Card[M]) Draw(r widget.Renderer, d widget.Defaults, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) (op.Primitive, pointer.Cursor) {
	sheet := c.style
	if sheet == nil {
		sheet = DefaultStyle
	}
	frame := c.frame(l)
	hovered := c.pressable && frame.Contains(cursor)
	pressed := c.state != nil && c.state.click.Pressed()
	s := style.Resolve(sheet, style.Of(hovered, pressed, false))
	g := op.Group{op.Quad{Bounds: frame, Background: s.Background, Border: s.Border, Shadow: s.Shadow}}
	cur := pointer.CursorDefault
	if hovered {
		cur = pointer.CursorPointer
	}
	colors := [3]color.NRGBA{s.HeaderText, s.BodyText, s.FooterText}
	backgrounds := [3]color.NRGBA{s.HeaderBackground, style.Transparent, s.FooterBackground}
	for i, w := range c.sections() {
		if w == nil {
			continue
		}
		sl := l.Child(i)
		if !op.Transparent(backgrounds[i]) {
			g = g.Add(op.Quad{Bounds: sl.Bounds(), Background: backgrounds[i], Border: op.Border{Radius: s.Border.Radius}})
		}
		dd := d
		if !op.Transparent(colors[i]) {
			dd.TextColor = colors[i]
		}
		p, cc := w.Draw(r, dd, sl.Child(0), cursor, viewport)
		g = g.Add(p)
		if sl.Child(0).Bounds().Contains(cursor) {
			cur = cc.Or(cur)
		}
	}
	if cb := c.closeBounds(l); c.closable {
		g = g.Add(op.Text{
			Content:    CloseGlyph,
			Bounds:     cb,
			Color:      s.Close,
			Size:       cb.Dy(),
			Horizontal: op.AlignMiddle,
			Vertical:   op.AlignMiddle,
		})
		if cb.Contains(cursor) {
			cur = pointer.CursorPointer
		}
	}
	return g, cur
}

func (c Card[M]) OnEvent(e event.Event, l layout.Layout, cursor f32.Point, r widget.Renderer, cb clipboard.Clipboard, sh *widget.Shell[M]) event.Status {
	if c.closable {
		if pe, ok := e.(pointer.Event); ok && pe.Pressed() && c.closeBounds(l).Contains(cursor) {
			sh.Publish(c.onClose)
			return event.Captured
		}
	}
	st := event.Ignored
	for i, w := range c.sections() {
		if w != nil {
			st = st.Merge(w.OnEvent(e, l.Child(i).Child(0), cursor, r, cb, sh))
		}
	}
	if st == event.Captured || !c.pressable || c.state == nil {
		return st
	}
	pe, ok := e.(pointer.Event)
	if !ok {
		return st
	}
	switch c.state.click.Update(pe, c.frame(l).Contains(cursor)) {
	case gesture.KindClick:
		sh.Publish(c.onPressed)
		return event.Captured
	case gesture.KindPress, gesture.KindCancel:
		return event.Captured
	}
	return st
}
