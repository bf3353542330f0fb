// SPDX-License-Identifier: Unlicense OR MIT

// Package widgettest provides a deterministic renderer and event
// helpers for widget tests.
package widgettest

import (
	"strings"
	"unicode/utf8"

	"awkit.org/f32"
	"awkit.org/font"
	"awkit.org/io/clipboard"
	"awkit.org/io/event"
	"awkit.org/io/key"
	"awkit.org/io/pointer"
	"awkit.org/layout"
	"awkit.org/op"
	"awkit.org/widget"
)

// Renderer measures every rune as half the text size wide and every
// line as the text size tall. Text is never wrapped.
type Renderer struct {
	// TextSize is the default text size. Zero means 10.
	TextSize float32
}

func (r Renderer) DefaultTextSize() float32 {
	if r.TextSize > 0 {
		return r.TextSize
	}
	return 10
}

func (r Renderer) Measure(s string, size float32, f font.Font, bounds f32.Size) f32.Size {
	if size <= 0 {
		size = r.DefaultTextSize()
	}
	var w float32
	lines := strings.Split(s, "\n")
	for _, l := range lines {
		w = max(w, float32(utf8.RuneCountInString(l))*size/2)
	}
	return f32.Sz(w, float32(len(lines))*size)
}

// Harness lays out a widget once and feeds it events.
type Harness[M any] struct {
	Renderer  Renderer
	Clipboard clipboard.Buffer
	Shell     widget.Shell[M]
	Cursor    f32.Point
	Node      layout.Node
	w         widget.Widget[M]
	limits    layout.Limits
}

// New lays out w within the loose limits of max.
func New[M any](w widget.Widget[M], max f32.Size) *Harness[M] {
	h := &Harness[M]{limits: layout.NewLimits(f32.Size{}, max)}
	h.Rebuild(w)
	return h
}

// Rebuild replaces the widget and lays it out again, as a host does
// after the application updates.
func (h *Harness[M]) Rebuild(w widget.Widget[M]) {
	h.w = w
	h.Node = w.Layout(h.Renderer, h.limits)
}

// Layout returns the current layout placed at the origin.
func (h *Harness[M]) Layout() layout.Layout {
	return layout.Place(&h.Node, f32.Point{})
}

// Send dispatches e to the widget. Pointer events move the cursor.
func (h *Harness[M]) Send(e event.Event) event.Status {
	if pe, ok := e.(pointer.Event); ok {
		h.Cursor = pe.Position
	}
	return h.w.OnEvent(e, h.Layout(), h.Cursor, h.Renderer, &h.Clipboard, &h.Shell)
}

// Click presses and releases the primary button at p.
func (h *Harness[M]) Click(p f32.Point) event.Status {
	st := h.Send(Press(p))
	return st.Merge(h.Send(Release(p)))
}

// Draw draws the widget with the default text colour.
func (h *Harness[M]) Draw() (op.Primitive, pointer.Cursor) {
	return h.w.Draw(h.Renderer, widget.DefaultDefaults, h.Layout(), h.Cursor, h.Node.Bounds())
}

// Messages returns the published messages and resets the shell.
func (h *Harness[M]) Messages() []M {
	ms := append([]M(nil), h.Shell.Messages()...)
	h.Shell.Reset()
	return ms
}

// Press returns a primary button press at p.
func Press(p f32.Point) pointer.Event {
	return pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonPrimary, Position: p}
}

// Release returns a primary button release at p.
func Release(p f32.Point) pointer.Event {
	return pointer.Event{Kind: pointer.Release, Buttons: pointer.ButtonPrimary, Position: p}
}

// Move returns a pointer move to p.
func Move(p f32.Point) pointer.Event {
	return pointer.Event{Kind: pointer.Move, Position: p}
}

// Scroll returns a wheel event at p scrolling dy lines.
func Scroll(p f32.Point, dy float32) pointer.Event {
	return pointer.Event{Kind: pointer.Scroll, Position: p, Scroll: f32.Pt(0, dy)}
}

// Key returns a key press.
func Key(n key.Name, mods key.Modifiers) key.Event {
	return key.Event{Name: n, Modifiers: mods, State: key.Press}
}

// Chars returns one CharEvent per rune of s.
func Chars(s string) []event.Event {
	var es []event.Event
	for _, r := range s {
		es = append(es, key.CharEvent{Rune: r})
	}
	return es
}

// Primitives flattens p into its non-group primitives.
func Primitives(p op.Primitive) []op.Primitive {
	var ps []op.Primitive
	op.Walk(p, func(p op.Primitive) {
		ps = append(ps, p)
	})
	return ps
}

// Texts returns the text primitives in p.
func Texts(p op.Primitive) []op.Text {
	var ts []op.Text
	for _, p := range Primitives(p) {
		if t, ok := p.(op.Text); ok {
			ts = append(ts, t)
		}
	}
	return ts
}

// Quads returns the quad primitives in p.
func Quads(p op.Primitive) []op.Quad {
	var qs []op.Quad
	for _, p := range Primitives(p) {
		if q, ok := p.(op.Quad); ok {
			qs = append(qs, q)
		}
	}
	return qs
}
