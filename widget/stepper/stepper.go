// SPDX-License-Identifier: Unlicense OR MIT

// Package stepper implements a value between a decrement and an
// increment button.
package stepper

import (
	"image/color"

	"awkit.org/f32"
	"awkit.org/font"
	"awkit.org/internal/numeric"
	"awkit.org/io/clipboard"
	"awkit.org/io/event"
	"awkit.org/io/pointer"
	"awkit.org/layout"
	"awkit.org/op"
	"awkit.org/style"
	"awkit.org/unit"
	"awkit.org/widget"
)

// Number is the set of value types.
type Number = numeric.Number

// State is the persistent state of a stepper.
type State struct {
	decPressed, incPressed bool
}

// Style is the appearance of a stepper button.
type Style struct {
	Background color.NRGBA
	Border     op.Border
	Text       color.NRGBA
}

type defaultStyle struct{}

// DefaultStyle draws primary coloured buttons.
var DefaultStyle style.Sheet[Style] = defaultStyle{}

func (defaultStyle) Active() Style {
	return Style{
		Background: style.Primary,
		Border:     op.Border{Radius: 2},
		Text:       style.White,
	}
}

func (s defaultStyle) Hovered() Style {
	st := s.Active()
	st.Background = style.Mix(style.Primary, style.White, .15)
	return st
}

func (s defaultStyle) Pressed() Style {
	st := s.Active()
	st.Background = style.Mix(style.Primary, style.Black, .2)
	return st
}

func (s defaultStyle) Disabled() Style {
	st := s.Active()
	st.Background = style.LightGray
	st.Text = style.Gray
	return st
}

// Stepper shows a value with − and + buttons. Stepping is clamped
// to the bounds and a button at its bound is disabled.
type Stepper[T Number, M any] struct {
	state      *State
	value      T
	step       T
	min, max   T
	onChange   func(T) M
	spacing    float32
	padding    float32
	valueWidth float32
	textSize   float32
	font       font.Font
	style      style.Sheet[Style]
}

// New returns a stepper for value within the full range of T,
// stepping by one.
func New[T Number, M any](state *State, value T, onChange func(T) M) Stepper[T, M] {
	s := Stepper[T, M]{
		state:    state,
		value:    value,
		step:     1,
		max:      numeric.Max[T](),
		onChange: onChange,
		spacing:  2,
		padding:  4,
		style:    DefaultStyle,
	}
	if numeric.Signed[T]() {
		s.min = -s.max
	}
	return s
}

// Step sets the step. Non-positive steps are ignored.
func (s Stepper[T, M]) Step(step T) Stepper[T, M] {
	if step > 0 {
		s.step = step
	}
	return s
}

// Min sets the lower bound. It is ignored when above the upper bound.
func (s Stepper[T, M]) Min(min T) Stepper[T, M] {
	if min <= s.max {
		s.min = min
	}
	return s
}

// Max sets the upper bound. It is ignored when below the lower bound.
func (s Stepper[T, M]) Max(max T) Stepper[T, M] {
	if max >= s.min {
		s.max = max
	}
	return s
}

// Spacing sets the gap between the cells.
func (s Stepper[T, M]) Spacing(v float32) Stepper[T, M] {
	s.spacing = max(v, 0)
	return s
}

// Padding sets the padding around the button glyphs.
func (s Stepper[T, M]) Padding(v float32) Stepper[T, M] {
	s.padding = max(v, 0)
	return s
}

// ValueWidth fixes the width of the value cell. Zero fits the text.
func (s Stepper[T, M]) ValueWidth(w float32) Stepper[T, M] {
	s.valueWidth = max(w, 0)
	return s
}

// TextSize sets the text size.
func (s Stepper[T, M]) TextSize(v float32) Stepper[T, M] {
	s.textSize = v
	return s
}

// Font sets the text font.
func (s Stepper[T, M]) Font(f font.Font) Stepper[T, M] {
	s.font = f
	return s
}

// Style sets the button style.
func (s Stepper[T, M]) Style(sheet style.Sheet[Style]) Stepper[T, M] {
	s.style = sheet
	return s
}

func (s Stepper[T, M]) Width() unit.Length  { return unit.Shrink }
func (s Stepper[T, M]) Height() unit.Length { return unit.Shrink }

func (s Stepper[T, M]) Layout(r widget.Renderer, l layout.Limits) layout.Node {
	size := widget.TextSize(r, s.textSize)
	side := size + 2*s.padding
	text := r.Measure(numeric.Format(s.value), size, s.font, f32.Infinity)
	vw := text.Width
	if s.valueWidth > 0 {
		vw = s.valueWidth
	}
	dec := layout.NewNode(f32.Sz(side, side))
	val := layout.NewNode(f32.Sz(vw, side))
	val.Move(f32.Pt(side+s.spacing, 0))
	inc := layout.NewNode(f32.Sz(side, side))
	inc.Move(f32.Pt(side+vw+2*s.spacing, 0))
	total := f32.Sz(2*side+vw+2*s.spacing, side)
	return layout.WithChildren(l.Resolve(total), []layout.Node{dec, val, inc})
}

func (s Stepper[T, M]) Hash(h *widget.Hasher) {
	h.String("stepper")
	h.String(numeric.Format(s.value))
	h.Float(s.spacing)
	h.Float(s.padding)
	h.Float(s.valueWidth)
	h.Float(s.textSize)
	h.Font(s.font)
}

func (s Stepper[T, M]) canDec() bool { return s.value > s.min }
func (s Stepper[T, M]) canInc() bool { return s.value < s.max }

func (s Stepper[T, M]) Draw(r widget.Renderer, d widget.Defaults, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) (op.Primitive, pointer.Cursor) {
	sheet := s.style
	if sheet == nil {
		sheet = DefaultStyle
	}
	var st State
	if s.state != nil {
		st = *s.state
	}
	size := widget.TextSize(r, s.textSize)
	c := pointer.CursorDefault
	var g op.Group
	button := func(bl layout.Layout, glyph string, enabled, pressed bool) {
		b := bl.Bounds()
		hovered := b.Contains(cursor)
		bs := style.Resolve(sheet, style.Of(hovered, pressed, !enabled))
		g = g.Add(
			op.Quad{Bounds: b, Background: bs.Background, Border: bs.Border},
			op.Text{Content: glyph, Bounds: b, Color: bs.Text, Size: size, Font: s.font, Horizontal: op.AlignMiddle, Vertical: op.AlignMiddle},
		)
		if hovered {
			c = pointer.CursorPointer
			if !enabled {
				c = pointer.CursorNotAllowed
			}
		}
	}
	button(l.Child(0), "−", s.canDec(), st.decPressed)
	g = g.Add(op.Text{
		Content:    numeric.Format(s.value),
		Bounds:     l.Child(1).Bounds(),
		Color:      d.TextColor,
		Size:       size,
		Font:       s.font,
		Horizontal: op.AlignMiddle,
		Vertical:   op.AlignMiddle,
	})
	button(l.Child(2), "+", s.canInc(), st.incPressed)
	return g, c
}

func (s Stepper[T, M]) OnEvent(e event.Event, l layout.Layout, cursor f32.Point, r widget.Renderer, cb clipboard.Clipboard, sh *widget.Shell[M]) event.Status {
	pe, ok := e.(pointer.Event)
	if !ok || s.state == nil {
		return event.Ignored
	}
	st := s.state
	switch {
	case pe.Pressed():
		switch {
		case l.Child(0).Bounds().Contains(cursor):
			if !s.canDec() {
				return event.Captured
			}
			st.decPressed = true
			s.publish(numeric.Dec(s.value, s.step, s.min), sh)
			return event.Captured
		case l.Child(2).Bounds().Contains(cursor):
			if !s.canInc() {
				return event.Captured
			}
			st.incPressed = true
			s.publish(numeric.Inc(s.value, s.step, s.max), sh)
			return event.Captured
		}
	case pe.Released():
		if st.decPressed || st.incPressed {
			st.decPressed, st.incPressed = false, false
			return event.Captured
		}
	}
	return event.Ignored
}

func (s Stepper[T, M]) publish(v T, sh *widget.Shell[M]) {
	if v != s.value {
		sh.Publish(s.onChange(v))
	}
}
