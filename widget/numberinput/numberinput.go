// SPDX-License-Identifier: Unlicense OR MIT

/*
Package numberinput implements a numeric text field with buttons to
step its value.

The input wraps a textinput.TextInput and draws two modifier buttons
over its trailing edge: a column of ▲ and ▼ buttons, or a row of + and
− buttons when the padding is too small to stack them. While focused,
the up and down arrow keys step the value and the mouse wheel does the
same while the pointer is over the input.

Typed text is only accepted while it parses to a value within bounds.
An emptied field keeps the current value until the user types again
or commits with enter.
*/
package numberinput

import (
	"image/color"

	"awkit.org/f32"
	"awkit.org/font"
	"awkit.org/internal/numeric"
	"awkit.org/io/clipboard"
	"awkit.org/io/event"
	"awkit.org/io/key"
	"awkit.org/io/pointer"
	"awkit.org/layout"
	"awkit.org/op"
	"awkit.org/style"
	"awkit.org/widget"
	"awkit.org/widget/textinput"
)

// Number is the set of value types.
type Number = numeric.Number

// RowThreshold is the padding below which the modifier buttons are
// laid out in a row.
const RowThreshold = 5

type modifier uint8

const (
	idle modifier = iota
	incPressed
	decPressed
)

// State is the persistent state of a number input.
type State struct {
	Input   textinput.State
	pressed modifier
	// draft is the text being edited while editing is set.
	draft   string
	editing bool
}

// Style is the appearance of a modifier button.
type Style struct {
	Background color.NRGBA
	Border     op.Border
	Icon       color.NRGBA
}

type defaultStyle struct{}

// DefaultStyle draws plain buttons with a primary coloured icon.
var DefaultStyle style.Sheet[Style] = defaultStyle{}

func (defaultStyle) Active() Style {
	return Style{Background: style.Transparent, Icon: style.Primary}
}

func (s defaultStyle) Hovered() Style {
	st := s.Active()
	st.Background = style.MulAlpha(style.Primary, 0x20)
	return st
}

func (s defaultStyle) Pressed() Style {
	st := s.Active()
	st.Background = style.MulAlpha(style.Primary, 0x40)
	return st
}

func (s defaultStyle) Disabled() Style {
	st := s.Active()
	st.Icon = style.LightGray
	return st
}

// NumberInput is a text field for values of type T.
type NumberInput[T Number, M any] struct {
	widget.Sizing
	state      *State
	value      T
	min, max   T
	step       T
	onChange   func(T) M
	onSubmit   M
	hasSubmit  bool
	padding    float32
	size       float32
	font       font.Font
	maxWidth   float32
	style      style.Sheet[Style]
	inputStyle style.Sheet[textinput.Style]
}

// New returns an input for value bounded by [0, max], stepping by
// one. Every change is published as onChange of the new value.
func New[T Number, M any](state *State, value, max T, onChange func(T) M) NumberInput[T, M] {
	return NumberInput[T, M]{
		state:    state,
		value:    value,
		max:      max,
		step:     1,
		onChange: onChange,
		padding:  5,
		style:    DefaultStyle,
	}
}

// Step sets the step of the buttons and keys. Non-positive steps are
// ignored.
func (n NumberInput[T, M]) Step(step T) NumberInput[T, M] {
	if step > 0 {
		n.step = step
	}
	return n
}

// Bounds sets the closed range of the value. It is ignored when min
// exceeds max.
func (n NumberInput[T, M]) Bounds(min, max T) NumberInput[T, M] {
	if min <= max {
		n.min, n.max = min, max
	}
	return n
}

// Padding sets the padding of the text field.
func (n NumberInput[T, M]) Padding(p float32) NumberInput[T, M] {
	n.padding = max(p, 0)
	return n
}

// Size sets the text size.
func (n NumberInput[T, M]) Size(s float32) NumberInput[T, M] {
	n.size = s
	return n
}

// Font sets the text font.
func (n NumberInput[T, M]) Font(f font.Font) NumberInput[T, M] {
	n.font = f
	return n
}

// MaxWidth caps the width.
func (n NumberInput[T, M]) MaxWidth(w float32) NumberInput[T, M] {
	n.maxWidth = w
	return n
}

// OnSubmit sets the message published when the user presses enter.
func (n NumberInput[T, M]) OnSubmit(m M) NumberInput[T, M] {
	n.onSubmit, n.hasSubmit = m, true
	return n
}

// Style sets the style of the modifier buttons.
func (n NumberInput[T, M]) Style(s style.Sheet[Style]) NumberInput[T, M] {
	n.style = s
	return n
}

// InputStyle sets the style of the text field.
func (n NumberInput[T, M]) InputStyle(s style.Sheet[textinput.Style]) NumberInput[T, M] {
	n.inputStyle = s
	return n
}

// Value returns the value the input shows.
func (n NumberInput[T, M]) Value() T {
	return n.value
}

func (n NumberInput[T, M]) text() string {
	if n.state != nil && n.state.editing {
		return n.state.draft
	}
	return numeric.Format(n.value)
}

// accepts reports whether s may stand in the field.
func (n NumberInput[T, M]) accepts(s string) bool {
	switch s {
	case "":
		return true
	case "-":
		return n.min < 0
	}
	v, ok := numeric.Parse[T](s)
	return ok && n.min <= v && v <= n.max
}

func (n NumberInput[T, M]) input(reserve float32) textinput.TextInput[string] {
	var st *textinput.State
	if n.state != nil {
		st = &n.state.Input
	}
	in := textinput.New[string](st, "", n.text())
	in.Sizing = n.Sizing
	in.OnInput = func(s string) string { return s }
	in.Accept = n.accepts
	in.Size = n.size
	in.Font = n.font
	in.Padding = n.padding
	in.Reserve = reserve
	if n.inputStyle != nil {
		in.Style = n.inputStyle
	}
	return in
}

func (n NumberInput[T, M]) rowMode() bool {
	return n.padding < RowThreshold
}

// modifiers returns the node of the modifier buttons for a field of
// height fh.
func (n NumberInput[T, M]) modifiers(r widget.Renderer, fh float32) layout.Node {
	s := widget.TextSize(r, n.size)
	if n.rowMode() {
		side := max(fh-2, 0)
		inc := layout.NewNode(f32.Sz(side, side))
		dec := layout.NewNode(f32.Sz(side, side))
		dec.Move(f32.Pt(side, 0))
		return layout.WithChildren(f32.Sz(2*side, side), []layout.Node{inc, dec})
	}
	bh := max(fh-2, 0) / 2
	inc := layout.NewNode(f32.Sz(s, bh))
	dec := layout.NewNode(f32.Sz(s, bh))
	dec.Move(f32.Pt(0, bh))
	return layout.WithChildren(f32.Sz(s, 2*bh), []layout.Node{inc, dec})
}

func (n NumberInput[T, M]) Layout(r widget.Renderer, l layout.Limits) layout.Node {
	if n.maxWidth > 0 {
		l = l.MaxWidth(n.maxWidth)
	}
	s := widget.TextSize(r, n.size)
	fh := r.Measure("", s, n.font, f32.Infinity).Height + 2*n.padding
	mods := n.modifiers(r, fh)
	field := n.input(mods.Size().Width).Layout(r, l)
	fs := field.Size()
	mods.Move(f32.Pt(fs.Width-mods.Size().Width-1, (fs.Height-mods.Size().Height)/2))
	return layout.WithChildren(fs, []layout.Node{field, mods})
}

func (n NumberInput[T, M]) Hash(h *widget.Hasher) {
	h.String("numberinput")
	h.String(n.text())
	h.Float(n.padding)
	h.Float(n.size)
	h.Float(n.maxWidth)
	h.Font(n.font)
	n.Sizing.Hash(h)
}

func (n NumberInput[T, M]) canInc() bool { return n.value < n.max }
func (n NumberInput[T, M]) canDec() bool { return n.value > n.min }

func (n NumberInput[T, M]) Draw(r widget.Renderer, d widget.Defaults, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) (op.Primitive, pointer.Cursor) {
	mods := l.Child(1)
	field, c := n.input(mods.Bounds().Dx()).Draw(r, d, l.Child(0), cursor, viewport)
	g := op.Group{field}
	sheet := n.style
	if sheet == nil {
		sheet = DefaultStyle
	}
	pressed := idle
	if n.state != nil {
		pressed = n.state.pressed
	}
	inc, dec := "▲", "▼"
	if n.rowMode() {
		inc, dec = "+", "−"
	}
	size := widget.TextSize(r, n.size)
	if !n.rowMode() {
		size /= 2
	}
	buttons := []struct {
		glyph   string
		enabled bool
		m       modifier
	}{
		{inc, n.canInc(), incPressed},
		{dec, n.canDec(), decPressed},
	}
	for i, b := range buttons {
		bl := mods.Child(i)
		bounds := bl.Bounds()
		if bounds.Empty() {
			continue
		}
		hovered := bounds.Contains(cursor)
		s := style.Resolve(sheet, style.Of(hovered, pressed == b.m, !b.enabled))
		g = g.Add(
			op.Quad{Bounds: bounds, Background: s.Background, Border: s.Border},
			op.Text{Content: b.glyph, Bounds: bounds, Color: s.Icon, Size: size, Horizontal: op.AlignMiddle, Vertical: op.AlignMiddle},
		)
		if hovered {
			c = pointer.CursorPointer
			if !b.enabled {
				c = pointer.CursorNotAllowed
			}
		}
	}
	return g, c
}

// change publishes the stepped value if it differs from the current
// one.
func (n NumberInput[T, M]) change(v T, sh *widget.Shell[M]) {
	if v == n.value {
		return
	}
	if n.state != nil {
		n.state.editing = false
	}
	sh.Publish(n.onChange(v))
}

func (n NumberInput[T, M]) increment(sh *widget.Shell[M]) {
	n.change(numeric.Inc(n.value, n.step, n.max), sh)
}

func (n NumberInput[T, M]) decrement(sh *widget.Shell[M]) {
	n.change(numeric.Dec(n.value, n.step, n.min), sh)
}

func (n NumberInput[T, M]) OnEvent(e event.Event, l layout.Layout, cursor f32.Point, r widget.Renderer, cb clipboard.Clipboard, sh *widget.Shell[M]) event.Status {
	st := n.state
	if st == nil {
		return event.Ignored
	}
	mods := l.Child(1)
	switch e := e.(type) {
	case pointer.Event:
		switch {
		case e.Pressed():
			if mods.Child(0).Bounds().Contains(cursor) {
				st.pressed = incPressed
				n.increment(sh)
				return event.Captured
			}
			if mods.Child(1).Bounds().Contains(cursor) {
				st.pressed = decPressed
				n.decrement(sh)
				return event.Captured
			}
		case e.Released():
			if st.pressed == idle {
				break
			}
			region := mods.Child(0)
			if st.pressed == decPressed {
				region = mods.Child(1)
			}
			// Releasing elsewhere cancels the press and leaves the
			// event to the field.
			st.pressed = idle
			if region.Bounds().Contains(cursor) {
				return event.Captured
			}
		case e.Kind == pointer.Scroll:
			if !l.Bounds().Contains(cursor) || e.Scroll.Y == 0 {
				return event.Ignored
			}
			if e.Scroll.Y < 0 {
				n.increment(sh)
			} else {
				n.decrement(sh)
			}
			return event.Captured
		}
	case key.Event:
		if !st.Input.Focused() || e.State != key.Press {
			break
		}
		switch e.Name {
		case key.NameUpArrow:
			n.increment(sh)
			return event.Captured
		case key.NameDownArrow:
			n.decrement(sh)
			return event.Captured
		case key.NameReturn, key.NameEnter:
			st.editing = false
			if n.hasSubmit {
				sh.Publish(n.onSubmit)
			}
			return event.Captured
		}
	case key.CharEvent:
		if folded := []rune(numeric.Fold(string(e.Rune))); len(folded) == 1 {
			e.Rune = folded[0]
		}
		return n.edit(e, l, cursor, r, cb, sh)
	}
	return n.edit(e, l, cursor, r, cb, sh)
}

// edit forwards e to the text field and turns accepted edits into
// value changes.
func (n NumberInput[T, M]) edit(e event.Event, l layout.Layout, cursor f32.Point, r widget.Renderer, cb clipboard.Clipboard, sh *widget.Shell[M]) event.Status {
	st := n.state
	var edits widget.Shell[string]
	status := n.input(l.Child(1).Bounds().Dx()).OnEvent(e, l.Child(0), cursor, r, cb, &edits)
	for _, s := range edits.Messages() {
		st.draft, st.editing = s, true
		v, ok := numeric.Parse[T](s)
		if !ok || v == n.value {
			continue
		}
		sh.Publish(n.onChange(v))
		n.value = v
	}
	if !st.Input.Focused() {
		st.editing = false
	}
	return status
}
