// SPDX-License-Identifier: Unlicense OR MIT

// Package textinput implements a single line text field.
package textinput

import (
	"image/color"
	"strings"
	"unicode"
	"unicode/utf8"

	"awkit.org/f32"
	"awkit.org/font"
	"awkit.org/io/clipboard"
	"awkit.org/io/event"
	"awkit.org/io/key"
	"awkit.org/io/pointer"
	"awkit.org/layout"
	"awkit.org/op"
	"awkit.org/style"
	"awkit.org/unit"
	"awkit.org/widget"
)

// State is the persistent state of a text input.
type State struct {
	focused  bool
	dragging bool
	// caret and anchor are rune offsets; the selection lies between
	// them.
	caret, anchor int
}

// TextInput is a single line text field. The application owns the
// value: edits are published through OnInput and show once the
// application passes the new value back.
type TextInput[M any] struct {
	widget.Sizing
	State       *State
	Value       string
	Placeholder string
	// OnInput maps an edited value to a message. A nil OnInput makes
	// the input read only.
	OnInput func(string) M
	// OnSubmit is published when the user presses enter.
	OnSubmit func(string) M
	// Accept filters edits. Edits for which it returns false are
	// dropped.
	Accept  func(string) bool
	Size    float32
	Font    font.Font
	Padding float32
	// Reserve is space kept free of text at the trailing edge, for
	// decorations drawn over the input.
	Reserve float32
	Style   style.Sheet[Style]
}

// Style is the appearance of a text input. A focused input uses the
// Pressed style.
type Style struct {
	Background  color.NRGBA
	Border      op.Border
	Text        color.NRGBA
	Placeholder color.NRGBA
	Selection   color.NRGBA
}

type defaultStyle struct{}

// DefaultStyle is a neutral light style.
var DefaultStyle style.Sheet[Style] = defaultStyle{}

func (defaultStyle) Active() Style {
	return Style{
		Background:  style.White,
		Border:      op.Border{Radius: 2, Width: 1, Color: style.LightGray},
		Text:        style.Black,
		Placeholder: style.Gray,
		Selection:   style.MulAlpha(style.Primary, 0x60),
	}
}

func (s defaultStyle) Hovered() Style {
	st := s.Active()
	st.Border.Color = style.Gray
	return st
}

func (s defaultStyle) Pressed() Style {
	st := s.Active()
	st.Border.Color = style.Primary
	return st
}

func (s defaultStyle) Disabled() Style {
	st := s.Active()
	st.Background = style.RGB(0xf0f0f0)
	st.Text = style.Gray
	return st
}

// New returns a filling text input.
func New[M any](state *State, placeholder, value string) TextInput[M] {
	return TextInput[M]{
		Sizing:      widget.Sizing{W: unit.Fill},
		State:       state,
		Value:       value,
		Placeholder: placeholder,
		Padding:     5,
		Style:       DefaultStyle,
	}
}

// Focused reports whether the input receives key events.
func (s *State) Focused() bool {
	return s.focused
}

// Focus gives the input keyboard focus and moves the caret to the
// end of its content on the next event.
func (s *State) Focus() {
	s.focused = true
	s.caret, s.anchor = -1, -1
}

// Blur removes keyboard focus.
func (s *State) Blur() {
	s.focused = false
	s.dragging = false
}

// MoveCaret places the caret at rune offset i and clears the
// selection.
func (s *State) MoveCaret(i int) {
	s.caret, s.anchor = i, i
}

// Selection returns the selected rune range, start first.
func (s *State) Selection() (start, end int) {
	return min(s.caret, s.anchor), max(s.caret, s.anchor)
}

// clamped returns s with the caret and anchor within n runes.
// Negative offsets mean the end.
func (s State) clamped(n int) State {
	fix := func(v int) int {
		if v < 0 || v > n {
			return n
		}
		return v
	}
	s.caret, s.anchor = fix(s.caret), fix(s.anchor)
	return s
}

func (t TextInput[M]) textSize(r widget.Renderer) float32 {
	return widget.TextSize(r, t.Size)
}

func (t TextInput[M]) Layout(r widget.Renderer, l layout.Limits) layout.Node {
	l = l.Width(t.W).Height(t.H)
	size := t.textSize(r)
	content := t.Value
	if content == "" {
		content = t.Placeholder
	}
	sz := r.Measure(content, size, t.Font, f32.Infinity)
	sz.Height = max(sz.Height, r.Measure("", size, t.Font, f32.Infinity).Height)
	sz.Width += t.Reserve
	return layout.NewNode(l.Resolve(sz.Pad(t.Padding)))
}

func (t TextInput[M]) Hash(h *widget.Hasher) {
	h.String("textinput")
	h.String(t.Value)
	h.String(t.Placeholder)
	h.Float(t.Size)
	h.Float(t.Padding)
	h.Float(t.Reserve)
	h.Font(t.Font)
	t.Sizing.Hash(h)
}

func (t TextInput[M]) status(l layout.Layout, cursor f32.Point) style.Status {
	focused := t.State != nil && t.State.focused
	return style.Of(l.Bounds().Contains(cursor), focused, t.OnInput == nil && !focused)
}

// offsetAt returns the rune offset nearest to x within the text.
func (t TextInput[M]) offsetAt(r widget.Renderer, x float32) int {
	runes := []rune(t.Value)
	size := t.textSize(r)
	prev := float32(0)
	for i := range runes {
		w := r.Measure(string(runes[:i+1]), size, t.Font, f32.Infinity).Width
		if x < (prev+w)/2 {
			return i
		}
		prev = w
	}
	return len(runes)
}

func (t TextInput[M]) advance(r widget.Renderer, i int) float32 {
	runes := []rune(t.Value)
	i = max(min(i, len(runes)), 0)
	return r.Measure(string(runes[:i]), t.textSize(r), t.Font, f32.Infinity).Width
}

func (t TextInput[M]) Draw(r widget.Renderer, d widget.Defaults, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) (op.Primitive, pointer.Cursor) {
	sheet := t.Style
	if sheet == nil {
		sheet = DefaultStyle
	}
	s := style.Resolve(sheet, t.status(l, cursor))
	b := l.Bounds()
	inner := b.Inset(t.Padding)
	inner.Max.X = max(inner.Max.X-t.Reserve, inner.Min.X)
	size := t.textSize(r)
	g := op.Group{op.Quad{Bounds: b, Background: s.Background, Border: s.Border}}
	var content op.Group
	if t.Value == "" {
		if t.Placeholder != "" {
			content = content.Add(op.Text{Content: t.Placeholder, Bounds: inner, Color: s.Placeholder, Size: size, Font: t.Font, Vertical: op.AlignMiddle})
		}
	} else {
		content = content.Add(op.Text{Content: t.Value, Bounds: inner, Color: s.Text, Size: size, Font: t.Font, Vertical: op.AlignMiddle})
	}
	if t.State != nil && t.State.focused {
		st := t.State.clamped(utf8.RuneCountInString(t.Value))
		start, end := st.Selection()
		x := inner.Min.X + t.advance(r, st.caret)
		if start != end {
			sel := f32.Rect(inner.Min.X+t.advance(r, start), inner.Min.Y, inner.Min.X+t.advance(r, end), inner.Max.Y)
			content = append(op.Group{op.Quad{Bounds: sel, Background: s.Selection}}, content...)
		}
		content = content.Add(op.Quad{Bounds: f32.Rect(x, inner.Min.Y, x+1, inner.Max.Y), Background: s.Text})
	}
	g = g.Add(op.Clip{Bounds: b, Content: op.Simplify(content)})
	c := pointer.CursorDefault
	if b.Contains(cursor) {
		c = pointer.CursorText
	}
	return g, c
}

func (t TextInput[M]) OnEvent(e event.Event, l layout.Layout, cursor f32.Point, r widget.Renderer, cb clipboard.Clipboard, sh *widget.Shell[M]) event.Status {
	st := t.State
	if st == nil {
		return event.Ignored
	}
	inner := l.Bounds().Inset(t.Padding)
	switch e := e.(type) {
	case pointer.Event:
		switch e.Kind {
		case pointer.Press:
			if !e.Buttons.Contain(pointer.ButtonPrimary) {
				return event.Ignored
			}
			if !l.Bounds().Contains(cursor) {
				st.Blur()
				return event.Ignored
			}
			st.focused, st.dragging = true, true
			i := t.offsetAt(r, cursor.X-inner.Min.X)
			st.caret = i
			if !e.Modifiers.Contain(key.ModShift) {
				st.anchor = i
			}
			return event.Captured
		case pointer.Move:
			if st.dragging {
				st.caret = t.offsetAt(r, cursor.X-inner.Min.X)
				return event.Captured
			}
		case pointer.Release:
			if st.dragging {
				st.dragging = false
				return event.Captured
			}
		}
	case key.CharEvent:
		if !st.focused || unicode.IsControl(e.Rune) {
			return event.Ignored
		}
		t.insert(string(e.Rune), sh)
		return event.Captured
	case key.Event:
		if !st.focused || e.State != key.Press {
			return event.Ignored
		}
		return t.command(e, cb, sh)
	}
	return event.Ignored
}

func (t TextInput[M]) command(e key.Event, cb clipboard.Clipboard, sh *widget.Shell[M]) event.Status {
	st := t.State
	runes := []rune(t.Value)
	*st = st.clamped(len(runes))
	start, end := st.Selection()
	shift := e.Modifiers.Contain(key.ModShift)
	move := func(i int) {
		st.caret = max(min(i, len(runes)), 0)
		if !shift {
			st.anchor = st.caret
		}
	}
	if e.Modifiers.Contain(key.ModShortcut) {
		switch e.Name {
		case "A":
			st.anchor, st.caret = 0, len(runes)
		case "C", "X":
			if start == end || cb == nil {
				return event.Ignored
			}
			cb.Write(string(runes[start:end]))
			if e.Name == "X" {
				t.edit(string(runes[:start])+string(runes[end:]), start, sh)
			}
		case "V":
			if cb == nil {
				return event.Ignored
			}
			if s, ok := cb.Read(); ok {
				t.insert(strings.Join(strings.Fields(s), " "), sh)
			}
		default:
			return event.Ignored
		}
		return event.Captured
	}
	switch e.Name {
	case key.NameLeftArrow:
		if start != end && !shift {
			move(start)
		} else {
			move(st.caret - 1)
		}
	case key.NameRightArrow:
		if start != end && !shift {
			move(end)
		} else {
			move(st.caret + 1)
		}
	case key.NameHome:
		move(0)
	case key.NameEnd:
		move(len(runes))
	case key.NameDeleteBackward:
		if start == end {
			if start == 0 {
				return event.Captured
			}
			start--
		}
		t.edit(string(runes[:start])+string(runes[end:]), start, sh)
	case key.NameDeleteForward:
		if start == end {
			if end == len(runes) {
				return event.Captured
			}
			end++
		}
		t.edit(string(runes[:start])+string(runes[end:]), start, sh)
	case key.NameReturn, key.NameEnter:
		if t.OnSubmit != nil {
			sh.Publish(t.OnSubmit(t.Value))
		}
	case key.NameEscape:
		st.Blur()
	default:
		return event.Ignored
	}
	return event.Captured
}

// insert replaces the selection with s.
func (t TextInput[M]) insert(s string, sh *widget.Shell[M]) {
	runes := []rune(t.Value)
	*t.State = t.State.clamped(len(runes))
	start, end := t.State.Selection()
	v := string(runes[:start]) + s + string(runes[end:])
	t.edit(v, start+utf8.RuneCountInString(s), sh)
}

func (t TextInput[M]) edit(v string, caret int, sh *widget.Shell[M]) {
	if t.OnInput == nil || v == t.Value {
		return
	}
	if t.Accept != nil && !t.Accept(v) {
		return
	}
	t.State.MoveCaret(caret)
	sh.Publish(t.OnInput(v))
}
