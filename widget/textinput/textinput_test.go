// SPDX-License-Identifier: Unlicense OR MIT

package textinput

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awkit.org/f32"
	"awkit.org/internal/widgettest"
	"awkit.org/io/event"
	"awkit.org/io/key"
	"awkit.org/op"
)

type edit struct {
	value  string
	submit bool
}

func newInput(st *State, value string) TextInput[edit] {
	in := New[edit](st, "type here", value)
	in.OnInput = func(s string) edit { return edit{value: s} }
	in.OnSubmit = func(s string) edit { return edit{value: s, submit: true} }
	return in
}

// typeInto sends events to h, rebuilding the widget with each
// published value as an application would.
func typeInto(h *widgettest.Harness[edit], st *State, es ...event.Event) string {
	value := ""
	for _, e := range es {
		h.Send(e)
		for _, m := range h.Messages() {
			value = m.value
			h.Rebuild(newInput(st, value))
		}
	}
	return value
}

func TestLayoutSize(t *testing.T) {
	st := new(State)
	h := widgettest.New[edit](newInput(st, ""), f32.Sz(200, 100))
	// Filling width, text height plus padding.
	assert.Equal(t, f32.Sz(200, 20), h.Node.Size())
}

func TestFocusAndType(t *testing.T) {
	st := new(State)
	h := widgettest.New[edit](newInput(st, ""), f32.Sz(200, 100))
	assert.Equal(t, event.Ignored, h.Send(key.CharEvent{Rune: 'a'}))
	assert.Equal(t, event.Captured, h.Send(widgettest.Press(f32.Pt(10, 10))))
	assert.True(t, st.Focused())
	h.Send(widgettest.Release(f32.Pt(10, 10)))

	v := typeInto(h, st, widgettest.Chars("hello")...)
	assert.Equal(t, "hello", v)

	v = typeInto(h, st, widgettest.Key(key.NameLeftArrow, 0), widgettest.Key(key.NameDeleteBackward, 0))
	assert.Equal(t, "helo", v)

	v = typeInto(h, st, widgettest.Key(key.NameHome, 0), widgettest.Key(key.NameDeleteForward, 0))
	assert.Equal(t, "elo", v)
}

func TestSubmit(t *testing.T) {
	st := new(State)
	st.Focus()
	h := widgettest.New[edit](newInput(st, "42"), f32.Sz(200, 100))
	h.Send(widgettest.Key(key.NameReturn, 0))
	assert.Equal(t, []edit{{value: "42", submit: true}}, h.Messages())
}

func TestClickOutsideBlurs(t *testing.T) {
	st := new(State)
	st.Focus()
	h := widgettest.New[edit](newInput(st, ""), f32.Sz(200, 100))
	assert.Equal(t, event.Ignored, h.Send(widgettest.Press(f32.Pt(10, 90))))
	assert.False(t, st.Focused())
}

func TestSelectAllAndPaste(t *testing.T) {
	st := new(State)
	st.Focus()
	h := widgettest.New[edit](newInput(st, "old"), f32.Sz(200, 100))
	h.Clipboard.Write("new  text")
	h.Send(widgettest.Key("A", key.ModShortcut))
	start, end := st.Selection()
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)
	h.Send(widgettest.Key("V", key.ModShortcut))
	assert.Equal(t, []edit{{value: "new text"}}, h.Messages())
}

func TestCopy(t *testing.T) {
	st := new(State)
	st.Focus()
	h := widgettest.New[edit](newInput(st, "abc"), f32.Sz(200, 100))
	h.Send(widgettest.Key(key.NameLeftArrow, key.ModShift))
	h.Send(widgettest.Key("C", key.ModShortcut))
	s, ok := h.Clipboard.Read()
	require.True(t, ok)
	assert.Equal(t, "c", s)
}

func TestAcceptFilters(t *testing.T) {
	st := new(State)
	st.Focus()
	in := newInput(st, "")
	in.Accept = func(s string) bool { return s != "x" }
	h := widgettest.New[edit](in, f32.Sz(200, 100))
	h.Send(key.CharEvent{Rune: 'x'})
	assert.Empty(t, h.Messages())
	h.Send(key.CharEvent{Rune: 'y'})
	assert.Equal(t, []edit{{value: "y"}}, h.Messages())
}

func TestDrawPlaceholderAndCaret(t *testing.T) {
	st := new(State)
	h := widgettest.New[edit](newInput(st, ""), f32.Sz(200, 100))
	h.Cursor = f32.Pt(150, 90)
	p, c := h.Draw()
	ts := widgettest.Texts(p)
	require.Len(t, ts, 1)
	assert.Equal(t, "type here", ts[0].Content)
	assert.Equal(t, DefaultStyle.Active().Placeholder, ts[0].Color)
	assert.Equal(t, "Default", c.String())

	st.Focus()
	h.Cursor = f32.Pt(5, 5)
	p, c = h.Draw()
	assert.Equal(t, "Text", c.String())
	qs := widgettest.Quads(p)
	// Frame and caret.
	require.Len(t, qs, 2)
	assert.Equal(t, DefaultStyle.Pressed().Border, qs[0].Border)
	assert.Equal(t, float32(1), qs[1].Bounds.Dx())
	_, clipped := p.(op.Group)[1].(op.Clip)
	assert.True(t, clipped)
}
