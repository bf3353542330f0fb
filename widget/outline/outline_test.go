// SPDX-License-Identifier: Unlicense OR MIT

package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awkit.org/f32"
	"awkit.org/internal/widgettest"
	"awkit.org/io/event"
	"awkit.org/io/pointer"
	"awkit.org/widget"
)

func TestLayout(t *testing.T) {
	st := new(State)
	b := New[string](st, widget.NewText[string]("Save"))
	h := widgettest.New[string](b, f32.Sz(300, 300))
	assert.Equal(t, f32.Sz(40, 20), h.Node.Size())
	assert.Equal(t, f32.Rect(10, 5, 30, 15), h.Node.Children()[0].Bounds())

	h.Rebuild(b.MinWidth(60))
	assert.Equal(t, f32.Rect(20, 5, 40, 15), h.Node.Children()[0].Bounds())
}

func TestClick(t *testing.T) {
	st := new(State)
	b := New[string](st, widget.NewText[string]("Save")).OnPress("save")
	h := widgettest.New[string](b, f32.Sz(300, 300))

	assert.Equal(t, event.Captured, h.Send(widgettest.Press(f32.Pt(5, 5))))
	assert.True(t, st.Pressed())
	assert.Empty(t, h.Messages())
	h.Send(widgettest.Release(f32.Pt(6, 6)))
	assert.False(t, st.Pressed())
	assert.Equal(t, []string{"save"}, h.Messages())

	h.Send(widgettest.Press(f32.Pt(5, 5)))
	h.Send(widgettest.Release(f32.Pt(200, 200)))
	assert.False(t, st.Pressed())
	assert.Empty(t, h.Messages())
}

func TestDisabled(t *testing.T) {
	st := new(State)
	h := widgettest.New[string](New[string](st, widget.NewText[string]("Save")), f32.Sz(300, 300))
	assert.Equal(t, event.Ignored, h.Click(f32.Pt(5, 5)))
	assert.False(t, st.Pressed())
	_, c := h.Draw()
	assert.Equal(t, pointer.CursorNotAllowed, c)
}

func TestPressedSwapsColors(t *testing.T) {
	st := new(State)
	h := widgettest.New[string](New[string](st, widget.NewText[string]("Save")).OnPress("save"), f32.Sz(300, 300))
	h.Cursor = f32.Pt(100, 100)
	p, _ := h.Draw()
	qs, ts := widgettest.Quads(p), widgettest.Texts(p)
	require.Len(t, qs, 1)
	require.Len(t, ts, 1)
	active := DefaultStyle.Active()
	assert.Equal(t, active.Background, qs[0].Background)
	assert.Equal(t, active.Foreground, ts[0].Color)

	h.Send(widgettest.Press(f32.Pt(5, 5)))
	p, c := h.Draw()
	assert.Equal(t, pointer.CursorPointer, c)
	pressed := DefaultStyle.Pressed()
	assert.Equal(t, pressed.Foreground, widgettest.Quads(p)[0].Background)
	assert.Equal(t, pressed.Background, widgettest.Texts(p)[0].Color)
}

func TestNilStateInert(t *testing.T) {
	b := New[int](nil, widget.NewText[int]("ok")).OnPress(1)
	h := widgettest.New[int](b, f32.Sz(300, 300))
	h.Cursor = f32.Pt(5, 5)

	p, c := h.Draw()
	assert.Equal(t, pointer.CursorDefault, c)
	quads := widgettest.Quads(p)
	require.NotEmpty(t, quads)
	assert.Equal(t, DefaultStyle.Active().Background, quads[0].Background)

	assert.Equal(t, event.Ignored, h.Send(widgettest.Press(f32.Pt(5, 5))))
	assert.Equal(t, event.Ignored, h.Send(widgettest.Release(f32.Pt(5, 5))))
	assert.Empty(t, h.Messages())
}
