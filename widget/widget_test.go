// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awkit.org/f32"
	"awkit.org/internal/widgettest"
	"awkit.org/io/clipboard"
	"awkit.org/io/event"
	"awkit.org/layout"
	"awkit.org/op"
	"awkit.org/style"
	"awkit.org/unit"
	"awkit.org/widget"
)

type msg string

func TestRowLayout(t *testing.T) {
	row := widget.Row[msg](widget.NewText[msg]("ab"), widget.NewSpace[msg](unit.Px(5), unit.Px(5)))
	row.Spacing = 2
	h := widgettest.New[msg](row, f32.Sz(100, 100))
	assert.Equal(t, f32.Sz(17, 10), h.Node.Size())
	require.Equal(t, 2, h.Node.Len())
	assert.Equal(t, f32.Rect(0, 0, 10, 10), h.Node.Children()[0].Bounds())
	assert.Equal(t, f32.Rect(12, 0, 17, 5), h.Node.Children()[1].Bounds())
}

func TestRowFillPortions(t *testing.T) {
	row := widget.Row[msg](
		widget.NewSpace[msg](unit.FillPortion(1), unit.Shrink),
		widget.NewSpace[msg](unit.FillPortion(3), unit.Shrink),
	)
	row.W = unit.Fill
	h := widgettest.New[msg](row, f32.Sz(100, 100))
	assert.Equal(t, float32(100), h.Node.Size().Width)
	cs := h.Node.Children()
	assert.Equal(t, float32(25), cs[0].Size().Width)
	assert.Equal(t, float32(75), cs[1].Size().Width)
	assert.Equal(t, float32(25), cs[1].Bounds().Min.X)
}

func TestColumnAlignment(t *testing.T) {
	col := widget.Column[msg](widget.NewText[msg]("abcd"), widget.NewText[msg]("ab"))
	col.Alignment = layout.Middle
	h := widgettest.New[msg](col, f32.Sz(100, 100))
	assert.Equal(t, f32.Sz(20, 20), h.Node.Size())
	assert.Equal(t, f32.Pt(5, 10), h.Node.Children()[1].Bounds().Min)
}

func TestContainerPaddingAndAlignment(t *testing.T) {
	c := widget.NewContainer[msg](widget.NewText[msg]("ab"))
	c.Padding = layout.UniformInset(4)
	h := widgettest.New[msg](c, f32.Sz(100, 100))
	assert.Equal(t, f32.Sz(18, 18), h.Node.Size())
	assert.Equal(t, f32.Pt(4, 4), h.Node.Children()[0].Bounds().Min)

	c.W, c.H = unit.Px(50), unit.Px(30)
	c.Horizontal, c.Vertical = layout.Middle, layout.End
	h.Rebuild(c)
	assert.Equal(t, f32.Sz(50, 30), h.Node.Size())
	assert.Equal(t, f32.Pt(20, 16), h.Node.Children()[0].Bounds().Min)
}

func TestContainerMaxWidth(t *testing.T) {
	c := widget.NewContainer[msg](widget.NewSpace[msg](unit.Fill, unit.Px(10)))
	c.W = unit.Fill
	c.MaxWidth = 40
	h := widgettest.New[msg](c, f32.Sz(100, 100))
	assert.Equal(t, f32.Sz(40, 10), h.Node.Size())
}

func TestContainerDrawsStyle(t *testing.T) {
	c := widget.NewContainer[msg](widget.NewText[msg]("x"))
	c.Style = style.Static[widget.ContainerStyle]{S: widget.ContainerStyle{Background: style.Gray, TextColor: style.White}}
	h := widgettest.New[msg](c, f32.Sz(100, 100))
	p, _ := h.Draw()
	qs := widgettest.Quads(p)
	require.Len(t, qs, 1)
	assert.Equal(t, style.Gray, qs[0].Background)
	ts := widgettest.Texts(p)
	require.Len(t, ts, 1)
	assert.Equal(t, style.White, ts[0].Color)
}

func TestTextInheritsColor(t *testing.T) {
	h := widgettest.New[msg](widget.NewText[msg]("hi"), f32.Sz(100, 100))
	p, _ := h.Draw()
	txt, ok := p.(op.Text)
	require.True(t, ok)
	assert.Equal(t, widget.DefaultDefaults.TextColor, txt.Color)
	assert.Equal(t, float32(10), txt.Size)
}

func TestHashChanges(t *testing.T) {
	a := widget.Sum[msg](widget.NewText[msg]("a"))
	b := widget.Sum[msg](widget.NewText[msg]("b"))
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, widget.Sum[msg](widget.NewText[msg]("a")))

	// Colour does not affect layout.
	red := widget.NewText[msg]("a")
	red.Color = style.RGB(0xff0000)
	assert.Equal(t, a, widget.Sum[msg](red))

	r1 := widget.Row[msg](widget.NewText[msg]("a"), widget.NewText[msg]("b"))
	r2 := widget.Row[msg](widget.NewText[msg]("ab"))
	assert.NotEqual(t, widget.Sum[msg](r1), widget.Sum[msg](r2))
}

type pressed struct {
	widget.Space[int]
}

func (pressed) OnEvent(e event.Event, l layout.Layout, cursor f32.Point, r widget.Renderer, cb clipboard.Clipboard, sh *widget.Shell[int]) event.Status {
	sh.Publish(1)
	return event.Captured
}

func TestMapMessages(t *testing.T) {
	w := widget.Map[int, msg](pressed{widget.NewSpace[int](unit.Px(1), unit.Px(1))}, func(i int) msg {
		return msg("got")
	})
	h := widgettest.New(w, f32.Sz(10, 10))
	st := h.Send(widgettest.Press(f32.Pt(0, 0)))
	assert.Equal(t, event.Captured, st)
	assert.Equal(t, []msg{"got"}, h.Messages())
}

func TestDrawChildrenMissingLayout(t *testing.T) {
	row := widget.Row[msg](widget.NewText[msg]("a"), widget.NewText[msg]("b"))
	p, c := row.Draw(widgettest.Renderer{}, widget.DefaultDefaults, layout.Layout{}, f32.Point{}, f32.Rectangle{})
	assert.Len(t, widgettest.Texts(p), 2)
	assert.Equal(t, "Default", c.String())
}
