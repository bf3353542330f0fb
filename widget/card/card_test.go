// SPDX-License-Identifier: Unlicense OR MIT

package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awkit.org/f32"
	"awkit.org/internal/widgettest"
	"awkit.org/io/event"
	"awkit.org/widget"
)

type msg string

func text(s string) widget.Widget[msg] {
	return widget.NewText[msg](s)
}

func TestLayout(t *testing.T) {
	c := New(new(State), text("Title"), text("Body"))
	h := widgettest.New[msg](c, f32.Sz(500, 500))
	assert.Equal(t, f32.Sz(45, 60), h.Node.Size())
	cs := h.Node.Children()
	require.Len(t, cs, 3)
	assert.Equal(t, f32.Rect(0, 0, 45, 30), cs[headerSection].Bounds())
	assert.Equal(t, f32.Rect(0, 30, 45, 60), cs[bodySection].Bounds())
	assert.Equal(t, f32.Pt(10, 10), cs[bodySection].Children()[0].Bounds().Min)

	h.Rebuild(c.Margin(5).Footer(text("f")))
	assert.Equal(t, f32.Sz(55, 100), h.Node.Size())
	assert.Equal(t, f32.Pt(5, 5), h.Node.Children()[headerSection].Bounds().Min)
	assert.Equal(t, f32.Pt(5, 65), h.Node.Children()[footerSection].Bounds().Min)
}

func TestMinHeightGrowsBody(t *testing.T) {
	c := New(new(State), text("Title"), text("Body")).MinHeight(100)
	h := widgettest.New[msg](c, f32.Sz(500, 500))
	assert.Equal(t, float32(100), h.Node.Size().Height)
	assert.Equal(t, float32(70), h.Node.Children()[bodySection].Size().Height)
}

func TestPressed(t *testing.T) {
	st := new(State)
	c := New(st, nil, text("Body")).OnPressed("open")
	h := widgettest.New[msg](c, f32.Sz(500, 500))
	center := h.Node.Bounds().Center()
	assert.Equal(t, event.Captured, h.Send(widgettest.Press(center)))
	assert.True(t, st.click.Pressed())
	h.Send(widgettest.Release(center))
	assert.Equal(t, []msg{"open"}, h.Messages())

	// Releasing outside cancels.
	h.Send(widgettest.Press(center))
	h.Send(widgettest.Release(f32.Pt(400, 400)))
	assert.Empty(t, h.Messages())
	assert.False(t, st.click.Pressed())
}

func TestNotPressable(t *testing.T) {
	c := New(new(State), nil, text("Body"))
	h := widgettest.New[msg](c, f32.Sz(500, 500))
	assert.Equal(t, event.Ignored, h.Click(h.Node.Bounds().Center()))
}

func TestClose(t *testing.T) {
	c := New(new(State), text("Title"), text("Body")).OnClose("close").OnPressed("open")
	h := widgettest.New[msg](c, f32.Sz(500, 500))
	cb := h.Layout().Child(headerSection).Child(1).Bounds()
	assert.Equal(t, f32.Rect(45, 10, 55, 20), cb)
	h.Click(cb.Center())
	assert.Equal(t, []msg{"close"}, h.Messages())

	h.Cursor = cb.Center()
	p, cur := h.Draw()
	assert.Equal(t, "Pointer", cur.String())
	texts := widgettest.Texts(p)
	assert.Equal(t, CloseGlyph, texts[len(texts)-1].Content)
	assert.Equal(t, DefaultStyle.Hovered().Close, texts[len(texts)-1].Color)
}

func TestSectionTextColors(t *testing.T) {
	c := New(new(State), text("Title"), text("Body")).Footer(text("f"))
	h := widgettest.New[msg](c, f32.Sz(500, 500))
	h.Cursor = f32.Pt(499, 499)
	p, _ := h.Draw()
	texts := widgettest.Texts(p)
	require.Len(t, texts, 3)
	s := DefaultStyle.Active()
	assert.Equal(t, s.HeaderText, texts[0].Color)
	assert.Equal(t, s.BodyText, texts[1].Color)
	assert.Equal(t, s.FooterText, texts[2].Color)
	q := widgettest.Quads(p)[0]
	assert.Equal(t, s.Shadow, q.Shadow)
}
