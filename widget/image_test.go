// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awkit.org/f32"
	"awkit.org/internal/widgettest"
	"awkit.org/layout"
	"awkit.org/op"
	"awkit.org/widget"
)

func TestFitScale(t *testing.T) {
	l := layout.NewLimits(f32.Size{}, f32.Sz(100, 50))
	src := f32.Sz(200, 200)
	tests := []struct {
		fit        widget.Fit
		box, drawn f32.Size
	}{
		{widget.Unscaled, f32.Sz(100, 50), f32.Sz(200, 200)},
		{widget.Contain, f32.Sz(50, 50), f32.Sz(50, 50)},
		{widget.Cover, f32.Sz(100, 50), f32.Sz(100, 100)},
		{widget.ScaleDown, f32.Sz(50, 50), f32.Sz(50, 50)},
		{widget.Fill, f32.Sz(100, 50), f32.Sz(100, 50)},
	}
	for _, tt := range tests {
		box, drawn := tt.fit.Scale(l, src)
		assert.Equal(t, tt.box, box, "fit %d", tt.fit)
		assert.Equal(t, tt.drawn, drawn, "fit %d", tt.fit)
	}

	box, drawn := widget.ScaleDown.Scale(l, f32.Sz(20, 10))
	assert.Equal(t, f32.Sz(20, 10), box)
	assert.Equal(t, f32.Sz(20, 10), drawn)

	box, _ = widget.Contain.Scale(layout.NewLimits(f32.Size{}, f32.Infinity), f32.Sz(20, 10))
	assert.Equal(t, f32.Sz(20, 10), box)
}

func TestImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 20))
	im := widget.NewImage[msg](src)
	im.Fit = widget.Contain
	im.Horizontal, im.Vertical = layout.Middle, layout.Middle
	h := widgettest.New[msg](im, f32.Sz(80, 80))
	assert.Equal(t, f32.Sz(80, 40), h.Node.Size())

	p, _ := h.Draw()
	c, ok := p.(op.Clip)
	require.True(t, ok)
	assert.Equal(t, f32.Rect(0, 0, 80, 40), c.Bounds)
	assert.Equal(t, op.Image{Bounds: f32.Rect(0, 0, 80, 40), Src: src}, c.Content)

	cover := widget.NewImage[msg](src)
	cover.Fit = widget.Cover
	cover.Horizontal = layout.Middle
	h.Rebuild(cover)
	assert.Equal(t, f32.Sz(80, 80), h.Node.Size())
	p, _ = h.Draw()
	assert.Equal(t, f32.Rect(-40, 0, 120, 80), p.(op.Clip).Content.(op.Image).Bounds)
}

func TestImageHash(t *testing.T) {
	a := widget.NewImage[msg](image.NewRGBA(image.Rect(0, 0, 4, 4)))
	b := widget.NewImage[msg](image.NewRGBA(image.Rect(0, 0, 8, 4)))
	assert.NotEqual(t, widget.Sum[msg](a), widget.Sum[msg](b))
}
