// SPDX-License-Identifier: Unlicense OR MIT

package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awkit.org/f32"
	"awkit.org/internal/widgettest"
	"awkit.org/unit"
	"awkit.org/widget"
)

func box(w, h float32) widget.Widget[int] {
	return widget.NewSpace[int](unit.Px(w), unit.Px(h))
}

func TestFixedColumnCount(t *testing.T) {
	sizes := []f32.Size{{Width: 100, Height: 20}, {Width: 80, Height: 30}, {Width: 60, Height: 10}, {Width: 100, Height: 20}, {Width: 80, Height: 30}, {Width: 60, Height: 10}, {Width: 100, Height: 20}}
	g := New[int]().Columns(3)
	for _, s := range sizes {
		g = g.Push(box(s.Width, s.Height))
	}
	h := widgettest.New[int](g, f32.Sz(1000, 1000))
	n := h.Node
	assert.Equal(t, f32.Sz(240, 80), n.Size())
	require.Equal(t, len(sizes), n.Len())

	colX := []float32{0, 100, 180}
	rowY := []float32{0, 30, 60}
	for i, c := range n.Children() {
		assert.Equal(t, f32.Pt(colX[i%3], rowY[i/3]), c.Bounds().Min, "child %d", i)
		assert.Equal(t, sizes[i], c.Size(), "child %d", i)
	}
	assert.Equal(t, f32.Pt(0, 30), n.Children()[3].Bounds().Min)
}

func TestFixedColumnWidth(t *testing.T) {
	g := New(box(10, 10), box(50, 20), box(10, 5), box(10, 10)).ColumnWidth(40)
	h := widgettest.New[int](g, f32.Sz(130, 1000))
	n := h.Node
	// Three 40 wide columns fit in 130.
	assert.Equal(t, f32.Sz(120, 30), n.Size())
	cs := n.Children()
	assert.Equal(t, f32.Pt(40, 0), cs[1].Bounds().Min)
	// Wider children are limited to the column.
	assert.Equal(t, float32(40), cs[1].Size().Width)
	assert.Equal(t, f32.Pt(0, 20), cs[3].Bounds().Min)
}

func TestColumnWidthWiderThanSpace(t *testing.T) {
	g := New(box(10, 10), box(10, 10)).ColumnWidth(40)
	h := widgettest.New[int](g, f32.Sz(30, 1000))
	assert.Equal(t, f32.Pt(0, 10), h.Node.Children()[1].Bounds().Min)
}

func TestSingleRow(t *testing.T) {
	g := New(box(10, 10), box(20, 5))
	h := widgettest.New[int](g, f32.Sz(1000, 1000))
	assert.Equal(t, f32.Sz(30, 10), h.Node.Size())
	assert.Equal(t, f32.Pt(10, 0), h.Node.Children()[1].Bounds().Min)
}

func TestEmpty(t *testing.T) {
	h := widgettest.New[int](New[int]().Columns(2), f32.Sz(100, 100))
	assert.Equal(t, f32.Size{}, h.Node.Size())
	assert.Zero(t, h.Node.Len())
}

func TestInvalidConfigurationIgnored(t *testing.T) {
	g := New[int]().Columns(2).Columns(0).ColumnWidth(-1)
	assert.Equal(t, 2, g.columns)
	assert.Zero(t, g.colWidth)
}

func TestHashTracksConfiguration(t *testing.T) {
	g := New(box(1, 1))
	assert.NotEqual(t, widget.Sum[int](g), widget.Sum[int](g.Columns(2)))
}
