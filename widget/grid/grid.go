// SPDX-License-Identifier: Unlicense OR MIT

/*
Package grid implements a container wrapping its children into rows.

With a column count N, children flow left to right and wrap every N
children. Each column is as wide as its widest child and each row as
tall as its tallest child:

	g := grid.New[Msg](cells...).Columns(3)

With a column width W and no count, as many W wide columns as fit the
available width are used. With neither, the children form a single
row.
*/
package grid

import (
	"math"

	"awkit.org/f32"
	"awkit.org/io/clipboard"
	"awkit.org/io/event"
	"awkit.org/io/pointer"
	"awkit.org/layout"
	"awkit.org/op"
	"awkit.org/widget"
)

// Grid is a wrap packing container.
type Grid[M any] struct {
	widget.Sizing
	columns  int
	colWidth float32
	children []widget.Widget[M]
}

// New returns a Grid of children laid out in a single row.
func New[M any](children ...widget.Widget[M]) Grid[M] {
	return Grid[M]{children: children}
}

// Columns fixes the number of columns. Non-positive counts are
// ignored.
func (g Grid[M]) Columns(n int) Grid[M] {
	if n > 0 {
		g.columns = n
	}
	return g
}

// ColumnWidth fixes the width of every column. It only applies when
// no column count is set. Non-positive widths are ignored.
func (g Grid[M]) ColumnWidth(w float32) Grid[M] {
	if w > 0 && !math.IsInf(float64(w), 0) {
		g.colWidth = w
	}
	return g
}

// Push appends a child.
func (g Grid[M]) Push(w widget.Widget[M]) Grid[M] {
	g.children = append(g.children[:len(g.children):len(g.children)], w)
	return g
}

// Len returns the number of children.
func (g Grid[M]) Len() int {
	return len(g.children)
}

func (g Grid[M]) Layout(r widget.Renderer, l layout.Limits) layout.Node {
	l = l.Width(g.W).Height(g.H)
	if len(g.children) == 0 {
		return layout.NewNode(f32.Size{})
	}
	switch {
	case g.columns > 0:
		return g.layoutCount(r, l)
	case g.colWidth > 0:
		return g.layoutWidth(r, l)
	default:
		return widget.ResolveFlex(r, l, layout.Flex{Axis: layout.Horizontal}, g.children)
	}
}

func (g Grid[M]) layoutCount(r widget.Renderer, l layout.Limits) layout.Node {
	n := g.columns
	bound := l.Max.Width / float32(n)
	nodes := make([]layout.Node, len(g.children))
	widths := make([]float32, min(n, len(g.children)))
	for i, c := range g.children {
		nodes[i] = c.Layout(r, layout.NewLimits(f32.Size{}, f32.Sz(bound, l.Max.Height)))
		col := i % n
		widths[col] = max(widths[col], nodes[i].Size().Width)
	}
	offsets := make([]float32, len(widths))
	var total float32
	for i, w := range widths {
		offsets[i] = total
		total += w
	}
	height := place(nodes, n, func(col int) float32 { return offsets[col] })
	return layout.WithChildren(l.Resolve(f32.Sz(total, height)), nodes)
}

func (g Grid[M]) layoutWidth(r widget.Renderer, l layout.Limits) layout.Node {
	w := g.colWidth
	n := len(g.children)
	if !math.IsInf(float64(l.Max.Width), 1) {
		n = max(int(l.Max.Width/w), 1)
	}
	nodes := make([]layout.Node, len(g.children))
	for i, c := range g.children {
		nodes[i] = c.Layout(r, layout.NewLimits(f32.Size{}, f32.Sz(w, l.Max.Height)))
	}
	height := place(nodes, n, func(col int) float32 { return float32(col) * w })
	cols := min(n, len(nodes))
	return layout.WithChildren(l.Resolve(f32.Sz(float32(cols)*w, height)), nodes)
}

// place moves nodes to their cells in row major order and returns the
// sum of the row heights.
func place(nodes []layout.Node, n int, offset func(col int) float32) float32 {
	var top, rowHeight float32
	for i := range nodes {
		col := i % n
		if col == 0 && i > 0 {
			top += rowHeight
			rowHeight = 0
		}
		nodes[i].Move(f32.Pt(offset(col), top))
		rowHeight = max(rowHeight, nodes[i].Size().Height)
	}
	return top + rowHeight
}

func (g Grid[M]) Hash(h *widget.Hasher) {
	h.String("grid")
	h.Int(int64(g.columns))
	h.Float(g.colWidth)
	g.Sizing.Hash(h)
	widget.HashChildren(g.children, h)
}

func (g Grid[M]) Draw(r widget.Renderer, d widget.Defaults, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) (op.Primitive, pointer.Cursor) {
	return widget.DrawChildren(g.children, r, d, l, cursor, viewport)
}

func (g Grid[M]) OnEvent(e event.Event, l layout.Layout, cursor f32.Point, r widget.Renderer, cb clipboard.Clipboard, sh *widget.Shell[M]) event.Status {
	return widget.DispatchChildren(g.children, e, l, cursor, r, cb, sh)
}
