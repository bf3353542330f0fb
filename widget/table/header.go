// SPDX-License-Identifier: Unlicense OR MIT

package table

import (
	"math"

	"awkit.org/f32"
	"awkit.org/font"
	"awkit.org/io/clipboard"
	"awkit.org/io/event"
	"awkit.org/io/pointer"
	"awkit.org/layout"
	"awkit.org/op"
	"awkit.org/style"
	"awkit.org/unit"
	"awkit.org/widget"
)

// DefaultLeeway is the distance from a column boundary within which
// the pointer grabs it.
const DefaultLeeway = 4

// HeaderState is the persistent state of a table header.
type HeaderState struct {
	gutter   int
	hovering bool
	dragging bool
	// Column widths and pointer position when the drag started.
	x0, left0, right0 float32
	pressed           int
	pressing          bool
}

// Dragging reports whether a column boundary is being dragged.
func (s *HeaderState) Dragging() bool {
	return s.dragging
}

// Header is a row of column headers separated by resize gutters.
// Dragging a gutter publishes ResizeColumn messages followed by
// Finished; clicking a cell publishes Pressed.
type Header[M any] struct {
	state     *HeaderState
	columns   []Column
	onMessage func(Message) M
	textSize  float32
	padding   float32
	font      font.Font
	leeway    float32
	orderable bool
	style     style.Sheet[Style]
}

// NewHeader returns a header for columns.
func NewHeader[M any](state *HeaderState, columns []Column, onMessage func(Message) M) Header[M] {
	return Header[M]{
		state:     state,
		columns:   columns,
		onMessage: onMessage,
		padding:   8,
		leeway:    DefaultLeeway,
		orderable: true,
		style:     DefaultStyle,
	}
}

// TextSize sets the label size.
func (h Header[M]) TextSize(s float32) Header[M] {
	h.textSize = s
	return h
}

// Padding sets the space added to the label in each cell.
func (h Header[M]) Padding(p float32) Header[M] {
	h.padding = max(p, 0)
	return h
}

// Font sets the label font.
func (h Header[M]) Font(f font.Font) Header[M] {
	h.font = f
	return h
}

// Leeway sets the grab distance of the gutters.
func (h Header[M]) Leeway(v float32) Header[M] {
	h.leeway = max(v, 0)
	return h
}

// Orderable sets whether clicking a cell publishes Pressed.
func (h Header[M]) Orderable(v bool) Header[M] {
	h.orderable = v
	return h
}

// Style sets the style.
func (h Header[M]) Style(s style.Sheet[Style]) Header[M] {
	h.style = s
	return h
}

func (h Header[M]) Width() unit.Length  { return unit.Shrink }
func (h Header[M]) Height() unit.Length { return unit.Shrink }

func (h Header[M]) Layout(r widget.Renderer, l layout.Limits) layout.Node {
	size := widget.TextSize(r, h.textSize)
	cells := make([]layout.Node, len(h.columns))
	var rowHeight float32
	for i, c := range h.columns {
		t := r.Measure(c.Label, size, h.font, f32.Infinity)
		w := t.Width + size + h.padding
		if c.Width > 0 {
			w = c.Width
		}
		cells[i] = layout.NewNode(f32.Sz(w, t.Height+h.padding))
		rowHeight = max(rowHeight, t.Height+h.padding)
	}
	var x float32
	for i := range cells {
		cells[i].Resize(f32.Sz(cells[i].Size().Width, rowHeight))
		cells[i].Move(f32.Pt(x, 0))
		x += cells[i].Size().Width
	}
	return layout.WithChildren(l.Resolve(f32.Sz(x, rowHeight)), cells)
}

func (h Header[M]) Hash(hs *widget.Hasher) {
	hs.String("header")
	hs.Float(h.textSize)
	hs.Float(h.padding)
	hs.Font(h.font)
	hs.Int(int64(len(h.columns)))
	for _, c := range h.columns {
		hs.String(c.Name)
		hs.String(c.Label)
		hs.String(c.ShortName)
		hs.Int(int64(c.Order))
		hs.Float(c.Width)
	}
}

// gutterAt returns the index of the column left of the boundary
// under cursor.
func (h Header[M]) gutterAt(l layout.Layout, cursor f32.Point) (int, bool) {
	b := l.Bounds()
	if cursor.Y < b.Min.Y || cursor.Y > b.Max.Y {
		return 0, false
	}
	for i := 0; i+1 < len(h.columns) && i+1 < l.Len(); i++ {
		x := l.Child(i).Bounds().Max.X
		if float32(math.Abs(float64(cursor.X-x))) <= h.leeway {
			return i, true
		}
	}
	return 0, false
}

// cellAt returns the index of the cell under cursor.
func (h Header[M]) cellAt(l layout.Layout, cursor f32.Point) (int, bool) {
	for i := 0; i < len(h.columns) && i < l.Len(); i++ {
		if l.Child(i).Bounds().Contains(cursor) {
			return i, true
		}
	}
	return 0, false
}

// label returns the label of column i, or its short name when the
// label does not fit the cell.
func (h Header[M]) label(r widget.Renderer, i int, width float32) string {
	c := h.columns[i]
	size := widget.TextSize(r, h.textSize)
	if c.ShortName == "" {
		return c.Label
	}
	if r.Measure(c.Label, size, h.font, f32.Infinity).Width+size+h.padding > width {
		return c.ShortName
	}
	return c.Label
}

func (h Header[M]) Draw(r widget.Renderer, d widget.Defaults, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) (op.Primitive, pointer.Cursor) {
	sheet := h.style
	if sheet == nil {
		sheet = DefaultStyle
	}
	var st HeaderState
	if h.state != nil {
		st = *h.state
	}
	active := sheet.Active()
	size := widget.TextSize(r, h.textSize)
	g := op.Group{op.Quad{Bounds: l.Bounds(), Background: active.HeaderBackground}}
	c := pointer.CursorDefault

	gutter, onGutter := h.gutterAt(l, cursor)
	if st.dragging {
		gutter, onGutter = st.gutter, true
	}
	hoveredCell, inCell := h.cellAt(l, cursor)
	for i := 0; i < len(h.columns) && i < l.Len(); i++ {
		b := l.Child(i).Bounds()
		status := style.Active
		if h.orderable && !onGutter {
			status = style.Of(inCell && hoveredCell == i, st.pressing && st.pressed == i, false)
		}
		if status != style.Active {
			g = g.Add(op.Quad{Bounds: b, Background: style.Resolve(sheet, status).HeaderBackground})
		}
		textBounds := f32.Rect(b.Min.X+h.padding/2, b.Min.Y, max(b.Max.X-size-h.padding/2, b.Min.X+h.padding/2), b.Max.Y)
		cell := op.Group{op.Text{
			Content:  h.label(r, i, b.Dx()),
			Bounds:   textBounds,
			Color:    active.HeaderText,
			Size:     size,
			Font:     h.font,
			Vertical: op.AlignMiddle,
		}}
		if ind := h.columns[i].Order.Indicator(); ind != "" {
			cell = cell.Add(op.Text{
				Content:    ind,
				Bounds:     f32.Rect(textBounds.Max.X, b.Min.Y, b.Max.X-h.padding/2, b.Max.Y),
				Color:      active.HeaderText,
				Size:       size,
				Horizontal: op.AlignMiddle,
				Vertical:   op.AlignMiddle,
			})
		}
		g = g.Add(op.Clip{Bounds: b, Content: cell})
		if i+1 < len(h.columns) && i+1 < l.Len() {
			divider := active.Divider
			if onGutter && gutter == i {
				divider = sheet.Hovered().Divider
			}
			g = g.Add(op.Quad{Bounds: f32.Rect(b.Max.X-.5, b.Min.Y, b.Max.X+.5, b.Max.Y), Background: divider})
		}
	}
	switch {
	case onGutter:
		c = pointer.CursorColResize
	case inCell && h.orderable:
		c = pointer.CursorPointer
	}
	return g, c
}

func (h Header[M]) publish(m Message, sh *widget.Shell[M]) {
	if h.onMessage != nil {
		sh.Publish(h.onMessage(m))
	}
}

func (h Header[M]) OnEvent(e event.Event, l layout.Layout, cursor f32.Point, r widget.Renderer, cb clipboard.Clipboard, sh *widget.Shell[M]) event.Status {
	st := h.state
	pe, ok := e.(pointer.Event)
	if !ok || st == nil {
		return event.Ignored
	}
	switch {
	case pe.Kind == pointer.Move:
		if !st.dragging {
			st.gutter, st.hovering = h.gutterAt(l, cursor)
			return event.Ignored
		}
		if st.gutter+1 >= len(h.columns) {
			st.dragging = false
			return event.Ignored
		}
		total := st.left0 + st.right0
		left := min(max(st.left0+cursor.X-st.x0, MinColumnWidth), total-MinColumnWidth)
		h.publish(ResizeColumn{
			Left:       h.columns[st.gutter].Name,
			LeftWidth:  left,
			Right:      h.columns[st.gutter+1].Name,
			RightWidth: total - left,
		}, sh)
		return event.Captured
	case pe.Pressed():
		if g, ok := h.gutterAt(l, cursor); ok {
			left := l.Child(g).Bounds().Dx()
			right := l.Child(g + 1).Bounds().Dx()
			if left+right < 2*MinColumnWidth {
				return event.Ignored
			}
			st.gutter, st.hovering = g, true
			st.dragging = true
			st.x0, st.left0, st.right0 = cursor.X, left, right
			return event.Captured
		}
		if i, ok := h.cellAt(l, cursor); ok && h.orderable {
			st.pressed, st.pressing = i, true
			return event.Captured
		}
	case pe.Released():
		if st.dragging {
			st.dragging = false
			h.publish(Finished{}, sh)
			return event.Captured
		}
		if st.pressing {
			st.pressing = false
			if i, ok := h.cellAt(l, cursor); ok && i == st.pressed {
				h.publish(Pressed{Index: i}, sh)
			}
			return event.Captured
		}
	}
	return event.Ignored
}
