// SPDX-License-Identifier: Unlicense OR MIT

/*
Package table implements a table of records with a header of
resizable, sortable columns.

The application describes the columns in a State it keeps across
frames and implements Data to project the fields of its records:

	type people []Person

	func project(p Person, field string) (table.Value, error) {
		switch field {
		case "name":
			return table.String(p.Name), nil
		case "age":
			return table.Int(int64(p.Age)), nil
		}
		return table.Value{}, &table.FieldError{Field: field}
	}

	st := table.NewState(
		table.Column{Name: "name", Label: "Name"},
		table.Column{Name: "age", Label: "Age"},
	)
	t := table.New(st, records, table.DataFunc[Person](project), toMsg)

Clicking a header cell cycles its column through ascending, descending
and unordered, resetting the other columns. Rows are sorted from the
record order every frame, so returning to unordered restores it.
Dragging the boundary between two columns resizes both, keeping
their total width.
*/
package table

import (
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

// Table shows records of type R, one row per record.
type Table[R any, M any] struct {
	state     *State
	records   []R
	data      Data[R]
	onMessage func(Message) M
	orderable bool
	textSize  float32
	padding   float32
	font      font.Font
	leeway    float32
	style     style.Sheet[Style]
}

// New returns a table of records with the columns of state.
// Resizes, finished drags and sort changes are published through
// onMessage after the table applied them to state. A nil onMessage
// publishes nothing.
func New[R any, M any](state *State, records []R, data Data[R], onMessage func(Message) M) Table[R, M] {
	return Table[R, M]{
		state:     state,
		records:   records,
		data:      data,
		onMessage: onMessage,
		orderable: true,
		padding:   8,
		leeway:    DefaultLeeway,
		style:     DefaultStyle,
	}
}

// Orderable sets whether clicking a header sorts the rows.
func (t Table[R, M]) Orderable(v bool) Table[R, M] {
	t.orderable = v
	return t
}

// TextSize sets the text size of the header and the cells.
func (t Table[R, M]) TextSize(s float32) Table[R, M] {
	t.textSize = s
	return t
}

// Padding sets the header cell padding.
func (t Table[R, M]) Padding(p float32) Table[R, M] {
	t.padding = max(p, 0)
	return t
}

// Font sets the font.
func (t Table[R, M]) Font(f font.Font) Table[R, M] {
	t.font = f
	return t
}

// Leeway sets the grab distance of the column boundaries.
func (t Table[R, M]) Leeway(v float32) Table[R, M] {
	t.leeway = max(v, 0)
	return t
}

// Style sets the style.
func (t Table[R, M]) Style(s style.Sheet[Style]) Table[R, M] {
	t.style = s
	return t
}

func (t Table[R, M]) Width() unit.Length  { return unit.Shrink }
func (t Table[R, M]) Height() unit.Length { return unit.Shrink }

func (t Table[R, M]) columns() []Column {
	if t.state == nil {
		return nil
	}
	return t.state.Columns
}

func (t Table[R, M]) header() Header[Message] {
	var hs *HeaderState
	if t.state != nil {
		hs = &t.state.Header
	}
	return NewHeader(hs, t.columns(), func(m Message) Message { return m }).
		TextSize(t.textSize).
		Padding(t.padding).
		Font(t.font).
		Leeway(t.leeway).
		Orderable(t.orderable).
		Style(t.style)
}

// Rows returns the record indices in display order.
func (t Table[R, M]) Rows() []int {
	i, o := -1, Unordered
	if t.state != nil && t.orderable {
		i, o = t.state.Sorted()
	}
	if i < 0 {
		return Sort[R](t.records, nil, "", Unordered)
	}
	return Sort(t.records, t.data, t.state.Columns[i].Name, o)
}

// cell returns the text of a cell, or false if the projection failed.
func (t Table[R, M]) cell(record R, field string) (string, bool) {
	if t.data == nil {
		return "", false
	}
	v, err := t.data.Project(record, field)
	if err != nil {
		return "", false
	}
	return v.String(), true
}

func (t Table[R, M]) Layout(r widget.Renderer, l layout.Limits) layout.Node {
	size := widget.TextSize(r, t.textSize)
	header := t.header().Layout(r, layout.NewLimits(f32.Size{}, f32.Infinity))
	header.Move(f32.Pt(1, 1))
	hs := header.Size()
	cols := t.columns()
	lineHeight := r.Measure("", size, t.font, f32.Infinity).Height
	var rows []layout.Node
	var y, bodyWidth float32
	for _, ri := range t.Rows() {
		cells := make([]layout.Node, len(cols))
		rowHeight := lineHeight
		var rowWidth float32
		for j, c := range cols {
			x := header.Children()[j].Bounds().Min.X + t.padding/2
			var sz f32.Size
			if s, ok := t.cell(t.records[ri], c.Name); ok {
				sz = r.Measure(s, size, t.font, f32.Infinity)
			}
			cells[j] = layout.NewNode(sz)
			cells[j].Move(f32.Pt(x, 0))
			rowHeight = max(rowHeight, sz.Height)
			rowWidth = max(rowWidth, x+sz.Width)
		}
		row := layout.WithChildren(f32.Sz(rowWidth, rowHeight), cells)
		row.Move(f32.Pt(0, y))
		rows = append(rows, row)
		y += rowHeight
		bodyWidth = max(bodyWidth, rowWidth)
	}
	body := layout.WithChildren(f32.Sz(bodyWidth, y), rows)
	body.Move(f32.Pt(1, 1+hs.Height))
	// The width has a one pixel frame on both sides; the height is
	// the header and the body only.
	total := f32.Sz(max(hs.Width, bodyWidth)+2, hs.Height+y)
	return layout.WithChildren(l.Resolve(total), []layout.Node{header, body})
}

func (t Table[R, M]) Hash(h *widget.Hasher) {
	h.String("table")
	h.Float(t.textSize)
	h.Float(t.padding)
	h.Bool(t.orderable)
	h.Font(t.font)
	t.header().Hash(h)
	cols := t.columns()
	rows := t.Rows()
	h.Int(int64(len(rows)))
	for _, ri := range rows {
		for _, c := range cols {
			s, ok := t.cell(t.records[ri], c.Name)
			h.Bool(ok)
			h.String(s)
		}
	}
}

func (t Table[R, M]) Draw(r widget.Renderer, d widget.Defaults, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) (op.Primitive, pointer.Cursor) {
	sheet := t.style
	if sheet == nil {
		sheet = DefaultStyle
	}
	s := sheet.Active()
	size := widget.TextSize(r, t.textSize)
	g := op.Group{op.Quad{Bounds: l.Bounds(), Background: s.Background, Border: s.Border}}
	hp, c := t.header().Draw(r, d, l.Child(0), cursor, viewport)
	g = g.Add(hp)

	cols := t.columns()
	body := l.Child(1)
	var cells op.Group
	for i, ri := range t.Rows() {
		row := body.Child(i)
		if !row.Bounds().Intersect(viewport).Empty() || viewport.Empty() {
			for j, col := range cols {
				text, ok := t.cell(t.records[ri], col.Name)
				if !ok || text == "" {
					continue
				}
				cells = cells.Add(op.Text{
					Content:  text,
					Bounds:   row.Child(j).Bounds(),
					Color:    s.Text,
					Size:     size,
					Font:     t.font,
					Vertical: op.AlignMiddle,
				})
			}
		}
	}
	g = g.Add(op.Clip{Bounds: l.Bounds(), Content: op.Simplify(cells)})
	return g, c
}

func (t Table[R, M]) OnEvent(e event.Event, l layout.Layout, cursor f32.Point, r widget.Renderer, cb clipboard.Clipboard, sh *widget.Shell[M]) event.Status {
	if t.state == nil {
		return event.Ignored
	}
	var inner widget.Shell[Message]
	st := t.header().OnEvent(e, l.Child(0), cursor, r, cb, &inner)
	for _, m := range inner.Messages() {
		switch m := m.(type) {
		case ResizeColumn:
			t.state.Apply(m)
			t.publish(m, sh)
		case Finished:
			t.publish(m, sh)
		case Pressed:
			t.state.Toggle(m.Index)
			col := t.state.Columns[m.Index]
			t.publish(Sorted{Column: col.Name, Order: col.Order}, sh)
		}
	}
	return st
}

func (t Table[R, M]) publish(m Message, sh *widget.Shell[M]) {
	if t.onMessage != nil {
		sh.Publish(t.onMessage(m))
	}
}
