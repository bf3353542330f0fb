// SPDX-License-Identifier: Unlicense OR MIT

package table

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awkit.org/f32"
	"awkit.org/internal/widgettest"
	"awkit.org/io/event"
	"awkit.org/widget"
)

type record struct {
	id   int
	name string
}

func project(r record, field string) (Value, error) {
	switch field {
	case "id":
		return Int(int64(r.id)), nil
	case "name":
		return String(r.name), nil
	}
	return Value{}, &FieldError{Field: field}
}

func identity(m Message) Message { return m }

func ids(t Table[record, Message]) []int {
	var out []int
	for _, i := range t.Rows() {
		out = append(out, t.records[i].id)
	}
	return out
}

func TestSortCycle(t *testing.T) {
	st := NewState(Column{Name: "id", Label: "ID"})
	records := []record{{id: 2}, {id: 1}, {id: 3}}
	tbl := New(st, records, DataFunc[record](project), identity)
	h := widgettest.New[Message](tbl, f32.Sz(500, 500))
	cell := h.Layout().Child(0).Child(0).Bounds().Center()

	want := [][]int{{1, 2, 3}, {3, 2, 1}, {2, 1, 3}}
	orders := []Order{Ascending, Descending, Unordered}
	for i := range want {
		assert.Equal(t, event.Captured, h.Click(cell))
		assert.Equal(t, []Message{Sorted{Column: "id", Order: orders[i]}}, h.Messages())
		assert.Equal(t, want[i], ids(tbl), "click %d", i+1)
	}
	// The records themselves are never reordered.
	assert.Equal(t, []record{{id: 2}, {id: 1}, {id: 3}}, records)
}

// projectKnown fails for records with a negative id.
func projectKnown(r record, field string) (Value, error) {
	if field == "id" && r.id < 0 {
		return Value{}, &FieldError{Field: field}
	}
	return project(r, field)
}

// checkOrder verifies that rows is a stable ordering of records by
// id in order o, with failed projections first when ascending and
// last when descending.
func checkOrder(t *testing.T, records []record, rows []int, o Order) {
	t.Helper()
	require.Len(t, rows, len(records))
	if o == Unordered {
		for i, r := range rows {
			assert.Equal(t, i, r)
		}
		return
	}
	rank := func(r record) int {
		if r.id < 0 {
			return -1
		}
		return 0
	}
	for i := 1; i < len(rows); i++ {
		a, b := records[rows[i-1]], records[rows[i]]
		if o == Descending {
			a, b = b, a
		}
		switch {
		case rank(a) != rank(b):
			assert.Less(t, rank(a), rank(b), "rows %v", rows)
		case rank(a) < 0 || a.id == b.id:
			// Ties keep record order.
			assert.Less(t, rows[i-1], rows[i], "rows %v", rows)
		default:
			assert.Less(t, a.id, b.id, "rows %v", rows)
		}
	}
}

func TestSortCycleLaw(t *testing.T) {
	sets := map[string][]record{
		"empty":       nil,
		"single":      {{id: 4}},
		"sorted":      {{id: 1}, {id: 2}, {id: 3}, {id: 4}},
		"reversed":    {{id: 4}, {id: 3}, {id: 2}, {id: 1}},
		"duplicates":  {{id: 2, name: "a"}, {id: 1}, {id: 2, name: "b"}, {id: 1, name: "c"}, {id: 2, name: "d"}},
		"failing":     {{id: 3}, {id: -1, name: "x"}, {id: 1}, {id: -2, name: "y"}, {id: 3, name: "z"}},
		"all failing": {{id: -1}, {id: -5}, {id: -3}},
	}
	for name, records := range sets {
		t.Run(name, func(t *testing.T) {
			st := NewState(Column{Name: "id", Label: "ID"})
			tbl := New(st, records, DataFunc[record](projectKnown), identity)
			h := widgettest.New[Message](tbl, f32.Sz(500, 500))
			cell := h.Layout().Child(0).Child(0).Bounds().Center()
			checkOrder(t, records, tbl.Rows(), Unordered)
			for _, o := range []Order{Ascending, Descending, Unordered} {
				h.Click(cell)
				_, got := st.Sorted()
				assert.Equal(t, o, got)
				checkOrder(t, records, tbl.Rows(), o)
			}
		})
	}
}

func TestToggleResetsOtherColumns(t *testing.T) {
	st := NewState(Column{Name: "id"}, Column{Name: "name"})
	st.Toggle(0)
	st.Toggle(0)
	assert.Equal(t, Descending, st.Columns[0].Order)
	st.Toggle(1)
	assert.Equal(t, Unordered, st.Columns[0].Order)
	assert.Equal(t, Ascending, st.Columns[1].Order)
	i, o := st.Sorted()
	assert.Equal(t, 1, i)
	assert.Equal(t, Ascending, o)
	st.Toggle(5)
	assert.Equal(t, Ascending, st.Columns[1].Order)
}

func TestClickRequiresReleaseOnSameCell(t *testing.T) {
	st := NewState(Column{Name: "id", Label: "ID"}, Column{Name: "name", Label: "Name"})
	tbl := New(st, nil, DataFunc[record](project), identity)
	h := widgettest.New[Message](tbl, f32.Sz(500, 500))
	first := h.Layout().Child(0).Child(0).Bounds()
	second := h.Layout().Child(0).Child(1).Bounds()
	h.Send(widgettest.Press(first.Center()))
	h.Send(widgettest.Release(second.Center()))
	assert.Empty(t, h.Messages())
	assert.Equal(t, Unordered, st.Columns[0].Order)
}

func TestNotOrderable(t *testing.T) {
	st := NewState(Column{Name: "id", Label: "ID"})
	tbl := New(st, []record{{id: 2}, {id: 1}}, DataFunc[record](project), identity).Orderable(false)
	h := widgettest.New[Message](tbl, f32.Sz(500, 500))
	assert.Equal(t, event.Ignored, h.Click(h.Layout().Child(0).Child(0).Bounds().Center()))
	assert.Equal(t, []int{2, 1}, ids(tbl))
}

func resizeHeader(st *HeaderState) Header[Message] {
	cols := []Column{{Name: "a", Label: "A", Width: 100}, {Name: "b", Label: "B", Width: 200}}
	return NewHeader(st, cols, identity)
}

func TestResizeDrag(t *testing.T) {
	st := new(HeaderState)
	h := widgettest.New[Message](resizeHeader(st), f32.Sz(500, 500))
	assert.Equal(t, f32.Sz(300, 18), h.Node.Size())

	assert.Equal(t, event.Captured, h.Send(widgettest.Press(f32.Pt(100, 5))))
	assert.True(t, st.Dragging())
	h.Send(widgettest.Move(f32.Pt(140, 5)))
	assert.Equal(t, []Message{ResizeColumn{Left: "a", LeftWidth: 140, Right: "b", RightWidth: 160}}, h.Messages())

	h.Send(widgettest.Release(f32.Pt(140, 5)))
	assert.Equal(t, []Message{Finished{}}, h.Messages())
	assert.False(t, st.Dragging())
}

func TestResizeClamps(t *testing.T) {
	st := new(HeaderState)
	h := widgettest.New[Message](resizeHeader(st), f32.Sz(500, 500))
	h.Send(widgettest.Press(f32.Pt(97, 5)))
	for _, x := range []float32{-50, 0, 50, 250, 290, 1000} {
		h.Send(widgettest.Move(f32.Pt(x, 5)))
		ms := h.Messages()
		require.Len(t, ms, 1)
		rc := ms[0].(ResizeColumn)
		assert.Equal(t, float32(300), rc.LeftWidth+rc.RightWidth)
		assert.GreaterOrEqual(t, rc.LeftWidth, float32(MinColumnWidth))
		assert.GreaterOrEqual(t, rc.RightWidth, float32(MinColumnWidth))
	}
}

func TestResizeTooNarrowIgnored(t *testing.T) {
	st := new(HeaderState)
	cols := []Column{{Name: "a", Width: 20}, {Name: "b", Width: 20}}
	h := widgettest.New[Message](NewHeader(st, cols, identity), f32.Sz(500, 500))
	h.Send(widgettest.Press(f32.Pt(20, 5)))
	assert.False(t, st.Dragging())
}

func TestGutterCursor(t *testing.T) {
	st := new(HeaderState)
	h := widgettest.New[Message](resizeHeader(st), f32.Sz(500, 500))
	h.Cursor = f32.Pt(102, 5)
	_, c := h.Draw()
	assert.Equal(t, "ColResize", c.String())
	h.Cursor = f32.Pt(50, 5)
	_, c = h.Draw()
	assert.Equal(t, "Pointer", c.String())
	h.Cursor = f32.Pt(50, 50)
	_, c = h.Draw()
	assert.Equal(t, "Default", c.String())
}

func TestTableAppliesResize(t *testing.T) {
	st := NewState(Column{Name: "id", Label: "ID", Width: 100}, Column{Name: "name", Label: "Name", Width: 100})
	tbl := New(st, []record{{1, "x"}}, DataFunc[record](project), identity)
	h := widgettest.New[Message](tbl, f32.Sz(500, 500))
	// The header sits inside a one unit frame.
	h.Send(widgettest.Press(f32.Pt(101, 5)))
	h.Send(widgettest.Move(f32.Pt(121, 5)))
	h.Send(widgettest.Release(f32.Pt(121, 5)))
	assert.Equal(t, []Message{
		ResizeColumn{Left: "id", LeftWidth: 120, Right: "name", RightWidth: 80},
		Finished{},
	}, h.Messages())
	assert.Equal(t, float32(120), st.Columns[0].Width)
	assert.Equal(t, float32(80), st.Columns[1].Width)
}

func TestLayout(t *testing.T) {
	st := NewState(Column{Name: "id", Label: "ID"})
	tbl := New(st, []record{{id: 2}, {id: 1}, {id: 3}}, DataFunc[record](project), identity)
	h := widgettest.New[Message](tbl, f32.Sz(500, 500))
	n := h.Node
	require.Equal(t, 2, n.Len())
	header, body := n.Children()[0], n.Children()[1]
	// Label, text size and padding.
	assert.Equal(t, f32.Rect(1, 1, 29, 19), header.Bounds())
	assert.Equal(t, f32.Pt(1, 19), body.Bounds().Min)
	require.Equal(t, 3, body.Len())
	assert.Equal(t, f32.Pt(0, 10), body.Children()[1].Bounds().Min)
	assert.Equal(t, f32.Rect(4, 0, 9, 10), body.Children()[1].Children()[0].Bounds())
	// Header width plus the frame; header height plus three rows.
	assert.Equal(t, f32.Sz(30, 48), n.Size())
	assert.Equal(t, header.Size().Height+body.Size().Height, n.Size().Height)
}

func TestInvalidFieldOmitted(t *testing.T) {
	st := NewState(Column{Name: "id", Label: "ID"}, Column{Name: "missing", Label: "?"})
	tbl := New(st, []record{{id: 7}}, DataFunc[record](project), identity)
	h := widgettest.New[Message](tbl, f32.Sz(500, 500))
	p, _ := h.Draw()
	var contents []string
	for _, txt := range widgettest.Texts(p) {
		contents = append(contents, txt.Content)
	}
	assert.Equal(t, []string{"ID", "?", "7"}, contents)

	_, err := project(record{}, "missing")
	assert.True(t, errors.Is(err, ErrInvalidField))
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "missing", fe.Field)
}

func TestSortIndicatorAndShortName(t *testing.T) {
	st := NewState(Column{Name: "name", Label: "Identifier", ShortName: "Id", Width: 40, Order: Descending})
	tbl := New(st, []record{{name: "b"}, {name: "a"}}, DataFunc[record](project), identity)
	h := widgettest.New[Message](tbl, f32.Sz(500, 500))
	h.Cursor = f32.Pt(400, 400)
	p, _ := h.Draw()
	var contents []string
	for _, txt := range widgettest.Texts(p) {
		contents = append(contents, txt.Content)
	}
	assert.Equal(t, []string{"Id", "▼", "b", "a"}, contents)
}

func TestSortFailedProjectionsFirst(t *testing.T) {
	data := DataFunc[int](func(v int, field string) (Value, error) {
		if v < 0 {
			return Value{}, &FieldError{Field: field}
		}
		return Int(int64(v)), nil
	})
	records := []int{3, -1, 1, -2}
	assert.Equal(t, []int{1, 3, 2, 0}, Sort(records, data, "v", Ascending))
	assert.Equal(t, []int{0, 2, 1, 3}, Sort(records, data, "v", Descending))
	assert.Equal(t, []int{0, 1, 2, 3}, Sort(records, data, "v", Unordered))
}

func TestValueCompare(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	tests := []struct {
		a, b Value
		want int
	}{
		{Int(1), Int(2), -1},
		{Int(2), Float(1.5), 1},
		{Uint(3), Int(3), 0},
		{String("a"), String("b"), -1},
		{Bool(false), Bool(true), -1},
		{Time(now), Time(now.Add(time.Second)), -1},
		{Value{}, Int(-100), -1},
		{String("1"), Int(2), 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.a.Compare(tt.b), "%v vs %v", tt.a, tt.b)
		assert.Equal(t, -tt.want, tt.b.Compare(tt.a), "%v vs %v", tt.b, tt.a)
	}
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "-4", Int(-4).String())
	assert.Equal(t, "0.25", Float(.25).String())
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, "2024-01-02 03:04:05", Time(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)).String())
	assert.Equal(t, "", Value{}.String())
}

func TestHashTracksOrder(t *testing.T) {
	st := NewState(Column{Name: "id", Label: "ID"})
	tbl := New(st, []record{{id: 2}, {id: 1}}, DataFunc[record](project), identity)
	before := widget.Sum[Message](tbl)
	st.Toggle(0)
	assert.NotEqual(t, before, widget.Sum[Message](tbl))
}
