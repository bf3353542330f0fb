// SPDX-License-Identifier: Unlicense OR MIT

package table

// MinColumnWidth is the narrowest a column can be resized to.
const MinColumnWidth = 30

// Column describes one table column.
type Column struct {
	// Name is the field projected for the column.
	Name string
	// Label is the header text, and ShortName its replacement when
	// the label does not fit.
	Label     string
	ShortName string
	Order     Order
	// Width is the width of the column. Zero fits the header.
	Width float32
}

// State is the persistent state of a table: its columns with their
// widths and sort orders, and the header interaction state.
type State struct {
	Columns []Column
	Header  HeaderState
}

// NewState returns the state of a table with columns.
func NewState(columns ...Column) *State {
	return &State{Columns: columns}
}

// Message is published by tables and headers.
type Message interface {
	ImplementsMessage()
}

// ResizeColumn is published while a column boundary is dragged.
type ResizeColumn struct {
	Left       string
	LeftWidth  float32
	Right      string
	RightWidth float32
}

// Finished is published when a resize drag ends.
type Finished struct{}

// Pressed is published when a header cell is clicked.
type Pressed struct {
	Index int
}

// Sorted is published by a Table after a click changed the order.
type Sorted struct {
	Column string
	Order  Order
}

func (ResizeColumn) ImplementsMessage() {}
func (Finished) ImplementsMessage()     {}
func (Pressed) ImplementsMessage()      {}
func (Sorted) ImplementsMessage()       {}

// Toggle advances the order of column i and resets every other
// column to Unordered. Out of range indices are ignored.
func (s *State) Toggle(i int) {
	if i < 0 || i >= len(s.Columns) {
		return
	}
	for j := range s.Columns {
		if j == i {
			s.Columns[j].Order = s.Columns[j].Order.Toggle()
		} else {
			s.Columns[j].Order = Unordered
		}
	}
}

// Sorted returns the index and order of the ordered column, or -1
// and Unordered.
func (s *State) Sorted() (int, Order) {
	for i, c := range s.Columns {
		if c.Order != Unordered {
			return i, c.Order
		}
	}
	return -1, Unordered
}

// Column returns the index of the column named name, or -1.
func (s *State) Column(name string) int {
	for i, c := range s.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Apply updates the state for a message published by a Header:
// resizes set the column widths and presses toggle the order.
func (s *State) Apply(m Message) {
	switch m := m.(type) {
	case ResizeColumn:
		if i := s.Column(m.Left); i >= 0 {
			s.Columns[i].Width = m.LeftWidth
		}
		if i := s.Column(m.Right); i >= 0 {
			s.Columns[i].Width = m.RightWidth
		}
	case Pressed:
		s.Toggle(m.Index)
	}
}
