// SPDX-License-Identifier: Unlicense OR MIT

package table

// Order is the sort order of a column.
type Order uint8

const (
	Unordered Order = iota
	Ascending
	Descending
)

// Toggle returns the next order in the cycle unordered, ascending,
// descending.
func (o Order) Toggle() Order {
	switch o {
	case Unordered:
		return Ascending
	case Ascending:
		return Descending
	default:
		return Unordered
	}
}

// Indicator returns the glyph drawn next to a sorted column label.
func (o Order) Indicator() string {
	switch o {
	case Ascending:
		return "▲"
	case Descending:
		return "▼"
	default:
		return ""
	}
}

func (o Order) String() string {
	switch o {
	case Unordered:
		return "Unordered"
	case Ascending:
		return "Ascending"
	case Descending:
		return "Descending"
	default:
		panic("unknown Order")
	}
}
