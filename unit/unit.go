// SPDX-License-Identifier: Unlicense OR MIT

/*

Package unit implements the sizing policies widgets report to their
parents.

A Length is one of

	Shrink          take the intrinsic size of the content
	Fill            take all the space the parent offers
	FillPortion(n)  share remaining space with siblings, n parts of it
	Px(v)           a fixed size in pixels

Fill is FillPortion(1). Parents that distribute space, such as rows
and columns, consult FillFactor; everything else only distinguishes
fixed, shrinking and filling lengths.

*/
package unit

import "fmt"

// Length is a sizing policy along one axis.
type Length struct {
	kind    kind
	portion uint16
	v       float32
}

type kind uint8

const (
	kindShrink kind = iota
	kindFill
	kindPx
)

var (
	// Shrink is the zero Length.
	Shrink = Length{}
	// Fill takes all available space.
	Fill = Length{kind: kindFill, portion: 1}
)

// FillPortion returns a filling Length weighted by n. Zero portions
// are treated as 1.
func FillPortion(n uint16) Length {
	if n == 0 {
		n = 1
	}
	return Length{kind: kindFill, portion: n}
}

// Px returns a fixed Length of v pixels. Negative values are clamped
// to zero.
func Px(v float32) Length {
	if v < 0 {
		v = 0
	}
	return Length{kind: kindPx, v: v}
}

// FillFactor returns the portion of a filling Length, or zero for
// shrinking and fixed lengths.
func (l Length) FillFactor() uint16 {
	if l.kind != kindFill {
		return 0
	}
	return l.portion
}

// IsFill reports whether l fills available space.
func (l Length) IsFill() bool {
	return l.kind == kindFill
}

// IsShrink reports whether l is Shrink.
func (l Length) IsShrink() bool {
	return l.kind == kindShrink
}

// Fixed returns the pixel size of a fixed Length.
func (l Length) Fixed() (float32, bool) {
	if l.kind != kindPx {
		return 0, false
	}
	return l.v, true
}

func (l Length) String() string {
	switch l.kind {
	case kindShrink:
		return "shrink"
	case kindFill:
		if l.portion == 1 {
			return "fill"
		}
		return fmt.Sprintf("fill(%d)", l.portion)
	case kindPx:
		return fmt.Sprintf("%gpx", l.v)
	default:
		panic("unknown length")
	}
}
