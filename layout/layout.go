// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"math"

	"awkit.org/f32"
	"awkit.org/unit"
)

// Limits represent the acceptable range of sizes for a widget
// together with the size a filling widget should take.
type Limits struct {
	Min, Max f32.Size
	// fill is the size a Fill length resolves to. It starts at Min
	// so that widgets shrink unless they ask otherwise.
	fill f32.Size
}

// Axis is the Horizontal or Vertical direction.
type Axis uint8

// Alignment is the mutual alignment of a list of widgets.
type Alignment uint8

// Inset is the space around a widget.
type Inset struct {
	Top, Right, Bottom, Left float32
}

const (
	Start Alignment = iota
	End
	Middle
)

const (
	Horizontal Axis = iota
	Vertical
)

// NewLimits returns the Limits between min and max.
func NewLimits(min, max f32.Size) Limits {
	return Limits{Min: min, Max: max, fill: min}
}

// Exact returns the Limits that only admit size.
func Exact(size f32.Size) Limits {
	return Limits{Min: size, Max: size, fill: size}
}

// Width narrows the horizontal range according to the length policy.
func (l Limits) Width(w unit.Length) Limits {
	l.Min.Width, l.Max.Width, l.fill.Width = constrain(l.Min.Width, l.Max.Width, l.fill.Width, w)
	return l
}

// Height narrows the vertical range according to the length policy.
func (l Limits) Height(h unit.Length) Limits {
	l.Min.Height, l.Max.Height, l.fill.Height = constrain(l.Min.Height, l.Max.Height, l.fill.Height, h)
	return l
}

func constrain(lo, hi, fill float32, length unit.Length) (float32, float32, float32) {
	if v, ok := length.Fixed(); ok {
		v = clamp(v, lo, hi)
		return v, v, v
	}
	if length.IsFill() {
		if isInf(hi) {
			return lo, hi, lo
		}
		return lo, hi, hi
	}
	return lo, hi, lo
}

// MinWidth raises the minimum width to w, without exceeding the
// maximum.
func (l Limits) MinWidth(w float32) Limits {
	l.Min.Width = clamp(max(l.Min.Width, w), 0, l.Max.Width)
	l.fill.Width = max(l.fill.Width, l.Min.Width)
	return l
}

// MaxWidth lowers the maximum width to w, without going below the
// minimum.
func (l Limits) MaxWidth(w float32) Limits {
	l.Max.Width = max(min(l.Max.Width, w), l.Min.Width)
	l.fill.Width = min(l.fill.Width, l.Max.Width)
	return l
}

// MinHeight raises the minimum height to h, without exceeding the
// maximum.
func (l Limits) MinHeight(h float32) Limits {
	l.Min.Height = clamp(max(l.Min.Height, h), 0, l.Max.Height)
	l.fill.Height = max(l.fill.Height, l.Min.Height)
	return l
}

// MaxHeight lowers the maximum height to h, without going below the
// minimum.
func (l Limits) MaxHeight(h float32) Limits {
	l.Max.Height = max(min(l.Max.Height, h), l.Min.Height)
	l.fill.Height = min(l.fill.Height, l.Max.Height)
	return l
}

// Pad shrinks the limits by p on every edge.
func (l Limits) Pad(p float32) Limits {
	return l.Shrink(f32.Sz(2*p, 2*p))
}

// Inset shrinks the limits by the inset.
func (l Limits) Inset(in Inset) Limits {
	return l.Shrink(f32.Sz(in.Left+in.Right, in.Top+in.Bottom))
}

// Shrink reduces every bound by s, flooring at zero.
func (l Limits) Shrink(s f32.Size) Limits {
	sub := func(v, d float32) float32 {
		return max(v-d, 0)
	}
	l.Min = f32.Sz(sub(l.Min.Width, s.Width), sub(l.Min.Height, s.Height))
	l.Max = f32.Sz(sub(l.Max.Width, s.Width), sub(l.Max.Height, s.Height))
	l.fill = f32.Sz(sub(l.fill.Width, s.Width), sub(l.fill.Height, s.Height))
	return l
}

// Loose removes the minimum size.
func (l Limits) Loose() Limits {
	l.Min = f32.Size{}
	l.fill = f32.Size{}
	return l
}

// Resolve fits an intrinsic size into the limits. Filling lengths
// resolve to the maximum; everything else is clamped.
func (l Limits) Resolve(intrinsic f32.Size) f32.Size {
	w := max(min(intrinsic.Width, l.Max.Width), l.fill.Width, l.Min.Width)
	h := max(min(intrinsic.Height, l.Max.Height), l.fill.Height, l.Min.Height)
	return f32.Sz(w, h)
}

func (l Limits) String() string {
	return fmt.Sprintf("Limits{%v..%v}", l.Min, l.Max)
}

// UniformInset returns an Inset with a single inset applied to all
// edges.
func UniformInset(v float32) Inset {
	return Inset{Top: v, Right: v, Bottom: v, Left: v}
}

// Horizontal returns the sum of the left and right insets.
func (in Inset) Horizontal() float32 {
	return in.Left + in.Right
}

// Vertical returns the sum of the top and bottom insets.
func (in Inset) Vertical() float32 {
	return in.Top + in.Bottom
}

// Offset returns the position of the content inside the inset.
func (in Inset) Offset() f32.Point {
	return f32.Pt(in.Left, in.Top)
}

// Expand grows s by the inset.
func (in Inset) Expand(s f32.Size) f32.Size {
	return f32.Sz(s.Width+in.Horizontal(), s.Height+in.Vertical())
}

// Factor returns the fraction of free space placed before an item
// aligned by a.
func (a Alignment) Factor() float32 {
	switch a {
	case Middle:
		return .5
	case End:
		return 1
	default:
		return 0
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func isInf(v float32) bool {
	return math.IsInf(float64(v), 1)
}

func (a Alignment) String() string {
	switch a {
	case Start:
		return "Start"
	case End:
		return "End"
	case Middle:
		return "Middle"
	default:
		panic("unreachable")
	}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}
