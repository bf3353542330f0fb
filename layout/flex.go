// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"awkit.org/f32"
)

// Flex lays out child elements along an axis,
// according to alignment and weights.
type Flex struct {
	// Axis is the main axis, either Horizontal or Vertical.
	Axis Axis
	// Spacing is the gap between consecutive children.
	Spacing float32
	// Padding surrounds all children.
	Padding float32
	// Alignment is the alignment in the cross axis.
	Alignment Alignment
}

// FlexChild is the descriptor for a Flex child.
type FlexChild struct {
	weight uint16
	layout func(Limits) Node
}

// Rigid returns a Flex child with a maximal constraint of the
// remaining space.
func Rigid(layout func(Limits) Node) FlexChild {
	return FlexChild{layout: layout}
}

// Flexed returns a Flex child forced to take up weight parts of the
// space left by rigid children. A zero weight is a Rigid child.
func Flexed(weight uint16, layout func(Limits) Node) FlexChild {
	return FlexChild{weight: weight, layout: layout}
}

// Resolve lays out the children within l and returns their parent
// node. Rigid children are laid out before Flexed children, but the
// returned nodes keep the order of children.
func (f Flex) Resolve(l Limits, children ...FlexChild) Node {
	l = l.Pad(f.Padding)
	nodes := make([]Node, len(children))
	var spacing float32
	if len(children) > 1 {
		spacing = f.Spacing * float32(len(children)-1)
	}
	mainMax := axisMain(f.Axis, l.Max) - spacing
	crossMax := axisCross(f.Axis, l.Max)
	maxCross := axisCross(f.Axis, l.Min)
	var weights uint
	// Lay out Rigid children.
	for i, child := range children {
		if child.weight > 0 {
			weights += uint(child.weight)
			continue
		}
		cs := NewLimits(f32.Size{}, axisSize(f.Axis, max(mainMax, 0), crossMax))
		n := child.layout(cs)
		mainMax -= axisMain(f.Axis, n.Size())
		maxCross = max(maxCross, axisCross(f.Axis, n.Size()))
		nodes[i] = n
	}
	remaining := max(mainMax, 0)
	// fraction is the rounding error from a Flex weighting.
	var fraction float32
	// Lay out Flexed children.
	for i, child := range children {
		if child.weight == 0 {
			continue
		}
		size := remaining*float32(child.weight)/float32(weights) + fraction
		mainMin := size
		if isInf(size) {
			mainMin = 0
		} else {
			whole := float32(int(size + .5))
			fraction = size - whole
			size, mainMin = whole, whole
		}
		cs := NewLimits(axisSize(f.Axis, mainMin, 0), axisSize(f.Axis, size, crossMax))
		n := child.layout(cs)
		maxCross = max(maxCross, axisCross(f.Axis, n.Size()))
		nodes[i] = n
	}
	main := f.Padding
	for i := range nodes {
		if i > 0 {
			main += f.Spacing
		}
		n := &nodes[i]
		n.Move(axisPoint(f.Axis, main, f.Padding))
		cross := (maxCross - axisCross(f.Axis, n.Size())) * f.Alignment.Factor()
		n.Translate(axisPoint(f.Axis, 0, cross))
		main += axisMain(f.Axis, n.Size())
	}
	intrinsic := axisSize(f.Axis, main-f.Padding, maxCross)
	size := l.Resolve(intrinsic)
	return WithChildren(size.Pad(f.Padding), nodes)
}

func axisPoint(a Axis, main, cross float32) f32.Point {
	if a == Horizontal {
		return f32.Pt(main, cross)
	} else {
		return f32.Pt(cross, main)
	}
}

func axisSize(a Axis, main, cross float32) f32.Size {
	if a == Horizontal {
		return f32.Sz(main, cross)
	} else {
		return f32.Sz(cross, main)
	}
}

func axisMain(a Axis, sz f32.Size) float32 {
	if a == Horizontal {
		return sz.Width
	} else {
		return sz.Height
	}
}

func axisCross(a Axis, sz f32.Size) float32 {
	if a == Horizontal {
		return sz.Height
	} else {
		return sz.Width
	}
}
