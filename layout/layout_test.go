// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awkit.org/f32"
	"awkit.org/unit"
)

func TestLimitsResolve(t *testing.T) {
	l := NewLimits(f32.Sz(10, 10), f32.Sz(100, 50))
	tests := []struct {
		name      string
		w, h      unit.Length
		intrinsic f32.Size
		want      f32.Size
	}{
		{"shrink", unit.Shrink, unit.Shrink, f32.Sz(40, 20), f32.Sz(40, 20)},
		{"shrink below min", unit.Shrink, unit.Shrink, f32.Sz(2, 2), f32.Sz(10, 10)},
		{"shrink above max", unit.Shrink, unit.Shrink, f32.Sz(400, 200), f32.Sz(100, 50)},
		{"fill", unit.Fill, unit.FillPortion(2), f32.Sz(40, 20), f32.Sz(100, 50)},
		{"fixed", unit.Px(30), unit.Px(5), f32.Sz(40, 20), f32.Sz(30, 10)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := l.Width(tc.w).Height(tc.h).Resolve(tc.intrinsic)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLimitsFillUnbounded(t *testing.T) {
	l := NewLimits(f32.Size{}, f32.Infinity).Width(unit.Fill)
	assert.Equal(t, f32.Sz(25, 3), l.Resolve(f32.Sz(25, 3)))
}

func TestLimitsPad(t *testing.T) {
	l := NewLimits(f32.Sz(4, 4), f32.Sz(100, 50)).Pad(5)
	assert.Equal(t, f32.Sz(0, 0), l.Min)
	assert.Equal(t, f32.Sz(90, 40), l.Max)
	l = l.Pad(100)
	assert.Equal(t, f32.Size{}, l.Max)
}

func TestLimitsMaxWidthKeepsMin(t *testing.T) {
	l := NewLimits(f32.Sz(20, 0), f32.Sz(100, 100)).Width(unit.Fill).MaxWidth(10)
	assert.Equal(t, float32(20), l.Max.Width)
	assert.Equal(t, f32.Sz(20, 5), l.Resolve(f32.Sz(5, 5)))
}

func fixed(w, h float32) func(Limits) Node {
	return func(l Limits) Node {
		return NewNode(l.Width(unit.Px(w)).Height(unit.Px(h)).Resolve(f32.Size{}))
	}
}

func filling(l Limits) Node {
	return NewNode(l.Width(unit.Fill).Height(unit.Fill).Resolve(f32.Size{}))
}

func TestFlexRigid(t *testing.T) {
	f := Flex{Axis: Horizontal, Spacing: 2, Alignment: Middle}
	n := f.Resolve(NewLimits(f32.Size{}, f32.Sz(200, 100)), Rigid(fixed(10, 10)), Rigid(fixed(20, 30)))
	require.Equal(t, 2, n.Len())
	assert.Equal(t, f32.Sz(32, 30), n.Size())
	assert.Equal(t, f32.Rect(0, 10, 10, 20), n.Children()[0].Bounds())
	assert.Equal(t, f32.Rect(12, 0, 32, 30), n.Children()[1].Bounds())
}

func TestFlexPortions(t *testing.T) {
	f := Flex{Axis: Horizontal}
	n := f.Resolve(NewLimits(f32.Size{}, f32.Sz(100, 10)).Width(unit.Fill),
		Rigid(fixed(10, 10)),
		Flexed(1, filling),
		Flexed(2, filling),
	)
	cs := n.Children()
	assert.Equal(t, float32(30), cs[1].Size().Width)
	assert.Equal(t, float32(60), cs[2].Size().Width)
	assert.Equal(t, float32(40), cs[2].Bounds().Min.X)
	assert.Equal(t, f32.Sz(100, 10), n.Size())
}

func TestFlexVerticalPadding(t *testing.T) {
	f := Flex{Axis: Vertical, Padding: 3, Alignment: End}
	n := f.Resolve(NewLimits(f32.Size{}, f32.Sz(100, 100)), Rigid(fixed(10, 10)), Rigid(fixed(20, 5)))
	assert.Equal(t, f32.Sz(26, 21), n.Size())
	assert.Equal(t, f32.Rect(13, 3, 23, 13), n.Children()[0].Bounds())
	assert.Equal(t, f32.Rect(3, 13, 23, 18), n.Children()[1].Bounds())
}

func TestLayoutChildren(t *testing.T) {
	leaf := NewNode(f32.Sz(5, 5))
	leaf.Move(f32.Pt(10, 20))
	root := WithChildren(f32.Sz(50, 50), []Node{leaf})
	root.Move(f32.Pt(1, 1))
	l := Place(&root, f32.Pt(100, 100))
	assert.Equal(t, f32.Rect(101, 101, 151, 151), l.Bounds())
	assert.Equal(t, f32.Rect(111, 121, 116, 126), l.Child(0).Bounds())
	missing := l.Child(3)
	assert.Equal(t, 0, missing.Len())
	assert.True(t, missing.Bounds().Empty())
	var zero Layout
	assert.Nil(t, zero.Children())
}

func TestNodeAlign(t *testing.T) {
	n := NewNode(f32.Sz(10, 4))
	n.Align(Middle, End, f32.Sz(30, 10))
	assert.Equal(t, f32.Rect(10, 6, 20, 10), n.Bounds())
}
