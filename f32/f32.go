// SPDX-License-Identifier: Unlicense OR MIT

/*
Package f32 is a float32 implementation of package image's
Point and Rectangle, plus a Size type for layout results.

The coordinate space has the origin in the top left
corner with the axes extending right and down.
*/
package f32

import (
	"fmt"
	"math"
)

// A Point is a two dimensional point.
type Point struct {
	X, Y float32
}

// Size is a width and height pair.
type Size struct {
	Width, Height float32
}

// A Rectangle contains the points (X, Y) where Min.X <= X < Max.X,
// Min.Y <= Y < Max.Y.
type Rectangle struct {
	Min, Max Point
}

// Infinity is the size used for unbounded layout.
var Infinity = Size{Width: float32(math.Inf(1)), Height: float32(math.Inf(1))}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h float32) Size {
	return Size{Width: w, Height: h}
}

// Rect is shorthand for Rectangle{Min: Pt(x0, y0), Max: Pt(x1, y1)}.
// The returned rectangle has x0 <= x1 and y0 <= y1.
func Rect(x0, y0, x1, y1 float32) Rectangle {
	return Rectangle{Min: Pt(x0, y0), Max: Pt(x1, y1)}.Canon()
}

// Add return the point p+p2.
func (p Point) Add(p2 Point) Point {
	return Point{X: p.X + p2.X, Y: p.Y + p2.Y}
}

// Sub returns the vector p-p2.
func (p Point) Sub(p2 Point) Point {
	return Point{X: p.X - p2.X, Y: p.Y - p2.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// In reports whether p is in r.
func (p Point) In(r Rectangle) bool {
	return r.Min.X <= p.X && p.X < r.Max.X &&
		r.Min.Y <= p.Y && p.Y < r.Max.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Max returns the component-wise maximum of s and s2.
func (s Size) Max(s2 Size) Size {
	return Size{Width: max(s.Width, s2.Width), Height: max(s.Height, s2.Height)}
}

// Min returns the component-wise minimum of s and s2.
func (s Size) Min(s2 Size) Size {
	return Size{Width: min(s.Width, s2.Width), Height: min(s.Height, s2.Height)}
}

// Pad returns s grown by p on every edge.
func (s Size) Pad(p float32) Size {
	return Size{Width: s.Width + 2*p, Height: s.Height + 2*p}
}

// Point converts s to the vector (Width, Height).
func (s Size) Point() Point {
	return Point{X: s.Width, Y: s.Height}
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

// RectAt returns the rectangle of size s with its top left corner at p.
func RectAt(p Point, s Size) Rectangle {
	return Rectangle{Min: p, Max: Point{X: p.X + s.Width, Y: p.Y + s.Height}}
}

// Size returns r's width and height.
func (r Rectangle) Size() Size {
	return Size{Width: r.Dx(), Height: r.Dy()}
}

// Dx returns r's width.
func (r Rectangle) Dx() float32 {
	return r.Max.X - r.Min.X
}

// Dy returns r's Height.
func (r Rectangle) Dy() float32 {
	return r.Max.Y - r.Min.Y
}

// Center returns the center point of r.
func (r Rectangle) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) * .5, Y: (r.Min.Y + r.Max.Y) * .5}
}

// Contains reports whether p lies in r. Unlike Point.In, points on
// the right and bottom edges are included, which is what hit testing
// of adjacent widgets wants for the last pixel row.
func (r Rectangle) Contains(p Point) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// Intersect returns the intersection of r and s.
func (r Rectangle) Intersect(s Rectangle) Rectangle {
	if r.Min.X < s.Min.X {
		r.Min.X = s.Min.X
	}
	if r.Min.Y < s.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if r.Max.X > s.Max.X {
		r.Max.X = s.Max.X
	}
	if r.Max.Y > s.Max.Y {
		r.Max.Y = s.Max.Y
	}
	return r
}

// Union returns the union of r and s.
func (r Rectangle) Union(s Rectangle) Rectangle {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	if r.Min.X > s.Min.X {
		r.Min.X = s.Min.X
	}
	if r.Min.Y > s.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if r.Max.X < s.Max.X {
		r.Max.X = s.Max.X
	}
	if r.Max.Y < s.Max.Y {
		r.Max.Y = s.Max.Y
	}
	return r
}

// Canon returns the canonical version of r, where Min is to
// the upper left of Max.
func (r Rectangle) Canon() Rectangle {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Empty reports whether r represents the empty area.
func (r Rectangle) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Inset shrinks r by d on every edge. Negative values grow r.
func (r Rectangle) Inset(d float32) Rectangle {
	r.Min.X += d
	r.Min.Y += d
	r.Max.X -= d
	r.Max.Y -= d
	if r.Max.X < r.Min.X {
		r.Max.X = r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Max.Y = r.Min.Y
	}
	return r
}

// Add offsets r with the vector p.
func (r Rectangle) Add(p Point) Rectangle {
	return Rectangle{
		Point{r.Min.X + p.X, r.Min.Y + p.Y},
		Point{r.Max.X + p.X, r.Max.Y + p.Y},
	}
}

// Sub offsets r with the vector -p.
func (r Rectangle) Sub(p Point) Rectangle {
	return Rectangle{
		Point{r.Min.X - p.X, r.Min.Y - p.Y},
		Point{r.Max.X - p.X, r.Max.Y - p.Y},
	}
}

func (r Rectangle) String() string {
	return r.Min.String() + "-" + r.Max.String()
}
