// SPDX-License-Identifier: Unlicense OR MIT

/*

Package op describes the primitives widgets draw with.

A widget's Draw method returns a tree of primitives in absolute window
coordinates. The host walks the tree in order, later primitives
painting over earlier ones:

	op.Group{
		op.Quad{Bounds: r, Background: bg, Border: op.Border{Radius: 4, Width: 1, Color: fg}},
		op.Text{Content: "hello", Bounds: r, Color: fg, Size: 16},
	}

A Clip restricts its content to a rectangle. None draws nothing and is
what widgets return when there is nothing to draw.

*/
package op

import (
	"image"
	"image/color"

	"awkit.org/f32"
	"awkit.org/font"
)

// Primitive is one node of a drawing tree.
type Primitive interface {
	// ImplementsPrimitive is a marker method.
	ImplementsPrimitive()
}

// None draws nothing.
type None struct{}

// Group draws its primitives in order.
type Group []Primitive

// Border describes the outline of a Quad.
type Border struct {
	Radius float32
	Width  float32
	Color  color.NRGBA
}

// Shadow is drawn underneath a Quad, offset from it.
type Shadow struct {
	Offset f32.Point
	Color  color.NRGBA
}

// Quad is a filled rectangle with optional rounded border.
type Quad struct {
	Bounds     f32.Rectangle
	Background color.NRGBA
	Border     Border
	Shadow     Shadow
}

// TextAlign is the alignment of a text run inside its bounds.
type TextAlign uint8

const (
	AlignStart TextAlign = iota
	AlignMiddle
	AlignEnd
)

// Text is a run of text.
type Text struct {
	Content string
	// Bounds is the area to place the text in according to the
	// alignments. Text is not clipped to Bounds; wrap in a Clip for
	// that.
	Bounds     f32.Rectangle
	Color      color.NRGBA
	Size       float32
	Font       font.Font
	Horizontal TextAlign
	Vertical   TextAlign
}

// Image draws Src scaled to Bounds.
type Image struct {
	Bounds f32.Rectangle
	Src    image.Image
}

// Clip draws Content restricted to Bounds.
type Clip struct {
	Bounds  f32.Rectangle
	Content Primitive
}

// Add appends p to the group, flattening nested groups and dropping
// None primitives.
func (g Group) Add(p ...Primitive) Group {
	for _, p := range p {
		switch p := p.(type) {
		case nil, None:
		case Group:
			g = g.Add(p...)
		default:
			g = append(g, p)
		}
	}
	return g
}

// Simplify returns p with empty groups collapsed to None and single
// element groups replaced by their element.
func Simplify(p Primitive) Primitive {
	g, ok := p.(Group)
	if !ok {
		if p == nil {
			return None{}
		}
		return p
	}
	g = Group{}.Add(g...)
	switch len(g) {
	case 0:
		return None{}
	case 1:
		return g[0]
	default:
		return g
	}
}

// Walk calls f for every non-group primitive in p, depth first. Clip
// primitives are passed to f before their content is walked.
func Walk(p Primitive, f func(Primitive)) {
	switch p := p.(type) {
	case nil, None:
	case Group:
		for _, c := range p {
			Walk(c, f)
		}
	case Clip:
		f(p)
		Walk(p.Content, f)
	default:
		f(p)
	}
}

// Transparent reports whether c is fully transparent.
func Transparent(c color.NRGBA) bool {
	return c.A == 0
}

func (None) ImplementsPrimitive()  {}
func (Group) ImplementsPrimitive() {}
func (Quad) ImplementsPrimitive()  {}
func (Text) ImplementsPrimitive()  {}
func (Image) ImplementsPrimitive() {}
func (Clip) ImplementsPrimitive()  {}
