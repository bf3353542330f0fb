/*
Package font provides type describing font faces attributes.
*/
package font

import (
	gotext "github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
)

// A FontFace is a Font and a matching Face.
type FontFace struct {
	Font Font
	Face Face
}

// Style is the font style.
type Style int

// Weight is a font weight, in CSS units subtracted 400 so the zero value
// is normal text weight.
type Weight int

// Font specify a particular typeface variant, style and weight.
type Font struct {
	Typeface Typeface
	Variant  Variant
	Style    Style
	// Weight is the text weight. If zero, Normal is used instead.
	Weight Weight
}

// Face is a parsed font that can be instantiated at any pixel size.
// Implementations must be safe for concurrent use; the returned
// x/image faces and shaping faces are not.
type Face interface {
	// NewFace returns a face for drawing glyphs at size pixels.
	NewFace(size float32) (xfont.Face, error)
	// Face returns a shaping face for use by a single shaper.
	Face() gotext.Face
}

// Typeface identifies a particular typeface design. The empty
// string denotes the default typeface.
type Typeface string

// Variant denotes a typeface variant such as "Mono" or "Smallcaps".
type Variant string

const (
	Regular Style = iota
	Italic
)

const (
	Thin       Weight = -300
	ExtraLight Weight = -200
	Light      Weight = -100
	Normal     Weight = 0
	Medium     Weight = 100
	SemiBold   Weight = 200
	Bold       Weight = 300
	ExtraBold  Weight = 400
	Black      Weight = 500
)

// Distance returns how far f2 is from f as a font match. Typeface
// mismatches dominate, then variant, style and weight.
func (f Font) Distance(f2 Font) int {
	d := 0
	if f.Typeface != f2.Typeface {
		d += 1 << 20
	}
	if f.Variant != f2.Variant {
		d += 1 << 16
	}
	if f.Style != f2.Style {
		d += 1 << 12
	}
	w := int(f.Weight - f2.Weight)
	if w < 0 {
		w = -w
	}
	return d + w
}

func (s Style) String() string {
	switch s {
	case Regular:
		return "Regular"
	case Italic:
		return "Italic"
	default:
		panic("invalid Style")
	}
}

func (w Weight) String() string {
	switch w {
	case Thin:
		return "Thin"
	case ExtraLight:
		return "ExtraLight"
	case Light:
		return "Light"
	case Normal:
		return "Normal"
	case Medium:
		return "Medium"
	case SemiBold:
		return "SemiBold"
	case Bold:
		return "Bold"
	case ExtraBold:
		return "ExtraBold"
	case Black:
		return "Black"
	default:
		panic("invalid Weight")
	}
}
