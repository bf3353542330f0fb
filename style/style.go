// SPDX-License-Identifier: Unlicense OR MIT

/*
Package style defines the contract between widgets and their
appearance.

Every widget package declares a concrete Style value and a sheet
returning one Style per interaction state. Widgets pick the state and
call Resolve; they never inspect the sheet's concrete type.
*/
package style

import (
	"image/color"
)

// Sheet returns a style for each interaction state.
type Sheet[S any] interface {
	Active() S
	Hovered() S
	Pressed() S
	Disabled() S
}

// Status is the interaction state of a widget.
type Status uint8

const (
	Active Status = iota
	Hovered
	Pressed
	Disabled
)

// Of returns the status for the given conditions. Disabled beats
// pressed, which beats hovered.
func Of(hovered, pressed, disabled bool) Status {
	switch {
	case disabled:
		return Disabled
	case pressed:
		return Pressed
	case hovered:
		return Hovered
	default:
		return Active
	}
}

// Resolve returns the style for st from sheet.
func Resolve[S any](sheet Sheet[S], st Status) S {
	switch st {
	case Hovered:
		return sheet.Hovered()
	case Pressed:
		return sheet.Pressed()
	case Disabled:
		return sheet.Disabled()
	default:
		return sheet.Active()
	}
}

// Static is a Sheet returning the same style in every state.
type Static[S any] struct {
	S S
}

func (s Static[S]) Active() S   { return s.S }
func (s Static[S]) Hovered() S  { return s.S }
func (s Static[S]) Pressed() S  { return s.S }
func (s Static[S]) Disabled() S { return s.S }

// RGB returns the opaque colour 0xRRGGBB.
func RGB(c uint32) color.NRGBA {
	return ARGB(0xff000000 | c)
}

// ARGB returns the colour 0xAARRGGBB.
func ARGB(c uint32) color.NRGBA {
	return color.NRGBA{A: uint8(c >> 24), R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}

// MulAlpha scales the alpha of c by alpha/255.
func MulAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = uint8(uint32(c.A) * uint32(alpha) / 0xFF)
	return c
}

// Mix returns the blend of c1 and c2, t of the way to c2.
func Mix(c1, c2 color.NRGBA, t float32) color.NRGBA {
	if t <= 0 {
		return c1
	}
	if t >= 1 {
		return c2
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(float32(a) + (float32(b)-float32(a))*t + .5)
	}
	return color.NRGBA{
		R: lerp(c1.R, c2.R),
		G: lerp(c1.G, c2.G),
		B: lerp(c1.B, c2.B),
		A: lerp(c1.A, c2.A),
	}
}

// Palette lists the colours styles are built from.
var (
	Black       = RGB(0x000000)
	White       = RGB(0xffffff)
	Transparent = color.NRGBA{}
	Gray        = RGB(0x808080)
	LightGray   = RGB(0xd3d3d3)
	Primary     = RGB(0x3f51b5)
)
