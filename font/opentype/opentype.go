// SPDX-License-Identifier: Unlicense OR MIT

// Package opentype loads OpenType and TrueType font files.
//
// A parsed font serves two consumers: go-text shaping faces for
// measuring and line breaking, and x/image faces for rasterizing
// glyphs.
package opentype

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	fontapi "github.com/go-text/typesetting/opentype/api/font"
	"github.com/go-text/typesetting/opentype/api/metadata"
	"github.com/go-text/typesetting/opentype/loader"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	awfont "awkit.org/font"
)

// Face is a parsed font. A Face is safe for concurrent use; the
// faces it returns from NewFace and Face are not.
type Face struct {
	font    *opentype.Font
	shaping font.Font
	aspect  metadata.Aspect
	family  string
	variant string
}

// Parse constructs a Face from source bytes.
func Parse(src []byte) (Face, error) {
	f, err := opentype.Parse(src)
	if err != nil {
		return Face{}, fmt.Errorf("opentype: failed parsing font: %w", err)
	}
	ld, err := loader.NewLoader(bytes.NewReader(src))
	if err != nil {
		return Face{}, fmt.Errorf("opentype: failed loading font: %w", err)
	}
	return newFace(f, ld)
}

// ParseCollection parses a font file or collection. Single font
// files return a slice of length 1. Every returned face is labeled
// with typeface, overriding the family name stored in the file when
// typeface is not empty.
func ParseCollection(src []byte, typeface awfont.Typeface) ([]awfont.FontFace, error) {
	c, err := opentype.ParseCollection(src)
	if err != nil {
		return nil, fmt.Errorf("opentype: failed parsing collection: %w", err)
	}
	lds, err := loader.NewLoaders(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("opentype: failed loading collection: %w", err)
	}
	if len(lds) != c.NumFonts() {
		return nil, fmt.Errorf("opentype: collection has %d fonts, loaded %d", c.NumFonts(), len(lds))
	}
	out := make([]awfont.FontFace, len(lds))
	for i, ld := range lds {
		f, err := c.Font(i)
		if err != nil {
			return nil, fmt.Errorf("opentype: reading font %d of collection: %w", i, err)
		}
		face, err := newFace(f, ld)
		if err != nil {
			return nil, fmt.Errorf("opentype: reading font %d of collection: %w", i, err)
		}
		fnt := face.Font()
		if typeface != "" {
			fnt.Typeface = typeface
		}
		out[i] = awfont.FontFace{Font: fnt, Face: face}
	}
	return out, nil
}

func newFace(f *opentype.Font, ld *loader.Loader) (Face, error) {
	ft, err := fontapi.NewFont(ld)
	if err != nil {
		return Face{}, fmt.Errorf("opentype: failed parsing font tables: %w", err)
	}
	data := metadata.Metadata(ld)
	face := Face{
		font:    f,
		shaping: ft,
		aspect:  data.Aspect,
		family:  data.Family,
	}
	if data.IsMonospace {
		face.variant = "Mono"
	}
	return face, nil
}

// NewFace returns a face for drawing and measuring at size pixels.
func (f Face) NewFace(size float32) (xfont.Face, error) {
	if f.font == nil {
		return nil, fmt.Errorf("opentype: empty face")
	}
	return opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: xfont.HintingNone,
	})
}

// Face returns a shaping face, or nil for the zero Face.
func (f Face) Face() font.Face {
	if f.shaping == nil {
		return nil
	}
	return &fontapi.Face{Font: f.shaping}
}

// Font returns the font description stored in the file.
func (f Face) Font() awfont.Font {
	return awfont.Font{
		Typeface: awfont.Typeface(f.family),
		Variant:  awfont.Variant(f.variant),
		Style:    f.style(),
		Weight:   f.weight(),
	}
}

func (f Face) style() awfont.Style {
	if f.aspect.Style == metadata.StyleItalic {
		return awfont.Italic
	}
	return awfont.Regular
}

func (f Face) weight() awfont.Weight {
	switch f.aspect.Weight {
	case metadata.WeightThin:
		return awfont.Thin
	case metadata.WeightExtraLight:
		return awfont.ExtraLight
	case metadata.WeightLight:
		return awfont.Light
	case metadata.WeightMedium:
		return awfont.Medium
	case metadata.WeightSemibold:
		return awfont.SemiBold
	case metadata.WeightBold:
		return awfont.Bold
	case metadata.WeightExtraBold:
		return awfont.ExtraBold
	case metadata.WeightBlack:
		return awfont.Black
	default:
		return awfont.Normal
	}
}
