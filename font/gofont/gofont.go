// SPDX-License-Identifier: Unlicense OR MIT

// Package gofont bundles the Go fonts used by text.NewShaper when
// no collection is supplied. Every face is registered under the "Go"
// typeface.
package gofont

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"

	"awkit.org/font"
	"awkit.org/font/opentype"
)

// variants lists the bundled faces after the regular one.
var variants = []struct {
	font font.Font
	ttf  []byte
}{
	{font.Font{Style: font.Italic}, goitalic.TTF},
	{font.Font{Weight: font.Bold}, gobold.TTF},
	{font.Font{Style: font.Italic, Weight: font.Bold}, gobolditalic.TTF},
	{font.Font{Weight: font.Medium}, gomedium.TTF},
	{font.Font{Variant: "Mono"}, gomono.TTF},
	{font.Font{Variant: "Mono", Weight: font.Bold}, gomonobold.TTF},
}

var (
	regular = sync.OnceValue(func() font.FontFace {
		return load(font.Font{}, goregular.TTF)
	})
	all = sync.OnceValue(func() []font.FontFace {
		faces := []font.FontFace{regular()}
		for _, v := range variants {
			faces = append(faces, load(v.font, v.ttf))
		}
		return faces[:len(faces):len(faces)]
	})
)

// Regular returns the Go regular face alone. It is the fallback
// collection of a Shaper and parses only one font file.
func Regular() []font.FontFace {
	return []font.FontFace{regular()}
}

// Collection returns the regular face followed by the italic, bold,
// medium and mono variants. The slice is shared; appending to it
// copies.
func Collection() []font.FontFace {
	return all()
}

// load parses ttf as the Go typeface variant fnt.
func load(fnt font.Font, ttf []byte) font.FontFace {
	face, err := opentype.Parse(ttf)
	if err != nil {
		panic(fmt.Errorf("gofont: bundled font: %w", err))
	}
	fnt.Typeface = "Go"
	return font.FontFace{Font: fnt, Face: face}
}
