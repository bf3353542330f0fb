// SPDX-License-Identifier: Unlicense OR MIT

/*
Package text measures and lays out text runs for widgets.

A Shaper owns a font collection. Text is shaped with the go-text
HarfBuzz port and broken into lines at Unicode line break
opportunities; faces per size and recent layouts are cached. It is not safe for
concurrent use; like the widgets it serves, it belongs to the single
UI goroutine.
*/
package text

import (
	"math"
	"strings"
	"unicode"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"awkit.org/f32"
	"awkit.org/font"
	"awkit.org/font/gofont"
)

// DefaultSize is the text size used when none is configured.
const DefaultSize = 16

// Shaper measures text.
type Shaper struct {
	faces   []font.FontFace
	size    float32
	lang    language.Language
	cache   *lru[faceKey, xfont.Face]
	layouts *lru[layoutKey, layoutVal]

	shaper  shaping.HarfbuzzShaper
	wrapper shaping.LineWrapper
	// shapes holds the shaping face of each collection entry,
	// created on first use.
	shapes map[int]gotext.Face
}

// Line is one line of laid out text.
type Line struct {
	Text  string
	Width float32
}

// Metrics are the vertical metrics of a face at a size.
type Metrics struct {
	Ascent, Descent, Height float32
}

// NewShaper returns a Shaper for the collection. An empty collection
// falls back to the Go regular face.
func NewShaper(collection []font.FontFace) *Shaper {
	if len(collection) == 0 {
		collection = gofont.Regular()
	}
	return &Shaper{
		faces:   collection,
		size:    DefaultSize,
		lang:    language.NewLanguage("en"),
		cache:   newFaceCache(),
		layouts: newLayoutCache(),
		shapes:  make(map[int]gotext.Face),
	}
}

// SetDefaultTextSize changes the size reported by DefaultTextSize.
// Non-positive sizes are ignored.
func (s *Shaper) SetDefaultTextSize(size float32) {
	if size > 0 {
		s.size = size
	}
}

// DefaultTextSize returns the text size widgets use when none is
// configured.
func (s *Shaper) DefaultTextSize() float32 {
	return s.size
}

// Measure returns the size of str laid out at size, wrapping lines
// at bounds.Width.
func (s *Shaper) Measure(str string, size float32, f font.Font, bounds f32.Size) f32.Size {
	return s.layout(str, size, f, bounds).size
}

// Lines returns the lines str breaks into within bounds.
func (s *Shaper) Lines(str string, size float32, f font.Font, bounds f32.Size) []Line {
	return s.layout(str, size, f, bounds).lines
}

// Metrics returns the vertical metrics for f at size.
func (s *Shaper) Metrics(f font.Font, size float32) Metrics {
	face, ok := s.Face(f, size)
	if !ok {
		return Metrics{Ascent: size * .8, Descent: size * .2, Height: size}
	}
	m := face.Metrics()
	return Metrics{
		Ascent:  fixedToFloat(m.Ascent),
		Descent: fixedToFloat(m.Descent),
		Height:  fixedToFloat(m.Height),
	}
}

// Face returns the face in the collection closest to f, instantiated
// at size. The face is owned by the Shaper and must not be closed.
func (s *Shaper) Face(f font.Font, size float32) (xfont.Face, bool) {
	idx := s.closest(f)
	if idx < 0 || size <= 0 {
		return nil, false
	}
	k := faceKey{face: idx, size: size}
	if face, ok := s.cache.Get(k); ok {
		return face, true
	}
	face, err := s.faces[idx].Face.NewFace(size)
	if err != nil {
		return nil, false
	}
	s.cache.Put(k, face)
	return face, true
}

func (s *Shaper) closest(f font.Font) int {
	best, dist := -1, math.MaxInt
	for i, ff := range s.faces {
		if ff.Face == nil {
			continue
		}
		if d := ff.Font.Distance(f); d < dist {
			best, dist = i, d
		}
	}
	return best
}

func (s *Shaper) shapingFace(f font.Font) gotext.Face {
	idx := s.closest(f)
	if idx < 0 {
		return nil
	}
	if face, ok := s.shapes[idx]; ok {
		return face
	}
	face := s.faces[idx].Face.Face()
	s.shapes[idx] = face
	return face
}

func (s *Shaper) layout(str string, size float32, f font.Font, bounds f32.Size) layoutVal {
	if size <= 0 {
		size = s.size
	}
	k := layoutKey{size: size, bounds: bounds, str: str, font: f}
	if v, ok := s.layouts.Get(k); ok {
		return v
	}
	face := s.shapingFace(f)
	var v layoutVal
	for _, para := range strings.Split(str, "\n") {
		v.lines = append(v.lines, s.wrap(face, para, size, bounds.Width)...)
	}
	for _, l := range v.lines {
		v.size.Width = max(v.size.Width, l.Width)
	}
	v.size.Height = float32(len(v.lines)) * s.Metrics(f, size).Height
	s.layouts.Put(k, v)
	return v
}

// wrap shapes para and breaks it into lines no wider than width at
// Unicode line break opportunities. Without a face every rune
// advances by half the size and the paragraph is one line.
func (s *Shaper) wrap(face gotext.Face, para string, size, width float32) []Line {
	runes := []rune(para)
	if len(runes) == 0 {
		return []Line{{}}
	}
	if face == nil {
		return []Line{{Text: para, Width: float32(len(runes)) * size * .5}}
	}
	in := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      floatToFixed(size),
		Script:    script(runes),
		Language:  s.lang,
	}
	out := s.shaper.Shape(in)
	shaped, _ := s.wrapper.WrapParagraph(shaping.WrapConfig{}, maxWidth(width), runes, shaping.NewSliceIterator([]shaping.Output{out}))
	lines := make([]Line, 0, len(shaped))
	for _, sl := range shaped {
		lines = append(lines, toLine(sl, runes))
	}
	if len(lines) == 0 {
		lines = append(lines, Line{Text: para, Width: fixedToFloat(out.Advance)})
	}
	return lines
}

// toLine converts a wrapped line to its text and advance. Trailing
// spaces at the break are dropped from the text.
func toLine(sl shaping.Line, runes []rune) Line {
	if len(sl) == 0 {
		return Line{}
	}
	start, end := len(runes), 0
	var adv fixed.Int26_6
	for _, run := range sl {
		start = min(start, run.Runes.Offset)
		end = max(end, run.Runes.Offset+run.Runes.Count)
		adv += run.Advance
	}
	start, end = min(start, len(runes)), min(end, len(runes))
	if start > end {
		start = end
	}
	return Line{
		Text:  strings.TrimRightFunc(string(runes[start:end]), unicode.IsSpace),
		Width: fixedToFloat(adv),
	}
}

// script returns the writing system of the first rune that has one.
func script(runes []rune) language.Script {
	for _, r := range runes {
		if sc := language.LookupScript(r); sc != language.Common {
			return sc
		}
	}
	return language.Latin
}

func maxWidth(w float32) int {
	if math.IsInf(float64(w), 1) || w >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Ceil(float64(max(w, 0))))
}

func floatToFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
