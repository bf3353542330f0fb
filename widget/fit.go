// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"math"

	"awkit.org/f32"
	"awkit.org/layout"
)

// Fit scales content of an intrinsic size to the limits.
type Fit uint8

const (
	// Unscaled does not alter the scale of the content.
	Unscaled Fit = iota
	// Contain scales content as large as possible without cropping
	// and it preserves aspect-ratio.
	Contain
	// Cover scales the content to cover the limits and preserves
	// aspect-ratio.
	Cover
	// ScaleDown scales the content smaller without cropping,
	// when it exceeds the limits.
	// It preserves aspect-ratio.
	ScaleDown
	// Fill stretches the content to the limits and does not
	// preserve aspect-ratio.
	Fill
)

// Scale returns the size of a widget showing content of size within
// l, and the size the content is drawn at. Content larger than the
// widget is cropped.
func (fit Fit) Scale(l layout.Limits, size f32.Size) (box, drawn f32.Size) {
	if fit == Unscaled || size.Width <= 0 || size.Height <= 0 {
		return l.Resolve(size), size
	}
	sx := l.Max.Width / size.Width
	sy := l.Max.Height / size.Height
	finite := func(v float32) bool { return !math.IsInf(float64(v), 1) }
	switch {
	case !finite(sx) && !finite(sy):
		sx, sy = 1, 1
	case !finite(sx):
		sx = sy
	case !finite(sy):
		sy = sx
	}
	switch fit {
	case Contain:
		sx = min(sx, sy)
		sy = sx
	case Cover:
		sx = max(sx, sy)
		sy = sx
	case ScaleDown:
		sx = min(sx, sy, 1)
		sy = sx
	}
	drawn = f32.Sz(size.Width*sx, size.Height*sy)
	return l.Resolve(drawn), drawn
}
