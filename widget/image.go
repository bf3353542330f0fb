// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"awkit.org/f32"
	"awkit.org/io/clipboard"
	"awkit.org/io/event"
	"awkit.org/io/pointer"
	"awkit.org/layout"
	"awkit.org/op"
)

// Image is a widget that displays an image.
type Image[M any] struct {
	Sizing
	// Src is the image to display.
	Src image.Image
	// Fit specifies how to scale the image to the limits.
	// By default it does not do any scaling.
	Fit Fit
	// Position of the image within the widget bounds.
	Horizontal, Vertical layout.Alignment
	// Scale is the ratio of widget units to image pixels. Zero means
	// one.
	Scale float32
}

// NewImage returns an unscaled Image of src.
func NewImage[M any](src image.Image) Image[M] {
	return Image[M]{Src: src}
}

func (im Image[M]) intrinsic() f32.Size {
	if im.Src == nil {
		return f32.Size{}
	}
	scale := im.Scale
	if scale <= 0 {
		scale = 1
	}
	sz := im.Src.Bounds().Size()
	return f32.Sz(float32(sz.X)*scale, float32(sz.Y)*scale)
}

func (im Image[M]) Layout(r Renderer, l layout.Limits) layout.Node {
	l = l.Width(im.W).Height(im.H)
	box, _ := im.Fit.Scale(l, im.intrinsic())
	return layout.NewNode(box)
}

func (im Image[M]) Hash(h *Hasher) {
	h.String("image")
	h.Size(im.intrinsic())
	h.Int(int64(im.Fit))
	im.Sizing.Hash(h)
}

// imageBounds returns where the image is drawn for a widget at b.
func (im Image[M]) imageBounds(b f32.Rectangle) f32.Rectangle {
	l := layout.Exact(b.Size())
	_, drawn := im.Fit.Scale(l, im.intrinsic())
	n := layout.NewNode(drawn)
	n.Align(im.Horizontal, im.Vertical, b.Size())
	return n.Bounds().Add(b.Min)
}

func (im Image[M]) Draw(r Renderer, d Defaults, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) (op.Primitive, pointer.Cursor) {
	if im.Src == nil {
		return op.None{}, pointer.CursorDefault
	}
	b := l.Bounds()
	return op.Clip{
		Bounds:  b,
		Content: op.Image{Bounds: im.imageBounds(b), Src: im.Src},
	}, pointer.CursorDefault
}

func (im Image[M]) OnEvent(event.Event, layout.Layout, f32.Point, Renderer, clipboard.Clipboard, *Shell[M]) event.Status {
	return event.Ignored
}
