// SPDX-License-Identifier: Unlicense OR MIT

/*
Package raster paints drawing primitives into an RGBA image on the
CPU.

Quads are rasterized with golang.org/x/image/vector, text is drawn
with golang.org/x/image/font faces from a text.Shaper and images are
scaled with golang.org/x/image/draw. Clips restrict painting through
sub-images of the destination.
*/
package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"awkit.org/f32"
	"awkit.org/op"
	"awkit.org/text"
)

// kappa is the cubic Bézier control distance for a quarter circle.
const kappa = 0.5522847498

// Rasterizer paints primitive trees. The zero value draws quads and
// images but no text.
type Rasterizer struct {
	Shaper *text.Shaper

	vr vector.Rasterizer
}

// New returns a Rasterizer drawing text with s.
func New(s *text.Shaper) *Rasterizer {
	return &Rasterizer{Shaper: s}
}

// Frame paints p over dst.
func (r *Rasterizer) Frame(p op.Primitive, dst *image.RGBA) {
	r.paint(p, dst, dst.Bounds())
}

func (r *Rasterizer) paint(p op.Primitive, dst *image.RGBA, clip image.Rectangle) {
	if clip.Empty() {
		return
	}
	switch p := p.(type) {
	case op.Group:
		for _, c := range p {
			r.paint(c, dst, clip)
		}
	case op.Clip:
		r.paint(p.Content, dst, clip.Intersect(roundOut(p.Bounds)))
	case op.Quad:
		r.quad(p, dst, clip)
	case op.Text:
		r.text(p, dst, clip)
	case op.Image:
		if p.Src == nil {
			return
		}
		b := roundOut(p.Bounds)
		sub := dst.SubImage(clip).(*image.RGBA)
		draw.ApproxBiLinear.Scale(sub, b, p.Src, p.Src.Bounds(), draw.Over, nil)
	}
}

func (r *Rasterizer) quad(q op.Quad, dst *image.RGBA, clip image.Rectangle) {
	radius := q.Border.Radius
	if !op.Transparent(q.Shadow.Color) {
		r.fill(dst, clip, q.Bounds.Add(q.Shadow.Offset), radius, 0, q.Shadow.Color)
	}
	if !op.Transparent(q.Background) {
		r.fill(dst, clip, q.Bounds, radius, 0, q.Background)
	}
	if q.Border.Width > 0 && !op.Transparent(q.Border.Color) {
		r.fill(dst, clip, q.Bounds, radius, q.Border.Width, q.Border.Color)
	}
}

// fill paints the rounded rectangle b in col. A positive ring width
// paints only the outline of that width.
func (r *Rasterizer) fill(dst *image.RGBA, clip image.Rectangle, b f32.Rectangle, radius, ring float32, col color.NRGBA) {
	bounds := roundOut(b)
	target := bounds.Intersect(clip)
	if target.Empty() {
		return
	}
	mask := r.mask(bounds, b, radius)
	if ring > 0 {
		inner := r.mask(bounds, b.Inset(ring), max(radius-ring, 0))
		for i, a := range inner.Pix {
			mask.Pix[i] = uint8(uint32(mask.Pix[i]) * uint32(255-a) / 255)
		}
	}
	draw.DrawMask(dst, target, image.NewUniform(col), image.Point{}, mask, target.Min.Sub(bounds.Min), draw.Over)
}

// mask returns the coverage of the rounded rectangle b within bounds.
func (r *Rasterizer) mask(bounds image.Rectangle, b f32.Rectangle, radius float32) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	if b.Empty() {
		return mask
	}
	r.vr.Reset(bounds.Dx(), bounds.Dy())
	r.vr.DrawOp = draw.Src
	roundRect(&r.vr, b.Sub(f32.Pt(float32(bounds.Min.X), float32(bounds.Min.Y))), radius)
	r.vr.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

func roundRect(z *vector.Rasterizer, b f32.Rectangle, radius float32) {
	radius = min(radius, b.Dx()/2, b.Dy()/2)
	x0, y0, x1, y1 := b.Min.X, b.Min.Y, b.Max.X, b.Max.Y
	if radius <= 0 {
		z.MoveTo(x0, y0)
		z.LineTo(x1, y0)
		z.LineTo(x1, y1)
		z.LineTo(x0, y1)
		z.ClosePath()
		return
	}
	c := radius * (1 - kappa)
	z.MoveTo(x0+radius, y0)
	z.LineTo(x1-radius, y0)
	z.CubeTo(x1-c, y0, x1, y0+c, x1, y0+radius)
	z.LineTo(x1, y1-radius)
	z.CubeTo(x1, y1-c, x1-c, y1, x1-radius, y1)
	z.LineTo(x0+radius, y1)
	z.CubeTo(x0+c, y1, x0, y1-c, x0, y1-radius)
	z.LineTo(x0, y0+radius)
	z.CubeTo(x0, y0+c, x0+c, y0, x0+radius, y0)
	z.ClosePath()
}

func (r *Rasterizer) text(t op.Text, dst *image.RGBA, clip image.Rectangle) {
	if r.Shaper == nil || t.Content == "" || op.Transparent(t.Color) {
		return
	}
	size := t.Size
	if size <= 0 {
		size = r.Shaper.DefaultTextSize()
	}
	face, ok := r.Shaper.Face(t.Font, size)
	if !ok {
		return
	}
	m := r.Shaper.Metrics(t.Font, size)
	lines := r.Shaper.Lines(t.Content, size, t.Font, t.Bounds.Size())
	total := float32(len(lines)) * m.Height
	y := t.Bounds.Min.Y + (t.Bounds.Dy()-total)*factor(t.Vertical)
	d := font.Drawer{
		Dst:  dst.SubImage(clip).(*image.RGBA),
		Src:  image.NewUniform(t.Color),
		Face: face,
	}
	for _, l := range lines {
		x := t.Bounds.Min.X + (t.Bounds.Dx()-l.Width)*factor(t.Horizontal)
		d.Dot = fixed.Point26_6{X: toFixed(x), Y: toFixed(y + m.Ascent)}
		d.DrawString(l.Text)
		y += m.Height
	}
}

func factor(a op.TextAlign) float32 {
	switch a {
	case op.AlignMiddle:
		return .5
	case op.AlignEnd:
		return 1
	default:
		return 0
	}
}

func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(v) * 64))
}

func roundOut(r f32.Rectangle) image.Rectangle {
	return image.Rect(
		int(math.Floor(float64(r.Min.X))),
		int(math.Floor(float64(r.Min.Y))),
		int(math.Ceil(float64(r.Max.X))),
		int(math.Ceil(float64(r.Max.Y))),
	)
}
