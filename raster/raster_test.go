// SPDX-License-Identifier: Unlicense OR MIT

package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"awkit.org/f32"
	"awkit.org/op"
	"awkit.org/text"
)

var (
	red   = color.NRGBA{R: 0xff, A: 0xff}
	blue  = color.NRGBA{B: 0xff, A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func newImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return img
}

func TestQuad(t *testing.T) {
	img := newImage()
	New(nil).Frame(op.Quad{Bounds: f32.Rect(10, 10, 50, 50), Background: red}, img)
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, img.RGBAAt(30, 30))
	assert.Equal(t, white, img.RGBAAt(60, 60))
	assert.Equal(t, white, img.RGBAAt(9, 9))
}

func TestRoundedCorner(t *testing.T) {
	img := newImage()
	New(nil).Frame(op.Quad{Bounds: f32.Rect(0, 0, 40, 40), Background: red, Border: op.Border{Radius: 20}}, img)
	assert.Equal(t, white, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, img.RGBAAt(20, 20))
}

func TestBorderRing(t *testing.T) {
	img := newImage()
	q := op.Quad{
		Bounds: f32.Rect(10, 10, 50, 50),
		Border: op.Border{Width: 2, Color: blue},
	}
	New(nil).Frame(q, img)
	assert.Equal(t, color.RGBA{B: 0xff, A: 0xff}, img.RGBAAt(10, 30))
	assert.Equal(t, white, img.RGBAAt(30, 30))
}

func TestClip(t *testing.T) {
	img := newImage()
	p := op.Clip{
		Bounds:  f32.Rect(0, 0, 20, 20),
		Content: op.Quad{Bounds: f32.Rect(10, 10, 50, 50), Background: red},
	}
	New(nil).Frame(p, img)
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, img.RGBAAt(15, 15))
	assert.Equal(t, white, img.RGBAAt(25, 25))
}

func TestGroupOrder(t *testing.T) {
	img := newImage()
	g := op.Group{
		op.Quad{Bounds: f32.Rect(0, 0, 50, 50), Background: red},
		op.Quad{Bounds: f32.Rect(0, 0, 50, 50), Background: blue},
	}
	New(nil).Frame(g, img)
	assert.Equal(t, color.RGBA{B: 0xff, A: 0xff}, img.RGBAAt(25, 25))
}

func TestText(t *testing.T) {
	img := newImage()
	p := op.Text{
		Content: "MMMM",
		Bounds:  f32.Rect(0, 0, 100, 100),
		Color:   color.NRGBA{A: 0xff},
		Size:    40,
	}
	New(text.NewShaper(nil)).Frame(p, img)
	dark := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] < 0x80 {
			dark++
		}
	}
	assert.Positive(t, dark)

	clipped := newImage()
	New(text.NewShaper(nil)).Frame(op.Clip{Bounds: f32.Rect(0, 0, 0, 0), Content: p}, clipped)
	assert.Equal(t, newImage().Pix, clipped.Pix)
}
