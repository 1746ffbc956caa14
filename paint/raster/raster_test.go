// SPDX-License-Identifier: Unlicense OR MIT

package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/framekit/imui/font"
)

var (
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	red   = color.NRGBA{R: 0xff, A: 0xff}
	blue  = color.NRGBA{B: 0xff, A: 0xff}
)

func newCanvas(t *testing.T, w, h int) *Canvas {
	t.Helper()
	fonts := font.NewCollection()
	require.NoError(t, fonts.Register("Go", goregular.TTF))
	c := New(image.NewRGBA(image.Rect(0, 0, w, h)), fonts)
	c.SetColor(white)
	c.Clear()
	return c
}

func at(c *Canvas, x, y int) color.RGBA {
	return c.Image().RGBAAt(x, y)
}

func rgba(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func TestFillRect(t *testing.T) {
	c := newCanvas(t, 16, 16)
	c.SetColor(red)
	c.FillRect(image.Rect(2, 3, 6, 8))
	assert.Equal(t, rgba(red), at(c, 2, 3))
	assert.Equal(t, rgba(red), at(c, 5, 7))
	assert.Equal(t, rgba(white), at(c, 6, 7))
	assert.Equal(t, rgba(white), at(c, 5, 8))
	assert.Equal(t, rgba(white), at(c, 1, 3))
}

func TestStrokeRectStaysInside(t *testing.T) {
	c := newCanvas(t, 16, 16)
	c.SetColor(red)
	c.SetStrokeWidth(1)
	c.StrokeRect(image.Rect(2, 2, 10, 10))
	assert.Equal(t, rgba(red), at(c, 2, 2))
	assert.Equal(t, rgba(red), at(c, 9, 5))
	assert.Equal(t, rgba(red), at(c, 5, 9))
	assert.Equal(t, rgba(white), at(c, 5, 5), "interior")
	assert.Equal(t, rgba(white), at(c, 10, 5), "outside")
	assert.Equal(t, rgba(white), at(c, 1, 1), "outside")

	// A stroke wider than the shape fills it.
	c.SetColor(blue)
	c.SetStrokeWidth(8)
	c.StrokeRect(image.Rect(11, 11, 15, 15))
	assert.Equal(t, rgba(blue), at(c, 13, 13))
}

func TestTranslateAndPushPop(t *testing.T) {
	c := newCanvas(t, 16, 16)
	c.SetColor(red)
	c.Push()
	c.Translate(image.Pt(8, 8))
	c.SetColor(blue)
	c.FillRect(image.Rect(0, 0, 2, 2))
	c.Pop()
	assert.Zero(t, c.Depth())
	assert.Equal(t, rgba(blue), at(c, 8, 8))
	assert.Equal(t, rgba(white), at(c, 0, 0))

	// Color and transform are restored.
	c.FillRect(image.Rect(0, 0, 2, 2))
	assert.Equal(t, rgba(red), at(c, 0, 0))

	assert.Panics(t, c.Pop)
}

func TestClip(t *testing.T) {
	c := newCanvas(t, 16, 16)
	c.SetColor(red)
	c.Push()
	c.Translate(image.Pt(4, 4))
	c.Clip(image.Rect(0, 0, 4, 4))
	c.FillRect(image.Rect(-4, -4, 12, 12))
	// Clear ignores the clip.
	c.Pop()
	assert.Equal(t, rgba(red), at(c, 4, 4))
	assert.Equal(t, rgba(red), at(c, 7, 7))
	assert.Equal(t, rgba(white), at(c, 8, 8))
	assert.Equal(t, rgba(white), at(c, 3, 3))

	c.Push()
	c.Clip(image.Rect(0, 0, 1, 1))
	c.SetColor(blue)
	c.Clear()
	c.Pop()
	assert.Equal(t, rgba(blue), at(c, 15, 15))
}

func TestRotate(t *testing.T) {
	c := newCanvas(t, 32, 32)
	c.SetColor(red)
	c.Translate(image.Pt(16, 16))
	c.Rotate(90)
	// A bar along +x turns into a bar along +y.
	c.FillRect(image.Rect(2, -1, 10, 1))
	assert.Equal(t, rgba(red), at(c, 16, 22))
	assert.Equal(t, rgba(white), at(c, 22, 16))
}

func TestRoundRect(t *testing.T) {
	c := newCanvas(t, 32, 32)
	c.SetColor(red)
	c.FillRoundRect(image.Rect(0, 0, 32, 32), 10, 10)
	assert.Equal(t, rgba(white), at(c, 0, 0), "corner is cut")
	assert.Equal(t, rgba(red), at(c, 16, 0))
	assert.Equal(t, rgba(red), at(c, 16, 16))

	c.SetColor(white)
	c.Clear()
	c.SetColor(blue)
	c.SetStrokeWidth(2)
	c.StrokeRoundRect(image.Rect(0, 0, 32, 32), 6, 6)
	assert.Equal(t, rgba(blue), at(c, 16, 0))
	assert.Equal(t, rgba(white), at(c, 16, 16))
}

func TestArcs(t *testing.T) {
	c := newCanvas(t, 40, 40)
	c.SetColor(red)
	// Quarter pie from the positive x axis clockwise to the positive y axis.
	c.FillArc(image.Rect(0, 0, 40, 40), 0, 90)
	assert.Equal(t, rgba(red), at(c, 28, 28))
	assert.Equal(t, rgba(white), at(c, 12, 12))
	assert.Equal(t, rgba(white), at(c, 28, 12))

	c.SetColor(white)
	c.Clear()
	c.SetColor(blue)
	c.SetStrokeWidth(4)
	c.StrokeArc(image.Rect(0, 0, 40, 40), 0, 360)
	assert.Equal(t, rgba(blue), at(c, 38, 20))
	assert.Equal(t, rgba(blue), at(c, 20, 1))
	assert.Equal(t, rgba(white), at(c, 20, 20), "ring center")

	// Empty sweeps draw nothing.
	c.SetColor(red)
	c.FillArc(image.Rect(0, 0, 40, 40), 45, 45)
	assert.Equal(t, rgba(white), at(c, 28, 28))
}

func TestText(t *testing.T) {
	c := newCanvas(t, 120, 40)
	ratio := c.SetFont("Go", 20)
	assert.Greater(t, ratio, float32(1))
	assert.Equal(t, float32(c.MeasureText("x").Y), c.FontHeight())
	require.NoError(t, c.Err())

	c.SetColor(color.NRGBA{A: 0xff})
	c.Text("Hello", image.Rect(0, 0, 120, 40), 0, 0)
	m := c.MeasureText("Hello")
	inked := 0
	outside := 0
	for y := 0; y < 40; y++ {
		for x := 0; x < 120; x++ {
			if at(c, x, y) == rgba(white) {
				continue
			}
			inked++
			if x < 60-m.X/2-1 || x > 60+m.X/2+1 {
				outside++
			}
		}
	}
	assert.Greater(t, inked, 0)
	assert.Zero(t, outside)
}

func TestUnknownFamilyFallsBack(t *testing.T) {
	c := newCanvas(t, 10, 10)
	c.SetFont("Nope", 12)
	require.Error(t, c.Err())
	assert.Greater(t, c.MeasureText("abc").X, 0)

	c.Reset()
	assert.NoError(t, c.Err())

	bare := New(image.NewRGBA(image.Rect(0, 0, 4, 4)), nil)
	assert.Equal(t, float32(1), bare.SetFont("Go", 10))
	assert.Equal(t, image.Pt(0, 10), bare.MeasureText("abc"))
	bare.TextLine("abc", image.Point{})
}
