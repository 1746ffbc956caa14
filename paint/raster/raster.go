// SPDX-License-Identifier: Unlicense OR MIT

/*
Package raster implements a paint.Surface in software on an image.RGBA.

Shapes are flattened to polygons and filled with the anti-aliasing
rasterizer from golang.org/x/image/vector. Strokes are drawn inside the
outline of the shape so that a stroked rectangle never paints outside
its bounds. Text is drawn with faces from a font.Collection; glyphs
follow the translation of the current transform but are not rotated.

Note: clips are axis aligned. A clip set under a rotation clips to the
bounding box of the rotated rectangle.
*/
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/framekit/imui/f32"
	"github.com/framekit/imui/font"
	"github.com/framekit/imui/geom"
	"github.com/framekit/imui/paint"
)

// Canvas paints on an image.RGBA.
type Canvas struct {
	dst   *image.RGBA
	fonts *font.Collection
	state state
	stack []state
	err   error

	scratch struct {
		vr    *vector.Rasterizer
		outer []f32.Point
		inner []f32.Point
	}
}

type state struct {
	t      f32.Affine2D
	clip   image.Rectangle
	color  color.NRGBA
	width  float32
	family string
	size   float32
	face   *font.Face
}

var _ paint.Surface = (*Canvas)(nil)

// New returns a canvas drawing on dst with fonts from fonts. The
// initial state is opaque black, a stroke width of 1, no font, the
// identity transform and a clip covering dst.
func New(dst *image.RGBA, fonts *font.Collection) *Canvas {
	c := &Canvas{dst: dst, fonts: fonts}
	c.Reset()
	return c
}

// Reset discards saved states and restores the initial state.
func (c *Canvas) Reset() {
	c.stack = c.stack[:0]
	c.state = state{
		clip:  c.dst.Bounds(),
		color: color.NRGBA{A: 0xff},
		width: 1,
	}
	c.err = nil
}

// Image returns the target image.
func (c *Canvas) Image() *image.RGBA {
	return c.dst
}

// Err returns the first error encountered selecting a font since the
// last Reset.
func (c *Canvas) Err() error {
	return c.err
}

// Depth returns the number of states saved by Push and not yet restored.
func (c *Canvas) Depth() int {
	return len(c.stack)
}

func (c *Canvas) SetStrokeWidth(w float32) {
	c.state.width = w
}

func (c *Canvas) SetColor(col color.NRGBA) {
	c.state.color = col
}

func (c *Canvas) Clear() {
	draw.Draw(c.dst, c.dst.Bounds(), image.NewUniform(c.state.color), image.Point{}, draw.Src)
}

func (c *Canvas) FillRect(r image.Rectangle) {
	c.FillRoundRect(r, 0, 0)
}

func (c *Canvas) StrokeRect(r image.Rectangle) {
	c.StrokeRoundRect(r, 0, 0)
}

func (c *Canvas) FillRoundRect(r image.Rectangle, rx, ry int) {
	if r.Empty() {
		return
	}
	c.scratch.outer = roundRect(c.scratch.outer[:0], frect(r), float32(rx), float32(ry))
	c.fill(c.scratch.outer, nil)
}

func (c *Canvas) StrokeRoundRect(r image.Rectangle, rx, ry int) {
	if r.Empty() || c.state.width <= 0 {
		return
	}
	w := c.state.width
	outer := frect(r)
	c.scratch.outer = roundRect(c.scratch.outer[:0], outer, float32(rx), float32(ry))
	inner := outer.inset(w)
	if inner.empty() {
		c.fill(c.scratch.outer, nil)
		return
	}
	c.scratch.inner = roundRect(c.scratch.inner[:0], inner, max(float32(rx)-w, 0), max(float32(ry)-w, 0))
	c.fill(c.scratch.outer, c.scratch.inner)
}

func (c *Canvas) FillArc(r image.Rectangle, start, end int) {
	if r.Empty() || start == end {
		return
	}
	e := frect(r)
	ctr, rx, ry := e.center(), e.dx()/2, e.dy()/2
	a0, a1 := arcAngles(start, end)
	pts := append(c.scratch.outer[:0], ctr)
	pts = ellipse(pts, ctr, rx, ry, a0, a1)
	c.scratch.outer = pts
	c.fill(pts, nil)
}

func (c *Canvas) StrokeArc(r image.Rectangle, start, end int) {
	if r.Empty() || start == end || c.state.width <= 0 {
		return
	}
	e := frect(r)
	ctr, rx, ry := e.center(), e.dx()/2, e.dy()/2
	w := c.state.width
	a0, a1 := arcAngles(start, end)
	pts := ellipse(c.scratch.outer[:0], ctr, rx, ry, a0, a1)
	irx, iry := max(rx-w, 0), max(ry-w, 0)
	if end-start >= 360 || start-end >= 360 {
		// A full ring: two closed contours of opposite winding.
		c.scratch.outer = pts
		c.scratch.inner = ellipse(c.scratch.inner[:0], ctr, irx, iry, a0, a1)
		c.fill(pts, c.scratch.inner)
		return
	}
	pts = ellipse(pts, ctr, irx, iry, a1, a0)
	c.scratch.outer = pts
	c.fill(pts, nil)
}

func (c *Canvas) Push() {
	c.stack = append(c.stack, c.state)
}

func (c *Canvas) Pop() {
	n := len(c.stack)
	if n == 0 {
		panic("raster: Pop without matching Push")
	}
	c.state = c.stack[n-1]
	c.stack = c.stack[:n-1]
}

func (c *Canvas) Translate(p image.Point) {
	c.state.t = c.state.t.Mul(f32.Affine2D{}.Offset(f32.FPt(p)))
}

func (c *Canvas) Rotate(deg float32) {
	c.state.t = c.state.t.Mul(f32.Affine2D{}.Rotate(f32.Point{}, deg*math.Pi/180))
}

func (c *Canvas) Clip(r image.Rectangle) {
	c.state.clip = c.state.clip.Intersect(transformBounds(c.state.t, r))
}

// fill rasterizes the closed polygon outer, minus inner when it is not
// nil, with the current color inside the current clip.
func (c *Canvas) fill(outer, inner []f32.Point) {
	bounds := c.state.clip
	if bounds.Empty() || len(outer) < 3 {
		return
	}
	vr := c.scratch.vr
	if vr == nil {
		vr = vector.NewRasterizer(bounds.Dx(), bounds.Dy())
		c.scratch.vr = vr
	} else {
		vr.Reset(bounds.Dx(), bounds.Dy())
	}
	vr.DrawOp = draw.Over
	t := c.state.t.Offset(f32.FPt(bounds.Min).Mul(-1))
	polygon(vr, t, outer, false)
	if inner != nil {
		polygon(vr, t, inner, true)
	}
	vr.Draw(c.dst, bounds, image.NewUniform(c.state.color), image.Point{})
}

// polygon adds the closed contour pts to vr, transformed by t. Reversed
// contours cancel forward ones where they overlap.
func polygon(vr *vector.Rasterizer, t f32.Affine2D, pts []f32.Point, reverse bool) {
	n := len(pts)
	at := func(i int) f32.Point {
		if reverse {
			i = n - 1 - i
		}
		return t.Transform(pts[i])
	}
	p := at(0)
	vr.MoveTo(p.X, p.Y)
	for i := 1; i < n; i++ {
		p = at(i)
		vr.LineTo(p.X, p.Y)
	}
	vr.ClosePath()
}

func transformBounds(t f32.Affine2D, bounds image.Rectangle) image.Rectangle {
	if t.Translation() {
		_, _, ox, _, _, oy := t.Elems()
		return bounds.Add(f32.Pt(ox, oy).Round())
	}
	corners := [4]f32.Point{
		t.Transform(f32.FPt(bounds.Min)),
		t.Transform(f32.FPt(bounds.Max)),
		t.Transform(f32.Pt(float32(bounds.Max.X), float32(bounds.Min.Y))),
		t.Transform(f32.Pt(float32(bounds.Min.X), float32(bounds.Max.Y))),
	}
	lo, hi := corners[0], corners[0]
	for _, p := range corners[1:] {
		lo = f32.Pt(min(lo.X, p.X), min(lo.Y, p.Y))
		hi = f32.Pt(max(hi.X, p.X), max(hi.Y, p.Y))
	}
	return image.Rectangle{Min: lo.Round(), Max: hi.Round()}
}

func (c *Canvas) SetFont(family string, size float32) float32 {
	c.state.family, c.state.size, c.state.face = family, size, nil
	if c.fonts == nil || size <= 0 {
		return 1
	}
	face, err := c.fonts.Face(family, size)
	if err != nil {
		if c.err == nil {
			c.err = err
		}
		face, err = c.fonts.Face(c.fonts.Default(), size)
		if err != nil {
			return 1
		}
	}
	c.state.face = face
	return float32(face.LineHeight()) / size
}

func (c *Canvas) FontHeight() float32 {
	if c.state.face == nil {
		return c.state.size
	}
	return float32(c.state.face.LineHeight())
}

func (c *Canvas) MeasureText(s string) image.Point {
	if c.state.face == nil {
		return image.Point{Y: int(c.state.size)}
	}
	return c.state.face.Measure(s)
}

func (c *Canvas) Text(s string, r image.Rectangle, xalign, yalign int) {
	m := c.MeasureText(s)
	at := geom.AdjustFixed(r, m.X, m.Y, geom.Align(xalign), geom.Align(yalign))
	c.TextLine(s, at.Min)
}

func (c *Canvas) TextLine(s string, p image.Point) {
	face := c.state.face
	if face == nil || s == "" {
		return
	}
	clip := c.state.clip.Intersect(c.dst.Bounds())
	if clip.Empty() {
		return
	}
	origin := c.state.t.Transform(f32.FPt(p)).Round()
	d := xfont.Drawer{
		Dst:  c.dst.SubImage(clip).(*image.RGBA),
		Src:  image.NewUniform(c.state.color),
		Face: face,
		Dot:  fixed.P(origin.X, origin.Y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}
