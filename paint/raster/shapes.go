// SPDX-License-Identifier: Unlicense OR MIT

package raster

import (
	"image"
	"math"

	"github.com/framekit/imui/f32"
)

// rect is a float rectangle in the local coordinates of the canvas.
type rect struct {
	min, max f32.Point
}

func frect(r image.Rectangle) rect {
	return rect{min: f32.FPt(r.Min), max: f32.FPt(r.Max)}
}

func (r rect) dx() float32 { return r.max.X - r.min.X }
func (r rect) dy() float32 { return r.max.Y - r.min.Y }

func (r rect) empty() bool {
	return r.dx() <= 0 || r.dy() <= 0
}

func (r rect) inset(d float32) rect {
	return rect{
		min: r.min.Add(f32.Pt(d, d)),
		max: r.max.Sub(f32.Pt(d, d)),
	}
}

func (r rect) center() f32.Point {
	return r.min.Add(r.max).Mul(.5)
}

// roundRect appends the clockwise outline of r with elliptic corners of
// radii rx, ry, clamped to half the size of r.
func roundRect(pts []f32.Point, r rect, rx, ry float32) []f32.Point {
	rx = min(max(rx, 0), r.dx()/2)
	ry = min(max(ry, 0), r.dy()/2)
	if rx == 0 || ry == 0 {
		return append(pts,
			r.min,
			f32.Pt(r.max.X, r.min.Y),
			r.max,
			f32.Pt(r.min.X, r.max.Y),
		)
	}
	const q = math.Pi / 2
	pts = ellipse(pts, f32.Pt(r.max.X-rx, r.min.Y+ry), rx, ry, -q, 0)
	pts = ellipse(pts, f32.Pt(r.max.X-rx, r.max.Y-ry), rx, ry, 0, q)
	pts = ellipse(pts, f32.Pt(r.min.X+rx, r.max.Y-ry), rx, ry, q, 2*q)
	pts = ellipse(pts, f32.Pt(r.min.X+rx, r.min.Y+ry), rx, ry, 2*q, 3*q)
	return pts
}

// ellipse appends points on the ellipse centered at c from angle a0 to
// a1, in radians clockwise on screen from the positive x axis. Both end
// points are included.
func ellipse(pts []f32.Point, c f32.Point, rx, ry float32, a0, a1 float64) []f32.Point {
	sweep := math.Abs(a1 - a0)
	n := int(math.Ceil(sweep * float64(max(rx, ry)) / 2))
	n = min(max(n, 2), 256)
	for i := 0; i <= n; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(n)
		sin, cos := math.Sincos(a)
		pts = append(pts, f32.Pt(c.X+rx*float32(cos), c.Y+ry*float32(sin)))
	}
	return pts
}

// arcAngles converts the degree range of an arc call into radians with
// a0 <= a1 and a sweep of at most a full turn.
func arcAngles(start, end int) (a0, a1 float64) {
	if end < start {
		start, end = end, start
	}
	if end-start > 360 {
		end = start + 360
	}
	return float64(start) * math.Pi / 180, float64(end) * math.Pi / 180
}
