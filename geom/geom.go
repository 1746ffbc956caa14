// SPDX-License-Identifier: Unlicense OR MIT

/*
Package geom implements the integer rectangle algebra used to hand out
widget bounds.

Rectangles are image.Rectangle values. The coordinate space has the origin
in the top left corner with the axes extending right and down. A point p is
inside r when r.Min.X <= p.X < r.Max.X and r.Min.Y <= p.Y < r.Max.Y.

Intermediate results may have zero or negative extents; Clamp them before
trusting a hit test.
*/
package geom

import "image"

// Side selects an edge of a rectangle.
type Side uint8

// Align positions a rectangle relative to another on one axis.
type Align int

const (
	Left Side = iota
	Top
	Right
	Bottom
)

const (
	// Start anchors to the left or top edge.
	Start Align = -1
	// Center centers on the axis.
	Center Align = 0
	// End anchors to the right or bottom edge.
	End Align = 1
)

// Span describes a length with padding on both sides.
type Span struct {
	Before, Length, After int
}

// Size returns the total extent of the span.
func (s Span) Size() int {
	return s.Before + s.Length + s.After
}

// Rect is shorthand for image.Rect.
func Rect(x1, y1, x2, y2 int) image.Rectangle {
	return image.Rectangle{Min: image.Point{X: x1, Y: y1}, Max: image.Point{X: x2, Y: y2}}
}

// Contains reports whether p lies inside r.
func Contains(r image.Rectangle, p image.Point) bool {
	return r.Min.X <= p.X && p.X < r.Max.X && r.Min.Y <= p.Y && p.Y < r.Max.Y
}

// Move returns r translated so that its top left corner is (x, y).
func Move(r image.Rectangle, x, y int) image.Rectangle {
	return Rect(x, y, x+r.Dx(), y+r.Dy())
}

// Inflate moves every edge of r outwards by (dx, dy). Negative values
// shrink the rectangle.
func Inflate(r image.Rectangle, dx, dy int) image.Rectangle {
	return Rect(r.Min.X-dx, r.Min.Y-dy, r.Max.X+dx, r.Max.Y+dy)
}

// Clamp returns r with negative extents collapsed to zero.
func Clamp(r image.Rectangle) image.Rectangle {
	if r.Max.X < r.Min.X {
		r.Max.X = r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Max.Y = r.Min.Y
	}
	return r
}

// Split cuts a strip of size pixels off the given side of r. The strip is
// returned and r is updated to the remainder. When size covers the whole
// extent, the remainder collapses flush against the far edge and the strip
// is all of the original r.
func Split(r *image.Rectangle, side Side, size int) image.Rectangle {
	strip := *r
	switch side {
	case Left:
		if size >= r.Dx() {
			r.Min.X = r.Max.X
		} else {
			strip.Max.X = strip.Min.X + size
			r.Min.X = strip.Max.X
		}
	case Right:
		if size >= r.Dx() {
			r.Max.X = r.Min.X
		} else {
			strip.Min.X = strip.Max.X - size
			r.Max.X = strip.Min.X
		}
	case Top:
		if size >= r.Dy() {
			r.Min.Y = r.Max.Y
		} else {
			strip.Max.Y = strip.Min.Y + size
			r.Min.Y = strip.Max.Y
		}
	case Bottom:
		if size >= r.Dy() {
			r.Max.Y = r.Min.Y
		} else {
			strip.Min.Y = strip.Max.Y - size
			r.Max.Y = strip.Min.Y
		}
	}
	return strip
}

// Adjust returns a rectangle scaled by (sx, sy) relative to r's size and
// aligned inside r.
func Adjust(r image.Rectangle, sx, sy float64, xa, ya Align) image.Rectangle {
	w := int(float64(r.Dx()) * sx)
	h := int(float64(r.Dy()) * sy)
	return AdjustFixed(r, w, h, xa, ya)
}

// AdjustFixed returns a w by h rectangle aligned inside r.
func AdjustFixed(r image.Rectangle, w, h int, xa, ya Align) image.Rectangle {
	x := align(r.Min.X, r.Max.X, w, xa)
	y := align(r.Min.Y, r.Max.Y, h, ya)
	return Rect(x, y, x+w, y+h)
}

func align(lo, hi, n int, a Align) int {
	switch {
	case a < 0:
		return lo
	case a > 0:
		return hi - n
	default:
		return lo + (hi-lo)/2 - n/2
	}
}

// Pad shrinks r by the Before and After paddings of h and v. When the
// paddings do not fit, Pad returns the zero rectangle.
func Pad(r image.Rectangle, h, v Span) image.Rectangle {
	if h.Before+h.After >= r.Dx() || v.Before+v.After >= r.Dy() {
		return image.Rectangle{}
	}
	return Rect(r.Min.X+h.Before, r.Min.Y+v.Before, r.Max.X-h.After, r.Max.Y-v.After)
}
