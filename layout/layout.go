// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "image"

// Axis is the Horizontal or Vertical direction.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// Convert a point in (x, y) coordinates to (main, cross) coordinates,
// or vice versa. Specifically, Convert((x, y)) returns (x, y) unchanged
// for the horizontal axis, or (y, x) for the vertical axis.
func (a Axis) Convert(pt image.Point) image.Point {
	if a == Horizontal {
		return pt
	}
	return image.Pt(pt.Y, pt.X)
}

// span returns the main axis interval of r.
func (a Axis) span(r image.Rectangle) (lo, hi int) {
	if a == Horizontal {
		return r.Min.X, r.Max.X
	}
	return r.Min.Y, r.Max.Y
}

// crossSpan returns the cross axis interval of r.
func (a Axis) crossSpan(r image.Rectangle) (lo, hi int) {
	if a == Horizontal {
		return r.Min.Y, r.Max.Y
	}
	return r.Min.X, r.Max.X
}

// rect builds a rectangle from main and cross axis intervals.
func (a Axis) rect(lo, hi, clo, chi int) image.Rectangle {
	if a == Horizontal {
		return image.Rectangle{Min: image.Pt(lo, clo), Max: image.Pt(hi, chi)}
	}
	return image.Rectangle{Min: image.Pt(clo, lo), Max: image.Pt(chi, hi)}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}
