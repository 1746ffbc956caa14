// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "image"

// Guide is a movable alignment coordinate. The same guide can align
// either axis; the method picks the axis and the edge.
type Guide struct {
	Pos int
}

// Move sets the guide position.
func (g *Guide) Move(pos int) {
	g.Pos = pos
}

// Shift moves the guide by delta.
func (g *Guide) Shift(delta int) {
	g.Pos += delta
}

// Left returns r moved horizontally so that its left edge is on the guide.
func (g Guide) Left(r image.Rectangle) image.Rectangle {
	w := r.Dx()
	r.Min.X = g.Pos
	r.Max.X = g.Pos + w
	return r
}

// Right returns r moved horizontally so that its right edge is on the guide.
func (g Guide) Right(r image.Rectangle) image.Rectangle {
	w := r.Dx()
	r.Min.X = g.Pos - w
	r.Max.X = g.Pos
	return r
}

// XCenter returns r centered horizontally on the guide.
func (g Guide) XCenter(r image.Rectangle) image.Rectangle {
	w := r.Dx()
	r.Min.X = g.Pos - w/2
	r.Max.X = r.Min.X + w
	return r
}

// Top returns r moved vertically so that its top edge is on the guide.
func (g Guide) Top(r image.Rectangle) image.Rectangle {
	h := r.Dy()
	r.Min.Y = g.Pos
	r.Max.Y = g.Pos + h
	return r
}

// Bottom returns r moved vertically so that its bottom edge is on the guide.
func (g Guide) Bottom(r image.Rectangle) image.Rectangle {
	h := r.Dy()
	r.Min.Y = g.Pos - h
	r.Max.Y = g.Pos
	return r
}

// YCenter returns r centered vertically on the guide.
func (g Guide) YCenter(r image.Rectangle) image.Rectangle {
	h := r.Dy()
	r.Min.Y = g.Pos - h/2
	r.Max.Y = r.Min.Y + h
	return r
}
