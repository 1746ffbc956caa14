// SPDX-License-Identifier: Unlicense OR MIT

/*
Package paint defines the drawing surface widgets paint on.

A Surface is a stateful painter in the manner of a 2D canvas: the current
color, stroke width, font, transform and clip apply to every following
call until they are changed or restored by Pop. Coordinates are integer
pixels in the current transform; the surface never reports errors, a
backend that cannot satisfy a call draws nothing.

Package raster implements a Surface on an image.RGBA. Package record
implements a Surface that records calls, for tests and for replaying on
another surface.
*/
package paint

import (
	"image"
	"image/color"
)

// Surface is the drawing backend contract.
type Surface interface {
	// SetStrokeWidth sets the line width of stroke calls.
	SetStrokeWidth(w float32)
	// SetColor sets the solid paint for fills, strokes and text.
	SetColor(c color.NRGBA)
	// Clear paints the whole target, ignoring the clip.
	Clear()

	StrokeRect(r image.Rectangle)
	FillRect(r image.Rectangle)
	// StrokeRoundRect and FillRoundRect draw r with elliptic corners of
	// radii (rx, ry).
	StrokeRoundRect(r image.Rectangle, rx, ry int)
	FillRoundRect(r image.Rectangle, rx, ry int)
	// StrokeArc and FillArc draw the part of the ellipse inscribed in r
	// between the start and end angles, in degrees clockwise from the
	// positive x axis. FillArc fills the pie slice.
	StrokeArc(r image.Rectangle, start, end int)
	FillArc(r image.Rectangle, start, end int)

	// SetFont selects the font family and pixel size and returns the
	// ratio of the line height to the size.
	SetFont(family string, size float32) float32
	// FontHeight returns the line height of the current font.
	FontHeight() float32
	// MeasureText returns the advance width and line height of s.
	MeasureText(s string) image.Point
	// Text draws s aligned inside r. Alignments are -1 (start), 0
	// (center) or 1 (end) on each axis.
	Text(s string, r image.Rectangle, xalign, yalign int)
	// TextLine draws s with its top left corner at p.
	TextLine(s string, p image.Point)

	// Push saves the transform, clip, color, stroke width and font.
	Push()
	// Pop restores the state saved by the matching Push.
	Pop()
	Translate(p image.Point)
	// Rotate rotates the transform clockwise by deg degrees.
	Rotate(deg float32)
	// Clip intersects the clip with r.
	Clip(r image.Rectangle)
}
