// SPDX-License-Identifier: Unlicense OR MIT

package font

import (
	"image"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

func (f *Face) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	return f.faces[f.pick(r)].Glyph(dot, r)
}

func (f *Face) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	return f.faces[f.pick(r)].GlyphBounds(r)
}

func (f *Face) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	return f.faces[f.pick(r)].GlyphAdvance(r)
}

// Kern returns the kerning between r0 and r1 when both come from the
// same font, and zero otherwise.
func (f *Face) Kern(r0, r1 rune) fixed.Int26_6 {
	i := f.pick(r0)
	if i != f.pick(r1) {
		return 0
	}
	return f.faces[i].Kern(r0, r1)
}

// Metrics returns the metrics of the primary font.
func (f *Face) Metrics() xfont.Metrics {
	return f.faces[0].Metrics()
}

// LineHeight returns the distance between consecutive baselines, rounded
// up to whole pixels.
func (f *Face) LineHeight() int {
	return f.Metrics().Height.Ceil()
}

// Measure returns the advance width and the line height of s.
func (f *Face) Measure(s string) image.Point {
	return image.Point{
		X: xfont.MeasureString(f, s).Ceil(),
		Y: f.LineHeight(),
	}
}
