// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"math"

	"github.com/framekit/imui/geom"
	"github.com/framekit/imui/layout"
	"github.com/framekit/imui/ui"
)

// Float is a slider selecting a value in [0, 1].
type Float struct {
	// delta is the pointer offset from the thumb's leading edge.
	delta int
}

// Layout paints a track along axis with a thumb of the given length and
// updates the value from pointer drags. Pressing outside the thumb
// centers the thumb on the pointer. Changed reports whether the returned
// value differs from value.
func (f *Float) Layout(s *ui.Session, r image.Rectangle, thumb int, value float32, axis layout.Axis) (float32, bool) {
	sc := s.Push(r)
	defer sc.Pop()
	r = sc.Bounds()
	in := s.Track(f, geom.Contains(r, s.Pointer()))

	size := axis.Convert(r.Size())
	extent := size.X
	thumb = max(min(extent, thumb), 0)
	travel := extent - thumb
	v := clamp01(value)
	z := int(math.Round(float64(v) * float64(travel)))
	mouse := axis.Convert(s.Pointer()).X

	switch {
	case in == ui.Press:
		f.delta = mouse - z
		if f.delta >= 0 && f.delta < thumb {
			break
		}
		f.delta = thumb / 2
		z = mouse - f.delta
		if z < 0 {
			f.delta, z = mouse, 0
		} else if z+thumb > extent {
			f.delta, z = thumb-(extent-mouse), travel
		}
		v = position(z, travel, v)
	case s.Captured(f) || in == ui.Cancel:
		z = max(min(mouse-f.delta, travel), 0)
		v = position(z, travel, v)
	}

	knob := image.Rectangle{
		Min: axis.Convert(image.Pt(z, 0)),
		Max: axis.Convert(image.Pt(z+thumb, size.Y)),
	}
	th, p := s.Theme(), s.Surface()
	p.SetColor(th.Back)
	p.FillRoundRect(r, 3, 3)
	p.SetColor(th.Fore)
	p.FillRoundRect(knob, 3, 3)
	return v, v != value
}

// position maps the thumb position z to a value. A track without travel
// keeps the value v.
func position(z, travel int, v float32) float32 {
	if travel <= 0 {
		return v
	}
	return float32(z) / float32(travel)
}

func clamp01(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	case v != v:
		// NaN.
		return 0
	}
	return v
}
