// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"math"

	"github.com/framekit/imui/geom"
	"github.com/framekit/imui/ui"
)

// sweep is the angular range of a knob in degrees.
const sweep = 270

// Knob is a rotary control selecting a value in [0, 1] over a 270 degree
// sweep.
type Knob struct {
	// ref is the pointer relative to the knob center in the previous
	// frame of a drag.
	ref   image.Point
	angle float32
}

// Layout paints the knob as a disc in the largest square centered in r,
// with an indicator bar rotated to the value. Dragging around the center
// turns the knob by the angle the pointer sweeps, clamped to the ends of
// the range.
func (k *Knob) Layout(s *ui.Session, r image.Rectangle, value float32) (float32, bool) {
	sc := s.Push(r)
	defer sc.Pop()
	r = sc.Bounds()

	v := clamp01(value)
	k.angle = v * sweep

	extent := min(r.Dx(), r.Dy())
	disc := geom.AdjustFixed(r, extent, extent, geom.Center, geom.Center)
	center := image.Pt(r.Dx()/2, r.Dy()/2)
	mouse := s.Pointer().Sub(center)

	in := s.Track(k, geom.Contains(disc, s.Pointer()))
	switch {
	case in == ui.Press:
		k.ref = mouse
	case s.Captured(k) || in == ui.Cancel:
		if mouse != k.ref {
			if d, ok := turn(k.ref, mouse); ok {
				k.angle = float32(math.Max(0, math.Min(sweep, float64(k.angle)+d)))
				v = k.angle / sweep
			}
			k.ref = mouse
		}
	}

	th, p := s.Theme(), s.Surface()
	p.SetColor(th.Fore)
	p.FillArc(disc, 0, 360)
	p.Push()
	p.Translate(center)
	p.Rotate(k.angle + 135)
	p.SetColor(th.Text)
	p.FillRect(image.Rect(int(float64(extent)*0.24), -2, int(float64(extent)*0.45), 2))
	p.Pop()
	return v, v != value
}

// turn returns the signed angle in degrees from a to b, positive for
// clockwise turns on screen. The angle is undefined when either vector
// is zero or the vectors are collinear; ok is false then.
func turn(a, b image.Point) (deg float64, ok bool) {
	la := math.Hypot(float64(a.X), float64(a.Y))
	lb := math.Hypot(float64(b.X), float64(b.Y))
	cross := float64(a.X*b.Y - b.X*a.Y)
	if la == 0 || lb == 0 || cross == 0 {
		return 0, false
	}
	dot := float64(a.X*b.X + a.Y*b.Y)
	cos := math.Max(-1, math.Min(1, dot/(la*lb)))
	deg = math.Acos(cos) * 180 / math.Pi
	if cross < 0 {
		deg = -deg
	}
	return deg, true
}
