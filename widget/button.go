// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"github.com/framekit/imui/geom"
	"github.com/framekit/imui/ui"
)

// Clickable is a push button.
type Clickable struct {
	clicks int
}

// Bool is a checkbox toggling a boolean.
type Bool struct {
	clk Clickable
}

// Enum is one option of a radio group. The options of a group share the
// selected index and each has its own Enum.
type Enum struct {
	clk Clickable
}

// Layout paints the button with text centered and reports whether it
// was clicked: pressed and then released with the pointer inside.
func (b *Clickable) Layout(s *ui.Session, r image.Rectangle, text string) bool {
	sc := s.Push(r)
	defer sc.Pop()
	r = sc.Bounds()
	clicked := b.update(s, r)

	th, p := s.Theme(), s.Surface()
	p.SetFont(th.Family, th.Size)
	p.SetColor(th.Fore)
	if b.Held(s) {
		p.StrokeRoundRect(r, 4, 4)
	} else {
		p.FillRoundRect(r, 4, 4)
	}
	p.SetColor(th.Text)
	p.Text(text, r, 0, 0)
	return clicked
}

// Held reports whether the button is pressed.
func (b *Clickable) Held(s *ui.Session) bool {
	return s.Down() && s.Captured(b)
}

// Clicks returns the number of clicks since the Clickable was created.
func (b *Clickable) Clicks() int {
	return b.clicks
}

// update runs the capture protocol for the local rectangle r.
func (b *Clickable) update(s *ui.Session, r image.Rectangle) bool {
	if s.Track(b, geom.Contains(r, s.Pointer())) != ui.Click {
		return false
	}
	b.clicks++
	return true
}

// Layout paints a track with a round indicator at its start for false
// and at its end for true. A click flips the value. The track runs
// along the longer side of r.
func (c *Bool) Layout(s *ui.Session, r image.Rectangle, value bool) (bool, bool) {
	sc := s.Push(r)
	defer sc.Pop()
	r = sc.Bounds()
	changed := c.clk.update(s, r)
	if changed {
		value = !value
	}

	var a int
	var dot image.Rectangle
	if r.Dx() > r.Dy() {
		a = r.Dy()
		d, b := indicator(a)
		x := b
		if value {
			x = r.Dx() - b - d
		}
		dot = image.Rect(x, b, x+d, b+d)
	} else {
		a = r.Dx()
		d, b := indicator(a)
		y := b
		if value {
			y = r.Dy() - b - d
		}
		dot = image.Rect(b, y, b+d, y+d)
	}

	th, p := s.Theme(), s.Surface()
	p.SetColor(th.Back)
	p.FillRoundRect(r, a/2, a/2)
	p.SetColor(th.Fore)
	p.FillArc(dot, 0, 360)
	return value, changed
}

// indicator returns the diameter of a checkbox indicator in a track of
// width a, and its margin to the track edges.
func indicator(a int) (diameter, margin int) {
	radius := int(float64(a) * 0.8 / 2)
	return 2 * radius, (a - 2*radius) / 2
}

// Layout paints the option as a circle, filled with the accent color
// when value equals index. A click selects index; changed reports
// whether the selection was different before.
func (e *Enum) Layout(s *ui.Session, r image.Rectangle, index, value int) (int, bool) {
	sc := s.Push(r)
	defer sc.Pop()
	r = sc.Bounds()
	changed := false
	if e.clk.update(s, r) {
		changed = value != index
		value = index
	}

	size := min(r.Dx(), r.Dy())
	r = geom.AdjustFixed(r, size, size, geom.Center, geom.Center)
	th, p := s.Theme(), s.Surface()
	p.SetColor(th.Back)
	p.FillArc(r, 0, 360)
	if value == index {
		p.SetColor(th.Fore)
		p.FillArc(geom.Inflate(r, -1, -1), 0, 360)
	}
	return value, changed
}
