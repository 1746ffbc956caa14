// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"github.com/framekit/imui/geom"
	"github.com/framekit/imui/ui"
)

// Label paints text aligned inside r in the theme's text color.
func Label(s *ui.Session, r image.Rectangle, text string, xa, ya geom.Align) {
	sc := s.Push(r)
	defer sc.Pop()
	th, p := s.Theme(), s.Surface()
	p.SetFont(th.Family, th.Size)
	p.SetColor(th.Text)
	p.Text(text, sc.Bounds(), int(xa), int(ya))
}
