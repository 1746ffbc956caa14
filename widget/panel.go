// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"github.com/framekit/imui/ui"
)

// Panel groups controls in a nested coordinate space. Calls between
// Begin and End take rectangles relative to the panel and see the
// pointer relative to it.
type Panel struct {
	scope ui.Scope
	r     image.Rectangle
}

// Begin opens the panel at r and returns its bounds in panel
// coordinates.
func (pn *Panel) Begin(s *ui.Session, r image.Rectangle) image.Rectangle {
	pn.r = r
	pn.scope = s.Push(r)
	return pn.scope.Bounds()
}

// End closes the panel and returns its rectangle in the enclosing
// coordinates.
func (pn *Panel) End(s *ui.Session) image.Rectangle {
	if pn.scope == (ui.Scope{}) {
		panic("widget: Panel.End without Begin")
	}
	pn.scope.Pop()
	pn.scope = ui.Scope{}
	return pn.r
}
