// SPDX-License-Identifier: Unlicense OR MIT

/*
Package widget implements common user interface controls.

Every control is a single call that handles input and paints in the same
pass. Stateful controls are methods on a caller-owned struct whose
address identifies the control to the session, so the struct must stay
at the same address for as long as the control is on screen:

	var (
		ok    widget.Clickable
		level widget.Float
		value float32
	)

	// Each frame:
	if ok.Layout(s, okRect, "OK") {
		...
	}
	value, _ = level.Layout(s, levelRect, 10, value, layout.Horizontal)

Controls never modify the values passed to them. They return the new
value together with a report of whether it changed, and the caller
stores it.

Rectangles are in the coordinates of the enclosing scope, the window or
the innermost Panel.
*/
package widget
