// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"fmt"
	"image"
)

// Scope is an open widget region returned by Session.Push. Pop it on
// every exit path, normally with defer.
type Scope struct {
	s      *Session
	depth  int
	bounds image.Rectangle
}

// Push opens a region for the window rectangle r translated into the
// current scope. Painting is translated to r.Min and clipped to r, and
// Pointer reports coordinates relative to r.Min until the scope is
// popped.
func (s *Session) Push(r image.Rectangle) Scope {
	s.surface.Push()
	s.surface.Translate(r.Min)
	local := image.Rectangle{Max: r.Size()}
	s.surface.Clip(local)
	s.offsets = append(s.offsets, s.offset().Add(r.Min))
	return Scope{s: s, depth: len(s.offsets), bounds: local}
}

// Bounds returns the region in its own coordinates, with its top left
// corner at the origin.
func (sc Scope) Bounds() image.Rectangle {
	return sc.bounds
}

// Pop closes the scope. Scopes must be popped in the reverse order they
// were pushed.
func (sc Scope) Pop() {
	s := sc.s
	if n := len(s.offsets); n != sc.depth {
		panic(fmt.Sprintf("ui: scope at depth %d popped at depth %d", sc.depth, n))
	}
	s.offsets = s.offsets[:sc.depth-1]
	s.surface.Pop()
}

// Depth returns the number of open scopes.
func (s *Session) Depth() int {
	return len(s.offsets)
}

func (s *Session) offset() image.Point {
	if n := len(s.offsets); n > 0 {
		return s.offsets[n-1]
	}
	return image.Point{}
}
