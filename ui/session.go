// SPDX-License-Identifier: Unlicense OR MIT

/*
Package ui implements the interaction session of an immediate mode user
interface.

A Session carries the input state that outlives a frame: the pointer
position and button, the tag holding pointer capture, the tag holding
keyboard focus and the keystroke pending for the current frame. Widgets
are plain function calls that consult and update the session while they
paint, so a frame is

	s.Queue(events...)
	s.Begin(surface)
	... widget calls ...
	s.End()

Widgets identify themselves with tags. A tag is any comparable value,
normally a pointer to the widget's state struct, and two tags are the
same widget if they are equal.

# Capture

At most one tag holds capture. A widget acquires it when the button is
pressed over the widget and nobody holds it; it keeps it until the button
is released, wherever the pointer goes. End hands capture to a background
sentinel when the button is down over no widget, so that dragging from
empty space onto a widget does not press it.

# Focus

Focus moves to a widget when the widget asks for it, typically on a
press. Nothing else releases focus.
*/
package ui

import (
	"fmt"
	"image"

	"github.com/framekit/imui/io/event"
	"github.com/framekit/imui/io/key"
	"github.com/framekit/imui/io/pointer"
	"github.com/framekit/imui/paint"
	"github.com/framekit/imui/theme"
)

// Session is the persistent input state of one window. A Session must
// only be used from one goroutine.
type Session struct {
	theme   *theme.Theme
	surface paint.Surface

	// pointer is in window coordinates.
	pointer image.Point
	down    bool
	capture event.Tag
	focus   event.Tag
	key     key.Event
	hasKey  bool

	// offsets holds the window position of every open scope, innermost
	// last.
	offsets []image.Point

	// background is the capture sentinel. It is never nil and unequal to
	// every widget tag.
	background *background
}

type background struct {
	// Non-zero size for a unique address.
	_ byte
}

// Interaction is the outcome of Track for one widget and frame.
type Interaction uint8

const (
	// None means the widget neither acquired nor released capture.
	None Interaction = iota
	// Press means the widget acquired capture this frame.
	Press
	// Click means the widget released capture with the pointer inside.
	Click
	// Cancel means the widget released capture with the pointer outside.
	Cancel
)

// NewSession returns a session painting with th. A nil theme selects
// the dark preset.
func NewSession(th *theme.Theme) *Session {
	if th == nil {
		th = theme.New()
	}
	return &Session{
		theme:      th,
		pointer:    image.Pt(-1, -1),
		background: new(background),
	}
}

// Theme returns the theme widgets paint with.
func (s *Session) Theme() *theme.Theme {
	return s.theme
}

// Surface returns the surface bound by Begin.
func (s *Session) Surface() paint.Surface {
	return s.surface
}

// SetPointer sets the pointer position in window coordinates and the
// button state.
func (s *Session) SetPointer(p image.Point, down bool) {
	s.pointer = p
	s.down = down
}

// SetKey makes text the keystroke pending for the next frame. Bytes up
// to 31 are control codes, see package key.
func (s *Session) SetKey(text string) {
	s.key = key.Event{Text: text}
	s.hasKey = text != ""
}

// Queue applies input events in order. Pointer events move the pointer
// and set the button state from their primary button; other buttons are
// ignored. A key event replaces the pending keystroke.
func (s *Session) Queue(events ...event.Event) {
	for _, e := range events {
		switch e := e.(type) {
		case pointer.Event:
			s.pointer = e.Position
			s.down = e.Buttons.Contain(pointer.ButtonPrimary)
		case key.Event:
			s.SetKey(e.Text)
		}
	}
}

// Begin starts a frame painting on surf.
func (s *Session) Begin(surf paint.Surface) {
	if len(s.offsets) > 0 {
		panic(fmt.Sprintf("ui: Begin with %d open scopes", len(s.offsets)))
	}
	s.surface = surf
}

// End finishes the frame. It releases capture when the button is up,
// gives it to the background when the button is down and no widget took
// it, and drops the pending keystroke.
func (s *Session) End() {
	if len(s.offsets) > 0 {
		panic(fmt.Sprintf("ui: End with %d open scopes", len(s.offsets)))
	}
	switch {
	case !s.down:
		s.capture = nil
	case s.capture == nil:
		s.capture = s.background
	}
	s.key = key.Event{}
	s.hasKey = false
}

// Pointer returns the pointer position relative to the innermost open
// scope.
func (s *Session) Pointer() image.Point {
	return s.pointer.Sub(s.offset())
}

// Down reports whether the pointer button is down.
func (s *Session) Down() bool {
	return s.down
}

// Captured reports whether tag holds pointer capture.
func (s *Session) Captured(tag event.Tag) bool {
	return tag != nil && s.capture == tag
}

// CaptureTag returns the tag holding capture, or nil.
func (s *Session) CaptureTag() event.Tag {
	return s.capture
}

// Background returns the sentinel tag End assigns capture to.
func (s *Session) Background() event.Tag {
	return s.background
}

// Focus gives the keyboard focus to tag.
func (s *Session) Focus(tag event.Tag) {
	s.focus = tag
}

// Focused reports whether tag holds focus.
func (s *Session) Focused(tag event.Tag) bool {
	return tag != nil && s.focus == tag
}

// FocusTag returns the tag holding focus, or nil.
func (s *Session) FocusTag() event.Tag {
	return s.focus
}

// Key returns the keystroke pending this frame, if any.
func (s *Session) Key() (key.Event, bool) {
	return s.key, s.hasKey
}

// Track runs the capture protocol for tag. Hit reports whether the
// pointer is over the widget. A widget acquires capture when hit while
// the button is down and no tag holds capture. It releases capture when
// the button is up, with a Click if hit and a Cancel otherwise.
func (s *Session) Track(tag event.Tag, hit bool) Interaction {
	switch {
	case s.capture == nil:
		if hit && s.down {
			s.capture = tag
			return Press
		}
	case s.capture == tag && !s.down:
		s.capture = nil
		if hit {
			return Click
		}
		return Cancel
	}
	return None
}

func (i Interaction) String() string {
	switch i {
	case None:
		return "None"
	case Press:
		return "Press"
	case Click:
		return "Click"
	case Cancel:
		return "Cancel"
	default:
		panic("invalid Interaction")
	}
}
