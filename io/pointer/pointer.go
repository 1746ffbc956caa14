// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer implements pointer events. Positions are integer window
// coordinates, already decoded by the platform layer.
package pointer

import (
	"image"
	"strings"
)

// Event is a pointer event.
type Event struct {
	Kind Kind
	// Position is the pointer position in window coordinates.
	Position image.Point
	// Buttons are the set of pressed buttons after the event.
	Buttons Buttons
}

// Kind of an Event.
type Kind uint8

// Buttons is a set of mouse buttons.
type Buttons uint8

const (
	// Move of the pointer without a button change.
	Move Kind = iota
	// Press of a pointer button.
	Press
	// Release of a pointer button.
	Release
)

const (
	// ButtonPrimary is the primary button, usually the left button for a
	// right-handed user.
	ButtonPrimary Buttons = 1 << iota
	// ButtonSecondary is the secondary button, usually the right button
	// for a right-handed user.
	ButtonSecondary
	// ButtonTertiary is the tertiary button, usually the middle button.
	ButtonTertiary
)

// Contain reports whether the set b contains all of the buttons.
func (b Buttons) Contain(buttons Buttons) bool {
	return b&buttons == buttons
}

func (b Buttons) String() string {
	var strs []string
	if b.Contain(ButtonPrimary) {
		strs = append(strs, "ButtonPrimary")
	}
	if b.Contain(ButtonSecondary) {
		strs = append(strs, "ButtonSecondary")
	}
	if b.Contain(ButtonTertiary) {
		strs = append(strs, "ButtonTertiary")
	}
	return strings.Join(strs, "|")
}

func (k Kind) String() string {
	switch k {
	case Move:
		return "Move"
	case Press:
		return "Press"
	case Release:
		return "Release"
	default:
		panic("unknown Kind")
	}
}

func (Event) ImplementsEvent() {}
