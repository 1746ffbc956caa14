// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains the types shared by input events and widget
// identities.
package event

// Tag is the stable identifier of a widget. For a widget state w, the
// tag is &w; tags are compared with ==, never by value.
type Tag interface{}

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}
