// SPDX-License-Identifier: Unlicense OR MIT

/*
Package key implements keystroke events.

A keystroke is a single UTF-8 encoded character. Leading bytes up to 31
are control codes: Backspace deletes the last character of the focused
text field and Return submits it. All other keystrokes are inserted
literally.
*/
package key

import "fmt"

// Event is one keystroke delivered to the focused widget.
type Event struct {
	// Text is the UTF-8 encoding of the keystroke.
	Text string
}

// Name is the identifier for a named keyboard key, as reported by
// platform layers.
type Name string

const (
	// Backspace is the control code for deleting backwards.
	Backspace = 8
	// Return is the control code for submitting text.
	Return = 13
	// Escape is the control code of the escape key.
	Escape = 27
)

const (
	NameReturn         Name = "⏎"
	NameEnter          Name = "⌤"
	NameEscape         Name = "⎋"
	NameDeleteBackward Name = "⌫"
	NameTab            Name = "Tab"
	NameSpace          Name = "Space"
)

// Named returns the keystroke for a named key. Unknown names produce the
// empty Event.
func Named(n Name) Event {
	switch n {
	case NameReturn, NameEnter:
		return Event{Text: string(rune(Return))}
	case NameDeleteBackward:
		return Event{Text: string(rune(Backspace))}
	case NameEscape:
		return Event{Text: string(rune(Escape))}
	case NameTab:
		return Event{Text: "\t"}
	case NameSpace:
		return Event{Text: " "}
	}
	return Event{}
}

// Code returns the first byte of the keystroke, or 0 for the empty event.
func (e Event) Code() byte {
	if e.Text == "" {
		return 0
	}
	return e.Text[0]
}

// Control reports whether the keystroke is a control code.
func (e Event) Control() bool {
	return e.Text != "" && e.Code() <= 31
}

func (e Event) String() string {
	if e.Control() {
		return fmt.Sprintf("key.Event{Code: %d}", e.Code())
	}
	return fmt.Sprintf("key.Event{Text: %q}", e.Text)
}

func (Event) ImplementsEvent() {}
