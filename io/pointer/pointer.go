// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer implements pointer events and cursor hints.
package pointer

import (
	"strings"

	"awkit.org/f32"
	"awkit.org/io/key"
)

// Event is a pointer event.
type Event struct {
	Kind Kind
	// Buttons are the buttons involved in a Press or Release, or
	// the set of held buttons for a Move.
	Buttons Buttons
	// Position is the cursor position in window coordinates.
	Position f32.Point
	// Scroll is the scroll amount in lines for Scroll events.
	// Positive Y scrolls towards the user.
	Scroll f32.Point
	// Modifiers is the set of active modifiers.
	Modifiers key.Modifiers
}

// Kind of an Event.
type Kind uint8

// Buttons is a set of mouse buttons
type Buttons uint8

// Cursor denotes a pre-defined cursor shape a widget would like to
// show while the pointer is over it.
type Cursor byte

const (
	// Press of a pointer button.
	Press Kind = iota + 1
	// Release of a pointer button.
	Release
	// Move of the pointer.
	Move
	// Scroll of the wheel.
	Scroll
)

const (
	// ButtonPrimary is the primary button, usually the left button for a
	// right-handed user.
	ButtonPrimary Buttons = 1 << iota
	// ButtonSecondary is the secondary button, usually the right button for a
	// right-handed user.
	ButtonSecondary
	// ButtonTertiary is the tertiary button, usually the middle button.
	ButtonTertiary
)

// The cursors correspond to CSS pointer naming.
const (
	// CursorDefault is the default cursor.
	CursorDefault Cursor = iota
	// CursorText is for selecting and inserting text.
	CursorText
	// CursorPointer is for a link.
	// Usually displayed as a pointing hand.
	CursorPointer
	// CursorColResize is for vertical resize.
	// Usually displayed as a vertical bar with arrows pointing east and west.
	CursorColResize
	// CursorNotAllowed is shown when the request action cannot be carried out.
	// Usually displayed as a circle with a line through.
	CursorNotAllowed
	// CursorGrab is for content that can be grabbed (dragged to be moved).
	CursorGrab
)

// Contain reports whether the set b contains
// all of the buttons in b2.
func (b Buttons) Contain(b2 Buttons) bool {
	return b&b2 == b2
}

// Pressed reports whether e is a press of the primary button.
func (e Event) Pressed() bool {
	return e.Kind == Press && e.Buttons.Contain(ButtonPrimary)
}

// Released reports whether e is a release of the primary button.
func (e Event) Released() bool {
	return e.Kind == Release && e.Buttons.Contain(ButtonPrimary)
}

// Or returns c, or c2 when c is CursorDefault.
func (c Cursor) Or(c2 Cursor) Cursor {
	if c == CursorDefault {
		return c2
	}
	return c
}

func (t Kind) String() string {
	switch t {
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Move:
		return "Move"
	case Scroll:
		return "Scroll"
	default:
		panic("unknown Kind")
	}
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

func (c Cursor) String() string {
	switch c {
	case CursorDefault:
		return "Default"
	case CursorText:
		return "Text"
	case CursorPointer:
		return "Pointer"
	case CursorColResize:
		return "ColResize"
	case CursorNotAllowed:
		return "NotAllowed"
	case CursorGrab:
		return "Grab"
	default:
		panic("unknown Cursor")
	}
}

func (Event) ImplementsEvent() {}
