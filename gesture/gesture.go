// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements common pointer gestures.

Gestures accept low level pointer Events and detect higher level
actions such as clicks. Widgets keep a gesture in their persistent
state and feed it the events they receive together with whether the
pointer is over them.
*/
package gesture

import (
	"awkit.org/io/pointer"
)

// Click detects clicks of the primary button: a press over the
// target followed by a release over it.
type Click struct {
	pressed bool
}

// ClickKind is the kind of a detected click action.
type ClickKind uint8

const (
	// KindNone is reported for events that do not affect the click.
	KindNone ClickKind = iota
	// KindPress is reported when the primary button is pressed over
	// the target.
	KindPress
	// KindClick is reported when the button is released over the
	// target after a KindPress.
	KindClick
	// KindCancel is reported when the button is released elsewhere
	// after a KindPress.
	KindCancel
)

// Pressed reports whether a click is in progress.
func (c *Click) Pressed() bool {
	return c.pressed
}

// Update feeds e to the gesture. Inside reports whether the pointer
// is over the target.
func (c *Click) Update(e pointer.Event, inside bool) ClickKind {
	switch {
	case e.Pressed() && inside:
		c.pressed = true
		return KindPress
	case e.Released() && c.pressed:
		c.pressed = false
		if inside {
			return KindClick
		}
		return KindCancel
	}
	return KindNone
}

// Reset abandons a click in progress.
func (c *Click) Reset() {
	c.pressed = false
}

func (k ClickKind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindPress:
		return "Press"
	case KindClick:
		return "Click"
	case KindCancel:
		return "Cancel"
	default:
		panic("invalid ClickKind")
	}
}
