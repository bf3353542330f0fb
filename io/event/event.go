// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains types for event handling.
package event

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}

// Status reports whether a widget consumed an event.
type Status uint8

const (
	// Ignored events may be handled by other widgets.
	Ignored Status = iota
	// Captured events must not be handled further.
	Captured
)

// Merge folds two statuses; Captured wins.
func (s Status) Merge(s2 Status) Status {
	if s == Captured || s2 == Captured {
		return Captured
	}
	return Ignored
}

func (s Status) String() string {
	switch s {
	case Ignored:
		return "Ignored"
	case Captured:
		return "Captured"
	default:
		panic("unknown status")
	}
}
