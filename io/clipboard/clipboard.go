// SPDX-License-Identifier: Unlicense OR MIT

// Package clipboard gives widgets access to the system clipboard
// while they handle an event. Widgets must not retain a Clipboard
// beyond the call it was passed to.
package clipboard

// Clipboard reads and writes text.
type Clipboard interface {
	Read() (string, bool)
	Write(text string)
}

// Buffer is an in-memory Clipboard. The zero Buffer is empty.
type Buffer struct {
	text  string
	valid bool
}

// Null is a Clipboard that never holds anything.
type Null struct{}

func (b *Buffer) Read() (string, bool) {
	return b.text, b.valid
}

func (b *Buffer) Write(text string) {
	b.text, b.valid = text, true
}

func (Null) Read() (string, bool) { return "", false }

func (Null) Write(string) {}
