// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app defines the contract between an application and the host
that runs its widgets.

An application owns all state. The host asks it for a widget tree with
View, lays the tree out, draws it and routes input events to it.
Widgets answer events by publishing messages, and the host delivers
every message to Update before asking for the next view:

	type counter struct {
		value   int
		stepper stepper.State
	}

	func (c *counter) Update(v int) { c.value = v }

	func (c *counter) View() widget.Widget[int] {
		return stepper.New(&c.stepper, c.value, func(v int) int { return v })
	}

See package headless for a host that renders to images.
*/
package app

import "awkit.org/widget"

// Program is an application driven by messages of type M.
type Program[M any] interface {
	// Update applies a message published by a widget.
	Update(m M)
	// View returns the widget tree for the current state.
	View() widget.Widget[M]
}

// Funcs adapts a pair of functions to a Program.
type Funcs[M any] struct {
	UpdateFunc func(M)
	ViewFunc   func() widget.Widget[M]
}

func (f Funcs[M]) Update(m M) {
	if f.UpdateFunc != nil {
		f.UpdateFunc(m)
	}
}

func (f Funcs[M]) View() widget.Widget[M] {
	return f.ViewFunc()
}
