// SPDX-License-Identifier: Unlicense OR MIT

/*
Package widget defines the protocol every widget follows and the
basic widgets the others are built from.

A host drives four passes over a tree of widgets per frame. Hash folds
every layout affecting field into a Hasher; when the sum changes the
host calls Layout, which returns a layout.Node tree with the same shape
as the widget tree. Draw turns the node tree into op primitives and
OnEvent reacts to input between frames, publishing application
messages to a Shell.

Widgets are values rebuilt every frame. State that must survive a frame,
such as whether a button is pressed, lives in a State value owned by
the application and lent to the widget:

	type App struct {
		step stepper.State
		n    int
	}

	func (a *App) View() widget.Widget[Msg] {
		return stepper.New(&a.step, a.n, func(v int) Msg { return Msg{N: v} })
	}

Widgets never panic on input. A widget drawn with a layout that has
fewer children than expected draws op.None for the missing parts.
*/
package widget
