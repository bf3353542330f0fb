// SPDX-License-Identifier: Unlicense OR MIT

// Package system contains events about the window hosting the widgets.
package system

import "awkit.org/f32"

// A ResizeEvent is generated when the window size changes.
type ResizeEvent struct {
	Size f32.Size
}

func (ResizeEvent) ImplementsEvent() {}
