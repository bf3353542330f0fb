// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"awkit.org/unit"
)

// Sizing holds the length policies of a widget. Embed it to
// implement the Width and Height methods of Widget.
type Sizing struct {
	W, H unit.Length
}

func (s Sizing) Width() unit.Length  { return s.W }
func (s Sizing) Height() unit.Length { return s.H }

// Hash writes the policies to h.
func (s Sizing) Hash(h *Hasher) {
	h.Length(s.W)
	h.Length(s.H)
}
