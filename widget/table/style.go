// SPDX-License-Identifier: Unlicense OR MIT

package table

import (
	"image/color"

	"awkit.org/op"
	"awkit.org/style"
)

// Style is the appearance of a table. Header cells use the Hovered
// and Pressed styles while the pointer is over or pressing them.
type Style struct {
	Background       color.NRGBA
	Border           op.Border
	HeaderBackground color.NRGBA
	HeaderText       color.NRGBA
	Text             color.NRGBA
	Divider          color.NRGBA
}

type defaultStyle struct{}

// DefaultStyle is a light bordered table.
var DefaultStyle style.Sheet[Style] = defaultStyle{}

func (defaultStyle) Active() Style {
	return Style{
		Background:       style.White,
		Border:           op.Border{Radius: 2, Width: 1, Color: style.LightGray},
		HeaderBackground: style.RGB(0xeeeeee),
		HeaderText:       style.Black,
		Text:             style.Black,
		Divider:          style.LightGray,
	}
}

func (s defaultStyle) Hovered() Style {
	st := s.Active()
	st.HeaderBackground = style.RGB(0xe0e0e0)
	st.Divider = style.Primary
	return st
}

func (s defaultStyle) Pressed() Style {
	st := s.Active()
	st.HeaderBackground = style.RGB(0xd0d0d0)
	st.Divider = style.Primary
	return st
}

func (s defaultStyle) Disabled() Style {
	st := s.Active()
	st.HeaderText = style.Gray
	st.Text = style.Gray
	return st
}
