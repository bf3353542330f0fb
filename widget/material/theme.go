// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image/color"

	"awkit.org/f32"
	"awkit.org/op"
	"awkit.org/style"
	"awkit.org/widget"
	"awkit.org/widget/card"
	"awkit.org/widget/numberinput"
	"awkit.org/widget/outline"
	"awkit.org/widget/stepper"
	"awkit.org/widget/tab"
	"awkit.org/widget/table"
	"awkit.org/widget/textinput"
	"awkit.org/widget/toggler"
)

// Theme builds widget style sheets from a palette.
type Theme struct {
	Palette Palette
}

// NewTheme returns a theme for p.
func NewTheme(p Palette) *Theme {
	return &Theme{Palette: p}
}

// sheet is a style.Sheet with one precomputed style per status.
type sheet[S any] struct {
	active, hovered, pressed, disabled S
}

func (s sheet[S]) Active() S   { return s.active }
func (s sheet[S]) Hovered() S  { return s.hovered }
func (s sheet[S]) Pressed() S  { return s.pressed }
func (s sheet[S]) Disabled() S { return s.disabled }

// derive builds a sheet from the active style and a function adjusting
// a copy of it for every other status.
func derive[S any](active S, adjust func(s *S, st style.Status)) style.Sheet[S] {
	sh := sheet[S]{active: active, hovered: active, pressed: active, disabled: active}
	adjust(&sh.hovered, style.Hovered)
	adjust(&sh.pressed, style.Pressed)
	adjust(&sh.disabled, style.Disabled)
	return sh
}

func (t *Theme) c(c Color) color.NRGBA {
	return c.NRGBA()
}

// hover is the background of hovered surfaces.
func (t *Theme) hover() color.NRGBA {
	p := t.Palette
	return style.Mix(p.Background.NRGBA(), p.Primary.NRGBA(), .1)
}

func (t *Theme) border(c Color) op.Border {
	return op.Border{Radius: t.Palette.Radius, Width: 1, Color: c.NRGBA()}
}

// Defaults returns the drawing defaults for the palette.
func (t *Theme) Defaults() widget.Defaults {
	return widget.Defaults{TextColor: t.c(t.Palette.Text)}
}

// Container returns a sheet drawing a framed surface.
func (t *Theme) Container() style.Sheet[widget.ContainerStyle] {
	p := t.Palette
	return style.Static[widget.ContainerStyle]{S: widget.ContainerStyle{
		Background: t.c(p.Background),
		Border:     t.border(p.Muted),
		TextColor:  t.c(p.Text),
	}}
}

// TextInput returns the sheet for text inputs.
func (t *Theme) TextInput() style.Sheet[textinput.Style] {
	p := t.Palette
	return derive(textinput.Style{
		Background:  t.c(p.Background),
		Border:      t.border(p.Muted),
		Text:        t.c(p.Text),
		Placeholder: t.c(p.Muted),
		Selection:   style.MulAlpha(t.c(p.Primary), 0x60),
	}, func(s *textinput.Style, st style.Status) {
		switch st {
		case style.Hovered:
			s.Border.Color = t.c(p.Text)
		case style.Pressed:
			s.Border.Color = t.c(p.Primary)
		case style.Disabled:
			s.Background = t.c(p.Surface)
			s.Text = t.c(p.Muted)
		}
	})
}

// NumberInput returns the sheet for the modifier buttons of number
// inputs.
func (t *Theme) NumberInput() style.Sheet[numberinput.Style] {
	p := t.Palette
	return derive(numberinput.Style{
		Background: t.c(p.Surface),
		Icon:       t.c(p.Text),
	}, func(s *numberinput.Style, st style.Status) {
		switch st {
		case style.Hovered:
			s.Background = t.hover()
		case style.Pressed:
			s.Background = t.c(p.Primary)
			s.Icon = t.c(p.OnPrimary)
		case style.Disabled:
			s.Icon = t.c(p.Muted)
		}
	})
}

// Stepper returns the sheet for stepper buttons.
func (t *Theme) Stepper() style.Sheet[stepper.Style] {
	p := t.Palette
	return derive(stepper.Style{
		Background: t.c(p.Primary),
		Border:     op.Border{Radius: t.Palette.Radius},
		Text:       t.c(p.OnPrimary),
	}, func(s *stepper.Style, st style.Status) {
		switch st {
		case style.Hovered:
			s.Background = style.Mix(t.c(p.Primary), t.c(p.Text), .15)
		case style.Pressed:
			s.Background = style.Mix(t.c(p.Primary), t.c(p.Text), .3)
		case style.Disabled:
			s.Background = t.c(p.Surface)
			s.Text = t.c(p.Muted)
		}
	})
}

// Table returns the sheet for tables and their headers. The hovered
// and pressed styles apply to header cells.
func (t *Theme) Table() style.Sheet[table.Style] {
	p := t.Palette
	return derive(table.Style{
		Background:       t.c(p.Background),
		Border:           op.Border{Width: 1, Color: t.c(p.Muted)},
		HeaderBackground: t.c(p.Surface),
		HeaderText:       t.c(p.Text),
		Text:             t.c(p.Text),
		Divider:          t.c(p.Muted),
	}, func(s *table.Style, st style.Status) {
		switch st {
		case style.Hovered:
			s.HeaderBackground = t.hover()
		case style.Pressed:
			s.HeaderBackground = t.c(p.Primary)
			s.HeaderText = t.c(p.OnPrimary)
		case style.Disabled:
			s.Text = t.c(p.Muted)
			s.HeaderText = t.c(p.Muted)
		}
	})
}

// Card returns the sheet for cards.
func (t *Theme) Card() style.Sheet[card.Style] {
	p := t.Palette
	return derive(card.Style{
		Background:       t.c(p.Background),
		Border:           t.border(p.Muted),
		Shadow:           op.Shadow{Offset: f32.Pt(0, 2), Color: style.MulAlpha(t.c(p.Text), 0x30)},
		HeaderBackground: t.c(p.Surface),
		HeaderText:       t.c(p.Text),
		BodyText:         t.c(p.Text),
		FooterBackground: t.c(p.Surface),
		FooterText:       t.c(p.Muted),
		Close:            t.c(p.Muted),
	}, func(s *card.Style, st style.Status) {
		switch st {
		case style.Hovered:
			s.Shadow.Offset = f32.Pt(0, 4)
			s.Close = t.c(p.Text)
		case style.Pressed:
			s.Shadow.Offset = f32.Pt(0, 1)
		case style.Disabled:
			s.HeaderText = t.c(p.Muted)
			s.BodyText = t.c(p.Muted)
		}
	})
}

// Tab returns the sheet for tabs.
func (t *Theme) Tab() style.Sheet[tab.Style] {
	p := t.Palette
	return derive(tab.Style{
		Background: style.Transparent,
		Text:       t.c(p.Muted),
		Indicator:  t.c(p.Primary),
	}, func(s *tab.Style, st style.Status) {
		switch st {
		case style.Hovered:
			s.Background = t.hover()
			s.Text = t.c(p.Text)
		case style.Pressed:
			s.Text = t.c(p.Primary)
		}
	})
}

// Toggler returns the sheet for togglers.
func (t *Theme) Toggler() style.Sheet[toggler.Style] {
	p := t.Palette
	return derive(toggler.Style{
		Background: t.c(p.Muted),
		Foreground: t.c(p.Background),
		Label:      t.c(p.Text),
	}, func(s *toggler.Style, st style.Status) {
		switch st {
		case style.Hovered:
			s.Background = style.Mix(t.c(p.Muted), t.c(p.Text), .2)
		case style.Pressed:
			s.Background = t.c(p.Primary)
		case style.Disabled:
			s.Label = t.c(p.Muted)
		}
	})
}

// Outline returns the sheet for outline buttons.
func (t *Theme) Outline() style.Sheet[outline.Style] {
	p := t.Palette
	return derive(outline.Style{
		Foreground: t.c(p.Primary),
		Background: t.c(p.Background),
		Border:     t.border(p.Primary),
	}, func(s *outline.Style, st style.Status) {
		switch st {
		case style.Hovered:
			s.Background = t.hover()
		case style.Disabled:
			s.Foreground = t.c(p.Muted)
			s.Border.Color = t.c(p.Muted)
		}
	})
}
