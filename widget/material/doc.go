// SPDX-License-Identifier: Unlicense OR MIT

// Package material derives style sheets for every widget from a small
// colour palette.
//
// Each widget package ships a DefaultStyle. A Theme replaces those
// defaults with sheets computed from its Palette, so that a program can
// restyle all of its widgets by switching palettes:
//
//	th := material.NewTheme(material.Dark)
//	in := textinput.New[Msg](&state.name, "Name", app.name)
//	in.Style = th.TextInput()
//
// Palettes are plain data and load from TOML or YAML files, with
// colours written as "#rrggbb" or "#aarrggbb":
//
//	th, err := material.Load("theme.toml")
package material
