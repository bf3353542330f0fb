// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	"sort"

	"awkit.org/app/headless"
	"awkit.org/f32"
	"awkit.org/io/event"
	"awkit.org/io/pointer"
	"awkit.org/layout"
	"awkit.org/style"
	"awkit.org/unit"
	"awkit.org/widget"
	"awkit.org/widget/card"
	"awkit.org/widget/grid"
	"awkit.org/widget/icon"
	"awkit.org/widget/material"
	"awkit.org/widget/numberinput"
	"awkit.org/widget/outline"
	"awkit.org/widget/stack"
	"awkit.org/widget/stepper"
	"awkit.org/widget/tab"
	"awkit.org/widget/table"
	"awkit.org/widget/textinput"
	"awkit.org/widget/toggler"
)

// window is the part of a headless.Window a gallery is driven through.
type window interface {
	Queue(events ...event.Event)
	Frame() (*image.RGBA, pointer.Cursor, error)
}

type galleryFunc func(th *material.Theme, o headless.Options) window

var galleries = map[string]galleryFunc{
	"grid":  newGridGallery,
	"table": newTableGallery,
	"form":  newFormGallery,
	"cards": newCardsGallery,
}

func galleryNames() []string {
	names := make([]string, 0, len(galleries))
	for n := range galleries {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func label[M any](s string) widget.Widget[M] {
	return widget.NewText[M](s)
}

type gridGallery struct {
	th *material.Theme
}

func newGridGallery(th *material.Theme, o headless.Options) window {
	return headless.NewWindow[struct{}](gridGallery{th: th}, o)
}

func (gridGallery) Update(struct{}) {}

func (g gridGallery) View() widget.Widget[struct{}] {
	gr := grid.New[struct{}]().ColumnWidth(120)
	for i := 1; i <= 12; i++ {
		c := widget.NewContainer(label[struct{}](fmt.Sprintf("Cell %d", i)))
		c.Padding = layout.UniformInset(10)
		c.Horizontal, c.Vertical = layout.Middle, layout.Middle
		c.W = unit.Fill
		c.Style = g.th.Container()
		gr = gr.Push(c)
	}
	return gr
}

type planet struct {
	name   string
	moons  int
	radius float64
}

var planets = []planet{
	{"Mercury", 0, 2439.7},
	{"Venus", 0, 6051.8},
	{"Earth", 1, 6371},
	{"Mars", 2, 3389.5},
	{"Jupiter", 95, 69911},
	{"Saturn", 146, 58232},
}

func projectPlanet(p planet, field string) (table.Value, error) {
	switch field {
	case "name":
		return table.String(p.name), nil
	case "moons":
		return table.Int(int64(p.moons)), nil
	case "radius":
		return table.Float(p.radius), nil
	}
	return table.Value{}, &table.FieldError{Field: field}
}

type tableGallery struct {
	th    *material.Theme
	state *table.State
}

func newTableGallery(th *material.Theme, o headless.Options) window {
	st := table.NewState(
		table.Column{Name: "name", Label: "Planet", Width: 120},
		table.Column{Name: "moons", Label: "Moons", Width: 80},
		table.Column{Name: "radius", Label: "Mean radius (km)", ShortName: "Radius", Width: 160},
	)
	return headless.NewWindow[table.Message](&tableGallery{th: th, state: st}, o)
}

// Update has nothing to do: the table applies its messages to state.
func (t *tableGallery) Update(table.Message) {}

func (t *tableGallery) View() widget.Widget[table.Message] {
	tb := table.New(t.state, planets, table.DataFunc[planet](projectPlanet), func(m table.Message) table.Message { return m }).
		Orderable(true).
		Style(t.th.Table())
	c := widget.NewContainer[table.Message](tb)
	c.Padding = layout.UniformInset(20)
	return c
}

// formGallery messages are functions applied to the gallery.
type formMsg func(f *formGallery)

type formGallery struct {
	th      *material.Theme
	name    string
	nameIn  textinput.State
	dark    bool
	age     int
	ageIn   numberinput.State
	copies  uint8
	copiesS stepper.State
	save    outline.State
	saved   int
}

func newFormGallery(th *material.Theme, o headless.Options) window {
	return headless.NewWindow[formMsg](&formGallery{th: th, age: 30, copies: 1}, o)
}

func (f *formGallery) Update(m formMsg) { m(f) }

func (f *formGallery) View() widget.Widget[formMsg] {
	name := textinput.New[formMsg](&f.nameIn, "Name", f.name)
	name.OnInput = func(s string) formMsg { return func(f *formGallery) { f.name = s } }
	name.Style = f.th.TextInput()

	dark := toggler.New(f.dark, "Dark mode", func(b bool) formMsg {
		return func(f *formGallery) { f.dark = b }
	})
	dark.Style = f.th.Toggler()

	age := numberinput.New(&f.ageIn, f.age, 150, func(v int) formMsg {
		return func(f *formGallery) { f.age = v }
	}).Bounds(0, 150).Style(f.th.NumberInput()).InputStyle(f.th.TextInput())

	copies := stepper.New(&f.copiesS, f.copies, func(v uint8) formMsg {
		return func(f *formGallery) { f.copies = v }
	}).Min(1).Max(10).Style(f.th.Stepper())

	save := outline.New[formMsg](&f.save, widget.Row[formMsg](
		icon.New[formMsg](icon.Check),
		label[formMsg](fmt.Sprintf("Save (%d)", f.saved)),
	)).OnPress(func(f *formGallery) { f.saved++ }).Style(f.th.Outline())

	col := widget.Column[formMsg](name, dark, age, copies, save)
	col.Spacing = 12
	col.Padding = 20
	return col
}

// swatch is a horizontal hue gradient shown on cards.
var swatch = func() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 16))
	for x := 0; x < 64; x++ {
		c := style.Mix(style.Primary, style.RGB(0xff9800), float32(x)/63)
		for y := 0; y < 16; y++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}()

type cardsGallery struct {
	th     *material.Theme
	tab    int
	cards  [3]card.State
	closed [3]bool
}

type cardsMsg func(g *cardsGallery)

func newCardsGallery(th *material.Theme, o headless.Options) window {
	return headless.NewWindow[cardsMsg](&cardsGallery{th: th}, o)
}

func (g *cardsGallery) Update(m cardsMsg) { m(g) }

func (g *cardsGallery) View() widget.Widget[cardsMsg] {
	selectTab := func(i int) cardsMsg { return func(g *cardsGallery) { g.tab = i } }
	tabs := widget.Row[cardsMsg]()
	for i, name := range []string{"Overview", "Details", "History"} {
		t := tab.New(i, g.tab, selectTab, label[cardsMsg](name)).
			Indicator(tab.Indicator{Position: tab.Bottom}).
			Style(g.th.Tab())
		tabs = tabs.Push(t)
	}
	st := stack.New[cardsMsg]()
	for i := range g.cards {
		if g.closed[i] {
			continue
		}
		i := i
		img := widget.NewImage[cardsMsg](swatch)
		img.Fit = widget.Contain
		img.Sizing = widget.Sizing{W: unit.Px(96), H: unit.Px(32)}
		body := widget.Column[cardsMsg](label[cardsMsg](fmt.Sprintf("Tab %d", g.tab+1)), img)
		body.Spacing = 6
		c := card.New(&g.cards[i], label[cardsMsg](fmt.Sprintf("Card %d", i+1)), body).
			Footer(label[cardsMsg]("footer")).
			OnClose(func(g *cardsGallery) { g.closed[i] = true }).
			MinWidth(160).
			Style(g.th.Card())
		st = st.PushAt(c, f32.Pt(float32(20+40*i), float32(20+40*i)))
	}
	col := widget.Column[cardsMsg](tabs, st)
	col.Spacing = 10
	col.Padding = 10
	return col
}
