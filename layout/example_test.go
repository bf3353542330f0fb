// SPDX-License-Identifier: Unlicense OR MIT

package layout_test

import (
	"fmt"

	"awkit.org/f32"
	"awkit.org/layout"
	"awkit.org/unit"
)

func ExampleLimits() {
	l := layout.NewLimits(f32.Size{}, f32.Sz(100, 50))

	// A filling width takes all the room; the height shrinks to fit.
	fill := l.Width(unit.Fill)
	fmt.Println(fill.Resolve(f32.Sz(30, 20)))

	// Padding removes room from every edge.
	fmt.Println(fill.Pad(10).Resolve(f32.Sz(30, 20)))

	// Output:
	// 100x20
	// 80x20
}

func ExampleFlex() {
	row := layout.Flex{Axis: layout.Horizontal, Spacing: 10}
	n := row.Resolve(layout.NewLimits(f32.Size{}, f32.Sz(200, 50)),
		layout.Rigid(func(l layout.Limits) layout.Node {
			return layout.NewNode(f32.Sz(40, 20))
		}),
		// The flexed child receives the remaining width.
		layout.Flexed(1, func(l layout.Limits) layout.Node {
			return layout.NewNode(l.Resolve(f32.Size{}))
		}),
	)
	fmt.Print(n)

	// Output:
	// (0,0)-(200,20)
	//   (0,0)-(40,20)
	//   (50,0)-(200,0)
}
