// SPDX-License-Identifier: Unlicense OR MIT

package icon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awkit.org/f32"
	"awkit.org/internal/widgettest"
	"awkit.org/layout"
	"awkit.org/op"
	"awkit.org/style"
	"awkit.org/unit"
	"awkit.org/widget"
)

func TestIcon(t *testing.T) {
	ic := New[struct{}](Check)
	ic.Size = 20
	ic.Color = style.Primary
	h := widgettest.New[struct{}](ic, f32.Sz(100, 100))
	assert.Equal(t, f32.Sz(10, 20), h.Node.Size())

	p, _ := h.Draw()
	ts := widgettest.Texts(p)
	require.Len(t, ts, 1)
	assert.Equal(t, "✓", ts[0].Content)
	assert.Equal(t, Typeface, ts[0].Font.Typeface)
	assert.Equal(t, style.Primary, ts[0].Color)
}

func TestAlignment(t *testing.T) {
	ic := New[struct{}](Gear)
	ic.Sizing = widget.Sizing{W: unit.Px(40), H: unit.Px(40)}
	ic.Horizontal, ic.Vertical = layout.Middle, layout.End
	h := widgettest.New[struct{}](ic, f32.Sz(100, 100))
	assert.Equal(t, f32.Sz(40, 40), h.Node.Size())
	p, _ := h.Draw()
	ts := widgettest.Texts(p)
	require.Len(t, ts, 1)
	assert.Equal(t, f32.Rect(0, 0, 40, 40), ts[0].Bounds)
	assert.Equal(t, op.AlignMiddle, ts[0].Horizontal)
	assert.Equal(t, op.AlignEnd, ts[0].Vertical)
}

func TestHashDiffersByCode(t *testing.T) {
	assert.NotEqual(t, widget.Sum[struct{}](New[struct{}](Up)), widget.Sum[struct{}](New[struct{}](Down)))
}
