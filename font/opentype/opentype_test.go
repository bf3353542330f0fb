// SPDX-License-Identifier: Unlicense OR MIT

package opentype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	awfont "awkit.org/font"
)

func TestParse(t *testing.T) {
	face, err := Parse(goregular.TTF)
	require.NoError(t, err)
	assert.Equal(t, "Go", string(face.Font().Typeface))

	xf, err := face.NewFace(16)
	require.NoError(t, err)
	defer xf.Close()
	adv, ok := xf.GlyphAdvance('W')
	assert.True(t, ok)
	assert.Positive(t, adv.Ceil())

	assert.NotNil(t, face.Face())
	assert.NotSame(t, face.Face(), face.Face())
}

func TestParseMetadata(t *testing.T) {
	bold, err := Parse(gobold.TTF)
	require.NoError(t, err)
	assert.Equal(t, awfont.Bold, bold.Font().Weight)
	assert.Equal(t, awfont.Regular, bold.Font().Style)

	mono, err := Parse(gomono.TTF)
	require.NoError(t, err)
	assert.Equal(t, awfont.Variant("Mono"), mono.Font().Variant)
}

func TestParseGarbage(t *testing.T) {
	_, err := Parse([]byte("not a font"))
	assert.Error(t, err)
	_, err = Face{}.NewFace(12)
	assert.Error(t, err)
	assert.Nil(t, Face{}.Face())
}

func TestParseCollectionSingle(t *testing.T) {
	faces, err := ParseCollection(goregular.TTF, "body")
	require.NoError(t, err)
	require.Len(t, faces, 1)
	assert.Equal(t, "body", string(faces[0].Font.Typeface))
}
