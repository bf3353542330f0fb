// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a palette file.
type Format uint8

const (
	TOML Format = iota
	YAML
)

// ErrUnknownFormat is returned for palette files of unsupported type.
var ErrUnknownFormat = errors.New("material: unknown palette format")

// Color is a colour that encodes as a hex string.
type Color color.NRGBA

// Palette is the set of colours a Theme derives its styles from.
type Palette struct {
	Name string `toml:"name" yaml:"name"`
	// Background is the colour of surfaces such as inputs and cards.
	Background Color `toml:"background" yaml:"background"`
	// Surface is the colour of headers, footers and hovered items.
	Surface Color `toml:"surface" yaml:"surface"`
	Text    Color `toml:"text" yaml:"text"`
	// Muted is used for placeholders, borders and disabled text.
	Muted   Color `toml:"muted" yaml:"muted"`
	Primary Color `toml:"primary" yaml:"primary"`
	// OnPrimary is the text colour on primary backgrounds.
	OnPrimary Color `toml:"on_primary" yaml:"on_primary"`
	// TextSize is the default text size. Zero leaves it to the
	// renderer.
	TextSize float32 `toml:"text_size,omitempty" yaml:"text_size,omitempty"`
	// Radius is the corner radius of framed widgets.
	Radius float32 `toml:"radius" yaml:"radius"`
}

var (
	// Light is a light palette with an indigo accent.
	Light = Palette{
		Name:       "light",
		Background: hex(0xffffffff),
		Surface:    hex(0xfff4f4f4),
		Text:       hex(0xff000000),
		Muted:      hex(0xff9e9e9e),
		Primary:    hex(0xff3f51b5),
		OnPrimary:  hex(0xffffffff),
		Radius:     4,
	}
	// Dark is a dark palette with a light indigo accent.
	Dark = Palette{
		Name:       "dark",
		Background: hex(0xff202124),
		Surface:    hex(0xff2d2e31),
		Text:       hex(0xffe8eaed),
		Muted:      hex(0xff80868b),
		Primary:    hex(0xff8ab4f8),
		OnPrimary:  hex(0xff202124),
		Radius:     4,
	}
)

func hex(c uint32) Color {
	return Color{A: uint8(c >> 24), R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}

// NRGBA returns c as a color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA(c)
}

func (c Color) String() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.A, c.R, c.G, c.B)
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(text)), "#")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("material: invalid colour %q: %w", text, err)
	}
	switch len(s) {
	case 6:
		*c = hex(0xff000000 | uint32(v))
	case 8:
		*c = hex(uint32(v))
	default:
		return fmt.Errorf("material: invalid colour %q: want 6 or 8 hex digits", text)
	}
	return nil
}

// FormatOf returns the format for a file name by extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// DecodePalette reads a palette from r. Colours missing from the
// input keep their value in Light.
func DecodePalette(r io.Reader, f Format) (Palette, error) {
	p := Light
	switch f {
	case TOML:
		if _, err := toml.NewDecoder(r).Decode(&p); err != nil {
			return Palette{}, fmt.Errorf("material: decode toml: %w", err)
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&p); err != nil && !errors.Is(err, io.EOF) {
			return Palette{}, fmt.Errorf("material: decode yaml: %w", err)
		}
	default:
		return Palette{}, ErrUnknownFormat
	}
	return p, nil
}

// Encode writes p to w.
func (p Palette) Encode(w io.Writer, f Format) error {
	switch f {
	case TOML:
		return toml.NewEncoder(w).Encode(p)
	case YAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(p); err != nil {
			return err
		}
		return enc.Close()
	}
	return ErrUnknownFormat
}

// Load reads a palette file and returns its theme.
func Load(path string) (*Theme, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("material: read palette: %w", err)
	}
	p, err := DecodePalette(bytes.NewReader(data), f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return NewTheme(p), nil
}
