// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the awshot configuration file.
type Config struct {
	// Width and Height are the default window size of galleries.
	Width  int `toml:"width"`
	Height int `toml:"height"`
	// Theme is a palette file in TOML or YAML. Empty means the light
	// palette.
	Theme string `toml:"theme"`
	// Out is the directory screenshots are written to.
	Out      string    `toml:"out"`
	TextSize float32   `toml:"text_size"`
	Log      LogConfig `toml:"log"`
	// Galleries lists the galleries to render. Empty renders all of
	// them.
	Galleries []Gallery `toml:"gallery"`
}

// Gallery selects a gallery and the input to feed it before the
// screenshot.
type Gallery struct {
	Name   string  `toml:"name"`
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	Clicks []Click `toml:"click"`
}

// Click is a primary button press and release at a position.
type Click struct {
	X float32 `toml:"x"`
	Y float32 `toml:"y"`
}

// DefaultConfig returns the configuration used without a file.
func DefaultConfig() Config {
	return Config{
		Width:  640,
		Height: 480,
		Out:    "shots",
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig reads the TOML file at path over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys %s", path, strings.Join(names, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports configuration errors.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.Out == "" {
		return errors.New("empty output directory")
	}
	for _, g := range c.Galleries {
		if _, ok := galleries[g.Name]; !ok {
			return fmt.Errorf("unknown gallery %q", g.Name)
		}
		if g.Width < 0 || g.Height < 0 {
			return fmt.Errorf("gallery %q: invalid size %dx%d", g.Name, g.Width, g.Height)
		}
	}
	return nil
}

// Selected returns the galleries to render with their sizes filled
// in from the defaults.
func (c Config) Selected() []Gallery {
	gs := c.Galleries
	if len(gs) == 0 {
		for _, name := range galleryNames() {
			gs = append(gs, Gallery{Name: name})
		}
	}
	out := make([]Gallery, len(gs))
	for i, g := range gs {
		if g.Width == 0 {
			g.Width = c.Width
		}
		if g.Height == 0 {
			g.Height = c.Height
		}
		out[i] = g
	}
	return out
}
