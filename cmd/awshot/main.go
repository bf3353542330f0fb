// SPDX-License-Identifier: Unlicense OR MIT

// Command awshot renders widget galleries to PNG files.
//
// Usage:
//
//	awshot [-config awshot.toml] [-o dir] [gallery...]
//
// Each gallery runs in a headless window. Clicks listed for a gallery
// in the configuration are dispatched before the screenshot is taken.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"awkit.org/app/headless"
	"awkit.org/f32"
	"awkit.org/font/gofont"
	"awkit.org/io/pointer"
	"awkit.org/text"
	"awkit.org/widget/material"
)

var (
	configPath = flag.String("config", "", "configuration file (TOML).")
	outDir     = flag.String("o", "", "output directory, overriding the configuration.")
	themePath  = flag.String("theme", "", "palette file (TOML or YAML), overriding the configuration.")
	verbose    = flag.Bool("v", false, "log frame diagnostics.")
)

func main() {
	flag.Parse()
	if err := mainErr(flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "awshot: %v\n", err)
		os.Exit(1)
	}
}

func mainErr(args []string) error {
	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = LoadConfig(*configPath); err != nil {
			return err
		}
	}
	if *outDir != "" {
		cfg.Out = *outDir
	}
	if *themePath != "" {
		cfg.Theme = *themePath
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	for _, name := range args {
		cfg.Galleries = append(cfg.Galleries, Gallery{Name: name})
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log, err := cfg.Log.NewLogger()
	if err != nil {
		return err
	}
	defer log.Sync()
	return run(cfg, log)
}

func run(cfg Config, log *zap.Logger) error {
	th := material.NewTheme(material.Light)
	if cfg.Theme != "" {
		var err error
		if th, err = material.Load(cfg.Theme); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(cfg.Out, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	var g errgroup.Group
	for _, gal := range cfg.Selected() {
		gal := gal
		g.Go(func() error {
			start := time.Now()
			path := filepath.Join(cfg.Out, gal.Name+".png")
			if err := shoot(gal, th, cfg.TextSize, log.With(zap.String("gallery", gal.Name)), path); err != nil {
				return fmt.Errorf("%s: %w", gal.Name, err)
			}
			log.Info("wrote screenshot", zap.String("path", path), zap.Duration("elapsed", time.Since(start)))
			return nil
		})
	}
	return g.Wait()
}

// shoot renders a gallery to a PNG file at path. Galleries run
// concurrently, so each gets its own shaper.
func shoot(gal Gallery, th *material.Theme, textSize float32, log *zap.Logger, path string) error {
	build, ok := galleries[gal.Name]
	if !ok {
		return errors.New("unknown gallery")
	}
	shaper := text.NewShaper(gofont.Collection())
	if textSize <= 0 {
		textSize = th.Palette.TextSize
	}
	shaper.SetDefaultTextSize(textSize)
	w := build(th, headless.Options{
		Size:       image.Pt(gal.Width, gal.Height),
		Shaper:     shaper,
		Logger:     log,
		Background: th.Palette.Background.NRGBA(),
		Defaults:   th.Defaults(),
	})
	img, err := render(w, gal.Clicks)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// render draws a first frame, feeds the clicks one frame each and
// returns the final frame.
func render(w window, clicks []Click) (*image.RGBA, error) {
	img, _, err := w.Frame()
	if err != nil {
		return nil, err
	}
	for _, c := range clicks {
		p := f32.Pt(c.X, c.Y)
		w.Queue(
			pointer.Event{Kind: pointer.Move, Position: p},
			pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonPrimary, Position: p},
			pointer.Event{Kind: pointer.Release, Buttons: pointer.ButtonPrimary, Position: p},
		)
		if img, _, err = w.Frame(); err != nil {
			return nil, err
		}
	}
	return img, nil
}
