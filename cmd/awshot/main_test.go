// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"awkit.org/app/headless"
	"awkit.org/widget/material"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "awshot.toml", `
width = 320
out = "out"

[log]
level = "debug"

[[gallery]]
name = "table"
height = 200

[[gallery.click]]
x = 30
y = 30
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	gs := cfg.Selected()
	require.Len(t, gs, 1)
	assert.Equal(t, Gallery{Name: "table", Width: 320, Height: 200, Clicks: []Click{{X: 30, Y: 30}}}, gs[0])
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown key", "widht = 10\n"},
		{"unknown gallery", "[[gallery]]\nname = \"charts\"\n"},
		{"bad size", "width = -1\n"},
		{"syntax", "width = \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, "awshot.toml", tt.content))
			assert.Error(t, err)
		})
	}
}

func TestSelectedDefaultsToAll(t *testing.T) {
	gs := DefaultConfig().Selected()
	require.Len(t, gs, len(galleries))
	for _, g := range gs {
		assert.Equal(t, 640, g.Width)
	}
	assert.Equal(t, "cards", gs[0].Name)
}

func TestNewLogger(t *testing.T) {
	_, err := LogConfig{Format: "xml"}.NewLogger()
	assert.Error(t, err)
	_, err = LogConfig{Level: "loud"}.NewLogger()
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "awshot.log")
	log, err := LogConfig{Level: "info", Format: "json", Filename: file, MaxSize: 1}.NewLogger()
	require.NoError(t, err)
	log.Info("hello")
	require.NoError(t, log.Sync())
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestGalleriesRender(t *testing.T) {
	th := material.NewTheme(material.Dark)
	for _, name := range galleryNames() {
		t.Run(name, func(t *testing.T) {
			w := galleries[name](th, headless.Options{
				Size:   image.Pt(400, 300),
				Logger: zaptest.NewLogger(t),
			})
			img, err := render(w, []Click{{X: 40, Y: 30}, {X: 200, Y: 150}})
			require.NoError(t, err)
			assert.Equal(t, image.Pt(400, 300), img.Bounds().Size())
		})
	}
}

func TestRunWritesFiles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 200, 150
	cfg.Out = t.TempDir()
	cfg.Galleries = []Gallery{{Name: "grid"}, {Name: "form"}}
	require.NoError(t, run(cfg, zaptest.NewLogger(t)))
	for _, name := range []string{"grid", "form"} {
		_, err := os.Stat(filepath.Join(cfg.Out, name+".png"))
		assert.NoError(t, err)
	}
}
