// SPDX-License-Identifier: Unlicense OR MIT

// Package headless implements headless windows for rendering
// a program's widgets to an image.
package headless

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"go.uber.org/zap"
	"golang.org/x/image/draw"

	"awkit.org/app"
	"awkit.org/f32"
	"awkit.org/io/clipboard"
	"awkit.org/io/event"
	"awkit.org/io/pointer"
	"awkit.org/io/system"
	"awkit.org/layout"
	"awkit.org/raster"
	"awkit.org/style"
	"awkit.org/text"
	"awkit.org/widget"
)

// ErrNoView is returned when a program's View returns nil.
var ErrNoView = errors.New("headless: program returned no view")

// Options configure a Window.
type Options struct {
	// Size is the window size in pixels.
	Size image.Point
	// Shaper measures and draws text. Nil means a shaper for the Go
	// fonts.
	Shaper *text.Shaper
	// Clipboard is passed to widgets. Nil means an in-memory
	// clipboard.
	Clipboard clipboard.Clipboard
	// Logger receives frame diagnostics. Nil means no logging.
	Logger *zap.Logger
	// Background fills the window before drawing. The zero value is
	// white.
	Background color.NRGBA
	// Defaults are passed to the root widget. The zero value uses
	// widget.DefaultDefaults.
	Defaults widget.Defaults
}

// Window hosts a Program without a display.
//
// Each Frame first dispatches queued events, delivering published
// messages to the program. It then asks the program for its view,
// lays the view out only when its hash or the window size changed,
// draws it and rasterizes the result.
type Window[M any] struct {
	prog      app.Program[M]
	opts      Options
	log       *zap.Logger
	raster    *raster.Rasterizer
	hasher    *widget.Hasher
	shell     widget.Shell[M]
	queue     []event.Event
	root      widget.Widget[M]
	node      layout.Node
	hash      uint64
	laidOut   f32.Size
	valid     bool
	cursor    f32.Point
	rebuilds  int
	delivered int
}

// NewWindow returns a window for p.
func NewWindow[M any](p app.Program[M], o Options) *Window[M] {
	if o.Shaper == nil {
		o.Shaper = text.NewShaper(nil)
	}
	if o.Clipboard == nil {
		o.Clipboard = new(clipboard.Buffer)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Background == (color.NRGBA{}) {
		o.Background = style.White
	}
	if o.Defaults == (widget.Defaults{}) {
		o.Defaults = widget.DefaultDefaults
	}
	return &Window[M]{
		prog:   p,
		opts:   o,
		log:    o.Logger,
		raster: raster.New(o.Shaper),
		hasher: widget.NewHasher(),
	}
}

// Queue adds events to dispatch at the next Frame.
func (w *Window[M]) Queue(events ...event.Event) {
	w.queue = append(w.queue, events...)
}

// Resize changes the window size and queues a system.ResizeEvent.
func (w *Window[M]) Resize(size image.Point) {
	w.opts.Size = size
	w.Queue(system.ResizeEvent{Size: w.size()})
}

// Root returns the layout of the last frame.
func (w *Window[M]) Root() layout.Node {
	return w.node
}

// Rebuilds returns the number of times the view was laid out.
func (w *Window[M]) Rebuilds() int {
	return w.rebuilds
}

// Delivered returns the number of messages delivered to the program.
func (w *Window[M]) Delivered() int {
	return w.delivered
}

func (w *Window[M]) size() f32.Size {
	return f32.Sz(float32(w.opts.Size.X), float32(w.opts.Size.Y))
}

// view refreshes the root widget and its layout.
func (w *Window[M]) view() error {
	if w.valid {
		return nil
	}
	root := w.prog.View()
	if root == nil {
		return ErrNoView
	}
	w.root = root
	w.hasher.Reset()
	root.Hash(w.hasher)
	h := w.hasher.Sum64()
	size := w.size()
	if w.rebuilds == 0 || h != w.hash || size != w.laidOut {
		w.node = root.Layout(w.opts.Shaper, layout.NewLimits(f32.Size{}, size))
		w.hash, w.laidOut = h, size
		w.rebuilds++
		w.log.Debug("layout", zap.Uint64("hash", h), zap.Stringer("size", w.node.Size()))
	}
	w.valid = true
	return nil
}

func (w *Window[M]) layout() layout.Layout {
	return layout.Place(&w.node, f32.Point{})
}

// dispatch routes queued events to the root widget. Messages are
// delivered after every event, so that each event sees the view of
// the state the previous one produced. The view is refreshed after
// any event that published or was captured.
func (w *Window[M]) dispatch() error {
	events := w.queue
	w.queue = nil
	for _, e := range events {
		if err := w.view(); err != nil {
			return err
		}
		if pe, ok := e.(pointer.Event); ok {
			w.cursor = pe.Position
		}
		st := w.root.OnEvent(e, w.layout(), w.cursor, w.opts.Shaper, w.opts.Clipboard, &w.shell)
		msgs := w.shell.Messages()
		w.log.Debug("event", zap.Any("event", e), zap.Bool("captured", st == event.Captured), zap.Int("messages", len(msgs)))
		for _, m := range msgs {
			w.prog.Update(m)
			w.delivered++
		}
		// A captured event may change widget state without a message.
		if len(msgs) > 0 || st == event.Captured {
			w.valid = false
		}
		w.shell.Reset()
	}
	return nil
}

// Frame processes queued events and renders the program.
func (w *Window[M]) Frame() (*image.RGBA, pointer.Cursor, error) {
	if w.opts.Size.X <= 0 || w.opts.Size.Y <= 0 {
		return nil, pointer.CursorDefault, fmt.Errorf("headless: invalid window size %v", w.opts.Size)
	}
	if err := w.dispatch(); err != nil {
		return nil, pointer.CursorDefault, err
	}
	// The program may have changed outside of Update.
	w.valid = false
	if err := w.view(); err != nil {
		return nil, pointer.CursorDefault, err
	}
	viewport := f32.Rectangle{Max: w.size().Point()}
	prim, cursor := w.root.Draw(w.opts.Shaper, w.opts.Defaults, w.layout(), w.cursor, viewport)
	img := image.NewRGBA(image.Rectangle{Max: w.opts.Size})
	draw.Draw(img, img.Bounds(), image.NewUniform(w.opts.Background), image.Point{}, draw.Src)
	w.raster.Frame(prim, img)
	return img, cursor, nil
}
