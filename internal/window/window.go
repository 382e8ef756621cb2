// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package window hosts the renderer in a gogpu window.
//
// gogpu owns the native window, the GPU device and the swapchain, and
// presents after each frame callback. Window exposes that host to the rest
// of the program as a gpucore.Host for the backend, a present.Window for
// the surface and a loop.Source for the dispatcher. gogpu is Pure Go, so
// programs using this package build with CGO_ENABLED=0.
//
// Run must be called from the main goroutine with the OS thread locked.
package window

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/present/gpucore"
	"github.com/gogpu/present/loop"
)

// ErrInvalidSize is returned by Open for a zero window dimension.
var ErrInvalidSize = errors.New("window: invalid size")

// Config describes the window to open.
type Config struct {
	Title string

	// Width and Height are the initial size in logical points.
	Width  uint32
	Height uint32
}

// Window is a resizable gogpu window rendered continuously.
type Window struct {
	app *gogpu.App
	cfg Config

	// fc is the frame context while a frame callback runs, nil otherwise.
	fc *gogpu.Context

	eventQueue
	quit bool
}

var (
	_ gpucore.Host              = (*Window)(nil)
	_ gpucontext.WindowProvider = (*Window)(nil)
	_ loop.Source               = (*Window)(nil)
)

// Open creates the window. It becomes visible when Run is called.
func Open(cfg Config) (*Window, error) {
	if cfg.Width == 0 || cfg.Height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, cfg.Width, cfg.Height)
	}

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(cfg.Title).
		WithSize(int(cfg.Width), int(cfg.Height)).
		WithContinuousRender(true))

	w := &Window{app: app, cfg: cfg}
	es := app.EventSource()
	es.OnKeyPress(func(key gpucontext.Key, mods gpucontext.Modifiers) {
		w.push(loop.KeyPressed(key, mods))
	})
	es.OnKeyRelease(func(key gpucontext.Key, mods gpucontext.Modifiers) {
		w.push(loop.KeyReleased(key, mods))
	})
	es.OnFocus(func(focused bool) {
		w.push(loop.FocusChanged(focused))
	})
	// Sizes are taken from the frames themselves. A zero size means the
	// window was minimized and no frame will report it.
	es.OnResize(func(width, height int) {
		if width <= 0 || height <= 0 {
			w.push(loop.Resized(0, 0))
		}
	})
	return w, nil
}

// Run shows the window and calls frame once per host frame until frame
// returns false or the window is closed. closed runs once at shutdown
// while the host's device is still alive; GPU objects borrowed from the
// host must be released there.
func (w *Window) Run(frame func() bool, closed func()) error {
	w.app.OnDraw(func(fc *gogpu.Context) {
		if w.quit {
			return
		}
		wd, ht := framePixels(fc)
		w.observe(gpucore.NewSize(wd, ht), w.ScaleFactor())

		w.fc = fc
		defer func() { w.fc = nil }()
		if !frame() {
			w.quit = true
			w.app.Quit()
		}
	})
	w.app.OnClose(func() {
		w.quit = true
		if closed != nil {
			closed()
		}
	})
	if err := w.app.Run(); err != nil {
		return fmt.Errorf("window: run: %w", err)
	}
	return nil
}

// GPUContextProvider returns the host's device, or nil before the first frame.
func (w *Window) GPUContextProvider() gpucontext.DeviceProvider {
	p := w.app.GPUContextProvider()
	if p == nil {
		return nil
	}
	return p
}

// SurfaceView returns the view of the frame being drawn.
func (w *Window) SurfaceView() gpucontext.TextureView {
	if w.fc == nil {
		return gpucontext.TextureView{}
	}
	return surfaceView(w.fc)
}

// Handle returns the zero handle: the host creates the surface itself.
func (w *Window) Handle() (gpucore.WindowHandle, error) {
	return gpucore.WindowHandle{}, nil
}

// PixelSize returns the drawable size in physical pixels as of the last
// frame, or the requested size scaled by ScaleFactor before any frame.
func (w *Window) PixelSize() (width, height int) {
	if size, _, ok := w.last(); ok {
		return int(size.Width), int(size.Height)
	}
	lw, lh := w.Size()
	return toPixels(lw, lh, w.ScaleFactor())
}

// Size returns the client area in logical points.
func (w *Window) Size() (width, height int) {
	if wp, ok := any(w.app).(gpucontext.WindowProvider); ok {
		return wp.Size()
	}
	return int(w.cfg.Width), int(w.cfg.Height)
}

// ScaleFactor returns the ratio of physical pixels to logical points.
func (w *Window) ScaleFactor() float64 {
	if wp, ok := any(w.app).(gpucontext.WindowProvider); ok {
		if s := wp.ScaleFactor(); s > 0 {
			return s
		}
	}
	return 1
}

// RequestRedraw does nothing: frames are rendered continuously.
func (w *Window) RequestRedraw() {}

func toPixels(width, height int, scale float64) (int, int) {
	return int(math.Round(float64(width) * scale)), int(math.Round(float64(height) * scale))
}
