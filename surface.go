// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package present

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/present/gpucore"
)

// Window is the platform window a surface presents to.
type Window interface {
	// Handle returns the raw handles used to create the surface.
	Handle() (gpucore.WindowHandle, error)

	// PixelSize returns the drawable size in physical pixels.
	PixelSize() (width, height int)
}

// PresentationSurface owns a backend surface and its configuration.
//
// The surface borrows its window for its entire lifetime: the window must
// stay open until Release has been called. The configuration is mutated only
// by Configure and Resize, from the goroutine running the event loop.
type PresentationSurface struct {
	surface gpucore.Surface
	window  Window
	device  *DeviceContext

	config     gpucore.SurfaceConfig
	size       gpucore.Size
	requested  gpucore.Size
	configured bool
}

// NewPresentationSurface binds surface to the window it was created from.
func NewPresentationSurface(surface gpucore.Surface, window Window) *PresentationSurface {
	return &PresentationSurface{
		surface: surface,
		window:  window,
	}
}

// Configure performs the initial configuration.
//
// The format is the first one the adapter reports for this surface, usage is
// render target and the present mode is Fifo, which every platform supports.
// Configure must succeed once before any frame is rendered.
func (ps *PresentationSurface) Configure(dc *DeviceContext, size gpucore.Size) (gpucore.SurfaceConfig, error) {
	if size.IsZero() {
		return gpucore.SurfaceConfig{}, fmt.Errorf("%w: %v", ErrZeroSize, size)
	}

	caps := dc.adapter.SurfaceCapabilities(ps.surface)
	if len(caps.Formats) == 0 {
		return gpucore.SurfaceConfig{}, ErrNoSurfaceFormat
	}
	alpha := gputypes.CompositeAlphaModeAuto
	if len(caps.AlphaModes) > 0 {
		alpha = caps.AlphaModes[0]
	}

	config := gpucore.SurfaceConfig{
		Format:      caps.Formats[0],
		Width:       size.Width,
		Height:      size.Height,
		Usage:       gputypes.TextureUsageRenderAttachment,
		PresentMode: gputypes.PresentModeFifo,
		AlphaMode:   alpha,
	}
	if err := ps.surface.Configure(dc.device, &config); err != nil {
		return gpucore.SurfaceConfig{}, fmt.Errorf("present: configure surface: %w", err)
	}

	ps.device = dc
	ps.config = config
	ps.size = size
	ps.requested = size
	ps.configured = true
	dc.format = config.Format

	Logger().Info("present: surface configured",
		"format", config.Format,
		"size", size,
		"presentMode", config.PresentMode,
		"formats", len(caps.Formats),
	)
	return config, nil
}

// Resize reconfigures the surface for a new size.
//
// A size with a zero dimension is ignored (the window is minimized or in a
// transient state) and the current configuration is left untouched. Resize
// also does nothing before Configure. It reports whether the configuration
// was changed. The backend is reconfigured before Resize returns; if that
// fails, Size and Config keep the last accepted values.
func (ps *PresentationSurface) Resize(size gpucore.Size) (bool, error) {
	if size.IsZero() || !ps.configured {
		return false, nil
	}

	ps.requested = size
	config := ps.config
	config.Width = size.Width
	config.Height = size.Height
	if err := ps.surface.Configure(ps.device.device, &config); err != nil {
		return false, fmt.Errorf("present: reconfigure surface to %v: %w", size, err)
	}
	ps.config = config
	ps.size = size
	Logger().Debug("present: surface resized", "size", size)
	return true, nil
}

// Size returns the size of the current configuration.
func (ps *PresentationSurface) Size() gpucore.Size { return ps.size }

// Requested returns the last non-zero size asked for, which differs from
// Size only after a failed reconfigure.
func (ps *PresentationSurface) Requested() gpucore.Size { return ps.requested }

// Config returns the current configuration.
func (ps *PresentationSurface) Config() gpucore.SurfaceConfig { return ps.config }

// Configured reports whether Configure has succeeded.
func (ps *PresentationSurface) Configured() bool { return ps.configured }

// Window returns the window the surface presents to.
func (ps *PresentationSurface) Window() Window { return ps.window }

// Release unconfigures and destroys the backend surface.
// The window may be closed afterwards.
func (ps *PresentationSurface) Release() {
	if ps.surface == nil {
		return
	}
	if ps.configured {
		ps.surface.Unconfigure()
		ps.configured = false
	}
	ps.surface.Release()
	ps.surface = nil
}
