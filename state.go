// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package present

import (
	"context"
	"fmt"

	"github.com/gogpu/present/gpucore"
	"github.com/gogpu/present/loop"
)

// State is the application state driven by the event loop.
//
// It owns the device context, the presentation surface and the frame
// renderer, and applies the per-frame recovery policy:
//   - a lost surface is reconfigured with the last known size
//   - out of memory sets the exit flag
//   - any other failure skips the frame
//
// State implements loop.Handler. It is not safe for concurrent use.
type State struct {
	device   *DeviceContext
	surface  *PresentationSurface
	renderer *FrameRenderer

	exit   bool
	closed bool
}

var _ loop.Handler = (*State)(nil)

// NewState creates the surface for window, acquires a compatible device,
// and configures the surface to the window's current pixel size.
//
// Any error is a fatal initialization error. Resources acquired before the
// failure are released. The instance stays owned by the caller.
func NewState(ctx context.Context, inst gpucore.Instance, window Window, opts ...Option) (*State, error) {
	handle, err := window.Handle()
	if err != nil {
		return nil, fmt.Errorf("present: window handle: %w", err)
	}
	surface, err := inst.CreateSurface(handle)
	if err != nil {
		return nil, fmt.Errorf("present: create surface: %w", err)
	}

	dc, err := NewDeviceContext(ctx, inst, surface, opts...)
	if err != nil {
		surface.Release()
		return nil, err
	}

	ps := NewPresentationSurface(surface, window)
	if _, err := ps.Configure(dc, gpucore.NewSize(window.PixelSize())); err != nil {
		ps.Release()
		dc.Release()
		return nil, err
	}

	return &State{
		device:   dc,
		surface:  ps,
		renderer: NewFrameRenderer(dc, ps, opts...),
	}, nil
}

// Input reports whether ev was consumed by render state. No render state
// reacts to input, so it always returns false.
func (s *State) Input(loop.Event) bool {
	return false
}

// Update advances per-frame state. It currently does nothing.
func (s *State) Update() {}

// Resize reconfigures the surface. Zero sizes are ignored.
func (s *State) Resize(size gpucore.Size) {
	if s.closed {
		return
	}
	if _, err := s.surface.Resize(size); err != nil {
		Logger().Warn("present: resize failed", "size", size, "err", err)
	}
}

// Render draws one frame and applies the recovery policy to failures.
// The returned error is informational; the loop keeps running unless
// ShouldExit reports true.
func (s *State) Render() error {
	if s.closed {
		return ErrClosed
	}

	err := s.renderer.Render()
	if err == nil {
		return nil
	}

	switch KindOf(err) {
	case KindLost:
		size := s.surface.Requested()
		Logger().Debug("present: surface lost, reconfiguring", "size", size)
		if _, rerr := s.surface.Resize(size); rerr != nil {
			Logger().Warn("present: reconfigure after lost surface failed", "err", rerr)
		}
	case KindOutOfMemory:
		Logger().Error("present: out of memory, exiting", "err", err)
		s.exit = true
	default:
		Logger().Warn("present: frame skipped", "err", err)
	}
	return err
}

// RequestExit asks the event loop to stop after the current event.
func (s *State) RequestExit() { s.exit = true }

// ShouldExit reports whether the event loop must stop.
func (s *State) ShouldExit() bool { return s.exit }

// Size returns the size the surface is configured with.
func (s *State) Size() gpucore.Size { return s.surface.Size() }

// Config returns the current surface configuration.
func (s *State) Config() gpucore.SurfaceConfig { return s.surface.Config() }

// Stats returns the frame counters.
func (s *State) Stats() Stats { return s.renderer.Stats() }

// DeviceContext returns the device context.
func (s *State) DeviceContext() *DeviceContext { return s.device }

// Close releases the surface and then the device. The window may be
// destroyed after Close returns. Safe to call twice.
func (s *State) Close() {
	if s.closed {
		return
	}
	s.closed = true
	st := s.renderer.Stats()
	Logger().Info("present: closing",
		"frames", st.Frames,
		"presented", st.Presented,
		"skipped", st.Skipped,
		"lost", st.Lost,
	)
	s.surface.Release()
	s.device.Release()
}
