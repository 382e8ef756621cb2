// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package present

import (
	"errors"
	"fmt"

	"github.com/gogpu/present/gpucore"
)

// Initialization errors. These are fatal: the caller reports them and
// exits, there is no fallback adapter chain.
var (
	// ErrNoAdapter is returned when no adapter compatible with the surface exists.
	ErrNoAdapter = errors.New("present: no compatible adapter")

	// ErrNoDevice is returned when the adapter refused to open a device.
	ErrNoDevice = errors.New("present: device request failed")

	// ErrNoSurfaceFormat is returned when the adapter reports no format for the surface.
	ErrNoSurfaceFormat = errors.New("present: surface has no supported format")

	// ErrZeroSize is returned when a surface is configured with a zero dimension.
	ErrZeroSize = errors.New("present: zero surface size")

	// ErrNotConfigured is returned when rendering before Configure.
	ErrNotConfigured = errors.New("present: surface not configured")

	// ErrClosed is returned when using a closed State.
	ErrClosed = errors.New("present: state closed")
)

// ErrorKind classifies a per-frame failure.
type ErrorKind int

const (
	// KindOther is a transient failure; the frame is skipped.
	KindOther ErrorKind = iota

	// KindLost means the surface must be reconfigured before the next frame.
	KindLost

	// KindOutOfMemory is fatal; the application must exit.
	KindOutOfMemory
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindLost:
		return "Lost"
	case KindOutOfMemory:
		return "OutOfMemory"
	default:
		return "Other"
	}
}

// RenderError is the error returned by a failed render call.
type RenderError struct {
	// Kind classifies the failure.
	Kind ErrorKind

	// Op is the frame stage that failed (acquire, record, submit, present).
	Op string

	// Err is the underlying backend error.
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("present: %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// newRenderError classifies err by the gpucore sentinel it wraps.
func newRenderError(op string, err error) *RenderError {
	kind := KindOther
	switch {
	case errors.Is(err, gpucore.ErrSurfaceLost):
		kind = KindLost
	case errors.Is(err, gpucore.ErrOutOfMemory):
		kind = KindOutOfMemory
	}
	return &RenderError{Kind: kind, Op: op, Err: err}
}

// KindOf returns the ErrorKind of err, KindOther if err is not a *RenderError.
func KindOf(err error) ErrorKind {
	var re *RenderError
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindOther
}
