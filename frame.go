// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package present

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/present/gpucore"
)

// Stats counts frame outcomes since the renderer was created.
type Stats struct {
	// Frames is the number of Render calls.
	Frames uint64

	// Submitted is the number of command buffers submitted.
	Submitted uint64

	// Presented is the number of frames presented.
	Presented uint64

	// Skipped is the number of frames abandoned for any reason.
	Skipped uint64

	// Lost is the number of frames abandoned because the surface was lost.
	Lost uint64

	// Suboptimal is the number of frames acquired from a suboptimal surface.
	Suboptimal uint64
}

// FrameRenderer records, submits and presents one clear pass per frame.
type FrameRenderer struct {
	device  *DeviceContext
	surface *PresentationSurface
	color   gputypes.Color
	stats   Stats
}

// NewFrameRenderer creates a renderer that clears every frame to the
// configured clear color.
func NewFrameRenderer(dc *DeviceContext, ps *PresentationSurface, opts ...Option) *FrameRenderer {
	o := applyOptions(opts)
	return &FrameRenderer{
		device:  dc,
		surface: ps,
		color:   o.clearColor,
	}
}

// ClearColor returns the color frames are cleared to.
func (fr *FrameRenderer) ClearColor() gputypes.Color { return fr.color }

// Stats returns the frame counters.
func (fr *FrameRenderer) Stats() Stats { return fr.stats }

// Render runs one acquire, record, submit, present sequence.
//
// On failure the frame is abandoned and a *RenderError is returned. An
// acquired frame is either presented or discarded; it is never kept for the
// next call. Recovery (reconfigure, exit) is the caller's decision.
func (fr *FrameRenderer) Render() error {
	fr.stats.Frames++
	if !fr.surface.Configured() {
		fr.stats.Skipped++
		return newRenderError("acquire", ErrNotConfigured)
	}
	surface := fr.surface.surface

	frame, err := surface.AcquireFrame()
	if err != nil {
		return fr.skip(newRenderError("acquire", err))
	}
	if frame.Suboptimal() {
		fr.stats.Suboptimal++
		Logger().Debug("present: suboptimal frame", "size", fr.surface.Size())
	}

	view, err := frame.CreateView()
	if err != nil {
		surface.Discard()
		return fr.skip(newRenderError("record", err))
	}
	defer view.Release()

	cb, rerr := fr.record(view)
	if rerr != nil {
		surface.Discard()
		return fr.skip(rerr)
	}

	if err := fr.device.queue.Submit(cb); err != nil {
		cb.Release()
		surface.Discard()
		return fr.skip(newRenderError("submit", err))
	}
	fr.stats.Submitted++

	if err := surface.Present(frame); err != nil {
		return fr.skip(newRenderError("present", err))
	}
	fr.stats.Presented++
	return nil
}

// record encodes the clear pass over view into a finished command buffer.
// The pass is ended before the encoder is finished.
func (fr *FrameRenderer) record(view gpucore.TextureView) (gpucore.CommandBuffer, *RenderError) {
	enc, err := fr.device.device.CreateCommandEncoder("present frame")
	if err != nil {
		return nil, newRenderError("record", err)
	}

	pass, err := enc.BeginRenderPass(&gpucore.RenderPassDescriptor{
		Label: "clear",
		ColorAttachments: []gpucore.ColorAttachment{{
			View:       view,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: fr.color,
		}},
	})
	if err != nil {
		enc.Discard()
		return nil, newRenderError("record", err)
	}
	if err := pass.End(); err != nil {
		enc.Discard()
		return nil, newRenderError("record", err)
	}

	cb, err := enc.Finish()
	if err != nil {
		enc.Discard()
		return nil, newRenderError("record", err)
	}
	return cb, nil
}

func (fr *FrameRenderer) skip(err *RenderError) error {
	fr.stats.Skipped++
	if err.Kind == KindLost {
		fr.stats.Lost++
	}
	return err
}
