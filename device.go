// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package present

import (
	"context"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/present/gpucore"
)

// DeviceContext owns the adapter, device and queue used for all rendering.
//
// The device and queue always come from the same RequestDevice call, so they
// are a matched pair. The queue is the only submission channel.
//
// DeviceContext implements gpucontext.DeviceProvider.
type DeviceContext struct {
	adapter gpucore.Adapter
	device  gpucore.Device
	queue   gpucore.Queue

	info   gputypes.AdapterInfo
	limits gputypes.Limits
	format gputypes.TextureFormat

	released bool
}

var _ gpucontext.DeviceProvider = (*DeviceContext)(nil)

// NewDeviceContext selects the default adapter compatible with surface and
// opens a device on it with no optional features.
//
// The call blocks until the hardware handshake completes. ctx is checked
// before each request; a cancelled ctx aborts initialization and releases
// anything already acquired. Failure is not retried.
func NewDeviceContext(ctx context.Context, inst gpucore.Instance, surface gpucore.Surface, opts ...Option) (*DeviceContext, error) {
	o := applyOptions(opts)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	adapter, err := inst.RequestAdapter(&gpucore.AdapterSelection{
		PowerPreference:      o.powerPreference,
		CompatibleSurface:    surface,
		ForceFallbackAdapter: o.forceFallback,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoAdapter, err)
	}
	if adapter == nil {
		return nil, ErrNoAdapter
	}

	info := adapter.Info()
	Logger().Info("present: adapter selected",
		"name", info.Name,
		"vendor", info.Vendor,
		"type", info.DeviceType,
		"backend", info.Backend,
		"driver", info.Driver,
	)

	if err := ctx.Err(); err != nil {
		adapter.Release()
		return nil, err
	}

	limits := requiredLimits()
	if o.limits != nil {
		limits = *o.limits
	}
	device, queue, err := adapter.RequestDevice(&gpucore.DeviceDescriptor{
		Label:          o.label,
		RequiredLimits: limits,
	})
	if err != nil {
		adapter.Release()
		return nil, fmt.Errorf("%w: %w", ErrNoDevice, err)
	}

	if err := ctx.Err(); err != nil {
		device.Release()
		adapter.Release()
		return nil, err
	}

	Logger().Debug("present: device created",
		"label", o.label,
		"maxTextureDimension2D", limits.MaxTextureDimension2D,
		"restricted", restrictedRuntime,
	)

	return &DeviceContext{
		adapter: adapter,
		device:  device,
		queue:   queue,
		info:    info,
		limits:  limits,
	}, nil
}

// Device returns the GPU device.
func (dc *DeviceContext) Device() gpucontext.Device { return dc.device }

// Queue returns the command queue.
func (dc *DeviceContext) Queue() gpucontext.Queue { return dc.queue }

// Adapter returns the adapter the device was opened on.
func (dc *DeviceContext) Adapter() gpucontext.Adapter { return dc.adapter }

// SurfaceFormat returns the format of the configured surface, or
// gputypes.TextureFormatUndefined before the surface is configured.
func (dc *DeviceContext) SurfaceFormat() gputypes.TextureFormat { return dc.format }

// AdapterInfo returns the adapter name and type.
func (dc *DeviceContext) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{
		Name: dc.info.Name,
		Type: adapterType(dc.info.DeviceType),
	}
}

// Info returns the full adapter info.
func (dc *DeviceContext) Info() gputypes.AdapterInfo { return dc.info }

// Limits returns the limits the device was created with.
func (dc *DeviceContext) Limits() gputypes.Limits { return dc.limits }

// Release releases the device and then the adapter. Safe to call twice.
func (dc *DeviceContext) Release() {
	if dc.released {
		return
	}
	dc.released = true
	dc.device.Release()
	dc.adapter.Release()
}

func adapterType(t gputypes.DeviceType) gpucontext.AdapterType {
	switch t {
	case gputypes.DeviceTypeDiscreteGPU:
		return gpucontext.AdapterTypeDiscrete
	case gputypes.DeviceTypeIntegratedGPU:
		return gpucontext.AdapterTypeIntegrated
	case gputypes.DeviceTypeCPU:
		return gpucontext.AdapterTypeSoftware
	default:
		return gpucontext.AdapterTypeUnknown
	}
}
