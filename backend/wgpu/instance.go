//go:build !(js && wasm)

package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/present/gpucore"
	"github.com/gogpu/wgpu"
)

// InstanceOptions configures instance creation.
type InstanceOptions struct {
	// Backends selects the graphics APIs to enumerate.
	// Zero means all available backends.
	Backends gputypes.Backends

	// Debug enables debug and validation layers where available.
	Debug bool
}

// Instance implements gpucore.Instance on top of gogpu/wgpu.
type Instance struct {
	inst *wgpu.Instance
}

var _ gpucore.Instance = (*Instance)(nil)

// NewInstance creates a wgpu instance.
func NewInstance(opts InstanceOptions) (*Instance, error) {
	desc := &wgpu.InstanceDescriptor{
		Backends: opts.Backends,
	}
	if desc.Backends == gputypes.BackendsNone {
		desc.Backends = wgpu.BackendsAll
	}
	if opts.Debug {
		desc.Flags = gputypes.InstanceFlagsDebug | gputypes.InstanceFlagsValidation
	}

	inst, err := wgpu.CreateInstance(desc)
	if err != nil {
		return nil, fmt.Errorf("wgpu: create instance: %w", err)
	}
	slogger().Debug("wgpu: instance created", "backends", desc.Backends, "debug", opts.Debug)
	return &Instance{inst: inst}, nil
}

// CreateSurface creates a presentation surface for a native window.
func (i *Instance) CreateSurface(handle gpucore.WindowHandle) (gpucore.Surface, error) {
	if handle.Window == 0 {
		return nil, fmt.Errorf("wgpu: create surface: %w", gpucore.ErrUnsupportedWindow)
	}
	s, err := i.inst.CreateSurface(handle.Display, handle.Window)
	if err != nil {
		return nil, fmt.Errorf("wgpu: create surface: %w", mapError(err))
	}
	return &Surface{surface: s}, nil
}

// RequestAdapter returns the default adapter matching sel.
func (i *Instance) RequestAdapter(sel *gpucore.AdapterSelection) (gpucore.Adapter, error) {
	var opts *wgpu.RequestAdapterOptions
	if sel != nil {
		opts = &wgpu.RequestAdapterOptions{
			PowerPreference:      sel.PowerPreference,
			ForceFallbackAdapter: sel.ForceFallbackAdapter,
		}
		if sel.CompatibleSurface != nil {
			s, ok := sel.CompatibleSurface.(*Surface)
			if !ok {
				return nil, fmt.Errorf("wgpu: compatible surface: %w", ErrWrongBackend)
			}
			opts.CompatibleSurface = s.surface
		}
	}

	a, err := i.inst.RequestAdapter(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", gpucore.ErrNoAdapter, err)
	}
	if a == nil {
		return nil, gpucore.ErrNoAdapter
	}
	logGPUInfo(a.Info())
	return &Adapter{adapter: a}, nil
}

// Release destroys the instance.
func (i *Instance) Release() {
	if i.inst != nil {
		i.inst.Release()
		i.inst = nil
	}
}
