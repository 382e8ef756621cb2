//go:build !(js && wasm)

package wgpu

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/present/gpucore"
	"github.com/gogpu/wgpu"
)

// HostedInstance implements gpucore.Instance over a gpucore.Host.
//
// The host owns the window surface, the device and the swapchain. A hosted
// instance hands out adapters, devices and surfaces that borrow from the
// host: configuring a hosted surface only records the configuration, and
// presenting is left to the host once its frame callback returns.
type HostedInstance struct {
	host gpucore.Host
}

var _ gpucore.Instance = (*HostedInstance)(nil)

// NewHostedInstance creates an instance that renders through host.
func NewHostedInstance(host gpucore.Host) *HostedInstance {
	slogger().Debug("wgpu: hosted instance created")
	return &HostedInstance{host: host}
}

// CreateSurface returns a surface drawing into the host's window.
// The handle is not used.
func (i *HostedInstance) CreateSurface(gpucore.WindowHandle) (gpucore.Surface, error) {
	return &HostedSurface{host: i.host}, nil
}

// RequestAdapter returns the host's adapter. The selection cannot change
// the host's choice and is ignored.
func (i *HostedInstance) RequestAdapter(*gpucore.AdapterSelection) (gpucore.Adapter, error) {
	p := i.host.GPUContextProvider()
	if p == nil {
		return nil, fmt.Errorf("%w: host GPU is not ready", gpucore.ErrNoAdapter)
	}
	a := &HostedAdapter{provider: p}
	a.adapter, _ = p.Adapter().(*wgpu.Adapter)
	logGPUInfo(a.Info())
	return a, nil
}

// Release does nothing; the host owns its GPU.
func (i *HostedInstance) Release() {}

// HostedAdapter implements gpucore.Adapter for a host's device.
type HostedAdapter struct {
	provider gpucontext.DeviceProvider

	// adapter is nil when the host does not expose a wgpu adapter.
	adapter *wgpu.Adapter
}

var _ gpucore.Adapter = (*HostedAdapter)(nil)

// Info returns the adapter metadata, reduced to name and type when the
// host does not expose its adapter.
func (a *HostedAdapter) Info() gputypes.AdapterInfo {
	if a.adapter != nil {
		return a.adapter.Info()
	}
	info := a.provider.AdapterInfo()
	return gputypes.AdapterInfo{
		Name:       info.Name,
		DeviceType: deviceType(info.Type),
	}
}

// Limits returns the adapter limits, or the WebGPU defaults when unknown.
func (a *HostedAdapter) Limits() gputypes.Limits {
	if a.adapter != nil {
		return a.adapter.Limits()
	}
	return gputypes.DefaultLimits()
}

// SurfaceCapabilities reports the host's surface format. The host presents
// with Fifo and an opaque alpha mode.
func (a *HostedAdapter) SurfaceCapabilities(surface gpucore.Surface) gpucore.SurfaceCapabilities {
	if _, ok := surface.(*HostedSurface); !ok {
		return gpucore.SurfaceCapabilities{}
	}
	format := a.provider.SurfaceFormat()
	if format == gputypes.TextureFormatUndefined {
		return gpucore.SurfaceCapabilities{}
	}
	return gpucore.SurfaceCapabilities{
		Formats:      []gputypes.TextureFormat{format},
		PresentModes: []gputypes.PresentMode{gputypes.PresentModeFifo},
		AlphaModes:   []gputypes.CompositeAlphaMode{gputypes.CompositeAlphaModeOpaque},
	}
}

// RequestDevice returns the host's device and queue. The host created them
// already, so desc is only checked against the adapter limits.
func (a *HostedAdapter) RequestDevice(desc *gpucore.DeviceDescriptor) (gpucore.Device, gpucore.Queue, error) {
	device, ok := a.provider.Device().(*wgpu.Device)
	if !ok || device == nil {
		return nil, nil, fmt.Errorf("wgpu: host device %T: %w", a.provider.Device(), ErrWrongBackend)
	}
	queue, ok := a.provider.Queue().(*wgpu.Queue)
	if !ok || queue == nil {
		return nil, nil, fmt.Errorf("wgpu: host queue %T: %w", a.provider.Queue(), ErrWrongBackend)
	}
	if desc != nil && desc.RequiredLimits.MaxTextureDimension2D > a.Limits().MaxTextureDimension2D {
		slogger().Warn("wgpu: host device has lower limits than requested",
			"maxTextureDimension2D", a.Limits().MaxTextureDimension2D,
			"requested", desc.RequiredLimits.MaxTextureDimension2D,
		)
	}
	return &Device{device: device, borrowed: true}, &Queue{queue: queue}, nil
}

// Release does nothing; the host owns its adapter.
func (a *HostedAdapter) Release() {}

// HostedSurface implements gpucore.Surface for a host's window.
type HostedSurface struct {
	host   gpucore.Host
	config gpucore.SurfaceConfig
}

var _ gpucore.Surface = (*HostedSurface)(nil)

// Configure records config. The host resizes its swapchain itself.
func (s *HostedSurface) Configure(device gpucore.Device, config *gpucore.SurfaceConfig) error {
	if _, ok := device.(*Device); !ok {
		return fmt.Errorf("wgpu: configure surface: %w", ErrWrongBackend)
	}
	s.config = *config
	return nil
}

// Config returns the last recorded configuration.
func (s *HostedSurface) Config() gpucore.SurfaceConfig { return s.config }

// AcquireFrame returns the frame the host is drawing. Outside a frame
// callback there is none and the surface reports itself outdated.
func (s *HostedSurface) AcquireFrame() (gpucore.Frame, error) {
	tv := s.host.SurfaceView()
	if tv.IsNil() {
		return nil, fmt.Errorf("wgpu: hosted acquire: no frame in progress: %w", gpucore.ErrSurfaceOutdated)
	}
	return &Frame{hostView: (*wgpu.TextureView)(tv.Pointer())}, nil
}

// Present checks that frame came from this surface. The host presents it
// after the frame callback returns.
func (s *HostedSurface) Present(frame gpucore.Frame) error {
	f, ok := frame.(*Frame)
	if !ok || f.hostView == nil {
		return fmt.Errorf("wgpu: present: %w", ErrWrongBackend)
	}
	return nil
}

// Discard does nothing; an unpresented host frame is still shown by the host.
func (s *HostedSurface) Discard() {}

// Unconfigure forgets the recorded configuration.
func (s *HostedSurface) Unconfigure() { s.config = gpucore.SurfaceConfig{} }

// Release does nothing; the host owns its surface.
func (s *HostedSurface) Release() {}

func deviceType(t gpucontext.AdapterType) gputypes.DeviceType {
	switch t {
	case gpucontext.AdapterTypeDiscrete:
		return gputypes.DeviceTypeDiscreteGPU
	case gpucontext.AdapterTypeIntegrated:
		return gputypes.DeviceTypeIntegratedGPU
	case gpucontext.AdapterTypeSoftware:
		return gputypes.DeviceTypeCPU
	default:
		return gputypes.DeviceTypeOther
	}
}
