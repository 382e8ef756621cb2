//go:build !(js && wasm)

package wgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/present/gpucore"
	"github.com/gogpu/wgpu"
)

// GPUInfo contains information about the selected GPU.
type GPUInfo struct {
	// Name is the GPU name (e.g., "NVIDIA GeForce RTX 3080").
	Name string
	// Vendor is the GPU vendor.
	Vendor string
	// DeviceType is the type of GPU (discrete, integrated, etc.).
	DeviceType gputypes.DeviceType
	// Backend is the graphics API in use (Vulkan, Metal, DX12).
	Backend gputypes.Backend
	// Driver is the driver version string.
	Driver string
}

// NewGPUInfo extracts the fields worth reporting from adapter info.
func NewGPUInfo(info gputypes.AdapterInfo) *GPUInfo {
	return &GPUInfo{
		Name:       info.Name,
		Vendor:     info.Vendor,
		DeviceType: info.DeviceType,
		Backend:    info.Backend,
		Driver:     info.Driver,
	}
}

// String returns a human-readable description of the GPU.
func (g *GPUInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", g.Name, g.DeviceType, g.Backend)
}

// logGPUInfo logs information about the selected GPU.
func logGPUInfo(info gputypes.AdapterInfo) {
	g := NewGPUInfo(info)
	slogger().Info("wgpu: GPU selected", "gpu", g.String(), "vendor", g.Vendor)
	if g.Driver != "" {
		slogger().Debug("wgpu: driver", "driver", g.Driver)
	}
}

// Adapter implements gpucore.Adapter.
type Adapter struct {
	adapter *wgpu.Adapter
}

var _ gpucore.Adapter = (*Adapter)(nil)

// Info returns adapter metadata.
func (a *Adapter) Info() gputypes.AdapterInfo { return a.adapter.Info() }

// Limits returns the best limits the adapter supports.
func (a *Adapter) Limits() gputypes.Limits { return a.adapter.Limits() }

// SurfaceCapabilities returns what the adapter supports for surface.
// An unknown surface yields empty capabilities.
func (a *Adapter) SurfaceCapabilities(surface gpucore.Surface) gpucore.SurfaceCapabilities {
	s, ok := surface.(*Surface)
	if !ok {
		return gpucore.SurfaceCapabilities{}
	}
	caps := a.adapter.GetSurfaceCapabilities(s.surface)
	if caps == nil {
		return gpucore.SurfaceCapabilities{}
	}
	return gpucore.SurfaceCapabilities{
		Formats:      caps.Formats,
		PresentModes: caps.PresentModes,
		AlphaModes:   caps.AlphaModes,
	}
}

// RequestDevice creates a logical device and returns it with its queue.
func (a *Adapter) RequestDevice(desc *gpucore.DeviceDescriptor) (gpucore.Device, gpucore.Queue, error) {
	var wdesc *wgpu.DeviceDescriptor
	if desc != nil {
		wdesc = &wgpu.DeviceDescriptor{
			Label:            desc.Label,
			RequiredFeatures: desc.RequiredFeatures,
			RequiredLimits:   desc.RequiredLimits,
		}
	}

	device, err := a.adapter.RequestDevice(wdesc)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create device: %w", mapError(err))
	}
	queue := device.Queue()
	if queue == nil {
		device.Release()
		return nil, nil, errors.New("wgpu: device has no queue")
	}
	return &Device{device: device}, &Queue{queue: queue}, nil
}

// Release releases the adapter.
func (a *Adapter) Release() {
	a.adapter.Release()
}

// Device implements gpucore.Device.
type Device struct {
	device *wgpu.Device

	// borrowed devices belong to a host and are never released here.
	borrowed bool
}

var _ gpucore.Device = (*Device)(nil)

// Native returns the underlying wgpu device.
func (d *Device) Native() *wgpu.Device { return d.device }

// CreateCommandEncoder starts a new command batch.
func (d *Device) CreateCommandEncoder(label string) (gpucore.CommandEncoder, error) {
	enc, err := d.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: label})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create command encoder: %w", mapError(err))
	}
	return &CommandEncoder{encoder: enc}, nil
}

// Release destroys the device. A device borrowed from a host is left alone.
func (d *Device) Release() {
	if d.borrowed {
		return
	}
	d.device.Release()
}

// Queue implements gpucore.Queue.
type Queue struct {
	queue *wgpu.Queue
}

var _ gpucore.Queue = (*Queue)(nil)

// Native returns the underlying wgpu queue.
func (q *Queue) Native() *wgpu.Queue { return q.queue }

// Submit submits finished command buffers in order.
func (q *Queue) Submit(buffers ...gpucore.CommandBuffer) error {
	native := make([]*wgpu.CommandBuffer, 0, len(buffers))
	for _, b := range buffers {
		cb, ok := b.(*CommandBuffer)
		if !ok {
			return fmt.Errorf("wgpu: submit: %w", ErrWrongBackend)
		}
		native = append(native, cb.buffer)
	}
	if _, err := q.queue.Submit(native...); err != nil {
		return fmt.Errorf("wgpu: submit: %w", mapError(err))
	}
	return nil
}
