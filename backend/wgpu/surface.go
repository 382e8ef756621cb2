//go:build !(js && wasm)

package wgpu

import (
	"fmt"

	"github.com/gogpu/present/gpucore"
	"github.com/gogpu/wgpu"
)

// Surface implements gpucore.Surface.
type Surface struct {
	surface *wgpu.Surface
}

var _ gpucore.Surface = (*Surface)(nil)

// Configure (re)configures the surface for device.
func (s *Surface) Configure(device gpucore.Device, config *gpucore.SurfaceConfig) error {
	d, ok := device.(*Device)
	if !ok {
		return fmt.Errorf("wgpu: configure surface: %w", ErrWrongBackend)
	}
	err := s.surface.Configure(d.device, &wgpu.SurfaceConfiguration{
		Width:       config.Width,
		Height:      config.Height,
		Format:      config.Format,
		Usage:       config.Usage,
		PresentMode: config.PresentMode,
		AlphaMode:   config.AlphaMode,
	})
	if err != nil {
		return fmt.Errorf("wgpu: configure surface: %w", mapError(err))
	}
	return nil
}

// AcquireFrame acquires the next presentable texture.
func (s *Surface) AcquireFrame() (gpucore.Frame, error) {
	tex, suboptimal, err := s.surface.GetCurrentTexture()
	if err != nil {
		return nil, mapError(err)
	}
	return &Frame{texture: tex, suboptimal: suboptimal}, nil
}

// Present presents an acquired frame.
func (s *Surface) Present(frame gpucore.Frame) error {
	f, ok := frame.(*Frame)
	if !ok {
		return fmt.Errorf("wgpu: present: %w", ErrWrongBackend)
	}
	if err := s.surface.Present(f.texture); err != nil {
		return fmt.Errorf("wgpu: present: %w", mapError(err))
	}
	f.texture = nil
	return nil
}

// Discard drops the currently acquired texture without presenting it.
func (s *Surface) Discard() {
	s.surface.DiscardTexture()
}

// Unconfigure removes the surface configuration.
func (s *Surface) Unconfigure() {
	s.surface.Unconfigure()
}

// Release destroys the surface.
func (s *Surface) Release() {
	s.surface.Release()
}

// Frame implements gpucore.Frame.
type Frame struct {
	texture    *wgpu.SurfaceTexture
	suboptimal bool

	// hostView is set for frames drawn into a host's surface.
	hostView *wgpu.TextureView
}

// CreateView creates the default render target view of the frame.
func (f *Frame) CreateView() (gpucore.TextureView, error) {
	if f.hostView != nil {
		return &TextureView{view: f.hostView, borrowed: true}, nil
	}
	if f.texture == nil {
		return nil, gpucore.ErrReleased
	}
	v, err := f.texture.CreateView(nil)
	if err != nil {
		return nil, fmt.Errorf("wgpu: create view: %w", mapError(err))
	}
	return &TextureView{view: v}, nil
}

// Suboptimal reports whether the surface asked to be reconfigured.
func (f *Frame) Suboptimal() bool { return f.suboptimal }

// TextureView implements gpucore.TextureView.
type TextureView struct {
	view     *wgpu.TextureView
	borrowed bool
}

// Release releases the view unless it belongs to a host.
func (v *TextureView) Release() {
	if v.borrowed {
		return
	}
	v.view.Release()
}
