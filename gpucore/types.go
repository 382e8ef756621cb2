package gpucore

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Size is a surface size in physical pixels.
type Size struct {
	Width  uint32
	Height uint32
}

// NewSize converts signed window dimensions to a Size.
// Negative dimensions are clamped to zero.
func NewSize(width, height int) Size {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Size{Width: uint32(width), Height: uint32(height)}
}

// IsZero reports whether either dimension is zero.
// A zero size must never reach the backend.
func (s Size) IsZero() bool {
	return s.Width == 0 || s.Height == 0
}

// String returns the size as "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// SurfaceConfig describes how a presentation surface is configured.
// This mirrors the WebGPU GPUCanvasConfiguration.
type SurfaceConfig struct {
	// Format is the pixel format of the presentable textures.
	Format gputypes.TextureFormat

	// Width is the surface width in pixels. Always > 0 once configured.
	Width uint32

	// Height is the surface height in pixels. Always > 0 once configured.
	Height uint32

	// Usage specifies how the presentable textures will be used.
	Usage gputypes.TextureUsage

	// PresentMode controls vsync behavior.
	PresentMode gputypes.PresentMode

	// AlphaMode controls compositing with the window system.
	AlphaMode gputypes.CompositeAlphaMode
}

// Size returns the configured dimensions.
func (c SurfaceConfig) Size() Size {
	return Size{Width: c.Width, Height: c.Height}
}

// AdapterSelection describes the adapter the caller wants.
// It is consumed once by [Instance.RequestAdapter] and not retained.
type AdapterSelection struct {
	// PowerPreference selects between integrated and discrete GPUs.
	PowerPreference gputypes.PowerPreference

	// CompatibleSurface, if non-nil, requires an adapter able to present to it.
	CompatibleSurface Surface

	// ForceFallbackAdapter forces a software adapter.
	ForceFallbackAdapter bool
}

// DeviceDescriptor describes a device request.
type DeviceDescriptor struct {
	// Label is an optional debug label.
	Label string

	// RequiredFeatures is the set of features the device must support.
	// Zero requests no optional features.
	RequiredFeatures gputypes.Features

	// RequiredLimits are the limits the device must support.
	RequiredLimits gputypes.Limits
}

// ColorAttachment describes the single color target of a render pass.
type ColorAttachment struct {
	View       TextureView
	LoadOp     gputypes.LoadOp
	StoreOp    gputypes.StoreOp
	ClearValue gputypes.Color
}

// RenderPassDescriptor describes a render pass.
// Depth/stencil attachments are not supported.
type RenderPassDescriptor struct {
	Label            string
	ColorAttachments []ColorAttachment
}
