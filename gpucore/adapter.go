package gpucore

import "github.com/gogpu/gputypes"

// WindowHandle carries the raw platform handles a surface is created from.
//
// Handle meaning is platform-specific:
//   - Windows: Display=0, Window=HWND
//   - macOS: Display=0, Window=NSView*
//   - Linux/X11: Display=Display*, Window=Window
//   - Linux/Wayland: Display=wl_display*, Window=wl_surface*
type WindowHandle struct {
	Display uintptr
	Window  uintptr
}

// Instance is the entry point of a GPU backend.
type Instance interface {
	// CreateSurface creates a presentation surface for a native window.
	// The window must outlive the surface.
	CreateSurface(handle WindowHandle) (Surface, error)

	// RequestAdapter returns the default adapter matching sel.
	// Returns an error wrapping ErrNoAdapter if none matches.
	RequestAdapter(sel *AdapterSelection) (Adapter, error)

	// Release destroys the instance.
	Release()
}

// SurfaceCapabilities lists what an adapter supports for a given surface.
// Formats are ordered by backend preference.
type SurfaceCapabilities struct {
	Formats      []gputypes.TextureFormat
	PresentModes []gputypes.PresentMode
	AlphaModes   []gputypes.CompositeAlphaMode
}

// Adapter represents one physical device/driver combination.
type Adapter interface {
	// Info returns adapter metadata.
	Info() gputypes.AdapterInfo

	// Limits returns the best limits the adapter supports.
	Limits() gputypes.Limits

	// SurfaceCapabilities returns the capabilities of surface on this adapter.
	SurfaceCapabilities(surface Surface) SurfaceCapabilities

	// RequestDevice opens a logical device. The returned device and queue
	// always belong together.
	RequestDevice(desc *DeviceDescriptor) (Device, Queue, error)

	// Release releases the adapter.
	Release()
}

// Device is a logical GPU device.
type Device interface {
	// CreateCommandEncoder starts a new command batch.
	CreateCommandEncoder(label string) (CommandEncoder, error)

	// Release destroys the device.
	Release()
}

// Queue is the command-submission channel of a Device.
// Submissions execute in call order.
type Queue interface {
	// Submit submits finished command buffers. The buffers are consumed on
	// success; on error the caller still owns them and must release them.
	Submit(buffers ...CommandBuffer) error
}

// CommandEncoder records commands into a batch.
type CommandEncoder interface {
	// BeginRenderPass starts a render pass. The pass must be ended before
	// Finish is called.
	BeginRenderPass(desc *RenderPassDescriptor) (RenderPass, error)

	// Finish completes recording and returns the command buffer.
	Finish() (CommandBuffer, error)

	// Discard abandons recording. Safe to call after a failed Finish.
	Discard()
}

// RenderPass is an open render pass.
type RenderPass interface {
	End() error
}

// CommandBuffer is a finished command batch.
type CommandBuffer interface {
	// Release frees a buffer that was never submitted.
	Release()
}

// Surface is a platform drawable bound to a window.
type Surface interface {
	// Configure (re)configures the surface. Width and Height must be non-zero.
	Configure(device Device, config *SurfaceConfig) error

	// AcquireFrame returns the next presentable frame.
	AcquireFrame() (Frame, error)

	// Present shows an acquired frame. The frame must not be used afterwards.
	Present(frame Frame) error

	// Discard returns an acquired but unpresented frame to the surface.
	Discard()

	// Unconfigure drops the current configuration.
	Unconfigure()

	// Release destroys the surface.
	Release()
}

// Frame is a presentable texture acquired for one render call.
type Frame interface {
	// CreateView creates the default view used as a render target.
	CreateView() (TextureView, error)

	// Suboptimal reports whether the surface should be reconfigured soon.
	Suboptimal() bool
}

// TextureView is a view into a texture.
type TextureView interface {
	Release()
}
