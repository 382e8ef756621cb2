package gpucore

import "github.com/gogpu/gpucontext"

// Host is a window system that owns its presentation surface and the device
// rendering to it, such as a gogpu application.
//
// The host configures its surface and presents it after each frame
// callback. A backend built on a Host borrows the device and the texture
// view of the frame being drawn and never releases either.
type Host interface {
	// GPUContextProvider returns the host's device, or nil until the
	// host's GPU is ready.
	GPUContextProvider() gpucontext.DeviceProvider

	// SurfaceView returns the view of the frame being drawn. It is the
	// zero TextureView outside a frame callback.
	SurfaceView() gpucontext.TextureView
}
