// Package wgpu implements the gpucore interfaces on top of gogpu/wgpu.
//
// gogpu/wgpu is a Pure Go WebGPU implementation, which supports Vulkan,
// Metal, DX12 and GLES backends depending on the platform. This package is
// a thin adapter: it converts gpucore descriptors to wgpu descriptors and
// maps wgpu sentinel errors to their gpucore equivalents, so the frame
// protocol can classify lost surfaces and out-of-memory conditions with
// errors.Is.
//
// # Registration
//
// The backend is registered under backend.BackendWGPU when this package is
// imported:
//
//	import _ "github.com/gogpu/present/backend/wgpu"
//
// HAL drivers are registered separately. Applications import
// github.com/gogpu/wgpu/hal/allbackends; tests import
// github.com/gogpu/wgpu/hal/noop.
//
// # Thread Safety
//
// Objects returned by this package follow wgpu's rules: the instance is safe
// for concurrent use, everything else must be used from one goroutine.
package wgpu
