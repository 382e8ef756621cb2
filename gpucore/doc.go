// Package gpucore provides the backend-neutral GPU abstractions used by the
// present rendering core.
//
// This package defines the small set of interfaces the frame protocol needs
// (adapter selection, device and queue, presentation surface, command
// recording) so the same core can drive:
//   - gogpu/wgpu (Pure Go WebGPU via HAL), see backend/wgpu
//   - a [Host] such as a gogpu window, which owns the surface and device
//   - in-memory recording fakes in tests
//
// # Architecture
//
// The core owns the policy (surface configuration, resize rules, recovery
// from lost surfaces). Backends are thin adapters that translate these
// interfaces to a concrete GPU API and map its errors onto the sentinels in
// this package.
//
//	               +-----------------+
//	               |     present     |
//	               | (State, Frame)  |
//	               +--------+--------+
//	                        |
//	               +--------v--------+
//	               |     gpucore     |
//	               +--------+--------+
//	                        |
//	               +--------v--------+
//	               |  backend/wgpu   |
//	               +--------+--------+
//	                        |
//	               +--------v--------+
//	               |   gogpu/wgpu    |
//	               |   (Pure Go)     |
//	               +-----------------+
//
// # Resource Lifetime
//
// Every object returned by a Create/Request/Acquire method is owned by the
// caller. A [Frame] lives for exactly one render call and must be either
// presented or discarded. A [CommandBuffer] is consumed by [Queue.Submit].
//
// # Errors
//
// Backends wrap their native errors so that [errors.Is] matches
// [ErrSurfaceLost], [ErrOutOfMemory] and friends. Callers classify frame
// failures with these sentinels only.
package gpucore
