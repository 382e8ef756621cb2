// Package backend provides a registry of GPU backends.
//
// A backend is a factory for a [gpucore.Instance]. Backends register
// themselves from init() functions and are selected at runtime by name:
//
//	import _ "github.com/gogpu/present/backend/wgpu"
//
//	inst, err := backend.Open(backend.BackendWGPU, backend.Options{})
//
// Use OpenDefault() to get the highest-priority registered backend.
package backend
