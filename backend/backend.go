package backend

import (
	"errors"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/present/gpucore"
)

// Backend names.
const (
	// BackendWGPU is the gogpu/wgpu backend (Vulkan, Metal, DX12, GLES).
	BackendWGPU = "wgpu"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")
)

// Options configures instance creation.
type Options struct {
	// Backends restricts the native graphics APIs. Zero means all.
	Backends gputypes.Backends

	// Debug enables debug and validation layers.
	Debug bool

	// Host, when set, supplies the device and surface. Backends that
	// support hosting render through it and ignore Backends and Debug.
	Host gpucore.Host
}

// Factory creates a GPU instance for a backend.
//
// Backends must be registered via Register() and are selected via
// Open() or OpenDefault().
type Factory func(opts Options) (gpucore.Instance, error)
