package gpucore

import "errors"

// Backend-neutral GPU errors. Backends wrap their native errors so that
// errors.Is matches one of these.
var (
	// ErrSurfaceLost is returned when the surface must be reconfigured
	// before another frame can be acquired.
	ErrSurfaceLost = errors.New("gpucore: surface lost")

	// ErrSurfaceOutdated is returned when the surface no longer matches the window.
	ErrSurfaceOutdated = errors.New("gpucore: surface outdated")

	// ErrTimeout is returned when acquiring a frame timed out.
	ErrTimeout = errors.New("gpucore: timeout")

	// ErrOutOfMemory is returned when the GPU ran out of memory.
	ErrOutOfMemory = errors.New("gpucore: out of memory")

	// ErrDeviceLost is returned when the device is no longer usable.
	ErrDeviceLost = errors.New("gpucore: device lost")

	// ErrNoAdapter is returned when no adapter matches the selection.
	ErrNoAdapter = errors.New("gpucore: no compatible adapter")

	// ErrUnsupportedWindow is returned when a window handle cannot be
	// turned into a surface on this platform.
	ErrUnsupportedWindow = errors.New("gpucore: unsupported window handle")

	// ErrReleased is returned when a released object is used.
	ErrReleased = errors.New("gpucore: object released")
)
