//go:build !(js && wasm)

package wgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/present/gpucore"
	"github.com/gogpu/wgpu"
)

// ErrWrongBackend is returned when an object created by a different backend
// is passed to this one.
var ErrWrongBackend = errors.New("wgpu: object belongs to a different backend")

// errorMap pairs wgpu sentinels with their gpucore equivalents.
var errorMap = []struct {
	native error
	core   error
}{
	{wgpu.ErrSurfaceLost, gpucore.ErrSurfaceLost},
	{wgpu.ErrSurfaceOutdated, gpucore.ErrSurfaceOutdated},
	{wgpu.ErrOutOfMemory, gpucore.ErrOutOfMemory},
	{wgpu.ErrTimeout, gpucore.ErrTimeout},
	{wgpu.ErrDeviceLost, gpucore.ErrDeviceLost},
	{wgpu.ErrReleased, gpucore.ErrReleased},
	{wgpu.ErrNoAdapters, gpucore.ErrNoAdapter},
}

// mapError wraps err so that errors.Is matches the gpucore sentinel for it.
// The original error stays in the chain.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	for _, m := range errorMap {
		if errors.Is(err, m.native) {
			return fmt.Errorf("%w: %w", m.core, err)
		}
	}
	return err
}
