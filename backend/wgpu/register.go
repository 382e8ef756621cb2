//go:build !(js && wasm)

package wgpu

import (
	"github.com/gogpu/present/backend"
	"github.com/gogpu/present/gpucore"
)

func init() {
	backend.Register(backend.BackendWGPU, func(opts backend.Options) (gpucore.Instance, error) {
		if opts.Host != nil {
			return NewHostedInstance(opts.Host), nil
		}
		return NewInstance(InstanceOptions{
			Backends: opts.Backends,
			Debug:    opts.Debug,
		})
	})
}
