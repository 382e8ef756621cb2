// Package present renders a solid clear color to a window through a
// WebGPU device.
//
// # Overview
//
// present implements the rendering-surface lifecycle of a windowed GPU
// application: acquiring an adapter, device and queue compatible with a
// window surface, configuring the surface and reconfiguring it as the window
// resizes, and a per-frame protocol that acquires a presentable texture,
// records a clear pass, submits it and presents it.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/present"
//	    "github.com/gogpu/present/backend"
//	    "github.com/gogpu/present/loop"
//	    _ "github.com/gogpu/present/backend/wgpu"
//	    _ "github.com/gogpu/wgpu/hal/allbackends"
//	)
//
//	inst, err := backend.OpenDefault(backend.Options{})
//	st, err := present.NewState(ctx, inst, win)
//	defer st.Close()
//
//	loop.NewDispatcher(events, st).Run(ctx)
//
// # Components
//
//   - [DeviceContext]: adapter, device and queue; created once
//   - [PresentationSurface]: surface configuration and resize
//   - [FrameRenderer]: acquire, record, submit, present
//   - [State]: the aggregate driven by the event loop
//
// # Frame Failures
//
// Render returns a [*RenderError] whose [ErrorKind] selects the recovery:
//
//   - [KindLost]: the surface is reconfigured with the last known size and
//     the frame is skipped
//   - [KindOutOfMemory]: the exit flag is set
//   - [KindOther]: the frame is skipped and logged
//
// # Logging
//
// present is silent by default. Use [SetLogger] to enable structured
// logging via log/slog.
package present
