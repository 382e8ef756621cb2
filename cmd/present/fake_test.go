package main

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/present/gpucore"
	"github.com/gogpu/present/loop"
)

// fakeHost runs up to maxFrames frames, queueing script[i] before frame i.
type fakeHost struct {
	script    map[int][]loop.Event
	maxFrames int
	runErr    error

	queue  []loop.Event
	frames int
	closes int
}

func (h *fakeHost) GPUContextProvider() gpucontext.DeviceProvider { return nil }
func (h *fakeHost) SurfaceView() gpucontext.TextureView           { return gpucontext.TextureView{} }
func (h *fakeHost) PixelSize() (int, int)                         { return 800, 600 }
func (h *fakeHost) ScaleFactor() float64                          { return 1 }

func (h *fakeHost) Handle() (gpucore.WindowHandle, error) {
	return gpucore.WindowHandle{Display: 1, Window: 2}, nil
}

func (h *fakeHost) Poll() (loop.Event, bool) {
	if len(h.queue) == 0 {
		return loop.Event{}, false
	}
	ev := h.queue[0]
	h.queue = h.queue[1:]
	return ev, true
}

func (h *fakeHost) Run(frame func() bool, closed func()) error {
	if h.runErr != nil {
		return h.runErr
	}
	for h.frames < h.maxFrames {
		h.queue = append(h.queue, h.script[h.frames]...)
		h.frames++
		if !frame() {
			break
		}
	}
	h.closes++
	closed()
	return nil
}

// fakeGPU counts what the renderer did on the fake backend.
type fakeGPU struct {
	adapterErr error
	submits    int
	presents   int
	releases   int
}

type fakeInstance struct{ g *fakeGPU }

func (i fakeInstance) CreateSurface(gpucore.WindowHandle) (gpucore.Surface, error) {
	return fakeSurface(i), nil
}

func (i fakeInstance) RequestAdapter(*gpucore.AdapterSelection) (gpucore.Adapter, error) {
	if i.g.adapterErr != nil {
		return nil, i.g.adapterErr
	}
	return fakeAdapter(i), nil
}

func (i fakeInstance) Release() { i.g.releases++ }

type fakeAdapter struct{ g *fakeGPU }

func (fakeAdapter) Info() gputypes.AdapterInfo { return gputypes.AdapterInfo{Name: "Fake GPU"} }
func (fakeAdapter) Limits() gputypes.Limits    { return gputypes.DefaultLimits() }
func (fakeAdapter) Release()                   {}

func (fakeAdapter) SurfaceCapabilities(gpucore.Surface) gpucore.SurfaceCapabilities {
	return gpucore.SurfaceCapabilities{
		Formats:      []gputypes.TextureFormat{gputypes.TextureFormatBGRA8Unorm},
		PresentModes: []gputypes.PresentMode{gputypes.PresentModeFifo},
	}
}

func (a fakeAdapter) RequestDevice(*gpucore.DeviceDescriptor) (gpucore.Device, gpucore.Queue, error) {
	return fakeDevice(a), fakeQueue(a), nil
}

type fakeDevice struct{ g *fakeGPU }

func (d fakeDevice) CreateCommandEncoder(string) (gpucore.CommandEncoder, error) {
	return fakeEncoder{}, nil
}

func (fakeDevice) Release() {}

type fakeQueue struct{ g *fakeGPU }

func (q fakeQueue) Submit(...gpucore.CommandBuffer) error {
	q.g.submits++
	return nil
}

type fakeSurface struct{ g *fakeGPU }

func (fakeSurface) Configure(gpucore.Device, *gpucore.SurfaceConfig) error { return nil }
func (fakeSurface) AcquireFrame() (gpucore.Frame, error)                    { return fakeFrame{}, nil }
func (fakeSurface) Discard()                                                {}
func (fakeSurface) Unconfigure()                                            {}
func (fakeSurface) Release()                                                {}

func (s fakeSurface) Present(gpucore.Frame) error {
	s.g.presents++
	return nil
}

type fakeFrame struct{}

func (fakeFrame) CreateView() (gpucore.TextureView, error) { return fakeView{}, nil }
func (fakeFrame) Suboptimal() bool                         { return false }

type fakeView struct{}

func (fakeView) Release() {}

type fakeEncoder struct{}

func (fakeEncoder) BeginRenderPass(*gpucore.RenderPassDescriptor) (gpucore.RenderPass, error) {
	return fakePass{}, nil
}
func (fakeEncoder) Finish() (gpucore.CommandBuffer, error) { return fakeBuffer{}, nil }
func (fakeEncoder) Discard()                               {}

type fakePass struct{}

func (fakePass) End() error { return nil }

type fakeBuffer struct{}

func (fakeBuffer) Release() {}
