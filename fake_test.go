package present

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/present/gpucore"
)

// fakeGPU records every backend call made through the gpucore interfaces.
type fakeGPU struct {
	calls []string

	formats    []gputypes.TextureFormat
	alphaModes []gputypes.CompositeAlphaMode
	info       gputypes.AdapterInfo

	createSurfaceErr error
	adapterErr       error
	deviceErr        error
	configureErr     error
	acquireErrs      []error
	viewErr          error
	encoderErr       error
	endErr           error
	finishErr        error
	submitErr        error
	presentErr       error
	suboptimal       bool

	selection  *gpucore.AdapterSelection
	deviceDesc *gpucore.DeviceDescriptor
	configs    []gpucore.SurfaceConfig
	passes     []gpucore.RenderPassDescriptor
}

func newFakeGPU() *fakeGPU {
	return &fakeGPU{
		formats:    []gputypes.TextureFormat{gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatRGBA8Unorm},
		alphaModes: []gputypes.CompositeAlphaMode{gputypes.CompositeAlphaModeOpaque},
		info: gputypes.AdapterInfo{
			Name:       "Fake GPU",
			Vendor:     "gogpu",
			DeviceType: gputypes.DeviceTypeDiscreteGPU,
			Backend:    gputypes.BackendVulkan,
		},
	}
}

func (g *fakeGPU) record(call string) { g.calls = append(g.calls, call) }

func (g *fakeGPU) count(call string) int {
	n := 0
	for _, c := range g.calls {
		if c == call {
			n++
		}
	}
	return n
}

// resetCalls forgets calls made so far, typically those of initialization.
func (g *fakeGPU) resetCalls() {
	g.calls = nil
	g.configs = nil
}

type fakeInstance struct{ g *fakeGPU }

func (i fakeInstance) CreateSurface(gpucore.WindowHandle) (gpucore.Surface, error) {
	i.g.record("create-surface")
	if i.g.createSurfaceErr != nil {
		return nil, i.g.createSurfaceErr
	}
	return fakeSurface{i.g}, nil
}

func (i fakeInstance) RequestAdapter(sel *gpucore.AdapterSelection) (gpucore.Adapter, error) {
	i.g.record("request-adapter")
	i.g.selection = sel
	if i.g.adapterErr != nil {
		return nil, i.g.adapterErr
	}
	return fakeAdapter{i.g}, nil
}

func (i fakeInstance) Release() { i.g.record("release-instance") }

type fakeAdapter struct{ g *fakeGPU }

func (a fakeAdapter) Info() gputypes.AdapterInfo { return a.g.info }
func (a fakeAdapter) Limits() gputypes.Limits    { return gputypes.DefaultLimits() }

func (a fakeAdapter) SurfaceCapabilities(gpucore.Surface) gpucore.SurfaceCapabilities {
	return gpucore.SurfaceCapabilities{
		Formats:      a.g.formats,
		PresentModes: []gputypes.PresentMode{gputypes.PresentModeFifo},
		AlphaModes:   a.g.alphaModes,
	}
}

func (a fakeAdapter) RequestDevice(desc *gpucore.DeviceDescriptor) (gpucore.Device, gpucore.Queue, error) {
	a.g.record("request-device")
	a.g.deviceDesc = desc
	if a.g.deviceErr != nil {
		return nil, nil, a.g.deviceErr
	}
	return fakeDevice{a.g}, fakeQueue{a.g}, nil
}

func (a fakeAdapter) Release() { a.g.record("release-adapter") }

type fakeDevice struct{ g *fakeGPU }

func (d fakeDevice) CreateCommandEncoder(string) (gpucore.CommandEncoder, error) {
	d.g.record("encoder")
	if d.g.encoderErr != nil {
		return nil, d.g.encoderErr
	}
	return fakeEncoder{d.g}, nil
}

func (d fakeDevice) Release() { d.g.record("release-device") }

type fakeQueue struct{ g *fakeGPU }

func (q fakeQueue) Submit(buffers ...gpucore.CommandBuffer) error {
	q.g.record("submit")
	if len(buffers) != 1 {
		q.g.record("submit-bad-count")
	}
	return q.g.submitErr
}

type fakeSurface struct{ g *fakeGPU }

func (s fakeSurface) Configure(_ gpucore.Device, config *gpucore.SurfaceConfig) error {
	s.g.record("configure")
	if s.g.configureErr != nil {
		return s.g.configureErr
	}
	s.g.configs = append(s.g.configs, *config)
	return nil
}

func (s fakeSurface) AcquireFrame() (gpucore.Frame, error) {
	s.g.record("acquire")
	if len(s.g.acquireErrs) > 0 {
		err := s.g.acquireErrs[0]
		s.g.acquireErrs = s.g.acquireErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	return fakeFrame{s.g}, nil
}

func (s fakeSurface) Present(gpucore.Frame) error {
	s.g.record("present")
	return s.g.presentErr
}

func (s fakeSurface) Discard()     { s.g.record("discard") }
func (s fakeSurface) Unconfigure() { s.g.record("unconfigure") }
func (s fakeSurface) Release()     { s.g.record("release-surface") }

type fakeFrame struct{ g *fakeGPU }

func (f fakeFrame) CreateView() (gpucore.TextureView, error) {
	f.g.record("view")
	if f.g.viewErr != nil {
		return nil, f.g.viewErr
	}
	return fakeView{f.g}, nil
}

func (f fakeFrame) Suboptimal() bool { return f.g.suboptimal }

type fakeView struct{ g *fakeGPU }

func (v fakeView) Release() { v.g.record("release-view") }

type fakeEncoder struct{ g *fakeGPU }

func (e fakeEncoder) BeginRenderPass(desc *gpucore.RenderPassDescriptor) (gpucore.RenderPass, error) {
	e.g.record("begin-pass")
	e.g.passes = append(e.g.passes, *desc)
	return fakePass{e.g}, nil
}

func (e fakeEncoder) Finish() (gpucore.CommandBuffer, error) {
	e.g.record("finish")
	if e.g.finishErr != nil {
		return nil, e.g.finishErr
	}
	return fakeBuffer{e.g}, nil
}

func (e fakeEncoder) Discard() { e.g.record("discard-encoder") }

type fakePass struct{ g *fakeGPU }

func (p fakePass) End() error {
	p.g.record("end-pass")
	return p.g.endErr
}

type fakeBuffer struct{ g *fakeGPU }

func (b fakeBuffer) Release() { b.g.record("release-buffer") }

// fakeWindow is a window of a fixed pixel size.
type fakeWindow struct {
	w, h      int
	handleErr error
}

func (w *fakeWindow) Handle() (gpucore.WindowHandle, error) {
	if w.handleErr != nil {
		return gpucore.WindowHandle{}, w.handleErr
	}
	return gpucore.WindowHandle{Display: 1, Window: 2}, nil
}

func (w *fakeWindow) PixelSize() (int, int) { return w.w, w.h }

// newTestState initializes a State on a fake GPU with a window of w×h pixels.
func newTestState(t *testing.T, w, h int, opts ...Option) (*State, *fakeGPU) {
	t.Helper()
	g := newFakeGPU()
	st, err := NewState(t.Context(), fakeInstance{g}, &fakeWindow{w: w, h: h}, opts...)
	if err != nil {
		t.Fatalf("NewState() error = %v", err)
	}
	return st, g
}
