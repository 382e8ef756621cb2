package present

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/present/gpucore"
)

func TestRenderCallOrder(t *testing.T) {
	st, g := newTestState(t, 800, 600)
	defer st.Close()
	g.resetCalls()

	if err := st.Render(); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := []string{
		"acquire", "view", "encoder", "begin-pass", "end-pass", "finish",
		"submit", "present", "release-view",
	}
	if len(g.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", g.calls, want)
	}
	for i := range want {
		if g.calls[i] != want[i] {
			t.Errorf("calls[%d] = %q, want %q", i, g.calls[i], want[i])
		}
	}
}

func TestRenderClearPass(t *testing.T) {
	color := gputypes.Color{R: 1, G: 0.5, B: 0.25, A: 1}
	st, g := newTestState(t, 800, 600, WithClearColor(color))
	defer st.Close()

	if err := st.Render(); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(g.passes) != 1 {
		t.Fatalf("passes = %d, want 1", len(g.passes))
	}
	atts := g.passes[0].ColorAttachments
	if len(atts) != 1 {
		t.Fatalf("color attachments = %d, want 1", len(atts))
	}
	att := atts[0]
	if att.LoadOp != gputypes.LoadOpClear {
		t.Errorf("LoadOp = %v, want Clear", att.LoadOp)
	}
	if att.StoreOp != gputypes.StoreOpStore {
		t.Errorf("StoreOp = %v, want Store", att.StoreOp)
	}
	if att.ClearValue != color {
		t.Errorf("ClearValue = %+v, want %+v", att.ClearValue, color)
	}
	if att.View == nil {
		t.Error("attachment has no view")
	}
	if st.renderer.ClearColor() != color {
		t.Errorf("ClearColor() = %+v, want %+v", st.renderer.ClearColor(), color)
	}
}

func TestRenderDefaultClearColor(t *testing.T) {
	st, g := newTestState(t, 800, 600)
	defer st.Close()

	if err := st.Render(); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := g.passes[0].ColorAttachments[0].ClearValue; got != DefaultClearColor {
		t.Errorf("ClearValue = %+v, want %+v", got, DefaultClearColor)
	}
}

func TestRenderFailureDiscardsFrame(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name      string
		set       func(g *fakeGPU)
		op        string
		discards  []string
		forbidden []string
	}{
		{
			name:      "view",
			set:       func(g *fakeGPU) { g.viewErr = boom },
			op:        "record",
			discards:  []string{"discard"},
			forbidden: []string{"encoder", "submit", "present"},
		},
		{
			name:      "encoder",
			set:       func(g *fakeGPU) { g.encoderErr = boom },
			op:        "record",
			discards:  []string{"discard", "release-view"},
			forbidden: []string{"submit", "present"},
		},
		{
			name:      "end pass",
			set:       func(g *fakeGPU) { g.endErr = boom },
			op:        "record",
			discards:  []string{"discard-encoder", "discard", "release-view"},
			forbidden: []string{"finish", "submit", "present"},
		},
		{
			name:      "finish",
			set:       func(g *fakeGPU) { g.finishErr = boom },
			op:        "record",
			discards:  []string{"discard-encoder", "discard"},
			forbidden: []string{"submit", "present"},
		},
		{
			name:      "submit",
			set:       func(g *fakeGPU) { g.submitErr = boom },
			op:        "submit",
			discards:  []string{"release-buffer", "discard"},
			forbidden: []string{"present"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, g := newTestState(t, 800, 600)
			defer st.Close()
			g.resetCalls()
			tt.set(g)

			err := st.Render()
			var re *RenderError
			if !errors.As(err, &re) {
				t.Fatalf("Render() error = %v, want *RenderError", err)
			}
			if re.Op != tt.op {
				t.Errorf("Op = %q, want %q", re.Op, tt.op)
			}
			if !errors.Is(err, boom) {
				t.Error("RenderError does not wrap the backend error")
			}
			for _, call := range tt.discards {
				if g.count(call) != 1 {
					t.Errorf("%s called %d times, want 1 (calls %v)", call, g.count(call), g.calls)
				}
			}
			for _, call := range tt.forbidden {
				if g.count(call) != 0 {
					t.Errorf("%s called after %s failure", call, tt.name)
				}
			}
			if st.Stats().Skipped != 1 {
				t.Errorf("Skipped = %d, want 1", st.Stats().Skipped)
			}
		})
	}
}

func TestRenderPresentLost(t *testing.T) {
	st, g := newTestState(t, 800, 600)
	defer st.Close()
	g.resetCalls()
	g.presentErr = gpucore.ErrSurfaceLost

	err := st.Render()
	if KindOf(err) != KindLost {
		t.Fatalf("Render() error = %v, want KindLost", err)
	}
	if g.count("submit") != 1 {
		t.Error("frame was not submitted before present")
	}
	if len(g.configs) != 1 {
		t.Errorf("reconfigures = %d, want 1", len(g.configs))
	}
	stats := st.Stats()
	if stats.Submitted != 1 || stats.Presented != 0 || stats.Lost != 1 {
		t.Errorf("Stats() = %+v, want submitted 1, presented 0, lost 1", stats)
	}
}

func TestRenderSuboptimalStillPresents(t *testing.T) {
	st, g := newTestState(t, 800, 600)
	defer st.Close()
	g.suboptimal = true

	if err := st.Render(); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	stats := st.Stats()
	if stats.Suboptimal != 1 || stats.Presented != 1 {
		t.Errorf("Stats() = %+v, want one suboptimal presented frame", stats)
	}
}

func TestRenderNotConfigured(t *testing.T) {
	g := newFakeGPU()
	dc, err := NewDeviceContext(t.Context(), fakeInstance{g}, fakeSurface{g})
	if err != nil {
		t.Fatalf("NewDeviceContext() error = %v", err)
	}
	defer dc.Release()
	ps := NewPresentationSurface(fakeSurface{g}, &fakeWindow{w: 1, h: 1})
	fr := NewFrameRenderer(dc, ps)

	err = fr.Render()
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Render() error = %v, want ErrNotConfigured", err)
	}
	if g.count("acquire") != 0 {
		t.Error("frame acquired from an unconfigured surface")
	}
}

func TestRenderManyFrames(t *testing.T) {
	st, g := newTestState(t, 800, 600)
	defer st.Close()

	const frames = 10
	for range frames {
		if err := st.Render(); err != nil {
			t.Fatalf("Render() error = %v", err)
		}
	}
	if g.count("submit") != frames || g.count("present") != frames {
		t.Errorf("submits/presents = %d/%d, want %d", g.count("submit"), g.count("present"), frames)
	}
	if g.count("release-view") != frames {
		t.Errorf("views released = %d, want %d", g.count("release-view"), frames)
	}
}

func TestRenderRecordOutOfMemory(t *testing.T) {
	st, g := newTestState(t, 800, 600)
	defer st.Close()
	g.resetCalls()
	g.finishErr = fmt.Errorf("finish: %w", gpucore.ErrOutOfMemory)

	err := st.Render()
	if KindOf(err) != KindOutOfMemory {
		t.Fatalf("Render() error = %v, want KindOutOfMemory", err)
	}
	if !st.ShouldExit() {
		t.Error("out of memory while recording did not request exit")
	}
	if g.count("present") != 0 || g.count("submit") != 0 {
		t.Errorf("calls = %v, want no submit or present", g.calls)
	}
}
