package loop

import (
	"context"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/present/gpucore"
)

// Source delivers window events.
type Source interface {
	// Poll returns the next pending event without blocking.
	// ok is false when no event is pending.
	Poll() (ev Event, ok bool)
}

// Handler is the application state driven by the loop.
type Handler interface {
	// Input offers an event to the application first. Returning true
	// marks it consumed and skips the default handling.
	Input(ev Event) bool

	// Resize applies a new surface size. Zero sizes must be tolerated.
	Resize(size gpucore.Size)

	// Update advances per-frame state. Called once per cycle before Render.
	Update()

	// Render draws one frame. Errors are reported, not fatal; a fatal
	// condition is signalled through ShouldExit.
	Render() error

	// RequestExit asks the loop to stop.
	RequestExit()

	// ShouldExit reports whether the loop must stop.
	ShouldExit() bool
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithFPS caps the cycle rate. 0 means uncapped.
func WithFPS(fps int) Option {
	return func(d *Dispatcher) {
		d.fps = fps
	}
}

// Dispatcher runs the event loop for one window.
//
// Dispatcher also implements the keyboard, resize and focus parts of
// gpucontext.EventSource: registered callbacks fire for every matching
// event after the handler has processed it.
type Dispatcher struct {
	gpucontext.NullEventSource

	source  Source
	handler Handler
	fps     int
	cycles  uint64

	onKeyPress   func(gpucontext.Key, gpucontext.Modifiers)
	onKeyRelease func(gpucontext.Key, gpucontext.Modifiers)
	onResize     func(width, height int)
	onFocus      func(focused bool)
}

var _ gpucontext.EventSource = (*Dispatcher)(nil)

// NewDispatcher creates a dispatcher for source and handler.
func NewDispatcher(source Source, handler Handler, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		source:  source,
		handler: handler,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// OnKeyPress registers a callback for key press events.
func (d *Dispatcher) OnKeyPress(fn func(key gpucontext.Key, mods gpucontext.Modifiers)) {
	d.onKeyPress = fn
}

// OnKeyRelease registers a callback for key release events.
func (d *Dispatcher) OnKeyRelease(fn func(key gpucontext.Key, mods gpucontext.Modifiers)) {
	d.onKeyRelease = fn
}

// OnResize registers a callback for both resize variants.
func (d *Dispatcher) OnResize(fn func(width, height int)) {
	d.onResize = fn
}

// OnFocus registers a callback for focus changes.
func (d *Dispatcher) OnFocus(fn func(focused bool)) {
	d.onFocus = fn
}

// Cycles returns the number of completed update/render cycles.
func (d *Dispatcher) Cycles() uint64 {
	return d.cycles
}

// Dispatch fully processes one event.
func (d *Dispatcher) Dispatch(ev Event) {
	if !d.handler.Input(ev) {
		switch ev.Kind {
		case EventResized, EventScaleFactorChanged:
			d.handler.Resize(ev.Size)
		case EventKeyPressed:
			if ev.Key == gpucontext.KeyEscape {
				slogger().Info("loop: escape pressed, exiting")
				d.handler.RequestExit()
			}
		case EventCloseRequested:
			slogger().Info("loop: close requested, exiting")
			d.handler.RequestExit()
		}
	}

	switch ev.Kind {
	case EventResized, EventScaleFactorChanged:
		if d.onResize != nil {
			d.onResize(int(ev.Size.Width), int(ev.Size.Height))
		}
	case EventKeyPressed:
		if d.onKeyPress != nil {
			d.onKeyPress(ev.Key, ev.Mods)
		}
	case EventKeyReleased:
		if d.onKeyRelease != nil {
			d.onKeyRelease(ev.Key, ev.Mods)
		}
	case EventFocusChanged:
		if d.onFocus != nil {
			d.onFocus(ev.Focused)
		}
	}
}

// Cycle drains pending events and then updates and renders once.
// It returns false when the loop must stop; in that case no render
// happened after the event that requested exit.
func (d *Dispatcher) Cycle() bool {
	for {
		ev, ok := d.source.Poll()
		if !ok {
			break
		}
		d.Dispatch(ev)
		if d.handler.ShouldExit() {
			return false
		}
	}
	if d.handler.ShouldExit() {
		return false
	}

	d.handler.Update()
	if err := d.handler.Render(); err != nil {
		slogger().Debug("loop: frame skipped", "cycle", d.cycles, "err", err)
	}
	d.cycles++
	return !d.handler.ShouldExit()
}

// Run cycles until exit is requested or ctx is cancelled.
// Cancellation is a normal shutdown and returns nil.
func (d *Dispatcher) Run(ctx context.Context) error {
	ticker := NewTicker(d.fps)
	defer ticker.Stop()

	slogger().Info("loop: started", "fps", ticker.FPS())
	for {
		if !d.Cycle() {
			slogger().Info("loop: exited", "cycles", d.cycles)
			return nil
		}
		select {
		case <-ctx.Done():
			slogger().Info("loop: cancelled", "cycles", d.cycles, "reason", context.Cause(ctx))
			return nil
		case <-ticker.C():
		}
	}
}
