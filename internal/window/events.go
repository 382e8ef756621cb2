package window

import (
	"sync"

	"github.com/gogpu/present/gpucore"
	"github.com/gogpu/present/loop"
)

// eventQueue buffers loop events between host callbacks and the
// dispatcher. Host input callbacks may run on another goroutine than the
// frame callback.
type eventQueue struct {
	mu     sync.Mutex
	events []loop.Event

	// Geometry of the last observed frame.
	size  gpucore.Size
	scale float64
	seen  bool
}

func (q *eventQueue) push(ev loop.Event) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// Poll implements loop.Source.
func (q *eventQueue) Poll() (loop.Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return loop.Event{}, false
	}
	ev := q.events[0]
	q.events = q.events[1:]
	return ev, true
}

// observe records the geometry of a frame about to be drawn and queues at
// most one event describing the change since the previous frame: a
// ScaleFactorChanged when the pixel-to-point ratio moved, a Resized when
// only the size did, and nothing otherwise. The first frame only records.
func (q *eventQueue) observe(size gpucore.Size, scale float64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	prevSize, prevScale, seen := q.size, q.scale, q.seen
	q.size, q.scale, q.seen = size, scale, true
	switch {
	case !seen:
	case scale != prevScale:
		q.events = append(q.events, loop.ScaleFactorChanged(scale, size.Width, size.Height))
	case size != prevSize:
		q.events = append(q.events, loop.Resized(size.Width, size.Height))
	}
}

// last returns the geometry of the last observed frame.
func (q *eventQueue) last() (gpucore.Size, float64, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.size, q.scale, q.seen
}
