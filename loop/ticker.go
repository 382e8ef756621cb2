package loop

import "time"

// Ticker paces loop cycles to a frames-per-second cap.
type Ticker struct {
	fps    int
	ticker *time.Ticker
}

// NewTicker creates a ticker for fps frames per second.
// To unlimit, set fps to 0.
func NewTicker(fps int) *Ticker {
	if fps < 0 {
		fps = 0
	}
	var interval time.Duration
	if fps == 0 {
		interval = time.Nanosecond
	} else {
		interval = time.Second / time.Duration(fps)
	}
	return &Ticker{
		fps:    fps,
		ticker: time.NewTicker(interval),
	}
}

// FPS returns the frames per second cap, 0 when uncapped.
func (t *Ticker) FPS() int {
	return t.fps
}

// C returns the tick channel.
func (t *Ticker) C() <-chan time.Time {
	return t.ticker.C
}

// Stop stops the ticker.
func (t *Ticker) Stop() {
	t.ticker.Stop()
}
