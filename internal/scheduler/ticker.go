package scheduler

import (
	"sync"
	"time"
)

// TickFunc receives the elapsed fraction of a second since the previous tick
type TickFunc func(elapsedFraction float64)

// Ticker drives passive production. It is Idle until Activate and goes back
// to Idle on Deactivate. After Stop it never runs again.
type Ticker struct {
	interval time.Duration
	fn       TickFunc

	mu      sync.Mutex
	running bool
	stopped bool
	stop    chan struct{}
	done    chan struct{}
}

// NewTicker creates an idle ticker
func NewTicker(interval time.Duration, fn TickFunc) *Ticker {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Ticker{interval: interval, fn: fn}
}

// Interval returns the tick period
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Fraction is the elapsedFraction passed on every tick
func (t *Ticker) Fraction() float64 {
	return t.interval.Seconds()
}

// Activate starts ticking. It reports whether a new loop was started.
func (t *Ticker) Activate() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running || t.stopped {
		return false
	}

	t.running = true
	t.stop = make(chan struct{})
	t.done = make(chan struct{})
	go t.loop(t.stop, t.done)
	return true
}

func (t *Ticker) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	fraction := t.Fraction()
	for {
		select {
		case <-ticker.C:
			t.fn(fraction)
		case <-stop:
			return
		}
	}
}

// Deactivate stops ticking and waits for the loop to exit. It must not be
// called from the tick function.
func (t *Ticker) Deactivate() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	t.running = false
	stop, done := t.stop, t.done
	close(stop)
	t.mu.Unlock()

	<-done
}

// Active reports whether the ticker is running
func (t *Ticker) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Stop deactivates the ticker for good. Calling it more than once is safe.
func (t *Ticker) Stop() {
	t.mu.Lock()
	t.stopped = true
	t.mu.Unlock()
	t.Deactivate()
}
