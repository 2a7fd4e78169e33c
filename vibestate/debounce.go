package vibestate

import (
	"sync"
	"time"
)

// SliderDebounce is the coalescing window for slider drags
const SliderDebounce = 16 * time.Millisecond

// Debouncer coalesces rapid position updates into one call per window,
// delivering the latest value on the trailing edge
type Debouncer struct {
	wait  time.Duration
	apply func(int)

	mu      sync.Mutex
	timer   *time.Timer
	pending *int
	stopped bool
}

func NewDebouncer(wait time.Duration, apply func(int)) *Debouncer {
	if wait <= 0 {
		wait = SliderDebounce
	}
	return &Debouncer{wait: wait, apply: apply}
}

// Debounce returns a Debouncer that forwards to s.SetPosition
func (s *State) Debounce(wait time.Duration) *Debouncer {
	return NewDebouncer(wait, s.SetPosition)
}

// Set schedules position, replacing any value still waiting
func (d *Debouncer) Set(position int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.pending = &position
	if d.timer == nil {
		d.timer = time.AfterFunc(d.wait, d.fire)
	}
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	d.timer = nil
	pending := d.pending
	d.pending = nil
	stopped := d.stopped
	d.mu.Unlock()

	if pending != nil && !stopped {
		d.apply(*pending)
	}
}

// Flush delivers a waiting value immediately
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	pending := d.pending
	d.pending = nil
	stopped := d.stopped
	d.mu.Unlock()

	if pending != nil && !stopped {
		d.apply(*pending)
	}
}

// Stop discards a waiting value and ignores later calls to Set
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
