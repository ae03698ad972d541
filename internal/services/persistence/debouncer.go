package persistence

import (
	"sync"
	"time"

	"github.com/grupodoporao/mesa/internal/common/clock"
)

// DefaultDebounce is the quiet period before a snapshot is written
const DefaultDebounce = time.Second

// Debouncer runs fn once the triggers stop for a quiet period. A burst of
// triggers results in a single call, made after the last one.
type Debouncer struct {
	mu      sync.Mutex
	clock   clock.Clock
	delay   time.Duration
	fn      func()
	timer   clock.Timer
	gen     uint64
	stopped bool
}

// NewDebouncer creates a debouncer calling fn after delay of quiet
func NewDebouncer(c clock.Clock, delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{
		clock: c,
		delay: delay,
		fn:    fn,
	}
}

// Trigger (re)starts the quiet period
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}

	// a timer that was already firing when it got replaced sees a stale
	// generation and does nothing
	d.gen++
	gen := d.gen
	d.timer = d.clock.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if gen != d.gen || d.stopped {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()

		d.fn()
	})
}

// Flush runs fn now if a call is pending
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer == nil {
		d.mu.Unlock()
		return
	}
	d.timer.Stop()
	d.timer = nil
	d.gen++
	d.mu.Unlock()

	d.fn()
}

// Pending reports whether a call is scheduled
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stop cancels any pending call. Later triggers are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
