package clock

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// Fake is a Clock moved by hand. Callbacks scheduled with AfterFunc run
// on their own goroutine once Advance passes their deadline, so tests
// wait for their effects rather than assert right after Advance.
type Fake struct {
	*clockwork.FakeClock
}

// NewFake creates a fake clock reading now
func NewFake(now time.Time) *Fake {
	return &Fake{FakeClock: clockwork.NewFakeClockAt(now)}
}

// AfterFunc schedules f on the fake timeline
func (f *Fake) AfterFunc(d time.Duration, fn func()) Timer {
	return f.FakeClock.AfterFunc(d, fn)
}

// BlockUntil waits until exactly n timers are pending
func (f *Fake) BlockUntil(n int) {
	_ = f.FakeClock.BlockUntilContext(context.Background(), n)
}

// WaitFor is BlockUntil with a deadline. It reports whether exactly n
// timers were pending before timeout.
func (f *Fake) WaitFor(n int, timeout time.Duration) bool {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return f.FakeClock.BlockUntilContext(ctx, n) == nil
}
