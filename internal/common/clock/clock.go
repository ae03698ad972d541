package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/grupodoporao/mesa/internal/common/clock Clock,Timer

// Clock supplies the current time and schedules delayed callbacks.
// Every timer in the module (notification auto-dismiss, persistence
// debounce, login delay) goes through a Clock so tests can drive time.
type Clock interface {
	Now() time.Time

	// AfterFunc runs f on its own goroutine once d has elapsed.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending AfterFunc callback.
type Timer interface {
	// Stop prevents the callback from running. It reports false if the
	// callback already ran or the timer was already stopped.
	Stop() bool
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules f with time.AfterFunc
func (c *DefaultClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
