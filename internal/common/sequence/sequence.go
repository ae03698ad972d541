// Package sequence issues the numeric record ids used for rolls, chat
// messages, notifications, notes and sessions.
package sequence

import (
	"sync"

	"github.com/grupodoporao/mesa/internal/common/clock"
)

// Generator returns unique, strictly increasing ids.
type Generator interface {
	Next() int64
}

// TimeSequence derives ids from the clock's Unix milliseconds. Two ids
// requested within the same millisecond (or after the clock moved
// backwards) are bumped past the previous id so ids never repeat.
type TimeSequence struct {
	mu    sync.Mutex
	clock clock.Clock
	last  int64
}

// NewTimeSequence creates a generator reading time from c.
func NewTimeSequence(c clock.Clock) *TimeSequence {
	return &TimeSequence{clock: c}
}

// Next returns the next id.
func (s *TimeSequence) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.clock.Now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}
