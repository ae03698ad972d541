package clock

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)

func TestFakeAdvanceFiresDueTimers(t *testing.T) {
	f := NewFake(start)

	var fired atomic.Int32
	f.AfterFunc(time.Second, func() { fired.Add(1) })
	f.AfterFunc(2*time.Second, func() { fired.Add(1) })
	f.AfterFunc(5*time.Second, func() { fired.Add(100) })
	require.True(t, f.WaitFor(3, time.Second))

	f.Advance(3 * time.Second)

	assert.Eventually(t, func() bool { return fired.Load() == 2 }, time.Second, 5*time.Millisecond)
	assert.True(t, f.WaitFor(1, time.Second))
	assert.Equal(t, start.Add(3*time.Second), f.Now())
}

func TestFakeStoppedTimerDoesNotFire(t *testing.T) {
	f := NewFake(start)

	var fired atomic.Bool
	timer := f.AfterFunc(time.Second, func() { fired.Store(true) })

	require.True(t, timer.Stop())
	require.False(t, timer.Stop())
	assert.True(t, f.WaitFor(0, time.Second))

	f.Advance(time.Minute)
	time.Sleep(10 * time.Millisecond)
	assert.False(t, fired.Load())
}

func TestFakeBlockUntil(t *testing.T) {
	f := NewFake(start)

	done := make(chan struct{})
	go func() {
		f.AfterFunc(time.Second, func() {})
		close(done)
	}()

	f.BlockUntil(1)
	<-done
	assert.False(t, f.WaitFor(0, 10*time.Millisecond))
}

func TestDefaultClockAfterFunc(t *testing.T) {
	c := &DefaultClock{}

	fired := make(chan struct{})
	c.AfterFunc(time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(time.Second):
		require.FailNow(t, "timer did not fire")
	}
}
