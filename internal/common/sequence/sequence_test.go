package sequence

import (
	"testing"
	"time"

	"github.com/grupodoporao/mesa/internal/common/clock"
	"github.com/stretchr/testify/assert"
)

func TestTimeSequenceIsStrictlyIncreasing(t *testing.T) {
	start := time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	c := clock.NewFake(start)
	seq := NewTimeSequence(c)

	first := seq.Next()
	second := seq.Next()
	assert.Equal(t, start.UnixMilli(), first)
	assert.Equal(t, first+1, second)

	c.Advance(time.Second)
	third := seq.Next()
	assert.Equal(t, start.Add(time.Second).UnixMilli(), third)
}

func TestTimeSequenceSurvivesBurstAheadOfClock(t *testing.T) {
	c := clock.NewFake(time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC))
	seq := NewTimeSequence(c)

	seen := make(map[int64]bool)
	var last int64
	for i := 0; i < 100; i++ {
		id := seq.Next()
		assert.False(t, seen[id], "duplicate id %d", id)
		assert.Greater(t, id, last)
		seen[id] = true
		last = id
	}

	// the clock catching up must not produce an id already handed out
	c.Advance(50 * time.Millisecond)
	assert.Greater(t, seq.Next(), last)
}
