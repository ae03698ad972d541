// Package dice rolls dice. It is the only source of randomness in the
// module and takes an injectable Source so tests can fix the faces.
package dice

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/grupodoporao/mesa/internal/dice Roller

// ErrInvalidArgument is returned for a die with fewer than 2 sides or a
// roll of fewer than 1 die.
var ErrInvalidArgument = errors.New("invalid dice argument")

// Source is the randomness provider for dice rolls.
type Source interface {
	// Intn returns a non-negative int in [0, n). n is always > 0.
	Intn(n int) int
}

// Roller rolls count dice of the given number of sides
type Roller interface {
	Roll(sides, count int) ([]int, error)
}

// Config for dice roller
type Config struct {
	// Optional seed for testing. Zero picks a random seed.
	Seed int64

	// Source overrides the pseudo-random generator entirely
	Source Source
}

// RandomRoller provides dice rolling functionality
type RandomRoller struct {
	mu     sync.Mutex
	source Source
}

// New creates a new dice roller
func New(cfg *Config) *RandomRoller {
	if cfg != nil && cfg.Source != nil {
		return &RandomRoller{source: cfg.Source}
	}

	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else if s, err := NewSeed(); err == nil {
		seed = s
	} else {
		seed = time.Now().UnixNano()
	}

	return &RandomRoller{
		source: rand.New(rand.NewSource(seed)),
	}
}

// Roll returns count independent results, each uniform in [1, sides]
func (r *RandomRoller) Roll(sides, count int) ([]int, error) {
	if err := Validate(sides, count); err != nil {
		return nil, err
	}

	// math/rand.Rand is not safe for concurrent use
	r.mu.Lock()
	defer r.mu.Unlock()

	results := make([]int, count)
	for i := range results {
		results[i] = r.source.Intn(sides) + 1
	}
	return results, nil
}

// Validate checks roll parameters without rolling
func Validate(sides, count int) error {
	if sides < 2 {
		return fmt.Errorf("%w: sides must be at least 2, got %d", ErrInvalidArgument, sides)
	}
	if count < 1 {
		return fmt.Errorf("%w: count must be at least 1, got %d", ErrInvalidArgument, count)
	}
	return nil
}
