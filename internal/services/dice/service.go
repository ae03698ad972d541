package dice

import (
	"context"
	"fmt"

	"github.com/grupodoporao/mesa/internal/common/clock"
	"github.com/grupodoporao/mesa/internal/common/sequence"
	"github.com/grupodoporao/mesa/internal/dice"
	"github.com/grupodoporao/mesa/internal/models"
)

// service implements the Service interface
type service struct {
	roller dice.Roller
	clock  clock.Clock
	ids    sequence.Generator
}

// New creates a new dice service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.IDs == nil {
		return nil, ErrNilIDGenerator
	}

	return &service{
		roller: cfg.Roller,
		clock:  cfg.Clock,
		ids:    cfg.IDs,
	}, nil
}

// ComputeRoll rolls the dice and builds the roll record
func (s *service) ComputeRoll(ctx context.Context, input *ComputeRollInput) (*ComputeRollOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	mode := input.Mode
	if mode == "" {
		mode = models.RollTypeStandard
	}
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: unknown roll type %q", dice.ErrInvalidArgument, mode)
	}

	count := input.Count
	if mode != models.RollTypeStandard {
		// advantage keeps one of exactly two dice, whatever was asked for
		count = 2
	}

	// reject before the roller is consulted
	if err := dice.Validate(input.Sides, count); err != nil {
		return nil, err
	}

	results, err := s.roller.Roll(input.Sides, count)
	if err != nil {
		return nil, fmt.Errorf("failed to roll dice: %w", err)
	}

	user := input.User
	if user == "" {
		user = DefaultUser
	}

	roll := &models.DiceRoll{
		ID:        s.ids.Next(),
		Timestamp: s.clock.Now(),
		RollType:  mode,
		Sides:     input.Sides,
		Count:     count,
		Modifier:  input.Modifier,
		Results:   results,
		Total:     Total(mode, results, input.Modifier),
		User:      user,
	}

	criticals := make([]models.Critical, len(results))
	for i, r := range results {
		criticals[i] = Classify(r, input.Sides)
	}

	return &ComputeRollOutput{
		Roll:      roll,
		Criticals: criticals,
	}, nil
}

// Total combines results according to the roll type
func Total(mode models.RollType, results []int, modifier int) int {
	if len(results) == 0 {
		return modifier
	}

	switch mode {
	case models.RollTypeAdvantage:
		best := results[0]
		for _, r := range results[1:] {
			best = max(best, r)
		}
		return best + modifier
	case models.RollTypeDisadvantage:
		worst := results[0]
		for _, r := range results[1:] {
			worst = min(worst, r)
		}
		return worst + modifier
	default:
		sum := modifier
		for _, r := range results {
			sum += r
		}
		return sum
	}
}

// Classify flags a single die result. A 1 is a critical failure and the
// maximum face a critical success; a d1 cannot exist so the two never
// overlap.
func Classify(result, sides int) models.Critical {
	switch result {
	case 1:
		return models.CriticalFailure
	case sides:
		return models.CriticalSuccess
	default:
		return models.CriticalNone
	}
}
