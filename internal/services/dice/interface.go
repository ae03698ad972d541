package dice

import "context"

// Service turns roll requests into roll records
type Service interface {
	// ComputeRoll rolls the dice and builds the record. It has no side
	// effects; storing the record is up to the caller.
	ComputeRoll(ctx context.Context, input *ComputeRollInput) (*ComputeRollOutput, error)
}
