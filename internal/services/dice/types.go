package dice

import (
	"github.com/grupodoporao/mesa/internal/common/clock"
	"github.com/grupodoporao/mesa/internal/common/sequence"
	"github.com/grupodoporao/mesa/internal/dice"
	"github.com/grupodoporao/mesa/internal/models"
)

// DefaultUser is recorded on rolls made without a display name
const DefaultUser = "Sistema"

// Config holds configuration for the dice service
type Config struct {
	// Service dependencies
	Roller dice.Roller
	Clock  clock.Clock
	IDs    sequence.Generator
}

// ComputeRollInput contains parameters for rolling dice
type ComputeRollInput struct {
	// Sides is the number of faces on each die, at least 2
	Sides int

	// Count is the number of dice, at least 1. Ignored for advantage and
	// disadvantage, which always roll two.
	Count int

	// Modifier is added to the total
	Modifier int

	// User is the display name recorded on the roll
	User string

	// Mode selects standard, advantage or disadvantage. Empty means standard.
	Mode models.RollType
}

// ComputeRollOutput contains the result of a roll
type ComputeRollOutput struct {
	// Roll is the finished record
	Roll *models.DiceRoll

	// Criticals classifies each entry of Roll.Results
	Criticals []models.Critical
}
