package game

import (
	"log/slog"
	"time"

	"github.com/grupodoporao/mesa/internal/common/clock"
	"github.com/grupodoporao/mesa/internal/common/sequence"
	"github.com/grupodoporao/mesa/internal/common/uuid"
	"github.com/grupodoporao/mesa/internal/models"
	diceService "github.com/grupodoporao/mesa/internal/services/dice"
)

// DefaultNotificationTTL is how long a notification stays before it is
// removed automatically
const DefaultNotificationTTL = 5 * time.Second

// DefaultNoteType is used for session notes added without a type
const DefaultNoteType = "note"

// Config holds configuration for the game store
type Config struct {
	// NotificationTTL overrides DefaultNotificationTTL when positive
	NotificationTTL time.Duration

	// Initial overrides InitialState
	Initial *State

	// Logger defaults to slog.Default()
	Logger *slog.Logger

	// Service dependencies
	DiceService   diceService.Service
	Clock         clock.Clock
	IDs           sequence.Generator
	UUIDGenerator uuid.UUID
}

// RollDiceInput contains parameters for rolling dice
type RollDiceInput struct {
	Sides    int
	Count    int
	Modifier int
	User     string
	Mode     models.RollType
}

// RollDiceOutput contains the result of rolling dice
type RollDiceOutput struct {
	// Results are the individual dice, in roll order
	Results []int

	// Total is the final value of the roll
	Total int

	// Roll is the record appended to the history
	Roll models.DiceRoll

	// Criticals classifies each entry of Results
	Criticals []models.Critical
}
