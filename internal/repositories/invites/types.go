package invites

import (
	"github.com/grupodoporao/mesa/internal/common/clock"
	"github.com/grupodoporao/mesa/internal/common/sequence"
	"github.com/grupodoporao/mesa/internal/models"
	"github.com/grupodoporao/mesa/internal/repositories/storage"
)

// StorageKey is where the invite list is kept
const StorageKey = "invited-players"

// Config holds configuration for the invites repository
type Config struct {
	// Directory defaults to the built-in sample directory
	Directory Directory

	Storage storage.Store
	Clock   clock.Clock
	IDs     sequence.Generator
}

// InvitePlayerInput identifies the player to invite
type InvitePlayerInput struct {
	Tag string
}

// UpdateInviteInput selects an invite and the changes to make. Nil
// fields are left as is.
type UpdateInviteInput struct {
	InviteID int64

	Status *models.InviteStatus
	Limits *models.PlayerLimits
	HP     *models.HitPoints
	XP     *models.Progress

	// Attributes are merged into the sheet one by one
	Attributes map[string]int

	// AddEquipment is appended; RemoveEquipment is an index into the
	// current list and is applied first
	AddEquipment    string
	RemoveEquipment *int
}

// RemoveInviteInput identifies the invite to remove
type RemoveInviteInput struct {
	InviteID int64
}
