package models

// PlayerStatus is the presence of a player at the table
type PlayerStatus string

const (
	// PlayerStatusActive is a player taking part in the session
	PlayerStatusActive PlayerStatus = "active"

	// PlayerStatusAway is a player who stepped away
	PlayerStatusAway PlayerStatus = "away"

	// PlayerStatusOffline is a player not connected
	PlayerStatusOffline PlayerStatus = "offline"
)

// Player represents a participant managed by the master
type Player struct {
	// ID is the unique identifier for the player
	ID string `json:"id"`

	// Name is the display name of the player
	Name string `json:"name"`

	// CharacterID references the player's character, if any
	CharacterID string `json:"characterId,omitempty"`

	// Status is the player's presence at the table
	Status PlayerStatus `json:"status"`
}

// PlayerPatch is a shallow update of a Player. Nil fields are left as is.
type PlayerPatch struct {
	Name        *string
	CharacterID *string
	Status      *PlayerStatus
}

// Apply returns a copy of p with the patch merged in
func (patch PlayerPatch) Apply(p Player) Player {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.CharacterID != nil {
		p.CharacterID = *patch.CharacterID
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	return p
}
