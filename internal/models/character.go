package models

import (
	"maps"
	"slices"
)

// HitPoints tracks a character's health
type HitPoints struct {
	Current int `json:"current"`
	Max     int `json:"max"`
	Temp    int `json:"temp"`
}

// Character is a character sheet
type Character struct {
	ID         string         `json:"id"`
	PlayerID   string         `json:"playerId,omitempty"`
	Name       string         `json:"name"`
	Class      string         `json:"class"`
	Race       string         `json:"race"`
	Level      int            `json:"level"`
	Attributes map[string]int `json:"attributes"`
	HitPoints  HitPoints      `json:"hitPoints"`
	ArmorClass int            `json:"armorClass"`
	Equipment  []string       `json:"equipment"`
}

// Clone returns a copy of c that shares no maps or slices with it
func (c Character) Clone() Character {
	c.Attributes = maps.Clone(c.Attributes)
	c.Equipment = slices.Clone(c.Equipment)
	return c
}

// CharacterPatch is a shallow update of a Character. Nil fields are left
// as is; Attributes and Equipment replace the whole value when set.
type CharacterPatch struct {
	PlayerID   *string
	Name       *string
	Class      *string
	Race       *string
	Level      *int
	Attributes map[string]int
	HitPoints  *HitPoints
	ArmorClass *int
	Equipment  []string
}

// Apply returns a copy of c with the patch merged in. The patch's
// Attributes and Equipment are copied, not kept.
func (patch CharacterPatch) Apply(c Character) Character {
	if patch.PlayerID != nil {
		c.PlayerID = *patch.PlayerID
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Class != nil {
		c.Class = *patch.Class
	}
	if patch.Race != nil {
		c.Race = *patch.Race
	}
	if patch.Level != nil {
		c.Level = *patch.Level
	}
	if patch.Attributes != nil {
		c.Attributes = maps.Clone(patch.Attributes)
	}
	if patch.HitPoints != nil {
		c.HitPoints = *patch.HitPoints
	}
	if patch.ArmorClass != nil {
		c.ArmorClass = *patch.ArmorClass
	}
	if patch.Equipment != nil {
		c.Equipment = slices.Clone(patch.Equipment)
	}
	return c
}
