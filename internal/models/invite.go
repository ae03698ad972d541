package models

import (
	"time"
)

// InviteStatus is where an invitation stands
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusDeclined InviteStatus = "declined"
)

// IsValid reports whether the status is one of the known statuses
func (s InviteStatus) IsValid() bool {
	switch s {
	case InviteStatusPending, InviteStatusAccepted, InviteStatusDeclined:
		return true
	}
	return false
}

// PlayerProfile is a player found by tag in the player directory
type PlayerProfile struct {
	Tag   string `json:"tag"`
	Name  string `json:"name"`
	Level int    `json:"level"`
	Class string `json:"class"`
}

// Progress is a current/next pair such as experience points
type Progress struct {
	Current int `json:"current"`
	Next    int `json:"next"`
}

// InvitedCharacter is the sheet the master controls for an invited player
type InvitedCharacter struct {
	Name       string         `json:"name"`
	Level      int            `json:"level"`
	HP         HitPoints      `json:"hp"`
	XP         Progress       `json:"xp"`
	Attributes map[string]int `json:"attributes"`
	Skills     map[string]int `json:"skills"`
	Equipment  []string       `json:"equipment"`
}

// PlayerLimits restrict what an invited player may change on their sheet
type PlayerLimits struct {
	MaxHPIncrease     int  `json:"maxHpIncrease"`
	MaxXPGain         int  `json:"maxXpGain"`
	CanEditAttributes bool `json:"canEditAttributes"`
	CanEditSkills     bool `json:"canEditSkills"`
	CanEditEquipment  bool `json:"canEditEquipment"`
}

// InvitedPlayer is a player the master invited to the table
type InvitedPlayer struct {
	ID int64 `json:"id"`
	PlayerProfile
	InvitedAt time.Time        `json:"invitedAt"`
	Status    InviteStatus     `json:"status"`
	Character InvitedCharacter `json:"character"`
	Limits    PlayerLimits     `json:"limits"`
}
