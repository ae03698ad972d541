package invites

import (
	"context"
	"strings"

	"github.com/grupodoporao/mesa/internal/models"
)

// sampleDirectory stands in for a player search service
type sampleDirectory struct {
	players []models.PlayerProfile
}

// NewSampleDirectory returns the fixed directory of sample players
func NewSampleDirectory() *sampleDirectory {
	return &sampleDirectory{
		players: []models.PlayerProfile{
			{Tag: "warrior123", Name: "João Silva", Level: 5, Class: "Guerreiro"},
			{Tag: "mage456", Name: "Maria Santos", Level: 3, Class: "Mago"},
			{Tag: "rogue789", Name: "Pedro Costa", Level: 7, Class: "Ladino"},
			{Tag: "cleric101", Name: "Ana Oliveira", Level: 4, Class: "Clérigo"},
		},
	}
}

// FindByTag matches tags case-insensitively
func (d *sampleDirectory) FindByTag(ctx context.Context, tag string) (*models.PlayerProfile, error) {
	for _, p := range d.players {
		if strings.EqualFold(p.Tag, tag) {
			found := p
			return &found, nil
		}
	}
	return nil, ErrPlayerNotFound
}

// starterCharacter is the sheet every invited player begins with
func starterCharacter(p models.PlayerProfile) models.InvitedCharacter {
	return models.InvitedCharacter{
		Name:  p.Name + " - " + p.Class,
		Level: p.Level,
		HP:    models.HitPoints{Current: 50, Max: 50},
		XP:    models.Progress{Current: 1000, Next: 2000},
		Attributes: map[string]int{
			"strength":     14,
			"dexterity":    12,
			"constitution": 16,
			"intelligence": 10,
			"wisdom":       13,
			"charisma":     11,
		},
		Skills: map[string]int{
			"athletics":     5,
			"stealth":       3,
			"investigation": 2,
			"perception":    4,
			"persuasion":    1,
		},
		Equipment: []string{"Espada Longa", "Armadura de Couro", "Escudo", "Poção de Cura"},
	}
}

// DefaultLimits are applied to new invites
func DefaultLimits() models.PlayerLimits {
	return models.PlayerLimits{
		MaxHPIncrease: 10,
		MaxXPGain:     500,
	}
}
