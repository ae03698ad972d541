package game

import (
	"github.com/grupodoporao/mesa/internal/models"
)

// MaxDiceHistory is the number of rolls kept, newest first
const MaxDiceHistory = 50

// State is the full game state. Slices are treated as immutable: the
// reducer always builds new ones, and slices an action does not touch
// are shared between the old and new state.
type State struct {
	DiceHistory    []models.DiceRoll
	LastRoll       *models.DiceRoll
	Players        []models.Player
	Characters     []models.Character
	ChatMessages   []models.ChatMessage
	Notifications  []models.Notification
	CurrentSession models.GameSession
	GameSettings   models.GameSettings
	UI             models.UI

	// Revision counts changes to the persisted slices. It is not stored.
	Revision uint64
}

// DefaultSession is the session slice when nothing is being played
func DefaultSession() models.GameSession {
	return models.GameSession{
		Notes: []models.SessionNote{},
	}
}

// DefaultSettings are the settings of a fresh table
func DefaultSettings() models.GameSettings {
	return models.GameSettings{
		DiceSound: true,
		AutoSave:  true,
		Theme:     "dark",
		Language:  "pt-BR",
	}
}

// DefaultUI is the interface state on startup
func DefaultUI() models.UI {
	return models.UI{
		ActivePanel: "dice",
	}
}

// InitialState returns the state of a fresh table
func InitialState() State {
	return State{
		DiceHistory:    []models.DiceRoll{},
		Players:        []models.Player{},
		Characters:     []models.Character{},
		ChatMessages:   []models.ChatMessage{},
		Notifications:  []models.Notification{},
		CurrentSession: DefaultSession(),
		GameSettings:   DefaultSettings(),
		UI:             DefaultUI(),
	}
}

// Snapshot is the persisted part of State. The UI slice, notifications
// and the last roll are deliberately absent.
type Snapshot struct {
	DiceHistory    []models.DiceRoll    `json:"diceHistory"`
	Players        []models.Player      `json:"players"`
	Characters     []models.Character   `json:"characters"`
	ChatMessages   []models.ChatMessage `json:"chatMessages"`
	CurrentSession models.GameSession   `json:"currentSession"`
	GameSettings   models.GameSettings  `json:"gameSettings"`
}

// DefaultSnapshot is the snapshot of InitialState
func DefaultSnapshot() Snapshot {
	return InitialState().Snapshot()
}

// Snapshot extracts the persisted slices
func (s State) Snapshot() Snapshot {
	return Snapshot{
		DiceHistory:    s.DiceHistory,
		Players:        s.Players,
		Characters:     s.Characters,
		ChatMessages:   s.ChatMessages,
		CurrentSession: s.CurrentSession,
		GameSettings:   s.GameSettings,
	}
}

// Normalize replaces nil slices with empty ones and trims the dice
// history to its cap. Decoded snapshots go through it before they are
// restored.
func (s Snapshot) Normalize() Snapshot {
	if s.DiceHistory == nil {
		s.DiceHistory = []models.DiceRoll{}
	}
	if len(s.DiceHistory) > MaxDiceHistory {
		s.DiceHistory = s.DiceHistory[:MaxDiceHistory:MaxDiceHistory]
	}
	if s.Players == nil {
		s.Players = []models.Player{}
	}
	if s.Characters == nil {
		s.Characters = []models.Character{}
	}
	if s.ChatMessages == nil {
		s.ChatMessages = []models.ChatMessage{}
	}
	if s.CurrentSession.Notes == nil {
		s.CurrentSession.Notes = []models.SessionNote{}
	}
	return s
}

// FindPlayer returns the player with id
func (s State) FindPlayer(id string) (models.Player, bool) {
	for _, p := range s.Players {
		if p.ID == id {
			return p, true
		}
	}
	return models.Player{}, false
}

// FindCharacter returns the character with id
func (s State) FindCharacter(id string) (models.Character, bool) {
	for _, c := range s.Characters {
		if c.ID == id {
			return c, true
		}
	}
	return models.Character{}, false
}
