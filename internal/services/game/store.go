// Package game holds the central game state: dice history, chat,
// players, characters, the current session, settings and UI flags.
package game

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/grupodoporao/mesa/internal/common/clock"
	"github.com/grupodoporao/mesa/internal/common/reducer"
	"github.com/grupodoporao/mesa/internal/common/sequence"
	"github.com/grupodoporao/mesa/internal/common/uuid"
	"github.com/grupodoporao/mesa/internal/models"
	diceService "github.com/grupodoporao/mesa/internal/services/dice"
)

// Store is the game state container. All changes go through Dispatch,
// either directly or through the helper methods, which build records
// (ids, timestamps) before dispatching so the reducer stays pure.
type Store struct {
	state *reducer.Store[State, Action]

	diceService     diceService.Service
	clock           clock.Clock
	ids             sequence.Generator
	uuid            uuid.UUID
	notificationTTL time.Duration
	logger          *slog.Logger

	timersMu sync.Mutex
	timers   map[int64]clock.Timer
	closed   bool
}

// New creates a new game store
func New(cfg *Config) (*Store, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.DiceService == nil {
		return nil, ErrNilDiceService
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.IDs == nil {
		return nil, ErrNilIDGenerator
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	initial := InitialState()
	if cfg.Initial != nil {
		initial = *cfg.Initial
	}

	ttl := cfg.NotificationTTL
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		state:           reducer.New(initial, Reduce),
		diceService:     cfg.DiceService,
		clock:           cfg.Clock,
		ids:             cfg.IDs,
		uuid:            cfg.UUIDGenerator,
		notificationTTL: ttl,
		logger:          logger.With("component", "game"),
		timers:          make(map[int64]clock.Timer),
	}, nil
}

// State returns the current state. Callers must treat it as read-only.
func (s *Store) State() State {
	return s.state.State()
}

// Dispatch applies an action and returns the resulting state
func (s *Store) Dispatch(action Action) State {
	return s.state.Dispatch(action)
}

// Subscribe registers fn to be called after every dispatch. The returned
// function unsubscribes. fn must not dispatch synchronously.
func (s *Store) Subscribe(fn func(State, Action)) func() {
	return s.state.Subscribe(fn)
}

// RollDice rolls, appends the roll to the history and returns the result
func (s *Store) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	out, err := s.diceService.ComputeRoll(ctx, &diceService.ComputeRollInput{
		Sides:    input.Sides,
		Count:    input.Count,
		Modifier: input.Modifier,
		User:     input.User,
		Mode:     input.Mode,
	})
	if err != nil {
		return nil, err
	}

	// the history keeps its own copy of the results
	roll := *out.Roll
	roll.Results = slices.Clone(roll.Results)
	s.Dispatch(RollDiceAction{Roll: roll})

	s.logger.Debug("dice rolled",
		"user", roll.User,
		"sides", roll.Sides,
		"count", roll.Count,
		"modifier", roll.Modifier,
		"type", roll.RollType,
		"total", roll.Total)

	returned := roll
	returned.Results = slices.Clone(roll.Results)
	return &RollDiceOutput{
		Results:   slices.Clone(roll.Results),
		Total:     roll.Total,
		Roll:      returned,
		Criticals: out.Criticals,
	}, nil
}

// AddChatMessage appends a message to the chat. An empty user is
// recorded as the system user and an empty type as text.
func (s *Store) AddChatMessage(message, user string, msgType models.MessageType) models.ChatMessage {
	if user == "" {
		user = diceService.DefaultUser
	}
	if msgType == "" {
		msgType = models.MessageTypeText
	}

	msg := models.ChatMessage{
		ID:        s.ids.Next(),
		Timestamp: s.clock.Now(),
		User:      user,
		Message:   message,
		Type:      msgType,
	}
	s.Dispatch(AddChatMessageAction{Message: msg})
	return msg
}

// AddNotification shows a notification and schedules its removal after
// the notification TTL. The pending removal is cancelled by Close.
func (s *Store) AddNotification(message string, notificationType models.NotificationType) models.Notification {
	if notificationType == "" {
		notificationType = models.NotificationInfo
	}

	n := models.Notification{
		ID:        s.ids.Next(),
		Message:   message,
		Type:      notificationType,
		Timestamp: s.clock.Now(),
	}
	s.Dispatch(AddNotificationAction{Notification: n})

	s.timersMu.Lock()
	defer s.timersMu.Unlock()
	if s.closed {
		return n
	}
	id := n.ID
	s.timers[id] = s.clock.AfterFunc(s.notificationTTL, func() {
		s.timersMu.Lock()
		delete(s.timers, id)
		closed := s.closed
		s.timersMu.Unlock()
		if closed {
			return
		}
		s.Dispatch(RemoveNotificationAction{NotificationID: id})
	})
	return n
}

// RemoveNotification dismisses a notification before its timer fires
func (s *Store) RemoveNotification(id int64) {
	s.timersMu.Lock()
	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
	s.timersMu.Unlock()

	s.Dispatch(RemoveNotificationAction{NotificationID: id})
}

// AddPlayer adds a player, generating an id when none is given. Adding
// an id that already exists replaces that player.
func (s *Store) AddPlayer(player models.Player) models.Player {
	if player.ID == "" {
		player.ID = s.uuid.NewUUID()
	}
	if player.Status == "" {
		player.Status = models.PlayerStatusActive
	}
	s.Dispatch(AddPlayerAction{Player: player})
	return player
}

// RemovePlayer removes a player. Unknown ids are ignored.
func (s *Store) RemovePlayer(id string) {
	s.Dispatch(RemovePlayerAction{PlayerID: id})
}

// UpdatePlayer merges patch into a player. Unknown ids are ignored.
func (s *Store) UpdatePlayer(id string, patch models.PlayerPatch) {
	s.Dispatch(UpdatePlayerAction{PlayerID: id, Patch: patch})
}

// AddCharacter adds a character sheet, generating an id when none is given
func (s *Store) AddCharacter(character models.Character) models.Character {
	if character.ID == "" {
		character.ID = s.uuid.NewUUID()
	}
	s.Dispatch(AddCharacterAction{Character: character.Clone()})
	return character.Clone()
}

// UpdateCharacter merges patch into a character. Unknown ids are ignored.
func (s *Store) UpdateCharacter(id string, patch models.CharacterPatch) {
	s.Dispatch(UpdateCharacterAction{CharacterID: id, Patch: patch})
}

// ClearChat removes every chat message
func (s *Store) ClearChat() {
	s.Dispatch(ClearChatAction{})
}

// ClearDiceHistory removes every roll and the last roll
func (s *Store) ClearDiceHistory() {
	s.Dispatch(ClearDiceHistoryAction{})
}

// UpdateGameSettings merges patch into the settings
func (s *Store) UpdateGameSettings(patch models.SettingsPatch) {
	s.Dispatch(UpdateGameSettingsAction{Patch: patch})
}

// ToggleSidebar flips the sidebar flag
func (s *Store) ToggleSidebar() {
	s.Dispatch(ToggleSidebarAction{})
}

// SetActivePanel selects the visible panel
func (s *Store) SetActivePanel(panel string) {
	s.Dispatch(SetActivePanelAction{Panel: panel})
}

// Restore replaces the persisted slices with snap
func (s *Store) Restore(snap Snapshot) {
	s.Dispatch(RestoreAction{Snapshot: snap})
}

// Close cancels pending notification removals. The store stays usable
// but no new removals are scheduled.
func (s *Store) Close() {
	s.timersMu.Lock()
	defer s.timersMu.Unlock()

	s.closed = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}
