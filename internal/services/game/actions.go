package game

import (
	"github.com/grupodoporao/mesa/internal/models"
)

// ActionType tags a state transition
type ActionType string

const (
	ActionRollDice           ActionType = "ROLL_DICE"
	ActionAddChatMessage     ActionType = "ADD_CHAT_MESSAGE"
	ActionAddPlayer          ActionType = "ADD_PLAYER"
	ActionRemovePlayer       ActionType = "REMOVE_PLAYER"
	ActionUpdatePlayer       ActionType = "UPDATE_PLAYER"
	ActionAddCharacter       ActionType = "ADD_CHARACTER"
	ActionUpdateCharacter    ActionType = "UPDATE_CHARACTER"
	ActionAddSessionNote     ActionType = "ADD_SESSION_NOTE"
	ActionStartSession       ActionType = "START_SESSION"
	ActionEndSession         ActionType = "END_SESSION"
	ActionUpdateGameSettings ActionType = "UPDATE_GAME_SETTINGS"
	ActionToggleSidebar      ActionType = "TOGGLE_SIDEBAR"
	ActionSetActivePanel     ActionType = "SET_ACTIVE_PANEL"
	ActionAddNotification    ActionType = "ADD_NOTIFICATION"
	ActionRemoveNotification ActionType = "REMOVE_NOTIFICATION"
	ActionClearChat          ActionType = "CLEAR_CHAT"
	ActionClearDiceHistory   ActionType = "CLEAR_DICE_HISTORY"
	ActionRestore            ActionType = "RESTORE"
)

// Action is a request to change the game state. Actions carry fully
// built records (ids and timestamps included) so Reduce stays pure.
type Action interface {
	Type() ActionType
}

type RollDiceAction struct {
	Roll models.DiceRoll
}

type AddChatMessageAction struct {
	Message models.ChatMessage
}

type AddPlayerAction struct {
	Player models.Player
}

type RemovePlayerAction struct {
	PlayerID string
}

type UpdatePlayerAction struct {
	PlayerID string
	Patch    models.PlayerPatch
}

type AddCharacterAction struct {
	Character models.Character
}

type UpdateCharacterAction struct {
	CharacterID string
	Patch       models.CharacterPatch
}

type AddSessionNoteAction struct {
	Note models.SessionNote
}

type StartSessionAction struct {
	Session models.GameSession
}

type EndSessionAction struct{}

type UpdateGameSettingsAction struct {
	Patch models.SettingsPatch
}

type ToggleSidebarAction struct{}

type SetActivePanelAction struct {
	Panel string
}

type AddNotificationAction struct {
	Notification models.Notification
}

type RemoveNotificationAction struct {
	NotificationID int64
}

type ClearChatAction struct{}

type ClearDiceHistoryAction struct{}

// RestoreAction replaces the persisted slices with a loaded snapshot
type RestoreAction struct {
	Snapshot Snapshot
}

func (RollDiceAction) Type() ActionType           { return ActionRollDice }
func (AddChatMessageAction) Type() ActionType     { return ActionAddChatMessage }
func (AddPlayerAction) Type() ActionType          { return ActionAddPlayer }
func (RemovePlayerAction) Type() ActionType       { return ActionRemovePlayer }
func (UpdatePlayerAction) Type() ActionType       { return ActionUpdatePlayer }
func (AddCharacterAction) Type() ActionType       { return ActionAddCharacter }
func (UpdateCharacterAction) Type() ActionType    { return ActionUpdateCharacter }
func (AddSessionNoteAction) Type() ActionType     { return ActionAddSessionNote }
func (StartSessionAction) Type() ActionType       { return ActionStartSession }
func (EndSessionAction) Type() ActionType         { return ActionEndSession }
func (UpdateGameSettingsAction) Type() ActionType { return ActionUpdateGameSettings }
func (ToggleSidebarAction) Type() ActionType      { return ActionToggleSidebar }
func (SetActivePanelAction) Type() ActionType     { return ActionSetActivePanel }
func (AddNotificationAction) Type() ActionType    { return ActionAddNotification }
func (RemoveNotificationAction) Type() ActionType { return ActionRemoveNotification }
func (ClearChatAction) Type() ActionType          { return ActionClearChat }
func (ClearDiceHistoryAction) Type() ActionType   { return ActionClearDiceHistory }
func (RestoreAction) Type() ActionType            { return ActionRestore }

// AffectsPersistedState reports whether an action can change a slice
// that is written to durable storage. Restores are excluded since they
// only echo what storage already holds.
func AffectsPersistedState(action Action) bool {
	switch action.(type) {
	case ToggleSidebarAction, SetActivePanelAction,
		AddNotificationAction, RemoveNotificationAction,
		RestoreAction:
		return false
	}
	return true
}
