package game

import (
	"github.com/grupodoporao/mesa/internal/models"
)

// Reduce computes the next state. It never mutates its input; slices an
// action does not touch are carried over as is. Unknown actions and
// updates or removals of unknown ids return the state unchanged.
// Revision goes up only when a persisted slice actually changes.
func Reduce(state State, action Action) State {
	next, changed := reduce(state, action)
	if changed && AffectsPersistedState(action) {
		next.Revision++
	}
	return next
}

func reduce(state State, action Action) (State, bool) {
	switch a := action.(type) {
	case RollDiceAction:
		kept := min(len(state.DiceHistory), MaxDiceHistory-1)
		history := make([]models.DiceRoll, 0, kept+1)
		history = append(history, a.Roll)
		history = append(history, state.DiceHistory[:kept]...)

		last := a.Roll
		state.DiceHistory = history
		state.LastRoll = &last
		return state, true

	case AddChatMessageAction:
		state.ChatMessages = appendCopy(state.ChatMessages, a.Message)
		return state, true

	case AddPlayerAction:
		if i := indexPlayer(state.Players, a.Player.ID); i >= 0 {
			state.Players = replaceAt(state.Players, i, a.Player)
			return state, true
		}
		state.Players = appendCopy(state.Players, a.Player)
		return state, true

	case RemovePlayerAction:
		i := indexPlayer(state.Players, a.PlayerID)
		if i < 0 {
			return state, false
		}
		state.Players = removeAt(state.Players, i)
		return state, true

	case UpdatePlayerAction:
		i := indexPlayer(state.Players, a.PlayerID)
		if i < 0 {
			return state, false
		}
		state.Players = replaceAt(state.Players, i, a.Patch.Apply(state.Players[i]))
		return state, true

	case AddCharacterAction:
		state.Characters = appendCopy(state.Characters, a.Character)
		return state, true

	case UpdateCharacterAction:
		i := indexCharacter(state.Characters, a.CharacterID)
		if i < 0 {
			return state, false
		}
		state.Characters = replaceAt(state.Characters, i, a.Patch.Apply(state.Characters[i]))
		return state, true

	case AddSessionNoteAction:
		session := state.CurrentSession
		session.Notes = appendCopy(session.Notes, a.Note)
		state.CurrentSession = session
		return state, true

	case StartSessionAction:
		session := a.Session
		session.Notes = []models.SessionNote{}
		state.CurrentSession = session
		return state, true

	case EndSessionAction:
		state.CurrentSession = DefaultSession()
		return state, true

	case UpdateGameSettingsAction:
		settings := a.Patch.Apply(state.GameSettings)
		changed := settings != state.GameSettings
		state.GameSettings = settings
		return state, changed

	case ToggleSidebarAction:
		state.UI.SidebarOpen = !state.UI.SidebarOpen
		return state, true

	case SetActivePanelAction:
		state.UI.ActivePanel = a.Panel
		return state, true

	case AddNotificationAction:
		state.Notifications = appendCopy(state.Notifications, a.Notification)
		return state, true

	case RemoveNotificationAction:
		for i, n := range state.Notifications {
			if n.ID == a.NotificationID {
				state.Notifications = removeAt(state.Notifications, i)
				return state, true
			}
		}
		return state, false

	case ClearChatAction:
		state.ChatMessages = []models.ChatMessage{}
		return state, true

	case ClearDiceHistoryAction:
		state.DiceHistory = []models.DiceRoll{}
		state.LastRoll = nil
		return state, true

	case RestoreAction:
		snap := a.Snapshot.Normalize()
		state.DiceHistory = snap.DiceHistory
		state.LastRoll = nil
		state.Players = snap.Players
		state.Characters = snap.Characters
		state.ChatMessages = snap.ChatMessages
		state.CurrentSession = snap.CurrentSession
		state.GameSettings = snap.GameSettings
		return state, true
	}

	return state, false
}

func indexPlayer(players []models.Player, id string) int {
	for i, p := range players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func indexCharacter(characters []models.Character, id string) int {
	for i, c := range characters {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// appendCopy returns a new slice; it never writes into the spare
// capacity of s, which an older state may still be reading.
func appendCopy[T any](s []T, v T) []T {
	out := make([]T, len(s), len(s)+1)
	copy(out, s)
	return append(out, v)
}

func replaceAt[T any](s []T, i int, v T) []T {
	out := make([]T, len(s))
	copy(out, s)
	out[i] = v
	return out
}

func removeAt[T any](s []T, i int) []T {
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}
