package game

import (
	"testing"
	"time"

	"github.com/grupodoporao/mesa/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reducerTime = time.Date(2025, 4, 5, 20, 0, 0, 0, time.UTC)

func rollWithID(id int64) models.DiceRoll {
	return models.DiceRoll{
		ID:        id,
		Timestamp: reducerTime,
		RollType:  models.RollTypeStandard,
		Sides:     20,
		Count:     1,
		Results:   []int{10},
		Total:     10,
		User:      "Mestre da Mesa",
	}
}

func TestReduceRollDiceKeepsNewestFifty(t *testing.T) {
	state := InitialState()
	for i := int64(1); i <= 60; i++ {
		state = Reduce(state, RollDiceAction{Roll: rollWithID(i)})
	}

	require.Len(t, state.DiceHistory, MaxDiceHistory)
	assert.Equal(t, int64(60), state.DiceHistory[0].ID)
	assert.Equal(t, int64(11), state.DiceHistory[MaxDiceHistory-1].ID)
	require.NotNil(t, state.LastRoll)
	assert.Equal(t, int64(60), state.LastRoll.ID)
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	before := Reduce(InitialState(), AddPlayerAction{Player: models.Player{ID: "p1", Name: "Ana", Status: models.PlayerStatusActive}})
	before = Reduce(before, RollDiceAction{Roll: rollWithID(1)})

	name := "Bia"
	after := Reduce(before, UpdatePlayerAction{PlayerID: "p1", Patch: models.PlayerPatch{Name: &name}})
	after = Reduce(after, RollDiceAction{Roll: rollWithID(2)})

	assert.Equal(t, "Ana", before.Players[0].Name)
	assert.Equal(t, "Bia", after.Players[0].Name)
	assert.Len(t, before.DiceHistory, 1)
	assert.Len(t, after.DiceHistory, 2)
	assert.Equal(t, int64(1), before.LastRoll.ID)
}

func TestReduceSharesUntouchedSlices(t *testing.T) {
	state := Reduce(InitialState(), AddPlayerAction{Player: models.Player{ID: "p1"}})
	next := Reduce(state, AddChatMessageAction{Message: models.ChatMessage{ID: 1, Message: "oi"}})

	require.Len(t, next.Players, 1)
	assert.Same(t, &state.Players[0], &next.Players[0])
}

func TestReduceUnknownIDsAreNoOps(t *testing.T) {
	state := Reduce(InitialState(), AddPlayerAction{Player: models.Player{ID: "p1", Name: "Ana"}})

	name := "x"
	assert.Equal(t, state, Reduce(state, RemovePlayerAction{PlayerID: "missing"}))
	assert.Equal(t, state, Reduce(state, UpdatePlayerAction{PlayerID: "missing", Patch: models.PlayerPatch{Name: &name}}))
	assert.Equal(t, state, Reduce(state, UpdateCharacterAction{CharacterID: "missing", Patch: models.CharacterPatch{Name: &name}}))
	assert.Equal(t, state, Reduce(state, RemoveNotificationAction{NotificationID: 42}))
}

func TestReduceRevisionTracksPersistedChanges(t *testing.T) {
	state := Reduce(InitialState(), AddPlayerAction{Player: models.Player{ID: "p1", Name: "Ana"}})
	assert.Equal(t, uint64(1), state.Revision)

	name := "x"
	state = Reduce(state, RemovePlayerAction{PlayerID: "missing"})
	state = Reduce(state, UpdatePlayerAction{PlayerID: "missing", Patch: models.PlayerPatch{Name: &name}})
	state = Reduce(state, UpdateCharacterAction{CharacterID: "missing", Patch: models.CharacterPatch{Name: &name}})
	state = Reduce(state, UpdateGameSettingsAction{})
	state = Reduce(state, ToggleSidebarAction{})
	state = Reduce(state, RestoreAction{Snapshot: state.Snapshot()})
	assert.Equal(t, uint64(1), state.Revision)

	state = Reduce(state, UpdatePlayerAction{PlayerID: "p1", Patch: models.PlayerPatch{Name: &name}})
	assert.Equal(t, uint64(2), state.Revision)
}

func TestReduceAddPlayerWithExistingIDReplaces(t *testing.T) {
	state := Reduce(InitialState(), AddPlayerAction{Player: models.Player{ID: "p1", Name: "Ana"}})
	state = Reduce(state, AddPlayerAction{Player: models.Player{ID: "p1", Name: "Ana Clara"}})

	require.Len(t, state.Players, 1)
	assert.Equal(t, "Ana Clara", state.Players[0].Name)
}

func TestReduceEmptySettingsPatchIsIdempotent(t *testing.T) {
	state := InitialState()
	assert.Equal(t, state, Reduce(state, UpdateGameSettingsAction{}))
}

func TestReduceSettingsPatchMergesFields(t *testing.T) {
	theme := "light"
	state := Reduce(InitialState(), UpdateGameSettingsAction{Patch: models.SettingsPatch{Theme: &theme}})

	assert.Equal(t, models.GameSettings{
		DiceSound: true,
		AutoSave:  true,
		Theme:     "light",
		Language:  "pt-BR",
	}, state.GameSettings)
}

func TestReduceSessionLifecycle(t *testing.T) {
	state := Reduce(InitialState(), StartSessionAction{Session: models.GameSession{
		ID:    7,
		Name:  "A Cripta",
		Date:  &reducerTime,
		Notes: []models.SessionNote{{ID: 1}},
	}})
	assert.True(t, state.CurrentSession.Active())
	assert.Empty(t, state.CurrentSession.Notes)

	state = Reduce(state, AddSessionNoteAction{Note: models.SessionNote{ID: 2, Content: "O dragão acordou"}})
	require.Len(t, state.CurrentSession.Notes, 1)
	assert.Equal(t, "O dragão acordou", state.CurrentSession.Notes[0].Content)

	state = Reduce(state, EndSessionAction{})
	assert.Equal(t, DefaultSession(), state.CurrentSession)
}

func TestReduceUIActions(t *testing.T) {
	state := Reduce(InitialState(), ToggleSidebarAction{})
	assert.True(t, state.UI.SidebarOpen)

	state = Reduce(state, ToggleSidebarAction{})
	assert.False(t, state.UI.SidebarOpen)

	state = Reduce(state, SetActivePanelAction{Panel: "chat"})
	assert.Equal(t, "chat", state.UI.ActivePanel)
}

func TestReduceClearActions(t *testing.T) {
	state := Reduce(InitialState(), RollDiceAction{Roll: rollWithID(1)})
	state = Reduce(state, AddChatMessageAction{Message: models.ChatMessage{ID: 1}})

	state = Reduce(state, ClearDiceHistoryAction{})
	assert.Empty(t, state.DiceHistory)
	assert.NotNil(t, state.DiceHistory)
	assert.Nil(t, state.LastRoll)

	state = Reduce(state, ClearChatAction{})
	assert.Empty(t, state.ChatMessages)
	assert.NotNil(t, state.ChatMessages)
}

func TestReduceRestoreNormalizesSnapshot(t *testing.T) {
	history := make([]models.DiceRoll, 0, 55)
	for i := int64(55); i >= 1; i-- {
		history = append(history, rollWithID(i))
	}

	state := Reduce(InitialState(), RollDiceAction{Roll: rollWithID(100)})
	state = Reduce(state, SetActivePanelAction{Panel: "notes"})
	state = Reduce(state, RestoreAction{Snapshot: Snapshot{
		DiceHistory:  history,
		GameSettings: DefaultSettings(),
	}})

	assert.Len(t, state.DiceHistory, MaxDiceHistory)
	assert.Equal(t, int64(55), state.DiceHistory[0].ID)
	assert.Nil(t, state.LastRoll)
	assert.NotNil(t, state.Players)
	assert.NotNil(t, state.Characters)
	assert.NotNil(t, state.ChatMessages)
	assert.NotNil(t, state.CurrentSession.Notes)
	assert.Equal(t, "notes", state.UI.ActivePanel)
}

func TestAffectsPersistedState(t *testing.T) {
	assert.True(t, AffectsPersistedState(RollDiceAction{}))
	assert.True(t, AffectsPersistedState(UpdateGameSettingsAction{}))
	assert.True(t, AffectsPersistedState(ClearChatAction{}))
	assert.False(t, AffectsPersistedState(ToggleSidebarAction{}))
	assert.False(t, AffectsPersistedState(AddNotificationAction{}))
	assert.False(t, AffectsPersistedState(RestoreAction{}))
}
