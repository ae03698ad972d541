package game

import (
	"context"
	"testing"
	"time"

	"github.com/grupodoporao/mesa/internal/common/clock"
	"github.com/grupodoporao/mesa/internal/common/sequence"
	uuidMocks "github.com/grupodoporao/mesa/internal/common/uuid/mocks"
	"github.com/grupodoporao/mesa/internal/dice"
	"github.com/grupodoporao/mesa/internal/models"
	diceService "github.com/grupodoporao/mesa/internal/services/dice"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GameStoreTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockUUID *uuidMocks.MockUUID
	clock    *clock.Fake
	source   *dice.FixedSource
	store    *Store
	ctx      context.Context
	start    time.Time
}

func (s *GameStoreTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.start = time.Date(2025, 4, 5, 20, 0, 0, 0, time.UTC)
	s.clock = clock.NewFake(s.start)
	s.source = dice.NewFixedSource(20, 1, 7)
	s.ctx = context.Background()

	ids := sequence.NewTimeSequence(s.clock)
	diceSvc, err := diceService.New(&diceService.Config{
		Roller: dice.New(&dice.Config{Source: s.source}),
		Clock:  s.clock,
		IDs:    ids,
	})
	s.Require().NoError(err)

	store, err := New(&Config{
		DiceService:   diceSvc,
		Clock:         s.clock,
		IDs:           ids,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.store = store
}

func (s *GameStoreTestSuite) TearDownTest() {
	s.store.Close()
	s.mockCtrl.Finish()
}

func TestGameStoreTestSuite(t *testing.T) {
	suite.Run(t, new(GameStoreTestSuite))
}

func (s *GameStoreTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{})
	s.Equal(ErrNilDiceService, err)
}

func (s *GameStoreTestSuite) TestInitialState() {
	state := s.store.State()
	s.Empty(state.DiceHistory)
	s.Nil(state.LastRoll)
	s.Equal(DefaultSettings(), state.GameSettings)
	s.Equal("dice", state.UI.ActivePanel)
	s.False(state.CurrentSession.Active())
}

func (s *GameStoreTestSuite) TestRollDiceRecordsHistory() {
	out, err := s.store.RollDice(s.ctx, &RollDiceInput{
		Sides:    20,
		Count:    2,
		Modifier: 3,
		User:     "Aventureiro",
	})
	s.Require().NoError(err)

	s.Equal([]int{20, 1}, out.Results)
	s.Equal(24, out.Total)
	s.Equal([]models.Critical{models.CriticalSuccess, models.CriticalFailure}, out.Criticals)

	state := s.store.State()
	s.Require().Len(state.DiceHistory, 1)
	s.Equal(out.Roll, state.DiceHistory[0])
	s.Require().NotNil(state.LastRoll)
	s.Equal(out.Roll, *state.LastRoll)
	s.Equal("Aventureiro", state.LastRoll.User)
	s.Equal(s.start, state.LastRoll.Timestamp)
}

func (s *GameStoreTestSuite) TestRollDiceResultsAreNotSharedWithCaller() {
	out, err := s.store.RollDice(s.ctx, &RollDiceInput{Sides: 20, Count: 3})
	s.Require().NoError(err)
	s.Equal([]int{20, 1, 7}, out.Results)

	out.Results[0] = 999
	out.Roll.Results[1] = 999

	state := s.store.State()
	s.Equal([]int{20, 1, 7}, state.DiceHistory[0].Results)
	s.Equal([]int{20, 1, 7}, state.LastRoll.Results)
}

func (s *GameStoreTestSuite) TestRollDiceHistoryIsNewestFirstAndCapped() {
	var last int64
	for i := 0; i < 55; i++ {
		out, err := s.store.RollDice(s.ctx, &RollDiceInput{Sides: 6, Count: 1})
		s.Require().NoError(err)
		s.Greater(out.Roll.ID, last)
		last = out.Roll.ID
	}

	history := s.store.State().DiceHistory
	s.Len(history, MaxDiceHistory)
	s.Equal(last, history[0].ID)
	for i := 1; i < len(history); i++ {
		s.Greater(history[i-1].ID, history[i].ID)
	}
}

func (s *GameStoreTestSuite) TestRollDiceRejectsInvalidArguments() {
	_, err := s.store.RollDice(s.ctx, &RollDiceInput{Sides: 1, Count: 1})
	s.ErrorIs(err, dice.ErrInvalidArgument)
	s.Empty(s.store.State().DiceHistory)

	_, err = s.store.RollDice(s.ctx, nil)
	s.Equal(ErrNilInput, err)
}

func (s *GameStoreTestSuite) TestAddChatMessageDefaults() {
	msg := s.store.AddChatMessage("Boa noite, mesa!", "", "")

	s.Equal(diceService.DefaultUser, msg.User)
	s.Equal(models.MessageTypeText, msg.Type)
	s.Equal(s.start, msg.Timestamp)
	s.Equal([]models.ChatMessage{msg}, s.store.State().ChatMessages)
}

func (s *GameStoreTestSuite) TestNotificationIsRemovedAfterTTL() {
	first := s.store.AddNotification("Rolagem salva", models.NotificationSuccess)
	s.clock.Advance(2 * time.Second)
	second := s.store.AddNotification("Jogador entrou", "")

	s.Equal(models.NotificationInfo, second.Type)
	s.Len(s.store.State().Notifications, 2)

	s.clock.Advance(3 * time.Second)
	s.Eventually(func() bool {
		notifications := s.store.State().Notifications
		return len(notifications) == 1 && notifications[0].ID == second.ID
	}, time.Second, 5*time.Millisecond)

	s.clock.Advance(2 * time.Second)
	s.Eventually(func() bool { return len(s.store.State().Notifications) == 0 }, time.Second, 5*time.Millisecond)
	s.NotEqual(first.ID, second.ID)
}

func (s *GameStoreTestSuite) TestRemoveNotificationCancelsTimer() {
	n := s.store.AddNotification("Erro ao salvar", models.NotificationError)
	s.True(s.clock.WaitFor(1, time.Second))

	s.store.RemoveNotification(n.ID)
	s.Empty(s.store.State().Notifications)
	s.True(s.clock.WaitFor(0, time.Second))
}

func (s *GameStoreTestSuite) TestCloseCancelsPendingRemovals() {
	s.store.AddNotification("Até logo", models.NotificationInfo)
	s.store.Close()

	s.True(s.clock.WaitFor(0, time.Second))
	s.clock.Advance(time.Minute)
	s.Len(s.store.State().Notifications, 1)
}

func (s *GameStoreTestSuite) TestPlayerLifecycle() {
	s.mockUUID.EXPECT().NewUUID().Return("player-uuid")

	player := s.store.AddPlayer(models.Player{Name: "Ana"})
	s.Equal("player-uuid", player.ID)
	s.Equal(models.PlayerStatusActive, player.Status)

	away := models.PlayerStatusAway
	s.store.UpdatePlayer(player.ID, models.PlayerPatch{Status: &away})
	got, ok := s.store.State().FindPlayer(player.ID)
	s.Require().True(ok)
	s.Equal(models.PlayerStatusAway, got.Status)
	s.Equal("Ana", got.Name)

	before := s.store.State()
	s.store.RemovePlayer("unknown")
	s.Equal(before, s.store.State())

	s.store.RemovePlayer(player.ID)
	s.Empty(s.store.State().Players)
}

func (s *GameStoreTestSuite) TestCharacterLifecycle() {
	character := s.store.AddCharacter(models.Character{
		ID:        "char-1",
		Name:      "Thorin",
		Class:     "Guerreiro",
		Race:      "Anão",
		Level:     1,
		HitPoints: models.HitPoints{Current: 12, Max: 12},
	})

	level := 2
	s.store.UpdateCharacter(character.ID, models.CharacterPatch{
		Level:     &level,
		HitPoints: &models.HitPoints{Current: 20, Max: 20},
	})

	got, ok := s.store.State().FindCharacter("char-1")
	s.Require().True(ok)
	s.Equal(2, got.Level)
	s.Equal(20, got.HitPoints.Max)
	s.Equal("Thorin", got.Name)
}

func (s *GameStoreTestSuite) TestCharacterDataIsNotSharedWithCaller() {
	attrs := map[string]int{"str": 16}
	equipment := []string{"Machado"}
	added := s.store.AddCharacter(models.Character{ID: "char-1", Attributes: attrs, Equipment: equipment})

	attrs["str"] = 1
	equipment[0] = "Graveto"
	added.Attributes["str"] = 2

	got, ok := s.store.State().FindCharacter("char-1")
	s.Require().True(ok)
	s.Equal(16, got.Attributes["str"])
	s.Equal([]string{"Machado"}, got.Equipment)

	patchAttrs := map[string]int{"dex": 14}
	patchEquipment := []string{"Arco"}
	s.store.UpdateCharacter("char-1", models.CharacterPatch{Attributes: patchAttrs, Equipment: patchEquipment})
	patchAttrs["dex"] = 3
	patchEquipment[0] = "Graveto"

	got, _ = s.store.State().FindCharacter("char-1")
	s.Equal(map[string]int{"dex": 14}, got.Attributes)
	s.Equal([]string{"Arco"}, got.Equipment)
}

func (s *GameStoreTestSuite) TestSessionNotes() {
	session := s.store.StartSession("A Cripta Esquecida")
	s.True(session.Active())
	s.Equal(s.start, *session.Date)

	note := s.store.AddSessionNote("Encontraram a chave", "Mestre da Mesa", "")
	s.Equal(DefaultNoteType, note.Type)
	s.Equal([]models.SessionNote{note}, s.store.State().CurrentSession.Notes)

	s.store.EndSession()
	s.Equal(DefaultSession(), s.store.State().CurrentSession)
}

func (s *GameStoreTestSuite) TestSubscribersSeeEveryAction() {
	var types []ActionType
	unsubscribe := s.store.Subscribe(func(_ State, action Action) {
		types = append(types, action.Type())
	})

	s.store.ToggleSidebar()
	s.store.SetActivePanel("chat")
	s.store.ClearChat()
	unsubscribe()
	s.store.ClearDiceHistory()

	s.Equal([]ActionType{ActionToggleSidebar, ActionSetActivePanel, ActionClearChat}, types)
}

func (s *GameStoreTestSuite) TestRestoreReplacesPersistedSlices() {
	s.store.SetActivePanel("chat")

	snap := DefaultSnapshot()
	snap.Players = []models.Player{{ID: "p1", Name: "Ana", Status: models.PlayerStatusOffline}}
	s.store.Restore(snap)

	state := s.store.State()
	s.Equal(snap.Players, state.Players)
	s.Equal("chat", state.UI.ActivePanel)
	s.Equal(snap, state.Snapshot())
}
