package invites

import (
	"context"
	"testing"
	"time"

	"github.com/grupodoporao/mesa/internal/common/clock"
	"github.com/grupodoporao/mesa/internal/common/sequence"
	"github.com/grupodoporao/mesa/internal/models"
	"github.com/grupodoporao/mesa/internal/repositories/storage"
	"github.com/stretchr/testify/suite"
)

type InvitesRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	clock   *clock.Fake
	storage storage.Store
	repo    Repository
}

func (s *InvitesRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewFake(time.Date(2025, 4, 5, 18, 0, 0, 0, time.UTC))
	s.storage = storage.NewMemory()

	repo, err := New(&Config{
		Storage: s.storage,
		Clock:   s.clock,
		IDs:     sequence.NewTimeSequence(s.clock),
	})
	s.Require().NoError(err)
	s.repo = repo
}

func TestInvitesRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(InvitesRepositoryTestSuite))
}

func (s *InvitesRepositoryTestSuite) invite(tag string) *models.InvitedPlayer {
	p, err := s.repo.InvitePlayer(s.ctx, &InvitePlayerInput{Tag: tag})
	s.Require().NoError(err)
	return p
}

func (s *InvitesRepositoryTestSuite) TestInviteByTag() {
	p := s.invite("MAGE456")

	s.Equal("mage456", p.Tag)
	s.Equal("Maria Santos", p.Name)
	s.Equal(models.InviteStatusPending, p.Status)
	s.Equal("Maria Santos - Mago", p.Character.Name)
	s.Equal(3, p.Character.Level)
	s.Equal(DefaultLimits(), p.Limits)
	s.Len(p.Character.Equipment, 4)

	list, err := s.repo.ListInvites(s.ctx)
	s.Require().NoError(err)
	s.Equal([]models.InvitedPlayer{*p}, list)
}

func (s *InvitesRepositoryTestSuite) TestUnknownTag() {
	_, err := s.repo.InvitePlayer(s.ctx, &InvitePlayerInput{Tag: "bard999"})
	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *InvitesRepositoryTestSuite) TestDuplicateInvite() {
	s.invite("warrior123")

	_, err := s.repo.InvitePlayer(s.ctx, &InvitePlayerInput{Tag: "Warrior123"})
	s.ErrorIs(err, ErrAlreadyInvited)
}

func (s *InvitesRepositoryTestSuite) TestUpdateStatusAndSheet() {
	p := s.invite("rogue789")

	accepted := models.InviteStatusAccepted
	remove := 0
	updated, err := s.repo.UpdateInvite(s.ctx, &UpdateInviteInput{
		InviteID:        p.ID,
		Status:          &accepted,
		HP:              &models.HitPoints{Current: 40, Max: 55},
		Attributes:      map[string]int{"dexterity": 18},
		RemoveEquipment: &remove,
		AddEquipment:    "Adagas Gêmeas",
	})
	s.Require().NoError(err)

	s.Equal(models.InviteStatusAccepted, updated.Status)
	s.Equal(55, updated.Character.HP.Max)
	s.Equal(18, updated.Character.Attributes["dexterity"])
	s.Equal(14, updated.Character.Attributes["strength"])
	s.Equal([]string{"Armadura de Couro", "Escudo", "Poção de Cura", "Adagas Gêmeas"}, updated.Character.Equipment)

	list, err := s.repo.ListInvites(s.ctx)
	s.Require().NoError(err)
	s.Equal(*updated, list[0])
}

func (s *InvitesRepositoryTestSuite) TestUpdateRejectsBadInput() {
	p := s.invite("cleric101")

	bogus := models.InviteStatus("maybe")
	_, err := s.repo.UpdateInvite(s.ctx, &UpdateInviteInput{InviteID: p.ID, Status: &bogus})
	s.ErrorIs(err, ErrInvalidStatus)

	idx := 10
	_, err = s.repo.UpdateInvite(s.ctx, &UpdateInviteInput{InviteID: p.ID, RemoveEquipment: &idx})
	s.ErrorIs(err, ErrInvalidEquipmentIndex)

	_, err = s.repo.UpdateInvite(s.ctx, &UpdateInviteInput{InviteID: 1})
	s.ErrorIs(err, ErrInviteNotFound)
}

func (s *InvitesRepositoryTestSuite) TestRemove() {
	first := s.invite("warrior123")
	s.clock.Advance(time.Second)
	second := s.invite("mage456")

	s.Require().NoError(s.repo.RemoveInvite(s.ctx, &RemoveInviteInput{InviteID: first.ID}))
	s.ErrorIs(s.repo.RemoveInvite(s.ctx, &RemoveInviteInput{InviteID: first.ID}), ErrInviteNotFound)

	list, err := s.repo.ListInvites(s.ctx)
	s.Require().NoError(err)
	s.Equal([]models.InvitedPlayer{*second}, list)
}
