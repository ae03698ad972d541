package dice

import (
	"context"
	"testing"
	"time"

	"github.com/grupodoporao/mesa/internal/common/clock"
	"github.com/grupodoporao/mesa/internal/common/clock/mocks"
	"github.com/grupodoporao/mesa/internal/common/sequence"
	"github.com/grupodoporao/mesa/internal/dice"
	diceMocks "github.com/grupodoporao/mesa/internal/dice/mocks"
	"github.com/grupodoporao/mesa/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DiceServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRoller *diceMocks.MockRoller
	mockClock  *mocks.MockClock
	service    Service
	ctx        context.Context
	testTime   time.Time
}

func (s *DiceServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		Roller: s.mockRoller,
		Clock:  s.mockClock,
		IDs:    sequence.NewTimeSequence(s.mockClock),
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *DiceServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DiceServiceTestSuite))
}

func (s *DiceServiceTestSuite) TestStandardRollSumsResultsAndModifier() {
	s.mockRoller.EXPECT().Roll(6, 3).Return([]int{2, 5, 6}, nil)

	out, err := s.service.ComputeRoll(s.ctx, &ComputeRollInput{
		Sides:    6,
		Count:    3,
		Modifier: -2,
		User:     "Aventureiro",
	})
	s.Require().NoError(err)

	s.Equal(&models.DiceRoll{
		ID:        s.testTime.UnixMilli(),
		Timestamp: s.testTime,
		RollType:  models.RollTypeStandard,
		Sides:     6,
		Count:     3,
		Modifier:  -2,
		Results:   []int{2, 5, 6},
		Total:     11,
		User:      "Aventureiro",
	}, out.Roll)
	s.Equal([]models.Critical{models.CriticalNone, models.CriticalNone, models.CriticalSuccess}, out.Criticals)
}

func (s *DiceServiceTestSuite) TestAdvantageForcesTwoDiceAndKeepsHighest() {
	s.mockRoller.EXPECT().Roll(20, 2).Return([]int{4, 17}, nil)

	out, err := s.service.ComputeRoll(s.ctx, &ComputeRollInput{
		Sides:    20,
		Count:    5,
		Modifier: 3,
		Mode:     models.RollTypeAdvantage,
	})
	s.Require().NoError(err)

	s.Equal(2, out.Roll.Count)
	s.Equal([]int{4, 17}, out.Roll.Results)
	s.Equal(20, out.Roll.Total)
	s.Equal(models.RollTypeAdvantage, out.Roll.RollType)
	s.Equal(DefaultUser, out.Roll.User)
}

func (s *DiceServiceTestSuite) TestDisadvantageKeepsLowest() {
	s.mockRoller.EXPECT().Roll(20, 2).Return([]int{4, 17}, nil)

	out, err := s.service.ComputeRoll(s.ctx, &ComputeRollInput{
		Sides:    20,
		Count:    1,
		Modifier: 3,
		Mode:     models.RollTypeDisadvantage,
	})
	s.Require().NoError(err)
	s.Equal(7, out.Roll.Total)
}

func (s *DiceServiceTestSuite) TestAdvantageOnOtherDiceStillSelectsFromTwo() {
	s.mockRoller.EXPECT().Roll(8, 2).Return([]int{8, 3}, nil)

	out, err := s.service.ComputeRoll(s.ctx, &ComputeRollInput{
		Sides: 8,
		Count: 1,
		Mode:  models.RollTypeAdvantage,
	})
	s.Require().NoError(err)
	s.Equal(8, out.Roll.Total)
	s.Equal([]models.Critical{models.CriticalSuccess, models.CriticalNone}, out.Criticals)
}

func (s *DiceServiceTestSuite) TestInvalidArgumentsNeverReachRoller() {
	tcs := []*ComputeRollInput{
		{Sides: 1, Count: 1},
		{Sides: 20, Count: 0},
		{Sides: 0, Count: 0, Mode: models.RollTypeAdvantage},
		{Sides: 20, Count: 1, Mode: "lucky"},
	}

	for _, tc := range tcs {
		out, err := s.service.ComputeRoll(s.ctx, tc)
		s.ErrorIs(err, dice.ErrInvalidArgument)
		s.Nil(out)
	}
}

func (s *DiceServiceTestSuite) TestNilInput() {
	_, err := s.service.ComputeRoll(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)
}

func (s *DiceServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Clock: s.mockClock, IDs: sequence.NewTimeSequence(s.mockClock)})
	s.ErrorIs(err, ErrNilRoller)

	_, err = New(&Config{Roller: s.mockRoller, IDs: sequence.NewTimeSequence(s.mockClock)})
	s.ErrorIs(err, ErrNilClock)

	_, err = New(&Config{Roller: s.mockRoller, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilIDGenerator)
}

func TestStandardRollPropertyWithRealRoller(t *testing.T) {
	c := clock.NewFake(time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC))
	svc, err := New(&Config{
		Roller: dice.New(&dice.Config{Seed: 99}),
		Clock:  c,
		IDs:    sequence.NewTimeSequence(c),
	})
	require.NoError(t, err)

	for sides := 2; sides <= 100; sides += 7 {
		for count := 1; count <= 6; count++ {
			out, err := svc.ComputeRoll(context.Background(), &ComputeRollInput{
				Sides:    sides,
				Count:    count,
				Modifier: count - 3,
			})
			require.NoError(t, err, "d%d x%d", sides, count)
			require.Len(t, out.Roll.Results, count)

			sum := 0
			for _, r := range out.Roll.Results {
				require.GreaterOrEqual(t, r, 1)
				require.LessOrEqual(t, r, sides)
				sum += r
			}
			assert.Equal(t, sum+count-3, out.Roll.Total)
		}
	}
}

func TestClassify(t *testing.T) {
	tcs := []struct {
		result int
		sides  int
		want   models.Critical
	}{
		{result: 1, sides: 20, want: models.CriticalFailure},
		{result: 20, sides: 20, want: models.CriticalSuccess},
		{result: 10, sides: 20, want: models.CriticalNone},
		{result: 6, sides: 6, want: models.CriticalSuccess},
		{result: 2, sides: 2, want: models.CriticalSuccess},
		{result: 1, sides: 2, want: models.CriticalFailure},
	}

	for _, tc := range tcs {
		assert.Equal(t, tc.want, Classify(tc.result, tc.sides), "Classify(%d, %d)", tc.result, tc.sides)
	}
}
