// Package auth holds who is logged in and as which role.
//
// Authentication here is a placeholder: credentials are checked against
// a fixed table and nothing is protected by it.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/grupodoporao/mesa/internal/common/clock"
	"github.com/grupodoporao/mesa/internal/common/reducer"
	"github.com/grupodoporao/mesa/internal/dice"
	"github.com/grupodoporao/mesa/internal/models"
)

// Store is the auth state container
type Store struct {
	state      *reducer.Store[State, Action]
	clock      clock.Clock
	roller     dice.Roller
	loginDelay time.Duration
	logger     *slog.Logger
}

// New creates a new auth store
func New(cfg *Config) (*Store, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}

	delay := cfg.LoginDelay
	if delay == 0 {
		delay = DefaultLoginDelay
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		state:      reducer.New(InitialState(), Reduce),
		clock:      cfg.Clock,
		roller:     cfg.Roller,
		loginDelay: delay,
		logger:     logger.With("component", "auth"),
	}, nil
}

// State returns the current auth state
func (s *Store) State() State {
	return s.state.State()
}

// Status returns the phase of the current state
func (s *Store) Status() Status {
	return s.State().Status()
}

// Dispatch applies an action and returns the resulting state
func (s *Store) Dispatch(action Action) State {
	return s.state.Dispatch(action)
}

// Subscribe registers fn to be called after every dispatch. fn must not
// dispatch synchronously.
func (s *Store) Subscribe(fn func(State, Action)) func() {
	return s.state.Subscribe(fn)
}

// Login checks credentials for the given role after the simulated delay.
// Concurrent logins are not serialized; whichever finishes last decides
// the final state.
func (s *Store) Login(ctx context.Context, creds Credentials, userType models.UserType) LoginResult {
	s.Dispatch(LoginStartAction{})

	if err := s.wait(ctx); err != nil {
		s.logger.Warn("login aborted", "user_type", userType, "error", err)
		return s.fail(err)
	}

	acc, ok := accounts[userType]
	if !ok || creds.Username != acc.username || creds.Password != acc.password {
		s.logger.Info("login rejected", "user_type", userType, "username", creds.Username)
		return s.fail(ErrInvalidCredentials)
	}

	user := s.newUser(acc, userType)
	s.Dispatch(LoginSuccessAction{User: user, UserType: userType})

	s.logger.Info("login succeeded", "user_id", user.ID, "user_type", userType)
	return LoginResult{Success: true}
}

// Logout resets the state to logged out
func (s *Store) Logout() {
	s.Dispatch(LogoutAction{})
}

// UpdateUser merges patch into the current user. It does nothing while
// logged out.
func (s *Store) UpdateUser(patch models.UserPatch) {
	s.Dispatch(UpdateUserAction{Patch: patch})
}

// Restore logs in from a stored snapshot. Invalid snapshots are ignored.
func (s *Store) Restore(snap Snapshot) {
	s.Dispatch(RestoreAction{Snapshot: snap})
}

func (s *Store) fail(err error) LoginResult {
	msg := err.Error()
	s.Dispatch(LoginErrorAction{Error: msg})
	return LoginResult{Success: false, Error: msg}
}

func (s *Store) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.loginDelay < 0 {
		return nil
	}

	done := make(chan struct{})
	timer := s.clock.AfterFunc(s.loginDelay, func() { close(done) })

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	}
}

func (s *Store) newUser(acc account, userType models.UserType) models.User {
	stats := models.UserStats{
		SessionsPlayed: s.rollOne(50),
		DiceRolled:     s.rollOne(901) + 99,
	}
	if userType == models.UserTypePlayer {
		stats.CharactersCreated = s.rollOne(10)
	}

	return models.User{
		ID:          acc.id,
		Username:    acc.username,
		DisplayName: acc.displayName,
		Preferences: models.UserPreferences{
			Theme:         "dark",
			Notifications: true,
			SoundEffects:  true,
		},
		Stats: stats,
	}
}

// rollOne returns a value in [1, sides], or 0 if the roller fails
func (s *Store) rollOne(sides int) int {
	results, err := s.roller.Roll(sides, 1)
	if err != nil || len(results) == 0 {
		s.logger.Warn("failed to roll profile stats", "sides", sides, "error", err)
		return 0
	}
	return results[0]
}
