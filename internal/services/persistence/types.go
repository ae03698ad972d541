package persistence

import (
	"log/slog"
	"time"

	"github.com/grupodoporao/mesa/internal/common/clock"
	"github.com/grupodoporao/mesa/internal/repositories/storage"
	"github.com/grupodoporao/mesa/internal/services/auth"
	"github.com/grupodoporao/mesa/internal/services/game"
)

// Storage keys
const (
	GameStateKey = "game-state"
	AuthStateKey = "auth-state"
)

// DefaultWriteTimeout bounds a single storage call
const DefaultWriteTimeout = 5 * time.Second

// GameStore is the part of the game store the bridge needs
type GameStore interface {
	State() game.State
	Subscribe(fn func(game.State, game.Action)) func()
	Restore(snap game.Snapshot)
}

// AuthStore is the part of the auth store the bridge needs
type AuthStore interface {
	State() auth.State
	Subscribe(fn func(auth.State, auth.Action)) func()
	Restore(snap auth.Snapshot)
}

// Config holds configuration for the persistence bridge
type Config struct {
	// Debounce overrides DefaultDebounce when positive
	Debounce time.Duration

	// Logger defaults to slog.Default()
	Logger *slog.Logger

	Storage storage.Store
	Game    GameStore
	Auth    AuthStore
	Clock   clock.Clock
}
