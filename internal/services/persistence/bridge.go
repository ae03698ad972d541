// Package persistence keeps the game and auth stores in durable storage.
// Each store is loaded once at startup and written back, debounced,
// whenever a persisted part of it changes. Storage failures are logged
// and never reach the stores.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/grupodoporao/mesa/internal/repositories/storage"
	"github.com/grupodoporao/mesa/internal/services/auth"
	"github.com/grupodoporao/mesa/internal/services/game"
)

// Bridge connects the stores to a storage backend
type Bridge struct {
	storage storage.Store
	game    GameStore
	auth    AuthStore
	logger  *slog.Logger

	gameWrites *Debouncer
	authWrites *Debouncer

	// last game revision a write was scheduled for
	gameRevision atomic.Uint64

	mu          sync.Mutex
	unsubscribe []func()
}

// New creates a persistence bridge. Nothing is read or written until
// Load and Attach are called.
func New(cfg *Config) (*Bridge, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Storage == nil {
		return nil, ErrNilStorage
	}
	if cfg.Game == nil {
		return nil, ErrNilGameStore
	}
	if cfg.Auth == nil {
		return nil, ErrNilAuthStore
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	delay := cfg.Debounce
	if delay <= 0 {
		delay = DefaultDebounce
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	b := &Bridge{
		storage: cfg.Storage,
		game:    cfg.Game,
		auth:    cfg.Auth,
		logger:  logger.With("component", "persistence"),
	}
	b.gameWrites = NewDebouncer(cfg.Clock, delay, b.writeGame)
	b.authWrites = NewDebouncer(cfg.Clock, delay, b.writeAuth)
	return b, nil
}

// LoadGame restores the game store from storage. It reports whether a
// snapshot was restored. A value that cannot be decoded is deleted and
// the store keeps its defaults.
func (b *Bridge) LoadGame(ctx context.Context) bool {
	raw, ok := b.read(ctx, GameStateKey)
	if !ok {
		return false
	}

	// fields missing from the stored value keep their defaults
	snap := game.DefaultSnapshot()
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		b.discard(ctx, GameStateKey, err)
		return false
	}

	b.game.Restore(snap.Normalize())
	b.logger.Info("game state restored",
		"rolls", len(snap.DiceHistory),
		"players", len(snap.Players),
		"messages", len(snap.ChatMessages))
	return true
}

// LoadAuth restores the logged in user from storage. It reports whether
// a user was restored.
func (b *Bridge) LoadAuth(ctx context.Context) bool {
	raw, ok := b.read(ctx, AuthStateKey)
	if !ok {
		return false
	}

	var snap auth.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		b.discard(ctx, AuthStateKey, err)
		return false
	}
	if !snap.Valid() {
		b.discard(ctx, AuthStateKey, errors.New("missing user or invalid user type"))
		return false
	}

	b.auth.Restore(snap)
	b.logger.Info("auth state restored", "user_id", snap.User.ID, "user_type", snap.UserType)
	return true
}

// Attach subscribes to both stores. Changes to persisted state schedule a
// write that reads the latest state when it fires. Game actions that
// leave the persisted slices untouched, such as updates of unknown ids,
// schedule nothing.
func (b *Bridge) Attach() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.gameRevision.Store(b.game.State().Revision)
	b.unsubscribe = append(b.unsubscribe,
		b.game.Subscribe(func(state game.State, _ game.Action) {
			if b.gameRevision.Swap(state.Revision) != state.Revision {
				b.gameWrites.Trigger()
			}
		}),
		b.auth.Subscribe(func(_ auth.State, action auth.Action) {
			if auth.AffectsPersistedState(action) {
				b.authWrites.Trigger()
			}
		}),
	)
}

// Close unsubscribes, writes anything still pending and stops the timers
func (b *Bridge) Close() {
	b.mu.Lock()
	for _, unsubscribe := range b.unsubscribe {
		unsubscribe()
	}
	b.unsubscribe = nil
	b.mu.Unlock()

	b.gameWrites.Flush()
	b.authWrites.Flush()
	b.gameWrites.Stop()
	b.authWrites.Stop()
}

func (b *Bridge) read(ctx context.Context, key string) (string, bool) {
	raw, err := b.storage.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			b.logger.Error("failed to read state", "key", key, "error", err)
		}
		return "", false
	}
	return raw, true
}

func (b *Bridge) discard(ctx context.Context, key string, cause error) {
	b.logger.Warn("discarding unreadable state", "key", key, "error", cause)
	if err := b.storage.Delete(ctx, key); err != nil {
		b.logger.Error("failed to delete state", "key", key, "error", err)
	}
}

func (b *Bridge) writeGame() {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultWriteTimeout)
	defer cancel()

	data, err := json.Marshal(b.game.State().Snapshot())
	if err != nil {
		b.logger.Error("failed to encode game state", "error", err)
		return
	}
	if err := b.storage.Set(ctx, GameStateKey, string(data)); err != nil {
		b.logger.Error("failed to save game state", "error", err)
		return
	}
	b.logger.Debug("game state saved", "bytes", len(data))
}

func (b *Bridge) writeAuth() {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultWriteTimeout)
	defer cancel()

	snap, ok := b.auth.State().Snapshot()
	if !ok {
		if err := b.storage.Delete(ctx, AuthStateKey); err != nil {
			b.logger.Error("failed to clear auth state", "error", err)
		}
		return
	}

	data, err := json.Marshal(snap)
	if err != nil {
		b.logger.Error("failed to encode auth state", "error", err)
		return
	}
	if err := b.storage.Set(ctx, AuthStateKey, string(data)); err != nil {
		b.logger.Error("failed to save auth state", "error", err)
	}
}
