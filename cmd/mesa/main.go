package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grupodoporao/mesa/internal/common/clock"
	"github.com/grupodoporao/mesa/internal/common/sequence"
	"github.com/grupodoporao/mesa/internal/common/uuid"
	"github.com/grupodoporao/mesa/internal/config"
	"github.com/grupodoporao/mesa/internal/dice"
	"github.com/grupodoporao/mesa/internal/handlers/discord"
	"github.com/grupodoporao/mesa/internal/models"
	"github.com/grupodoporao/mesa/internal/repositories/invites"
	"github.com/grupodoporao/mesa/internal/repositories/notes"
	"github.com/grupodoporao/mesa/internal/repositories/playertag"
	"github.com/grupodoporao/mesa/internal/repositories/storage"
	"github.com/grupodoporao/mesa/internal/services/auth"
	"github.com/grupodoporao/mesa/internal/services/chat"
	diceService "github.com/grupodoporao/mesa/internal/services/dice"
	"github.com/grupodoporao/mesa/internal/services/game"
	"github.com/grupodoporao/mesa/internal/services/persistence"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := run(); err != nil {
		slog.Error("mesa stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Open the durable store
	store, closeStore, err := openStorage(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	clk := &clock.DefaultClock{}
	ids := sequence.NewTimeSequence(clk)
	roller := dice.New(&dice.Config{Seed: cfg.DiceSeed})

	diceSvc, err := diceService.New(&diceService.Config{
		Roller: roller,
		Clock:  clk,
		IDs:    ids,
	})
	if err != nil {
		return fmt.Errorf("failed to create dice service: %w", err)
	}

	gameStore, err := game.New(&game.Config{
		NotificationTTL: cfg.NotificationTTL,
		Logger:          logger,
		DiceService:     diceSvc,
		Clock:           clk,
		IDs:             ids,
		UUIDGenerator:   uuid.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create game store: %w", err)
	}
	defer gameStore.Close()

	authStore, err := auth.New(&auth.Config{
		LoginDelay: cfg.LoginDelay,
		Logger:     logger,
		Clock:      clk,
		Roller:     roller,
	})
	if err != nil {
		return fmt.Errorf("failed to create auth store: %w", err)
	}

	// Restore the previous state before anything is persisted
	bridge, err := persistence.New(&persistence.Config{
		Debounce: cfg.PersistDebounce,
		Logger:   logger,
		Storage:  store,
		Game:     gameStore,
		Auth:     authStore,
		Clock:    clk,
	})
	if err != nil {
		return fmt.Errorf("failed to create persistence bridge: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	restoredGame := bridge.LoadGame(ctx)
	restoredAuth := bridge.LoadAuth(ctx)
	bridge.Attach()
	defer bridge.Close()
	logger.Info("state loaded", "game_restored", restoredGame, "auth_restored", restoredAuth, "storage", cfg.Storage)

	notesRepo, err := notes.New(&notes.Config{Storage: store, Clock: clk, IDs: ids})
	if err != nil {
		return fmt.Errorf("failed to create notes repository: %w", err)
	}

	invitesRepo, err := invites.New(&invites.Config{Storage: store, Clock: clk, IDs: ids})
	if err != nil {
		return fmt.Errorf("failed to create invites repository: %w", err)
	}

	tags, err := playertag.New(&playertag.Config{Storage: store, Roller: roller})
	if err != nil {
		return fmt.Errorf("failed to create player tag repository: %w", err)
	}
	if err := ensurePlayerTag(ctx, tags, logger); err != nil {
		return err
	}

	chatSvc, err := chat.New(&chat.Config{Game: gameStore, Logger: logger})
	if err != nil {
		return fmt.Errorf("failed to create chat service: %w", err)
	}

	if cfg.DiscordEnabled() {
		bot, err := discord.New(&discord.Config{
			Token:         cfg.DiscordToken,
			ApplicationID: cfg.ApplicationID,
			GuildID:       cfg.GuildID,
			ChannelID:     cfg.DiscordChannelID,
			Logger:        logger,
			ChatService:   chatSvc,
			GameStore:     gameStore,
			Notes:         notesRepo,
			Invites:       invitesRepo,
		})
		if err != nil {
			return fmt.Errorf("failed to create Discord bot: %w", err)
		}
		if err := bot.Start(); err != nil {
			return fmt.Errorf("failed to start Discord bot: %w", err)
		}
		defer func() {
			if err := bot.Stop(); err != nil {
				logger.Warn("error stopping bot", "error", err)
			}
		}()
	} else {
		logger.Info("DISCORD_TOKEN not set, running without the Discord bridge")
	}

	gameStore.AddNotification("Mesa pronta", models.NotificationSuccess)
	logger.Info("mesa is running, press CTRL-C to exit")

	<-ctx.Done()
	logger.Info("shutting down")
	return nil
}

// openStorage builds the configured backend and a function releasing it
func openStorage(cfg *config.Config, logger *slog.Logger) (storage.Store, func(), error) {
	switch cfg.Storage {
	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		store, err := storage.NewRedis(&storage.RedisConfig{RedisClient: client, Prefix: cfg.RedisPrefix})
		if err != nil {
			closer(client, "redis", logger)()
			return nil, nil, err
		}
		return store, closer(client, "redis", logger), nil

	case config.StorageSQLite:
		store, err := storage.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return store, closer(store, "sqlite", logger), nil

	default:
		return storage.NewMemory(), func() {}, nil
	}
}

func closer(c io.Closer, name string, logger *slog.Logger) func() {
	return func() {
		if err := c.Close(); err != nil {
			logger.Warn("failed to close storage", "backend", name, "error", err)
		}
	}
}

// ensurePlayerTag saves a suggested tag on first run so invites have a
// handle to refer to this table
func ensurePlayerTag(ctx context.Context, tags *playertag.Repository, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := tags.GetTag(ctx)
	if err == nil {
		logger.Info("player tag", "tag", tag)
		return nil
	}
	if !errors.Is(err, playertag.ErrTagNotSet) {
		return err
	}

	tag, err = tags.Suggest()
	if err != nil {
		return fmt.Errorf("failed to suggest player tag: %w", err)
	}
	if err := tags.SaveTag(ctx, tag); err != nil {
		return err
	}
	logger.Info("player tag created", "tag", tag)
	return nil
}
