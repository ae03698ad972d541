package main

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/grupodoporao/mesa/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStorageBackends(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	mr := miniredis.RunT(t)

	for _, cfg := range []*config.Config{
		{Storage: config.StorageMemory},
		{Storage: config.StorageRedis, RedisAddr: mr.Addr(), RedisPrefix: "mesa:"},
		{Storage: config.StorageSQLite, SQLitePath: filepath.Join(t.TempDir(), "mesa.db")},
	} {
		store, release, err := openStorage(cfg, logger)
		require.NoError(t, err, cfg.Storage)

		ctx := context.Background()
		require.NoError(t, store.Set(ctx, "player-tag", "bravebard7"), cfg.Storage)
		value, err := store.Get(ctx, "player-tag")
		require.NoError(t, err, cfg.Storage)
		assert.Equal(t, "bravebard7", value)
		release()
	}
}

func TestOpenStorageUnreachableRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	store, release, err := openStorage(&config.Config{Storage: config.StorageRedis, RedisAddr: addr}, logger)
	assert.Error(t, err)
	assert.Nil(t, store)
	assert.Nil(t, release)
	assert.NotContains(t, logs.String(), "failed to close storage")
}
