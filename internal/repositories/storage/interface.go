package storage

//go:generate mockgen -package=mocks -destination=mocks/mock_store.go github.com/grupodoporao/mesa/internal/repositories/storage Store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has no value
var ErrNotFound = errors.New("key not found")

// Store is a durable keyed store of JSON text. Values are opaque to the
// store; callers own the encoding.
type Store interface {
	// Get returns the value stored under key or ErrNotFound
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
