package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when no value exists for a key.
var ErrKeyNotFound = errors.New("storage key not found")

// Store is the key-value persistence port. Values are opaque byte
// payloads (JSON records in practice); keys follow the logical layout
// documented in each repository (admin_teams, breakTimer_appState,
// breakSessions_{employeeID}_{day}).
type Store interface {
	// Get retrieves the value for a key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes the value for a key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists all stored keys with the given prefix.
	Keys(ctx context.Context, prefix string) ([]string, error)
}
