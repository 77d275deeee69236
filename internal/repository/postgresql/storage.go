package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/breakdesk/breakdesk-backend-go/internal/pkg/database"
	"github.com/breakdesk/breakdesk-backend-go/internal/pkg/storage"
	"github.com/jackc/pgx/v5"
)

type storageRepository struct {
	db *database.DB
}

// NewStorage returns a storage.Store backed by the app_storage table.
// One row per logical key; the value column holds the raw JSON payload.
func NewStorage(db *database.DB) storage.Store {
	return &storageRepository{db: db}
}

// EnsureSchema creates the app_storage table if it does not exist yet.
func EnsureSchema(ctx context.Context, db *database.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS app_storage (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`

	if _, err := db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure app_storage schema: %w", err)
	}
	return nil
}

// Get implements storage.Store.
func (s *storageRepository) Get(ctx context.Context, key string) ([]byte, error) {
	query := `
		SELECT value
		FROM app_storage
		WHERE key = $1
	`

	var value string
	err := s.db.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to get storage key: %w", err)
	}

	return []byte(value), nil
}

// Set implements storage.Store.
func (s *storageRepository) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO app_storage (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	if _, err := s.db.Exec(ctx, query, key, string(value)); err != nil {
		return fmt.Errorf("failed to set storage key: %w", err)
	}
	return nil
}

// Delete implements storage.Store.
func (s *storageRepository) Delete(ctx context.Context, key string) error {
	query := `
		DELETE FROM app_storage
		WHERE key = $1
	`

	if _, err := s.db.Exec(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete storage key: %w", err)
	}
	return nil
}

// Keys implements storage.Store.
func (s *storageRepository) Keys(ctx context.Context, prefix string) ([]string, error) {
	query := `
		SELECT key
		FROM app_storage
		WHERE key LIKE $1 || '%'
	`

	rows, err := s.db.Query(ctx, query, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list storage keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan storage key: %w", err)
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate storage keys: %w", err)
	}
	return keys, nil
}
