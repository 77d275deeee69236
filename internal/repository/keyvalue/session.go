package keyvalue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/breakdesk/breakdesk-backend-go/internal/domain/session"
	"github.com/breakdesk/breakdesk-backend-go/internal/pkg/storage"
)

type sessionRepository struct {
	store storage.Store
}

// NewSessionRepository persists per-employee, per-day break session
// lists under breakSessions_{employeeID}_{day} keys.
func NewSessionRepository(store storage.Store) session.Repository {
	return &sessionRepository{store: store}
}

// ListDay implements session.Repository.
func (r *sessionRepository) ListDay(ctx context.Context, employeeID, dayKey string) ([]session.BreakSession, error) {
	key := session.StorageKey(employeeID, dayKey)

	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load sessions for %s: %w", key, err)
	}

	var sessions []session.BreakSession
	if err := json.Unmarshal(raw, &sessions); err != nil {
		slog.Error("Stored session list is corrupted, treating day as empty",
			"key", key, "error", err)
		return nil, nil
	}

	return sessions, nil
}

// SaveDay implements session.Repository.
func (r *sessionRepository) SaveDay(ctx context.Context, employeeID, dayKey string, sessions []session.BreakSession) error {
	key := session.StorageKey(employeeID, dayKey)

	raw, err := json.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("failed to encode sessions for %s: %w", key, err)
	}

	if err := r.store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to save sessions for %s: %w", key, err)
	}
	return nil
}

// DeleteDay implements session.Repository.
func (r *sessionRepository) DeleteDay(ctx context.Context, employeeID, dayKey string) error {
	key := session.StorageKey(employeeID, dayKey)

	if err := r.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete sessions for %s: %w", key, err)
	}
	return nil
}
