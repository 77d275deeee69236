package keyvalue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/breakdesk/breakdesk-backend-go/internal/domain/timer"
	"github.com/breakdesk/breakdesk-backend-go/internal/pkg/storage"
)

const appStateKey = "breakTimer_appState"

type appStateRepository struct {
	store storage.Store
}

// NewAppStateRepository persists the AppState singleton under the
// breakTimer_appState key.
func NewAppStateRepository(store storage.Store) timer.StateRepository {
	return &appStateRepository{store: store}
}

// Load implements timer.StateRepository. Missing or undecodable
// records report "nothing selected" (nil) rather than failing.
func (r *appStateRepository) Load(ctx context.Context) (*timer.AppState, error) {
	raw, err := r.store.Get(ctx, appStateKey)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load app state: %w", err)
	}

	var state timer.AppState
	if err := json.Unmarshal(raw, &state); err != nil {
		slog.Error("Stored app state is corrupted, starting with nothing selected", "error", err)
		return nil, nil
	}

	return &state, nil
}

// Save implements timer.StateRepository.
func (r *appStateRepository) Save(ctx context.Context, state timer.AppState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode app state: %w", err)
	}

	if err := r.store.Set(ctx, appStateKey, raw); err != nil {
		return fmt.Errorf("failed to save app state: %w", err)
	}
	return nil
}

// Clear implements timer.StateRepository.
func (r *appStateRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, appStateKey); err != nil {
		return fmt.Errorf("failed to clear app state: %w", err)
	}
	return nil
}
