package keyvalue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/breakdesk/breakdesk-backend-go/internal/domain/registry"
	"github.com/breakdesk/breakdesk-backend-go/internal/pkg/storage"
)

const registryKey = "admin_teams"

type registryRepository struct {
	store storage.Store
}

// NewRegistryRepository persists the team/employee registry as one
// JSON record under the admin_teams key.
func NewRegistryRepository(store storage.Store) registry.Repository {
	return &registryRepository{store: store}
}

// Load implements registry.Repository. A missing or undecodable
// record falls back to the built-in default registry.
func (r *registryRepository) Load(ctx context.Context) ([]registry.Team, error) {
	raw, err := r.store.Get(ctx, registryKey)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return registry.DefaultTeams(), nil
		}
		return nil, fmt.Errorf("failed to load registry: %w", err)
	}

	var teams []registry.Team
	if err := json.Unmarshal(raw, &teams); err != nil {
		slog.Error("Stored registry is corrupted, falling back to defaults", "error", err)
		return registry.DefaultTeams(), nil
	}

	return teams, nil
}

// Save implements registry.Repository.
func (r *registryRepository) Save(ctx context.Context, teams []registry.Team) error {
	raw, err := json.Marshal(teams)
	if err != nil {
		return fmt.Errorf("failed to encode registry: %w", err)
	}

	if err := r.store.Set(ctx, registryKey, raw); err != nil {
		return fmt.Errorf("failed to save registry: %w", err)
	}
	return nil
}
