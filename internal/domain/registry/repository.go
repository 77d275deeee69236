package registry

import "context"

// Repository persists the full team/employee registry as one record
// under the admin_teams key.
type Repository interface {
	// Load returns the registry, falling back to DefaultTeams when
	// nothing is stored or the stored record cannot be decoded.
	Load(ctx context.Context) ([]Team, error)

	// Save overwrites the stored registry.
	Save(ctx context.Context, teams []Team) error
}
