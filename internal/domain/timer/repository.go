package timer

import "context"

// StateRepository persists the AppState singleton.
type StateRepository interface {
	// Load returns the stored state, or nil when nothing is stored or
	// the record cannot be decoded (nothing selected).
	Load(ctx context.Context) (*AppState, error)

	// Save overwrites the stored state.
	Save(ctx context.Context, state AppState) error

	// Clear removes the stored state.
	Clear(ctx context.Context) error
}
