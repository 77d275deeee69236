package session

import "context"

// Repository persists per-employee, per-day break session lists.
type Repository interface {
	// ListDay returns the sessions for one employee on one day.
	// Missing or undecodable records yield an empty list.
	ListDay(ctx context.Context, employeeID, dayKey string) ([]BreakSession, error)

	// SaveDay overwrites one employee's session list for one day.
	SaveDay(ctx context.Context, employeeID, dayKey string, sessions []BreakSession) error

	// DeleteDay removes one employee's session list for one day.
	DeleteDay(ctx context.Context, employeeID, dayKey string) error
}
