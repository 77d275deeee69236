package registry

import "context"

// Service defines registry and access operations.
type Service interface {
	// ListTeams returns the registry with effective PINs resolved
	// (admin surface only).
	ListTeams(ctx context.Context) ([]TeamResponse, error)

	// FindEmployee looks up one employee by id.
	FindEmployee(ctx context.Context, id string) (Employee, error)

	// FindTeam looks up one team by id.
	FindTeam(ctx context.Context, id string) (Team, error)

	// AddEmployee creates an employee with a generated identifier in
	// an existing team.
	AddEmployee(ctx context.Context, req AddEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes an employee and purges their persisted
	// sessions across the retention window. Requires confirmation.
	DeleteEmployee(ctx context.Context, id string, confirmed bool) error

	// SetPIN stores a custom PIN override, normalized to lower case.
	SetPIN(ctx context.Context, id string, req SetPINRequest) error

	// VerifyPIN checks the supplied code against the employee's
	// effective PIN (custom override or derived default). A match for
	// the configured admin identity reports Admin=true.
	VerifyPIN(ctx context.Context, req VerifyPINRequest) (VerifyPINResponse, error)

	// IsAdmin reports whether the employee id is the configured admin.
	IsAdmin(id string) bool
}
