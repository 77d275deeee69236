package analytics

import (
	"github.com/breakdesk/breakdesk-backend-go/internal/domain/session"
	"github.com/breakdesk/breakdesk-backend-go/internal/pkg/validator"
)

// Filter restricts the aggregated sessions. "all" (or empty) on team
// or employee means no filter.
type Filter struct {
	Date       string `json:"date"` // YYYY-MM-DD, exact calendar day
	TeamID     string `json:"team_id"`
	EmployeeID string `json:"employee_id"`
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != "" {
		if _, ok := validator.IsValidDate(f.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TeamStats struct {
	TeamID        string                 `json:"team_id"`
	TeamName      string                 `json:"team_name"`
	TotalSeconds  int                    `json:"total_seconds"`
	SessionCount  int                    `json:"session_count"`
	EmployeeCount int                    `json:"employee_count"`
	Sessions      []session.BreakSession `json:"sessions"`
}

type EmployeeStats struct {
	EmployeeID   string                 `json:"employee_id"`
	EmployeeName string                 `json:"employee_name"`
	TeamID       string                 `json:"team_id"`
	TeamName     string                 `json:"team_name"`
	TotalSeconds int                    `json:"total_seconds"`
	SessionCount int                    `json:"session_count"`
	Sessions     []session.BreakSession `json:"sessions"`
}

// Summary is the admin analytics rollup for one filtered view. Teams
// is filled when no specific employee is selected; Employees when one
// is. Average is zero when nothing matches.
type Summary struct {
	Date           string          `json:"date"`
	TeamID         string          `json:"team_id"`
	EmployeeID     string          `json:"employee_id"`
	GeneratedAt    string          `json:"generated_at"`
	SessionCount   int             `json:"session_count"`
	AverageSeconds int             `json:"average_seconds"`
	Teams          []TeamStats     `json:"teams,omitempty"`
	Employees      []EmployeeStats `json:"employees,omitempty"`
}

// Export is a rendered CSV report offered as a download.
type Export struct {
	Filename string `json:"filename"`
	Content  []byte `json:"-"`
}
