package timer

import (
	"github.com/breakdesk/breakdesk-backend-go/internal/domain/session"
	"github.com/breakdesk/breakdesk-backend-go/internal/pkg/validator"
)

type SelectRequest struct {
	TeamID     string `json:"team_id"`
	EmployeeID string `json:"employee_id"`
	PIN        string `json:"pin"`
}

func (r *SelectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.TeamID) {
		errs = append(errs, validator.ValidationError{
			Field:   "team_id",
			Message: "team_id is required",
		})
	}

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.PIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "pin is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StartRequest struct {
	BreakType string `json:"break_type"`
}

func (r *StartRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BreakType) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_type",
			Message: "break_type is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// StatusResponse reports the full timer picture for the active
// employee: lifecycle state, elapsed time, daily budget accounting and
// today's completed sessions.
type StatusResponse struct {
	SelectedTeam      string                 `json:"selected_team"`
	SelectedEmployee  string                 `json:"selected_employee"`
	State             State                  `json:"state"`
	SelectedBreakType string                 `json:"selected_break_type,omitempty"`
	ElapsedSeconds    int                    `json:"elapsed_seconds"`
	UsedTodaySeconds  int                    `json:"used_today_seconds"`
	RemainingSeconds  int                    `json:"remaining_seconds"` // clamped at zero
	DailyLimitSeconds int                    `json:"daily_limit_seconds"`
	LimitExceeded     bool                   `json:"limit_exceeded"`
	Admin             bool                   `json:"admin"`
	TodaySessions     []session.BreakSession `json:"today_sessions"`
}
