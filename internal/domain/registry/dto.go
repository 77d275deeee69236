package registry

import (
	"github.com/breakdesk/breakdesk-backend-go/internal/pkg/validator"
)

type AddEmployeeRequest struct {
	Name   string `json:"name"`
	TeamID string `json:"team_id"`
}

func (r *AddEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.TeamID) {
		errs = append(errs, validator.ValidationError{
			Field:   "team_id",
			Message: "team_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetPINRequest struct {
	PIN string `json:"pin"`
}

func (r *SetPINRequest) Validate() error {
	var errs validator.ValidationErrors

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

type VerifyPINRequest struct {
	EmployeeID string `json:"employee_id"`
	PIN        string `json:"pin"`
}

func (r *VerifyPINRequest) Validate() error {
	var errs validator.ValidationErrors

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

type VerifyPINResponse struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	TeamID       string `json:"team_id"`
	Admin        bool   `json:"admin"`
}

type EmployeeResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	TeamID string `json:"team_id"`
	PIN    string `json:"pin"`
}

type TeamResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Employees []EmployeeResponse `json:"employees"`
}
