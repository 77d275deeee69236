package response

import (
	"errors"
	"net/http"

	"github.com/breakdesk/breakdesk-backend-go/internal/domain/registry"
	"github.com/breakdesk/breakdesk-backend-go/internal/domain/timer"
	"github.com/breakdesk/breakdesk-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Registry domain errors
	switch {
	case errors.Is(err, registry.ErrInvalidPIN):
		// Same user-facing message the PIN form shows.
		Unauthorized(w, "Неверный код доступа")
	case errors.Is(err, registry.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, registry.ErrTeamNotFound):
		NotFound(w, "Team not found")
	case errors.Is(err, registry.ErrConfirmationRequired):
		BadRequest(w, "Deletion requires confirmation", nil)

	// Timer domain errors
	case errors.Is(err, timer.ErrNoEmployeeSelected):
		BadRequest(w, "No employee is authenticated", nil)
	case errors.Is(err, timer.ErrUnknownBreakType):
		BadRequest(w, "Unknown break type", nil)
	case errors.Is(err, timer.ErrDailyLimitReached):
		Conflict(w, "Daily break limit reached")
	case errors.Is(err, timer.ErrTimerBusy):
		Conflict(w, "A break is already in progress")
	case errors.Is(err, timer.ErrTimerNotRunning):
		Conflict(w, "Timer is not running")
	case errors.Is(err, timer.ErrTimerNotPaused):
		Conflict(w, "Timer is not paused")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
