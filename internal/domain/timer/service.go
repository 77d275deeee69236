package timer

import "context"

// Service defines the timer state machine operations. All transitions
// persist the AppState singleton before returning.
type Service interface {
	// Rehydrate restores the persisted state at startup. A running
	// timer resumes ticking with its start instant reconstructed as
	// "now minus elapsed seconds".
	Rehydrate(ctx context.Context) error

	// Select authenticates an employee by PIN and binds the timer to
	// them. Refused while a break is running or paused.
	Select(ctx context.Context, req SelectRequest) (StatusResponse, error)

	// Start begins a break: requires a valid break type, an
	// authenticated employee and remaining daily budget > 0.
	Start(ctx context.Context, req StartRequest) (StatusResponse, error)

	// Pause suspends tick accumulation. Valid only while running.
	Pause(ctx context.Context) (StatusResponse, error)

	// Resume continues tick accumulation. Valid only while paused.
	Resume(ctx context.Context) (StatusResponse, error)

	// Stop finalizes the break, appending a completed session to the
	// employee's today list. Always returns the machine to idle.
	Stop(ctx context.Context) (StatusResponse, error)

	// Reset clears the selection and the persisted state. Any pending
	// tick task is cancelled.
	Reset(ctx context.Context) error

	// Status reports the current machine state and budget accounting.
	Status(ctx context.Context) (StatusResponse, error)

	// Shutdown cancels any pending tick task; the machine state stays
	// persisted for rehydration on the next start.
	Shutdown()
}
