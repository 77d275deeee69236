package timer

import "errors"

// Timer domain errors
var (
	ErrNoEmployeeSelected = errors.New("no employee is authenticated")
	ErrUnknownBreakType   = errors.New("unknown break type")
	ErrDailyLimitReached  = errors.New("daily break limit reached")
	ErrTimerNotRunning    = errors.New("timer is not running")
	ErrTimerNotPaused     = errors.New("timer is not paused")
	ErrTimerBusy          = errors.New("timer is already running or paused")
)
