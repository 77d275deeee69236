package timer

// State is the timer lifecycle state. Idle is a resting state,
// re-enterable indefinitely; stop always returns to it.
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StatePaused  State = "paused"
)

// AppState is the process-wide timer snapshot, persisted on every
// transition under the breakTimer_appState key and rehydrated at
// startup. JSON tags follow the persisted layout.
type AppState struct {
	SelectedTeam      string  `json:"selectedTeam"`
	SelectedEmployee  string  `json:"selectedEmployee"`
	TimerState        State   `json:"timerState"`
	SelectedBreakType string  `json:"selectedBreakType"`
	CurrentTime       int     `json:"currentTime"` // elapsed whole seconds
	CurrentSessionID  *string `json:"currentSessionId"`
}
