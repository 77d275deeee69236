package timer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/breakdesk/breakdesk-backend-go/internal/domain/breaktype"
	"github.com/breakdesk/breakdesk-backend-go/internal/domain/registry"
	"github.com/breakdesk/breakdesk-backend-go/internal/domain/session"
	"github.com/breakdesk/breakdesk-backend-go/internal/domain/timer"
	"github.com/google/uuid"
)

// TimerServiceImpl drives the idle/running/paused state machine. One
// instance per process; the mutex serializes HTTP transitions against
// the tick task.
type TimerServiceImpl struct {
	mu sync.Mutex

	registryService registry.Service
	sessionRepo     session.Repository
	stateRepo       timer.StateRepository

	dailyLimit int
	now        func() time.Time

	state     timer.AppState
	startedAt *time.Time

	tickCancel context.CancelFunc
	tickWG     sync.WaitGroup
}

func NewTimerService(
	registryService registry.Service,
	sessionRepo session.Repository,
	stateRepo timer.StateRepository,
	dailyLimitSeconds int,
) *TimerServiceImpl {
	return &TimerServiceImpl{
		registryService: registryService,
		sessionRepo:     sessionRepo,
		stateRepo:       stateRepo,
		dailyLimit:      dailyLimitSeconds,
		now:             time.Now,
		state:           timer.AppState{TimerState: timer.StateIdle},
	}
}

// Rehydrate implements timer.Service.
func (s *TimerServiceImpl) Rehydrate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.stateRepo.Load(ctx)
	if err != nil {
		return err
	}
	if stored == nil {
		return nil
	}

	s.state = *stored
	if s.state.TimerState == "" {
		s.state.TimerState = timer.StateIdle
	}

	// A break that was running when the process stopped keeps
	// counting from where it left off. The start instant is rebuilt as
	// now minus elapsed, which holds for zero elapsed too (a process
	// that died within the first second of a break).
	if s.state.TimerState == timer.StateRunning {
		startedAt := s.now().Add(-time.Duration(s.state.CurrentTime) * time.Second)
		s.startedAt = &startedAt
		s.startTickerLocked()
	}

	slog.Info("Timer state rehydrated",
		"state", s.state.TimerState,
		"employee", s.state.SelectedEmployee,
		"elapsed_seconds", s.state.CurrentTime,
	)
	return nil
}

// Select implements timer.Service.
func (s *TimerServiceImpl) Select(ctx context.Context, req timer.SelectRequest) (timer.StatusResponse, error) {
	if err := req.Validate(); err != nil {
		return timer.StatusResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.TimerState != timer.StateIdle {
		return timer.StatusResponse{}, timer.ErrTimerBusy
	}

	verified, err := s.registryService.VerifyPIN(ctx, registry.VerifyPINRequest{
		EmployeeID: req.EmployeeID,
		PIN:        req.PIN,
	})
	if err != nil {
		return timer.StatusResponse{}, err
	}

	s.state = timer.AppState{
		SelectedTeam:     req.TeamID,
		SelectedEmployee: verified.EmployeeID,
		TimerState:       timer.StateIdle,
	}
	s.startedAt = nil

	if err := s.stateRepo.Save(ctx, s.state); err != nil {
		return timer.StatusResponse{}, err
	}
	return s.statusLocked(ctx)
}

// Start implements timer.Service.
func (s *TimerServiceImpl) Start(ctx context.Context, req timer.StartRequest) (timer.StatusResponse, error) {
	if err := req.Validate(); err != nil {
		return timer.StatusResponse{}, err
	}
	if !breaktype.IsValid(req.BreakType) {
		return timer.StatusResponse{}, timer.ErrUnknownBreakType
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.SelectedEmployee == "" {
		return timer.StatusResponse{}, timer.ErrNoEmployeeSelected
	}
	if s.state.TimerState != timer.StateIdle {
		return timer.StatusResponse{}, timer.ErrTimerBusy
	}

	used, _, err := s.usedTodayLocked(ctx)
	if err != nil {
		return timer.StatusResponse{}, err
	}
	if s.dailyLimit-used <= 0 {
		return timer.StatusResponse{}, timer.ErrDailyLimitReached
	}

	sessionID := uuid.NewString()
	startedAt := s.now()

	s.state.SelectedBreakType = req.BreakType
	s.state.CurrentSessionID = &sessionID
	s.state.CurrentTime = 0
	s.state.TimerState = timer.StateRunning
	s.startedAt = &startedAt

	if err := s.stateRepo.Save(ctx, s.state); err != nil {
		return timer.StatusResponse{}, err
	}

	s.startTickerLocked()
	return s.statusLocked(ctx)
}

// Pause implements timer.Service.
func (s *TimerServiceImpl) Pause(ctx context.Context) (timer.StatusResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.TimerState != timer.StateRunning {
		return timer.StatusResponse{}, timer.ErrTimerNotRunning
	}

	s.stopTickerLocked()
	s.state.TimerState = timer.StatePaused

	if err := s.stateRepo.Save(ctx, s.state); err != nil {
		return timer.StatusResponse{}, err
	}
	return s.statusLocked(ctx)
}

// Resume implements timer.Service.
func (s *TimerServiceImpl) Resume(ctx context.Context) (timer.StatusResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.TimerState != timer.StatePaused {
		return timer.StatusResponse{}, timer.ErrTimerNotPaused
	}

	s.state.TimerState = timer.StateRunning

	if err := s.stateRepo.Save(ctx, s.state); err != nil {
		return timer.StatusResponse{}, err
	}

	s.startTickerLocked()
	return s.statusLocked(ctx)
}

// Stop implements timer.Service. Records a completed session when a
// session id and start instant exist; always returns to idle.
func (s *TimerServiceImpl) Stop(ctx context.Context) (timer.StatusResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.TimerState == timer.StateIdle {
		return timer.StatusResponse{}, timer.ErrTimerNotRunning
	}

	s.stopTickerLocked()

	if s.state.CurrentSessionID != nil && s.startedAt != nil && s.state.SelectedEmployee != "" {
		if err := s.recordSessionLocked(ctx); err != nil {
			return timer.StatusResponse{}, err
		}
	}

	s.state.TimerState = timer.StateIdle
	s.state.CurrentTime = 0
	s.state.CurrentSessionID = nil
	s.startedAt = nil

	if err := s.stateRepo.Save(ctx, s.state); err != nil {
		return timer.StatusResponse{}, err
	}
	return s.statusLocked(ctx)
}

// Reset implements timer.Service.
func (s *TimerServiceImpl) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTickerLocked()
	s.state = timer.AppState{TimerState: timer.StateIdle}
	s.startedAt = nil

	return s.stateRepo.Clear(ctx)
}

// Status implements timer.Service.
func (s *TimerServiceImpl) Status(ctx context.Context) (timer.StatusResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.statusLocked(ctx)
}

// Shutdown implements timer.Service.
func (s *TimerServiceImpl) Shutdown() {
	s.mu.Lock()
	s.stopTickerLocked()
	s.mu.Unlock()

	s.tickWG.Wait()
}

// recordSessionLocked appends the finished break to the employee's
// today list. The employee/team snapshot is taken now, at creation
// time, so later registry edits cannot rewrite it.
func (s *TimerServiceImpl) recordSessionLocked(ctx context.Context) error {
	employee, err := s.registryService.FindEmployee(ctx, s.state.SelectedEmployee)
	if err != nil {
		// Employee deleted mid-break: drop the record, still reset.
		// Anything else (a storage failure) must surface so the stop
		// can be retried without losing the session.
		if errors.Is(err, registry.ErrEmployeeNotFound) {
			slog.Warn("Skipping session record for deleted employee",
				"employee_id", s.state.SelectedEmployee)
			return nil
		}
		return fmt.Errorf("failed to resolve employee for session record: %w", err)
	}

	teamName := ""
	if team, err := s.registryService.FindTeam(ctx, employee.TeamID); err == nil {
		teamName = team.Name
	}

	endTime := s.now()
	record := session.BreakSession{
		ID:           *s.state.CurrentSessionID,
		EmployeeID:   employee.ID,
		EmployeeName: employee.Name,
		TeamID:       employee.TeamID,
		TeamName:     teamName,
		Type:         s.state.SelectedBreakType,
		StartTime:    *s.startedAt,
		EndTime:      &endTime,
		Duration:     s.state.CurrentTime,
	}

	dayKey := session.DayKey(endTime)
	todays, err := s.sessionRepo.ListDay(ctx, employee.ID, dayKey)
	if err != nil {
		return fmt.Errorf("failed to load today's sessions: %w", err)
	}

	todays = append(todays, record)
	if err := s.sessionRepo.SaveDay(ctx, employee.ID, dayKey, todays); err != nil {
		return fmt.Errorf("failed to save today's sessions: %w", err)
	}

	slog.Info("Break session recorded",
		"employee", employee.ID,
		"type", record.Type,
		"duration_seconds", record.Duration,
	)
	return nil
}

func (s *TimerServiceImpl) usedTodayLocked(ctx context.Context) (int, []session.BreakSession, error) {
	if s.state.SelectedEmployee == "" {
		return 0, nil, nil
	}

	todays, err := s.sessionRepo.ListDay(ctx, s.state.SelectedEmployee, session.DayKey(s.now()))
	if err != nil {
		return 0, nil, err
	}

	used := 0
	for _, bs := range todays {
		used += bs.Duration
	}
	return used, todays, nil
}

func (s *TimerServiceImpl) statusLocked(ctx context.Context) (timer.StatusResponse, error) {
	used, todays, err := s.usedTodayLocked(ctx)
	if err != nil {
		return timer.StatusResponse{}, err
	}

	remaining := s.dailyLimit - used
	if remaining < 0 {
		remaining = 0
	}

	return timer.StatusResponse{
		SelectedTeam:      s.state.SelectedTeam,
		SelectedEmployee:  s.state.SelectedEmployee,
		State:             s.state.TimerState,
		SelectedBreakType: s.state.SelectedBreakType,
		ElapsedSeconds:    s.state.CurrentTime,
		UsedTodaySeconds:  used,
		RemainingSeconds:  remaining,
		DailyLimitSeconds: s.dailyLimit,
		LimitExceeded:     used+s.state.CurrentTime > s.dailyLimit,
		Admin:             s.registryService.IsAdmin(s.state.SelectedEmployee),
		TodaySessions:     todays,
	}, nil
}
