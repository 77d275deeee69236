package timer

import (
	"context"
	"log/slog"
	"time"

	"github.com/breakdesk/breakdesk-backend-go/internal/domain/timer"
)

// The tick task is a cancellable periodic goroutine bound to the
// running state: every path that leaves running (pause, stop, reset,
// shutdown) cancels it before transitioning.

func (s *TimerServiceImpl) startTickerLocked() {
	if s.tickCancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.tickCancel = cancel

	s.tickWG.Add(1)
	go s.runTicker(ctx)
}

func (s *TimerServiceImpl) stopTickerLocked() {
	if s.tickCancel != nil {
		s.tickCancel()
		s.tickCancel = nil
	}
}

func (s *TimerServiceImpl) runTicker(ctx context.Context) {
	defer s.tickWG.Done()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

// tick advances elapsed time by one second and persists the state, so
// a reload mid-break loses at most one second.
func (s *TimerServiceImpl) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.TimerState != timer.StateRunning {
		return
	}

	s.state.CurrentTime++
	if err := s.stateRepo.Save(context.Background(), s.state); err != nil {
		slog.Error("Failed to persist timer tick", "error", err)
	}
}
