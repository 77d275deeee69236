package analytics

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/breakdesk/breakdesk-backend-go/internal/domain/analytics"
	"github.com/breakdesk/breakdesk-backend-go/internal/domain/registry"
	"github.com/breakdesk/breakdesk-backend-go/internal/domain/session"
)

type AnalyticsServiceImpl struct {
	registryRepo  registry.Repository
	sessionRepo   session.Repository
	retentionDays int
	now           func() time.Time
}

func NewAnalyticsService(
	registryRepo registry.Repository,
	sessionRepo session.Repository,
	retentionDays int,
) analytics.Service {
	return &AnalyticsServiceImpl{
		registryRepo:  registryRepo,
		sessionRepo:   sessionRepo,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

// collectWindow flattens every employee's persisted day lists across
// the retention window, newest start first. Employee name and team are
// re-attached from the current registry, so the admin views always
// show present-day membership.
func (s *AnalyticsServiceImpl) collectWindow(ctx context.Context) ([]session.BreakSession, []registry.Team, error) {
	teams, err := s.registryRepo.Load(ctx)
	if err != nil {
		return nil, nil, err
	}

	today := s.now()
	var all []session.BreakSession

	for _, team := range teams {
		for _, emp := range team.Employees {
			for i := 0; i < s.retentionDays; i++ {
				dayKey := session.DayKey(today.AddDate(0, 0, -i))

				daySessions, err := s.sessionRepo.ListDay(ctx, emp.ID, dayKey)
				if err != nil {
					return nil, nil, err
				}

				for _, bs := range daySessions {
					bs.EmployeeID = emp.ID
					bs.EmployeeName = emp.Name
					bs.TeamID = team.ID
					bs.TeamName = team.Name
					all = append(all, bs)
				}
			}
		}
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].StartTime.After(all[j].StartTime)
	})
	return all, teams, nil
}

func matchesFilter(bs session.BreakSession, filter analytics.Filter) bool {
	if filter.Date != "" && session.DayKey(bs.StartTime) != filter.Date {
		return false
	}
	if filter.TeamID != "" && filter.TeamID != "all" && bs.TeamID != filter.TeamID {
		return false
	}
	if filter.EmployeeID != "" && filter.EmployeeID != "all" && bs.EmployeeID != filter.EmployeeID {
		return false
	}
	return true
}

// Summary implements analytics.Service.
func (s *AnalyticsServiceImpl) Summary(ctx context.Context, filter analytics.Filter) (analytics.Summary, error) {
	if err := filter.Validate(); err != nil {
		return analytics.Summary{}, err
	}

	all, teams, err := s.collectWindow(ctx)
	if err != nil {
		return analytics.Summary{}, err
	}

	var filtered []session.BreakSession
	for _, bs := range all {
		if matchesFilter(bs, filter) {
			filtered = append(filtered, bs)
		}
	}

	total := 0
	for _, bs := range filtered {
		total += bs.Duration
	}

	average := 0
	if len(filtered) > 0 {
		average = int(math.Round(float64(total) / float64(len(filtered))))
	}

	summary := analytics.Summary{
		Date:           filter.Date,
		TeamID:         filter.TeamID,
		EmployeeID:     filter.EmployeeID,
		GeneratedAt:    s.now().Format(time.RFC3339),
		SessionCount:   len(filtered),
		AverageSeconds: average,
	}

	// A specific employee filter switches the rollup from per-team to
	// per-employee presentation.
	if filter.EmployeeID != "" && filter.EmployeeID != "all" {
		summary.Employees = groupByEmployee(filtered, teams)
	} else {
		summary.Teams = groupByTeam(filtered, teams)
	}
	return summary, nil
}

func groupByTeam(sessions []session.BreakSession, teams []registry.Team) []analytics.TeamStats {
	grouped := make(map[string]*analytics.TeamStats)
	seenEmployees := make(map[string]map[string]bool)

	for _, bs := range sessions {
		stats, ok := grouped[bs.TeamID]
		if !ok {
			stats = &analytics.TeamStats{TeamID: bs.TeamID, TeamName: bs.TeamName}
			grouped[bs.TeamID] = stats
			seenEmployees[bs.TeamID] = make(map[string]bool)
		}
		stats.TotalSeconds += bs.Duration
		stats.SessionCount++
		stats.Sessions = append(stats.Sessions, bs)
		seenEmployees[bs.TeamID][bs.EmployeeID] = true
	}

	// Registry order keeps the rollup stable between calls.
	var out []analytics.TeamStats
	for _, team := range teams {
		if stats, ok := grouped[team.ID]; ok {
			stats.EmployeeCount = len(seenEmployees[team.ID])
			out = append(out, *stats)
		}
	}
	return out
}

func groupByEmployee(sessions []session.BreakSession, teams []registry.Team) []analytics.EmployeeStats {
	grouped := make(map[string]*analytics.EmployeeStats)

	for _, bs := range sessions {
		stats, ok := grouped[bs.EmployeeID]
		if !ok {
			stats = &analytics.EmployeeStats{
				EmployeeID:   bs.EmployeeID,
				EmployeeName: bs.EmployeeName,
				TeamID:       bs.TeamID,
				TeamName:     bs.TeamName,
			}
			grouped[bs.EmployeeID] = stats
		}
		stats.TotalSeconds += bs.Duration
		stats.SessionCount++
		stats.Sessions = append(stats.Sessions, bs)
	}

	var out []analytics.EmployeeStats
	for _, team := range teams {
		for _, emp := range team.Employees {
			if stats, ok := grouped[emp.ID]; ok {
				out = append(out, *stats)
			}
		}
	}
	return out
}
