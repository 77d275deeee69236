package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/breakdesk/breakdesk-backend-go/internal/domain/analytics"
	"github.com/breakdesk/breakdesk-backend-go/internal/domain/session"
	"github.com/breakdesk/breakdesk-backend-go/internal/pkg/storage"
	"github.com/breakdesk/breakdesk-backend-go/internal/pkg/validator"
	"github.com/breakdesk/breakdesk-backend-go/internal/repository/keyvalue"
	registryService "github.com/breakdesk/breakdesk-backend-go/internal/service/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var analyticsTestNow = time.Date(2026, 8, 28, 18, 0, 0, 0, time.UTC)

func newAnalyticsTestEnv(t *testing.T) (analytics.Service, session.Repository) {
	t.Helper()

	store := storage.NewMemoryStore()
	registryRepo := keyvalue.NewRegistryRepository(store)
	sessionRepo := keyvalue.NewSessionRepository(store)

	svc := NewAnalyticsService(registryRepo, sessionRepo, 30)
	svc.(*AnalyticsServiceImpl).now = func() time.Time { return analyticsTestNow }

	return svc, sessionRepo
}

func seedSession(t *testing.T, ctx context.Context, repo session.Repository, employeeID, breakType string, start time.Time, durationSeconds int) {
	t.Helper()

	end := start.Add(time.Duration(durationSeconds) * time.Second)
	record := session.BreakSession{
		ID:         employeeID + "-" + start.Format("150405"),
		EmployeeID: employeeID,
		Type:       breakType,
		StartTime:  start,
		EndTime:    &end,
		Duration:   durationSeconds,
	}

	dayKey := session.DayKey(start)
	existing, err := repo.ListDay(ctx, employeeID, dayKey)
	require.NoError(t, err)
	require.NoError(t, repo.SaveDay(ctx, employeeID, dayKey, append(existing, record)))
}

func seedThreeSessions(t *testing.T, ctx context.Context, repo session.Repository) {
	// sanan: tea today, murad: lunch yesterday, islam: smoke today.
	seedSession(t, ctx, repo, "sanan", "tea", analyticsTestNow.Add(-2*time.Hour), 90)
	seedSession(t, ctx, repo, "murad", "lunch", analyticsTestNow.AddDate(0, 0, -1), 610)
	seedSession(t, ctx, repo, "islam", "smoke", analyticsTestNow.Add(-1*time.Hour), 3600)
}

func TestAnalyticsService_Summary_NoFilter(t *testing.T) {
	ctx := context.Background()
	svc, sessionRepo := newAnalyticsTestEnv(t)
	seedThreeSessions(t, ctx, sessionRepo)

	summary, err := svc.Summary(ctx, analytics.Filter{})
	require.NoError(t, err)

	assert.Equal(t, 3, summary.SessionCount)
	assert.Equal(t, 1433, summary.AverageSeconds) // round(4300 / 3)

	// Grouped per team, in registry order, with live names attached.
	require.Len(t, summary.Teams, 2)
	ts := summary.Teams[0]
	assert.Equal(t, "technical-support", ts.TeamID)
	assert.Equal(t, "Technical Support", ts.TeamName)
	assert.Equal(t, 700, ts.TotalSeconds)
	assert.Equal(t, 2, ts.SessionCount)
	assert.Equal(t, 2, ts.EmployeeCount)

	os := summary.Teams[1]
	assert.Equal(t, "operation-support", os.TeamID)
	assert.Equal(t, 3600, os.TotalSeconds)
	assert.Equal(t, 1, os.EmployeeCount)
}

func TestAnalyticsService_Summary_DateFilter(t *testing.T) {
	ctx := context.Background()
	svc, sessionRepo := newAnalyticsTestEnv(t)
	seedThreeSessions(t, ctx, sessionRepo)

	summary, err := svc.Summary(ctx, analytics.Filter{Date: "2026-08-28"})
	require.NoError(t, err)

	// Yesterday's lunch is excluded.
	assert.Equal(t, 2, summary.SessionCount)
	assert.Equal(t, 1845, summary.AverageSeconds) // round(3690 / 2)
}

func TestAnalyticsService_Summary_TeamFilter(t *testing.T) {
	ctx := context.Background()
	svc, sessionRepo := newAnalyticsTestEnv(t)
	seedThreeSessions(t, ctx, sessionRepo)

	summary, err := svc.Summary(ctx, analytics.Filter{TeamID: "operation-support"})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.SessionCount)
	require.Len(t, summary.Teams, 1)
	assert.Equal(t, "operation-support", summary.Teams[0].TeamID)
}

func TestAnalyticsService_Summary_AllIsNoFilter(t *testing.T) {
	ctx := context.Background()
	svc, sessionRepo := newAnalyticsTestEnv(t)
	seedThreeSessions(t, ctx, sessionRepo)

	summary, err := svc.Summary(ctx, analytics.Filter{TeamID: "all", EmployeeID: "all"})
	require.NoError(t, err)
	assert.Equal(t, 3, summary.SessionCount)
	assert.Len(t, summary.Teams, 2)
	assert.Empty(t, summary.Employees)
}

func TestAnalyticsService_Summary_EmployeeFilterGroupsByEmployee(t *testing.T) {
	ctx := context.Background()
	svc, sessionRepo := newAnalyticsTestEnv(t)
	seedThreeSessions(t, ctx, sessionRepo)

	summary, err := svc.Summary(ctx, analytics.Filter{EmployeeID: "sanan"})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.SessionCount)
	assert.Empty(t, summary.Teams)
	require.Len(t, summary.Employees, 1)

	es := summary.Employees[0]
	assert.Equal(t, "sanan", es.EmployeeID)
	assert.Equal(t, "Sanan", es.EmployeeName)
	assert.Equal(t, "Technical Support", es.TeamName)
	assert.Equal(t, 90, es.TotalSeconds)
}

func TestAnalyticsService_Summary_EmptyWindow(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAnalyticsTestEnv(t)

	summary, err := svc.Summary(ctx, analytics.Filter{})
	require.NoError(t, err)

	assert.Equal(t, 0, summary.SessionCount)
	assert.Equal(t, 0, summary.AverageSeconds)
	assert.Empty(t, summary.Teams)
}

func TestAnalyticsService_Summary_InvalidDate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAnalyticsTestEnv(t)

	_, err := svc.Summary(ctx, analytics.Filter{Date: "28.08.2026"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestAnalyticsService_Summary_IgnoresSessionsOutsideWindow(t *testing.T) {
	ctx := context.Background()
	svc, sessionRepo := newAnalyticsTestEnv(t)

	// 31 days ago is outside the 30-day window.
	seedSession(t, ctx, sessionRepo, "sanan", "tea", analyticsTestNow.AddDate(0, 0, -31), 90)
	seedSession(t, ctx, sessionRepo, "sanan", "tea", analyticsTestNow.AddDate(0, 0, -29), 60)

	summary, err := svc.Summary(ctx, analytics.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.SessionCount)
}

func TestAnalyticsService_Summary_DeletedEmployeeHasNoSessions(t *testing.T) {
	ctx := context.Background()

	store := storage.NewMemoryStore()
	registryRepo := keyvalue.NewRegistryRepository(store)
	sessionRepo := keyvalue.NewSessionRepository(store)

	svc := NewAnalyticsService(registryRepo, sessionRepo, 30)
	svc.(*AnalyticsServiceImpl).now = func() time.Time { return analyticsTestNow }
	registrySvc := registryService.NewRegistryService(registryRepo, sessionRepo, "vuqar", 30)

	seedSession(t, ctx, sessionRepo, "islam", "lunch", analyticsTestNow.Add(-3*time.Hour), 600)

	summary, err := svc.Summary(ctx, analytics.Filter{EmployeeID: "islam"})
	require.NoError(t, err)
	require.Equal(t, 1, summary.SessionCount)

	require.NoError(t, registrySvc.DeleteEmployee(ctx, "islam", true))

	summary, err = svc.Summary(ctx, analytics.Filter{EmployeeID: "islam"})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.SessionCount)
	assert.Empty(t, summary.Employees)
}

func TestAnalyticsService_Summary_ReattachesCurrentRegistryNames(t *testing.T) {
	ctx := context.Background()

	store := storage.NewMemoryStore()
	registryRepo := keyvalue.NewRegistryRepository(store)
	sessionRepo := keyvalue.NewSessionRepository(store)

	svc := NewAnalyticsService(registryRepo, sessionRepo, 30)
	svc.(*AnalyticsServiceImpl).now = func() time.Time { return analyticsTestNow }

	seedSession(t, ctx, sessionRepo, "sanan", "tea", analyticsTestNow.Add(-time.Hour), 90)

	// Rename the employee after the session was recorded.
	teams, err := registryRepo.Load(ctx)
	require.NoError(t, err)
	for i := range teams {
		for j := range teams[i].Employees {
			if teams[i].Employees[j].ID == "sanan" {
				teams[i].Employees[j].Name = "Sanan Renamed"
			}
		}
	}
	require.NoError(t, registryRepo.Save(ctx, teams))

	summary, err := svc.Summary(ctx, analytics.Filter{EmployeeID: "sanan"})
	require.NoError(t, err)
	require.Len(t, summary.Employees, 1)
	assert.Equal(t, "Sanan Renamed", summary.Employees[0].EmployeeName)
}
