package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/breakdesk/breakdesk-backend-go/internal/config"
	"github.com/breakdesk/breakdesk-backend-go/internal/pkg/storage"
	"github.com/breakdesk/breakdesk-backend-go/internal/repository/keyvalue"
	analyticsService "github.com/breakdesk/breakdesk-backend-go/internal/service/analytics"
	registryService "github.com/breakdesk/breakdesk-backend-go/internal/service/registry"
	timerService "github.com/breakdesk/breakdesk-backend-go/internal/service/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	store := storage.NewMemoryStore()
	registryRepo := keyvalue.NewRegistryRepository(store)
	sessionRepo := keyvalue.NewSessionRepository(store)
	stateRepo := keyvalue.NewAppStateRepository(store)

	registrySvc := registryService.NewRegistryService(registryRepo, sessionRepo, "vuqar", 30)
	timerSvc := timerService.NewTimerService(registrySvc, sessionRepo, stateRepo, 1800)
	analyticsSvc := analyticsService.NewAnalyticsService(registryRepo, sessionRepo, 30)
	t.Cleanup(timerSvc.Shutdown)

	cfg := &config.Config{
		App: config.AppConfig{Env: "test"},
	}

	return NewRouter(
		cfg,
		registrySvc,
		NewAuthHandler(registrySvc),
		NewRegistryHandler(registrySvc),
		NewTimerHandler(timerSvc),
		NewAnalyticsHandler(analyticsSvc),
	)
}

func doRequest(t *testing.T, router http.Handler, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req = req.WithContext(context.Background())
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Ping(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/ping", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Hello from Express server v2!"}`, rec.Body.String())
}

func TestRouter_Demo(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/demo", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Hello from the server"}`, rec.Body.String())
}

func TestRouter_UnknownAPIRouteIsJSON404(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"API endpoint not found"}`, rec.Body.String())
}

func TestRouter_VerifyPIN(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/auth/verify-pin", map[string]string{
		"employee_id": "sanan",
		"pin":         "Sanan123",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			EmployeeID string `json:"employee_id"`
			Admin      bool   `json:"admin"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "sanan", envelope.Data.EmployeeID)
	assert.False(t, envelope.Data.Admin)
}

func TestRouter_VerifyPIN_WrongPIN(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/auth/verify-pin", map[string]string{
		"employee_id": "sanan",
		"pin":         "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Неверный код доступа")
}

func TestRouter_VerifyPIN_MissingFields(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/auth/verify-pin", map[string]string{}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRouter_RegistryRequiresAdmin(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/registry", nil, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/registry", nil, map[string]string{
		"X-Employee-ID": "sanan",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/registry", nil, map[string]string{
		"X-Employee-ID": "vuqar",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	// The capability travels in the header only; a query parameter
	// grants nothing.
	rec = doRequest(t, router, http.MethodGet, "/api/v1/registry?employee=vuqar", nil, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_TimerFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/timer/select", map[string]string{
		"team_id":     "technical-support",
		"employee_id": "sanan",
		"pin":         "sanan123",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/timer/start", map[string]string{
		"break_type": "tea",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			State             string `json:"state"`
			SelectedBreakType string `json:"selected_break_type"`
			DailyLimitSeconds int    `json:"daily_limit_seconds"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "running", envelope.Data.State)
	assert.Equal(t, "tea", envelope.Data.SelectedBreakType)
	assert.Equal(t, 1800, envelope.Data.DailyLimitSeconds)

	// A second start conflicts.
	rec = doRequest(t, router, http.MethodPost, "/api/v1/timer/start", map[string]string{
		"break_type": "lunch",
	}, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/timer/stop", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_AnalyticsRequiresAdmin(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/analytics/summary", nil, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_AnalyticsExportIsCSVDownload(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/analytics/export", nil, map[string]string{
		"X-Employee-ID": "vuqar",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "break_report_")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte{0xEF, 0xBB, 0xBF}))
}
