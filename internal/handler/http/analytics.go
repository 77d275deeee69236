package http

import (
	"fmt"
	"net/http"

	"github.com/breakdesk/breakdesk-backend-go/internal/domain/analytics"
	"github.com/breakdesk/breakdesk-backend-go/internal/handler/http/response"
)

type AnalyticsHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type analyticsHandlerImpl struct {
	analyticsService analytics.Service
}

func NewAnalyticsHandler(analyticsService analytics.Service) AnalyticsHandler {
	return &analyticsHandlerImpl{
		analyticsService: analyticsService,
	}
}

// Summary implements AnalyticsHandler
func (h *analyticsHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	filter := analytics.Filter{
		Date:       r.URL.Query().Get("date"),
		TeamID:     r.URL.Query().Get("team"),
		EmployeeID: r.URL.Query().Get("employee"),
	}

	result, err := h.analyticsService.Summary(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Export implements AnalyticsHandler. Streams the CSV report as a file
// download rather than the usual JSON envelope.
func (h *analyticsHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	export, err := h.analyticsService.ExportCSV(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(export.Content)
}
