package http

import (
	"encoding/json"
	"net/http"

	"github.com/breakdesk/breakdesk-backend-go/internal/domain/registry"
	"github.com/breakdesk/breakdesk-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RegistryHandler interface {
	ListTeams(w http.ResponseWriter, r *http.Request)
	AddEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
	SetPIN(w http.ResponseWriter, r *http.Request)
}

type registryHandlerImpl struct {
	registryService registry.Service
}

func NewRegistryHandler(registryService registry.Service) RegistryHandler {
	return &registryHandlerImpl{
		registryService: registryService,
	}
}

// ListTeams implements RegistryHandler
func (h *registryHandlerImpl) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.registryService.ListTeams(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, teams)
}

// AddEmployee implements RegistryHandler
func (h *registryHandlerImpl) AddEmployee(w http.ResponseWriter, r *http.Request) {
	var req registry.AddEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.registryService.AddEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee added", result)
}

// DeleteEmployee implements RegistryHandler. The destructive purge of
// the employee's session history runs only with ?confirm=true.
func (h *registryHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	confirmed := r.URL.Query().Get("confirm") == "true"

	if err := h.registryService.DeleteEmployee(r.Context(), id, confirmed); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted", nil)
}

// SetPIN implements RegistryHandler
func (h *registryHandlerImpl) SetPIN(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req registry.SetPINRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.registryService.SetPIN(r.Context(), id, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "PIN updated", nil)
}
