package http

import (
	"encoding/json"
	"net/http"

	"github.com/breakdesk/breakdesk-backend-go/internal/domain/timer"
	"github.com/breakdesk/breakdesk-backend-go/internal/handler/http/response"
)

type TimerHandler interface {
	Status(w http.ResponseWriter, r *http.Request)
	Select(w http.ResponseWriter, r *http.Request)
	Start(w http.ResponseWriter, r *http.Request)
	Pause(w http.ResponseWriter, r *http.Request)
	Resume(w http.ResponseWriter, r *http.Request)
	Stop(w http.ResponseWriter, r *http.Request)
	Reset(w http.ResponseWriter, r *http.Request)
}

type timerHandlerImpl struct {
	timerService timer.Service
}

func NewTimerHandler(timerService timer.Service) TimerHandler {
	return &timerHandlerImpl{
		timerService: timerService,
	}
}

// Status implements TimerHandler
func (h *timerHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	result, err := h.timerService.Status(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Select implements TimerHandler
func (h *timerHandlerImpl) Select(w http.ResponseWriter, r *http.Request) {
	var req timer.SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timerService.Select(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Start implements TimerHandler
func (h *timerHandlerImpl) Start(w http.ResponseWriter, r *http.Request) {
	var req timer.StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.timerService.Start(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Pause implements TimerHandler
func (h *timerHandlerImpl) Pause(w http.ResponseWriter, r *http.Request) {
	result, err := h.timerService.Pause(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Resume implements TimerHandler
func (h *timerHandlerImpl) Resume(w http.ResponseWriter, r *http.Request) {
	result, err := h.timerService.Resume(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Stop implements TimerHandler
func (h *timerHandlerImpl) Stop(w http.ResponseWriter, r *http.Request) {
	result, err := h.timerService.Stop(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Reset implements TimerHandler
func (h *timerHandlerImpl) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.timerService.Reset(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timer reset", nil)
}
