package http

import (
	"encoding/json"
	"net/http"

	"github.com/breakdesk/breakdesk-backend-go/internal/domain/registry"
	"github.com/breakdesk/breakdesk-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	VerifyPIN(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	registryService registry.Service
}

func NewAuthHandler(registryService registry.Service) AuthHandler {
	return &authHandlerImpl{
		registryService: registryService,
	}
}

// VerifyPIN implements AuthHandler
func (h *authHandlerImpl) VerifyPIN(w http.ResponseWriter, r *http.Request) {
	var req registry.VerifyPINRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.registryService.VerifyPIN(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
