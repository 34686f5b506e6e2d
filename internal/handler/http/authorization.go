package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/authorization"
	"github.com/utp-asistencia/asistencia-backend-go/internal/handler/http/response"
)

type AuthorizationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type authorizationHandlerImpl struct {
	authorizationService authorization.AuthorizationService
}

func NewAuthorizationHandler(authorizationService authorization.AuthorizationService) AuthorizationHandler {
	return &authorizationHandlerImpl{
		authorizationService: authorizationService,
	}
}

// Create implements AuthorizationHandler.
func (h *authorizationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req authorization.CreateAuthorizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.authorizationService.CreateAuthorization(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Authorization requested", resp)
}

// Get implements AuthorizationHandler.
func (h *authorizationHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid authorization ID", nil)
		return
	}

	resp, err := h.authorizationService.GetAuthorization(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List implements AuthorizationHandler. ?state filters by PENDIENTE,
// APROBADO or RECHAZADO.
func (h *authorizationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.authorizationService.ListAuthorizations(r.Context(), r.URL.Query().Get("state"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Approve implements AuthorizationHandler.
func (h *authorizationHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.authorizationService.ApproveAuthorization, "Authorization approved")
}

// Reject implements AuthorizationHandler.
func (h *authorizationHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, h.authorizationService.RejectAuthorization, "Authorization rejected")
}

func (h *authorizationHandlerImpl) resolve(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, id int64, req authorization.ResolveAuthorizationRequest) (authorization.AuthorizationResponse, error),
	message string,
) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid authorization ID", nil)
		return
	}

	var req authorization.ResolveAuthorizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := fn(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, resp)
}
