package http

import (
	"encoding/json"
	"net/http"

	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/movement"
	"github.com/utp-asistencia/asistencia-backend-go/internal/handler/http/response"
)

type MovementHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type movementHandlerImpl struct {
	movementService movement.MovementService
}

func NewMovementHandler(movementService movement.MovementService) MovementHandler {
	return &movementHandlerImpl{
		movementService: movementService,
	}
}

// Create implements MovementHandler.
func (h *movementHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req movement.CreateMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.movementService.CreateMovement(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Movement created", resp)
}

// List implements MovementHandler. ?active=true narrows to active entries.
func (h *movementHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	onlyActive := r.URL.Query().Get("active") == "true"

	resp, err := h.movementService.ListMovements(r.Context(), onlyActive)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Deactivate implements MovementHandler.
func (h *movementHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid movement ID", nil)
		return
	}

	resp, err := h.movementService.DeactivateMovement(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Movement deactivated", resp)
}
