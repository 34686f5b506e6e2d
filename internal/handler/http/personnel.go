package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/personnel"
	"github.com/utp-asistencia/asistencia-backend-go/internal/handler/http/response"
)

type PersonnelHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type personnelHandlerImpl struct {
	personnelService personnel.PersonnelService
}

func NewPersonnelHandler(personnelService personnel.PersonnelService) PersonnelHandler {
	return &personnelHandlerImpl{
		personnelService: personnelService,
	}
}

func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// Create implements PersonnelHandler.
func (h *personnelHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req personnel.CreatePersonnelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.personnelService.CreatePersonnel(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Personnel created", resp)
}

// Get implements PersonnelHandler.
func (h *personnelHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid personnel ID", nil)
		return
	}

	resp, err := h.personnelService.GetPersonnel(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List implements PersonnelHandler.
func (h *personnelHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.personnelService.ListPersonnel(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Update implements PersonnelHandler.
func (h *personnelHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid personnel ID", nil)
		return
	}

	var req personnel.UpdatePersonnelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.personnelService.UpdatePersonnel(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Personnel updated", resp)
}

// Delete implements PersonnelHandler.
func (h *personnelHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Invalid personnel ID", nil)
		return
	}

	if err := h.personnelService.DeletePersonnel(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Personnel deleted", nil)
}
