package adaptor

import (
	"encoding/json"
	"net/http"

	"golf-lesson-booking/internal/dto/request"
	"golf-lesson-booking/internal/usecase"
	"golf-lesson-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CustomerHandler serves the admin-only karte endpoints.
type CustomerHandler struct {
	service usecase.CustomerService
	log     *zap.Logger
}

func NewCustomerHandler(service usecase.CustomerService, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		log:     log.With(zap.String("handler", "customer")),
	}
}

// ListCustomers handles GET /api/admin/customers (admin only)
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.ListCustomers(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list customers")
		return
	}

	utils.ResponseSuccess(w, "success", customers)
}

// GetCustomerDetail handles GET /api/admin/customers/{id} (admin only)
func (h *CustomerHandler) GetCustomerDetail(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")
	if customerID == "" {
		utils.ResponseBadRequest(w, "Customer ID is required", nil)
		return
	}

	detail, err := h.service.GetCustomerDetail(r.Context(), customerID)
	if err != nil {
		handleServiceError(w, h.log, err, "get customer detail")
		return
	}

	utils.ResponseSuccess(w, "success", detail)
}

// CreateNote handles POST /api/admin/customers/{id}/notes (admin only)
func (h *CustomerHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")
	if customerID == "" {
		utils.ResponseBadRequest(w, "Customer ID is required", nil)
		return
	}

	var req request.InstructorNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	note, err := h.service.CreateNote(r.Context(), customerID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create note")
		return
	}

	utils.ResponseCreated(w, "success", note)
}

// UpdateNote handles PUT /api/admin/notes/{id} (admin only)
func (h *CustomerHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	noteID := chi.URLParam(r, "id")
	if noteID == "" {
		utils.ResponseBadRequest(w, "Note ID is required", nil)
		return
	}

	var req request.InstructorNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	note, err := h.service.UpdateNote(r.Context(), noteID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update note")
		return
	}

	utils.ResponseSuccess(w, "success", note)
}

// DeleteNote handles DELETE /api/admin/notes/{id} (admin only)
func (h *CustomerHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	noteID := chi.URLParam(r, "id")
	if noteID == "" {
		utils.ResponseBadRequest(w, "Note ID is required", nil)
		return
	}

	if err := h.service.DeleteNote(r.Context(), noteID); err != nil {
		handleServiceError(w, h.log, err, "delete note")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CreateDrill handles POST /api/admin/customers/{id}/drills (admin only)
func (h *CustomerHandler) CreateDrill(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")
	if customerID == "" {
		utils.ResponseBadRequest(w, "Customer ID is required", nil)
		return
	}

	var req request.CreateDrillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	drill, err := h.service.CreateDrill(r.Context(), customerID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create drill")
		return
	}

	utils.ResponseCreated(w, "success", drill)
}

// UpdateDrill handles PUT /api/admin/drills/{id} (admin only)
func (h *CustomerHandler) UpdateDrill(w http.ResponseWriter, r *http.Request) {
	drillID := chi.URLParam(r, "id")
	if drillID == "" {
		utils.ResponseBadRequest(w, "Drill ID is required", nil)
		return
	}

	var req request.UpdateDrillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	drill, err := h.service.UpdateDrill(r.Context(), drillID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update drill")
		return
	}

	utils.ResponseSuccess(w, "success", drill)
}

// DeleteDrill handles DELETE /api/admin/drills/{id} (admin only)
func (h *CustomerHandler) DeleteDrill(w http.ResponseWriter, r *http.Request) {
	drillID := chi.URLParam(r, "id")
	if drillID == "" {
		utils.ResponseBadRequest(w, "Drill ID is required", nil)
		return
	}

	if err := h.service.DeleteDrill(r.Context(), drillID); err != nil {
		handleServiceError(w, h.log, err, "delete drill")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
