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

type ReservationHandler struct {
	service usecase.ReservationService
	log     *zap.Logger
}

func NewReservationHandler(service usecase.ReservationService, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		log:     log.With(zap.String("handler", "reservation")),
	}
}

// Create handles POST /api/reservations (protected)
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	rsv, err := h.service.Create(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create reservation")
		return
	}

	utils.ResponseCreated(w, "success", rsv)
}

// ListMine handles GET /api/reservations (protected)
func (h *ReservationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	reservations, err := h.service.ListByUser(r.Context(), userID.String())
	if err != nil {
		handleServiceError(w, h.log, err, "list reservations")
		return
	}

	utils.ResponseSuccess(w, "success", reservations)
}

// GetByID handles GET /api/reservations/{id} (protected)
func (h *ReservationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	role, _ := utils.GetRoleFromContext(r.Context())
	isAdmin := role == "admin"

	rsv, err := h.service.GetByID(r.Context(), reservationID, userID.String(), isAdmin)
	if err != nil {
		handleServiceError(w, h.log, err, "get reservation")
		return
	}

	utils.ResponseSuccess(w, "success", rsv)
}

// RequestCancellation handles POST /api/reservations/{id}/cancel (protected)
func (h *ReservationHandler) RequestCancellation(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	var req request.RequestCancellationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	rsv, err := h.service.RequestCancellation(r.Context(), userID.String(), reservationID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "request cancellation")
		return
	}

	utils.ResponseSuccess(w, "success", rsv)
}

// ==================== ADMIN METHODS ====================

// ListAll handles GET /api/admin/reservations (admin only)
func (h *ReservationHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 20),
	}

	reservations, err := h.service.ListAll(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list all reservations")
		return
	}

	utils.ResponseSuccess(w, "success", reservations)
}

// Approve handles PUT /api/admin/reservations/{id}/approve (admin only)
func (h *ReservationHandler) Approve(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	rsv, err := h.service.Approve(r.Context(), reservationID)
	if err != nil {
		handleServiceError(w, h.log, err, "approve reservation")
		return
	}

	utils.ResponseSuccess(w, "success", rsv)
}

// Reject handles PUT /api/admin/reservations/{id}/reject (admin only)
func (h *ReservationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	var req request.RejectReservationRequest
	if r.Body != nil {
		// Body is optional for reject
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	rsv, err := h.service.Reject(r.Context(), reservationID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "reject reservation")
		return
	}

	utils.ResponseSuccess(w, "success", rsv)
}

// ApproveCancellation handles PUT /api/admin/reservations/{id}/approve-cancellation (admin only)
func (h *ReservationHandler) ApproveCancellation(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	rsv, err := h.service.ApproveCancellation(r.Context(), reservationID)
	if err != nil {
		handleServiceError(w, h.log, err, "approve cancellation")
		return
	}

	utils.ResponseSuccess(w, "success", rsv)
}

// Complete handles PUT /api/admin/reservations/{id}/complete (admin only)
func (h *ReservationHandler) Complete(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	rsv, err := h.service.Complete(r.Context(), reservationID)
	if err != nil {
		handleServiceError(w, h.log, err, "complete reservation")
		return
	}

	utils.ResponseSuccess(w, "success", rsv)
}
