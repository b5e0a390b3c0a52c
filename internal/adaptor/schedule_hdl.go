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

type ScheduleHandler struct {
	service usecase.ScheduleService
	log     *zap.Logger
}

func NewScheduleHandler(service usecase.ScheduleService, log *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		service: service,
		log:     log.With(zap.String("handler", "schedule")),
	}
}

// ListUpcoming handles GET /api/schedules (public)
func (h *ScheduleHandler) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.service.ListUpcoming(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list schedules")
		return
	}

	utils.ResponseSuccess(w, "success", schedules)
}

// GetByID handles GET /api/schedules/{id} (public)
func (h *ScheduleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, "id")
	if scheduleID == "" {
		utils.ResponseBadRequest(w, "Schedule ID is required", nil)
		return
	}

	schedule, err := h.service.GetByID(r.Context(), scheduleID)
	if err != nil {
		handleServiceError(w, h.log, err, "get schedule")
		return
	}

	utils.ResponseSuccess(w, "success", schedule)
}

// ==================== ADMIN METHODS ====================

// Create handles POST /api/admin/schedules (admin only)
func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	schedule, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create schedule")
		return
	}

	utils.ResponseCreated(w, "success", schedule)
}

// SetAvailability handles PUT /api/admin/schedules/{id}/availability (admin only)
func (h *ScheduleHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, "id")
	if scheduleID == "" {
		utils.ResponseBadRequest(w, "Schedule ID is required", nil)
		return
	}

	var req request.SetAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	schedule, err := h.service.SetAvailability(r.Context(), scheduleID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "set schedule availability")
		return
	}

	utils.ResponseSuccess(w, "success", schedule)
}

// Delete handles DELETE /api/admin/schedules/{id} (admin only)
func (h *ScheduleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	scheduleID := chi.URLParam(r, "id")
	if scheduleID == "" {
		utils.ResponseBadRequest(w, "Schedule ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), scheduleID); err != nil {
		handleServiceError(w, h.log, err, "delete schedule")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
