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

type LessonPlanHandler struct {
	service usecase.LessonPlanService
	log     *zap.Logger
}

func NewLessonPlanHandler(service usecase.LessonPlanService, log *zap.Logger) *LessonPlanHandler {
	return &LessonPlanHandler{
		service: service,
		log:     log.With(zap.String("handler", "lesson_plan")),
	}
}

// ListPublished handles GET /api/plans (public)
func (h *LessonPlanHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	plans, err := h.service.ListPublished(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list plans")
		return
	}

	utils.ResponseSuccess(w, "success", plans)
}

// GetByID handles GET /api/plans/{id} (public)
func (h *LessonPlanHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "id")
	if planID == "" {
		utils.ResponseBadRequest(w, "Plan ID is required", nil)
		return
	}

	plan, err := h.service.GetByID(r.Context(), planID)
	if err != nil {
		handleServiceError(w, h.log, err, "get plan")
		return
	}

	utils.ResponseSuccess(w, "success", plan)
}

// ==================== ADMIN METHODS ====================

// ListAll handles GET /api/admin/plans (admin only)
func (h *LessonPlanHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	plans, err := h.service.ListAll(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list all plans")
		return
	}

	utils.ResponseSuccess(w, "success", plans)
}

// Create handles POST /api/admin/plans (admin only)
func (h *LessonPlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.LessonPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	plan, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create plan")
		return
	}

	utils.ResponseCreated(w, "success", plan)
}

// Update handles PUT /api/admin/plans/{id} (admin only)
func (h *LessonPlanHandler) Update(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "id")
	if planID == "" {
		utils.ResponseBadRequest(w, "Plan ID is required", nil)
		return
	}

	var req request.LessonPlanUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	plan, err := h.service.Update(r.Context(), planID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update plan")
		return
	}

	utils.ResponseSuccess(w, "success", plan)
}

// Delete handles DELETE /api/admin/plans/{id} (admin only)
func (h *LessonPlanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "id")
	if planID == "" {
		utils.ResponseBadRequest(w, "Plan ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), planID); err != nil {
		handleServiceError(w, h.log, err, "delete plan")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
