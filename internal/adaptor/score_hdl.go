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

type RoundScoreHandler struct {
	service usecase.RoundScoreService
	log     *zap.Logger
}

func NewRoundScoreHandler(service usecase.RoundScoreService, log *zap.Logger) *RoundScoreHandler {
	return &RoundScoreHandler{
		service: service,
		log:     log.With(zap.String("handler", "round_score")),
	}
}

// Create handles POST /api/scores (protected)
func (h *RoundScoreHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateRoundScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	score, err := h.service.Create(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create round score")
		return
	}

	utils.ResponseCreated(w, "success", score)
}

// ListMine handles GET /api/scores (protected)
func (h *RoundScoreHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	scores, err := h.service.ListByUser(r.Context(), userID.String())
	if err != nil {
		handleServiceError(w, h.log, err, "list round scores")
		return
	}

	utils.ResponseSuccess(w, "success", scores)
}

// Delete handles DELETE /api/scores/{id} (protected)
func (h *RoundScoreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	scoreID := chi.URLParam(r, "id")
	if scoreID == "" {
		utils.ResponseBadRequest(w, "Score ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), userID.String(), scoreID); err != nil {
		handleServiceError(w, h.log, err, "delete round score")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
