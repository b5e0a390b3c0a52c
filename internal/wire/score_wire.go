package wire

import (
	"golf-lesson-booking/internal/adaptor"
	"golf-lesson-booking/internal/data/repository"
	"golf-lesson-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireScore(
	r chi.Router,
	scoreHandler *adaptor.RoundScoreHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/api/scores", scoreHandler.Create)
		r.Get("/api/scores", scoreHandler.ListMine)
		r.Delete("/api/scores/{id}", scoreHandler.Delete)
	})
}
