package wire

import (
	"golf-lesson-booking/internal/adaptor"
	"golf-lesson-booking/internal/data/repository"
	"golf-lesson-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePlan(
	r chi.Router,
	planHandler *adaptor.LessonPlanHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/plans", planHandler.ListPublished)
	r.Get("/api/plans/{id}", planHandler.GetByID)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/plans", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Get("/", planHandler.ListAll)
		r.Post("/", planHandler.Create)
		r.Put("/{id}", planHandler.Update)
		r.Delete("/{id}", planHandler.Delete)
	})
}
