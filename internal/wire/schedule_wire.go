package wire

import (
	"golf-lesson-booking/internal/adaptor"
	"golf-lesson-booking/internal/data/repository"
	"golf-lesson-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSchedule(
	r chi.Router,
	scheduleHandler *adaptor.ScheduleHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/schedules", scheduleHandler.ListUpcoming)
	r.Get("/api/schedules/{id}", scheduleHandler.GetByID)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/schedules", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/", scheduleHandler.Create)
		r.Put("/{id}/availability", scheduleHandler.SetAvailability)
		r.Delete("/{id}", scheduleHandler.Delete)
	})
}
