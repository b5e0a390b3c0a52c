package wire

import (
	"golf-lesson-booking/internal/adaptor"
	"golf-lesson-booking/internal/data/repository"
	"golf-lesson-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReservation(
	r chi.Router,
	reservationHandler *adaptor.ReservationHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/reservations - Book a slot
		r.Post("/api/reservations", reservationHandler.Create)

		// GET /api/reservations - Own reservation history with fee preview
		r.Get("/api/reservations", reservationHandler.ListMine)

		// GET /api/reservations/{id} - Reservation detail (owner or admin)
		r.Get("/api/reservations/{id}", reservationHandler.GetByID)

		// POST /api/reservations/{id}/cancel - Two-step cancellation
		r.Post("/api/reservations/{id}/cancel", reservationHandler.RequestCancellation)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/reservations", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Get("/", reservationHandler.ListAll)
		r.Put("/{id}/approve", reservationHandler.Approve)
		r.Put("/{id}/reject", reservationHandler.Reject)
		r.Put("/{id}/approve-cancellation", reservationHandler.ApproveCancellation)
		r.Put("/{id}/complete", reservationHandler.Complete)
	})
}
