package wire

import (
	"golf-lesson-booking/internal/adaptor"
	"golf-lesson-booking/internal/data/repository"
	"golf-lesson-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCustomer(
	r chi.Router,
	customerHandler *adaptor.CustomerHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	// The whole karte surface is instructor-only.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Get("/api/admin/customers", customerHandler.ListCustomers)
		r.Get("/api/admin/customers/{id}", customerHandler.GetCustomerDetail)

		r.Post("/api/admin/customers/{id}/notes", customerHandler.CreateNote)
		r.Put("/api/admin/notes/{id}", customerHandler.UpdateNote)
		r.Delete("/api/admin/notes/{id}", customerHandler.DeleteNote)

		r.Post("/api/admin/customers/{id}/drills", customerHandler.CreateDrill)
		r.Put("/api/admin/drills/{id}", customerHandler.UpdateDrill)
		r.Delete("/api/admin/drills/{id}", customerHandler.DeleteDrill)
	})
}
