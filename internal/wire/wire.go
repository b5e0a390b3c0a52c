package wire

import (
	"net/http"

	"golf-lesson-booking/internal/adaptor"
	"golf-lesson-booking/internal/data/repository"
	"golf-lesson-booking/internal/notification"
	"golf-lesson-booking/internal/usecase"
	"golf-lesson-booking/pkg/middleware"
	"golf-lesson-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the dependency graph: repositories in, router out.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	mailer := notification.NewMailer(config, logger)
	notifier := notification.NewDispatcher(mailer, repo.User, logger)

	service := usecase.NewService(repo, config, logger, notifier)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, repo, logger)
	wireReservation(r, handler.Reservation, repo, logger)
	wireSchedule(r, handler.Schedule, repo, logger)
	wirePlan(r, handler.Plan, repo, logger)
	wireCustomer(r, handler.Customer, repo, logger)
	wireScore(r, handler.Score, repo, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
