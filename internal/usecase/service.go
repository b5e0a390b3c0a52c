package usecase

import (
	"golf-lesson-booking/internal/data/repository"
	"golf-lesson-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	Reservation ReservationService
	Schedule    ScheduleService
	Plan        LessonPlanService
	Customer    CustomerService
	Score       RoundScoreService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger, notifier Notifier) *Service {
	return &Service{
		Auth:        NewAuthService(repo, config, log),
		Reservation: NewReservationService(repo, log, notifier),
		Schedule:    NewScheduleService(repo, log),
		Plan:        NewLessonPlanService(repo, log),
		Customer:    NewCustomerService(repo, log),
		Score:       NewRoundScoreService(repo, log),
	}
}
