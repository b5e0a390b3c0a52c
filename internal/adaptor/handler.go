package adaptor

import (
	"golf-lesson-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	Reservation *ReservationHandler
	Schedule    *ScheduleHandler
	Plan        *LessonPlanHandler
	Customer    *CustomerHandler
	Score       *RoundScoreHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		Reservation: NewReservationHandler(service.Reservation, log),
		Schedule:    NewScheduleHandler(service.Schedule, log),
		Plan:        NewLessonPlanHandler(service.Plan, log),
		Customer:    NewCustomerHandler(service.Customer, log),
		Score:       NewRoundScoreHandler(service.Score, log),
	}
}
