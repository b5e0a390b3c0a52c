package repository

import (
	"golf-lesson-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User           UserRepository
	Session        SessionRepository
	LessonPlan     LessonPlanRepository
	Schedule       ScheduleRepository
	Reservation    ReservationRepository
	InstructorNote InstructorNoteRepository
	Drill          DrillRepository
	RoundScore     RoundScoreRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:           NewUserRepository(db, log),
		Session:        NewSessionRepository(db, log),
		LessonPlan:     NewLessonPlanRepository(db, log),
		Schedule:       NewScheduleRepository(db, log),
		Reservation:    NewReservationRepository(db, log),
		InstructorNote: NewInstructorNoteRepository(db, log),
		Drill:          NewDrillRepository(db, log),
		RoundScore:     NewRoundScoreRepository(db, log),
	}
}
