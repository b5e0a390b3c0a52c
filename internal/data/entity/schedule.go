package entity

import (
	"time"

	"github.com/google/uuid"
)

// Schedule is a bookable time slot. EndAt is derived from the plan
// duration at creation time and never mutated on its own.
//
// IsAvailable stores only the admin block switch. Whether a slot can
// actually be booked also depends on no non-terminal reservation
// referencing it; that part is derived from the reservations table.
type Schedule struct {
	Base
	LessonPlanID uuid.UUID `db:"lesson_plan_id"`
	StartAt      time.Time `db:"start_at"`
	EndAt        time.Time `db:"end_at"`
	Location     *string   `db:"location"`
	IsAvailable  bool      `db:"is_available"`
	Note         *string   `db:"note"`
	// Tee-off label for round lessons, e.g. "8:30". Nil for regular lessons.
	TeeOffTime *string `db:"tee_off_time"`
}
