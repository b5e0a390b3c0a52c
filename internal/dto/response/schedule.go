package response

import (
	"time"

	"golf-lesson-booking/internal/data/entity"
)

type ScheduleResponse struct {
	ID           string    `json:"id"`
	LessonPlanID string    `json:"lesson_plan_id"`
	PlanName     string    `json:"plan_name,omitempty"`
	StartAt      time.Time `json:"start_at"`
	EndAt        time.Time `json:"end_at"`
	Location     *string   `json:"location,omitempty"`
	Note         *string   `json:"note,omitempty"`
	TeeOffTime   *string   `json:"tee_off_time,omitempty"`
	IsAvailable  bool      `json:"is_available"`
	IsBookable   bool      `json:"is_bookable"`
	CreatedAt    time.Time `json:"created_at"`
}

// Helper converters
func ScheduleToResponse(schedule *entity.Schedule, planName string, hasActiveReservation bool) ScheduleResponse {
	return ScheduleResponse{
		ID:           schedule.ID.String(),
		LessonPlanID: schedule.LessonPlanID.String(),
		PlanName:     planName,
		StartAt:      schedule.StartAt,
		EndAt:        schedule.EndAt,
		Location:     schedule.Location,
		Note:         schedule.Note,
		TeeOffTime:   schedule.TeeOffTime,
		IsAvailable:  schedule.IsAvailable,
		IsBookable:   schedule.IsAvailable && !hasActiveReservation,
		CreatedAt:    schedule.CreatedAt,
	}
}
