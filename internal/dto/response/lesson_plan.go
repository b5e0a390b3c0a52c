package response

import (
	"time"

	"golf-lesson-booking/internal/data/entity"
)

type LessonPlanResponse struct {
	ID              string                `json:"id"`
	Name            string                `json:"name"`
	Category        entity.LessonCategory `json:"category"`
	Description     *string               `json:"description,omitempty"`
	Price           int                   `json:"price"`
	DurationMinutes int                   `json:"duration_minutes"`
	MaxAttendees    int                   `json:"max_attendees"`
	IsPublished     bool                  `json:"is_published"`
	DisplayOrder    int                   `json:"display_order"`
	CreatedAt       time.Time             `json:"created_at"`
}

// Helper converters
func LessonPlanToResponse(plan *entity.LessonPlan) LessonPlanResponse {
	return LessonPlanResponse{
		ID:              plan.ID.String(),
		Name:            plan.Name,
		Category:        plan.Category,
		Description:     plan.Description,
		Price:           plan.Price,
		DurationMinutes: plan.DurationMinutes,
		MaxAttendees:    plan.MaxAttendees,
		IsPublished:     plan.IsPublished,
		DisplayOrder:    plan.DisplayOrder,
		CreatedAt:       plan.CreatedAt,
	}
}
