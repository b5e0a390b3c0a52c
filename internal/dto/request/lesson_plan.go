package request

type LessonPlanRequest struct {
	Name            string  `json:"name" validate:"required,min=1,max=100"`
	Category        string  `json:"category" validate:"required,oneof=REGULAR ROUND"`
	Description     *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Price           int     `json:"price" validate:"required,min=0"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,min=1,max=600"`
	MaxAttendees    int     `json:"max_attendees" validate:"min=1,max=20"`
	IsPublished     bool    `json:"is_published"`
	DisplayOrder    int     `json:"display_order" validate:"min=0"`
}

type LessonPlanUpdateRequest struct {
	Name            *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Category        *string `json:"category,omitempty" validate:"omitempty,oneof=REGULAR ROUND"`
	Description     *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Price           *int    `json:"price,omitempty" validate:"omitempty,min=0"`
	DurationMinutes *int    `json:"duration_minutes,omitempty" validate:"omitempty,min=1,max=600"`
	MaxAttendees    *int    `json:"max_attendees,omitempty" validate:"omitempty,min=1,max=20"`
	IsPublished     *bool   `json:"is_published,omitempty"`
	DisplayOrder    *int    `json:"display_order,omitempty" validate:"omitempty,min=0"`
}
