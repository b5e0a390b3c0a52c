package request

type CreateScheduleRequest struct {
	LessonPlanID string  `json:"lesson_plan_id" validate:"required,uuid4"`
	StartAt      string  `json:"start_at" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Location     *string `json:"location,omitempty" validate:"omitempty,max=200"`
	Note         *string `json:"note,omitempty" validate:"omitempty,max=500"`
	TeeOffTime   *string `json:"tee_off_time,omitempty" validate:"omitempty,max=20"`
}

type SetAvailabilityRequest struct {
	IsAvailable bool `json:"is_available"`
}
