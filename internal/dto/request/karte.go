package request

type InstructorNoteRequest struct {
	Content   string `json:"content" validate:"required,min=1,max=2000"`
	IsPrivate bool   `json:"is_private"`
}

type CreateDrillRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	VideoURL    *string `json:"video_url,omitempty" validate:"omitempty,url"`
	DueDate     *string `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateDrillRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	VideoURL    *string `json:"video_url,omitempty" validate:"omitempty,url"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=ASSIGNED IN_PROGRESS COMPLETED"`
	DueDate     *string `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
