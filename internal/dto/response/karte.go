package response

import (
	"time"

	"golf-lesson-booking/internal/data/entity"
)

type InstructorNoteResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	IsPrivate bool      `json:"is_private"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DrillResponse struct {
	ID          string             `json:"id"`
	UserID      string             `json:"user_id"`
	Title       string             `json:"title"`
	Description *string            `json:"description,omitempty"`
	VideoURL    *string            `json:"video_url,omitempty"`
	Status      entity.DrillStatus `json:"status"`
	DueDate     *time.Time         `json:"due_date,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

type CustomerSummaryResponse struct {
	UserResponse
	ReservationCount int64 `json:"reservation_count"`
}

type CustomerDetailResponse struct {
	User         UserResponse             `json:"user"`
	Reservations []ReservationResponse    `json:"reservations"`
	Notes        []InstructorNoteResponse `json:"notes"`
	Drills       []DrillResponse          `json:"drills"`
	Scores       []RoundScoreResponse     `json:"scores"`
}

// Helper converters
func InstructorNoteToResponse(note *entity.InstructorNote) InstructorNoteResponse {
	return InstructorNoteResponse{
		ID:        note.ID.String(),
		UserID:    note.UserID.String(),
		Content:   note.Content,
		IsPrivate: note.IsPrivate,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

func DrillToResponse(drill *entity.Drill) DrillResponse {
	return DrillResponse{
		ID:          drill.ID.String(),
		UserID:      drill.UserID.String(),
		Title:       drill.Title,
		Description: drill.Description,
		VideoURL:    drill.VideoURL,
		Status:      drill.Status,
		DueDate:     drill.DueDate,
		CreatedAt:   drill.CreatedAt,
	}
}
