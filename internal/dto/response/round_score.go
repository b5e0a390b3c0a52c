package response

import (
	"time"

	"golf-lesson-booking/internal/data/entity"
)

type RoundScoreResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	PlayedAt   time.Time `json:"played_at"`
	CourseName string    `json:"course_name"`
	Score      int       `json:"score"`
	OutScore   *int      `json:"out_score,omitempty"`
	InScore    *int      `json:"in_score,omitempty"`
	FairwayHit *int      `json:"fairway_hit,omitempty"`
	Putts      *int      `json:"putts,omitempty"`
	Memo       *string   `json:"memo,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Helper converters
func RoundScoreToResponse(score *entity.RoundScore) RoundScoreResponse {
	return RoundScoreResponse{
		ID:         score.ID.String(),
		UserID:     score.UserID.String(),
		PlayedAt:   score.PlayedAt,
		CourseName: score.CourseName,
		Score:      score.Score,
		OutScore:   score.OutScore,
		InScore:    score.InScore,
		FairwayHit: score.FairwayHit,
		Putts:      score.Putts,
		Memo:       score.Memo,
		CreatedAt:  score.CreatedAt,
	}
}
