package entity

import (
	"time"

	"github.com/google/uuid"
)

// RoundScore is a customer-recorded round result.
type RoundScore struct {
	Base
	UserID     uuid.UUID `db:"user_id"`
	PlayedAt   time.Time `db:"played_at"`
	CourseName string    `db:"course_name"`
	Score      int       `db:"score"`
	OutScore   *int      `db:"out_score"`
	InScore    *int      `db:"in_score"`
	FairwayHit *int      `db:"fairway_hit"`
	Putts      *int      `db:"putts"`
	Memo       *string   `db:"memo"`
}
