package request

type CreateRoundScoreRequest struct {
	PlayedAt   string  `json:"played_at" validate:"required,datetime=2006-01-02"`
	CourseName string  `json:"course_name" validate:"required,min=1,max=200"`
	Score      int     `json:"score" validate:"required,min=18,max=300"`
	OutScore   *int    `json:"out_score,omitempty" validate:"omitempty,min=9,max=150"`
	InScore    *int    `json:"in_score,omitempty" validate:"omitempty,min=9,max=150"`
	FairwayHit *int    `json:"fairway_hit,omitempty" validate:"omitempty,min=0,max=14"`
	Putts      *int    `json:"putts,omitempty" validate:"omitempty,min=0,max=100"`
	Memo       *string `json:"memo,omitempty" validate:"omitempty,max=1000"`
}
