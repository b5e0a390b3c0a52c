package usecase

import (
	"time"

	"golf-lesson-booking/internal/data/entity"
)

// CancelPolicy is the fee tier that applies when a reservation is
// cancelled at a given moment. The tier depends on the number of
// calendar days between the cancellation date and the lesson date,
// not on the exact hour distance.
type CancelPolicy struct {
	Tier       entity.CancelTier
	FeePercent int
	DaysUntil  int
}

// EvaluateCancelPolicy returns the policy in effect for a lesson
// starting at lessonStart when cancellation happens at now.
//
//	7 days or more ahead  -> FREE (0%)
//	3 to 6 days ahead     -> HALF (50%)
//	2 days or less        -> FULL (100%)
//
// Same-day and past-date cancellations fall under FULL.
func EvaluateCancelPolicy(lessonStart, now time.Time) CancelPolicy {
	days := calendarDaysUntil(lessonStart, now)

	switch {
	case days >= 7:
		return CancelPolicy{Tier: entity.CancelTierFree, FeePercent: 0, DaysUntil: days}
	case days >= 3:
		return CancelPolicy{Tier: entity.CancelTierHalf, FeePercent: 50, DaysUntil: days}
	default:
		return CancelPolicy{Tier: entity.CancelTierFull, FeePercent: 100, DaysUntil: days}
	}
}

// calendarDaysUntil counts whole calendar days between now and the
// lesson date, both truncated to midnight in now's location. A lesson
// later today is 0 regardless of the hour.
func calendarDaysUntil(lessonStart, now time.Time) int {
	loc := now.Location()
	y1, m1, d1 := now.In(loc).Date()
	y2, m2, d2 := lessonStart.In(loc).Date()

	from := time.Date(y1, m1, d1, 0, 0, 0, 0, loc)
	to := time.Date(y2, m2, d2, 0, 0, 0, 0, loc)

	return int(to.Sub(from).Hours() / 24)
}

// FeeAmount computes the cancellation fee in yen for the given lesson price.
func (p CancelPolicy) FeeAmount(price int) int {
	return price * p.FeePercent / 100
}

// RequiresApproval reports whether cancelling at this tier needs the
// instructor's sign-off. Only free cancellations complete immediately.
func (p CancelPolicy) RequiresApproval() bool {
	return p.Tier != entity.CancelTierFree
}

// Description is the customer-facing explanation of the fee.
func (p CancelPolicy) Description() string {
	switch p.Tier {
	case entity.CancelTierFree:
		return "キャンセル料はかかりません"
	case entity.CancelTierHalf:
		return "レッスン料金の50%のキャンセル料がかかります"
	default:
		return "レッスン料金の100%のキャンセル料がかかります"
	}
}
