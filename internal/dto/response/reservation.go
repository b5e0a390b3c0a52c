package response

import (
	"time"

	"golf-lesson-booking/internal/data/entity"
)

type ReservationResponse struct {
	ID         string  `json:"id"`
	Code       string  `json:"code"`
	UserID     string  `json:"user_id"`
	UserName   *string `json:"user_name,omitempty"`
	UserEmail  string  `json:"user_email"`
	ScheduleID string  `json:"schedule_id"`

	PlanName     string                `json:"plan_name"`
	PlanCategory entity.LessonCategory `json:"plan_category"`
	PlanPrice    int                   `json:"plan_price"`
	PlanDuration int                   `json:"plan_duration"`
	StartAt      time.Time             `json:"start_at"`
	EndAt        time.Time             `json:"end_at"`
	Location     *string               `json:"location,omitempty"`
	TeeOffTime   *string               `json:"tee_off_time,omitempty"`

	Status             entity.ReservationStatus `json:"status"`
	Concern            *string                  `json:"concern,omitempty"`
	AgreedCancelPolicy bool                     `json:"agreed_cancel_policy"`
	AgreedPhotoPost    bool                     `json:"agreed_photo_post"`

	CancelRequested   bool               `json:"cancel_requested"`
	CancelRequestedAt *time.Time         `json:"cancel_requested_at,omitempty"`
	CancelTier        *entity.CancelTier `json:"cancel_tier,omitempty"`
	CancelReason      *string            `json:"cancel_reason,omitempty"`
	CancelledAt       *time.Time         `json:"cancelled_at,omitempty"`

	CancelPolicy *CancelPolicyResponse `json:"cancel_policy,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
}

// CancelPolicyResponse describes what cancelling right now would cost.
// Attached only to reservations that are still cancellable.
type CancelPolicyResponse struct {
	Tier             entity.CancelTier `json:"tier"`
	FeePercent       int               `json:"fee_percent"`
	FeeAmount        int               `json:"fee_amount"`
	DaysUntil        int               `json:"days_until"`
	Description      string            `json:"description"`
	RequiresApproval bool              `json:"requires_approval"`
}

// Helper converters
func ReservationToResponse(rsv *entity.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:                 rsv.ID.String(),
		Code:               rsv.Code,
		UserID:             rsv.UserID.String(),
		UserName:           rsv.UserName,
		UserEmail:          rsv.UserEmail,
		ScheduleID:         rsv.ScheduleID.String(),
		PlanName:           rsv.PlanName,
		PlanCategory:       rsv.PlanCategory,
		PlanPrice:          rsv.PlanPrice,
		PlanDuration:       rsv.PlanDuration,
		StartAt:            rsv.StartAt,
		EndAt:              rsv.EndAt,
		Location:           rsv.Location,
		TeeOffTime:         rsv.TeeOffTime,
		Status:             rsv.Status,
		Concern:            rsv.Concern,
		AgreedCancelPolicy: rsv.AgreedCancelPolicy,
		AgreedPhotoPost:    rsv.AgreedPhotoPost,
		CancelRequested:    rsv.CancelRequested,
		CancelRequestedAt:  rsv.CancelRequestedAt,
		CancelTier:         rsv.CancelTier,
		CancelReason:       rsv.CancelReason,
		CancelledAt:        rsv.CancelledAt,
		CreatedAt:          rsv.CreatedAt,
	}
}
