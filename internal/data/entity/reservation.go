package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "PENDING"
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusCompleted ReservationStatus = "COMPLETED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

type CancelTier string

const (
	CancelTierFree CancelTier = "FREE"
	CancelTierHalf CancelTier = "HALF"
	CancelTierFull CancelTier = "FULL"
)

// Reservation is a customer's claim on a Schedule. The user_* and
// plan_*/start/end/location fields are a snapshot taken at creation
// time (the booking receipt); later edits to the user profile, the
// schedule, or the plan do not alter a stored reservation.
type Reservation struct {
	Base
	Code      string    `db:"code"`
	UserID    uuid.UUID `db:"user_id"`
	UserName  *string   `db:"user_name"`
	UserEmail string    `db:"user_email"`

	ScheduleID   uuid.UUID      `db:"schedule_id"`
	PlanName     string         `db:"plan_name"`
	PlanCategory LessonCategory `db:"plan_category"`
	PlanPrice    int            `db:"plan_price"`
	PlanDuration int            `db:"plan_duration"`
	StartAt      time.Time      `db:"start_at"`
	EndAt        time.Time      `db:"end_at"`
	Location     *string        `db:"location"`
	TeeOffTime   *string        `db:"tee_off_time"`

	Status             ReservationStatus `db:"status"`
	Concern            *string           `db:"concern"`
	AgreedCancelPolicy bool              `db:"agreed_cancel_policy"`
	AgreedPhotoPost    bool              `db:"agreed_photo_post"`

	CancelRequested   bool        `db:"cancel_requested"`
	CancelRequestedAt *time.Time  `db:"cancel_requested_at"`
	CancelTier        *CancelTier `db:"cancel_tier"`
	CancelReason      *string     `db:"cancel_reason"`
	CancelledAt       *time.Time  `db:"cancelled_at"`
}

// IsTerminal reports whether no further status transitions are permitted.
func (r *Reservation) IsTerminal() bool {
	return r.Status == ReservationStatusCancelled || r.Status == ReservationStatusCompleted
}

// IsCancellable reports whether the customer may still request cancellation.
func (r *Reservation) IsCancellable() bool {
	return r.Status == ReservationStatusPending || r.Status == ReservationStatusConfirmed
}

// CanTransitionTo enforces the status machine:
// PENDING -> CONFIRMED | CANCELLED, CONFIRMED -> COMPLETED | CANCELLED.
// Terminal states accept nothing.
func (r *Reservation) CanTransitionTo(next ReservationStatus) bool {
	switch r.Status {
	case ReservationStatusPending:
		return next == ReservationStatusConfirmed || next == ReservationStatusCancelled
	case ReservationStatusConfirmed:
		return next == ReservationStatusCompleted || next == ReservationStatusCancelled
	default:
		return false
	}
}
