package usecase

import (
	"context"

	"golf-lesson-booking/internal/data/entity"
)

// Notifier delivers reservation lifecycle emails. Implementations must
// not fail the calling operation: delivery errors are logged and
// swallowed, the booking flow never blocks on SMTP.
type Notifier interface {
	NotifyReservationCreated(ctx context.Context, rsv *entity.Reservation)
	NotifyReservationApproved(ctx context.Context, rsv *entity.Reservation)
	NotifyReservationRejected(ctx context.Context, rsv *entity.Reservation)
	NotifyCancellationRequested(ctx context.Context, rsv *entity.Reservation, policy CancelPolicy)
	NotifyReservationCancelled(ctx context.Context, rsv *entity.Reservation)
}

// NopNotifier discards all notifications. Used in tests and when email
// is not configured.
type NopNotifier struct{}

func (NopNotifier) NotifyReservationCreated(context.Context, *entity.Reservation)  {}
func (NopNotifier) NotifyReservationApproved(context.Context, *entity.Reservation) {}
func (NopNotifier) NotifyReservationRejected(context.Context, *entity.Reservation) {}
func (NopNotifier) NotifyCancellationRequested(context.Context, *entity.Reservation, CancelPolicy) {
}
func (NopNotifier) NotifyReservationCancelled(context.Context, *entity.Reservation) {}
