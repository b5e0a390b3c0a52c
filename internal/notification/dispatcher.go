package notification

import (
	"context"
	"sync"

	"golf-lesson-booking/internal/data/entity"
	"golf-lesson-booking/internal/data/repository"
	"golf-lesson-booking/internal/usecase"

	"go.uber.org/zap"
)

// Dispatcher implements usecase.Notifier on top of the Mailer. Every
// method logs failures and returns nothing: a broken SMTP server must
// never fail a booking.
type Dispatcher struct {
	mailer *Mailer
	users  repository.UserRepository
	log    *zap.Logger
}

func NewDispatcher(mailer *Mailer, users repository.UserRepository, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		mailer: mailer,
		users:  users,
		log:    log.With(zap.String("component", "notification")),
	}
}

var _ usecase.Notifier = (*Dispatcher)(nil)

func (d *Dispatcher) NotifyReservationCreated(ctx context.Context, rsv *entity.Reservation) {
	subject, body := reservationRequestedMail(rsv)
	d.sendToCustomer(ctx, rsv, subject, body)

	adminSubject, adminBody := adminNewReservationMail(rsv)
	d.sendToAdmins(ctx, adminSubject, adminBody)
}

func (d *Dispatcher) NotifyReservationApproved(ctx context.Context, rsv *entity.Reservation) {
	subject, body := reservationConfirmedMail(rsv)
	d.sendToCustomer(ctx, rsv, subject, body)
}

func (d *Dispatcher) NotifyReservationRejected(ctx context.Context, rsv *entity.Reservation) {
	subject, body := reservationRejectedMail(rsv)
	d.sendToCustomer(ctx, rsv, subject, body)
}

func (d *Dispatcher) NotifyCancellationRequested(ctx context.Context, rsv *entity.Reservation, policy usecase.CancelPolicy) {
	subject, body := adminCancellationRequestedMail(rsv, policy)
	d.sendToAdmins(ctx, subject, body)
}

func (d *Dispatcher) NotifyReservationCancelled(ctx context.Context, rsv *entity.Reservation) {
	subject, body := reservationCancelledMail(rsv)
	d.sendToCustomer(ctx, rsv, subject, body)
}

func (d *Dispatcher) sendToCustomer(ctx context.Context, rsv *entity.Reservation, subject, body string) {
	if err := d.mailer.Send(ctx, rsv.UserEmail, subject, body); err != nil {
		d.log.Error("Failed to notify customer",
			zap.Error(err),
			zap.String("reservation_id", rsv.ID.String()),
			zap.String("to", rsv.UserEmail),
		)
	}
}

// sendToAdmins fans out to every active admin in parallel. One
// failing recipient does not stop the others.
func (d *Dispatcher) sendToAdmins(ctx context.Context, subject, body string) {
	emails, err := d.users.FindAdminEmails(ctx)
	if err != nil {
		d.log.Error("Failed to load admin recipients", zap.Error(err))
		return
	}
	if len(emails) == 0 {
		d.log.Warn("No admin recipients configured, skipping notification",
			zap.String("subject", subject),
		)
		return
	}

	var wg sync.WaitGroup
	for _, email := range emails {
		wg.Add(1)
		go func(to string) {
			defer wg.Done()
			if err := d.mailer.Send(ctx, to, subject, body); err != nil {
				d.log.Error("Failed to notify admin",
					zap.Error(err),
					zap.String("to", to),
				)
			}
		}(email)
	}
	wg.Wait()
}
