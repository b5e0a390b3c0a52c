package entity

import "errors"

// Domain errors. Handlers map these to HTTP statuses with errors.Is.
var (
	ErrAgreementRequired      = errors.New("cancellation policy agreement is required")
	ErrSlotUnavailable        = errors.New("schedule slot is not available")
	ErrSlotInUse              = errors.New("schedule slot has an active reservation")
	ErrNotCancellable         = errors.New("reservation is not cancellable")
	ErrInvalidStateTransition = errors.New("invalid reservation state transition")
	ErrNotFound               = errors.New("not found")
	ErrForbidden              = errors.New("operation not permitted")
)
