package usecase

import (
	"context"
	"fmt"
	"time"

	"golf-lesson-booking/internal/data/entity"
	"golf-lesson-booking/internal/data/repository"
	"golf-lesson-booking/internal/dto/request"
	"golf-lesson-booking/internal/dto/response"
	"golf-lesson-booking/pkg/utils"

	"go.uber.org/zap"
)

type ReservationService interface {
	// Customer endpoints
	Create(ctx context.Context, userID string, req *request.CreateReservationRequest) (*response.ReservationResponse, error)
	ListByUser(ctx context.Context, userID string) ([]response.ReservationResponse, error)
	GetByID(ctx context.Context, reservationID, requesterID string, isAdmin bool) (*response.ReservationResponse, error)
	RequestCancellation(ctx context.Context, userID, reservationID string, req *request.RequestCancellationRequest) (*response.ReservationResponse, error)

	// Admin endpoints
	ListAll(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error)
	Approve(ctx context.Context, reservationID string) (*response.ReservationResponse, error)
	Reject(ctx context.Context, reservationID string, req *request.RejectReservationRequest) (*response.ReservationResponse, error)
	ApproveCancellation(ctx context.Context, reservationID string) (*response.ReservationResponse, error)
	Complete(ctx context.Context, reservationID string) (*response.ReservationResponse, error)
}

type reservationService struct {
	repo     *repository.Repository
	log      *zap.Logger
	notifier Notifier
}

func NewReservationService(repo *repository.Repository, log *zap.Logger, notifier Notifier) ReservationService {
	return &reservationService{
		repo:     repo,
		log:      log.With(zap.String("service", "reservation")),
		notifier: notifier,
	}
}

func (s *reservationService) Create(ctx context.Context, userID string, req *request.CreateReservationRequest) (*response.ReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create reservation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if !req.AgreedCancelPolicy {
		return nil, entity.ErrAgreementRequired
	}

	userUUID, err := utils.ParseUUID(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	scheduleID, err := utils.ParseUUID(req.ScheduleID)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule ID format %s: %w", req.ScheduleID, err)
	}

	user, err := s.repo.User.FindByID(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, entity.ErrNotFound
	}

	schedule, err := s.repo.Schedule.FindByID(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("find schedule: %w", err)
	}
	if schedule == nil {
		return nil, entity.ErrNotFound
	}

	if !schedule.IsAvailable || schedule.StartAt.Before(time.Now()) {
		return nil, entity.ErrSlotUnavailable
	}

	taken, err := s.repo.Schedule.HasActiveReservation(ctx, schedule.ID)
	if err != nil {
		return nil, fmt.Errorf("check slot availability: %w", err)
	}
	if taken {
		return nil, entity.ErrSlotUnavailable
	}

	plan, err := s.repo.LessonPlan.FindByID(ctx, schedule.LessonPlanID)
	if err != nil {
		return nil, fmt.Errorf("find lesson plan: %w", err)
	}
	if plan == nil {
		return nil, entity.ErrNotFound
	}

	now := time.Now()
	name := user.DisplayName()
	rsv := &entity.Reservation{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Code:      utils.GenerateReservationCode(),
		UserID:    user.ID,
		UserName:  &name,
		UserEmail: user.Email,

		ScheduleID:   schedule.ID,
		PlanName:     plan.Name,
		PlanCategory: plan.Category,
		PlanPrice:    plan.Price,
		PlanDuration: plan.DurationMinutes,
		StartAt:      schedule.StartAt,
		EndAt:        schedule.EndAt,
		Location:     schedule.Location,
		TeeOffTime:   schedule.TeeOffTime,

		Status:             entity.ReservationStatusPending,
		Concern:            req.Concern,
		AgreedCancelPolicy: req.AgreedCancelPolicy,
		AgreedPhotoPost:    req.AgreedPhotoPost,
	}

	if err := s.repo.Reservation.Create(ctx, rsv); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.log.Info("Reservation created",
		zap.String("reservation_id", rsv.ID.String()),
		zap.String("code", rsv.Code),
		zap.String("user_id", user.ID.String()),
	)

	go s.notifier.NotifyReservationCreated(context.WithoutCancel(ctx), rsv)

	resp := s.toResponse(rsv, now)
	return &resp, nil
}

func (s *reservationService) ListByUser(ctx context.Context, userID string) ([]response.ReservationResponse, error) {
	userUUID, err := utils.ParseUUID(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	reservations, err := s.repo.Reservation.FindByUserID(ctx, userUUID)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	now := time.Now()
	result := make([]response.ReservationResponse, 0, len(reservations))
	for _, rsv := range reservations {
		result = append(result, s.toResponse(rsv, now))
	}

	return result, nil
}

func (s *reservationService) GetByID(ctx context.Context, reservationID, requesterID string, isAdmin bool) (*response.ReservationResponse, error) {
	rsv, err := s.findReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if !isAdmin && rsv.UserID.String() != requesterID {
		return nil, entity.ErrForbidden
	}

	resp := s.toResponse(rsv, time.Now())
	return &resp, nil
}

// RequestCancellation runs the two-step cancellation flow. With
// Confirm=false it only returns the fee preview; nothing is mutated.
// With Confirm=true a free-tier cancellation completes immediately,
// while half and full tiers record a pending request the instructor
// has to approve.
func (s *reservationService) RequestCancellation(ctx context.Context, userID, reservationID string, req *request.RequestCancellationRequest) (*response.ReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Request cancellation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	rsv, err := s.findReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if rsv.UserID.String() != userID {
		return nil, entity.ErrForbidden
	}

	if !rsv.IsCancellable() || rsv.CancelRequested {
		return nil, entity.ErrNotCancellable
	}

	now := time.Now()
	policy := EvaluateCancelPolicy(rsv.StartAt, now)

	if !req.Confirm {
		resp := s.toResponse(rsv, now)
		return &resp, nil
	}

	tier := policy.Tier
	rsv.CancelTier = &tier
	rsv.CancelReason = req.Reason
	rsv.UpdatedAt = now

	if policy.RequiresApproval() {
		rsv.CancelRequested = true
		rsv.CancelRequestedAt = &now

		if err := s.repo.Reservation.Update(ctx, rsv); err != nil {
			return nil, fmt.Errorf("record cancellation request: %w", err)
		}

		s.log.Info("Cancellation requested",
			zap.String("reservation_id", rsv.ID.String()),
			zap.String("tier", string(tier)),
			zap.Int("days_until", policy.DaysUntil),
		)

		go s.notifier.NotifyCancellationRequested(context.WithoutCancel(ctx), rsv, policy)
	} else {
		rsv.Status = entity.ReservationStatusCancelled
		rsv.CancelledAt = &now

		if err := s.repo.Reservation.Update(ctx, rsv); err != nil {
			return nil, fmt.Errorf("cancel reservation: %w", err)
		}

		s.log.Info("Reservation cancelled free of charge",
			zap.String("reservation_id", rsv.ID.String()),
			zap.Int("days_until", policy.DaysUntil),
		)

		go s.notifier.NotifyReservationCancelled(context.WithoutCancel(ctx), rsv)
	}

	resp := s.toResponse(rsv, now)
	return &resp, nil
}

func (s *reservationService) ListAll(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error) {
	if req.Page < 1 {
		req.Page = 1
	}

	reservations, err := s.repo.Reservation.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	total, err := s.repo.Reservation.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count reservations: %w", err)
	}

	now := time.Now()
	data := make([]response.ReservationResponse, 0, len(reservations))
	for _, rsv := range reservations {
		data = append(data, s.toResponse(rsv, now))
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

func (s *reservationService) Approve(ctx context.Context, reservationID string) (*response.ReservationResponse, error) {
	rsv, err := s.transition(ctx, reservationID, entity.ReservationStatusConfirmed)
	if err != nil {
		return nil, err
	}

	go s.notifier.NotifyReservationApproved(context.WithoutCancel(ctx), rsv)

	resp := s.toResponse(rsv, time.Now())
	return &resp, nil
}

func (s *reservationService) Reject(ctx context.Context, reservationID string, req *request.RejectReservationRequest) (*response.ReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Reject reservation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	rsv, err := s.findReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if rsv.Status != entity.ReservationStatusPending {
		return nil, entity.ErrInvalidStateTransition
	}

	now := time.Now()
	rsv.Status = entity.ReservationStatusCancelled
	rsv.CancelReason = req.Reason
	rsv.CancelledAt = &now
	rsv.UpdatedAt = now

	if err := s.repo.Reservation.Update(ctx, rsv); err != nil {
		return nil, fmt.Errorf("reject reservation: %w", err)
	}

	s.log.Info("Reservation rejected", zap.String("reservation_id", rsv.ID.String()))

	go s.notifier.NotifyReservationRejected(context.WithoutCancel(ctx), rsv)

	resp := s.toResponse(rsv, now)
	return &resp, nil
}

func (s *reservationService) ApproveCancellation(ctx context.Context, reservationID string) (*response.ReservationResponse, error) {
	rsv, err := s.findReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if !rsv.CancelRequested || !rsv.IsCancellable() {
		return nil, entity.ErrNotCancellable
	}

	now := time.Now()
	rsv.Status = entity.ReservationStatusCancelled
	rsv.CancelledAt = &now
	rsv.UpdatedAt = now

	if err := s.repo.Reservation.Update(ctx, rsv); err != nil {
		return nil, fmt.Errorf("approve cancellation: %w", err)
	}

	s.log.Info("Cancellation approved", zap.String("reservation_id", rsv.ID.String()))

	go s.notifier.NotifyReservationCancelled(context.WithoutCancel(ctx), rsv)

	resp := s.toResponse(rsv, now)
	return &resp, nil
}

func (s *reservationService) Complete(ctx context.Context, reservationID string) (*response.ReservationResponse, error) {
	rsv, err := s.transition(ctx, reservationID, entity.ReservationStatusCompleted)
	if err != nil {
		return nil, err
	}

	resp := s.toResponse(rsv, time.Now())
	return &resp, nil
}

func (s *reservationService) findReservation(ctx context.Context, reservationID string) (*entity.Reservation, error) {
	id, err := utils.ParseUUID(reservationID)
	if err != nil {
		return nil, fmt.Errorf("invalid reservation ID format %s: %w", reservationID, err)
	}

	rsv, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find reservation: %w", err)
	}
	if rsv == nil {
		return nil, entity.ErrNotFound
	}

	return rsv, nil
}

func (s *reservationService) transition(ctx context.Context, reservationID string, next entity.ReservationStatus) (*entity.Reservation, error) {
	rsv, err := s.findReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if !rsv.CanTransitionTo(next) {
		return nil, entity.ErrInvalidStateTransition
	}

	rsv.Status = next
	rsv.UpdatedAt = time.Now()

	if err := s.repo.Reservation.Update(ctx, rsv); err != nil {
		return nil, fmt.Errorf("update reservation status: %w", err)
	}

	s.log.Info("Reservation status changed",
		zap.String("reservation_id", rsv.ID.String()),
		zap.String("status", string(next)),
	)

	return rsv, nil
}

// toResponse attaches the current fee policy to reservations the
// customer can still cancel.
func (s *reservationService) toResponse(rsv *entity.Reservation, now time.Time) response.ReservationResponse {
	resp := response.ReservationToResponse(rsv)

	if rsv.IsCancellable() && !rsv.CancelRequested {
		policy := EvaluateCancelPolicy(rsv.StartAt, now)
		resp.CancelPolicy = &response.CancelPolicyResponse{
			Tier:             policy.Tier,
			FeePercent:       policy.FeePercent,
			FeeAmount:        policy.FeeAmount(rsv.PlanPrice),
			DaysUntil:        policy.DaysUntil,
			Description:      policy.Description(),
			RequiresApproval: policy.RequiresApproval(),
		}
	}

	return resp
}
