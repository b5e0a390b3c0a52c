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

type ScheduleService interface {
	// Public endpoints
	ListUpcoming(ctx context.Context) ([]response.ScheduleResponse, error)
	GetByID(ctx context.Context, scheduleID string) (*response.ScheduleResponse, error)

	// Admin endpoints
	Create(ctx context.Context, req *request.CreateScheduleRequest) (*response.ScheduleResponse, error)
	SetAvailability(ctx context.Context, scheduleID string, req *request.SetAvailabilityRequest) (*response.ScheduleResponse, error)
	Delete(ctx context.Context, scheduleID string) error
}

type scheduleService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewScheduleService(repo *repository.Repository, log *zap.Logger) ScheduleService {
	return &scheduleService{
		repo: repo,
		log:  log.With(zap.String("service", "schedule")),
	}
}

func (s *scheduleService) ListUpcoming(ctx context.Context) ([]response.ScheduleResponse, error) {
	schedules, err := s.repo.Schedule.FindUpcoming(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("list upcoming schedules: %w", err)
	}

	// Plans are a small catalog; resolve names through a local cache
	// instead of a query per slot.
	planNames := make(map[string]string)

	result := make([]response.ScheduleResponse, 0, len(schedules))
	for _, schedule := range schedules {
		planName, ok := planNames[schedule.LessonPlanID.String()]
		if !ok {
			plan, err := s.repo.LessonPlan.FindByID(ctx, schedule.LessonPlanID)
			if err != nil {
				return nil, fmt.Errorf("find lesson plan: %w", err)
			}
			if plan != nil {
				planName = plan.Name
			}
			planNames[schedule.LessonPlanID.String()] = planName
		}

		taken, err := s.repo.Schedule.HasActiveReservation(ctx, schedule.ID)
		if err != nil {
			return nil, fmt.Errorf("check slot reservation: %w", err)
		}

		result = append(result, response.ScheduleToResponse(schedule, planName, taken))
	}

	return result, nil
}

func (s *scheduleService) GetByID(ctx context.Context, scheduleID string) (*response.ScheduleResponse, error) {
	id, err := utils.ParseUUID(scheduleID)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule ID format %s: %w", scheduleID, err)
	}

	schedule, err := s.repo.Schedule.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find schedule: %w", err)
	}
	if schedule == nil {
		return nil, entity.ErrNotFound
	}

	plan, err := s.repo.LessonPlan.FindByID(ctx, schedule.LessonPlanID)
	if err != nil {
		return nil, fmt.Errorf("find lesson plan: %w", err)
	}

	planName := ""
	if plan != nil {
		planName = plan.Name
	}

	taken, err := s.repo.Schedule.HasActiveReservation(ctx, schedule.ID)
	if err != nil {
		return nil, fmt.Errorf("check slot reservation: %w", err)
	}

	resp := response.ScheduleToResponse(schedule, planName, taken)
	return &resp, nil
}

func (s *scheduleService) Create(ctx context.Context, req *request.CreateScheduleRequest) (*response.ScheduleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create schedule validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	planID, err := utils.ParseUUID(req.LessonPlanID)
	if err != nil {
		return nil, fmt.Errorf("invalid lesson plan ID format %s: %w", req.LessonPlanID, err)
	}

	plan, err := s.repo.LessonPlan.FindByID(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("find lesson plan: %w", err)
	}
	if plan == nil {
		return nil, entity.ErrNotFound
	}

	startAt, err := time.Parse(time.RFC3339, req.StartAt)
	if err != nil {
		return nil, fmt.Errorf("invalid start time %s: %w", req.StartAt, err)
	}

	now := time.Now()
	schedule := &entity.Schedule{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		LessonPlanID: plan.ID,
		StartAt:      startAt,
		EndAt:        startAt.Add(time.Duration(plan.DurationMinutes) * time.Minute),
		Location:     req.Location,
		IsAvailable:  true,
		Note:         req.Note,
		TeeOffTime:   req.TeeOffTime,
	}

	if err := s.repo.Schedule.Create(ctx, schedule); err != nil {
		return nil, fmt.Errorf("create schedule: %w", err)
	}

	s.log.Info("Schedule created",
		zap.String("schedule_id", schedule.ID.String()),
		zap.String("plan", plan.Name),
		zap.Time("start_at", schedule.StartAt),
	)

	resp := response.ScheduleToResponse(schedule, plan.Name, false)
	return &resp, nil
}

func (s *scheduleService) SetAvailability(ctx context.Context, scheduleID string, req *request.SetAvailabilityRequest) (*response.ScheduleResponse, error) {
	id, err := utils.ParseUUID(scheduleID)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule ID format %s: %w", scheduleID, err)
	}

	schedule, err := s.repo.Schedule.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find schedule: %w", err)
	}
	if schedule == nil {
		return nil, entity.ErrNotFound
	}

	if err := s.repo.Schedule.SetAvailability(ctx, id, req.IsAvailable); err != nil {
		return nil, fmt.Errorf("set schedule availability: %w", err)
	}

	return s.GetByID(ctx, scheduleID)
}

// Delete removes a slot permanently. Slots holding a pending or
// confirmed reservation cannot be deleted; resolve the reservation
// first.
func (s *scheduleService) Delete(ctx context.Context, scheduleID string) error {
	id, err := utils.ParseUUID(scheduleID)
	if err != nil {
		return fmt.Errorf("invalid schedule ID format %s: %w", scheduleID, err)
	}

	schedule, err := s.repo.Schedule.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find schedule: %w", err)
	}
	if schedule == nil {
		return entity.ErrNotFound
	}

	taken, err := s.repo.Schedule.HasActiveReservation(ctx, id)
	if err != nil {
		return fmt.Errorf("check slot reservation: %w", err)
	}
	if taken {
		return entity.ErrSlotInUse
	}

	if err := s.repo.Schedule.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}

	return nil
}
