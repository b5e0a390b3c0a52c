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

type LessonPlanService interface {
	// Public endpoints
	ListPublished(ctx context.Context) ([]response.LessonPlanResponse, error)
	GetByID(ctx context.Context, planID string) (*response.LessonPlanResponse, error)

	// Admin endpoints
	ListAll(ctx context.Context) ([]response.LessonPlanResponse, error)
	Create(ctx context.Context, req *request.LessonPlanRequest) (*response.LessonPlanResponse, error)
	Update(ctx context.Context, planID string, req *request.LessonPlanUpdateRequest) (*response.LessonPlanResponse, error)
	Delete(ctx context.Context, planID string) error
}

type lessonPlanService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewLessonPlanService(repo *repository.Repository, log *zap.Logger) LessonPlanService {
	return &lessonPlanService{
		repo: repo,
		log:  log.With(zap.String("service", "lesson_plan")),
	}
}

func (s *lessonPlanService) ListPublished(ctx context.Context) ([]response.LessonPlanResponse, error) {
	plans, err := s.repo.LessonPlan.FindPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("list published plans: %w", err)
	}

	return plansToResponses(plans), nil
}

func (s *lessonPlanService) ListAll(ctx context.Context) ([]response.LessonPlanResponse, error) {
	plans, err := s.repo.LessonPlan.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	return plansToResponses(plans), nil
}

func plansToResponses(plans []*entity.LessonPlan) []response.LessonPlanResponse {
	result := make([]response.LessonPlanResponse, 0, len(plans))
	for _, plan := range plans {
		result = append(result, response.LessonPlanToResponse(plan))
	}
	return result
}

func (s *lessonPlanService) GetByID(ctx context.Context, planID string) (*response.LessonPlanResponse, error) {
	plan, err := s.findPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	resp := response.LessonPlanToResponse(plan)
	return &resp, nil
}

func (s *lessonPlanService) Create(ctx context.Context, req *request.LessonPlanRequest) (*response.LessonPlanResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create plan validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	plan := &entity.LessonPlan{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:            req.Name,
		Category:        entity.LessonCategory(req.Category),
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		MaxAttendees:    req.MaxAttendees,
		IsPublished:     req.IsPublished,
		DisplayOrder:    req.DisplayOrder,
	}
	if plan.MaxAttendees < 1 {
		plan.MaxAttendees = 1
	}

	if err := s.repo.LessonPlan.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}

	s.log.Info("Lesson plan created",
		zap.String("plan_id", plan.ID.String()),
		zap.String("name", plan.Name),
	)

	resp := response.LessonPlanToResponse(plan)
	return &resp, nil
}

func (s *lessonPlanService) Update(ctx context.Context, planID string, req *request.LessonPlanUpdateRequest) (*response.LessonPlanResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update plan validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	plan, err := s.findPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.Category != nil {
		plan.Category = entity.LessonCategory(*req.Category)
	}
	if req.Description != nil {
		plan.Description = req.Description
	}
	if req.Price != nil {
		plan.Price = *req.Price
	}
	if req.DurationMinutes != nil {
		plan.DurationMinutes = *req.DurationMinutes
	}
	if req.MaxAttendees != nil {
		plan.MaxAttendees = *req.MaxAttendees
	}
	if req.IsPublished != nil {
		plan.IsPublished = *req.IsPublished
	}
	if req.DisplayOrder != nil {
		plan.DisplayOrder = *req.DisplayOrder
	}
	plan.UpdatedAt = time.Now()

	if err := s.repo.LessonPlan.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("update plan: %w", err)
	}

	resp := response.LessonPlanToResponse(plan)
	return &resp, nil
}

// Delete refuses when slots still reference the plan; reservations
// keep their own snapshot, but schedules do not.
func (s *lessonPlanService) Delete(ctx context.Context, planID string) error {
	plan, err := s.findPlan(ctx, planID)
	if err != nil {
		return err
	}

	count, err := s.repo.LessonPlan.CountSchedules(ctx, plan.ID)
	if err != nil {
		return fmt.Errorf("count plan schedules: %w", err)
	}
	if count > 0 {
		return entity.ErrSlotInUse
	}

	if err := s.repo.LessonPlan.Delete(ctx, plan.ID); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}

	s.log.Info("Lesson plan deleted", zap.String("plan_id", plan.ID.String()))
	return nil
}

func (s *lessonPlanService) findPlan(ctx context.Context, planID string) (*entity.LessonPlan, error) {
	id, err := utils.ParseUUID(planID)
	if err != nil {
		return nil, fmt.Errorf("invalid plan ID format %s: %w", planID, err)
	}

	plan, err := s.repo.LessonPlan.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find plan: %w", err)
	}
	if plan == nil {
		return nil, entity.ErrNotFound
	}

	return plan, nil
}
