package repository

import (
	"context"
	"fmt"

	"golf-lesson-booking/internal/data/entity"
	"golf-lesson-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type LessonPlanRepository interface {
	Create(ctx context.Context, plan *entity.LessonPlan) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.LessonPlan, error)
	FindAll(ctx context.Context) ([]*entity.LessonPlan, error)
	FindPublished(ctx context.Context) ([]*entity.LessonPlan, error)
	Update(ctx context.Context, plan *entity.LessonPlan) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	CountSchedules(ctx context.Context, planID uuid.UUID) (int64, error)
}

type lessonPlanRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLessonPlanRepository(db database.PgxIface, log *zap.Logger) LessonPlanRepository {
	return &lessonPlanRepository{
		db:  db,
		log: log.With(zap.String("repository", "lesson_plan")),
	}
}

const planColumns = `id, name, category, description, price, duration_minutes, max_attendees, is_published, display_order, created_at, updated_at`

func scanPlan(row pgx.Row) (*entity.LessonPlan, error) {
	var plan entity.LessonPlan
	err := row.Scan(
		&plan.ID,
		&plan.Name,
		&plan.Category,
		&plan.Description,
		&plan.Price,
		&plan.DurationMinutes,
		&plan.MaxAttendees,
		&plan.IsPublished,
		&plan.DisplayOrder,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *lessonPlanRepository) Create(ctx context.Context, plan *entity.LessonPlan) error {
	query := `
		INSERT INTO lesson_plans (id, name, category, description, price, duration_minutes, max_attendees, is_published, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		plan.ID,
		plan.Name,
		plan.Category,
		plan.Description,
		plan.Price,
		plan.DurationMinutes,
		plan.MaxAttendees,
		plan.IsPublished,
		plan.DisplayOrder,
		plan.CreatedAt,
		plan.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create lesson plan",
			zap.Error(err),
			zap.String("name", plan.Name),
		)
		return fmt.Errorf("create lesson plan %s: %w", plan.Name, err)
	}

	return nil
}

func (r *lessonPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.LessonPlan, error) {
	query := `SELECT ` + planColumns + ` FROM lesson_plans WHERE id = $1`

	plan, err := scanPlan(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find lesson plan by ID",
			zap.Error(err),
			zap.String("plan_id", id.String()),
		)
		return nil, fmt.Errorf("find lesson plan by ID %s: %w", id.String(), err)
	}

	return plan, nil
}

func (r *lessonPlanRepository) FindAll(ctx context.Context) ([]*entity.LessonPlan, error) {
	query := `SELECT ` + planColumns + ` FROM lesson_plans ORDER BY display_order, created_at`
	return r.queryPlans(ctx, query)
}

func (r *lessonPlanRepository) FindPublished(ctx context.Context) ([]*entity.LessonPlan, error) {
	query := `SELECT ` + planColumns + ` FROM lesson_plans WHERE is_published ORDER BY display_order, created_at`
	return r.queryPlans(ctx, query)
}

func (r *lessonPlanRepository) queryPlans(ctx context.Context, query string, args ...any) ([]*entity.LessonPlan, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query lesson plans", zap.Error(err))
		return nil, fmt.Errorf("query lesson plans: %w", err)
	}
	defer rows.Close()

	var plans []*entity.LessonPlan
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			r.log.Error("Failed to scan lesson plan row", zap.Error(err))
			return nil, fmt.Errorf("scan lesson plan row: %w", err)
		}
		plans = append(plans, plan)
	}

	return plans, nil
}

func (r *lessonPlanRepository) Update(ctx context.Context, plan *entity.LessonPlan) error {
	query := `
		UPDATE lesson_plans
		SET name = $2, category = $3, description = $4, price = $5, duration_minutes = $6,
		    max_attendees = $7, is_published = $8, display_order = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		plan.ID,
		plan.Name,
		plan.Category,
		plan.Description,
		plan.Price,
		plan.DurationMinutes,
		plan.MaxAttendees,
		plan.IsPublished,
		plan.DisplayOrder,
		plan.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update lesson plan",
			zap.Error(err),
			zap.String("plan_id", plan.ID.String()),
		)
		return fmt.Errorf("update lesson plan %s: %w", plan.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("lesson plan %s not found", plan.ID.String())
	}

	return nil
}

func (r *lessonPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM lesson_plans WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete lesson plan",
			zap.Error(err),
			zap.String("plan_id", id.String()),
		)
		return fmt.Errorf("delete lesson plan %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("lesson plan %s not found", id.String())
	}

	r.log.Info("Lesson plan deleted", zap.String("plan_id", id.String()))
	return nil
}

func (r *lessonPlanRepository) CountSchedules(ctx context.Context, planID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM schedules WHERE lesson_plan_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, planID).Scan(&count); err != nil {
		r.log.Error("Failed to count schedules for plan",
			zap.Error(err),
			zap.String("plan_id", planID.String()),
		)
		return 0, fmt.Errorf("count schedules for plan %s: %w", planID.String(), err)
	}

	return count, nil
}
