package repository

import (
	"context"
	"fmt"
	"time"

	"golf-lesson-booking/internal/data/entity"
	"golf-lesson-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *entity.Schedule) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Schedule, error)
	FindUpcoming(ctx context.Context, from time.Time) ([]*entity.Schedule, error)
	SetAvailability(ctx context.Context, id uuid.UUID, isAvailable bool) error
	Delete(ctx context.Context, id uuid.UUID) error

	// HasActiveReservation reports whether a non-terminal reservation
	// (PENDING or CONFIRMED) references the slot. Effective bookability
	// is is_available AND NOT HasActiveReservation.
	HasActiveReservation(ctx context.Context, id uuid.UUID) (bool, error)
}

type scheduleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewScheduleRepository(db database.PgxIface, log *zap.Logger) ScheduleRepository {
	return &scheduleRepository{
		db:  db,
		log: log.With(zap.String("repository", "schedule")),
	}
}

const scheduleColumns = `id, lesson_plan_id, start_at, end_at, location, is_available, note, tee_off_time, created_at, updated_at`

func scanSchedule(row pgx.Row) (*entity.Schedule, error) {
	var schedule entity.Schedule
	err := row.Scan(
		&schedule.ID,
		&schedule.LessonPlanID,
		&schedule.StartAt,
		&schedule.EndAt,
		&schedule.Location,
		&schedule.IsAvailable,
		&schedule.Note,
		&schedule.TeeOffTime,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *entity.Schedule) error {
	query := `
		INSERT INTO schedules (id, lesson_plan_id, start_at, end_at, location, is_available, note, tee_off_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		schedule.ID,
		schedule.LessonPlanID,
		schedule.StartAt,
		schedule.EndAt,
		schedule.Location,
		schedule.IsAvailable,
		schedule.Note,
		schedule.TeeOffTime,
		schedule.CreatedAt,
		schedule.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create schedule",
			zap.Error(err),
			zap.String("plan_id", schedule.LessonPlanID.String()),
			zap.Time("start_at", schedule.StartAt),
		)
		return fmt.Errorf("create schedule at %s: %w", schedule.StartAt, err)
	}

	return nil
}

func (r *scheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = $1`

	schedule, err := scanSchedule(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find schedule by ID",
			zap.Error(err),
			zap.String("schedule_id", id.String()),
		)
		return nil, fmt.Errorf("find schedule by ID %s: %w", id.String(), err)
	}

	return schedule, nil
}

func (r *scheduleRepository) FindUpcoming(ctx context.Context, from time.Time) ([]*entity.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE start_at >= $1 ORDER BY start_at`

	rows, err := r.db.Query(ctx, query, from)
	if err != nil {
		r.log.Error("Failed to find upcoming schedules", zap.Error(err))
		return nil, fmt.Errorf("find upcoming schedules: %w", err)
	}
	defer rows.Close()

	var schedules []*entity.Schedule
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			r.log.Error("Failed to scan schedule row", zap.Error(err))
			return nil, fmt.Errorf("scan schedule row: %w", err)
		}
		schedules = append(schedules, schedule)
	}

	return schedules, nil
}

func (r *scheduleRepository) SetAvailability(ctx context.Context, id uuid.UUID, isAvailable bool) error {
	query := `UPDATE schedules SET is_available = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, isAvailable)
	if err != nil {
		r.log.Error("Failed to update schedule availability",
			zap.Error(err),
			zap.String("schedule_id", id.String()),
			zap.Bool("is_available", isAvailable),
		)
		return fmt.Errorf("update schedule %s availability: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("schedule %s not found", id.String())
	}

	return nil
}

func (r *scheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM schedules WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete schedule",
			zap.Error(err),
			zap.String("schedule_id", id.String()),
		)
		return fmt.Errorf("delete schedule %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("schedule %s not found", id.String())
	}

	r.log.Info("Schedule deleted", zap.String("schedule_id", id.String()))
	return nil
}

func (r *scheduleRepository) HasActiveReservation(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE schedule_id = $1 AND status IN ('PENDING', 'CONFIRMED')
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		r.log.Error("Failed to check active reservation",
			zap.Error(err),
			zap.String("schedule_id", id.String()),
		)
		return false, fmt.Errorf("check active reservation for schedule %s: %w", id.String(), err)
	}

	return exists, nil
}
