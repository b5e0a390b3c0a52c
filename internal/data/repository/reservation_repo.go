package repository

import (
	"context"
	"errors"
	"fmt"

	"golf-lesson-booking/internal/data/entity"
	"golf-lesson-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Reservation, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Reservation, error)
	Count(ctx context.Context) (int64, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	Update(ctx context.Context, reservation *entity.Reservation) error
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

const reservationColumns = `id, code, user_id, user_name, user_email, schedule_id,
	plan_name, plan_category, plan_price, plan_duration, start_at, end_at, location, tee_off_time,
	status, concern, agreed_cancel_policy, agreed_photo_post,
	cancel_requested, cancel_requested_at, cancel_tier, cancel_reason, cancelled_at,
	created_at, updated_at`

func scanReservation(row pgx.Row) (*entity.Reservation, error) {
	var rsv entity.Reservation
	err := row.Scan(
		&rsv.ID,
		&rsv.Code,
		&rsv.UserID,
		&rsv.UserName,
		&rsv.UserEmail,
		&rsv.ScheduleID,
		&rsv.PlanName,
		&rsv.PlanCategory,
		&rsv.PlanPrice,
		&rsv.PlanDuration,
		&rsv.StartAt,
		&rsv.EndAt,
		&rsv.Location,
		&rsv.TeeOffTime,
		&rsv.Status,
		&rsv.Concern,
		&rsv.AgreedCancelPolicy,
		&rsv.AgreedPhotoPost,
		&rsv.CancelRequested,
		&rsv.CancelRequestedAt,
		&rsv.CancelTier,
		&rsv.CancelReason,
		&rsv.CancelledAt,
		&rsv.CreatedAt,
		&rsv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rsv, nil
}

func (r *reservationRepository) Create(ctx context.Context, rsv *entity.Reservation) error {
	query := `
		INSERT INTO reservations (id, code, user_id, user_name, user_email, schedule_id,
			plan_name, plan_category, plan_price, plan_duration, start_at, end_at, location, tee_off_time,
			status, concern, agreed_cancel_policy, agreed_photo_post,
			cancel_requested, cancel_requested_at, cancel_tier, cancel_reason, cancelled_at,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
	`

	_, err := r.db.Exec(ctx, query,
		rsv.ID,
		rsv.Code,
		rsv.UserID,
		rsv.UserName,
		rsv.UserEmail,
		rsv.ScheduleID,
		rsv.PlanName,
		rsv.PlanCategory,
		rsv.PlanPrice,
		rsv.PlanDuration,
		rsv.StartAt,
		rsv.EndAt,
		rsv.Location,
		rsv.TeeOffTime,
		rsv.Status,
		rsv.Concern,
		rsv.AgreedCancelPolicy,
		rsv.AgreedPhotoPost,
		rsv.CancelRequested,
		rsv.CancelRequestedAt,
		rsv.CancelTier,
		rsv.CancelReason,
		rsv.CancelledAt,
		rsv.CreatedAt,
		rsv.UpdatedAt,
	)

	if err != nil {
		// The partial unique index on schedule_id rejects a second
		// non-terminal reservation for the slot.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uniq_active_reservation_per_slot" {
			r.log.Warn("Slot already reserved",
				zap.String("schedule_id", rsv.ScheduleID.String()),
				zap.String("code", rsv.Code),
			)
			return entity.ErrSlotUnavailable
		}

		r.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("code", rsv.Code),
			zap.String("user_id", rsv.UserID.String()),
		)
		return fmt.Errorf("create reservation %s: %w", rsv.Code, err)
	}

	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	rsv, err := scanReservation(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by ID",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return nil, fmt.Errorf("find reservation by ID %s: %w", id.String(), err)
	}

	return rsv, nil
}

func (r *reservationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE user_id = $1 ORDER BY start_at DESC`

	return r.queryReservations(ctx, query, userID)
}

func (r *reservationRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	return r.queryReservations(ctx, query, limit, offset)
}

func (r *reservationRepository) queryReservations(ctx context.Context, query string, args ...any) ([]*entity.Reservation, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query reservations", zap.Error(err))
		return nil, fmt.Errorf("query reservations: %w", err)
	}
	defer rows.Close()

	var reservations []*entity.Reservation
	for rows.Next() {
		rsv, err := scanReservation(rows)
		if err != nil {
			r.log.Error("Failed to scan reservation row", zap.Error(err))
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, rsv)
	}

	return reservations, nil
}

func (r *reservationRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM reservations`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count reservations", zap.Error(err))
		return 0, fmt.Errorf("count reservations: %w", err)
	}

	return count, nil
}

func (r *reservationRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM reservations WHERE user_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		r.log.Error("Failed to count reservations by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count reservations by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *reservationRepository) Update(ctx context.Context, rsv *entity.Reservation) error {
	query := `
		UPDATE reservations
		SET status = $2, cancel_requested = $3, cancel_requested_at = $4, cancel_tier = $5,
		    cancel_reason = $6, cancelled_at = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		rsv.ID,
		rsv.Status,
		rsv.CancelRequested,
		rsv.CancelRequestedAt,
		rsv.CancelTier,
		rsv.CancelReason,
		rsv.CancelledAt,
		rsv.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update reservation",
			zap.Error(err),
			zap.String("reservation_id", rsv.ID.String()),
		)
		return fmt.Errorf("update reservation %s: %w", rsv.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s not found", rsv.ID.String())
	}

	return nil
}
