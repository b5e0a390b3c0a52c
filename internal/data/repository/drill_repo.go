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

type DrillRepository interface {
	Create(ctx context.Context, drill *entity.Drill) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Drill, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Drill, error)
	Update(ctx context.Context, drill *entity.Drill) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type drillRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDrillRepository(db database.PgxIface, log *zap.Logger) DrillRepository {
	return &drillRepository{
		db:  db,
		log: log.With(zap.String("repository", "drill")),
	}
}

const drillColumns = `id, user_id, title, description, video_url, status, due_date, created_at, updated_at`

func scanDrill(row pgx.Row) (*entity.Drill, error) {
	var drill entity.Drill
	err := row.Scan(
		&drill.ID,
		&drill.UserID,
		&drill.Title,
		&drill.Description,
		&drill.VideoURL,
		&drill.Status,
		&drill.DueDate,
		&drill.CreatedAt,
		&drill.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &drill, nil
}

func (r *drillRepository) Create(ctx context.Context, drill *entity.Drill) error {
	query := `
		INSERT INTO drills (id, user_id, title, description, video_url, status, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		drill.ID,
		drill.UserID,
		drill.Title,
		drill.Description,
		drill.VideoURL,
		drill.Status,
		drill.DueDate,
		drill.CreatedAt,
		drill.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create drill",
			zap.Error(err),
			zap.String("user_id", drill.UserID.String()),
			zap.String("title", drill.Title),
		)
		return fmt.Errorf("create drill %s: %w", drill.Title, err)
	}

	return nil
}

func (r *drillRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Drill, error) {
	query := `SELECT ` + drillColumns + ` FROM drills WHERE id = $1`

	drill, err := scanDrill(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find drill by ID",
			zap.Error(err),
			zap.String("drill_id", id.String()),
		)
		return nil, fmt.Errorf("find drill by ID %s: %w", id.String(), err)
	}

	return drill, nil
}

func (r *drillRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Drill, error) {
	query := `SELECT ` + drillColumns + ` FROM drills WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find drills by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find drills by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var drills []*entity.Drill
	for rows.Next() {
		drill, err := scanDrill(rows)
		if err != nil {
			r.log.Error("Failed to scan drill row", zap.Error(err))
			return nil, fmt.Errorf("scan drill row: %w", err)
		}
		drills = append(drills, drill)
	}

	return drills, nil
}

func (r *drillRepository) Update(ctx context.Context, drill *entity.Drill) error {
	query := `
		UPDATE drills
		SET title = $2, description = $3, video_url = $4, status = $5, due_date = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		drill.ID,
		drill.Title,
		drill.Description,
		drill.VideoURL,
		drill.Status,
		drill.DueDate,
		drill.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update drill",
			zap.Error(err),
			zap.String("drill_id", drill.ID.String()),
		)
		return fmt.Errorf("update drill %s: %w", drill.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("drill %s not found", drill.ID.String())
	}

	return nil
}

func (r *drillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM drills WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete drill",
			zap.Error(err),
			zap.String("drill_id", id.String()),
		)
		return fmt.Errorf("delete drill %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("drill %s not found", id.String())
	}

	return nil
}
