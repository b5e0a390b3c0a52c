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

type RoundScoreRepository interface {
	Create(ctx context.Context, score *entity.RoundScore) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RoundScore, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.RoundScore, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type roundScoreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoundScoreRepository(db database.PgxIface, log *zap.Logger) RoundScoreRepository {
	return &roundScoreRepository{
		db:  db,
		log: log.With(zap.String("repository", "round_score")),
	}
}

const scoreColumns = `id, user_id, played_at, course_name, score, out_score, in_score, fairway_hit, putts, memo, created_at, updated_at`

func scanScore(row pgx.Row) (*entity.RoundScore, error) {
	var score entity.RoundScore
	err := row.Scan(
		&score.ID,
		&score.UserID,
		&score.PlayedAt,
		&score.CourseName,
		&score.Score,
		&score.OutScore,
		&score.InScore,
		&score.FairwayHit,
		&score.Putts,
		&score.Memo,
		&score.CreatedAt,
		&score.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &score, nil
}

func (r *roundScoreRepository) Create(ctx context.Context, score *entity.RoundScore) error {
	query := `
		INSERT INTO round_scores (id, user_id, played_at, course_name, score, out_score, in_score, fairway_hit, putts, memo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		score.ID,
		score.UserID,
		score.PlayedAt,
		score.CourseName,
		score.Score,
		score.OutScore,
		score.InScore,
		score.FairwayHit,
		score.Putts,
		score.Memo,
		score.CreatedAt,
		score.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create round score",
			zap.Error(err),
			zap.String("user_id", score.UserID.String()),
			zap.String("course", score.CourseName),
		)
		return fmt.Errorf("create round score at %s: %w", score.CourseName, err)
	}

	return nil
}

func (r *roundScoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RoundScore, error) {
	query := `SELECT ` + scoreColumns + ` FROM round_scores WHERE id = $1`

	score, err := scanScore(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find round score by ID",
			zap.Error(err),
			zap.String("score_id", id.String()),
		)
		return nil, fmt.Errorf("find round score by ID %s: %w", id.String(), err)
	}

	return score, nil
}

func (r *roundScoreRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.RoundScore, error) {
	query := `SELECT ` + scoreColumns + ` FROM round_scores WHERE user_id = $1 ORDER BY played_at DESC LIMIT $2`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		r.log.Error("Failed to find round scores by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find round scores by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var scores []*entity.RoundScore
	for rows.Next() {
		score, err := scanScore(rows)
		if err != nil {
			r.log.Error("Failed to scan round score row", zap.Error(err))
			return nil, fmt.Errorf("scan round score row: %w", err)
		}
		scores = append(scores, score)
	}

	return scores, nil
}

func (r *roundScoreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM round_scores WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete round score",
			zap.Error(err),
			zap.String("score_id", id.String()),
		)
		return fmt.Errorf("delete round score %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("round score %s not found", id.String())
	}

	return nil
}
