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

type InstructorNoteRepository interface {
	Create(ctx context.Context, note *entity.InstructorNote) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.InstructorNote, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.InstructorNote, error)
	Update(ctx context.Context, note *entity.InstructorNote) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type instructorNoteRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewInstructorNoteRepository(db database.PgxIface, log *zap.Logger) InstructorNoteRepository {
	return &instructorNoteRepository{
		db:  db,
		log: log.With(zap.String("repository", "instructor_note")),
	}
}

const noteColumns = `id, user_id, content, is_private, created_at, updated_at`

func scanNote(row pgx.Row) (*entity.InstructorNote, error) {
	var note entity.InstructorNote
	err := row.Scan(
		&note.ID,
		&note.UserID,
		&note.Content,
		&note.IsPrivate,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *instructorNoteRepository) Create(ctx context.Context, note *entity.InstructorNote) error {
	query := `
		INSERT INTO instructor_notes (id, user_id, content, is_private, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		note.ID,
		note.UserID,
		note.Content,
		note.IsPrivate,
		note.CreatedAt,
		note.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create instructor note",
			zap.Error(err),
			zap.String("user_id", note.UserID.String()),
		)
		return fmt.Errorf("create instructor note for user %s: %w", note.UserID.String(), err)
	}

	return nil
}

func (r *instructorNoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.InstructorNote, error) {
	query := `SELECT ` + noteColumns + ` FROM instructor_notes WHERE id = $1`

	note, err := scanNote(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find instructor note by ID",
			zap.Error(err),
			zap.String("note_id", id.String()),
		)
		return nil, fmt.Errorf("find instructor note by ID %s: %w", id.String(), err)
	}

	return note, nil
}

func (r *instructorNoteRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.InstructorNote, error) {
	query := `SELECT ` + noteColumns + ` FROM instructor_notes WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find instructor notes by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find instructor notes by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var notes []*entity.InstructorNote
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			r.log.Error("Failed to scan instructor note row", zap.Error(err))
			return nil, fmt.Errorf("scan instructor note row: %w", err)
		}
		notes = append(notes, note)
	}

	return notes, nil
}

func (r *instructorNoteRepository) Update(ctx context.Context, note *entity.InstructorNote) error {
	query := `
		UPDATE instructor_notes
		SET content = $2, is_private = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		note.ID,
		note.Content,
		note.IsPrivate,
		note.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update instructor note",
			zap.Error(err),
			zap.String("note_id", note.ID.String()),
		)
		return fmt.Errorf("update instructor note %s: %w", note.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("instructor note %s not found", note.ID.String())
	}

	return nil
}

func (r *instructorNoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM instructor_notes WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete instructor note",
			zap.Error(err),
			zap.String("note_id", id.String()),
		)
		return fmt.Errorf("delete instructor note %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("instructor note %s not found", id.String())
	}

	return nil
}
