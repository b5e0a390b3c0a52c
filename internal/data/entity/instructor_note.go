package entity

import (
	"github.com/google/uuid"
)

// InstructorNote is a karte entry written by the instructor about a
// customer. Private notes never leave the admin surface.
type InstructorNote struct {
	Base
	UserID    uuid.UUID `db:"user_id"`
	Content   string    `db:"content"`
	IsPrivate bool      `db:"is_private"`
}
