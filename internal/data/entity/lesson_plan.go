package entity

type LessonCategory string

const (
	CategoryRegular LessonCategory = "REGULAR"
	CategoryRound   LessonCategory = "ROUND"
)

// LessonPlan is a catalog entry. Mutated only through admin content
// management, never by the reservation workflow.
type LessonPlan struct {
	Base
	Name            string         `db:"name"`
	Category        LessonCategory `db:"category"`
	Description     *string        `db:"description"`
	Price           int            `db:"price"`
	DurationMinutes int            `db:"duration_minutes"`
	MaxAttendees    int            `db:"max_attendees"`
	IsPublished     bool           `db:"is_published"`
	DisplayOrder    int            `db:"display_order"`
}
