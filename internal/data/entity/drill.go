package entity

import (
	"time"

	"github.com/google/uuid"
)

type DrillStatus string

const (
	DrillStatusAssigned   DrillStatus = "ASSIGNED"
	DrillStatusInProgress DrillStatus = "IN_PROGRESS"
	DrillStatusCompleted  DrillStatus = "COMPLETED"
)

// Drill is practice homework the instructor assigns to a customer.
type Drill struct {
	Base
	UserID      uuid.UUID   `db:"user_id"`
	Title       string      `db:"title"`
	Description *string     `db:"description"`
	VideoURL    *string     `db:"video_url"`
	Status      DrillStatus `db:"status"`
	DueDate     *time.Time  `db:"due_date"`
}
