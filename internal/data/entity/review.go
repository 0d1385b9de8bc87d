package entity

import (
	"github.com/google/uuid"
)

// Review is unique per (user, venue); re-reviewing replaces the old entry.
type Review struct {
	Base
	UserID  uuid.UUID `db:"user_id"`
	VenueID uuid.UUID `db:"venue_id"`
	Rating  int       `db:"rating"` // 1-5
	Comment string    `db:"comment"`
}
