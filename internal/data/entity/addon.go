package entity

import (
	"github.com/google/uuid"
)

// AddOn is an optional priced extra scoped to a single venue.
type AddOn struct {
	Base
	VenueID     uuid.UUID `db:"venue_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Price       float64   `db:"price"`
}
