package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Venue is catalog reference data. The booking engine reads venues but
// never mutates them; catalog management owns their lifecycle.
type Venue struct {
	Base
	CategoryID         uuid.UUID `db:"category_id"`
	Name               string    `db:"name"`
	Slug               string    `db:"slug"`
	Description        string    `db:"description"`
	Location           string    `db:"location"`
	City               string    `db:"city"`
	Address            string    `db:"address"`
	PricePerHour       float64   `db:"price_per_hour"`
	Capacity           int       `db:"capacity"`
	Facilities         string    `db:"facilities"` // comma separated
	ImageURL           string    `db:"image_url"`
	AvailableStartTime time.Time `db:"available_start_time"` // time-of-day
	AvailableEndTime   time.Time `db:"available_end_time"`
}

func (v *Venue) FacilitiesList() []string {
	var list []string
	for _, f := range strings.Split(v.Facilities, ",") {
		if f = strings.TrimSpace(f); f != "" {
			list = append(list, f)
		}
	}
	return list
}

func (v *Venue) HourlyTotal(hours int) float64 {
	return v.PricePerHour * float64(hours)
}
