package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusActive    BookingStatus = "active"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Terminal reports whether no further transitions are permitted.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

type Booking struct {
	Base
	UserID        uuid.UUID     `db:"user_id"`
	VenueID       uuid.UUID     `db:"venue_id"`
	StartDatetime time.Time     `db:"start_datetime"`
	EndDatetime   time.Time     `db:"end_datetime"`
	Notes         string        `db:"notes"`
	Status        BookingStatus `db:"status"`
	ApprovedBy    *uuid.UUID    `db:"approved_by"`
	ApprovedAt    *time.Time    `db:"approved_at"`
}

// DurationHours is the billable duration, truncated to whole hours.
// A 90-minute booking bills as 1 hour.
func (b *Booking) DurationHours() int {
	return int(b.EndDatetime.Sub(b.StartDatetime) / time.Hour)
}

// CostBreakdown is derived state, never stored. It is recomputed from the
// venue's current rate and the add-ons' current prices every time it is
// needed, so repricing an add-on retroactively changes open bookings.
type CostBreakdown struct {
	DurationHours int
	BaseCost      float64
	AddonsTotal   float64
	TotalCost     float64
}

func ComputeCost(booking *Booking, venue *Venue, addons []*AddOn) CostBreakdown {
	hours := booking.DurationHours()

	var addonsTotal float64
	for _, addon := range addons {
		addonsTotal += addon.Price
	}

	baseCost := venue.HourlyTotal(hours)

	return CostBreakdown{
		DurationHours: hours,
		BaseCost:      baseCost,
		AddonsTotal:   addonsTotal,
		TotalCost:     baseCost + addonsTotal,
	}
}
