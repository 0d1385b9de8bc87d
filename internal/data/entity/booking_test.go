package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestDurationHoursTruncates(t *testing.T) {
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		minutes int
		want    int
	}{
		{60, 1},
		{90, 1},
		{119, 1},
		{120, 2},
		{150, 2},
		{59, 0},
	}

	for _, c := range cases {
		b := &Booking{
			StartDatetime: start,
			EndDatetime:   start.Add(time.Duration(c.minutes) * time.Minute),
		}
		if got := b.DurationHours(); got != c.want {
			t.Errorf("%d minutes: got %d hours, want %d", c.minutes, got, c.want)
		}
	}
}

func TestComputeCost(t *testing.T) {
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	booking := &Booking{
		StartDatetime: start,
		EndDatetime:   start.Add(3 * time.Hour),
	}
	venue := &Venue{PricePerHour: 150000}
	addons := []*AddOn{
		{Base: Base{ID: uuid.New()}, Price: 25000},
		{Base: Base{ID: uuid.New()}, Price: 10000},
	}

	cost := ComputeCost(booking, venue, addons)

	if cost.DurationHours != 3 {
		t.Errorf("duration = %d, want 3", cost.DurationHours)
	}
	if cost.BaseCost != 450000 {
		t.Errorf("base cost = %v, want 450000", cost.BaseCost)
	}
	if cost.AddonsTotal != 35000 {
		t.Errorf("addons total = %v, want 35000", cost.AddonsTotal)
	}
	if cost.TotalCost != 485000 {
		t.Errorf("total = %v, want 485000", cost.TotalCost)
	}
}

func TestBookingStatusTerminal(t *testing.T) {
	terminal := []BookingStatus{BookingStatusCompleted, BookingStatusCancelled}
	open := []BookingStatus{BookingStatusPending, BookingStatusActive, BookingStatusConfirmed}

	for _, s := range terminal {
		if !s.Terminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range open {
		if s.Terminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
}
