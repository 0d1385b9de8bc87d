package events

// Routing keys for booking lifecycle events published to the topic exchange.
const (
	RKBookingCreated   = "booking.created"
	RKBookingApproved  = "booking.approved"
	RKBookingCancelled = "booking.cancelled"
	RKBookingConfirmed = "booking.confirmed"
	RKBookingCompleted = "booking.completed"
)

// BookingEvent carries enough context for a downstream consumer to build a
// notification without calling back into the service.
type BookingEvent struct {
	BookingID     string  `json:"booking_id"`
	UserID        string  `json:"user_id"`
	VenueID       string  `json:"venue_id"`
	Status        string  `json:"status"`
	TotalCost     float64 `json:"total_cost"`
	Start         int64   `json:"start"` // unix seconds
	End           int64   `json:"end"`
	ReferenceCode string  `json:"reference_code,omitempty"`
}
