package wire

import (
	"venue-booking/internal/adaptor"
	"venue-booking/internal/data/repository"
	"venue-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/bookings - Create new booking request
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/user/bookings - Booking history (user's own bookings)
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)

		// GET /api/bookings/{id} - Booking detail (owner or admin)
		r.Get("/api/bookings/{id}", bookingHandler.GetBooking)

		// PUT /api/bookings/{id}/cancel - Cancel booking (owner or admin)
		r.Put("/api/bookings/{id}/cancel", bookingHandler.CancelBooking)

		// POST /api/bookings/{id}/pay - Confirm payment (owner)
		r.Post("/api/bookings/{id}/pay", bookingHandler.ConfirmPayment)

		// PUT /api/bookings/{id}/addons - Change add-on selection (owner)
		r.Put("/api/bookings/{id}/addons", bookingHandler.UpdateAddOns)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		// GET /api/admin/bookings/pending - Approval queue, oldest start first
		r.Get("/pending", bookingHandler.GetPendingBookings)

		// PUT /api/admin/bookings/{id}/approve - Approve pending booking
		r.Put("/{id}/approve", bookingHandler.ApproveBooking)

		// PUT /api/admin/bookings/{id}/complete - Mark confirmed booking done
		r.Put("/{id}/complete", bookingHandler.CompleteBooking)
	})
}
