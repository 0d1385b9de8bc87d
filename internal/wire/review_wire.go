package wire

import (
	"venue-booking/internal/adaptor"
	"venue-booking/internal/data/repository"
	"venue-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/venues/{slug}/reviews", reviewHandler.ListVenueReviews)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/api/reviews", reviewHandler.SubmitReview)
	})
}
