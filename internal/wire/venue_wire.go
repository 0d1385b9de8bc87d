package wire

import (
	"venue-booking/internal/adaptor"
	"venue-booking/internal/data/repository"
	"venue-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireVenue(
	r chi.Router,
	venueHandler *adaptor.VenueHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Catalog browsing needs no session
	r.Get("/api/venues", venueHandler.ListVenues)
	r.Get("/api/venues/{slug}", venueHandler.GetVenue)
	r.Get("/api/categories", venueHandler.ListCategories)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/venues", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/", venueHandler.CreateVenue)
		r.Put("/{id}", venueHandler.UpdateVenue)
		r.Delete("/{id}", venueHandler.DeleteVenue)
		r.Post("/{id}/addons", venueHandler.CreateAddOn)
	})

	r.Route("/api/admin/addons", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Put("/{id}", venueHandler.UpdateAddOn)
		r.Delete("/{id}", venueHandler.DeleteAddOn)
	})
}
