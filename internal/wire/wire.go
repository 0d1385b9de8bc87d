package wire

import (
	"net/http"

	"venue-booking/internal/adaptor"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/usecase"
	"venue-booking/pkg/cache"
	"venue-booking/pkg/events"
	"venue-booking/pkg/middleware"
	"venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the router.
func Wiring(repo *repository.Repository, config *utils.Config, cache *cache.Cache, publisher *events.Publisher, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, cache, publisher, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, repo, logger)
	wireUser(r, handler.User, repo, logger)
	wireVenue(r, handler.Venue, repo, logger)
	wireBooking(r, handler.Booking, repo, logger)
	wireReview(r, handler.Review, repo, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
