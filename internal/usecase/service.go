package usecase

import (
	"venue-booking/internal/data/repository"
	"venue-booking/pkg/cache"
	"venue-booking/pkg/events"
	"venue-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Actor identifies who is performing an operation. The capability flag is
// resolved once from the session at the HTTP boundary; services never
// re-derive it from the database.
type Actor struct {
	ID    uuid.UUID
	Admin bool
}

type Service struct {
	Auth    AuthService
	User    UserService
	Venue   VenueService
	Booking BookingService
	Review  ReviewService
}

func NewService(repo *repository.Repository, config *utils.Config, cache *cache.Cache, publisher *events.Publisher, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		User:    NewUserService(repo.User, log),
		Venue:   NewVenueService(repo, cache, log),
		Booking: NewBookingService(repo, config, publisher, log),
		Review:  NewReviewService(repo, log),
	}
}
