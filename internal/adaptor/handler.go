package adaptor

import (
	"net/http"

	"venue-booking/internal/usecase"
	"venue-booking/pkg/apperr"
	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Venue   *VenueHandler
	Booking *BookingHandler
	Review  *ReviewHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Venue:   NewVenueHandler(service.Venue, log),
		Booking: NewBookingHandler(service.Booking, log),
		Review:  NewReviewHandler(service.Review, log),
	}
}

// actorFromContext rebuilds the acting identity from what AuthSession put
// in the request context.
func actorFromContext(r *http.Request) (usecase.Actor, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return usecase.Actor{}, false
	}
	role, _ := utils.GetRoleFromContext(r.Context())
	return usecase.Actor{ID: userID, Admin: role == "admin"}, true
}

// writeServiceError maps a service error onto the HTTP response.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	e := apperr.From(err)
	status := e.HTTPStatus()

	if status >= http.StatusInternalServerError {
		log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	log.Warn(operation+" rejected",
		zap.String("operation", operation),
		zap.Int("status", status),
		zap.Error(err),
	)
	utils.ResponseJSON(w, status, false, e.Message, nil, e.Fields)
}
