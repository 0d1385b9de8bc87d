package adaptor

import (
	"encoding/json"
	"net/http"

	"venue-booking/internal/dto/request"
	"venue-booking/internal/usecase"
	"venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// SubmitReview handles POST /api/reviews (protected)
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	review, err := h.service.SubmitReview(r.Context(), actor, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "submit review")
		return
	}

	utils.ResponseCreated(w, "success", review)
}

// ListVenueReviews handles GET /api/venues/{slug}/reviews (public)
func (h *ReviewHandler) ListVenueReviews(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	reviews, err := h.service.ListVenueReviews(r.Context(), chi.URLParam(r, "slug"), page)
	if err != nil {
		writeServiceError(w, h.log, err, "list venue reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}
