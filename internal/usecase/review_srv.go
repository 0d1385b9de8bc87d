package usecase

import (
	"context"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"
	"venue-booking/pkg/apperr"
	"venue-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	SubmitReview(ctx context.Context, actor Actor, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	ListVenueReviews(ctx context.Context, slug string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) SubmitReview(ctx context.Context, actor Actor, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Submit review validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("Validation failed", errs)
	}

	venueID, err := uuid.Parse(req.VenueID)
	if err != nil {
		return nil, apperr.Validation("Validation failed", map[string]string{"venue_id": "Must be a valid UUID"})
	}

	venue, err := s.repo.Venue.FindByID(ctx, venueID)
	if err != nil {
		return nil, apperr.Internal("load venue", err)
	}
	if venue == nil {
		return nil, apperr.NotFound("venue %s not found", req.VenueID)
	}

	now := time.Now()
	review := &entity.Review{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:  actor.ID,
		VenueID: venue.ID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	// Re-reviewing the same venue replaces the earlier entry.
	if err := s.repo.Review.Upsert(ctx, review); err != nil {
		return nil, apperr.Internal("save review", err)
	}

	s.log.Info("Review submitted",
		zap.String("user_id", actor.ID.String()),
		zap.String("venue_id", venue.ID.String()),
		zap.Int("rating", req.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) ListVenueReviews(ctx context.Context, slug string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	venue, err := s.repo.Venue.FindBySlug(ctx, slug)
	if err != nil {
		return nil, apperr.Internal("load venue", err)
	}
	if venue == nil {
		return nil, apperr.NotFound("venue %s not found", slug)
	}

	reviews, err := s.repo.Review.FindByVenueID(ctx, venue.ID, page.Limit(), page.Offset())
	if err != nil {
		return nil, apperr.Internal("list reviews", err)
	}

	total, err := s.repo.Review.CountByVenueID(ctx, venue.ID)
	if err != nil {
		return nil, apperr.Internal("count reviews", err)
	}

	items := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		items[i] = response.ReviewToResponse(review)
	}

	return response.NewPaginatedResponse(items, page.Page, page.PerPage, total), nil
}
