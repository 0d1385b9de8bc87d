package repository

import (
	"context"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	// Upsert inserts the review or, when the user already reviewed the
	// venue, replaces rating and comment. One review per (user, venue).
	Upsert(ctx context.Context, review *entity.Review) error
	FindByVenueID(ctx context.Context, venueID uuid.UUID, limit, offset int) ([]*entity.Review, error)
	CountByVenueID(ctx context.Context, venueID uuid.UUID) (int64, error)
}

type reviewRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewReviewRepository(db database.Querier, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Upsert(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, venue_id, rating, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, venue_id)
		DO UPDATE SET rating = EXCLUDED.rating, comment = EXCLUDED.comment, updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.UserID,
		review.VenueID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
		review.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to upsert review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
			zap.String("venue_id", review.VenueID.String()),
		)
		return fmt.Errorf("upsert review for venue %s: %w", review.VenueID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByVenueID(ctx context.Context, venueID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT id, user_id, venue_id, rating, comment, created_at, updated_at
		FROM reviews
		WHERE venue_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, venueID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find reviews by venue ID",
			zap.Error(err),
			zap.String("venue_id", venueID.String()),
		)
		return nil, fmt.Errorf("find reviews by venue ID %s: %w", venueID.String(), err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.VenueID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
			&review.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, rows.Err()
}

func (r *reviewRepository) CountByVenueID(ctx context.Context, venueID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE venue_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, venueID).Scan(&count); err != nil {
		r.log.Error("Failed to count reviews by venue ID",
			zap.Error(err),
			zap.String("venue_id", venueID.String()),
		)
		return 0, fmt.Errorf("count reviews by venue ID %s: %w", venueID.String(), err)
	}

	return count, nil
}
