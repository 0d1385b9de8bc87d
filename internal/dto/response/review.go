package response

import (
	"time"

	"venue-booking/internal/data/entity"
)

type ReviewResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	VenueID   string    `json:"venue_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID.String(),
		UserID:    review.UserID.String(),
		VenueID:   review.VenueID.String(),
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}
