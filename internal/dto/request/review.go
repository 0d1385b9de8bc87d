package request

type CreateReviewRequest struct {
	VenueID string `json:"venue_id" validate:"required,uuid4"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"required,max=2000"`
}
