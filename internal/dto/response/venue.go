package response

import (
	"time"

	"venue-booking/internal/data/entity"
)

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type AddOnResponse struct {
	ID          string  `json:"id"`
	VenueID     string  `json:"venue_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

type VenueResponse struct {
	ID                 string          `json:"id"`
	CategoryID         string          `json:"category_id"`
	Name               string          `json:"name"`
	Slug               string          `json:"slug"`
	Description        string          `json:"description"`
	Location           string          `json:"location"`
	City               string          `json:"city"`
	Address            string          `json:"address,omitempty"`
	PricePerHour       float64         `json:"price_per_hour"`
	Capacity           int             `json:"capacity"`
	Facilities         []string        `json:"facilities"`
	ImageURL           string          `json:"image_url,omitempty"`
	AvailableStartTime string          `json:"available_start_time"`
	AvailableEndTime   string          `json:"available_end_time"`
	AddOns             []AddOnResponse `json:"addons,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

func CategoryToResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:   category.ID.String(),
		Name: category.Name,
		Slug: category.Slug,
	}
}

func AddOnToResponse(addon *entity.AddOn) AddOnResponse {
	return AddOnResponse{
		ID:          addon.ID.String(),
		VenueID:     addon.VenueID.String(),
		Name:        addon.Name,
		Description: addon.Description,
		Price:       addon.Price,
	}
}

func VenueToResponse(venue *entity.Venue, addons []*entity.AddOn) *VenueResponse {
	addonResponses := make([]AddOnResponse, len(addons))
	for i, addon := range addons {
		addonResponses[i] = AddOnToResponse(addon)
	}

	return &VenueResponse{
		ID:                 venue.ID.String(),
		CategoryID:         venue.CategoryID.String(),
		Name:               venue.Name,
		Slug:               venue.Slug,
		Description:        venue.Description,
		Location:           venue.Location,
		City:               venue.City,
		Address:            venue.Address,
		PricePerHour:       venue.PricePerHour,
		Capacity:           venue.Capacity,
		Facilities:         venue.FacilitiesList(),
		ImageURL:           venue.ImageURL,
		AvailableStartTime: venue.AvailableStartTime.Format("15:04"),
		AvailableEndTime:   venue.AvailableEndTime.Format("15:04"),
		AddOns:             addonResponses,
		CreatedAt:          venue.CreatedAt,
	}
}
