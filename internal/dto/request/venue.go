package request

type UpsertVenueRequest struct {
	CategoryID         string  `json:"category_id" validate:"required,uuid4"`
	Name               string  `json:"name" validate:"required,max=150"`
	Description        string  `json:"description" validate:"required"`
	Location           string  `json:"location" validate:"required,max=150"`
	City               string  `json:"city" validate:"required,max=100"`
	Address            string  `json:"address" validate:"max=500"`
	PricePerHour       float64 `json:"price_per_hour" validate:"gte=0"`
	Capacity           int     `json:"capacity" validate:"gte=1"`
	Facilities         string  `json:"facilities"`
	ImageURL           string  `json:"image_url" validate:"omitempty,url"`
	AvailableStartTime string  `json:"available_start_time" validate:"omitempty"` // "07:00"
	AvailableEndTime   string  `json:"available_end_time" validate:"omitempty"`   // "22:00"
}

type UpsertAddOnRequest struct {
	Name        string  `json:"name" validate:"required,max=120"`
	Description string  `json:"description" validate:"max=500"`
	Price       float64 `json:"price" validate:"gte=0"`
}

type VenueListRequest struct {
	Category string `json:"category"`
	City     string `json:"city"`
	Search   string `json:"search"`
}
