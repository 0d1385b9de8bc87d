package request

type CreateBookingRequest struct {
	VenueID       string   `json:"venue_id" validate:"required,uuid4"`
	StartDatetime string   `json:"start_datetime" validate:"required"`
	EndDatetime   string   `json:"end_datetime" validate:"required"`
	AddOnIDs      []string `json:"addon_ids" validate:"omitempty,dive,uuid4"`
	Notes         string   `json:"notes" validate:"max=1000"`
}

type ConfirmPaymentRequest struct {
	Method string `json:"method" validate:"required,oneof=qris gopay"`
}

type UpdateAddOnsRequest struct {
	AddOnIDs []string `json:"addon_ids" validate:"omitempty,dive,uuid4"`
}
