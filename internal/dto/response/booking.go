package response

import (
	"time"

	"venue-booking/internal/data/entity"
)

type VenueSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type PaymentResponse struct {
	ID            string               `json:"id"`
	Method        entity.PaymentMethod `json:"method"`
	Status        entity.PaymentStatus `json:"status"`
	TotalAmount   float64              `json:"total_amount"`
	DepositAmount float64              `json:"deposit_amount"`
	ReferenceCode string               `json:"reference_code"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

type AddOnSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type BookingResponse struct {
	ID            string               `json:"id"`
	UserID        string               `json:"user_id"`
	Venue         VenueSummary         `json:"venue"`
	StartDatetime string               `json:"start_datetime"` // ISO-8601
	EndDatetime   string               `json:"end_datetime"`
	Status        entity.BookingStatus `json:"status"`
	Notes         string               `json:"notes,omitempty"`
	DurationHours int                  `json:"duration_hours"`
	BaseCost      float64              `json:"base_cost"`
	AddonsTotal   float64              `json:"addons_total"`
	TotalCost     float64              `json:"total_cost"`
	AddOns        []AddOnSummary       `json:"addons"`
	ApprovedBy    *string              `json:"approved_by,omitempty"`
	ApprovedAt    *time.Time           `json:"approved_at,omitempty"`
	Payment       *PaymentResponse     `json:"payment"` // null until created (never in practice: created eagerly)
	CreatedAt     time.Time            `json:"created_at"`
}

// Helper converters

func PaymentToResponse(payment *entity.Payment) *PaymentResponse {
	if payment == nil {
		return nil
	}
	return &PaymentResponse{
		ID:            payment.ID.String(),
		Method:        payment.Method,
		Status:        payment.Status,
		TotalAmount:   payment.TotalAmount,
		DepositAmount: payment.DepositAmount,
		ReferenceCode: payment.ReferenceCode,
		CreatedAt:     payment.CreatedAt,
		UpdatedAt:     payment.UpdatedAt,
	}
}

func BookingToResponse(booking *entity.Booking, venue *entity.Venue, addons []*entity.AddOn, payment *entity.Payment) *BookingResponse {
	cost := entity.ComputeCost(booking, venue, addons)

	addonSummaries := make([]AddOnSummary, len(addons))
	for i, addon := range addons {
		addonSummaries[i] = AddOnSummary{
			ID:    addon.ID.String(),
			Name:  addon.Name,
			Price: addon.Price,
		}
	}

	var approvedBy *string
	if booking.ApprovedBy != nil {
		s := booking.ApprovedBy.String()
		approvedBy = &s
	}

	return &BookingResponse{
		ID:     booking.ID.String(),
		UserID: booking.UserID.String(),
		Venue: VenueSummary{
			ID:   venue.ID.String(),
			Name: venue.Name,
			Slug: venue.Slug,
		},
		StartDatetime: booking.StartDatetime.Format(time.RFC3339),
		EndDatetime:   booking.EndDatetime.Format(time.RFC3339),
		Status:        booking.Status,
		Notes:         booking.Notes,
		DurationHours: cost.DurationHours,
		BaseCost:      cost.BaseCost,
		AddonsTotal:   cost.AddonsTotal,
		TotalCost:     cost.TotalCost,
		AddOns:        addonSummaries,
		ApprovedBy:    approvedBy,
		ApprovedAt:    booking.ApprovedAt,
		Payment:       PaymentToResponse(payment),
		CreatedAt:     booking.CreatedAt,
	}
}
