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

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings (protected)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), actor, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// GetUserBookings handles GET /api/user/bookings (protected)
func (h *BookingHandler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	page := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	bookings, err := h.service.ListUserBookings(r.Context(), actor, query["status"], page)
	if err != nil {
		writeServiceError(w, h.log, err, "list user bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBooking handles GET /api/bookings/{id} (protected, owner or admin)
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.GetBooking(r.Context(), actor, bookingID)
	if err != nil {
		writeServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// CancelBooking handles PUT /api/bookings/{id}/cancel (protected, owner or admin)
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.CancelBooking(r.Context(), actor, bookingID)
	if err != nil {
		writeServiceError(w, h.log, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// ConfirmPayment handles POST /api/bookings/{id}/pay (protected, owner)
func (h *BookingHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.ConfirmPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.ConfirmPayment(r.Context(), actor, bookingID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "confirm payment")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// UpdateAddOns handles PUT /api/bookings/{id}/addons (protected, owner)
func (h *BookingHandler) UpdateAddOns(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.UpdateAddOnsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.UpdateAddOns(r.Context(), actor, bookingID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update booking add-ons")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// ==================== ADMIN METHODS ====================

// GetPendingBookings handles GET /api/admin/bookings/pending (admin only)
func (h *BookingHandler) GetPendingBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	bookings, err := h.service.ListPendingBookings(r.Context(), page)
	if err != nil {
		writeServiceError(w, h.log, err, "list pending bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// ApproveBooking handles PUT /api/admin/bookings/{id}/approve (admin only)
func (h *BookingHandler) ApproveBooking(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.ApproveBooking(r.Context(), actor, bookingID)
	if err != nil {
		writeServiceError(w, h.log, err, "approve booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// CompleteBooking handles PUT /api/admin/bookings/{id}/complete (admin only)
func (h *BookingHandler) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.CompleteBooking(r.Context(), actor, bookingID)
	if err != nil {
		writeServiceError(w, h.log, err, "complete booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}
