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

type VenueHandler struct {
	service usecase.VenueService
	log     *zap.Logger
}

func NewVenueHandler(service usecase.VenueService, log *zap.Logger) *VenueHandler {
	return &VenueHandler{
		service: service,
		log:     log.With(zap.String("handler", "venue")),
	}
}

// ==================== PUBLIC METHODS ====================

// ListVenues handles GET /api/venues (public)
func (h *VenueHandler) ListVenues(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.VenueListRequest{
		Category: query.Get("category"),
		City:     query.Get("city"),
		Search:   query.Get("search"),
	}
	page := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	venues, err := h.service.ListVenues(r.Context(), req, page)
	if err != nil {
		writeServiceError(w, h.log, err, "list venues")
		return
	}

	utils.ResponseSuccess(w, "success", venues)
}

// GetVenue handles GET /api/venues/{slug} (public)
func (h *VenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		utils.ResponseBadRequest(w, "Venue slug is required", nil)
		return
	}

	venue, err := h.service.GetVenueBySlug(r.Context(), slug)
	if err != nil {
		writeServiceError(w, h.log, err, "get venue")
		return
	}

	utils.ResponseSuccess(w, "success", venue)
}

// ListCategories handles GET /api/categories (public)
func (h *VenueHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "list categories")
		return
	}

	utils.ResponseSuccess(w, "success", categories)
}

// ==================== ADMIN METHODS ====================

// CreateVenue handles POST /api/admin/venues (admin only)
func (h *VenueHandler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpsertVenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	venue, err := h.service.CreateVenue(r.Context(), actor, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create venue")
		return
	}

	utils.ResponseCreated(w, "success", venue)
}

// UpdateVenue handles PUT /api/admin/venues/{id} (admin only)
func (h *VenueHandler) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpsertVenueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	venue, err := h.service.UpdateVenue(r.Context(), actor, chi.URLParam(r, "id"), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update venue")
		return
	}

	utils.ResponseSuccess(w, "success", venue)
}

// DeleteVenue handles DELETE /api/admin/venues/{id} (admin only)
func (h *VenueHandler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.DeleteVenue(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, h.log, err, "delete venue")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CreateAddOn handles POST /api/admin/venues/{id}/addons (admin only)
func (h *VenueHandler) CreateAddOn(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpsertAddOnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	addon, err := h.service.CreateAddOn(r.Context(), actor, chi.URLParam(r, "id"), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create add-on")
		return
	}

	utils.ResponseCreated(w, "success", addon)
}

// UpdateAddOn handles PUT /api/admin/addons/{id} (admin only)
func (h *VenueHandler) UpdateAddOn(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpsertAddOnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	addon, err := h.service.UpdateAddOn(r.Context(), actor, chi.URLParam(r, "id"), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update add-on")
		return
	}

	utils.ResponseSuccess(w, "success", addon)
}

// DeleteAddOn handles DELETE /api/admin/addons/{id} (admin only)
func (h *VenueHandler) DeleteAddOn(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.DeleteAddOn(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, h.log, err, "delete add-on")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
