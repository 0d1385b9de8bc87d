package usecase

import (
	"context"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"
	"venue-booking/pkg/apperr"
	"venue-booking/pkg/cache"
	"venue-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	cacheKeyCategories  = "categories"
	cacheKeyVenuePrefix = "venue:"
)

type VenueService interface {
	// Catalog browse (public)
	ListVenues(ctx context.Context, req *request.VenueListRequest, page *request.PaginatedRequest) (*response.PaginatedResponse[response.VenueResponse], error)
	GetVenueBySlug(ctx context.Context, slug string) (*response.VenueResponse, error)
	ListCategories(ctx context.Context) ([]response.CategoryResponse, error)

	// Catalog management (admin)
	CreateVenue(ctx context.Context, actor Actor, req *request.UpsertVenueRequest) (*response.VenueResponse, error)
	UpdateVenue(ctx context.Context, actor Actor, venueID string, req *request.UpsertVenueRequest) (*response.VenueResponse, error)
	DeleteVenue(ctx context.Context, actor Actor, venueID string) error
	CreateAddOn(ctx context.Context, actor Actor, venueID string, req *request.UpsertAddOnRequest) (*response.AddOnResponse, error)
	UpdateAddOn(ctx context.Context, actor Actor, addonID string, req *request.UpsertAddOnRequest) (*response.AddOnResponse, error)
	DeleteAddOn(ctx context.Context, actor Actor, addonID string) error
}

type venueService struct {
	repo  *repository.Repository
	cache *cache.Cache
	log   *zap.Logger
}

func NewVenueService(repo *repository.Repository, cache *cache.Cache, log *zap.Logger) VenueService {
	return &venueService{
		repo:  repo,
		cache: cache,
		log:   log.With(zap.String("service", "venue")),
	}
}

// ==================== CATALOG BROWSE ====================

func (s *venueService) ListVenues(ctx context.Context, req *request.VenueListRequest, page *request.PaginatedRequest) (*response.PaginatedResponse[response.VenueResponse], error) {
	filter := repository.VenueFilter{
		CategorySlug: req.Category,
		City:         req.City,
		Search:       req.Search,
	}

	venues, err := s.repo.Venue.FindAll(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		return nil, apperr.Internal("list venues", err)
	}

	total, err := s.repo.Venue.CountAll(ctx, filter)
	if err != nil {
		return nil, apperr.Internal("count venues", err)
	}

	items := make([]response.VenueResponse, 0, len(venues))
	for _, venue := range venues {
		addons, err := s.repo.AddOn.FindByVenueID(ctx, venue.ID)
		if err != nil {
			return nil, apperr.Internal("load venue add-ons", err)
		}
		items = append(items, *response.VenueToResponse(venue, addons))
	}

	return response.NewPaginatedResponse(items, page.Page, page.PerPage, total), nil
}

func (s *venueService) GetVenueBySlug(ctx context.Context, slug string) (*response.VenueResponse, error) {
	var cached response.VenueResponse
	if s.cache.Get(ctx, cacheKeyVenuePrefix+slug, &cached) {
		return &cached, nil
	}

	venue, err := s.repo.Venue.FindBySlug(ctx, slug)
	if err != nil {
		return nil, apperr.Internal("load venue", err)
	}
	if venue == nil {
		return nil, apperr.NotFound("venue %s not found", slug)
	}

	addons, err := s.repo.AddOn.FindByVenueID(ctx, venue.ID)
	if err != nil {
		return nil, apperr.Internal("load venue add-ons", err)
	}

	resp := response.VenueToResponse(venue, addons)
	s.cache.Set(ctx, cacheKeyVenuePrefix+slug, resp)

	return resp, nil
}

func (s *venueService) ListCategories(ctx context.Context) ([]response.CategoryResponse, error) {
	var cached []response.CategoryResponse
	if s.cache.Get(ctx, cacheKeyCategories, &cached) {
		return cached, nil
	}

	categories, err := s.repo.Category.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal("list categories", err)
	}

	items := make([]response.CategoryResponse, len(categories))
	for i, category := range categories {
		items[i] = response.CategoryToResponse(category)
	}

	s.cache.Set(ctx, cacheKeyCategories, items)
	return items, nil
}

// ==================== CATALOG MANAGEMENT ====================

func (s *venueService) CreateVenue(ctx context.Context, actor Actor, req *request.UpsertVenueRequest) (*response.VenueResponse, error) {
	if !actor.Admin {
		return nil, apperr.Forbidden("admin access required")
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create venue validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("Validation failed", errs)
	}

	venue, err := s.venueFromRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	venue.Base = entity.Base{
		ID:        utils.GenerateUUID(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	venue.Slug = utils.Slugify(req.Name)

	existing, err := s.repo.Venue.FindBySlug(ctx, venue.Slug)
	if err != nil {
		return nil, apperr.Internal("check slug", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("a venue with this name already exists")
	}

	if err := s.repo.Venue.Create(ctx, venue); err != nil {
		return nil, apperr.Internal("create venue", err)
	}

	s.log.Info("Venue created",
		zap.String("venue_id", venue.ID.String()),
		zap.String("slug", venue.Slug),
	)

	return response.VenueToResponse(venue, nil), nil
}

func (s *venueService) UpdateVenue(ctx context.Context, actor Actor, venueID string, req *request.UpsertVenueRequest) (*response.VenueResponse, error) {
	if !actor.Admin {
		return nil, apperr.Forbidden("admin access required")
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update venue validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("Validation failed", errs)
	}

	id, err := uuid.Parse(venueID)
	if err != nil {
		return nil, apperr.Validation("Validation failed", map[string]string{"venue_id": "Must be a valid UUID"})
	}

	venue, err := s.repo.Venue.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("load venue", err)
	}
	if venue == nil {
		return nil, apperr.NotFound("venue %s not found", venueID)
	}
	oldSlug := venue.Slug

	updated, err := s.venueFromRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	// Slug is stable across renames so existing links keep working.
	updated.Base = venue.Base
	updated.Slug = venue.Slug
	updated.UpdatedAt = time.Now()

	if err := s.repo.Venue.Update(ctx, updated); err != nil {
		return nil, apperr.Internal("update venue", err)
	}

	s.cache.Invalidate(ctx, cacheKeyVenuePrefix+oldSlug)

	addons, err := s.repo.AddOn.FindByVenueID(ctx, updated.ID)
	if err != nil {
		return nil, apperr.Internal("load venue add-ons", err)
	}

	s.log.Info("Venue updated", zap.String("venue_id", updated.ID.String()))

	return response.VenueToResponse(updated, addons), nil
}

func (s *venueService) DeleteVenue(ctx context.Context, actor Actor, venueID string) error {
	if !actor.Admin {
		return apperr.Forbidden("admin access required")
	}

	id, err := uuid.Parse(venueID)
	if err != nil {
		return apperr.Validation("Validation failed", map[string]string{"venue_id": "Must be a valid UUID"})
	}

	venue, err := s.repo.Venue.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal("load venue", err)
	}
	if venue == nil {
		return apperr.NotFound("venue %s not found", venueID)
	}

	// Bookings, payments, add-ons and reviews cascade in the database.
	if err := s.repo.Venue.Delete(ctx, id); err != nil {
		return apperr.Internal("delete venue", err)
	}

	s.cache.Invalidate(ctx, cacheKeyVenuePrefix+venue.Slug)

	s.log.Info("Venue deleted",
		zap.String("venue_id", venueID),
		zap.String("slug", venue.Slug),
	)
	return nil
}

func (s *venueService) CreateAddOn(ctx context.Context, actor Actor, venueID string, req *request.UpsertAddOnRequest) (*response.AddOnResponse, error) {
	if !actor.Admin {
		return nil, apperr.Forbidden("admin access required")
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("Validation failed", errs)
	}

	id, err := uuid.Parse(venueID)
	if err != nil {
		return nil, apperr.Validation("Validation failed", map[string]string{"venue_id": "Must be a valid UUID"})
	}

	venue, err := s.repo.Venue.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("load venue", err)
	}
	if venue == nil {
		return nil, apperr.NotFound("venue %s not found", venueID)
	}

	now := time.Now()
	addon := &entity.AddOn{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		VenueID:     venue.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}

	if err := s.repo.AddOn.Create(ctx, addon); err != nil {
		return nil, apperr.Internal("create add-on", err)
	}

	s.cache.Invalidate(ctx, cacheKeyVenuePrefix+venue.Slug)

	s.log.Info("Add-on created",
		zap.String("addon_id", addon.ID.String()),
		zap.String("venue_id", venue.ID.String()),
	)

	resp := response.AddOnToResponse(addon)
	return &resp, nil
}

func (s *venueService) UpdateAddOn(ctx context.Context, actor Actor, addonID string, req *request.UpsertAddOnRequest) (*response.AddOnResponse, error) {
	if !actor.Admin {
		return nil, apperr.Forbidden("admin access required")
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("Validation failed", errs)
	}

	id, err := uuid.Parse(addonID)
	if err != nil {
		return nil, apperr.Validation("Validation failed", map[string]string{"addon_id": "Must be a valid UUID"})
	}

	addon, err := s.repo.AddOn.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("load add-on", err)
	}
	if addon == nil {
		return nil, apperr.NotFound("add-on %s not found", addonID)
	}

	addon.Name = req.Name
	addon.Description = req.Description
	addon.Price = req.Price
	addon.UpdatedAt = time.Now()

	if err := s.repo.AddOn.Update(ctx, addon); err != nil {
		return nil, apperr.Internal("update add-on", err)
	}

	s.invalidateVenueBySlug(ctx, addon.VenueID)

	s.log.Info("Add-on updated",
		zap.String("addon_id", addon.ID.String()),
		zap.Float64("price", addon.Price),
	)

	resp := response.AddOnToResponse(addon)
	return &resp, nil
}

func (s *venueService) DeleteAddOn(ctx context.Context, actor Actor, addonID string) error {
	if !actor.Admin {
		return apperr.Forbidden("admin access required")
	}

	id, err := uuid.Parse(addonID)
	if err != nil {
		return apperr.Validation("Validation failed", map[string]string{"addon_id": "Must be a valid UUID"})
	}

	addon, err := s.repo.AddOn.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal("load add-on", err)
	}
	if addon == nil {
		return apperr.NotFound("add-on %s not found", addonID)
	}

	if err := s.repo.AddOn.Delete(ctx, id); err != nil {
		return apperr.Internal("delete add-on", err)
	}

	s.invalidateVenueBySlug(ctx, addon.VenueID)

	s.log.Info("Add-on deleted", zap.String("addon_id", addonID))
	return nil
}

// ==================== HELPER METHODS ====================

func (s *venueService) venueFromRequest(ctx context.Context, req *request.UpsertVenueRequest) (*entity.Venue, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, apperr.Validation("Validation failed", map[string]string{"category_id": "Must be a valid UUID"})
	}

	category, err := s.repo.Category.FindByID(ctx, categoryID)
	if err != nil {
		return nil, apperr.Internal("load category", err)
	}
	if category == nil {
		return nil, apperr.NotFound("category %s not found", req.CategoryID)
	}

	venue := &entity.Venue{
		CategoryID:   category.ID,
		Name:         req.Name,
		Description:  req.Description,
		Location:     req.Location,
		City:         req.City,
		Address:      req.Address,
		PricePerHour: req.PricePerHour,
		Capacity:     req.Capacity,
		Facilities:   req.Facilities,
		ImageURL:     req.ImageURL,
	}

	if req.AvailableStartTime != "" {
		t, err := utils.ParseClock(req.AvailableStartTime)
		if err != nil {
			return nil, apperr.Validation("Validation failed", map[string]string{"available_start_time": "Must be HH:MM"})
		}
		venue.AvailableStartTime = t
	}
	if req.AvailableEndTime != "" {
		t, err := utils.ParseClock(req.AvailableEndTime)
		if err != nil {
			return nil, apperr.Validation("Validation failed", map[string]string{"available_end_time": "Must be HH:MM"})
		}
		venue.AvailableEndTime = t
	}

	return venue, nil
}

func (s *venueService) invalidateVenueBySlug(ctx context.Context, venueID uuid.UUID) {
	venue, err := s.repo.Venue.FindByID(ctx, venueID)
	if err != nil || venue == nil {
		return
	}
	s.cache.Invalidate(ctx, cacheKeyVenuePrefix+venue.Slug)
}
