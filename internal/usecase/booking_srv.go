package usecase

import (
	"context"
	"errors"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"
	"venue-booking/pkg/apperr"
	"venue-booking/pkg/events"
	"venue-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxReferenceAttempts bounds retries when a generated payment reference
// code collides with an existing one.
const maxReferenceAttempts = 3

type BookingService interface {
	// Booking lifecycle
	CreateBooking(ctx context.Context, actor Actor, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	ApproveBooking(ctx context.Context, actor Actor, bookingID string) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, actor Actor, bookingID string) (*response.BookingResponse, error)
	ConfirmPayment(ctx context.Context, actor Actor, bookingID string, req *request.ConfirmPaymentRequest) (*response.BookingResponse, error)
	CompleteBooking(ctx context.Context, actor Actor, bookingID string) (*response.BookingResponse, error)
	UpdateAddOns(ctx context.Context, actor Actor, bookingID string, req *request.UpdateAddOnsRequest) (*response.BookingResponse, error)

	// Directory (read side)
	GetBooking(ctx context.Context, actor Actor, bookingID string) (*response.BookingResponse, error)
	ListUserBookings(ctx context.Context, actor Actor, statuses []string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	ListPendingBookings(ctx context.Context, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
}

type bookingService struct {
	repo   *repository.Repository
	config *utils.Config
	events *events.Publisher
	log    *zap.Logger
}

func NewBookingService(repo *repository.Repository, config *utils.Config, publisher *events.Publisher, log *zap.Logger) BookingService {
	return &bookingService{
		repo:   repo,
		config: config,
		events: publisher,
		log:    log.With(zap.String("service", "booking")),
	}
}

// defaultListStatuses is what a user's "booked places" view shows when no
// explicit filter is given.
var defaultListStatuses = []entity.BookingStatus{
	entity.BookingStatusActive,
	entity.BookingStatusConfirmed,
	entity.BookingStatusCompleted,
}

func (s *bookingService) CreateBooking(ctx context.Context, actor Actor, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("Validation failed", errs)
	}

	// Administrators manage venues and approve bookings; they may not
	// book for themselves.
	if actor.Admin {
		return nil, apperr.Forbidden("administrators may not create bookings")
	}

	venueID, err := uuid.Parse(req.VenueID)
	if err != nil {
		return nil, apperr.Validation("Validation failed", map[string]string{"venue_id": "Must be a valid UUID"})
	}

	start, err := utils.ParseTimeRFC3339(req.StartDatetime)
	if err != nil {
		return nil, apperr.Validation("Validation failed", map[string]string{"start_datetime": "Must be an ISO-8601 timestamp"})
	}
	end, err := utils.ParseTimeRFC3339(req.EndDatetime)
	if err != nil {
		return nil, apperr.Validation("Validation failed", map[string]string{"end_datetime": "Must be an ISO-8601 timestamp"})
	}
	if !end.After(start) {
		return nil, apperr.Validation("Validation failed", map[string]string{"end_datetime": "End datetime must be greater than start datetime"})
	}

	venue, err := s.repo.Venue.FindByID(ctx, venueID)
	if err != nil {
		return nil, apperr.Internal("check venue", err)
	}
	if venue == nil {
		return nil, apperr.NotFound("venue %s not found", req.VenueID)
	}

	// Set semantics: a duplicated add-on id counts once.
	addonIDs, err := parseUUIDSet(req.AddOnIDs)
	if err != nil {
		return nil, apperr.Validation("Validation failed", map[string]string{"addon_ids": "Must be valid UUIDs"})
	}

	addons, err := s.loadVenueAddOns(ctx, s.repo, venue.ID, addonIDs)
	if err != nil {
		return nil, err
	}

	if s.config.Booking.OverlapCheck {
		overlap, err := s.repo.Booking.HasOverlap(ctx, venue.ID, start, end)
		if err != nil {
			return nil, apperr.Internal("check overlap", err)
		}
		if overlap {
			return nil, apperr.Conflict("time slot already booked for this venue")
		}
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:        actor.ID,
		VenueID:       venue.ID,
		StartDatetime: start,
		EndDatetime:   end,
		Notes:         req.Notes,
		Status:        entity.BookingStatusPending,
	}

	cost := entity.ComputeCost(booking, venue, addons)

	var payment *entity.Payment
	err = s.repo.InTx(ctx, func(r *repository.Repository) error {
		if err := r.Booking.Create(ctx, booking); err != nil {
			return apperr.Internal("create booking", err)
		}
		if err := r.BookingAddOn.CreateBatch(ctx, booking.ID, addonIDs); err != nil {
			return apperr.Internal("attach add-ons", err)
		}

		// Payment ledger entry is created eagerly, never lazily.
		payment, err = s.createPayment(ctx, r, booking.ID, cost.TotalCost)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", actor.ID.String()),
		zap.String("venue_id", venue.ID.String()),
		zap.Int("duration_hours", cost.DurationHours),
		zap.Float64("total_cost", cost.TotalCost),
	)

	s.publish(ctx, events.RKBookingCreated, booking, payment, cost.TotalCost)

	return response.BookingToResponse(booking, venue, addons, payment), nil
}

func (s *bookingService) ApproveBooking(ctx context.Context, actor Actor, bookingID string) (*response.BookingResponse, error) {
	if !actor.Admin {
		return nil, apperr.Forbidden("admin access required")
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, apperr.Validation("Validation failed", map[string]string{"booking_id": "Must be a valid UUID"})
	}

	var (
		booking *entity.Booking
		payment *entity.Payment
		venue   *entity.Venue
		addons  []*entity.AddOn
	)

	err = s.repo.InTx(ctx, func(r *repository.Repository) error {
		booking, err = r.Booking.FindByIDForUpdate(ctx, id)
		if err != nil {
			return apperr.Internal("load booking", err)
		}
		if booking == nil {
			return apperr.NotFound("booking %s not found", bookingID)
		}
		if booking.Status != entity.BookingStatusPending {
			return apperr.InvalidState(string(booking.Status), "only pending bookings can be approved")
		}

		now := time.Now()
		booking.Status = entity.BookingStatusActive
		booking.ApprovedBy = &actor.ID
		booking.ApprovedAt = &now
		booking.UpdatedAt = now
		if err := r.Booking.UpdateStatus(ctx, booking); err != nil {
			return apperr.Internal("approve booking", err)
		}

		// Refresh the ledger against current prices before the user pays.
		venue, addons, err = s.loadBookingPricing(ctx, r, booking)
		if err != nil {
			return err
		}
		cost := entity.ComputeCost(booking, venue, addons)

		payment, err = s.ensurePayment(ctx, r, booking.ID, cost.TotalCost)
		if err != nil {
			return err
		}
		return s.resyncPayment(ctx, r, payment, cost.TotalCost)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking approved",
		zap.String("booking_id", booking.ID.String()),
		zap.String("approved_by", actor.ID.String()),
	)

	s.publish(ctx, events.RKBookingApproved, booking, payment, payment.TotalAmount)

	return response.BookingToResponse(booking, venue, addons, payment), nil
}

func (s *bookingService) CancelBooking(ctx context.Context, actor Actor, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, apperr.Validation("Validation failed", map[string]string{"booking_id": "Must be a valid UUID"})
	}

	var (
		booking *entity.Booking
		payment *entity.Payment
		venue   *entity.Venue
		addons  []*entity.AddOn
	)

	err = s.repo.InTx(ctx, func(r *repository.Repository) error {
		booking, err = r.Booking.FindByIDForUpdate(ctx, id)
		if err != nil {
			return apperr.Internal("load booking", err)
		}
		if booking == nil {
			return apperr.NotFound("booking %s not found", bookingID)
		}
		if !actor.Admin && booking.UserID != actor.ID {
			return apperr.Forbidden("not your booking")
		}
		if booking.Status.Terminal() {
			return apperr.InvalidState(string(booking.Status), "this booking can no longer be cancelled")
		}
		if booking.Status == entity.BookingStatusConfirmed && !actor.Admin {
			return apperr.InvalidState(string(booking.Status), "confirmed bookings are cancelled by an administrator")
		}

		now := time.Now()
		booking.Status = entity.BookingStatusCancelled
		booking.ApprovedBy = nil
		booking.ApprovedAt = nil
		booking.UpdatedAt = now
		if err := r.Booking.UpdateStatus(ctx, booking); err != nil {
			return apperr.Internal("cancel booking", err)
		}

		venue, addons, err = s.loadBookingPricing(ctx, r, booking)
		if err != nil {
			return err
		}
		cost := entity.ComputeCost(booking, venue, addons)

		// The payment is reset, not deleted: the ledger row stays as an
		// audit trail and the user can book again later.
		payment, err = s.ensurePayment(ctx, r, booking.ID, cost.TotalCost)
		if err != nil {
			return err
		}
		if payment.Status != entity.PaymentStatusWaiting {
			if err := r.Payment.UpdateStatus(ctx, payment.ID, entity.PaymentStatusWaiting, payment.Method); err != nil {
				return apperr.Internal("reset payment", err)
			}
			payment.Status = entity.PaymentStatusWaiting
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", booking.ID.String()),
		zap.String("actor_id", actor.ID.String()),
		zap.Bool("by_admin", actor.Admin),
	)

	s.publish(ctx, events.RKBookingCancelled, booking, payment, payment.TotalAmount)

	return response.BookingToResponse(booking, venue, addons, payment), nil
}

func (s *bookingService) ConfirmPayment(ctx context.Context, actor Actor, bookingID string, req *request.ConfirmPaymentRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Confirm payment validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("Validation failed", errs)
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, apperr.Validation("Validation failed", map[string]string{"booking_id": "Must be a valid UUID"})
	}

	var (
		booking *entity.Booking
		payment *entity.Payment
		venue   *entity.Venue
		addons  []*entity.AddOn
	)

	err = s.repo.InTx(ctx, func(r *repository.Repository) error {
		booking, err = r.Booking.FindByIDForUpdate(ctx, id)
		if err != nil {
			return apperr.Internal("load booking", err)
		}
		if booking == nil {
			return apperr.NotFound("booking %s not found", bookingID)
		}
		if booking.UserID != actor.ID {
			return apperr.Forbidden("not your booking")
		}
		if booking.Status == entity.BookingStatusPending {
			return apperr.InvalidState(string(booking.Status), "this booking still requires admin approval before payment")
		}
		if booking.Status.Terminal() {
			return apperr.InvalidState(string(booking.Status), "this booking can no longer be paid")
		}
		if booking.Status == entity.BookingStatusConfirmed {
			return apperr.InvalidState(string(booking.Status), "payment already confirmed")
		}

		venue, addons, err = s.loadBookingPricing(ctx, r, booking)
		if err != nil {
			return err
		}
		cost := entity.ComputeCost(booking, venue, addons)

		payment, err = s.ensurePayment(ctx, r, booking.ID, cost.TotalCost)
		if err != nil {
			return err
		}
		if err := s.resyncPayment(ctx, r, payment, cost.TotalCost); err != nil {
			return err
		}

		method := entity.PaymentMethod(req.Method)
		if err := r.Payment.UpdateStatus(ctx, payment.ID, entity.PaymentStatusConfirmed, method); err != nil {
			return apperr.Internal("confirm payment", err)
		}
		payment.Status = entity.PaymentStatusConfirmed
		payment.Method = method

		booking.Status = entity.BookingStatusConfirmed
		booking.UpdatedAt = time.Now()
		if err := r.Booking.UpdateStatus(ctx, booking); err != nil {
			return apperr.Internal("confirm booking", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Payment confirmed",
		zap.String("booking_id", booking.ID.String()),
		zap.String("method", req.Method),
		zap.Float64("total_amount", payment.TotalAmount),
		zap.String("reference_code", payment.ReferenceCode),
	)

	s.publish(ctx, events.RKBookingConfirmed, booking, payment, payment.TotalAmount)

	return response.BookingToResponse(booking, venue, addons, payment), nil
}

func (s *bookingService) CompleteBooking(ctx context.Context, actor Actor, bookingID string) (*response.BookingResponse, error) {
	if !actor.Admin {
		return nil, apperr.Forbidden("admin access required")
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, apperr.Validation("Validation failed", map[string]string{"booking_id": "Must be a valid UUID"})
	}

	var (
		booking *entity.Booking
		payment *entity.Payment
		venue   *entity.Venue
		addons  []*entity.AddOn
	)

	err = s.repo.InTx(ctx, func(r *repository.Repository) error {
		booking, err = r.Booking.FindByIDForUpdate(ctx, id)
		if err != nil {
			return apperr.Internal("load booking", err)
		}
		if booking == nil {
			return apperr.NotFound("booking %s not found", bookingID)
		}
		if booking.Status != entity.BookingStatusConfirmed {
			return apperr.InvalidState(string(booking.Status), "only confirmed bookings can be completed")
		}

		booking.Status = entity.BookingStatusCompleted
		booking.UpdatedAt = time.Now()
		if err := r.Booking.UpdateStatus(ctx, booking); err != nil {
			return apperr.Internal("complete booking", err)
		}

		venue, addons, err = s.loadBookingPricing(ctx, r, booking)
		if err != nil {
			return err
		}

		payment, err = r.Payment.FindByBookingID(ctx, booking.ID)
		if err != nil {
			return apperr.Internal("load payment", err)
		}
		if payment != nil {
			if err := r.Payment.UpdateStatus(ctx, payment.ID, entity.PaymentStatusCompleted, payment.Method); err != nil {
				return apperr.Internal("complete payment", err)
			}
			payment.Status = entity.PaymentStatusCompleted
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking completed", zap.String("booking_id", booking.ID.String()))

	s.publish(ctx, events.RKBookingCompleted, booking, payment, 0)

	return response.BookingToResponse(booking, venue, addons, payment), nil
}

func (s *bookingService) UpdateAddOns(ctx context.Context, actor Actor, bookingID string, req *request.UpdateAddOnsRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validation("Validation failed", errs)
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, apperr.Validation("Validation failed", map[string]string{"booking_id": "Must be a valid UUID"})
	}

	addonIDs, err := parseUUIDSet(req.AddOnIDs)
	if err != nil {
		return nil, apperr.Validation("Validation failed", map[string]string{"addon_ids": "Must be valid UUIDs"})
	}

	var (
		booking *entity.Booking
		payment *entity.Payment
		venue   *entity.Venue
		addons  []*entity.AddOn
	)

	err = s.repo.InTx(ctx, func(r *repository.Repository) error {
		booking, err = r.Booking.FindByIDForUpdate(ctx, id)
		if err != nil {
			return apperr.Internal("load booking", err)
		}
		if booking == nil {
			return apperr.NotFound("booking %s not found", bookingID)
		}
		if !actor.Admin && booking.UserID != actor.ID {
			return apperr.Forbidden("not your booking")
		}
		if booking.Status != entity.BookingStatusPending && booking.Status != entity.BookingStatusActive {
			return apperr.InvalidState(string(booking.Status), "add-ons can only be changed while the booking is pending or active")
		}

		addons, err = s.loadVenueAddOns(ctx, r, booking.VenueID, addonIDs)
		if err != nil {
			return err
		}

		if err := r.BookingAddOn.ReplaceForBooking(ctx, booking.ID, addonIDs); err != nil {
			return apperr.Internal("replace add-ons", err)
		}

		venue, err = r.Venue.FindByID(ctx, booking.VenueID)
		if err != nil {
			return apperr.Internal("load venue", err)
		}
		if venue == nil {
			return apperr.NotFound("venue for booking %s not found", bookingID)
		}

		// Repricing uses current add-on prices, not a creation-time
		// snapshot.
		cost := entity.ComputeCost(booking, venue, addons)

		payment, err = s.ensurePayment(ctx, r, booking.ID, cost.TotalCost)
		if err != nil {
			return err
		}
		return s.resyncPayment(ctx, r, payment, cost.TotalCost)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking add-ons updated",
		zap.String("booking_id", booking.ID.String()),
		zap.Int("addon_count", len(addonIDs)),
		zap.Float64("total_amount", payment.TotalAmount),
	)

	return response.BookingToResponse(booking, venue, addons, payment), nil
}

// ==================== DIRECTORY (READ SIDE) ====================

func (s *bookingService) GetBooking(ctx context.Context, actor Actor, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, apperr.Validation("Validation failed", map[string]string{"booking_id": "Must be a valid UUID"})
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("load booking", err)
	}
	if booking == nil {
		return nil, apperr.NotFound("booking %s not found", bookingID)
	}
	if !actor.Admin && booking.UserID != actor.ID {
		return nil, apperr.Forbidden("not your booking")
	}

	return s.buildBookingResponse(ctx, booking)
}

func (s *bookingService) ListUserBookings(ctx context.Context, actor Actor, statuses []string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	filter, err := parseStatusFilter(statuses)
	if err != nil {
		return nil, err
	}
	if len(filter) == 0 {
		filter = defaultListStatuses
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, actor.ID, filter, page.Limit(), page.Offset())
	if err != nil {
		return nil, apperr.Internal("list bookings", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, actor.ID, filter)
	if err != nil {
		return nil, apperr.Internal("count bookings", err)
	}

	items, err := s.buildBookingResponses(ctx, bookings)
	if err != nil {
		return nil, err
	}

	return response.NewPaginatedResponse(items, page.Page, page.PerPage, total), nil
}

func (s *bookingService) ListPendingBookings(ctx context.Context, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindByStatus(ctx, entity.BookingStatusPending, page.Limit(), page.Offset())
	if err != nil {
		return nil, apperr.Internal("list pending bookings", err)
	}

	total, err := s.repo.Booking.CountByStatus(ctx, entity.BookingStatusPending)
	if err != nil {
		return nil, apperr.Internal("count pending bookings", err)
	}

	items, err := s.buildBookingResponses(ctx, bookings)
	if err != nil {
		return nil, err
	}

	return response.NewPaginatedResponse(items, page.Page, page.PerPage, total), nil
}

// ==================== PAYMENT LEDGER ====================

// createPayment inserts the booking's ledger entry, retrying with fresh
// reference codes on collision.
func (s *bookingService) createPayment(ctx context.Context, r *repository.Repository, bookingID uuid.UUID, totalAmount float64) (*entity.Payment, error) {
	now := time.Now()
	payment := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID:     bookingID,
		Method:        entity.PaymentMethodQRIS,
		Status:        entity.PaymentStatusWaiting,
		TotalAmount:   totalAmount,
		DepositAmount: s.config.Booking.DepositAmount,
	}

	for attempt := 1; attempt <= maxReferenceAttempts; attempt++ {
		payment.ReferenceCode = utils.GenerateReferenceCode()

		err := r.Payment.Create(ctx, payment)
		if err == nil {
			return payment, nil
		}
		if !errors.Is(err, repository.ErrReferenceCodeTaken) {
			return nil, apperr.Internal("create payment", err)
		}

		s.log.Warn("Payment reference code collision, retrying",
			zap.String("booking_id", bookingID.String()),
			zap.Int("attempt", attempt),
		)
	}

	return nil, apperr.Conflict("could not allocate a unique payment reference code")
}

// ensurePayment returns the booking's ledger entry, creating it when the
// row is missing. Idempotent.
func (s *bookingService) ensurePayment(ctx context.Context, r *repository.Repository, bookingID uuid.UUID, totalAmount float64) (*entity.Payment, error) {
	payment, err := r.Payment.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, apperr.Internal("load payment", err)
	}
	if payment != nil {
		return payment, nil
	}
	return s.createPayment(ctx, r, bookingID, totalAmount)
}

// resyncPayment pushes the current total into the ledger entry.
func (s *bookingService) resyncPayment(ctx context.Context, r *repository.Repository, payment *entity.Payment, totalAmount float64) error {
	if payment.TotalAmount == totalAmount {
		return nil
	}
	if err := r.Payment.UpdateAmount(ctx, payment.ID, totalAmount); err != nil {
		return apperr.Internal("resync payment amount", err)
	}
	payment.TotalAmount = totalAmount
	return nil
}

// ==================== HELPER METHODS ====================

// loadVenueAddOns resolves an id set against the catalog and checks every
// add-on belongs to the venue.
func (s *bookingService) loadVenueAddOns(ctx context.Context, r *repository.Repository, venueID uuid.UUID, addonIDs []uuid.UUID) ([]*entity.AddOn, error) {
	if len(addonIDs) == 0 {
		return nil, nil
	}

	addons, err := r.AddOn.FindByIDs(ctx, addonIDs)
	if err != nil {
		return nil, apperr.Internal("load add-ons", err)
	}

	found := make(map[uuid.UUID]*entity.AddOn, len(addons))
	for _, addon := range addons {
		found[addon.ID] = addon
	}

	for _, id := range addonIDs {
		addon, ok := found[id]
		if !ok {
			return nil, apperr.NotFound("add-on %s not found", id.String())
		}
		if addon.VenueID != venueID {
			return nil, apperr.NotFound("add-on %s does not belong to this venue", id.String())
		}
	}

	return addons, nil
}

func (s *bookingService) loadBookingPricing(ctx context.Context, r *repository.Repository, booking *entity.Booking) (*entity.Venue, []*entity.AddOn, error) {
	venue, err := r.Venue.FindByID(ctx, booking.VenueID)
	if err != nil {
		return nil, nil, apperr.Internal("load venue", err)
	}
	if venue == nil {
		return nil, nil, apperr.NotFound("venue for booking %s not found", booking.ID.String())
	}

	addonIDs, err := r.BookingAddOn.FindAddOnIDsByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, nil, apperr.Internal("load booking add-ons", err)
	}

	addons, err := r.AddOn.FindByIDs(ctx, addonIDs)
	if err != nil {
		return nil, nil, apperr.Internal("load add-ons", err)
	}

	return venue, addons, nil
}

func (s *bookingService) buildBookingResponse(ctx context.Context, booking *entity.Booking) (*response.BookingResponse, error) {
	venue, addons, err := s.loadBookingPricing(ctx, s.repo, booking)
	if err != nil {
		return nil, err
	}

	payment, err := s.repo.Payment.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, apperr.Internal("load payment", err)
	}

	return response.BookingToResponse(booking, venue, addons, payment), nil
}

func (s *bookingService) buildBookingResponses(ctx context.Context, bookings []*entity.Booking) ([]response.BookingResponse, error) {
	items := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		item, err := s.buildBookingResponse(ctx, booking)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}

func (s *bookingService) publish(ctx context.Context, key string, booking *entity.Booking, payment *entity.Payment, totalCost float64) {
	event := events.BookingEvent{
		BookingID: booking.ID.String(),
		UserID:    booking.UserID.String(),
		VenueID:   booking.VenueID.String(),
		Status:    string(booking.Status),
		TotalCost: totalCost,
		Start:     booking.StartDatetime.Unix(),
		End:       booking.EndDatetime.Unix(),
	}
	if payment != nil {
		event.ReferenceCode = payment.ReferenceCode
	}
	s.events.Publish(ctx, key, event)
}

func parseUUIDSet(raw []string) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]struct{}, len(raw))
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseStatusFilter(raw []string) ([]entity.BookingStatus, error) {
	valid := map[entity.BookingStatus]bool{
		entity.BookingStatusPending:   true,
		entity.BookingStatusActive:    true,
		entity.BookingStatusConfirmed: true,
		entity.BookingStatusCompleted: true,
		entity.BookingStatusCancelled: true,
	}

	var statuses []entity.BookingStatus
	for _, r := range raw {
		status := entity.BookingStatus(r)
		if !valid[status] {
			return nil, apperr.Validation("Validation failed", map[string]string{"status": "Unknown booking status: " + r})
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
