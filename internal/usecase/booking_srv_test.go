package usecase

import (
	"context"
	"testing"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"
	"venue-booking/pkg/apperr"
	"venue-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ==================== IN-MEMORY FAKES ====================

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (f *fakeBookingRepo) Create(_ context.Context, b *entity.Booking) error {
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookingRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeBookingRepo) FindByUserID(_ context.Context, userID uuid.UUID, statuses []entity.BookingStatus, limit, offset int) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.UserID != userID {
			continue
		}
		for _, s := range statuses {
			if b.Status == s {
				cp := *b
				out = append(out, &cp)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountByUserID(ctx context.Context, userID uuid.UUID, statuses []entity.BookingStatus) (int64, error) {
	bookings, _ := f.FindByUserID(ctx, userID, statuses, 0, 0)
	return int64(len(bookings)), nil
}

func (f *fakeBookingRepo) FindByStatus(_ context.Context, status entity.BookingStatus, limit, offset int) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.Status == status {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountByStatus(ctx context.Context, status entity.BookingStatus) (int64, error) {
	bookings, _ := f.FindByStatus(ctx, status, 0, 0)
	return int64(len(bookings)), nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, b *entity.Booking) error {
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func (f *fakeBookingRepo) HasOverlap(_ context.Context, venueID uuid.UUID, start, end time.Time) (bool, error) {
	for _, b := range f.bookings {
		if b.VenueID != venueID || b.Status == entity.BookingStatusCancelled {
			continue
		}
		if b.StartDatetime.Before(end) && b.EndDatetime.After(start) {
			return true, nil
		}
	}
	return false, nil
}

type fakeVenueRepo struct {
	venues map[uuid.UUID]*entity.Venue
}

func newFakeVenueRepo() *fakeVenueRepo {
	return &fakeVenueRepo{venues: make(map[uuid.UUID]*entity.Venue)}
}

func (f *fakeVenueRepo) Create(_ context.Context, v *entity.Venue) error {
	f.venues[v.ID] = v
	return nil
}

func (f *fakeVenueRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Venue, error) {
	return f.venues[id], nil
}

func (f *fakeVenueRepo) FindBySlug(_ context.Context, slug string) (*entity.Venue, error) {
	for _, v := range f.venues {
		if v.Slug == slug {
			return v, nil
		}
	}
	return nil, nil
}

func (f *fakeVenueRepo) FindAll(_ context.Context, _ repository.VenueFilter, _, _ int) ([]*entity.Venue, error) {
	return nil, nil
}

func (f *fakeVenueRepo) CountAll(_ context.Context, _ repository.VenueFilter) (int64, error) {
	return 0, nil
}

func (f *fakeVenueRepo) Update(_ context.Context, v *entity.Venue) error {
	f.venues[v.ID] = v
	return nil
}

func (f *fakeVenueRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.venues, id)
	return nil
}

type fakeAddOnRepo struct {
	addons map[uuid.UUID]*entity.AddOn
}

func newFakeAddOnRepo() *fakeAddOnRepo {
	return &fakeAddOnRepo{addons: make(map[uuid.UUID]*entity.AddOn)}
}

func (f *fakeAddOnRepo) Create(_ context.Context, a *entity.AddOn) error {
	f.addons[a.ID] = a
	return nil
}

func (f *fakeAddOnRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.AddOn, error) {
	return f.addons[id], nil
}

func (f *fakeAddOnRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.AddOn, error) {
	var out []*entity.AddOn
	for _, id := range ids {
		if a, ok := f.addons[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAddOnRepo) FindByVenueID(_ context.Context, venueID uuid.UUID) ([]*entity.AddOn, error) {
	var out []*entity.AddOn
	for _, a := range f.addons {
		if a.VenueID == venueID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAddOnRepo) Update(_ context.Context, a *entity.AddOn) error {
	f.addons[a.ID] = a
	return nil
}

func (f *fakeAddOnRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.addons, id)
	return nil
}

type fakePaymentRepo struct {
	payments map[uuid.UUID]*entity.Payment
	// collisions makes the next N Create calls fail with the
	// reference-code unique violation.
	collisions int
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[uuid.UUID]*entity.Payment)}
}

func (f *fakePaymentRepo) Create(_ context.Context, p *entity.Payment) error {
	if f.collisions > 0 {
		f.collisions--
		return repository.ErrReferenceCodeTaken
	}
	cp := *p
	f.payments[p.ID] = &cp
	return nil
}

func (f *fakePaymentRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	for _, p := range f.payments {
		if p.BookingID == bookingID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.PaymentStatus, method entity.PaymentMethod) error {
	p := f.payments[id]
	p.Status = status
	p.Method = method
	return nil
}

func (f *fakePaymentRepo) UpdateAmount(_ context.Context, id uuid.UUID, totalAmount float64) error {
	f.payments[id].TotalAmount = totalAmount
	return nil
}

type fakeBookingAddOnRepo struct {
	links map[uuid.UUID][]uuid.UUID
}

func newFakeBookingAddOnRepo() *fakeBookingAddOnRepo {
	return &fakeBookingAddOnRepo{links: make(map[uuid.UUID][]uuid.UUID)}
}

func (f *fakeBookingAddOnRepo) CreateBatch(_ context.Context, bookingID uuid.UUID, addonIDs []uuid.UUID) error {
	f.links[bookingID] = append(f.links[bookingID], addonIDs...)
	return nil
}

func (f *fakeBookingAddOnRepo) FindAddOnIDsByBookingID(_ context.Context, bookingID uuid.UUID) ([]uuid.UUID, error) {
	return f.links[bookingID], nil
}

func (f *fakeBookingAddOnRepo) ReplaceForBooking(_ context.Context, bookingID uuid.UUID, addonIDs []uuid.UUID) error {
	f.links[bookingID] = addonIDs
	return nil
}

// ==================== TEST HARNESS ====================

type bookingFixture struct {
	svc      BookingService
	bookings *fakeBookingRepo
	venues   *fakeVenueRepo
	addons   *fakeAddOnRepo
	payments *fakePaymentRepo
	links    *fakeBookingAddOnRepo

	venue    *entity.Venue
	addon    *entity.AddOn
	customer Actor
	admin    Actor
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	f := &bookingFixture{
		bookings: newFakeBookingRepo(),
		venues:   newFakeVenueRepo(),
		addons:   newFakeAddOnRepo(),
		payments: newFakePaymentRepo(),
		links:    newFakeBookingAddOnRepo(),
		customer: Actor{ID: uuid.New()},
		admin:    Actor{ID: uuid.New(), Admin: true},
	}

	f.venue = &entity.Venue{
		Base:         entity.Base{ID: uuid.New()},
		Name:         "Futsal Arena",
		Slug:         "futsal-arena",
		PricePerHour: 150000,
	}
	f.venues.venues[f.venue.ID] = f.venue

	f.addon = &entity.AddOn{
		Base:    entity.Base{ID: uuid.New()},
		VenueID: f.venue.ID,
		Name:    "Sound System",
		Price:   25000,
	}
	f.addons.addons[f.addon.ID] = f.addon

	repo := &repository.Repository{
		Booking:      f.bookings,
		Venue:        f.venues,
		AddOn:        f.addons,
		Payment:      f.payments,
		BookingAddOn: f.links,
	}

	config := &utils.Config{
		Booking: utils.BookingConfig{DepositAmount: 10000},
	}

	f.svc = NewBookingService(repo, config, nil, zap.NewNop())
	return f
}

func (f *bookingFixture) createBooking(t *testing.T, start, end time.Time, addonIDs ...string) string {
	t.Helper()

	resp, err := f.svc.CreateBooking(context.Background(), f.customer, &request.CreateBookingRequest{
		VenueID:       f.venue.ID.String(),
		StartDatetime: start.Format(time.RFC3339),
		EndDatetime:   end.Format(time.RFC3339),
		AddOnIDs:      addonIDs,
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	return resp.ID
}

func mustKind(t *testing.T, err error, kind apperr.Kind) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !apperr.IsKind(err, kind) {
		t.Fatalf("expected error kind %v, got %v", kind, err)
	}
}

// ==================== CREATE ====================

func TestCreateBookingComputesCostAndPayment(t *testing.T) {
	f := newBookingFixture(t)
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	resp, err := f.svc.CreateBooking(context.Background(), f.customer, &request.CreateBookingRequest{
		VenueID:       f.venue.ID.String(),
		StartDatetime: start.Format(time.RFC3339),
		EndDatetime:   start.Add(3 * time.Hour).Format(time.RFC3339),
		AddOnIDs:      []string{f.addon.ID.String()},
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	if resp.Status != entity.BookingStatusPending {
		t.Errorf("status = %s, want pending", resp.Status)
	}
	if resp.DurationHours != 3 {
		t.Errorf("duration = %d, want 3", resp.DurationHours)
	}
	// 150000 * 3h + 25000
	if resp.TotalCost != 475000 {
		t.Errorf("total cost = %v, want 475000", resp.TotalCost)
	}
	if resp.Payment == nil {
		t.Fatal("payment not created eagerly")
	}
	if resp.Payment.Status != entity.PaymentStatusWaiting {
		t.Errorf("payment status = %s, want waiting", resp.Payment.Status)
	}
	if resp.Payment.TotalAmount != resp.TotalCost {
		t.Errorf("payment amount %v != booking total %v", resp.Payment.TotalAmount, resp.TotalCost)
	}
	if resp.Payment.DepositAmount != 10000 {
		t.Errorf("deposit = %v, want 10000", resp.Payment.DepositAmount)
	}
	if len(resp.Payment.ReferenceCode) != 12 {
		t.Errorf("reference code %q, want 12 chars", resp.Payment.ReferenceCode)
	}
}

func TestCreateBookingPartialHourTruncates(t *testing.T) {
	f := newBookingFixture(t)
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	id := f.createBooking(t, start, start.Add(90*time.Minute))

	resp, err := f.svc.GetBooking(context.Background(), f.customer, id)
	if err != nil {
		t.Fatalf("GetBooking: %v", err)
	}
	if resp.DurationHours != 1 {
		t.Errorf("90 minutes billed as %d hours, want 1", resp.DurationHours)
	}
	if resp.TotalCost != 150000 {
		t.Errorf("total cost = %v, want 150000", resp.TotalCost)
	}
}

func TestCreateBookingEndNotAfterStart(t *testing.T) {
	f := newBookingFixture(t)
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	_, err := f.svc.CreateBooking(context.Background(), f.customer, &request.CreateBookingRequest{
		VenueID:       f.venue.ID.String(),
		StartDatetime: start.Format(time.RFC3339),
		EndDatetime:   start.Add(-time.Hour).Format(time.RFC3339),
	})
	mustKind(t, err, apperr.KindValidation)

	if len(f.bookings.bookings) != 0 || len(f.payments.payments) != 0 {
		t.Error("rejected booking left rows behind")
	}
}

func TestCreateBookingAdminForbidden(t *testing.T) {
	f := newBookingFixture(t)
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	_, err := f.svc.CreateBooking(context.Background(), f.admin, &request.CreateBookingRequest{
		VenueID:       f.venue.ID.String(),
		StartDatetime: start.Format(time.RFC3339),
		EndDatetime:   start.Add(time.Hour).Format(time.RFC3339),
	})
	mustKind(t, err, apperr.KindForbidden)
}

func TestCreateBookingDuplicateAddonsCountOnce(t *testing.T) {
	f := newBookingFixture(t)
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	id := f.createBooking(t, start, start.Add(time.Hour),
		f.addon.ID.String(), f.addon.ID.String())

	resp, err := f.svc.GetBooking(context.Background(), f.customer, id)
	if err != nil {
		t.Fatalf("GetBooking: %v", err)
	}
	if resp.AddonsTotal != 25000 {
		t.Errorf("addons total = %v, want 25000 (duplicate counted once)", resp.AddonsTotal)
	}
	if len(resp.AddOns) != 1 {
		t.Errorf("addon count = %d, want 1", len(resp.AddOns))
	}
}

func TestCreateBookingUnknownAddonRejected(t *testing.T) {
	f := newBookingFixture(t)
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	_, err := f.svc.CreateBooking(context.Background(), f.customer, &request.CreateBookingRequest{
		VenueID:       f.venue.ID.String(),
		StartDatetime: start.Format(time.RFC3339),
		EndDatetime:   start.Add(time.Hour).Format(time.RFC3339),
		AddOnIDs:      []string{uuid.NewString()},
	})
	mustKind(t, err, apperr.KindNotFound)
}

func TestCreateBookingOverlapGuard(t *testing.T) {
	f := newBookingFixture(t)
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	repo := &repository.Repository{
		Booking:      f.bookings,
		Venue:        f.venues,
		AddOn:        f.addons,
		Payment:      f.payments,
		BookingAddOn: f.links,
	}
	config := &utils.Config{
		Booking: utils.BookingConfig{DepositAmount: 10000, OverlapCheck: true},
	}
	svc := NewBookingService(repo, config, nil, zap.NewNop())

	first := &request.CreateBookingRequest{
		VenueID:       f.venue.ID.String(),
		StartDatetime: start.Format(time.RFC3339),
		EndDatetime:   start.Add(2 * time.Hour).Format(time.RFC3339),
	}
	if _, err := svc.CreateBooking(context.Background(), f.customer, first); err != nil {
		t.Fatalf("first CreateBooking: %v", err)
	}

	second := &request.CreateBookingRequest{
		VenueID:       f.venue.ID.String(),
		StartDatetime: start.Add(time.Hour).Format(time.RFC3339),
		EndDatetime:   start.Add(3 * time.Hour).Format(time.RFC3339),
	}
	_, err := svc.CreateBooking(context.Background(), f.customer, second)
	mustKind(t, err, apperr.KindConflict)
}

func TestCreateBookingReferenceCodeRetry(t *testing.T) {
	f := newBookingFixture(t)
	f.payments.collisions = 2
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	id := f.createBooking(t, start, start.Add(time.Hour))

	resp, err := f.svc.GetBooking(context.Background(), f.customer, id)
	if err != nil {
		t.Fatalf("GetBooking: %v", err)
	}
	if resp.Payment == nil || resp.Payment.ReferenceCode == "" {
		t.Fatal("payment not created after collisions")
	}
}

func TestCreateBookingReferenceCodeExhausted(t *testing.T) {
	f := newBookingFixture(t)
	f.payments.collisions = 3
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	_, err := f.svc.CreateBooking(context.Background(), f.customer, &request.CreateBookingRequest{
		VenueID:       f.venue.ID.String(),
		StartDatetime: start.Format(time.RFC3339),
		EndDatetime:   start.Add(time.Hour).Format(time.RFC3339),
	})
	mustKind(t, err, apperr.KindConflict)
}

// ==================== APPROVE ====================

func TestApproveBooking(t *testing.T) {
	f := newBookingFixture(t)
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	id := f.createBooking(t, start, start.Add(2*time.Hour))

	resp, err := f.svc.ApproveBooking(context.Background(), f.admin, id)
	if err != nil {
		t.Fatalf("ApproveBooking: %v", err)
	}

	if resp.Status != entity.BookingStatusActive {
		t.Errorf("status = %s, want active", resp.Status)
	}
	if resp.ApprovedBy == nil || *resp.ApprovedBy != f.admin.ID.String() {
		t.Error("approved_by not recorded")
	}
	if resp.ApprovedAt == nil {
		t.Error("approved_at not recorded")
	}
	// Approval never confirms the payment
	if resp.Payment.Status != entity.PaymentStatusWaiting {
		t.Errorf("payment status = %s, want waiting after approve", resp.Payment.Status)
	}
}

func TestApproveBookingTwiceFails(t *testing.T) {
	f := newBookingFixture(t)
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	id := f.createBooking(t, start, start.Add(time.Hour))

	if _, err := f.svc.ApproveBooking(context.Background(), f.admin, id); err != nil {
		t.Fatalf("first approve: %v", err)
	}
	_, err := f.svc.ApproveBooking(context.Background(), f.admin, id)
	mustKind(t, err, apperr.KindInvalidState)
}

func TestApproveBookingRequiresAdmin(t *testing.T) {
	f := newBookingFixture(t)
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	id := f.createBooking(t, start, start.Add(time.Hour))

	_, err := f.svc.ApproveBooking(context.Background(), f.customer, id)
	mustKind(t, err, apperr.KindForbidden)
}

// ==================== PAYMENT ====================

func TestConfirmPayment(t *testing.T) {
	f := newBookingFixture(t)
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	id := f.createBooking(t, start, start.Add(2*time.Hour), f.addon.ID.String())

	if _, err := f.svc.ApproveBooking(context.Background(), f.admin, id); err != nil {
		t.Fatalf("approve: %v", err)
	}

	resp, err := f.svc.ConfirmPayment(context.Background(), f.customer, id, &request.ConfirmPaymentRequest{Method: "gopay"})
	if err != nil {
		t.Fatalf("ConfirmPayment: %v", err)
	}

	if resp.Status != entity.BookingStatusConfirmed {
		t.Errorf("status = %s, want confirmed", resp.Status)
	}
	if resp.Payment.Status != entity.PaymentStatusConfirmed {
		t.Errorf("payment status = %s, want confirmed", resp.Payment.Status)
	}
	if resp.Payment.Method != entity.PaymentMethodGoPay {
		t.Errorf("payment method = %s, want gopay", resp.Payment.Method)
	}
	if resp.Payment.TotalAmount != 325000 {
		t.Errorf("payment amount = %v, want 325000", resp.Payment.TotalAmount)
	}
}

func TestConfirmPaymentPendingBlocked(t *testing.T) {
	f := newBookingFixture(t)
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	id := f.createBooking(t, start, start.Add(time.Hour))

	_, err := f.svc.ConfirmPayment(context.Background(), f.customer, id, &request.ConfirmPaymentRequest{Method: "qris"})
	mustKind(t, err, apperr.KindInvalidState)
}

func TestConfirmPaymentAfterCancelBlocked(t *testing.T) {
	f := newBookingFixture(t)
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	id := f.createBooking(t, start, start.Add(time.Hour))

	if _, err := f.svc.CancelBooking(context.Background(), f.customer, id); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	_, err := f.svc.ConfirmPayment(context.Background(), f.customer, id, &request.ConfirmPaymentRequest{Method: "qris"})
	mustKind(t, err, apperr.KindInvalidState)
}

func TestConfirmPaymentNotOwner(t *testing.T) {
	f := newBookingFixture(t)
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	id := f.createBooking(t, start, start.Add(time.Hour))

	stranger := Actor{ID: uuid.New()}
	_, err := f.svc.ConfirmPayment(context.Background(), stranger, id, &request.ConfirmPaymentRequest{Method: "qris"})
	mustKind(t, err, apperr.KindForbidden)
}

func TestConfirmPaymentUsesCurrentPrices(t *testing.T) {
	f := newBookingFixture(t)
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	id := f.createBooking(t, start, start.Add(time.Hour), f.addon.ID.String())

	if _, err := f.svc.ApproveBooking(context.Background(), f.admin, id); err != nil {
		t.Fatalf("approve: %v", err)
	}

	// Catalog reprice between approval and payment
	f.addon.Price = 40000

	resp, err := f.svc.ConfirmPayment(context.Background(), f.customer, id, &request.ConfirmPaymentRequest{Method: "qris"})
	if err != nil {
		t.Fatalf("ConfirmPayment: %v", err)
	}
	// 150000 + 40000, not the 25000 seen at creation
	if resp.Payment.TotalAmount != 190000 {
		t.Errorf("payment amount = %v, want 190000 after reprice", resp.Payment.TotalAmount)
	}
}

// ==================== CANCEL ====================

func TestCancelBookingResetsPaymentAndApproval(t *testing.T) {
	f := newBookingFixture(t)
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	id := f.createBooking(t, start, start.Add(time.Hour))

	if _, err := f.svc.ApproveBooking(context.Background(), f.admin, id); err != nil {
		t.Fatalf("approve: %v", err)
	}

	resp, err := f.svc.CancelBooking(context.Background(), f.customer, id)
	if err != nil {
		t.Fatalf("CancelBooking: %v", err)
	}

	if resp.Status != entity.BookingStatusCancelled {
		t.Errorf("status = %s, want cancelled", resp.Status)
	}
	if resp.ApprovedBy != nil || resp.ApprovedAt != nil {
		t.Error("approval fields not cleared on cancel")
	}
	if resp.Payment == nil {
		t.Fatal("payment deleted on cancel, expected reset")
	}
	if resp.Payment.Status != entity.PaymentStatusWaiting {
		t.Errorf("payment status = %s, want waiting after cancel", resp.Payment.Status)
	}
}

func TestCancelCompletedBookingFails(t *testing.T) {
	f := newBookingFixture(t)
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	id := f.createBooking(t, start, start.Add(time.Hour))

	if _, err := f.svc.ApproveBooking(context.Background(), f.admin, id); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if _, err := f.svc.ConfirmPayment(context.Background(), f.customer, id, &request.ConfirmPaymentRequest{Method: "qris"}); err != nil {
		t.Fatalf("pay: %v", err)
	}
	if _, err := f.svc.CompleteBooking(context.Background(), f.admin, id); err != nil {
		t.Fatalf("complete: %v", err)
	}

	_, err := f.svc.CancelBooking(context.Background(), f.customer, id)
	mustKind(t, err, apperr.KindInvalidState)
}

func TestCancelNotOwnerForbidden(t *testing.T) {
	f := newBookingFixture(t)
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	id := f.createBooking(t, start, start.Add(time.Hour))

	stranger := Actor{ID: uuid.New()}
	_, err := f.svc.CancelBooking(context.Background(), stranger, id)
	mustKind(t, err, apperr.KindForbidden)
}

// ==================== COMPLETE ====================

func TestCompleteBooking(t *testing.T) {
	f := newBookingFixture(t)
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	id := f.createBooking(t, start, start.Add(time.Hour))

	if _, err := f.svc.ApproveBooking(context.Background(), f.admin, id); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if _, err := f.svc.ConfirmPayment(context.Background(), f.customer, id, &request.ConfirmPaymentRequest{Method: "qris"}); err != nil {
		t.Fatalf("pay: %v", err)
	}

	resp, err := f.svc.CompleteBooking(context.Background(), f.admin, id)
	if err != nil {
		t.Fatalf("CompleteBooking: %v", err)
	}
	if resp.Status != entity.BookingStatusCompleted {
		t.Errorf("status = %s, want completed", resp.Status)
	}
	if resp.Payment.Status != entity.PaymentStatusCompleted {
		t.Errorf("payment status = %s, want completed", resp.Payment.Status)
	}
}

func TestCompleteUnconfirmedBookingFails(t *testing.T) {
	f := newBookingFixture(t)
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	id := f.createBooking(t, start, start.Add(time.Hour))

	_, err := f.svc.CompleteBooking(context.Background(), f.admin, id)
	mustKind(t, err, apperr.KindInvalidState)
}

// ==================== ADD-ON MUTATION ====================

func TestUpdateAddOnsResyncsPayment(t *testing.T) {
	f := newBookingFixture(t)
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	id := f.createBooking(t, start, start.Add(2*time.Hour))

	// Add the add-on after creation
	resp, err := f.svc.UpdateAddOns(context.Background(), f.customer, id, &request.UpdateAddOnsRequest{
		AddOnIDs: []string{f.addon.ID.String()},
	})
	if err != nil {
		t.Fatalf("UpdateAddOns: %v", err)
	}
	if resp.TotalCost != 325000 {
		t.Errorf("total = %v, want 325000", resp.TotalCost)
	}
	if resp.Payment.TotalAmount != resp.TotalCost {
		t.Errorf("payment %v out of sync with total %v", resp.Payment.TotalAmount, resp.TotalCost)
	}

	// Remove it again
	resp, err = f.svc.UpdateAddOns(context.Background(), f.customer, id, &request.UpdateAddOnsRequest{})
	if err != nil {
		t.Fatalf("UpdateAddOns (clear): %v", err)
	}
	if resp.TotalCost != 300000 {
		t.Errorf("total = %v, want 300000", resp.TotalCost)
	}
	if resp.Payment.TotalAmount != 300000 {
		t.Errorf("payment amount = %v, want 300000", resp.Payment.TotalAmount)
	}
}

func TestUpdateAddOnsOnConfirmedBookingFails(t *testing.T) {
	f := newBookingFixture(t)
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	id := f.createBooking(t, start, start.Add(time.Hour))

	if _, err := f.svc.ApproveBooking(context.Background(), f.admin, id); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if _, err := f.svc.ConfirmPayment(context.Background(), f.customer, id, &request.ConfirmPaymentRequest{Method: "qris"}); err != nil {
		t.Fatalf("pay: %v", err)
	}

	_, err := f.svc.UpdateAddOns(context.Background(), f.customer, id, &request.UpdateAddOnsRequest{
		AddOnIDs: []string{f.addon.ID.String()},
	})
	mustKind(t, err, apperr.KindInvalidState)
}

// ==================== DIRECTORY ====================

func TestListUserBookingsDefaultFilter(t *testing.T) {
	f := newBookingFixture(t)
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	pendingID := f.createBooking(t, start, start.Add(time.Hour))
	activeID := f.createBooking(t, start.Add(4*time.Hour), start.Add(5*time.Hour))
	if _, err := f.svc.ApproveBooking(context.Background(), f.admin, activeID); err != nil {
		t.Fatalf("approve: %v", err)
	}

	page := &request.PaginatedRequest{Page: 1, PerPage: 10}
	resp, err := f.svc.ListUserBookings(context.Background(), f.customer, nil, page)
	if err != nil {
		t.Fatalf("ListUserBookings: %v", err)
	}

	// Pending bookings are hidden from the default view
	if len(resp.Data) != 1 {
		t.Fatalf("got %d bookings, want 1", len(resp.Data))
	}
	if resp.Data[0].ID == pendingID {
		t.Error("pending booking leaked into default listing")
	}
}

func TestListPendingBookings(t *testing.T) {
	f := newBookingFixture(t)
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	f.createBooking(t, start, start.Add(time.Hour))
	f.createBooking(t, start.Add(2*time.Hour), start.Add(3*time.Hour))

	page := &request.PaginatedRequest{Page: 1, PerPage: 10}
	resp, err := f.svc.ListPendingBookings(context.Background(), page)
	if err != nil {
		t.Fatalf("ListPendingBookings: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Errorf("got %d pending bookings, want 2", len(resp.Data))
	}
	if resp.Pagination.Total != 2 {
		t.Errorf("total = %d, want 2", resp.Pagination.Total)
	}
}

func TestGetBookingOwnerOnly(t *testing.T) {
	f := newBookingFixture(t)
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	id := f.createBooking(t, start, start.Add(time.Hour))

	stranger := Actor{ID: uuid.New()}
	_, err := f.svc.GetBooking(context.Background(), stranger, id)
	mustKind(t, err, apperr.KindForbidden)

	// Admin sees everything
	if _, err := f.svc.GetBooking(context.Background(), f.admin, id); err != nil {
		t.Errorf("admin GetBooking: %v", err)
	}
}
