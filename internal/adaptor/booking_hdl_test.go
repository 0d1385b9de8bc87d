package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"
	"venue-booking/internal/usecase"
	"venue-booking/pkg/apperr"
	"venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// stubBookingService lets each test pin the behavior of the one method it
// exercises.
type stubBookingService struct {
	createFn  func(ctx context.Context, actor usecase.Actor, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	confirmFn func(ctx context.Context, actor usecase.Actor, bookingID string, req *request.ConfirmPaymentRequest) (*response.BookingResponse, error)
}

func (s *stubBookingService) CreateBooking(ctx context.Context, actor usecase.Actor, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	return s.createFn(ctx, actor, req)
}

func (s *stubBookingService) ApproveBooking(context.Context, usecase.Actor, string) (*response.BookingResponse, error) {
	return nil, nil
}

func (s *stubBookingService) CancelBooking(context.Context, usecase.Actor, string) (*response.BookingResponse, error) {
	return nil, nil
}

func (s *stubBookingService) ConfirmPayment(ctx context.Context, actor usecase.Actor, bookingID string, req *request.ConfirmPaymentRequest) (*response.BookingResponse, error) {
	return s.confirmFn(ctx, actor, bookingID, req)
}

func (s *stubBookingService) CompleteBooking(context.Context, usecase.Actor, string) (*response.BookingResponse, error) {
	return nil, nil
}

func (s *stubBookingService) UpdateAddOns(context.Context, usecase.Actor, string, *request.UpdateAddOnsRequest) (*response.BookingResponse, error) {
	return nil, nil
}

func (s *stubBookingService) GetBooking(context.Context, usecase.Actor, string) (*response.BookingResponse, error) {
	return nil, nil
}

func (s *stubBookingService) ListUserBookings(context.Context, usecase.Actor, []string, *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	return nil, nil
}

func (s *stubBookingService) ListPendingBookings(context.Context, *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	return nil, nil
}

func authedRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := utils.SetUserContext(req.Context(), uuid.New(), "customer")
	return req.WithContext(ctx)
}

func TestCreateBookingRequiresAuth(t *testing.T) {
	h := NewBookingHandler(&stubBookingService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.CreateBooking(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestCreateBookingBadJSON(t *testing.T) {
	h := NewBookingHandler(&stubBookingService{}, zap.NewNop())

	rec := httptest.NewRecorder()
	h.CreateBooking(rec, authedRequest(http.MethodPost, "/api/bookings", `{not json`))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCreateBookingMapsServiceErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", apperr.Validation("Validation failed", map[string]string{"end_datetime": "must be after start"}), http.StatusBadRequest},
		{"venue missing", apperr.NotFound("venue not found"), http.StatusNotFound},
		{"admin booking", apperr.Forbidden("administrators may not create bookings"), http.StatusForbidden},
		{"slot taken", apperr.Conflict("time slot already booked"), http.StatusConflict},
		{"db down", apperr.Internal("create booking", context.DeadlineExceeded), http.StatusInternalServerError},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			svc := &stubBookingService{
				createFn: func(context.Context, usecase.Actor, *request.CreateBookingRequest) (*response.BookingResponse, error) {
					return nil, c.err
				},
			}
			h := NewBookingHandler(svc, zap.NewNop())

			rec := httptest.NewRecorder()
			h.CreateBooking(rec, authedRequest(http.MethodPost, "/api/bookings", `{}`))

			if rec.Code != c.status {
				t.Errorf("status = %d, want %d", rec.Code, c.status)
			}

			var body utils.Response
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Status {
				t.Error("error response has status true")
			}
		})
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	svc := &stubBookingService{
		createFn: func(_ context.Context, actor usecase.Actor, _ *request.CreateBookingRequest) (*response.BookingResponse, error) {
			return &response.BookingResponse{ID: uuid.NewString(), UserID: actor.ID.String()}, nil
		},
	}
	h := NewBookingHandler(svc, zap.NewNop())

	rec := httptest.NewRecorder()
	h.CreateBooking(rec, authedRequest(http.MethodPost, "/api/bookings", `{"venue_id":"x"}`))

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
}

func TestConfirmPaymentPassesPathID(t *testing.T) {
	var gotID string
	svc := &stubBookingService{
		confirmFn: func(_ context.Context, _ usecase.Actor, bookingID string, _ *request.ConfirmPaymentRequest) (*response.BookingResponse, error) {
			gotID = bookingID
			return &response.BookingResponse{ID: bookingID}, nil
		},
	}
	h := NewBookingHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Post("/api/bookings/{id}/pay", h.ConfirmPayment)

	id := uuid.NewString()
	req := authedRequest(http.MethodPost, "/api/bookings/"+id+"/pay", `{"method":"qris"}`)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if gotID != id {
		t.Errorf("service got booking id %q, want %q", gotID, id)
	}
}
