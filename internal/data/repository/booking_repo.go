package repository

import (
	"context"
	"fmt"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	// FindByIDForUpdate locks the booking row for the remainder of the
	// surrounding transaction so concurrent transitions serialize.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, statuses []entity.BookingStatus, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID, statuses []entity.BookingStatus) (int64, error)
	FindByStatus(ctx context.Context, status entity.BookingStatus, limit, offset int) ([]*entity.Booking, error)
	CountByStatus(ctx context.Context, status entity.BookingStatus) (int64, error)
	UpdateStatus(ctx context.Context, booking *entity.Booking) error
	HasOverlap(ctx context.Context, venueID uuid.UUID, start, end time.Time) (bool, error)
}

type bookingRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewBookingRepository(db database.Querier, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, user_id, venue_id, start_datetime, end_datetime, notes, status, approved_by, approved_at, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.VenueID,
		&booking.StartDatetime,
		&booking.EndDatetime,
		&booking.Notes,
		&booking.Status,
		&booking.ApprovedBy,
		&booking.ApprovedAt,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, user_id, venue_id, start_datetime, end_datetime, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.VenueID,
		booking.StartDatetime,
		booking.EndDatetime,
		booking.Notes,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", booking.UserID.String()),
			zap.String("venue_id", booking.VenueID.String()),
		)
		return fmt.Errorf("create booking: %w", err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to lock booking row",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("lock booking %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, statuses []entity.BookingStatus, limit, offset int) ([]*entity.Booking, error) {
	// Most-recent-first for a user's own history.
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1 AND status = ANY($2)
		ORDER BY start_datetime DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, userID, statusStrings(statuses), limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID, statuses []entity.BookingStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_id = $1 AND status = ANY($2)`

	var count int64
	if err := r.db.QueryRow(ctx, query, userID, statusStrings(statuses)).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) FindByStatus(ctx context.Context, status entity.BookingStatus, limit, offset int) ([]*entity.Booking, error) {
	// Earliest-first: the admin approval queue works oldest slot first.
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE status = $1
		ORDER BY start_datetime ASC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("find bookings by status %s: %w", string(status), err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) CountByStatus(ctx context.Context, status entity.BookingStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE status = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, status).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings by status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return 0, fmt.Errorf("count bookings by status %s: %w", string(status), err)
	}

	return count, nil
}

// UpdateStatus persists a state transition together with the approval
// metadata that transition carries.
func (r *bookingRepository) UpdateStatus(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET status = $2, approved_by = $3, approved_at = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Status,
		booking.ApprovedBy,
		booking.ApprovedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("status", string(booking.Status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", booking.ID.String(), string(booking.Status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", booking.ID.String())
	}

	return nil
}

func (r *bookingRepository) HasOverlap(ctx context.Context, venueID uuid.UUID, start, end time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE venue_id = $1
			  AND status <> 'cancelled'
			  AND start_datetime < $3
			  AND end_datetime > $2
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, venueID, start, end).Scan(&exists); err != nil {
		r.log.Error("Failed to check booking overlap",
			zap.Error(err),
			zap.String("venue_id", venueID.String()),
		)
		return false, fmt.Errorf("check overlap for venue %s: %w", venueID.String(), err)
	}

	return exists, nil
}

func collectBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}

func statusStrings(statuses []entity.BookingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
