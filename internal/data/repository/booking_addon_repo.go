package repository

import (
	"context"
	"fmt"

	"venue-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingAddOnRepository manages the booking↔add-on join. The set is stored
// without order or duplicates; ReplaceForBooking swaps the whole set.
type BookingAddOnRepository interface {
	CreateBatch(ctx context.Context, bookingID uuid.UUID, addonIDs []uuid.UUID) error
	FindAddOnIDsByBookingID(ctx context.Context, bookingID uuid.UUID) ([]uuid.UUID, error)
	ReplaceForBooking(ctx context.Context, bookingID uuid.UUID, addonIDs []uuid.UUID) error
}

type bookingAddOnRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewBookingAddOnRepository(db database.Querier, log *zap.Logger) BookingAddOnRepository {
	return &bookingAddOnRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking_addon")),
	}
}

func (r *bookingAddOnRepository) CreateBatch(ctx context.Context, bookingID uuid.UUID, addonIDs []uuid.UUID) error {
	query := `
		INSERT INTO booking_addons (booking_id, addon_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	for _, addonID := range addonIDs {
		if _, err := r.db.Exec(ctx, query, bookingID, addonID); err != nil {
			r.log.Error("Failed to attach add-on to booking",
				zap.Error(err),
				zap.String("booking_id", bookingID.String()),
				zap.String("addon_id", addonID.String()),
			)
			return fmt.Errorf("attach add-on %s to booking %s: %w", addonID.String(), bookingID.String(), err)
		}
	}

	return nil
}

func (r *bookingAddOnRepository) FindAddOnIDsByBookingID(ctx context.Context, bookingID uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT addon_id FROM booking_addons WHERE booking_id = $1`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find booking add-ons",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find add-ons for booking %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan booking add-on row: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *bookingAddOnRepository) ReplaceForBooking(ctx context.Context, bookingID uuid.UUID, addonIDs []uuid.UUID) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM booking_addons WHERE booking_id = $1`, bookingID); err != nil {
		r.log.Error("Failed to clear booking add-ons",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("clear add-ons for booking %s: %w", bookingID.String(), err)
	}

	return r.CreateBatch(ctx, bookingID, addonIDs)
}
