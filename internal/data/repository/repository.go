package repository

import (
	"context"
	"fmt"

	"venue-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Session      SessionRepository
	Category     CategoryRepository
	Venue        VenueRepository
	AddOn        AddOnRepository
	Booking      BookingRepository
	BookingAddOn BookingAddOnRepository
	Payment      PaymentRepository
	Review       ReviewRepository

	db  database.PgxIface // nil when the repository is transaction-scoped
	log *zap.Logger
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	r := newWithQuerier(db, log)
	r.db = db
	return r
}

func newWithQuerier(q database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(q, log),
		Session:      NewSessionRepository(q, log),
		Category:     NewCategoryRepository(q, log),
		Venue:        NewVenueRepository(q, log),
		AddOn:        NewAddOnRepository(q, log),
		Booking:      NewBookingRepository(q, log),
		BookingAddOn: NewBookingAddOnRepository(q, log),
		Payment:      NewPaymentRepository(q, log),
		Review:       NewReviewRepository(q, log),
		log:          log,
	}
}

// InTx runs fn against a transaction-scoped Repository so booking and
// payment rows move together or not at all. If no pool handle is present
// (already inside a transaction, or a test double) fn runs directly.
func (r *Repository) InTx(ctx context.Context, fn func(r *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	txRepo := newWithQuerier(tx, r.log)
	if err := fn(txRepo); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			r.log.Error("Failed to rollback tx", zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
