package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrReferenceCodeTaken reports a unique-index collision on the generated
// reference code. Transient: the caller retries with a fresh code.
var ErrReferenceCodeTaken = errors.New("payment reference code already taken")

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error)
	UpdateStatus(ctx context.Context, paymentID uuid.UUID, status entity.PaymentStatus, method entity.PaymentMethod) error
	UpdateAmount(ctx context.Context, paymentID uuid.UUID, totalAmount float64) error
}

type paymentRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewPaymentRepository(db database.Querier, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, booking_id, method, status, total_amount, deposit_amount, reference_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.BookingID,
		payment.Method,
		payment.Status,
		payment.TotalAmount,
		payment.DepositAmount,
		payment.ReferenceCode,
		payment.CreatedAt,
		payment.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "payments_reference_code_key" {
			return ErrReferenceCodeTaken
		}
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("booking_id", payment.BookingID.String()),
		)
		return fmt.Errorf("create payment for booking %s: %w", payment.BookingID.String(), err)
	}

	return nil
}

func (r *paymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	query := `
		SELECT id, booking_id, method, status, total_amount, deposit_amount, reference_code, created_at, updated_at
		FROM payments
		WHERE booking_id = $1
	`

	var payment entity.Payment
	err := r.db.QueryRow(ctx, query, bookingID).Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.Method,
		&payment.Status,
		&payment.TotalAmount,
		&payment.DepositAmount,
		&payment.ReferenceCode,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find payment by booking ID %s: %w", bookingID.String(), err)
	}

	return &payment, nil
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, paymentID uuid.UUID, status entity.PaymentStatus, method entity.PaymentMethod) error {
	query := `
		UPDATE payments
		SET status = $2, method = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, paymentID, status, method, time.Now())
	if err != nil {
		r.log.Error("Failed to update payment status",
			zap.Error(err),
			zap.String("payment_id", paymentID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update payment %s status to %s: %w", paymentID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment %s not found", paymentID.String())
	}

	return nil
}

func (r *paymentRepository) UpdateAmount(ctx context.Context, paymentID uuid.UUID, totalAmount float64) error {
	query := `
		UPDATE payments
		SET total_amount = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, paymentID, totalAmount, time.Now())
	if err != nil {
		r.log.Error("Failed to update payment amount",
			zap.Error(err),
			zap.String("payment_id", paymentID.String()),
			zap.Float64("total_amount", totalAmount),
		)
		return fmt.Errorf("update payment %s amount: %w", paymentID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment %s not found", paymentID.String())
	}

	return nil
}
