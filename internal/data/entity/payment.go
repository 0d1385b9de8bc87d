package entity

import (
	"github.com/google/uuid"
)

type PaymentMethod string

const (
	PaymentMethodQRIS  PaymentMethod = "qris"
	PaymentMethodGoPay PaymentMethod = "gopay"
)

type PaymentStatus string

const (
	PaymentStatusWaiting   PaymentStatus = "waiting"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	PaymentStatusCompleted PaymentStatus = "completed"
)

// Payment is the single ledger entry owned by a booking. Its TotalAmount
// mirrors the booking's total cost and is resynced on every cost-affecting
// mutation while the booking is non-terminal.
type Payment struct {
	Base
	BookingID     uuid.UUID     `db:"booking_id"`
	Method        PaymentMethod `db:"method"`
	Status        PaymentStatus `db:"status"`
	TotalAmount   float64       `db:"total_amount"`
	DepositAmount float64       `db:"deposit_amount"`
	ReferenceCode string        `db:"reference_code"`
}
