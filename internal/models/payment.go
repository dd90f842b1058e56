package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is assumed when a payment request carries no currency
const DefaultCurrency = "VND"

// PaymentStatus represents the lifecycle state of a payment request.
// PENDING is the only non-terminal state; no transition out of PAID,
// FAILED or CANCELLED is permitted.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusPaid      PaymentStatus = "PAID"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
)

// Terminal reports whether s permits no further transitions
func (s PaymentStatus) Terminal() bool {
	return s == PaymentStatusPaid || s == PaymentStatusFailed || s == PaymentStatusCancelled
}

// PaymentRequest is a requested payment raised against an account,
// either by an admin or through a customer-initiated charge flow.
// PaidAt is set only when the request reaches PAID.
type PaymentRequest struct {
	CreatedAt   time.Time       `db:"created_at"`
	PaidAt      *time.Time      `db:"paid_at"`
	Amount      decimal.Decimal `db:"amount"`
	Currency    string          `db:"currency"`
	Status      PaymentStatus   `db:"status"`
	Description string          `db:"description"`
	ID          uuid.UUID       `db:"id"`
	AccountID   uuid.UUID       `db:"account_id"`
}
