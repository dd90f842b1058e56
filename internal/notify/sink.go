// Package notify delivers settlement events and customer notifications.
// Everything here is best-effort: a failure is logged and never surfaced
// to the financial operation that triggered it.
package notify

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Outcome marks what happened to a payment request
type Outcome string

const (
	OutcomeCreated Outcome = "CREATED"
	OutcomePaid    Outcome = "PAID"
	OutcomeFailed  Outcome = "FAILED"
)

// PaymentEvent is the settlement event delivered to the sink
type PaymentEvent struct {
	PaymentID uuid.UUID       `json:"payment_id"`
	AccountID uuid.UUID       `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Outcome   Outcome         `json:"outcome"`
	Reason    string          `json:"reason,omitempty"`
}

// Sink consumes settlement events. Delivery is best-effort; callers
// must not treat a publish error as a failure of the financial operation.
type Sink interface {
	Publish(ctx context.Context, event PaymentEvent) error
	Close() error
}
