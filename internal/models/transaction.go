package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeTransfer TransactionType = "TRANSFER"
)

// TransactionStatus represents the outcome recorded for a transaction
type TransactionStatus string

const (
	TransactionStatusSuccess TransactionStatus = "SUCCESS"
)

// Transaction is the immutable audit record of a completed transfer,
// attributed to the sending account. Rows are never updated or deleted.
type Transaction struct {
	CreatedAt         time.Time         `db:"created_at"`
	Amount            decimal.Decimal   `db:"amount"`
	Type              TransactionType   `db:"type"`
	Status            TransactionStatus `db:"status"`
	SendingCardNumber string            `db:"card_send"`
	ReceiptCardNumber string            `db:"card_receipt"`
	ID                uuid.UUID         `db:"id"`
	AccountID         uuid.UUID         `db:"account_id"`
}

// IdempotencyKey tracks processed requests to prevent duplicate transactions
type IdempotencyKey struct {
	CreatedAt      time.Time `db:"created_at"`
	Key            string    `db:"key"`
	RequestPath    string    `db:"request_path"`
	ResponseBody   string    `db:"response_body"`
	ResponseStatus int       `db:"response_status"`
}
