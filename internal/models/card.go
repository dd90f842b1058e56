package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CardType represents the kind of card issued to an account
type CardType string

const (
	CardTypeDebit  CardType = "DEBIT"
	CardTypeCredit CardType = "CREDIT"
)

// CardStatus represents the lifecycle state of a card
type CardStatus string

const (
	CardStatusActive   CardStatus = "ACTIVE"
	CardStatusInactive CardStatus = "INACTIVE"
	CardStatusExpired  CardStatus = "EXPIRED"
)

// CardNumberLength is the fixed length of generated card numbers
const CardNumberLength = 12

// Card belongs to exactly one account. CreditLimit is set only for
// CREDIT cards; it stays nil for DEBIT.
type Card struct {
	CreatedAt   time.Time        `db:"created_at"`
	ExpiryDate  time.Time        `db:"expiry_date"`
	CreditLimit *decimal.Decimal `db:"credit_limit"`
	CardNumber  string           `db:"card_number"`
	Type        CardType         `db:"card_type"`
	Status      CardStatus       `db:"status"`
	ID          uuid.UUID        `db:"id"`
	AccountID   uuid.UUID        `db:"account_id"`
}

// ValidCardType reports whether t is a known card type
func ValidCardType(t CardType) bool {
	return t == CardTypeDebit || t == CardTypeCredit
}

// ValidCardStatus reports whether s is a known card status
func ValidCardStatus(s CardStatus) bool {
	return s == CardStatusActive || s == CardStatusInactive || s == CardStatusExpired
}
