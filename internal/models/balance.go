package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Balance holds the funds of one account. The row is keyed by the
// account id and is created lazily: on the first DEBIT card issued for
// the account or on the first admin deposit. Available and Held are
// never null once the row exists.
type Balance struct {
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
	Available decimal.Decimal `db:"available_balance"`
	Held      decimal.Decimal `db:"held_balance"`
	AccountID uuid.UUID       `db:"account_id"`
}

// IsZero reports whether both the available and held funds are exactly zero
func (b *Balance) IsZero() bool {
	return b.Available.IsZero() && b.Held.IsZero()
}
