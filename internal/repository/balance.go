package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vietbank/banking-api/internal/db"
	"github.com/vietbank/banking-api/internal/models"
)

// BalanceRepository defines the interface for balance ledger access.
// FindByAccountForUpdate takes a row-level lock and must be called
// inside a transaction; the lock is held until commit or rollback.
type BalanceRepository interface {
	FindByAccount(ctx context.Context, accountID uuid.UUID) (*models.Balance, error)
	FindByAccountForUpdate(ctx context.Context, accountID uuid.UUID) (*models.Balance, error)
	CreateIfAbsent(ctx context.Context, accountID uuid.UUID) error
	AdjustAvailable(ctx context.Context, accountID uuid.UUID, delta decimal.Decimal) error
	Delete(ctx context.Context, accountID uuid.UUID) error
}

// balanceRepository implements BalanceRepository
type balanceRepository struct {
	db db.Queryer
}

// NewBalanceRepository creates a new BalanceRepository
func NewBalanceRepository(q db.Queryer) BalanceRepository {
	return &balanceRepository{db: q}
}

const balanceColumns = `account_id, available_balance, held_balance, created_at, updated_at`

func scanBalance(row interface{ Scan(...any) error }) (*models.Balance, error) {
	var balance models.Balance
	err := row.Scan(
		&balance.AccountID,
		&balance.Available,
		&balance.Held,
		&balance.CreatedAt,
		&balance.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &balance, nil
}

// FindByAccount retrieves the balance row for an account
func (r *balanceRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) (*models.Balance, error) {
	query := `SELECT ` + balanceColumns + ` FROM balances WHERE account_id = $1`

	balance, err := scanBalance(r.db.QueryRowContext(ctx, query, accountID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("balance not found: %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find balance: %w", err)
	}

	return balance, nil
}

// FindByAccountForUpdate retrieves the balance row holding an exclusive row lock
func (r *balanceRepository) FindByAccountForUpdate(ctx context.Context, accountID uuid.UUID) (*models.Balance, error) {
	query := `SELECT ` + balanceColumns + ` FROM balances WHERE account_id = $1 FOR UPDATE`

	balance, err := scanBalance(r.db.QueryRowContext(ctx, query, accountID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("balance not found: %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock balance: %w", err)
	}

	return balance, nil
}

// CreateIfAbsent provisions a zero balance for the account if none exists
func (r *balanceRepository) CreateIfAbsent(ctx context.Context, accountID uuid.UUID) error {
	query := `
		INSERT INTO balances (account_id, available_balance, held_balance, created_at, updated_at)
		VALUES ($1, 0, 0, NOW(), NOW())
		ON CONFLICT (account_id) DO NOTHING
	`

	if _, err := r.db.ExecContext(ctx, query, accountID); err != nil {
		return fmt.Errorf("failed to provision balance: %w", err)
	}

	return nil
}

// AdjustAvailable applies a delta to the available balance of an account
func (r *balanceRepository) AdjustAvailable(ctx context.Context, accountID uuid.UUID, delta decimal.Decimal) error {
	query := `
		UPDATE balances
		SET available_balance = available_balance + $2,
		    updated_at = NOW()
		WHERE account_id = $1
	`

	result, err := r.db.ExecContext(ctx, query, accountID, delta)
	if err != nil {
		return fmt.Errorf("failed to adjust balance: %w", err)
	}

	return requireRowAffected(result, "balance")
}

// Delete removes the balance row for an account. Accounts that never
// issued a DEBIT card have no row, so deleting nothing is not an error.
func (r *balanceRepository) Delete(ctx context.Context, accountID uuid.UUID) error {
	query := `DELETE FROM balances WHERE account_id = $1`

	if _, err := r.db.ExecContext(ctx, query, accountID); err != nil {
		return fmt.Errorf("failed to delete balance: %w", err)
	}

	return nil
}
