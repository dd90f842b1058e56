package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vietbank/banking-api/internal/db"
	"github.com/vietbank/banking-api/internal/models"
)

// TransactionRepository defines the interface for transaction audit records.
// Rows are append-only; there are no update or delete operations.
type TransactionRepository interface {
	Create(ctx context.Context, txn *models.Transaction) error
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*models.Transaction, error)
	List(ctx context.Context) ([]*models.Transaction, error)
	Count(ctx context.Context) (int64, error)
}

// transactionRepository implements TransactionRepository
type transactionRepository struct {
	db db.Queryer
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(q db.Queryer) TransactionRepository {
	return &transactionRepository{db: q}
}

const transactionColumns = `id, account_id, amount, type, status, card_send, card_receipt, created_at`

// Create inserts a new transaction audit row
func (r *transactionRepository) Create(ctx context.Context, txn *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, account_id, amount, type, status, card_send, card_receipt, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		txn.ID,
		txn.AccountID,
		txn.Amount,
		txn.Type,
		txn.Status,
		txn.SendingCardNumber,
		txn.ReceiptCardNumber,
		txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// FindByAccount returns the transactions attributed to an account, newest first
func (r *transactionRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE account_id = $1 ORDER BY created_at DESC`
	return r.queryTransactions(ctx, query, accountID)
}

// List returns all transactions, newest first
func (r *transactionRepository) List(ctx context.Context) ([]*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY created_at DESC`
	return r.queryTransactions(ctx, query)
}

// Count returns the total number of transactions
func (r *transactionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

func (r *transactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]*models.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txns []*models.Transaction
	for rows.Next() {
		var txn models.Transaction
		err := rows.Scan(
			&txn.ID,
			&txn.AccountID,
			&txn.Amount,
			&txn.Type,
			&txn.Status,
			&txn.SendingCardNumber,
			&txn.ReceiptCardNumber,
			&txn.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, &txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return txns, nil
}
