package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vietbank/banking-api/internal/db"
	"github.com/vietbank/banking-api/internal/models"
)

// PaymentRepository defines the interface for payment request data access.
// FindByIDForUpdate locks the request row for the lifetime of the
// enclosing transaction so concurrent settlements serialize.
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.PaymentRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.PaymentRequest, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.PaymentRequest, error)
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*models.PaymentRequest, error)
	FindPending(ctx context.Context) ([]*models.PaymentRequest, error)
	List(ctx context.Context) ([]*models.PaymentRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.PaymentStatus, paidAt *time.Time) error
}

// paymentRepository implements PaymentRepository
type paymentRepository struct {
	db db.Queryer
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(q db.Queryer) PaymentRepository {
	return &paymentRepository{db: q}
}

const paymentColumns = `id, account_id, amount, currency, status, description, created_at, paid_at`

func scanPayment(row interface{ Scan(...any) error }) (*models.PaymentRequest, error) {
	var payment models.PaymentRequest
	err := row.Scan(
		&payment.ID,
		&payment.AccountID,
		&payment.Amount,
		&payment.Currency,
		&payment.Status,
		&payment.Description,
		&payment.CreatedAt,
		&payment.PaidAt,
	)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// Create inserts a new payment request row
func (r *paymentRepository) Create(ctx context.Context, payment *models.PaymentRequest) error {
	query := `
		INSERT INTO payment_requests (id, account_id, amount, currency, status, description, created_at, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		payment.ID,
		payment.AccountID,
		payment.Amount,
		payment.Currency,
		payment.Status,
		payment.Description,
		payment.CreatedAt,
		payment.PaidAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create payment request: %w", err)
	}

	return nil
}

// FindByID retrieves a payment request by its UUID
func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.PaymentRequest, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_requests WHERE id = $1`

	payment, err := scanPayment(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("payment request not found: %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find payment request: %w", err)
	}

	return payment, nil
}

// FindByIDForUpdate retrieves a payment request holding an exclusive row lock
func (r *paymentRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.PaymentRequest, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_requests WHERE id = $1 FOR UPDATE`

	payment, err := scanPayment(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("payment request not found: %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock payment request: %w", err)
	}

	return payment, nil
}

// FindByAccount returns the payment requests raised against an account, newest first
func (r *paymentRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*models.PaymentRequest, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_requests WHERE account_id = $1 ORDER BY created_at DESC`
	return r.queryPayments(ctx, query, accountID)
}

// FindPending returns all payment requests still awaiting settlement
func (r *paymentRepository) FindPending(ctx context.Context) ([]*models.PaymentRequest, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_requests WHERE status = 'PENDING' ORDER BY created_at DESC`
	return r.queryPayments(ctx, query)
}

// List returns all payment requests, newest first
func (r *paymentRepository) List(ctx context.Context) ([]*models.PaymentRequest, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_requests ORDER BY created_at DESC`
	return r.queryPayments(ctx, query)
}

// UpdateStatus transitions a payment request and stamps paid_at when given
func (r *paymentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.PaymentStatus, paidAt *time.Time) error {
	query := `UPDATE payment_requests SET status = $2, paid_at = $3 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, status, paidAt)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}

	return requireRowAffected(result, "payment request")
}

func (r *paymentRepository) queryPayments(ctx context.Context, query string, args ...any) ([]*models.PaymentRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment requests: %w", err)
	}
	defer rows.Close()

	var payments []*models.PaymentRequest
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment request: %w", err)
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payment requests: %w", err)
	}

	return payments, nil
}
