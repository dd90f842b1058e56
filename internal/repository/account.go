// Package repository provides data access layer implementations for the banking API.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/vietbank/banking-api/internal/db"
	"github.com/vietbank/banking-api/internal/models"
)

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	UpdateContact(ctx context.Context, account *models.Account) error
	UpdateRole(ctx context.Context, id uuid.UUID, role models.Role) error
	UpdateLevel(ctx context.Context, id uuid.UUID, level models.Level) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]*models.Account, error)
	SearchByEmail(ctx context.Context, fragment string) ([]*models.Account, error)
	SearchByName(ctx context.Context, fragment string) ([]*models.Account, error)
}

// accountRepository implements AccountRepository
type accountRepository struct {
	db db.Queryer
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(q db.Queryer) AccountRepository {
	return &accountRepository{db: q}
}

const accountColumns = `id, customer_name, email, password_hash, role, phone_number, level, created_at, updated_at`

func scanAccount(row interface{ Scan(...any) error }) (*models.Account, error) {
	var account models.Account
	err := row.Scan(
		&account.ID,
		&account.CustomerName,
		&account.Email,
		&account.PasswordHash,
		&account.Role,
		&account.PhoneNumber,
		&account.Level,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Create inserts a new account row
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (id, customer_name, email, password_hash, role, phone_number, level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		account.ID,
		account.CustomerName,
		account.Email,
		account.PasswordHash,
		account.Role,
		account.PhoneNumber,
		account.Level,
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		if dup := mapUniqueViolation(err); dup != nil {
			return dup
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// FindByID retrieves an account by its UUID
func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("account not found: %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account by id: %w", err)
	}

	return account, nil
}

// FindByEmail retrieves an account by its unique email address
func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("account not found: %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account by email: %w", err)
	}

	return account, nil
}

// ExistsByEmail reports whether any account uses the given email
func (r *accountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM accounts WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return exists, nil
}

// ExistsByPhone reports whether any account uses the given phone number
func (r *accountRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM accounts WHERE phone_number = $1)`, phone).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check phone existence: %w", err)
	}
	return exists, nil
}

// UpdateContact changes the name, email and phone number of an account
func (r *accountRepository) UpdateContact(ctx context.Context, account *models.Account) error {
	query := `
		UPDATE accounts
		SET customer_name = $2, email = $3, phone_number = $4, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, account.ID, account.CustomerName, account.Email, account.PhoneNumber)
	if err != nil {
		if dup := mapUniqueViolation(err); dup != nil {
			return dup
		}
		return fmt.Errorf("failed to update account contact: %w", err)
	}

	return requireRowAffected(result, "account")
}

// UpdateRole changes the role of an account
func (r *accountRepository) UpdateRole(ctx context.Context, id uuid.UUID, role models.Role) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET role = $2, updated_at = NOW() WHERE id = $1`, id, role)
	if err != nil {
		return fmt.Errorf("failed to update account role: %w", err)
	}
	return requireRowAffected(result, "account")
}

// UpdateLevel changes the tier of an account
func (r *accountRepository) UpdateLevel(ctx context.Context, id uuid.UUID, level models.Level) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET level = $2, updated_at = NOW() WHERE id = $1`, id, level)
	if err != nil {
		return fmt.Errorf("failed to update account level: %w", err)
	}
	return requireRowAffected(result, "account")
}

// Delete removes an account row
func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return requireRowAffected(result, "account")
}

// Count returns the total number of accounts
func (r *accountRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return count, nil
}

// List returns all accounts ordered by creation time
func (r *accountRepository) List(ctx context.Context) ([]*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY created_at`
	return r.queryAccounts(ctx, query)
}

// SearchByEmail returns accounts whose email contains the fragment, case-insensitively
func (r *accountRepository) SearchByEmail(ctx context.Context, fragment string) ([]*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email ILIKE '%' || $1 || '%' ORDER BY created_at`
	return r.queryAccounts(ctx, query, fragment)
}

// SearchByName returns accounts whose customer name contains the fragment, case-insensitively
func (r *accountRepository) SearchByName(ctx context.Context, fragment string) ([]*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE customer_name ILIKE '%' || $1 || '%' ORDER BY created_at`
	return r.queryAccounts(ctx, query, fragment)
}

func (r *accountRepository) queryAccounts(ctx context.Context, query string, args ...any) ([]*models.Account, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*models.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	return accounts, nil
}

// mapUniqueViolation translates postgres unique-constraint failures into
// the domain sentinels callers match on.
func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != "23505" {
		return nil
	}
	switch pqErr.Constraint {
	case "accounts_email_key":
		return models.ErrDuplicateEmail
	case "accounts_phone_number_key":
		return models.ErrDuplicatePhone
	case "cards_card_number_key":
		return models.ErrDuplicateCardNumber
	}
	return nil
}

func requireRowAffected(result sql.Result, entity string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s not found: %w", entity, models.ErrNotFound)
	}
	return nil
}
