package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/vietbank/banking-api/internal/db"
	"github.com/vietbank/banking-api/internal/models"
	"github.com/vietbank/banking-api/internal/repository"
)

// AccountService handles account profile and lifecycle operations
type AccountService struct {
	db *db.DB
}

// NewAccountService creates a new AccountService
func NewAccountService(database *db.DB) *AccountService {
	return &AccountService{db: database}
}

// GetProfile returns the account record for the given id
func (s *AccountService) GetProfile(ctx context.Context, accountID uuid.UUID) (*models.Account, error) {
	account, err := repository.NewAccountRepository(s.db).FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &ServiceError{
				Code:    ErrCodeAccountNotFound,
				Message: "account not found",
			}
		}
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to load account: %v", err),
		}
	}
	return account, nil
}

// GetBalance returns the account's balance. Accounts without a DEBIT
// card have no balance row yet.
func (s *AccountService) GetBalance(ctx context.Context, accountID uuid.UUID) (*models.Balance, error) {
	balance, err := repository.NewBalanceRepository(s.db).FindByAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &ServiceError{
				Code:    ErrCodeBalanceNotFound,
				Message: "account has no balance",
			}
		}
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to load balance: %v", err),
		}
	}
	return balance, nil
}

// UpdateContact changes an account's contact details. Empty fields are
// left unchanged; email and phone number must stay unique.
func (s *AccountService) UpdateContact(ctx context.Context, accountID uuid.UUID, fullName, email, phoneNumber string) (*models.Account, error) {
	accountRepo := repository.NewAccountRepository(s.db)

	account, err := accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeAccountNotFound,
			Message: "account not found",
		}
	}

	if fullName = strings.TrimSpace(fullName); fullName != "" {
		account.CustomerName = fullName
	}
	if email = strings.TrimSpace(email); email != "" {
		account.Email = strings.ToLower(email)
	}
	if phoneNumber = strings.TrimSpace(phoneNumber); phoneNumber != "" {
		account.PhoneNumber = phoneNumber
	}

	if err := accountRepo.UpdateContact(ctx, account); err != nil {
		switch {
		case errors.Is(err, models.ErrDuplicateEmail):
			return nil, &ServiceError{
				Code:    ErrCodeEmailTaken,
				Message: "email already in use",
			}
		case errors.Is(err, models.ErrDuplicatePhone):
			return nil, &ServiceError{
				Code:    ErrCodePhoneTaken,
				Message: "phone number already in use",
			}
		default:
			return nil, &ServiceError{
				Code:    ErrCodeInternalError,
				Message: fmt.Sprintf("failed to update account: %v", err),
			}
		}
	}

	return account, nil
}

// DeleteAccount closes an account. Closure is only allowed once every
// card has been removed and any remaining balance is zero.
func (s *AccountService) DeleteAccount(ctx context.Context, accountID uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to start transaction: %v", err),
		}
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	txAccountRepo := repository.NewAccountRepository(tx)
	txCardRepo := repository.NewCardRepository(tx)
	txBalanceRepo := repository.NewBalanceRepository(tx)

	if err := performDeleteAccount(ctx, txAccountRepo, txCardRepo, txBalanceRepo, accountID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to commit transaction: %v", err),
		}
	}

	return nil
}

// performDeleteAccount contains the core account closure business logic.
// Shared with the admin service.
func performDeleteAccount(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	cardRepo repository.CardRepository,
	balanceRepo repository.BalanceRepository,
	accountID uuid.UUID,
) error {
	if _, err := accountRepo.FindByID(ctx, accountID); err != nil {
		return &ServiceError{
			Code:    ErrCodeAccountNotFound,
			Message: "account not found",
		}
	}

	cardCount, err := cardRepo.CountByAccount(ctx, accountID)
	if err != nil {
		return &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to count cards: %v", err),
		}
	}
	if cardCount > 0 {
		return &ServiceError{
			Code:    ErrCodeAccountHasCards,
			Message: "account still has cards",
		}
	}

	balance, err := balanceRepo.FindByAccount(ctx, accountID)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to load balance: %v", err),
		}
	}
	if balance != nil && !balance.IsZero() {
		return &ServiceError{
			Code:    ErrCodeBalanceNotZero,
			Message: "account balance must be zero",
		}
	}

	// The zeroed balance row goes first, it still references the account.
	if balance != nil {
		if err := balanceRepo.Delete(ctx, accountID); err != nil {
			return &ServiceError{
				Code:    ErrCodeInternalError,
				Message: fmt.Sprintf("failed to delete balance: %v", err),
			}
		}
	}

	if err := accountRepo.Delete(ctx, accountID); err != nil {
		return &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to delete account: %v", err),
		}
	}

	return nil
}

// ListTransactions returns the transfer history involving any of the
// account's cards, newest first.
func (s *AccountService) ListTransactions(ctx context.Context, accountID uuid.UUID) ([]*models.Transaction, error) {
	transactions, err := repository.NewTransactionRepository(s.db).FindByAccount(ctx, accountID)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to list transactions: %v", err),
		}
	}
	return transactions, nil
}
