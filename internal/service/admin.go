package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vietbank/banking-api/internal/db"
	"github.com/vietbank/banking-api/internal/models"
	"github.com/vietbank/banking-api/internal/repository"
	"github.com/vietbank/banking-api/internal/security"
)

// AdminService handles back-office operations
type AdminService struct {
	db     *db.DB
	logger *slog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(database *db.DB, logger *slog.Logger) *AdminService {
	return &AdminService{
		db:     database,
		logger: logger,
	}
}

// Stats summarizes the size of the system for the admin dashboard
type Stats struct {
	AccountCount     int64 `json:"account_count"`
	CardCount        int64 `json:"card_count"`
	TransactionCount int64 `json:"transaction_count"`
}

// GetStats returns system-wide counts
func (s *AdminService) GetStats(ctx context.Context) (*Stats, error) {
	accounts, err := repository.NewAccountRepository(s.db).Count(ctx)
	if err != nil {
		return nil, statsError(err)
	}
	cards, err := repository.NewCardRepository(s.db).Count(ctx)
	if err != nil {
		return nil, statsError(err)
	}
	transactions, err := repository.NewTransactionRepository(s.db).Count(ctx)
	if err != nil {
		return nil, statsError(err)
	}

	return &Stats{
		AccountCount:     accounts,
		CardCount:        cards,
		TransactionCount: transactions,
	}, nil
}

func statsError(err error) error {
	return &ServiceError{
		Code:    ErrCodeInternalError,
		Message: fmt.Sprintf("failed to collect stats: %v", err),
	}
}

// ListAccounts returns all accounts
func (s *AdminService) ListAccounts(ctx context.Context) ([]*models.Account, error) {
	accounts, err := repository.NewAccountRepository(s.db).List(ctx)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to list accounts: %v", err),
		}
	}
	return accounts, nil
}

// SearchAccounts finds accounts by email or name substring
func (s *AdminService) SearchAccounts(ctx context.Context, email, name string) ([]*models.Account, error) {
	accountRepo := repository.NewAccountRepository(s.db)

	var (
		accounts []*models.Account
		err      error
	)
	switch {
	case email != "":
		accounts, err = accountRepo.SearchByEmail(ctx, email)
	case name != "":
		accounts, err = accountRepo.SearchByName(ctx, name)
	default:
		accounts, err = accountRepo.List(ctx)
	}
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to search accounts: %v", err),
		}
	}
	return accounts, nil
}

// CreateUser registers an account on behalf of an operator, with an
// explicit role.
func (s *AdminService) CreateUser(ctx context.Context, fullName, email, phoneNumber, password string, role models.Role) (*models.Account, error) {
	if !models.ValidRole(role) {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidRole,
			Message: fmt.Sprintf("invalid role: %s", role),
		}
	}

	fullName = strings.TrimSpace(fullName)
	email = strings.ToLower(strings.TrimSpace(email))
	phoneNumber = strings.TrimSpace(phoneNumber)
	if fullName == "" || email == "" || phoneNumber == "" || password == "" {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidCredentials,
			Message: "full name, email, phone number and password are required",
		}
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to hash password: %v", err),
		}
	}

	account := &models.Account{
		ID:           uuid.New(),
		CustomerName: fullName,
		Email:        email,
		PhoneNumber:  phoneNumber,
		PasswordHash: hash,
		Role:         role,
		Level:        models.LevelSilver,
	}

	if err := repository.NewAccountRepository(s.db).Create(ctx, account); err != nil {
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
				Message: fmt.Sprintf("failed to create account: %v", err),
			}
		}
	}

	return account, nil
}

// DeleteAccount closes any account, subject to the same guards as
// customer self-closure.
func (s *AdminService) DeleteAccount(ctx context.Context, accountID uuid.UUID) error {
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

// UpdateRole changes an account's role
func (s *AdminService) UpdateRole(ctx context.Context, accountID uuid.UUID, role models.Role) error {
	if !models.ValidRole(role) {
		return &ServiceError{
			Code:    ErrCodeInvalidRole,
			Message: fmt.Sprintf("invalid role: %s", role),
		}
	}

	if err := repository.NewAccountRepository(s.db).UpdateRole(ctx, accountID, role); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return &ServiceError{
				Code:    ErrCodeAccountNotFound,
				Message: "account not found",
			}
		}
		return &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to update role: %v", err),
		}
	}
	return nil
}

// UpdateLevel changes an account's tier. The new tier only affects
// cards issued afterwards; existing credit limits are not revised.
func (s *AdminService) UpdateLevel(ctx context.Context, accountID uuid.UUID, level models.Level) error {
	if !models.ValidLevel(level) {
		return &ServiceError{
			Code:    ErrCodeInvalidLevel,
			Message: fmt.Sprintf("invalid level: %s", level),
		}
	}

	if err := repository.NewAccountRepository(s.db).UpdateLevel(ctx, accountID, level); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return &ServiceError{
				Code:    ErrCodeAccountNotFound,
				Message: "account not found",
			}
		}
		return &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to update level: %v", err),
		}
	}
	return nil
}

// ListAccountCards returns all cards of a given account
func (s *AdminService) ListAccountCards(ctx context.Context, accountID uuid.UUID) ([]*models.Card, error) {
	if _, err := repository.NewAccountRepository(s.db).FindByID(ctx, accountID); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeAccountNotFound,
			Message: "account not found",
		}
	}

	cards, err := repository.NewCardRepository(s.db).FindByAccount(ctx, accountID)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to list cards: %v", err),
		}
	}
	return cards, nil
}

// ListAccountTransactions returns the transfer history of a given account
func (s *AdminService) ListAccountTransactions(ctx context.Context, accountID uuid.UUID) ([]*models.Transaction, error) {
	if _, err := repository.NewAccountRepository(s.db).FindByID(ctx, accountID); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeAccountNotFound,
			Message: "account not found",
		}
	}

	transactions, err := repository.NewTransactionRepository(s.db).FindByAccount(ctx, accountID)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to list transactions: %v", err),
		}
	}
	return transactions, nil
}

// UpdateCardStatus changes a card's status
func (s *AdminService) UpdateCardStatus(ctx context.Context, cardID uuid.UUID, status models.CardStatus) error {
	if !models.ValidCardStatus(status) {
		return &ServiceError{
			Code:    ErrCodeInvalidCardStatus,
			Message: fmt.Sprintf("invalid card status: %s", status),
		}
	}

	if err := repository.NewCardRepository(s.db).UpdateStatus(ctx, cardID, status); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return &ServiceError{
				Code:    ErrCodeCardNotFound,
				Message: "card not found",
			}
		}
		return &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to update card status: %v", err),
		}
	}
	return nil
}

// Deposit credits funds to the account behind a DEBIT card. CREDIT
// cards have no stored balance and cannot receive deposits.
func (s *AdminService) Deposit(ctx context.Context, cardID uuid.UUID, amount decimal.Decimal) (*models.Balance, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidAmount,
			Message: err.Error(),
		}
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to start transaction: %v", err),
		}
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	txCardRepo := repository.NewCardRepository(tx)
	txBalanceRepo := repository.NewBalanceRepository(tx)

	balance, err := s.performDeposit(ctx, txCardRepo, txBalanceRepo, cardID, amount)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to commit transaction: %v", err),
		}
	}

	s.logger.Info("deposit completed",
		"card_id", cardID,
		"account_id", balance.AccountID,
		"amount", amount.String(),
	)

	return balance, nil
}

// performDeposit contains the core deposit business logic
func (s *AdminService) performDeposit(
	ctx context.Context,
	cardRepo repository.CardRepository,
	balanceRepo repository.BalanceRepository,
	cardID uuid.UUID,
	amount decimal.Decimal,
) (*models.Balance, error) {
	card, err := cardRepo.FindByID(ctx, cardID)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeCardNotFound,
			Message: "card not found",
		}
	}

	if card.Type != models.CardTypeDebit {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidCardType,
			Message: "deposits are only allowed on DEBIT cards",
		}
	}

	if err := balanceRepo.CreateIfAbsent(ctx, card.AccountID); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to provision balance: %v", err),
		}
	}

	if _, err := balanceRepo.FindByAccountForUpdate(ctx, card.AccountID); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to lock balance: %v", err),
		}
	}

	if err := balanceRepo.AdjustAvailable(ctx, card.AccountID, amount); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to credit balance: %v", err),
		}
	}

	balance, err := balanceRepo.FindByAccount(ctx, card.AccountID)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to load balance: %v", err),
		}
	}

	return balance, nil
}

// DeleteCard removes any card
func (s *AdminService) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	cardRepo := repository.NewCardRepository(s.db)

	if _, err := cardRepo.FindByID(ctx, cardID); err != nil {
		return &ServiceError{
			Code:    ErrCodeCardNotFound,
			Message: "card not found",
		}
	}

	if err := cardRepo.Delete(ctx, cardID); err != nil {
		return &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to delete card: %v", err),
		}
	}
	return nil
}
