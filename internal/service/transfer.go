package service

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vietbank/banking-api/internal/db"
	"github.com/vietbank/banking-api/internal/models"
	"github.com/vietbank/banking-api/internal/repository"
)

// TransferResult is the success payload of a completed transfer
type TransferResult struct {
	Transaction     *models.Transaction
	SourceAvailable decimal.Decimal
}

// TransferService executes peer-to-peer funds movements between accounts
type TransferService struct {
	db     *db.DB
	logger *slog.Logger
}

// NewTransferService creates a new TransferService
func NewTransferService(database *db.DB, logger *slog.Logger) *TransferService {
	return &TransferService{
		db:     database,
		logger: logger,
	}
}

// Transfer moves amount from the source account to the account owning
// the destination card. Both balance legs commit atomically. The
// transaction audit row is written after the movement commits; if that
// write fails the movement still stands and the failure is only logged.
func (s *TransferService) Transfer(
	ctx context.Context,
	sourceAccountID uuid.UUID,
	sourceCardNumber, destCardNumber string,
	amount decimal.Decimal,
) (*TransferResult, error) {
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

	result, err := s.performTransfer(ctx, txCardRepo, txBalanceRepo, sourceAccountID, sourceCardNumber, destCardNumber, amount)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to commit transaction: %v", err),
		}
	}

	txn := &models.Transaction{
		ID:                uuid.New(),
		AccountID:         sourceAccountID,
		Amount:            amount,
		Type:              models.TransactionTypeTransfer,
		Status:            models.TransactionStatusSuccess,
		SendingCardNumber: sourceCardNumber,
		ReceiptCardNumber: destCardNumber,
		CreatedAt:         time.Now(),
	}

	// Audit only: the funds movement is already committed, so a failure
	// here must not unwind it.
	if err := repository.NewTransactionRepository(s.db).Create(ctx, txn); err != nil {
		s.logger.Error("failed to record transfer transaction",
			"account_id", sourceAccountID,
			"amount", amount,
			"error", err,
		)
	}

	result.Transaction = txn
	return result, nil
}

// performTransfer contains the core transfer business logic. Both
// balance rows are locked in ascending account-id order so opposing
// transfers cannot deadlock.
func (s *TransferService) performTransfer(
	ctx context.Context,
	cardRepo repository.CardRepository,
	balanceRepo repository.BalanceRepository,
	sourceAccountID uuid.UUID,
	sourceCardNumber, destCardNumber string,
	amount decimal.Decimal,
) (*TransferResult, error) {
	sourceCard, err := cardRepo.FindByCardNumber(ctx, sourceCardNumber)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeCardNotFound,
			Message: "source card not found",
		}
	}

	if sourceCard.AccountID != sourceAccountID {
		return nil, &ServiceError{
			Code:    ErrCodeNotCardOwner,
			Message: "source card belongs to another account",
		}
	}

	destCard, err := cardRepo.FindByCardNumber(ctx, destCardNumber)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeCardNotFound,
			Message: "destination card not found",
		}
	}

	if destCard.AccountID == sourceAccountID {
		return nil, &ServiceError{
			Code:    ErrCodeSelfTransfer,
			Message: "cannot transfer to your own account",
		}
	}

	if err := ValidateAmount(amount); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidAmount,
			Message: err.Error(),
		}
	}

	sourceBalance, destBalance, err := lockBalancePair(ctx, balanceRepo, sourceAccountID, destCard.AccountID)
	if err != nil {
		return nil, err
	}

	if sourceBalance.Available.LessThan(amount) {
		return nil, &ServiceError{
			Code:    ErrCodeInsufficientFunds,
			Message: "insufficient funds",
		}
	}

	if err := balanceRepo.AdjustAvailable(ctx, sourceBalance.AccountID, amount.Neg()); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to debit source balance: %v", err),
		}
	}

	if err := balanceRepo.AdjustAvailable(ctx, destBalance.AccountID, amount); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to credit destination balance: %v", err),
		}
	}

	return &TransferResult{
		SourceAvailable: sourceBalance.Available.Sub(amount),
	}, nil
}

// lockBalancePair takes FOR UPDATE locks on both accounts' balance rows
// in a deterministic order and returns them as (source, destination).
func lockBalancePair(
	ctx context.Context,
	balanceRepo repository.BalanceRepository,
	sourceAccountID, destAccountID uuid.UUID,
) (*models.Balance, *models.Balance, error) {
	first, second := sourceAccountID, destAccountID
	if bytes.Compare(first[:], second[:]) > 0 {
		first, second = second, first
	}

	firstBalance, err := lockBalance(ctx, balanceRepo, first, sourceAccountID)
	if err != nil {
		return nil, nil, err
	}
	secondBalance, err := lockBalance(ctx, balanceRepo, second, sourceAccountID)
	if err != nil {
		return nil, nil, err
	}

	if firstBalance.AccountID == sourceAccountID {
		return firstBalance, secondBalance, nil
	}
	return secondBalance, firstBalance, nil
}

func lockBalance(
	ctx context.Context,
	balanceRepo repository.BalanceRepository,
	accountID, sourceAccountID uuid.UUID,
) (*models.Balance, error) {
	balance, err := balanceRepo.FindByAccountForUpdate(ctx, accountID)
	if err != nil {
		side := "destination"
		if accountID == sourceAccountID {
			side = "source"
		}
		return nil, &ServiceError{
			Code:    ErrCodeBalanceNotFound,
			Message: side + " account has no balance",
		}
	}
	return balance, nil
}
