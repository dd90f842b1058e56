package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vietbank/banking-api/internal/db"
	"github.com/vietbank/banking-api/internal/models"
	"github.com/vietbank/banking-api/internal/repository"
)

// Notifier receives payment lifecycle notifications. Calls are
// best-effort and made only after the financial outcome is committed.
type Notifier interface {
	PaymentRequestCreated(ctx context.Context, account *models.Account, payment *models.PaymentRequest)
	PaymentPaid(ctx context.Context, account *models.Account, payment *models.PaymentRequest)
	PaymentFailed(ctx context.Context, account *models.Account, payment *models.PaymentRequest, reason string)
}

// PaymentService manages the payment request lifecycle:
// PENDING -> PAID | FAILED | CANCELLED, all three terminal.
type PaymentService struct {
	db       *db.DB
	notifier Notifier
	logger   *slog.Logger
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(database *db.DB, notifier Notifier, logger *slog.Logger) *PaymentService {
	return &PaymentService{
		db:       database,
		notifier: notifier,
		logger:   logger,
	}
}

// Create raises a new PENDING payment request against an account
func (s *PaymentService) Create(
	ctx context.Context,
	accountID uuid.UUID,
	amount decimal.Decimal,
	currency, description string,
) (*models.PaymentRequest, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidAmount,
			Message: err.Error(),
		}
	}

	currency = strings.TrimSpace(currency)
	if currency == "" {
		currency = models.DefaultCurrency
	}
	if err := ValidateCurrency(currency); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidCurrency,
			Message: err.Error(),
		}
	}

	accountRepo := repository.NewAccountRepository(s.db)
	account, err := accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeAccountNotFound,
			Message: "account not found",
		}
	}

	payment := &models.PaymentRequest{
		ID:          uuid.New(),
		AccountID:   accountID,
		Amount:      amount,
		Currency:    currency,
		Status:      models.PaymentStatusPending,
		Description: description,
		CreatedAt:   time.Now(),
	}

	if err := repository.NewPaymentRepository(s.db).Create(ctx, payment); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to create payment request: %v", err),
		}
	}

	s.notifier.PaymentRequestCreated(ctx, account, payment)

	return payment, nil
}

// Settle pays a PENDING request by debiting the payer's available
// balance and marking the request PAID, as one atomic unit. An
// insufficient balance commits a PENDING -> FAILED transition before
// the error is reported; that write is deliberate, not a rollback.
func (s *PaymentService) Settle(ctx context.Context, paymentID, payerAccountID uuid.UUID) (*models.PaymentRequest, error) {
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

	txPaymentRepo := repository.NewPaymentRepository(tx)
	txBalanceRepo := repository.NewBalanceRepository(tx)
	txAccountRepo := repository.NewAccountRepository(tx)

	payment, account, settleErr := s.performSettlement(ctx, txPaymentRepo, txBalanceRepo, txAccountRepo, paymentID, payerAccountID)
	if settleErr != nil && payment == nil {
		// Hard abort: nothing to commit.
		return nil, settleErr
	}

	if err := tx.Commit(); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to commit transaction: %v", err),
		}
	}

	if settleErr != nil {
		// The FAILED transition is committed; report the failure.
		s.notifier.PaymentFailed(ctx, account, payment, "insufficient available balance")
		return nil, settleErr
	}

	s.notifier.PaymentPaid(ctx, account, payment)
	return payment, nil
}

// performSettlement contains the core settlement business logic. On an
// insufficient balance it transitions the request to FAILED and returns
// both the transitioned request and the error, signalling the caller to
// commit before reporting.
func (s *PaymentService) performSettlement(
	ctx context.Context,
	paymentRepo repository.PaymentRepository,
	balanceRepo repository.BalanceRepository,
	accountRepo repository.AccountRepository,
	paymentID, payerAccountID uuid.UUID,
) (*models.PaymentRequest, *models.Account, error) {
	payment, err := paymentRepo.FindByIDForUpdate(ctx, paymentID)
	if err != nil {
		return nil, nil, &ServiceError{
			Code:    ErrCodePaymentNotFound,
			Message: "payment request not found",
		}
	}

	if payment.Status != models.PaymentStatusPending {
		return nil, nil, &ServiceError{
			Code:    ErrCodeInvalidState,
			Message: "payment request is not pending",
		}
	}

	if payment.AccountID != payerAccountID {
		return nil, nil, &ServiceError{
			Code:    ErrCodeAccountMismatch,
			Message: "payment request belongs to a different account",
		}
	}

	account, err := accountRepo.FindByID(ctx, payerAccountID)
	if err != nil {
		return nil, nil, &ServiceError{
			Code:    ErrCodeAccountNotFound,
			Message: "account not found",
		}
	}

	balance, err := balanceRepo.FindByAccountForUpdate(ctx, payerAccountID)
	if err != nil {
		return nil, nil, &ServiceError{
			Code:    ErrCodeBalanceNotFound,
			Message: "payer account has no balance",
		}
	}

	if balance.Available.LessThan(payment.Amount) {
		if err := paymentRepo.UpdateStatus(ctx, payment.ID, models.PaymentStatusFailed, nil); err != nil {
			return nil, nil, &ServiceError{
				Code:    ErrCodeInternalError,
				Message: fmt.Sprintf("failed to mark payment failed: %v", err),
			}
		}
		payment.Status = models.PaymentStatusFailed
		return payment, account, &ServiceError{
			Code:    ErrCodeInsufficientFunds,
			Message: "insufficient available balance",
		}
	}

	if err := balanceRepo.AdjustAvailable(ctx, payerAccountID, payment.Amount.Neg()); err != nil {
		return nil, nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to debit balance: %v", err),
		}
	}

	paidAt := time.Now()
	if err := paymentRepo.UpdateStatus(ctx, payment.ID, models.PaymentStatusPaid, &paidAt); err != nil {
		return nil, nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to mark payment paid: %v", err),
		}
	}

	payment.Status = models.PaymentStatusPaid
	payment.PaidAt = &paidAt
	return payment, account, nil
}

// Cancel transitions a PENDING request to CANCELLED. Only the owning
// account or an admin may cancel.
func (s *PaymentService) Cancel(ctx context.Context, paymentID, actorAccountID uuid.UUID, isAdmin bool) (*models.PaymentRequest, error) {
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

	txPaymentRepo := repository.NewPaymentRepository(tx)

	payment, err := s.performCancel(ctx, txPaymentRepo, paymentID, actorAccountID, isAdmin)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to commit transaction: %v", err),
		}
	}

	return payment, nil
}

// performCancel contains the core cancellation business logic
func (s *PaymentService) performCancel(
	ctx context.Context,
	paymentRepo repository.PaymentRepository,
	paymentID, actorAccountID uuid.UUID,
	isAdmin bool,
) (*models.PaymentRequest, error) {
	payment, err := paymentRepo.FindByIDForUpdate(ctx, paymentID)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodePaymentNotFound,
			Message: "payment request not found",
		}
	}

	if payment.Status != models.PaymentStatusPending {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidState,
			Message: "payment request is not pending",
		}
	}

	if !isAdmin && payment.AccountID != actorAccountID {
		return nil, &ServiceError{
			Code:    ErrCodeAccountMismatch,
			Message: "payment request belongs to a different account",
		}
	}

	if err := paymentRepo.UpdateStatus(ctx, payment.ID, models.PaymentStatusCancelled, nil); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to cancel payment request: %v", err),
		}
	}

	payment.Status = models.PaymentStatusCancelled
	return payment, nil
}

// GetByID retrieves a payment request
func (s *PaymentService) GetByID(ctx context.Context, paymentID uuid.UUID) (*models.PaymentRequest, error) {
	payment, err := repository.NewPaymentRepository(s.db).FindByID(ctx, paymentID)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodePaymentNotFound,
			Message: "payment request not found",
		}
	}
	return payment, nil
}

// ListByAccount returns an account's payment requests, newest first
func (s *PaymentService) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*models.PaymentRequest, error) {
	payments, err := repository.NewPaymentRepository(s.db).FindByAccount(ctx, accountID)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to list payment requests: %v", err),
		}
	}
	return payments, nil
}

// ListPending returns all payment requests still awaiting settlement
func (s *PaymentService) ListPending(ctx context.Context) ([]*models.PaymentRequest, error) {
	payments, err := repository.NewPaymentRepository(s.db).FindPending(ctx)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to list pending payment requests: %v", err),
		}
	}
	return payments, nil
}

// ListAll returns every payment request, newest first
func (s *PaymentService) ListAll(ctx context.Context) ([]*models.PaymentRequest, error) {
	payments, err := repository.NewPaymentRepository(s.db).List(ctx)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to list payment requests: %v", err),
		}
	}
	return payments, nil
}
