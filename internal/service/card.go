package service

import (
	"context"
	"crypto/rand"
	"database/sql"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vietbank/banking-api/internal/db"
	"github.com/vietbank/banking-api/internal/models"
	"github.com/vietbank/banking-api/internal/repository"
)

// Default credit limits per account tier, in VND.
var creditLimits = map[models.Level]decimal.Decimal{
	models.LevelSilver:   decimal.NewFromInt(50_000_000),
	models.LevelGold:     decimal.NewFromInt(200_000_000),
	models.LevelPlatinum: decimal.NewFromInt(2_000_000_000),
}

// CreditLimitForLevel returns the default credit limit for an account tier
func CreditLimitForLevel(level models.Level) decimal.Decimal {
	if limit, ok := creditLimits[level]; ok {
		return limit
	}
	return creditLimits[models.LevelSilver]
}

// CardService handles card issuance and removal
type CardService struct {
	db            *db.DB
	validityYears int
}

// NewCardService creates a new CardService
func NewCardService(database *db.DB, validityYears int) *CardService {
	return &CardService{
		db:            database,
		validityYears: validityYears,
	}
}

// CreateCard issues a new card for an account. CREDIT cards get the
// tier's default credit limit; issuing a DEBIT card provisions a zero
// balance for the account if it has none yet.
func (s *CardService) CreateCard(ctx context.Context, accountID uuid.UUID, cardType models.CardType) (*models.Card, error) {
	if !models.ValidCardType(cardType) {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidCardType,
			Message: fmt.Sprintf("invalid card type: %s", cardType),
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

	txAccountRepo := repository.NewAccountRepository(tx)
	txCardRepo := repository.NewCardRepository(tx)
	txBalanceRepo := repository.NewBalanceRepository(tx)

	card, err := s.performCreateCard(ctx, txAccountRepo, txCardRepo, txBalanceRepo, accountID, cardType)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to commit transaction: %v", err),
		}
	}

	return card, nil
}

// performCreateCard contains the core card issuance business logic
func (s *CardService) performCreateCard(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	cardRepo repository.CardRepository,
	balanceRepo repository.BalanceRepository,
	accountID uuid.UUID,
	cardType models.CardType,
) (*models.Card, error) {
	account, err := accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeAccountNotFound,
			Message: "account not found",
		}
	}

	cardNumber, err := generateUniqueCardNumber(ctx, cardRepo)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to generate card number: %v", err),
		}
	}

	now := time.Now()
	card := &models.Card{
		ID:         uuid.New(),
		CardNumber: cardNumber,
		AccountID:  account.ID,
		Type:       cardType,
		Status:     models.CardStatusActive,
		ExpiryDate: now.AddDate(s.validityYears, 0, 0),
		CreatedAt:  now,
	}

	if cardType == models.CardTypeCredit {
		limit := CreditLimitForLevel(account.Level)
		card.CreditLimit = &limit
	} else {
		// First DEBIT card lazily provisions the account's balance.
		if err := balanceRepo.CreateIfAbsent(ctx, account.ID); err != nil {
			return nil, &ServiceError{
				Code:    ErrCodeInternalError,
				Message: fmt.Sprintf("failed to provision balance: %v", err),
			}
		}
	}

	if err := cardRepo.Create(ctx, card); err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to create card: %v", err),
		}
	}

	return card, nil
}

// DeleteCard removes a card. A customer may only delete cards they own;
// admins may delete any card.
func (s *CardService) DeleteCard(ctx context.Context, actorAccountID, cardID uuid.UUID, isAdmin bool) error {
	cardRepo := repository.NewCardRepository(s.db)

	card, err := cardRepo.FindByID(ctx, cardID)
	if err != nil {
		return &ServiceError{
			Code:    ErrCodeCardNotFound,
			Message: "card not found",
		}
	}

	if !isAdmin && card.AccountID != actorAccountID {
		return &ServiceError{
			Code:    ErrCodeNotCardOwner,
			Message: "card belongs to a different account",
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

// ListCards returns the cards owned by an account
func (s *CardService) ListCards(ctx context.Context, accountID uuid.UUID) ([]*models.Card, error) {
	cards, err := repository.NewCardRepository(s.db).FindByAccount(ctx, accountID)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to list cards: %v", err),
		}
	}
	return cards, nil
}

// generateUniqueCardNumber draws random fixed-length numeric card
// numbers until one not yet in use is found.
func generateUniqueCardNumber(ctx context.Context, cardRepo repository.CardRepository) (string, error) {
	for {
		number, err := randomCardNumber()
		if err != nil {
			return "", err
		}

		exists, err := cardRepo.ExistsByCardNumber(ctx, number)
		if err != nil {
			return "", err
		}
		if !exists {
			return number, nil
		}
	}
}

func randomCardNumber() (string, error) {
	digits := make([]byte, models.CardNumberLength)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
