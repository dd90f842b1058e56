package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vietbank/banking-api/internal/db"
	"github.com/vietbank/banking-api/internal/models"
)

// CardRepository defines the interface for card data access
type CardRepository interface {
	Create(ctx context.Context, card *models.Card) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Card, error)
	FindByCardNumber(ctx context.Context, cardNumber string) (*models.Card, error)
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*models.Card, error)
	ExistsByCardNumber(ctx context.Context, cardNumber string) (bool, error)
	CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error)
	Count(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.CardStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// cardRepository implements CardRepository
type cardRepository struct {
	db db.Queryer
}

// NewCardRepository creates a new CardRepository
func NewCardRepository(q db.Queryer) CardRepository {
	return &cardRepository{db: q}
}

const cardColumns = `id, card_number, account_id, card_type, status, expiry_date, credit_limit, created_at`

func scanCard(row interface{ Scan(...any) error }) (*models.Card, error) {
	var card models.Card
	err := row.Scan(
		&card.ID,
		&card.CardNumber,
		&card.AccountID,
		&card.Type,
		&card.Status,
		&card.ExpiryDate,
		&card.CreditLimit,
		&card.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// Create inserts a new card row
func (r *cardRepository) Create(ctx context.Context, card *models.Card) error {
	query := `
		INSERT INTO cards (id, card_number, account_id, card_type, status, expiry_date, credit_limit, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		card.ID,
		card.CardNumber,
		card.AccountID,
		card.Type,
		card.Status,
		card.ExpiryDate,
		card.CreditLimit,
		card.CreatedAt,
	)
	if err != nil {
		if dup := mapUniqueViolation(err); dup != nil {
			return dup
		}
		return fmt.Errorf("failed to create card: %w", err)
	}

	return nil
}

// FindByID retrieves a card by its UUID
func (r *cardRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE id = $1`

	card, err := scanCard(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("card not found: %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find card by id: %w", err)
	}

	return card, nil
}

// FindByCardNumber resolves a card number to its card row
func (r *cardRepository) FindByCardNumber(ctx context.Context, cardNumber string) (*models.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE card_number = $1`

	card, err := scanCard(r.db.QueryRowContext(ctx, query, cardNumber))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("card not found: %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find card by number: %w", err)
	}

	return card, nil
}

// FindByAccount returns all cards owned by an account
func (r *cardRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*models.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE account_id = $1 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cards: %w", err)
	}
	defer rows.Close()

	var cards []*models.Card
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cards: %w", err)
	}

	return cards, nil
}

// ExistsByCardNumber reports whether any card carries the given number
func (r *cardRepository) ExistsByCardNumber(ctx context.Context, cardNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM cards WHERE card_number = $1)`, cardNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check card number existence: %w", err)
	}
	return exists, nil
}

// CountByAccount returns how many cards an account owns
func (r *cardRepository) CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cards WHERE account_id = $1`, accountID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count cards: %w", err)
	}
	return count, nil
}

// Count returns the total number of cards
func (r *cardRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cards`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count cards: %w", err)
	}
	return count, nil
}

// UpdateStatus changes the lifecycle state of a card
func (r *cardRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.CardStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE cards SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update card status: %w", err)
	}
	return requireRowAffected(result, "card")
}

// Delete removes a card row
func (r *cardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM cards WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}
	return requireRowAffected(result, "card")
}
