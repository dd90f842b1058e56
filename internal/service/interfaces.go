package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vietbank/banking-api/internal/models"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// Authenticator handles registration and login
type Authenticator interface {
	Register(ctx context.Context, name, email, password, phone string) (*models.Account, error)
	Login(ctx context.Context, email, password string) (string, *models.Account, error)
}

// AccountManager handles account profile and lifecycle operations
type AccountManager interface {
	GetProfile(ctx context.Context, accountID uuid.UUID) (*models.Account, error)
	GetBalance(ctx context.Context, accountID uuid.UUID) (*models.Balance, error)
	UpdateContact(ctx context.Context, accountID uuid.UUID, fullName, email, phoneNumber string) (*models.Account, error)
	DeleteAccount(ctx context.Context, accountID uuid.UUID) error
	ListTransactions(ctx context.Context, accountID uuid.UUID) ([]*models.Transaction, error)
}

// CardManager handles card issuance and removal
type CardManager interface {
	CreateCard(ctx context.Context, accountID uuid.UUID, cardType models.CardType) (*models.Card, error)
	DeleteCard(ctx context.Context, actorAccountID, cardID uuid.UUID, isAdmin bool) error
	ListCards(ctx context.Context, accountID uuid.UUID) ([]*models.Card, error)
}

// Transferer moves funds between card-linked balances
type Transferer interface {
	Transfer(ctx context.Context, sourceAccountID uuid.UUID, sourceCardNumber, destCardNumber string, amount decimal.Decimal) (*TransferResult, error)
}

// PaymentManager handles the payment request lifecycle
type PaymentManager interface {
	Create(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, currency, description string) (*models.PaymentRequest, error)
	Settle(ctx context.Context, paymentID, payerAccountID uuid.UUID) (*models.PaymentRequest, error)
	Cancel(ctx context.Context, paymentID, actorAccountID uuid.UUID, isAdmin bool) (*models.PaymentRequest, error)
	GetByID(ctx context.Context, paymentID uuid.UUID) (*models.PaymentRequest, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*models.PaymentRequest, error)
	ListPending(ctx context.Context) ([]*models.PaymentRequest, error)
	ListAll(ctx context.Context) ([]*models.PaymentRequest, error)
}

// Administrator handles back-office operations
type Administrator interface {
	GetStats(ctx context.Context) (*Stats, error)
	ListAccounts(ctx context.Context) ([]*models.Account, error)
	SearchAccounts(ctx context.Context, email, name string) ([]*models.Account, error)
	CreateUser(ctx context.Context, fullName, email, phoneNumber, password string, role models.Role) (*models.Account, error)
	DeleteAccount(ctx context.Context, accountID uuid.UUID) error
	UpdateRole(ctx context.Context, accountID uuid.UUID, role models.Role) error
	UpdateLevel(ctx context.Context, accountID uuid.UUID, level models.Level) error
	ListAccountCards(ctx context.Context, accountID uuid.UUID) ([]*models.Card, error)
	ListAccountTransactions(ctx context.Context, accountID uuid.UUID) ([]*models.Transaction, error)
	UpdateCardStatus(ctx context.Context, cardID uuid.UUID, status models.CardStatus) error
	DeleteCard(ctx context.Context, cardID uuid.UUID) error
	Deposit(ctx context.Context, cardID uuid.UUID, amount decimal.Decimal) (*models.Balance, error)
}

// Ensure concrete types implement interfaces
var (
	_ Authenticator  = (*AuthService)(nil)
	_ AccountManager = (*AccountService)(nil)
	_ CardManager    = (*CardService)(nil)
	_ Transferer     = (*TransferService)(nil)
	_ PaymentManager = (*PaymentService)(nil)
	_ Administrator  = (*AdminService)(nil)
)
