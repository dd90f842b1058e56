// Package mocks provides testify mocks for the service interfaces.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/vietbank/banking-api/internal/models"
	"github.com/vietbank/banking-api/internal/service"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockAuthenticator mocks service.Authenticator
type MockAuthenticator struct {
	mock.Mock
}

// NewMockAuthenticator creates a mock wired to the test lifecycle
func NewMockAuthenticator(t testingT) *MockAuthenticator {
	m := &MockAuthenticator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAuthenticator) Register(ctx context.Context, name, email, password, phone string) (*models.Account, error) {
	ret := m.Called(ctx, name, email, password, phone)
	if v := ret.Get(0); v != nil {
		return v.(*models.Account), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockAuthenticator) Login(ctx context.Context, email, password string) (string, *models.Account, error) {
	ret := m.Called(ctx, email, password)
	var account *models.Account
	if v := ret.Get(1); v != nil {
		account = v.(*models.Account)
	}
	return ret.String(0), account, ret.Error(2)
}

// MockAccountManager mocks service.AccountManager
type MockAccountManager struct {
	mock.Mock
}

// NewMockAccountManager creates a mock wired to the test lifecycle
func NewMockAccountManager(t testingT) *MockAccountManager {
	m := &MockAccountManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAccountManager) GetProfile(ctx context.Context, accountID uuid.UUID) (*models.Account, error) {
	ret := m.Called(ctx, accountID)
	if v := ret.Get(0); v != nil {
		return v.(*models.Account), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockAccountManager) GetBalance(ctx context.Context, accountID uuid.UUID) (*models.Balance, error) {
	ret := m.Called(ctx, accountID)
	if v := ret.Get(0); v != nil {
		return v.(*models.Balance), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockAccountManager) UpdateContact(ctx context.Context, accountID uuid.UUID, fullName, email, phoneNumber string) (*models.Account, error) {
	ret := m.Called(ctx, accountID, fullName, email, phoneNumber)
	if v := ret.Get(0); v != nil {
		return v.(*models.Account), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockAccountManager) DeleteAccount(ctx context.Context, accountID uuid.UUID) error {
	return m.Called(ctx, accountID).Error(0)
}

func (m *MockAccountManager) ListTransactions(ctx context.Context, accountID uuid.UUID) ([]*models.Transaction, error) {
	ret := m.Called(ctx, accountID)
	if v := ret.Get(0); v != nil {
		return v.([]*models.Transaction), ret.Error(1)
	}
	return nil, ret.Error(1)
}

// MockCardManager mocks service.CardManager
type MockCardManager struct {
	mock.Mock
}

// NewMockCardManager creates a mock wired to the test lifecycle
func NewMockCardManager(t testingT) *MockCardManager {
	m := &MockCardManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCardManager) CreateCard(ctx context.Context, accountID uuid.UUID, cardType models.CardType) (*models.Card, error) {
	ret := m.Called(ctx, accountID, cardType)
	if v := ret.Get(0); v != nil {
		return v.(*models.Card), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockCardManager) DeleteCard(ctx context.Context, actorAccountID, cardID uuid.UUID, isAdmin bool) error {
	return m.Called(ctx, actorAccountID, cardID, isAdmin).Error(0)
}

func (m *MockCardManager) ListCards(ctx context.Context, accountID uuid.UUID) ([]*models.Card, error) {
	ret := m.Called(ctx, accountID)
	if v := ret.Get(0); v != nil {
		return v.([]*models.Card), ret.Error(1)
	}
	return nil, ret.Error(1)
}

// MockTransferer mocks service.Transferer
type MockTransferer struct {
	mock.Mock
}

// NewMockTransferer creates a mock wired to the test lifecycle
func NewMockTransferer(t testingT) *MockTransferer {
	m := &MockTransferer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTransferer) Transfer(ctx context.Context, sourceAccountID uuid.UUID, sourceCardNumber, destCardNumber string, amount decimal.Decimal) (*service.TransferResult, error) {
	ret := m.Called(ctx, sourceAccountID, sourceCardNumber, destCardNumber, amount)
	if v := ret.Get(0); v != nil {
		return v.(*service.TransferResult), ret.Error(1)
	}
	return nil, ret.Error(1)
}

// MockPaymentManager mocks service.PaymentManager
type MockPaymentManager struct {
	mock.Mock
}

// NewMockPaymentManager creates a mock wired to the test lifecycle
func NewMockPaymentManager(t testingT) *MockPaymentManager {
	m := &MockPaymentManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPaymentManager) Create(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal, currency, description string) (*models.PaymentRequest, error) {
	ret := m.Called(ctx, accountID, amount, currency, description)
	if v := ret.Get(0); v != nil {
		return v.(*models.PaymentRequest), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockPaymentManager) Settle(ctx context.Context, paymentID, payerAccountID uuid.UUID) (*models.PaymentRequest, error) {
	ret := m.Called(ctx, paymentID, payerAccountID)
	if v := ret.Get(0); v != nil {
		return v.(*models.PaymentRequest), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockPaymentManager) Cancel(ctx context.Context, paymentID, actorAccountID uuid.UUID, isAdmin bool) (*models.PaymentRequest, error) {
	ret := m.Called(ctx, paymentID, actorAccountID, isAdmin)
	if v := ret.Get(0); v != nil {
		return v.(*models.PaymentRequest), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockPaymentManager) GetByID(ctx context.Context, paymentID uuid.UUID) (*models.PaymentRequest, error) {
	ret := m.Called(ctx, paymentID)
	if v := ret.Get(0); v != nil {
		return v.(*models.PaymentRequest), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockPaymentManager) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*models.PaymentRequest, error) {
	ret := m.Called(ctx, accountID)
	if v := ret.Get(0); v != nil {
		return v.([]*models.PaymentRequest), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockPaymentManager) ListPending(ctx context.Context) ([]*models.PaymentRequest, error) {
	ret := m.Called(ctx)
	if v := ret.Get(0); v != nil {
		return v.([]*models.PaymentRequest), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockPaymentManager) ListAll(ctx context.Context) ([]*models.PaymentRequest, error) {
	ret := m.Called(ctx)
	if v := ret.Get(0); v != nil {
		return v.([]*models.PaymentRequest), ret.Error(1)
	}
	return nil, ret.Error(1)
}

// MockAdministrator mocks service.Administrator
type MockAdministrator struct {
	mock.Mock
}

// NewMockAdministrator creates a mock wired to the test lifecycle
func NewMockAdministrator(t testingT) *MockAdministrator {
	m := &MockAdministrator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAdministrator) GetStats(ctx context.Context) (*service.Stats, error) {
	ret := m.Called(ctx)
	if v := ret.Get(0); v != nil {
		return v.(*service.Stats), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockAdministrator) ListAccounts(ctx context.Context) ([]*models.Account, error) {
	ret := m.Called(ctx)
	if v := ret.Get(0); v != nil {
		return v.([]*models.Account), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockAdministrator) SearchAccounts(ctx context.Context, email, name string) ([]*models.Account, error) {
	ret := m.Called(ctx, email, name)
	if v := ret.Get(0); v != nil {
		return v.([]*models.Account), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockAdministrator) CreateUser(ctx context.Context, fullName, email, phoneNumber, password string, role models.Role) (*models.Account, error) {
	ret := m.Called(ctx, fullName, email, phoneNumber, password, role)
	if v := ret.Get(0); v != nil {
		return v.(*models.Account), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockAdministrator) DeleteAccount(ctx context.Context, accountID uuid.UUID) error {
	return m.Called(ctx, accountID).Error(0)
}

func (m *MockAdministrator) UpdateRole(ctx context.Context, accountID uuid.UUID, role models.Role) error {
	return m.Called(ctx, accountID, role).Error(0)
}

func (m *MockAdministrator) UpdateLevel(ctx context.Context, accountID uuid.UUID, level models.Level) error {
	return m.Called(ctx, accountID, level).Error(0)
}

func (m *MockAdministrator) ListAccountCards(ctx context.Context, accountID uuid.UUID) ([]*models.Card, error) {
	ret := m.Called(ctx, accountID)
	if v := ret.Get(0); v != nil {
		return v.([]*models.Card), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockAdministrator) ListAccountTransactions(ctx context.Context, accountID uuid.UUID) ([]*models.Transaction, error) {
	ret := m.Called(ctx, accountID)
	if v := ret.Get(0); v != nil {
		return v.([]*models.Transaction), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockAdministrator) UpdateCardStatus(ctx context.Context, cardID uuid.UUID, status models.CardStatus) error {
	return m.Called(ctx, cardID, status).Error(0)
}

func (m *MockAdministrator) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	return m.Called(ctx, cardID).Error(0)
}

func (m *MockAdministrator) Deposit(ctx context.Context, cardID uuid.UUID, amount decimal.Decimal) (*models.Balance, error) {
	ret := m.Called(ctx, cardID, amount)
	if v := ret.Get(0); v != nil {
		return v.(*models.Balance), ret.Error(1)
	}
	return nil, ret.Error(1)
}
