// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/vietbank/banking-api/internal/models"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockAccountRepository mocks repository.AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

// NewMockAccountRepository creates a mock wired to the test lifecycle
func NewMockAccountRepository(t testingT) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAccountRepository) Create(ctx context.Context, account *models.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	ret := m.Called(ctx, id)
	if v := ret.Get(0); v != nil {
		return v.(*models.Account), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	ret := m.Called(ctx, email)
	if v := ret.Get(0); v != nil {
		return v.(*models.Account), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockAccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	ret := m.Called(ctx, email)
	return ret.Bool(0), ret.Error(1)
}

func (m *MockAccountRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	ret := m.Called(ctx, phone)
	return ret.Bool(0), ret.Error(1)
}

func (m *MockAccountRepository) UpdateContact(ctx context.Context, account *models.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) UpdateRole(ctx context.Context, id uuid.UUID, role models.Role) error {
	return m.Called(ctx, id, role).Error(0)
}

func (m *MockAccountRepository) UpdateLevel(ctx context.Context, id uuid.UUID, level models.Level) error {
	return m.Called(ctx, id, level).Error(0)
}

func (m *MockAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAccountRepository) Count(ctx context.Context) (int64, error) {
	ret := m.Called(ctx)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *MockAccountRepository) List(ctx context.Context) ([]*models.Account, error) {
	ret := m.Called(ctx)
	if v := ret.Get(0); v != nil {
		return v.([]*models.Account), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockAccountRepository) SearchByEmail(ctx context.Context, fragment string) ([]*models.Account, error) {
	ret := m.Called(ctx, fragment)
	if v := ret.Get(0); v != nil {
		return v.([]*models.Account), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockAccountRepository) SearchByName(ctx context.Context, fragment string) ([]*models.Account, error) {
	ret := m.Called(ctx, fragment)
	if v := ret.Get(0); v != nil {
		return v.([]*models.Account), ret.Error(1)
	}
	return nil, ret.Error(1)
}

// MockCardRepository mocks repository.CardRepository
type MockCardRepository struct {
	mock.Mock
}

// NewMockCardRepository creates a mock wired to the test lifecycle
func NewMockCardRepository(t testingT) *MockCardRepository {
	m := &MockCardRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCardRepository) Create(ctx context.Context, card *models.Card) error {
	return m.Called(ctx, card).Error(0)
}

func (m *MockCardRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Card, error) {
	ret := m.Called(ctx, id)
	if v := ret.Get(0); v != nil {
		return v.(*models.Card), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockCardRepository) FindByCardNumber(ctx context.Context, cardNumber string) (*models.Card, error) {
	ret := m.Called(ctx, cardNumber)
	if v := ret.Get(0); v != nil {
		return v.(*models.Card), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockCardRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*models.Card, error) {
	ret := m.Called(ctx, accountID)
	if v := ret.Get(0); v != nil {
		return v.([]*models.Card), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockCardRepository) ExistsByCardNumber(ctx context.Context, cardNumber string) (bool, error) {
	ret := m.Called(ctx, cardNumber)
	return ret.Bool(0), ret.Error(1)
}

func (m *MockCardRepository) CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	ret := m.Called(ctx, accountID)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *MockCardRepository) Count(ctx context.Context) (int64, error) {
	ret := m.Called(ctx)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *MockCardRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.CardStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockCardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockBalanceRepository mocks repository.BalanceRepository
type MockBalanceRepository struct {
	mock.Mock
}

// NewMockBalanceRepository creates a mock wired to the test lifecycle
func NewMockBalanceRepository(t testingT) *MockBalanceRepository {
	m := &MockBalanceRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockBalanceRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) (*models.Balance, error) {
	ret := m.Called(ctx, accountID)
	if v := ret.Get(0); v != nil {
		return v.(*models.Balance), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockBalanceRepository) FindByAccountForUpdate(ctx context.Context, accountID uuid.UUID) (*models.Balance, error) {
	ret := m.Called(ctx, accountID)
	if v := ret.Get(0); v != nil {
		return v.(*models.Balance), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockBalanceRepository) CreateIfAbsent(ctx context.Context, accountID uuid.UUID) error {
	return m.Called(ctx, accountID).Error(0)
}

func (m *MockBalanceRepository) AdjustAvailable(ctx context.Context, accountID uuid.UUID, delta decimal.Decimal) error {
	return m.Called(ctx, accountID, delta).Error(0)
}

func (m *MockBalanceRepository) Delete(ctx context.Context, accountID uuid.UUID) error {
	return m.Called(ctx, accountID).Error(0)
}

// MockTransactionRepository mocks repository.TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

// NewMockTransactionRepository creates a mock wired to the test lifecycle
func NewMockTransactionRepository(t testingT) *MockTransactionRepository {
	m := &MockTransactionRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTransactionRepository) Create(ctx context.Context, txn *models.Transaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *MockTransactionRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*models.Transaction, error) {
	ret := m.Called(ctx, accountID)
	if v := ret.Get(0); v != nil {
		return v.([]*models.Transaction), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockTransactionRepository) List(ctx context.Context) ([]*models.Transaction, error) {
	ret := m.Called(ctx)
	if v := ret.Get(0); v != nil {
		return v.([]*models.Transaction), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockTransactionRepository) Count(ctx context.Context) (int64, error) {
	ret := m.Called(ctx)
	return ret.Get(0).(int64), ret.Error(1)
}

// MockPaymentRepository mocks repository.PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

// NewMockPaymentRepository creates a mock wired to the test lifecycle
func NewMockPaymentRepository(t testingT) *MockPaymentRepository {
	m := &MockPaymentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *models.PaymentRequest) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.PaymentRequest, error) {
	ret := m.Called(ctx, id)
	if v := ret.Get(0); v != nil {
		return v.(*models.PaymentRequest), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockPaymentRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.PaymentRequest, error) {
	ret := m.Called(ctx, id)
	if v := ret.Get(0); v != nil {
		return v.(*models.PaymentRequest), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockPaymentRepository) FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*models.PaymentRequest, error) {
	ret := m.Called(ctx, accountID)
	if v := ret.Get(0); v != nil {
		return v.([]*models.PaymentRequest), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockPaymentRepository) FindPending(ctx context.Context) ([]*models.PaymentRequest, error) {
	ret := m.Called(ctx)
	if v := ret.Get(0); v != nil {
		return v.([]*models.PaymentRequest), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockPaymentRepository) List(ctx context.Context) ([]*models.PaymentRequest, error) {
	ret := m.Called(ctx)
	if v := ret.Get(0); v != nil {
		return v.([]*models.PaymentRequest), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockPaymentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.PaymentStatus, paidAt *time.Time) error {
	return m.Called(ctx, id, status, paidAt).Error(0)
}

// MockIdempotencyRepository mocks repository.IdempotencyRepository
type MockIdempotencyRepository struct {
	mock.Mock
}

// NewMockIdempotencyRepository creates a mock wired to the test lifecycle
func NewMockIdempotencyRepository(t testingT) *MockIdempotencyRepository {
	m := &MockIdempotencyRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockIdempotencyRepository) Get(ctx context.Context, key, requestPath string) (*models.IdempotencyKey, error) {
	ret := m.Called(ctx, key, requestPath)
	if v := ret.Get(0); v != nil {
		return v.(*models.IdempotencyKey), ret.Error(1)
	}
	return nil, ret.Error(1)
}

func (m *MockIdempotencyRepository) Store(ctx context.Context, idemKey *models.IdempotencyKey) error {
	return m.Called(ctx, idemKey).Error(0)
}
