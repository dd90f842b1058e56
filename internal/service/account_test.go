package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vietbank/banking-api/internal/models"
	"github.com/vietbank/banking-api/internal/repository/mocks"
)

func TestPerformDeleteAccount(t *testing.T) {
	t.Run("successful closure with zero balance", func(t *testing.T) {
		mockAccountRepo := mocks.NewMockAccountRepository(t)
		mockCardRepo := mocks.NewMockCardRepository(t)
		mockBalanceRepo := mocks.NewMockBalanceRepository(t)
		ctx := context.Background()

		accountID := uuid.New()

		mockAccountRepo.On("FindByID", ctx, accountID).Return(&models.Account{ID: accountID}, nil)
		mockCardRepo.On("CountByAccount", ctx, accountID).Return(int64(0), nil)
		mockBalanceRepo.On("FindByAccount", ctx, accountID).Return(&models.Balance{
			AccountID: accountID,
			Available: decimal.Zero,
			Held:      decimal.Zero,
		}, nil)
		mockBalanceRepo.On("Delete", ctx, accountID).Return(nil)
		mockAccountRepo.On("Delete", ctx, accountID).Return(nil)

		err := performDeleteAccount(ctx, mockAccountRepo, mockCardRepo, mockBalanceRepo, accountID)

		assert.NoError(t, err)
	})

	t.Run("closure allowed when no balance row exists", func(t *testing.T) {
		mockAccountRepo := mocks.NewMockAccountRepository(t)
		mockCardRepo := mocks.NewMockCardRepository(t)
		mockBalanceRepo := mocks.NewMockBalanceRepository(t)
		ctx := context.Background()

		accountID := uuid.New()

		mockAccountRepo.On("FindByID", ctx, accountID).Return(&models.Account{ID: accountID}, nil)
		mockCardRepo.On("CountByAccount", ctx, accountID).Return(int64(0), nil)
		mockBalanceRepo.On("FindByAccount", ctx, accountID).Return(nil, models.ErrNotFound)
		mockAccountRepo.On("Delete", ctx, accountID).Return(nil)

		err := performDeleteAccount(ctx, mockAccountRepo, mockCardRepo, mockBalanceRepo, accountID)

		assert.NoError(t, err)
		mockBalanceRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("account with cards cannot close", func(t *testing.T) {
		mockAccountRepo := mocks.NewMockAccountRepository(t)
		mockCardRepo := mocks.NewMockCardRepository(t)
		mockBalanceRepo := mocks.NewMockBalanceRepository(t)
		ctx := context.Background()

		accountID := uuid.New()

		mockAccountRepo.On("FindByID", ctx, accountID).Return(&models.Account{ID: accountID}, nil)
		mockCardRepo.On("CountByAccount", ctx, accountID).Return(int64(2), nil)

		err := performDeleteAccount(ctx, mockAccountRepo, mockCardRepo, mockBalanceRepo, accountID)

		assert.Error(t, err)

		var svcErr *ServiceError
		if assert.ErrorAs(t, err, &svcErr) {
			assert.Equal(t, ErrCodeAccountHasCards, svcErr.Code)
		}

		mockAccountRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("account with funds cannot close", func(t *testing.T) {
		mockAccountRepo := mocks.NewMockAccountRepository(t)
		mockCardRepo := mocks.NewMockCardRepository(t)
		mockBalanceRepo := mocks.NewMockBalanceRepository(t)
		ctx := context.Background()

		accountID := uuid.New()

		mockAccountRepo.On("FindByID", ctx, accountID).Return(&models.Account{ID: accountID}, nil)
		mockCardRepo.On("CountByAccount", ctx, accountID).Return(int64(0), nil)
		mockBalanceRepo.On("FindByAccount", ctx, accountID).Return(&models.Balance{
			AccountID: accountID,
			Available: decimal.NewFromInt(100),
		}, nil)

		err := performDeleteAccount(ctx, mockAccountRepo, mockCardRepo, mockBalanceRepo, accountID)

		assert.Error(t, err)

		var svcErr *ServiceError
		if assert.ErrorAs(t, err, &svcErr) {
			assert.Equal(t, ErrCodeBalanceNotZero, svcErr.Code)
		}

		mockAccountRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("held funds also block closure", func(t *testing.T) {
		mockAccountRepo := mocks.NewMockAccountRepository(t)
		mockCardRepo := mocks.NewMockCardRepository(t)
		mockBalanceRepo := mocks.NewMockBalanceRepository(t)
		ctx := context.Background()

		accountID := uuid.New()

		mockAccountRepo.On("FindByID", ctx, accountID).Return(&models.Account{ID: accountID}, nil)
		mockCardRepo.On("CountByAccount", ctx, accountID).Return(int64(0), nil)
		mockBalanceRepo.On("FindByAccount", ctx, accountID).Return(&models.Balance{
			AccountID: accountID,
			Available: decimal.Zero,
			Held:      decimal.NewFromInt(50),
		}, nil)

		err := performDeleteAccount(ctx, mockAccountRepo, mockCardRepo, mockBalanceRepo, accountID)

		assert.Error(t, err)

		var svcErr *ServiceError
		if assert.ErrorAs(t, err, &svcErr) {
			assert.Equal(t, ErrCodeBalanceNotZero, svcErr.Code)
		}
	})

	t.Run("unknown account", func(t *testing.T) {
		mockAccountRepo := mocks.NewMockAccountRepository(t)
		mockCardRepo := mocks.NewMockCardRepository(t)
		mockBalanceRepo := mocks.NewMockBalanceRepository(t)
		ctx := context.Background()

		accountID := uuid.New()

		mockAccountRepo.On("FindByID", ctx, accountID).Return(nil, models.ErrNotFound)

		err := performDeleteAccount(ctx, mockAccountRepo, mockCardRepo, mockBalanceRepo, accountID)

		assert.Error(t, err)

		var svcErr *ServiceError
		if assert.ErrorAs(t, err, &svcErr) {
			assert.Equal(t, ErrCodeAccountNotFound, svcErr.Code)
		}
	})
}
