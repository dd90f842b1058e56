package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vietbank/banking-api/internal/models"
	"github.com/vietbank/banking-api/internal/repository/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTransferService_PerformTransfer(t *testing.T) {
	t.Run("successful transfer", func(t *testing.T) {
		mockCardRepo := mocks.NewMockCardRepository(t)
		mockBalanceRepo := mocks.NewMockBalanceRepository(t)
		service := NewTransferService(nil, testLogger())
		ctx := context.Background()

		sourceAccountID := uuid.New()
		destAccountID := uuid.New()
		amount := decimal.NewFromInt(50_000)

		sourceCard := &models.Card{
			ID:         uuid.New(),
			CardNumber: "111122223333",
			AccountID:  sourceAccountID,
			Type:       models.CardTypeDebit,
			Status:     models.CardStatusActive,
		}
		destCard := &models.Card{
			ID:         uuid.New(),
			CardNumber: "444455556666",
			AccountID:  destAccountID,
			Type:       models.CardTypeDebit,
			Status:     models.CardStatusActive,
		}

		mockCardRepo.On("FindByCardNumber", ctx, "111122223333").Return(sourceCard, nil)
		mockCardRepo.On("FindByCardNumber", ctx, "444455556666").Return(destCard, nil)
		mockBalanceRepo.On("FindByAccountForUpdate", ctx, sourceAccountID).Return(&models.Balance{
			AccountID: sourceAccountID,
			Available: decimal.NewFromInt(200_000),
		}, nil)
		mockBalanceRepo.On("FindByAccountForUpdate", ctx, destAccountID).Return(&models.Balance{
			AccountID: destAccountID,
			Available: decimal.NewFromInt(10_000),
		}, nil)
		mockBalanceRepo.On("AdjustAvailable", ctx, sourceAccountID, amount.Neg()).Return(nil)
		mockBalanceRepo.On("AdjustAvailable", ctx, destAccountID, amount).Return(nil)

		result, err := service.performTransfer(ctx, mockCardRepo, mockBalanceRepo, sourceAccountID, "111122223333", "444455556666", amount)

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.True(t, result.SourceAvailable.Equal(decimal.NewFromInt(150_000)))

		mockCardRepo.AssertExpectations(t)
		mockBalanceRepo.AssertExpectations(t)
	})

	t.Run("source card not found", func(t *testing.T) {
		mockCardRepo := mocks.NewMockCardRepository(t)
		mockBalanceRepo := mocks.NewMockBalanceRepository(t)
		service := NewTransferService(nil, testLogger())
		ctx := context.Background()

		mockCardRepo.On("FindByCardNumber", ctx, "999988887777").Return(nil, models.ErrNotFound)

		result, err := service.performTransfer(ctx, mockCardRepo, mockBalanceRepo, uuid.New(), "999988887777", "444455556666", decimal.NewFromInt(1000))

		assert.Error(t, err)
		assert.Nil(t, result)

		var svcErr *ServiceError
		if assert.ErrorAs(t, err, &svcErr) {
			assert.Equal(t, ErrCodeCardNotFound, svcErr.Code)
			assert.Contains(t, svcErr.Message, "source")
		}
	})

	t.Run("source card owned by another account", func(t *testing.T) {
		mockCardRepo := mocks.NewMockCardRepository(t)
		mockBalanceRepo := mocks.NewMockBalanceRepository(t)
		service := NewTransferService(nil, testLogger())
		ctx := context.Background()

		foreignCard := &models.Card{
			ID:         uuid.New(),
			CardNumber: "111122223333",
			AccountID:  uuid.New(),
		}
		mockCardRepo.On("FindByCardNumber", ctx, "111122223333").Return(foreignCard, nil)

		result, err := service.performTransfer(ctx, mockCardRepo, mockBalanceRepo, uuid.New(), "111122223333", "444455556666", decimal.NewFromInt(1000))

		assert.Error(t, err)
		assert.Nil(t, result)

		var svcErr *ServiceError
		if assert.ErrorAs(t, err, &svcErr) {
			assert.Equal(t, ErrCodeNotCardOwner, svcErr.Code)
		}
		mockBalanceRepo.AssertNotCalled(t, "FindByAccountForUpdate")
	})

	t.Run("destination card not found", func(t *testing.T) {
		mockCardRepo := mocks.NewMockCardRepository(t)
		mockBalanceRepo := mocks.NewMockBalanceRepository(t)
		service := NewTransferService(nil, testLogger())
		ctx := context.Background()

		sourceAccountID := uuid.New()
		sourceCard := &models.Card{
			ID:         uuid.New(),
			CardNumber: "111122223333",
			AccountID:  sourceAccountID,
		}

		mockCardRepo.On("FindByCardNumber", ctx, "111122223333").Return(sourceCard, nil)
		mockCardRepo.On("FindByCardNumber", ctx, "999988887777").Return(nil, models.ErrNotFound)

		result, err := service.performTransfer(ctx, mockCardRepo, mockBalanceRepo, sourceAccountID, "111122223333", "999988887777", decimal.NewFromInt(1000))

		assert.Error(t, err)
		assert.Nil(t, result)

		var svcErr *ServiceError
		if assert.ErrorAs(t, err, &svcErr) {
			assert.Equal(t, ErrCodeCardNotFound, svcErr.Code)
			assert.Contains(t, svcErr.Message, "destination")
		}
	})

	t.Run("transfer to own account rejected", func(t *testing.T) {
		mockCardRepo := mocks.NewMockCardRepository(t)
		mockBalanceRepo := mocks.NewMockBalanceRepository(t)
		service := NewTransferService(nil, testLogger())
		ctx := context.Background()

		sourceAccountID := uuid.New()
		sourceCard := &models.Card{
			ID:         uuid.New(),
			CardNumber: "111122223333",
			AccountID:  sourceAccountID,
		}
		ownDestCard := &models.Card{
			ID:         uuid.New(),
			CardNumber: "444455556666",
			AccountID:  sourceAccountID,
		}

		mockCardRepo.On("FindByCardNumber", ctx, "111122223333").Return(sourceCard, nil)
		mockCardRepo.On("FindByCardNumber", ctx, "444455556666").Return(ownDestCard, nil)

		result, err := service.performTransfer(ctx, mockCardRepo, mockBalanceRepo, sourceAccountID, "111122223333", "444455556666", decimal.NewFromInt(1000))

		assert.Error(t, err)
		assert.Nil(t, result)

		var svcErr *ServiceError
		if assert.ErrorAs(t, err, &svcErr) {
			assert.Equal(t, ErrCodeSelfTransfer, svcErr.Code)
		}
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		mockCardRepo := mocks.NewMockCardRepository(t)
		mockBalanceRepo := mocks.NewMockBalanceRepository(t)
		service := NewTransferService(nil, testLogger())
		ctx := context.Background()

		sourceAccountID := uuid.New()
		sourceCard := &models.Card{
			ID:         uuid.New(),
			CardNumber: "111122223333",
			AccountID:  sourceAccountID,
		}
		destCard := &models.Card{
			ID:         uuid.New(),
			CardNumber: "444455556666",
			AccountID:  uuid.New(),
		}

		mockCardRepo.On("FindByCardNumber", ctx, "111122223333").Return(sourceCard, nil)
		mockCardRepo.On("FindByCardNumber", ctx, "444455556666").Return(destCard, nil)

		result, err := service.performTransfer(ctx, mockCardRepo, mockBalanceRepo, sourceAccountID, "111122223333", "444455556666", decimal.Zero)

		assert.Error(t, err)
		assert.Nil(t, result)

		var svcErr *ServiceError
		if assert.ErrorAs(t, err, &svcErr) {
			assert.Equal(t, ErrCodeInvalidAmount, svcErr.Code)
		}
	})

	t.Run("insufficient funds leaves both balances untouched", func(t *testing.T) {
		mockCardRepo := mocks.NewMockCardRepository(t)
		mockBalanceRepo := mocks.NewMockBalanceRepository(t)
		service := NewTransferService(nil, testLogger())
		ctx := context.Background()

		sourceAccountID := uuid.New()
		destAccountID := uuid.New()

		sourceCard := &models.Card{
			ID:         uuid.New(),
			CardNumber: "111122223333",
			AccountID:  sourceAccountID,
		}
		destCard := &models.Card{
			ID:         uuid.New(),
			CardNumber: "444455556666",
			AccountID:  destAccountID,
		}

		mockCardRepo.On("FindByCardNumber", ctx, "111122223333").Return(sourceCard, nil)
		mockCardRepo.On("FindByCardNumber", ctx, "444455556666").Return(destCard, nil)
		mockBalanceRepo.On("FindByAccountForUpdate", ctx, sourceAccountID).Return(&models.Balance{
			AccountID: sourceAccountID,
			Available: decimal.NewFromInt(500),
		}, nil)
		mockBalanceRepo.On("FindByAccountForUpdate", ctx, destAccountID).Return(&models.Balance{
			AccountID: destAccountID,
			Available: decimal.Zero,
		}, nil)

		result, err := service.performTransfer(ctx, mockCardRepo, mockBalanceRepo, sourceAccountID, "111122223333", "444455556666", decimal.NewFromInt(1000))

		assert.Error(t, err)
		assert.Nil(t, result)

		var svcErr *ServiceError
		if assert.ErrorAs(t, err, &svcErr) {
			assert.Equal(t, ErrCodeInsufficientFunds, svcErr.Code)
		}

		mockBalanceRepo.AssertNotCalled(t, "AdjustAvailable")
	})

	t.Run("destination without balance row", func(t *testing.T) {
		mockCardRepo := mocks.NewMockCardRepository(t)
		mockBalanceRepo := mocks.NewMockBalanceRepository(t)
		service := NewTransferService(nil, testLogger())
		ctx := context.Background()

		sourceAccountID := uuid.New()
		destAccountID := uuid.New()

		sourceCard := &models.Card{
			ID:         uuid.New(),
			CardNumber: "111122223333",
			AccountID:  sourceAccountID,
		}
		destCard := &models.Card{
			ID:         uuid.New(),
			CardNumber: "444455556666",
			AccountID:  destAccountID,
		}

		mockCardRepo.On("FindByCardNumber", ctx, "111122223333").Return(sourceCard, nil)
		mockCardRepo.On("FindByCardNumber", ctx, "444455556666").Return(destCard, nil)
		mockBalanceRepo.On("FindByAccountForUpdate", ctx, sourceAccountID).Return(&models.Balance{
			AccountID: sourceAccountID,
			Available: decimal.NewFromInt(10_000),
		}, nil).Maybe()
		mockBalanceRepo.On("FindByAccountForUpdate", ctx, destAccountID).Return(nil, models.ErrNotFound)

		result, err := service.performTransfer(ctx, mockCardRepo, mockBalanceRepo, sourceAccountID, "111122223333", "444455556666", decimal.NewFromInt(1000))

		assert.Error(t, err)
		assert.Nil(t, result)

		var svcErr *ServiceError
		if assert.ErrorAs(t, err, &svcErr) {
			assert.Equal(t, ErrCodeBalanceNotFound, svcErr.Code)
			assert.Contains(t, svcErr.Message, "destination")
		}
	})
}

func TestLockBalancePair_Order(t *testing.T) {
	// Whatever the id ordering, the pair must come back as
	// (source, destination).
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		mockBalanceRepo := mocks.NewMockBalanceRepository(t)
		sourceAccountID := uuid.New()
		destAccountID := uuid.New()

		mockBalanceRepo.On("FindByAccountForUpdate", ctx, sourceAccountID).Return(&models.Balance{
			AccountID: sourceAccountID,
		}, nil)
		mockBalanceRepo.On("FindByAccountForUpdate", ctx, destAccountID).Return(&models.Balance{
			AccountID: destAccountID,
		}, nil)

		source, dest, err := lockBalancePair(ctx, mockBalanceRepo, sourceAccountID, destAccountID)

		assert.NoError(t, err)
		assert.Equal(t, sourceAccountID, source.AccountID)
		assert.Equal(t, destAccountID, dest.AccountID)
	}
}
