package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vietbank/banking-api/internal/models"
)

func TestPaymentRepository_CreateAndFind(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)

	repo := NewPaymentRepository(database)
	account := seedAccount(t, database, "payment@example.com", "+84904000001")

	payment := &models.PaymentRequest{
		ID:          uuid.New(),
		AccountID:   account.ID,
		Amount:      decimal.NewFromInt(250_000),
		Currency:    "VND",
		Status:      models.PaymentStatusPending,
		Description: "Electricity bill",
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, repo.Create(context.Background(), payment))

	found, err := repo.FindByID(context.Background(), payment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, found.Status)
	assert.True(t, found.Amount.Equal(payment.Amount))
	assert.Equal(t, "Electricity bill", found.Description)
	assert.Nil(t, found.PaidAt)

	t.Run("unknown payment", func(t *testing.T) {
		_, err := repo.FindByID(context.Background(), uuid.New())
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestPaymentRepository_UpdateStatus(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)

	repo := NewPaymentRepository(database)
	account := seedAccount(t, database, "settle@example.com", "+84904000002")

	payment := &models.PaymentRequest{
		ID:        uuid.New(),
		AccountID: account.ID,
		Amount:    decimal.NewFromInt(100_000),
		Currency:  "VND",
		Status:    models.PaymentStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(context.Background(), payment))

	paidAt := time.Now().UTC()
	require.NoError(t, repo.UpdateStatus(context.Background(), payment.ID, models.PaymentStatusPaid, &paidAt))

	found, err := repo.FindByID(context.Background(), payment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, found.Status)
	require.NotNil(t, found.PaidAt)
	assert.WithinDuration(t, paidAt, *found.PaidAt, time.Second)

	t.Run("failed keeps paid_at empty", func(t *testing.T) {
		failing := &models.PaymentRequest{
			ID:        uuid.New(),
			AccountID: account.ID,
			Amount:    decimal.NewFromInt(100_000),
			Currency:  "VND",
			Status:    models.PaymentStatusPending,
			CreatedAt: time.Now().UTC(),
		}
		require.NoError(t, repo.Create(context.Background(), failing))
		require.NoError(t, repo.UpdateStatus(context.Background(), failing.ID, models.PaymentStatusFailed, nil))

		found, err := repo.FindByID(context.Background(), failing.ID)
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusFailed, found.Status)
		assert.Nil(t, found.PaidAt)
	})

	t.Run("unknown payment", func(t *testing.T) {
		err := repo.UpdateStatus(context.Background(), uuid.New(), models.PaymentStatusCancelled, nil)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestPaymentRepository_Listings(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)

	repo := NewPaymentRepository(database)
	accountA := seedAccount(t, database, "list-a@example.com", "+84904000003")
	accountB := seedAccount(t, database, "list-b@example.com", "+84904000004")

	for i, accountID := range []uuid.UUID{accountA.ID, accountA.ID, accountB.ID} {
		status := models.PaymentStatusPending
		if i == 1 {
			status = models.PaymentStatusPaid
		}
		require.NoError(t, repo.Create(context.Background(), &models.PaymentRequest{
			ID:        uuid.New(),
			AccountID: accountID,
			Amount:    decimal.NewFromInt(50_000),
			Currency:  "VND",
			Status:    status,
			CreatedAt: time.Now().UTC(),
		}))
	}

	byAccount, err := repo.FindByAccount(context.Background(), accountA.ID)
	require.NoError(t, err)
	assert.Len(t, byAccount, 2)

	pending, err := repo.FindPending(context.Background())
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
