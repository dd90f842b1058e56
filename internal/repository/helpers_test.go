package repository

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/vietbank/banking-api/internal/config"
	"github.com/vietbank/banking-api/internal/db"
	"github.com/vietbank/banking-api/internal/models"
)

func setupTestDB(t *testing.T) *db.DB {
	t.Helper()

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	logger := cfg.Logger.NewLogger()

	database, err := db.Connect(context.Background(), &cfg.Database, logger)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	runMigrations(t, database)
	resetTables(t, database)

	return database
}

func runMigrations(t *testing.T, database *db.DB) {
	t.Helper()

	migrationPath := filepath.Join("..", "db", "migrations", "000001_init.up.sql")
	sqlBytes, err := os.ReadFile(migrationPath) // #nosec G304
	if err != nil {
		t.Fatalf("failed to read migration file: %v", err)
	}

	_, err = database.ExecContext(context.Background(), string(sqlBytes))
	if err != nil {
		t.Logf("migration execution completed (tables may already exist)")
	}
}

func cleanupTestDB(t *testing.T, database *db.DB) {
	t.Helper()
	if err := database.Close(); err != nil {
		log.Printf("failed to close test database: %v", err)
	}
}

func resetTables(t *testing.T, database *db.DB) {
	t.Helper()

	tables := []string{"transactions", "payment_requests", "idempotency_keys", "balances", "cards"}
	for _, table := range tables {
		_, err := database.ExecContext(context.Background(), "TRUNCATE TABLE "+table+" CASCADE")
		if err != nil {
			t.Fatalf("failed to truncate table %s: %v", table, err)
		}
	}

	if _, err := database.ExecContext(context.Background(), "DELETE FROM accounts"); err != nil {
		t.Fatalf("failed to reset accounts: %v", err)
	}
}

func seedAccount(t *testing.T, database *db.DB, email, phone string) *models.Account {
	t.Helper()

	now := time.Now().UTC()
	account := &models.Account{
		ID:           uuid.New(),
		CustomerName: "Nguyen Van A",
		Email:        email,
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMye",
		Role:         models.RoleCustomer,
		PhoneNumber:  phone,
		Level:        models.LevelSilver,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	require.NoError(t, NewAccountRepository(database).Create(context.Background(), account))
	return account
}

func seedCard(t *testing.T, database *db.DB, accountID uuid.UUID, cardNumber string, cardType models.CardType) *models.Card {
	t.Helper()

	card := &models.Card{
		ID:         uuid.New(),
		CardNumber: cardNumber,
		AccountID:  accountID,
		Type:       cardType,
		Status:     models.CardStatusActive,
		ExpiryDate: time.Now().AddDate(5, 0, 0),
		CreatedAt:  time.Now().UTC(),
	}

	require.NoError(t, NewCardRepository(database).Create(context.Background(), card))
	return card
}
