//nolint:errcheck // unchecked errors are acceptable in test files
package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vietbank/banking-api/internal/config"
	"github.com/vietbank/banking-api/internal/db"
	"github.com/vietbank/banking-api/internal/handlers"
	"github.com/vietbank/banking-api/internal/notify"
)

// TestServer wraps the HTTP test server and database for integration tests.
type TestServer struct {
	Server   *httptest.Server
	Database *db.DB
	t        *testing.T
}

// SetupTest creates a new test server with a clean database state.
func SetupTest(t *testing.T) *TestServer {
	t.Helper()

	cfg, err := config.Load()
	require.NoError(t, err, "failed to load config")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	database, err := db.Connect(context.Background(), &cfg.Database, logger)
	require.NoError(t, err, "failed to connect to database")

	resetTestData(t, database)

	notifier := notify.NewNotifier(notify.NewLogSink(logger), logger)
	router := handlers.NewRouter(database, cfg, notifier, logger)
	server := httptest.NewServer(router)

	return &TestServer{
		Server:   server,
		Database: database,
		t:        t,
	}
}

// Close shuts down the test server and database connection.
func (ts *TestServer) Close() {
	ts.Server.Close()
	_ = ts.Database.Close()
}

// URL returns the full URL for a given path.
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}

func resetTestData(t *testing.T, database *db.DB) {
	t.Helper()

	_, err := database.ExecContext(context.Background(), `
		TRUNCATE TABLE transactions CASCADE;
		TRUNCATE TABLE payment_requests CASCADE;
		TRUNCATE TABLE idempotency_keys CASCADE;
		TRUNCATE TABLE balances CASCADE;
		TRUNCATE TABLE cards CASCADE;
		DELETE FROM accounts;
	`)
	require.NoError(t, err, "failed to reset test data")
}

// do sends a JSON request, attaching the bearer token and idempotency key
// when provided.
func (ts *TestServer) do(t *testing.T, method, path, token, idempotencyKey string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL(path), reader)
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	return resp
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	return body
}

func decodeJSONList(t *testing.T, resp *http.Response, v any) {
	t.Helper()

	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	resp.Body.Close()
}

// Register creates a customer account.
func (ts *TestServer) Register(t *testing.T, fullName, email, phone, password string) *http.Response {
	t.Helper()

	return ts.do(t, http.MethodPost, "/api/v1/auth/register", "", "", map[string]any{
		"full_name":    fullName,
		"email":        email,
		"phone_number": phone,
		"password":     password,
	})
}

// LoginToken logs in and returns the bearer token.
func (ts *TestServer) LoginToken(t *testing.T, email, password string) string {
	t.Helper()

	resp := ts.do(t, http.MethodPost, "/api/v1/auth/login", "", "", map[string]any{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "login failed for %s", email)

	body := decodeJSON(t, resp)
	token, ok := body["token"].(string)
	require.True(t, ok, "login response missing token")
	return token
}

// PromoteToAdmin flips an account's role directly in the database. Admin
// accounts are provisioned out of band, so tests do the same.
func (ts *TestServer) PromoteToAdmin(t *testing.T, email string) {
	t.Helper()

	_, err := ts.Database.ExecContext(context.Background(),
		`UPDATE accounts SET role = 'Admin' WHERE email = $1`, email)
	require.NoError(t, err, "failed to promote account to admin")
}

// NewCustomer registers a customer and returns their token.
func (ts *TestServer) NewCustomer(t *testing.T, fullName, email, phone string) string {
	t.Helper()

	resp := ts.Register(t, fullName, email, phone, "s3cret-pass")
	require.Equal(t, http.StatusCreated, resp.StatusCode, "registration failed for %s", email)
	resp.Body.Close()

	return ts.LoginToken(t, email, "s3cret-pass")
}

// NewAdmin registers an account, promotes it, and returns a fresh token
// carrying the admin role.
func (ts *TestServer) NewAdmin(t *testing.T, email, phone string) string {
	t.Helper()

	resp := ts.Register(t, "Bank Operator", email, phone, "s3cret-pass")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	ts.PromoteToAdmin(t, email)
	return ts.LoginToken(t, email, "s3cret-pass")
}

// CreateCard issues a card for the authenticated account and returns the
// response body.
func (ts *TestServer) CreateCard(t *testing.T, token, cardType string) map[string]any {
	t.Helper()

	resp := ts.do(t, http.MethodPost, "/api/v1/cards", token, "", map[string]any{
		"card_type": cardType,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "card creation failed")
	return decodeJSON(t, resp)
}

// Deposit credits funds onto a DEBIT card through the admin endpoint.
func (ts *TestServer) Deposit(t *testing.T, adminToken, cardID, amount, idempotencyKey string) *http.Response {
	t.Helper()

	return ts.do(t, http.MethodPost, "/api/v1/admin/deposits", adminToken, idempotencyKey, map[string]any{
		"card_id": cardID,
		"amount":  amount,
	})
}

// Transfer moves funds between two cards.
func (ts *TestServer) Transfer(t *testing.T, token, sourceCard, destCard, amount, idempotencyKey string) *http.Response {
	t.Helper()

	return ts.do(t, http.MethodPost, "/api/v1/transfers", token, idempotencyKey, map[string]any{
		"source_card_number":      sourceCard,
		"destination_card_number": destCard,
		"amount":                  amount,
	})
}

// CreatePayment opens a payment request for the authenticated account.
func (ts *TestServer) CreatePayment(t *testing.T, token, amount, currency, description string) *http.Response {
	t.Helper()

	return ts.do(t, http.MethodPost, "/api/v1/payments", token, "", map[string]any{
		"amount":      amount,
		"currency":    currency,
		"description": description,
	})
}

// PayPayment settles a pending payment request.
func (ts *TestServer) PayPayment(t *testing.T, token, paymentID, idempotencyKey string) *http.Response {
	t.Helper()

	return ts.do(t, http.MethodPost, "/api/v1/payments/"+paymentID+"/pay", token, idempotencyKey, nil)
}

// CancelPayment cancels a pending payment request.
func (ts *TestServer) CancelPayment(t *testing.T, token, paymentID string) *http.Response {
	t.Helper()

	return ts.do(t, http.MethodPost, "/api/v1/payments/"+paymentID+"/cancel", token, "", nil)
}

// GetBalance fetches the authenticated account's balance.
func (ts *TestServer) GetBalance(t *testing.T, token string) map[string]any {
	t.Helper()

	resp := ts.do(t, http.MethodGet, "/api/v1/accounts/me/balance", token, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, "balance fetch failed")
	return decodeJSON(t, resp)
}
