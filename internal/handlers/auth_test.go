package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vietbank/banking-api/internal/models"
	"github.com/vietbank/banking-api/internal/service"
	"github.com/vietbank/banking-api/internal/service/mocks"
)

func postJSON(t *testing.T, path string, body any) *http.Request {
	t.Helper()

	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)
	return httptest.NewRequest(http.MethodPost, path, bytes.NewReader(jsonBody))
}

func TestRegister_Success(t *testing.T) {
	mockAuth := mocks.NewMockAuthenticator(t)
	handler := NewHandler(mockAuth, nil, nil, nil, nil, nil, nil, testLogger())

	mockAuth.On("Register", mock.Anything, "Nguyen Van A", "nguyenvana@example.com", "s3cret-pass", "+84901234567").
		Return(&models.Account{
			ID:           uuid.New(),
			CustomerName: "Nguyen Van A",
			Email:        "nguyenvana@example.com",
			PhoneNumber:  "+84901234567",
			Role:         models.RoleCustomer,
			Level:        models.LevelSilver,
			CreatedAt:    time.Now(),
		}, nil)

	req := postJSON(t, "/api/v1/auth/register", map[string]any{
		"full_name":    "Nguyen Van A",
		"email":        "nguyenvana@example.com",
		"phone_number": "+84901234567",
		"password":     "s3cret-pass",
	})
	rec := httptest.NewRecorder()

	handler.Register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Nguyen Van A", body["full_name"])
	assert.Equal(t, "Customer", body["role"])
	assert.Equal(t, "SILVER", body["level"])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	mockAuth := mocks.NewMockAuthenticator(t)
	handler := NewHandler(mockAuth, nil, nil, nil, nil, nil, nil, testLogger())

	mockAuth.On("Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &service.ServiceError{Code: service.ErrCodeEmailTaken, Message: "email already registered"})

	req := postJSON(t, "/api/v1/auth/register", map[string]any{
		"full_name":    "Nguyen Van A",
		"email":        "taken@example.com",
		"phone_number": "+84901234567",
		"password":     "s3cret-pass",
	})
	rec := httptest.NewRecorder()

	handler.Register(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "email_taken", body["error"])
}

func TestLogin_Success(t *testing.T) {
	mockAuth := mocks.NewMockAuthenticator(t)
	handler := NewHandler(mockAuth, nil, nil, nil, nil, nil, nil, testLogger())

	mockAuth.On("Login", mock.Anything, "nguyenvana@example.com", "s3cret-pass").
		Return("signed.jwt.token", &models.Account{
			ID:           uuid.New(),
			CustomerName: "Nguyen Van A",
			Email:        "nguyenvana@example.com",
			Role:         models.RoleCustomer,
			Level:        models.LevelSilver,
		}, nil)

	req := postJSON(t, "/api/v1/auth/login", map[string]any{
		"email":    "nguyenvana@example.com",
		"password": "s3cret-pass",
	})
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "signed.jwt.token", body["token"])

	account := body["account"].(map[string]any)
	assert.Equal(t, "nguyenvana@example.com", account["email"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	mockAuth := mocks.NewMockAuthenticator(t)
	handler := NewHandler(mockAuth, nil, nil, nil, nil, nil, nil, testLogger())

	mockAuth.On("Login", mock.Anything, "nguyenvana@example.com", "wrong-pass").
		Return("", nil, &service.ServiceError{Code: service.ErrCodeInvalidCredentials, Message: "invalid email or password"})

	req := postJSON(t, "/api/v1/auth/login", map[string]any{
		"email":    "nguyenvana@example.com",
		"password": "wrong-pass",
	})
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "invalid_credentials", body["error"])
}

func TestRegister_MalformedBody(t *testing.T) {
	handler := NewHandler(nil, nil, nil, nil, nil, nil, nil, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader([]byte("{broken")))
	rec := httptest.NewRecorder()

	handler.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
