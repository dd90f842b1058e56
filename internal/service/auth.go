package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vietbank/banking-api/internal/db"
	"github.com/vietbank/banking-api/internal/models"
	"github.com/vietbank/banking-api/internal/repository"
	"github.com/vietbank/banking-api/internal/security"
)

// AuthService handles registration and login
type AuthService struct {
	db          *db.DB
	jwtSecret   string
	tokenExpiry time.Duration
}

// NewAuthService creates a new AuthService
func NewAuthService(database *db.DB, jwtSecret string, tokenExpiry time.Duration) *AuthService {
	return &AuthService{
		db:          database,
		jwtSecret:   jwtSecret,
		tokenExpiry: tokenExpiry,
	}
}

// Register creates a new customer account. Self-registration always
// gets the Customer role; admins are created through the admin flow.
func (s *AuthService) Register(ctx context.Context, name, email, password, phone string) (*models.Account, error) {
	return s.performRegister(ctx, repository.NewAccountRepository(s.db), name, email, password, phone)
}

// performRegister contains the core registration business logic
func (s *AuthService) performRegister(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	name, email, password, phone string,
) (*models.Account, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if name == "" || email == "" || password == "" || phone == "" {
		return nil, &ServiceError{
			Code:    ErrCodeInvalidCredentials,
			Message: "name, email, password and phone are required",
		}
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to hash password: %v", err),
		}
	}

	now := time.Now()
	account := &models.Account{
		ID:           uuid.New(),
		CustomerName: name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleCustomer,
		PhoneNumber:  phone,
		Level:        models.LevelSilver,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := accountRepo.Create(ctx, account); err != nil {
		switch {
		case errors.Is(err, models.ErrDuplicateEmail):
			return nil, &ServiceError{
				Code:    ErrCodeEmailTaken,
				Message: "an account with this email already exists",
			}
		case errors.Is(err, models.ErrDuplicatePhone):
			return nil, &ServiceError{
				Code:    ErrCodePhoneTaken,
				Message: "an account with this phone number already exists",
			}
		}
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to create account: %v", err),
		}
	}

	return account, nil
}

// Login verifies credentials and returns a signed token for the account
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.Account, error) {
	return s.performLogin(ctx, repository.NewAccountRepository(s.db), email, password)
}

// performLogin contains the core credential check and token issuance
func (s *AuthService) performLogin(
	ctx context.Context,
	accountRepo repository.AccountRepository,
	email, password string,
) (string, *models.Account, error) {
	account, err := accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, &ServiceError{
			Code:    ErrCodeInvalidCredentials,
			Message: "invalid email or password",
		}
	}
	if !security.CheckPassword(account.PasswordHash, password) {
		return "", nil, &ServiceError{
			Code:    ErrCodeInvalidCredentials,
			Message: "invalid email or password",
		}
	}

	token, err := security.GenerateToken(s.jwtSecret, account.ID, account.Email, string(account.Role), s.tokenExpiry)
	if err != nil {
		return "", nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: fmt.Sprintf("failed to sign token: %v", err),
		}
	}

	return token, account, nil
}
