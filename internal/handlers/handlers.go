// Package handlers implements HTTP handlers for the banking API.
package handlers

import (
	"log/slog"

	"github.com/vietbank/banking-api/internal/service"
)

// Handler carries the service dependencies for all endpoints
type Handler struct {
	authService     service.Authenticator
	accountService  service.AccountManager
	cardService     service.CardManager
	transferService service.Transferer
	paymentService  service.PaymentManager
	adminService    service.Administrator
	healthChecker   service.HealthChecker
	logger          *slog.Logger
}

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(
	authService service.Authenticator,
	accountService service.AccountManager,
	cardService service.CardManager,
	transferService service.Transferer,
	paymentService service.PaymentManager,
	adminService service.Administrator,
	healthChecker service.HealthChecker,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		authService:     authService,
		accountService:  accountService,
		cardService:     cardService,
		transferService: transferService,
		paymentService:  paymentService,
		adminService:    adminService,
		healthChecker:   healthChecker,
		logger:          logger,
	}
}
