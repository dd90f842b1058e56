package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/vietbank/banking-api/internal/config"
	"github.com/vietbank/banking-api/internal/db"
	"github.com/vietbank/banking-api/internal/middleware"
	"github.com/vietbank/banking-api/internal/notify"
	"github.com/vietbank/banking-api/internal/repository"
	"github.com/vietbank/banking-api/internal/service"
)

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(
	database *db.DB,
	cfg *config.Config,
	notifier *notify.Notifier,
	logger *slog.Logger,
) http.Handler {
	authService := service.NewAuthService(database, cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)
	accountService := service.NewAccountService(database)
	cardService := service.NewCardService(database, cfg.App.CardValidityYears)
	transferService := service.NewTransferService(database, logger)
	paymentService := service.NewPaymentService(database, notifier, logger)
	adminService := service.NewAdminService(database, logger)

	handler := NewHandler(
		authService,
		accountService,
		cardService,
		transferService,
		paymentService,
		adminService,
		database,
		logger,
	)

	authenticate := middleware.Authenticate(cfg.Auth.JWTSecret)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)

	idempotencyRepo := repository.NewIdempotencyRepository(database)
	r.Use(middleware.Idempotency(idempotencyRepo, logger))

	r.Get("/health", handler.GetHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", handler.Register)
			r.Post("/login", handler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			r.Route("/accounts/me", func(r chi.Router) {
				r.Get("/", handler.GetProfile)
				r.Put("/", handler.UpdateProfile)
				r.Delete("/", handler.DeleteProfile)
				r.Get("/balance", handler.GetBalance)
				r.Get("/transactions", handler.ListMyTransactions)
			})

			r.Route("/cards", func(r chi.Router) {
				r.Post("/", handler.CreateCard)
				r.Get("/", handler.ListCards)
				r.Delete("/{cardID}", handler.DeleteCard)
			})

			r.Post("/transfers", handler.CreateTransfer)

			r.Route("/payments", func(r chi.Router) {
				r.Post("/", handler.CreatePayment)
				r.Get("/", handler.ListPayments)
				r.Route("/{paymentID}", func(r chi.Router) {
					r.Get("/", handler.GetPayment)
					r.Post("/pay", handler.PayPayment)
					r.Post("/cancel", handler.CancelPayment)
				})
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Get("/stats", handler.AdminGetStats)

				r.Route("/accounts", func(r chi.Router) {
					r.Get("/", handler.AdminListAccounts)
					r.Post("/", handler.AdminCreateUser)
					r.Route("/{accountID}", func(r chi.Router) {
						r.Delete("/", handler.AdminDeleteAccount)
						r.Put("/role", handler.AdminUpdateRole)
						r.Put("/level", handler.AdminUpdateLevel)
						r.Get("/cards", handler.AdminListAccountCards)
						r.Get("/transactions", handler.AdminListAccountTransactions)
					})
				})

				r.Route("/cards/{cardID}", func(r chi.Router) {
					r.Put("/status", handler.AdminUpdateCardStatus)
					r.Delete("/", handler.AdminDeleteCard)
				})

				r.Post("/deposits", handler.AdminDeposit)

				r.Route("/payments", func(r chi.Router) {
					r.Post("/", handler.AdminCreatePayment)
					r.Get("/", handler.AdminListPayments)
				})
			})
		})
	})

	return r
}
