package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vietbank/banking-api/internal/models"
	"github.com/vietbank/banking-api/internal/service"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type accountResponse struct {
	ID          uuid.UUID    `json:"id"`
	FullName    string       `json:"full_name"`
	Email       string       `json:"email"`
	PhoneNumber string       `json:"phone_number"`
	Role        models.Role  `json:"role"`
	Level       models.Level `json:"level"`
	CreatedAt   time.Time    `json:"created_at"`
}

type cardResponse struct {
	ID          uuid.UUID         `json:"id"`
	CardNumber  string            `json:"card_number"`
	AccountID   uuid.UUID         `json:"account_id"`
	Type        models.CardType   `json:"type"`
	Status      models.CardStatus `json:"status"`
	CreditLimit *decimal.Decimal  `json:"credit_limit,omitempty"`
	ExpiryDate  time.Time         `json:"expiry_date"`
	CreatedAt   time.Time         `json:"created_at"`
}

type balanceResponse struct {
	AccountID uuid.UUID       `json:"account_id"`
	Available decimal.Decimal `json:"available_balance"`
	Held      decimal.Decimal `json:"held_balance"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type transactionResponse struct {
	ID                uuid.UUID                `json:"id"`
	AccountID         uuid.UUID                `json:"account_id"`
	Type              models.TransactionType   `json:"type"`
	Status            models.TransactionStatus `json:"status"`
	Amount            decimal.Decimal          `json:"amount"`
	SendingCardNumber string                   `json:"card_send"`
	ReceiptCardNumber string                   `json:"card_receipt"`
	CreatedAt         time.Time                `json:"created_at"`
}

type paymentResponse struct {
	ID          uuid.UUID            `json:"id"`
	AccountID   uuid.UUID            `json:"account_id"`
	Amount      decimal.Decimal      `json:"amount"`
	Currency    string               `json:"currency"`
	Status      models.PaymentStatus `json:"status"`
	Description string               `json:"description"`
	PaidAt      *time.Time           `json:"paid_at,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

func toAccountResponse(a *models.Account) accountResponse {
	return accountResponse{
		ID:          a.ID,
		FullName:    a.CustomerName,
		Email:       a.Email,
		PhoneNumber: a.PhoneNumber,
		Role:        a.Role,
		Level:       a.Level,
		CreatedAt:   a.CreatedAt,
	}
}

func toCardResponse(c *models.Card) cardResponse {
	return cardResponse{
		ID:          c.ID,
		CardNumber:  c.CardNumber,
		AccountID:   c.AccountID,
		Type:        c.Type,
		Status:      c.Status,
		CreditLimit: c.CreditLimit,
		ExpiryDate:  c.ExpiryDate,
		CreatedAt:   c.CreatedAt,
	}
}

func toBalanceResponse(b *models.Balance) balanceResponse {
	return balanceResponse{
		AccountID: b.AccountID,
		Available: b.Available,
		Held:      b.Held,
		UpdatedAt: b.UpdatedAt,
	}
}

func toTransactionResponse(t *models.Transaction) transactionResponse {
	return transactionResponse{
		ID:                t.ID,
		AccountID:         t.AccountID,
		Type:              t.Type,
		Status:            t.Status,
		Amount:            t.Amount,
		SendingCardNumber: t.SendingCardNumber,
		ReceiptCardNumber: t.ReceiptCardNumber,
		CreatedAt:         t.CreatedAt,
	}
}

func toPaymentResponse(p *models.PaymentRequest) paymentResponse {
	return paymentResponse{
		ID:          p.ID,
		AccountID:   p.AccountID,
		Amount:      p.Amount,
		Currency:    p.Currency,
		Status:      p.Status,
		Description: p.Description,
		PaidAt:      p.PaidAt,
		CreatedAt:   p.CreatedAt,
	}
}

func toCardResponses(cards []*models.Card) []cardResponse {
	out := make([]cardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, toCardResponse(c))
	}
	return out
}

func toTransactionResponses(txns []*models.Transaction) []transactionResponse {
	out := make([]transactionResponse, 0, len(txns))
	for _, t := range txns {
		out = append(out, toTransactionResponse(t))
	}
	return out
}

func toPaymentResponses(payments []*models.PaymentRequest) []paymentResponse {
	out := make([]paymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, toPaymentResponse(p))
	}
	return out
}

func toAccountResponses(accounts []*models.Account) []accountResponse {
	out := make([]accountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAccountResponse(a))
	}
	return out
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // Best effort response writing
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, errorResponse{Error: code, Message: message})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "malformed request body")
		return false
	}
	return true
}

func urlParamUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// statusForServiceError maps service error codes to HTTP status codes
func statusForServiceError(code string) int {
	switch code {
	case service.ErrCodeAccountNotFound,
		service.ErrCodeCardNotFound,
		service.ErrCodeBalanceNotFound,
		service.ErrCodePaymentNotFound:
		return http.StatusNotFound
	case service.ErrCodeInsufficientFunds:
		return http.StatusPaymentRequired
	case service.ErrCodeInvalidCredentials:
		return http.StatusUnauthorized
	case service.ErrCodeAccountMismatch,
		service.ErrCodeNotCardOwner:
		return http.StatusForbidden
	case service.ErrCodeInvalidState,
		service.ErrCodeEmailTaken,
		service.ErrCodePhoneTaken,
		service.ErrCodeAccountHasCards,
		service.ErrCodeBalanceNotZero:
		return http.StatusConflict
	case service.ErrCodeInvalidAmount,
		service.ErrCodeInvalidCurrency,
		service.ErrCodeSelfTransfer,
		service.ErrCodeInvalidRole,
		service.ErrCodeInvalidLevel,
		service.ErrCodeInvalidCardType,
		service.ErrCodeInvalidCardStatus:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError maps a service error to an HTTP error response
func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	var svcErr *service.ServiceError
	if !errors.As(err, &svcErr) {
		h.logger.Error("unexpected error", "error", err)
		respondError(w, http.StatusInternalServerError, service.ErrCodeInternalError, "internal error")
		return
	}

	status := statusForServiceError(svcErr.Code)
	if status == http.StatusInternalServerError {
		h.logger.Error("internal service error", "code", svcErr.Code, "error", err)
		respondError(w, status, service.ErrCodeInternalError, "internal error")
		return
	}

	respondError(w, status, svcErr.Code, svcErr.Message)
}
