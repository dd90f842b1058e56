package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/vietbank/banking-api/internal/middleware"
	"github.com/vietbank/banking-api/internal/models"
	"github.com/vietbank/banking-api/internal/service"
)

type createPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
}

// CreatePayment handles POST /api/v1/payments
//
// Customers raise payment requests against their own account.
func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing credentials")
		return
	}

	var req createPaymentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	payment, err := h.paymentService.Create(r.Context(), claims.AccountID, req.Amount, req.Currency, req.Description)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toPaymentResponse(payment))
}

// ListPayments handles GET /api/v1/payments
func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing credentials")
		return
	}

	payments, err := h.paymentService.ListByAccount(r.Context(), claims.AccountID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toPaymentResponses(payments))
}

// GetPayment handles GET /api/v1/payments/{paymentID}
func (h *Handler) GetPayment(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing credentials")
		return
	}

	paymentID, ok := urlParamUUID(w, r, "paymentID")
	if !ok {
		return
	}

	payment, err := h.paymentService.GetByID(r.Context(), paymentID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	// Customers only see their own payment requests.
	if claims.Role != string(models.RoleAdmin) && payment.AccountID != claims.AccountID {
		respondError(w, http.StatusNotFound, service.ErrCodePaymentNotFound, "payment request not found")
		return
	}

	respondJSON(w, http.StatusOK, toPaymentResponse(payment))
}

// PayPayment handles POST /api/v1/payments/{paymentID}/pay
func (h *Handler) PayPayment(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing credentials")
		return
	}

	paymentID, ok := urlParamUUID(w, r, "paymentID")
	if !ok {
		return
	}

	payment, err := h.paymentService.Settle(r.Context(), paymentID, claims.AccountID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toPaymentResponse(payment))
}

// CancelPayment handles POST /api/v1/payments/{paymentID}/cancel
func (h *Handler) CancelPayment(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing credentials")
		return
	}

	paymentID, ok := urlParamUUID(w, r, "paymentID")
	if !ok {
		return
	}

	isAdmin := claims.Role == string(models.RoleAdmin)
	payment, err := h.paymentService.Cancel(r.Context(), paymentID, claims.AccountID, isAdmin)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toPaymentResponse(payment))
}
