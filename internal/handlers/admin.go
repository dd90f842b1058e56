package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vietbank/banking-api/internal/models"
)

type adminCreateUserRequest struct {
	FullName    string      `json:"full_name"`
	Email       string      `json:"email"`
	PhoneNumber string      `json:"phone_number"`
	Password    string      `json:"password"`
	Role        models.Role `json:"role"`
}

type updateRoleRequest struct {
	Role models.Role `json:"role"`
}

type updateLevelRequest struct {
	Level models.Level `json:"level"`
}

type updateCardStatusRequest struct {
	Status models.CardStatus `json:"status"`
}

type depositRequest struct {
	CardID uuid.UUID       `json:"card_id"`
	Amount decimal.Decimal `json:"amount"`
}

type adminCreatePaymentRequest struct {
	AccountID   uuid.UUID       `json:"account_id"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
}

// AdminGetStats handles GET /api/v1/admin/stats
func (h *Handler) AdminGetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminService.GetStats(r.Context())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// AdminListAccounts handles GET /api/v1/admin/accounts
//
// Optional query parameters email and name narrow the result.
func (h *Handler) AdminListAccounts(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	name := r.URL.Query().Get("name")

	accounts, err := h.adminService.SearchAccounts(r.Context(), email, name)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toAccountResponses(accounts))
}

// AdminCreateUser handles POST /api/v1/admin/accounts
func (h *Handler) AdminCreateUser(w http.ResponseWriter, r *http.Request) {
	var req adminCreateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	account, err := h.adminService.CreateUser(r.Context(), req.FullName, req.Email, req.PhoneNumber, req.Password, req.Role)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toAccountResponse(account))
}

// AdminDeleteAccount handles DELETE /api/v1/admin/accounts/{accountID}
func (h *Handler) AdminDeleteAccount(w http.ResponseWriter, r *http.Request) {
	accountID, ok := urlParamUUID(w, r, "accountID")
	if !ok {
		return
	}

	if err := h.adminService.DeleteAccount(r.Context(), accountID); err != nil {
		h.respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AdminUpdateRole handles PUT /api/v1/admin/accounts/{accountID}/role
func (h *Handler) AdminUpdateRole(w http.ResponseWriter, r *http.Request) {
	accountID, ok := urlParamUUID(w, r, "accountID")
	if !ok {
		return
	}

	var req updateRoleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.adminService.UpdateRole(r.Context(), accountID, req.Role); err != nil {
		h.respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AdminUpdateLevel handles PUT /api/v1/admin/accounts/{accountID}/level
func (h *Handler) AdminUpdateLevel(w http.ResponseWriter, r *http.Request) {
	accountID, ok := urlParamUUID(w, r, "accountID")
	if !ok {
		return
	}

	var req updateLevelRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.adminService.UpdateLevel(r.Context(), accountID, req.Level); err != nil {
		h.respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AdminListAccountCards handles GET /api/v1/admin/accounts/{accountID}/cards
func (h *Handler) AdminListAccountCards(w http.ResponseWriter, r *http.Request) {
	accountID, ok := urlParamUUID(w, r, "accountID")
	if !ok {
		return
	}

	cards, err := h.adminService.ListAccountCards(r.Context(), accountID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toCardResponses(cards))
}

// AdminListAccountTransactions handles GET /api/v1/admin/accounts/{accountID}/transactions
func (h *Handler) AdminListAccountTransactions(w http.ResponseWriter, r *http.Request) {
	accountID, ok := urlParamUUID(w, r, "accountID")
	if !ok {
		return
	}

	transactions, err := h.adminService.ListAccountTransactions(r.Context(), accountID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toTransactionResponses(transactions))
}

// AdminUpdateCardStatus handles PUT /api/v1/admin/cards/{cardID}/status
func (h *Handler) AdminUpdateCardStatus(w http.ResponseWriter, r *http.Request) {
	cardID, ok := urlParamUUID(w, r, "cardID")
	if !ok {
		return
	}

	var req updateCardStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.adminService.UpdateCardStatus(r.Context(), cardID, req.Status); err != nil {
		h.respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AdminDeleteCard handles DELETE /api/v1/admin/cards/{cardID}
func (h *Handler) AdminDeleteCard(w http.ResponseWriter, r *http.Request) {
	cardID, ok := urlParamUUID(w, r, "cardID")
	if !ok {
		return
	}

	if err := h.adminService.DeleteCard(r.Context(), cardID); err != nil {
		h.respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AdminDeposit handles POST /api/v1/admin/deposits
func (h *Handler) AdminDeposit(w http.ResponseWriter, r *http.Request) {
	var req depositRequest
	if !decodeBody(w, r, &req) {
		return
	}

	balance, err := h.adminService.Deposit(r.Context(), req.CardID, req.Amount)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toBalanceResponse(balance))
}

// AdminCreatePayment handles POST /api/v1/admin/payments
//
// Admins raise payment requests against any account.
func (h *Handler) AdminCreatePayment(w http.ResponseWriter, r *http.Request) {
	var req adminCreatePaymentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	payment, err := h.paymentService.Create(r.Context(), req.AccountID, req.Amount, req.Currency, req.Description)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toPaymentResponse(payment))
}

// AdminListPayments handles GET /api/v1/admin/payments
//
// With status=PENDING only unsettled requests are returned.
func (h *Handler) AdminListPayments(w http.ResponseWriter, r *http.Request) {
	var (
		payments []*models.PaymentRequest
		err      error
	)
	if r.URL.Query().Get("status") == string(models.PaymentStatusPending) {
		payments, err = h.paymentService.ListPending(r.Context())
	} else {
		payments, err = h.paymentService.ListAll(r.Context())
	}
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toPaymentResponses(payments))
}
