package handlers

import (
	"net/http"

	"github.com/vietbank/banking-api/internal/middleware"
)

type updateContactRequest struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// GetProfile handles GET /api/v1/accounts/me
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing credentials")
		return
	}

	account, err := h.accountService.GetProfile(r.Context(), claims.AccountID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toAccountResponse(account))
}

// UpdateProfile handles PUT /api/v1/accounts/me
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing credentials")
		return
	}

	var req updateContactRequest
	if !decodeBody(w, r, &req) {
		return
	}

	account, err := h.accountService.UpdateContact(r.Context(), claims.AccountID, req.FullName, req.Email, req.PhoneNumber)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toAccountResponse(account))
}

// DeleteProfile handles DELETE /api/v1/accounts/me
func (h *Handler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing credentials")
		return
	}

	if err := h.accountService.DeleteAccount(r.Context(), claims.AccountID); err != nil {
		h.respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetBalance handles GET /api/v1/accounts/me/balance
func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing credentials")
		return
	}

	balance, err := h.accountService.GetBalance(r.Context(), claims.AccountID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toBalanceResponse(balance))
}

// ListMyTransactions handles GET /api/v1/accounts/me/transactions
func (h *Handler) ListMyTransactions(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing credentials")
		return
	}

	transactions, err := h.accountService.ListTransactions(r.Context(), claims.AccountID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toTransactionResponses(transactions))
}
