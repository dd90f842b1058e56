package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/vietbank/banking-api/internal/middleware"
)

type transferRequest struct {
	SourceCardNumber      string          `json:"source_card_number"`
	DestinationCardNumber string          `json:"destination_card_number"`
	Amount                decimal.Decimal `json:"amount"`
}

type transferResponse struct {
	Transaction      transactionResponse `json:"transaction"`
	AvailableBalance decimal.Decimal     `json:"available_balance"`
}

// CreateTransfer handles POST /api/v1/transfers
func (h *Handler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing credentials")
		return
	}

	var req transferRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.transferService.Transfer(
		r.Context(),
		claims.AccountID,
		req.SourceCardNumber,
		req.DestinationCardNumber,
		req.Amount,
	)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, transferResponse{
		Transaction:      toTransactionResponse(result.Transaction),
		AvailableBalance: result.SourceAvailable,
	})
}
