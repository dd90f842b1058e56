package handlers

import (
	"net/http"

	"github.com/vietbank/banking-api/internal/middleware"
	"github.com/vietbank/banking-api/internal/models"
)

type createCardRequest struct {
	CardType models.CardType `json:"card_type"`
}

// CreateCard handles POST /api/v1/cards
func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing credentials")
		return
	}

	var req createCardRequest
	if !decodeBody(w, r, &req) {
		return
	}

	card, err := h.cardService.CreateCard(r.Context(), claims.AccountID, req.CardType)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toCardResponse(card))
}

// ListCards handles GET /api/v1/cards
func (h *Handler) ListCards(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing credentials")
		return
	}

	cards, err := h.cardService.ListCards(r.Context(), claims.AccountID)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toCardResponses(cards))
}

// DeleteCard handles DELETE /api/v1/cards/{cardID}
func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing credentials")
		return
	}

	cardID, ok := urlParamUUID(w, r, "cardID")
	if !ok {
		return
	}

	isAdmin := claims.Role == string(models.RoleAdmin)
	if err := h.cardService.DeleteCard(r.Context(), claims.AccountID, cardID, isAdmin); err != nil {
		h.respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
