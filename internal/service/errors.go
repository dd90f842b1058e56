package service

import "fmt"

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeAccountNotFound    = "account_not_found"
	ErrCodeCardNotFound       = "card_not_found"
	ErrCodeBalanceNotFound    = "balance_not_found"
	ErrCodePaymentNotFound    = "payment_not_found"
	ErrCodeInvalidAmount      = "invalid_amount"
	ErrCodeInvalidCurrency    = "invalid_currency"
	ErrCodeSelfTransfer       = "self_transfer_not_allowed"
	ErrCodeAccountMismatch    = "account_mismatch"
	ErrCodeInvalidState       = "invalid_state"
	ErrCodeInsufficientFunds  = "insufficient_funds"
	ErrCodeEmailTaken         = "email_taken"
	ErrCodePhoneTaken         = "phone_taken"
	ErrCodeInvalidCredentials = "invalid_credentials"
	ErrCodeInvalidRole        = "invalid_role"
	ErrCodeInvalidLevel       = "invalid_level"
	ErrCodeInvalidCardType    = "invalid_card_type"
	ErrCodeInvalidCardStatus  = "invalid_card_status"
	ErrCodeAccountHasCards    = "account_has_cards"
	ErrCodeBalanceNotZero     = "balance_not_zero"
	ErrCodeNotCardOwner       = "not_card_owner"
	ErrCodeInternalError      = "internal_error"
)
