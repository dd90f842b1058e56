package service

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidateAmount checks if amount is valid (positive)
func ValidateAmount(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return fmt.Errorf("invalid amount: must be greater than 0")
	}

	return nil
}

// ValidateCurrency checks if the currency code is a 3-letter uppercase code
func ValidateCurrency(currency string) error {
	if len(currency) != 3 {
		return fmt.Errorf("invalid currency: must be a 3-letter code")
	}

	for _, r := range currency {
		if r < 'A' || r > 'Z' {
			return fmt.Errorf("invalid currency: must contain only uppercase letters")
		}
	}

	return nil
}

// ValidateCardNumber checks the format of a system-generated card number
func ValidateCardNumber(cardNumber string) error {
	if len(cardNumber) != 12 {
		return fmt.Errorf("invalid card number: must be 12 digits")
	}

	for _, r := range cardNumber {
		if r < '0' || r > '9' {
			return fmt.Errorf("invalid card number: must contain only digits")
		}
	}

	return nil
}
