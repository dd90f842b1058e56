package models

import "errors"

// Domain errors that can be returned by repositories
var (
	// ErrNotFound indicates the requested entity was not found
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail indicates an account with the same email already exists
	ErrDuplicateEmail = errors.New("duplicate email")

	// ErrDuplicatePhone indicates an account with the same phone number already exists
	ErrDuplicatePhone = errors.New("duplicate phone number")

	// ErrDuplicateCardNumber indicates a card with the same number already exists
	ErrDuplicateCardNumber = errors.New("duplicate card number")
)
