package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound     = errors.New("account not found")
	ErrInsufficientBalance = errors.New("insufficient balance")

	// Charge errors
	ErrChargeNotFound          = errors.New("charge not found")
	ErrInvalidAmount           = errors.New("amount must be positive")
	ErrInvalidCurrency         = errors.New("invalid currency code")
	ErrInvalidIdempotencyKey   = errors.New("idempotency key must be a valid UUID")
	ErrDuplicateIdempotencyKey = errors.New("idempotency key already used")
)
