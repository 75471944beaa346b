package dto

import (
	"github.com/shopspring/decimal"

	"github.com/picopay/engine/internal/usecase"
)

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Currency       string          `json:"currency"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Currency:       r.Currency,
		OpeningBalance: r.OpeningBalance,
	}
}

// ChargeRequest represents a request to charge an account. The idempotency
// key travels in the Idempotency-Key header, not the body.
type ChargeRequest struct {
	AccountID string          `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
}

// ToUseCaseInput converts to use case input with the given idempotency key.
func (r *ChargeRequest) ToUseCaseInput(idempotencyKey string) usecase.ProcessChargeInput {
	return usecase.ProcessChargeInput{
		AccountID:      r.AccountID,
		Amount:         r.Amount,
		Currency:       r.Currency,
		IdempotencyKey: idempotencyKey,
	}
}

// PaginationRequest represents pagination parameters.
type PaginationRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
