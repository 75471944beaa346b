package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/picopay/engine/internal/domain"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID        string          `json:"id"`
	Currency  string          `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:        a.ID,
		Currency:  a.Currency,
		Balance:   a.Balance,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// ChargeResponse represents a single charge in API responses.
type ChargeResponse struct {
	ID             string          `json:"id"`
	AccountID      string          `json:"account_id"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	Status         string          `json:"status"`
	IdempotencyKey *string         `json:"idempotency_key,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ChargeFromDomain converts domain charge to response.
func ChargeFromDomain(c *domain.Charge) *ChargeResponse {
	return &ChargeResponse{
		ID:             c.ID,
		AccountID:      c.AccountID,
		Amount:         c.Amount,
		Currency:       c.Currency,
		Status:         string(c.Status),
		IdempotencyKey: c.IdempotencyKey,
		CreatedAt:      c.CreatedAt,
	}
}

// ChargesFromDomain converts domain charges to responses.
func ChargesFromDomain(charges []*domain.Charge) []*ChargeResponse {
	result := make([]*ChargeResponse, len(charges))
	for i, c := range charges {
		result[i] = ChargeFromDomain(c)
	}
	return result
}

// ChargeResultResponse represents the outcome of a charge request. Idempotent
// is true when the response replays an earlier charge with the same key.
type ChargeResultResponse struct {
	Message    string          `json:"message"`
	Charge     *ChargeResponse `json:"charge"`
	NewBalance decimal.Decimal `json:"new_balance"`
	Idempotent bool            `json:"idempotent"`
}

// ChargeResultFromDomain converts a domain charge result to a response.
func ChargeResultFromDomain(r *domain.ChargeResult) *ChargeResultResponse {
	message := "charge processed"
	if r.Idempotent {
		message = "charge already processed"
	}

	return &ChargeResultResponse{
		Message:    message,
		Charge:     ChargeFromDomain(r.Charge),
		NewBalance: r.NewBalance,
		Idempotent: r.Idempotent,
	}
}

// ListChargesResponse represents a paginated list of charges.
type ListChargesResponse struct {
	Charges []*ChargeResponse `json:"charges"`
	Total   int64             `json:"total"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
