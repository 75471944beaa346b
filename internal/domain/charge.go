package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChargeStatus represents the terminal state of a charge record.
type ChargeStatus string

const (
	ChargeStatusCompleted ChargeStatus = "completed"
	ChargeStatusFailed    ChargeStatus = "failed"
)

// Charge represents a single applied charge against an account.
// IdempotencyKey is nil for requests that opted out of duplicate
// suppression; when present it is unique across all charge records.
type Charge struct {
	ID             string
	AccountID      string
	Amount         decimal.Decimal
	Currency       string
	Status         ChargeStatus
	IdempotencyKey *string
	CreatedAt      time.Time
}

// IsCompleted reports whether the charge reached its terminal completed state.
func (c *Charge) IsCompleted() bool {
	return c.Status == ChargeStatusCompleted
}

// ChargeResult is the outcome of a processed charge request. Idempotent is
// true when the result was served from a previously applied charge, either
// via the cache fast path or the locked ledger re-read.
type ChargeResult struct {
	Charge     *Charge
	NewBalance decimal.Decimal
	Idempotent bool
}
