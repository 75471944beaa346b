package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a customer balance that charges are applied against.
type Account struct {
	ID        string
	Currency  string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateCharge checks if account can be charged by amount.
func (a *Account) ValidateCharge(amount decimal.Decimal) error {
	if a.Balance.LessThan(amount) {
		return ErrInsufficientBalance
	}
	return nil
}

// ApplyCharge returns new balance after deducting amount.
func (a *Account) ApplyCharge(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Sub(amount)
}
