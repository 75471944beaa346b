package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAccount_ValidateCharge(t *testing.T) {
	tests := []struct {
		name        string
		balance     decimal.Decimal
		amount      decimal.Decimal
		expectError bool
	}{
		{
			name:        "charge less than balance",
			balance:     decimal.NewFromInt(1000),
			amount:      decimal.NewFromInt(100),
			expectError: false,
		},
		{
			name:        "charge exact balance",
			balance:     decimal.NewFromInt(100),
			amount:      decimal.NewFromInt(100),
			expectError: false,
		},
		{
			name:        "charge more than balance",
			balance:     decimal.NewFromInt(100),
			amount:      decimal.NewFromInt(150),
			expectError: true,
		},
		{
			name:        "charge against zero balance",
			balance:     decimal.Zero,
			amount:      decimal.NewFromInt(1),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := &Account{Balance: tt.balance}

			err := acc.ValidateCharge(tt.amount)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAccount_ApplyCharge(t *testing.T) {
	acc := &Account{Balance: decimal.RequireFromString("1000.00")}

	got := acc.ApplyCharge(decimal.RequireFromString("100.00"))

	if !got.Equal(decimal.RequireFromString("900.00")) {
		t.Errorf("expected 900.00, got %s", got)
	}

	// the account itself is not mutated
	if !acc.Balance.Equal(decimal.RequireFromString("1000.00")) {
		t.Errorf("expected balance to remain 1000.00, got %s", acc.Balance)
	}
}

func TestCharge_IsCompleted(t *testing.T) {
	c := &Charge{Status: ChargeStatusCompleted}
	if !c.IsCompleted() {
		t.Error("expected completed charge to report completed")
	}

	c.Status = ChargeStatusFailed
	if c.IsCompleted() {
		t.Error("expected failed charge to not report completed")
	}
}
