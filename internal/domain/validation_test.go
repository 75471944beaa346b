package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateCurrency(t *testing.T) {
	tests := []struct {
		name        string
		currency    string
		expectError bool
	}{
		{"valid USD", "USD", false},
		{"valid lowercase", "usd", false},
		{"valid with spaces", " EUR ", false},
		{"unknown code", "XXX", true},
		{"too short", "US", true},
		{"too long", "USDT", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCurrency(tt.currency)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}
			if tt.expectError && err != nil && !errors.Is(err, ErrInvalidCurrency) {
				t.Errorf("expected ErrInvalidCurrency, got %v", err)
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name        string
		amount      string
		expectError bool
	}{
		{"valid amount", "100.00", false},
		{"minimum amount", "0.01", false},
		{"below minimum", "0.001", true},
		{"zero", "0", true},
		{"negative", "-5", true},
		{"maximum amount", "1000000000", false},
		{"above maximum", "1000000001", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmount(decimal.RequireFromString(tt.amount))

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}
			if tt.expectError && err != nil && !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("expected ErrInvalidAmount, got %v", err)
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateIdempotencyKey(t *testing.T) {
	tests := []struct {
		name        string
		key         string
		expectError bool
	}{
		{"valid uuid", "a2f4b7f0-1f1c-4b63-9e1f-2a2b3c4d5e6f", false},
		{"valid uppercase uuid", "A2F4B7F0-1F1C-4B63-9E1F-2A2B3C4D5E6F", false},
		{"not a uuid", "not-a-uuid", true},
		{"empty", "", true},
		{"truncated", "a2f4b7f0-1f1c-4b63", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIdempotencyKey(tt.key)

			if tt.expectError && !errors.Is(err, ErrInvalidIdempotencyKey) {
				t.Errorf("expected ErrInvalidIdempotencyKey, got %v", err)
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
