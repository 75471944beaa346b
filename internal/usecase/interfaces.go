package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/picopay/engine/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Account, error)
	UpdateBalance(ctx context.Context, tx Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
}

// ChargeRepository defines data access for charge records.
//
// GetByKey and GetByKeyForUpdate return (nil, nil) when no record carries the
// key; absence is the normal case for a first-time charge, not an error.
type ChargeRepository interface {
	Create(ctx context.Context, tx Transaction, charge *domain.Charge) error
	GetByID(ctx context.Context, id string) (*domain.Charge, error)
	GetByKey(ctx context.Context, key string) (*domain.Charge, error)
	GetByKeyForUpdate(ctx context.Context, tx Transaction, key string) (*domain.Charge, error)
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Charge, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier retries an operation on transient storage errors.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines the advisory result cache. Get returns (nil, nil) when the
// key is absent; implementations never treat absence as an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Outcome classifies a processed charge request for observability.
type Outcome string

const (
	OutcomeSuccess             Outcome = "success"
	OutcomeIdempotentHit       Outcome = "idempotent_hit"
	OutcomeInsufficientBalance Outcome = "insufficient_balance"
	OutcomeAccountNotFound     Outcome = "account_not_found"
	OutcomeValidationError     Outcome = "validation_error"
	OutcomeFailed              Outcome = "failed"
)

// MetricsRecorder receives one outcome classification and duration per
// processed charge request.
type MetricsRecorder interface {
	RecordCharge(outcome Outcome, duration time.Duration)
}
