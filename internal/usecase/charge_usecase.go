package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/picopay/engine/internal/domain"
)

// ChargeUseCase processes charge requests against account balances with
// at-most-once application per idempotency key. Duplicate detection is
// two-tier: a best-effort cache fast path, then an authoritative check under
// a row lock inside the ledger transaction. Only the locked check decides;
// the cache only short-circuits.
type ChargeUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	chargeRepo  ChargeRepository
	cache       Cache
	retrier     Retrier
	idGen       IDGenerator
	metrics     MetricsRecorder
	cacheTTL    time.Duration
	logger      zerolog.Logger
}

// NewChargeUseCase creates a new ChargeUseCase.
func NewChargeUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	chargeRepo ChargeRepository,
	cache Cache,
	retrier Retrier,
	idGen IDGenerator,
	metrics MetricsRecorder,
	cacheTTL time.Duration,
	logger zerolog.Logger,
) *ChargeUseCase {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}

	return &ChargeUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		chargeRepo:  chargeRepo,
		cache:       cache,
		retrier:     retrier,
		idGen:       idGen,
		metrics:     metrics,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

// ProcessChargeInput represents input for processing a charge.
type ProcessChargeInput struct {
	AccountID      string
	Amount         decimal.Decimal
	Currency       string
	IdempotencyKey string // optional; empty opts out of duplicate suppression
}

// cachedResult is the serialized form of a charge result in the cache.
// Payloads are immutable once written because the underlying charge record
// never changes after commit.
type cachedResult struct {
	Charge     *domain.Charge  `json:"charge"`
	NewBalance decimal.Decimal `json:"new_balance"`
}

// ProcessCharge applies a charge request and records its outcome.
func (uc *ChargeUseCase) ProcessCharge(ctx context.Context, input ProcessChargeInput) (*domain.ChargeResult, error) {
	start := time.Now()

	result, err := uc.processCharge(ctx, input)

	if uc.metrics != nil {
		uc.metrics.RecordCharge(classifyOutcome(result, err), time.Since(start))
	}

	return result, err
}

func (uc *ChargeUseCase) processCharge(ctx context.Context, input ProcessChargeInput) (*domain.ChargeResult, error) {
	// Validation happens before any cache or ledger access.
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	if err := domain.ValidateCurrency(input.Currency); err != nil {
		return nil, err
	}

	if input.IdempotencyKey != "" {
		if err := domain.ValidateIdempotencyKey(input.IdempotencyKey); err != nil {
			return nil, err
		}

		// Fast path: a cache hit short-circuits with no ledger access.
		if result := uc.lookupCache(ctx, input.IdempotencyKey); result != nil {
			return result, nil
		}
	}

	// Authoritative path. Deadlocks and serialization failures retry the
	// whole transaction; safe because the key protocol is idempotent.
	var result *domain.ChargeResult

	err := uc.retrier.Retry(ctx, func() error {
		var applyErr error
		result, applyErr = uc.applyCharge(ctx, input)
		return applyErr
	})
	if err != nil {
		return nil, err
	}

	// Cache writes are best effort and happen only after the ledger commit,
	// so an entry can never precede its charge record.
	if input.IdempotencyKey != "" && result.Charge.IsCompleted() {
		uc.storeCache(ctx, input.IdempotencyKey, result)
	}

	return result, nil
}

// applyCharge runs the locked transaction: charge-by-key row first, account
// row second. The lock order is fixed to avoid deadlocks between concurrent
// requests.
func (uc *ChargeUseCase) applyCharge(ctx context.Context, input ProcessChargeInput) (*domain.ChargeResult, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if input.IdempotencyKey != "" {
		existing, err := uc.chargeRepo.GetByKeyForUpdate(ctx, tx, input.IdempotencyKey)
		if err != nil {
			return nil, err
		}

		if existing != nil && existing.IsCompleted() {
			account, err := uc.accountRepo.GetByID(ctx, existing.AccountID)
			if err != nil {
				return nil, err
			}

			uc.logger.Info().
				Str("idempotency_key", input.IdempotencyKey).
				Str("charge_id", existing.ID).
				Msg("idempotent hit from ledger")

			return &domain.ChargeResult{
				Charge:     existing,
				NewBalance: account.Balance,
				Idempotent: true,
			}, nil
		}
	}

	account, err := uc.accountRepo.GetByIDForUpdate(ctx, tx, input.AccountID)
	if err != nil {
		return nil, err
	}

	if err := account.ValidateCharge(input.Amount); err != nil {
		uc.logger.Info().
			Str("account_id", input.AccountID).
			Str("amount", input.Amount.String()).
			Msg("insufficient balance")

		return nil, err
	}

	now := time.Now().UTC()
	newBalance := account.ApplyCharge(input.Amount)

	charge := &domain.Charge{
		ID:        uc.idGen.Generate(),
		AccountID: account.ID,
		Amount:    input.Amount,
		Currency:  input.Currency,
		Status:    domain.ChargeStatusCompleted,
		CreatedAt: now,
	}
	if input.IdempotencyKey != "" {
		key := input.IdempotencyKey
		charge.IdempotencyKey = &key
	}

	if err := uc.accountRepo.UpdateBalance(ctx, tx, account.ID, newBalance, now); err != nil {
		return nil, err
	}

	if err := uc.chargeRepo.Create(ctx, tx, charge); err != nil {
		if errors.Is(err, domain.ErrDuplicateIdempotencyKey) && input.IdempotencyKey != "" {
			// Lost the insert race past the lock check; the unique index is
			// the backstop. Roll back and serve the winner's record.
			tx.Rollback(ctx)
			return uc.resolveExisting(ctx, input.IdempotencyKey)
		}

		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	uc.logger.Info().
		Str("charge_id", charge.ID).
		Str("account_id", charge.AccountID).
		Str("amount", charge.Amount.String()).
		Msg("charge applied")

	return &domain.ChargeResult{
		Charge:     charge,
		NewBalance: newBalance,
	}, nil
}

// resolveExisting re-reads the committed record for a key after losing the
// unique-index race and serves it as an idempotent result.
func (uc *ChargeUseCase) resolveExisting(ctx context.Context, key string) (*domain.ChargeResult, error) {
	existing, err := uc.chargeRepo.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	if existing == nil || !existing.IsCompleted() {
		return nil, domain.ErrDuplicateIdempotencyKey
	}

	account, err := uc.accountRepo.GetByID(ctx, existing.AccountID)
	if err != nil {
		return nil, err
	}

	uc.logger.Info().
		Str("idempotency_key", key).
		Str("charge_id", existing.ID).
		Msg("idempotent hit after unique violation")

	return &domain.ChargeResult{
		Charge:     existing,
		NewBalance: account.Balance,
		Idempotent: true,
	}, nil
}

// lookupCache returns a result from the cache, or nil on miss. Cache errors
// degrade to a miss; only the ledger is authoritative.
func (uc *ChargeUseCase) lookupCache(ctx context.Context, key string) *domain.ChargeResult {
	data, err := uc.cache.Get(ctx, key)
	if err != nil {
		uc.logger.Warn().Err(err).Str("idempotency_key", key).Msg("cache read failed, falling back to ledger")
		return nil
	}

	if data == nil {
		return nil
	}

	var cached cachedResult
	if err := json.Unmarshal(data, &cached); err != nil {
		uc.logger.Warn().Err(err).Str("idempotency_key", key).Msg("cache payload corrupt, falling back to ledger")
		return nil
	}

	uc.logger.Info().
		Str("idempotency_key", key).
		Str("charge_id", cached.Charge.ID).
		Msg("idempotent hit from cache")

	return &domain.ChargeResult{
		Charge:     cached.Charge,
		NewBalance: cached.NewBalance,
		Idempotent: true,
	}
}

// storeCache writes a result to the cache. Failures are logged, never
// propagated; a failed write must not fail the charge.
func (uc *ChargeUseCase) storeCache(ctx context.Context, key string, result *domain.ChargeResult) {
	data, err := json.Marshal(cachedResult{
		Charge:     result.Charge,
		NewBalance: result.NewBalance,
	})
	if err != nil {
		uc.logger.Warn().Err(err).Str("idempotency_key", key).Msg("failed to encode cache payload")
		return
	}

	if err := uc.cache.Set(ctx, key, data, uc.cacheTTL); err != nil {
		uc.logger.Warn().Err(err).Str("idempotency_key", key).Msg("cache write failed")
	}
}

// GetCharge retrieves a charge by ID.
func (uc *ChargeUseCase) GetCharge(ctx context.Context, id string) (*domain.Charge, error) {
	return uc.chargeRepo.GetByID(ctx, id)
}

// ListChargesByAccountInput represents input for listing charges.
type ListChargesByAccountInput struct {
	AccountID string
	Limit     int
	Offset    int
}

// ListChargesByAccount lists charges for an account.
func (uc *ChargeUseCase) ListChargesByAccount(ctx context.Context, input ListChargesByAccountInput) ([]*domain.Charge, error) {
	if input.Limit <= 0 {
		input.Limit = DefaultListLimit
	}

	if input.Limit > MaxListLimit {
		input.Limit = MaxListLimit
	}

	return uc.chargeRepo.ListByAccount(ctx, input.AccountID, input.Limit, input.Offset)
}

// classifyOutcome maps a processing result to its outcome classification.
func classifyOutcome(result *domain.ChargeResult, err error) Outcome {
	switch {
	case err == nil && result != nil && result.Idempotent:
		return OutcomeIdempotentHit
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, domain.ErrInsufficientBalance):
		return OutcomeInsufficientBalance
	case errors.Is(err, domain.ErrAccountNotFound):
		return OutcomeAccountNotFound
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidCurrency),
		errors.Is(err, domain.ErrInvalidIdempotencyKey):
		return OutcomeValidationError
	default:
		return OutcomeFailed
	}
}
