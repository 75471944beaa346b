package mocks

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/picopay/engine/internal/domain"
	"github.com/picopay/engine/internal/usecase"
)

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account

	CreateFunc           func(ctx context.Context, account *domain.Account) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Account, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Account, error)
	UpdateBalanceFunc    func(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

// Seed stores an account directly, bypassing any Func override.
func (m *MockAccountRepository) Seed(account *domain.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok {
		return acc, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Account, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockAccountRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, tx, id, balance, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if acc, ok := m.accounts[id]; ok {
		acc.Balance = balance
		acc.UpdatedAt = updatedAt
	}
	return nil
}

// MockChargeRepository is a mock implementation of ChargeRepository.
type MockChargeRepository struct {
	mu      sync.RWMutex
	charges map[string]*domain.Charge
	byKey   map[string]*domain.Charge

	CreateFunc            func(ctx context.Context, tx usecase.Transaction, charge *domain.Charge) error
	GetByIDFunc           func(ctx context.Context, id string) (*domain.Charge, error)
	GetByKeyFunc          func(ctx context.Context, key string) (*domain.Charge, error)
	GetByKeyForUpdateFunc func(ctx context.Context, tx usecase.Transaction, key string) (*domain.Charge, error)
	ListByAccountFunc     func(ctx context.Context, accountID string, limit, offset int) ([]*domain.Charge, error)
}

func NewMockChargeRepository() *MockChargeRepository {
	return &MockChargeRepository{
		charges: make(map[string]*domain.Charge),
		byKey:   make(map[string]*domain.Charge),
	}
}

// Seed stores a charge directly, bypassing any Func override.
func (m *MockChargeRepository) Seed(charge *domain.Charge) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.charges[charge.ID] = charge
	if charge.IdempotencyKey != nil {
		m.byKey[*charge.IdempotencyKey] = charge
	}
}

func (m *MockChargeRepository) Create(ctx context.Context, tx usecase.Transaction, charge *domain.Charge) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, charge)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if charge.IdempotencyKey != nil {
		if _, exists := m.byKey[*charge.IdempotencyKey]; exists {
			return domain.ErrDuplicateIdempotencyKey
		}
		m.byKey[*charge.IdempotencyKey] = charge
	}
	m.charges[charge.ID] = charge
	return nil
}

func (m *MockChargeRepository) GetByID(ctx context.Context, id string) (*domain.Charge, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.charges[id]; ok {
		return c, nil
	}
	return nil, domain.ErrChargeNotFound
}

func (m *MockChargeRepository) GetByKey(ctx context.Context, key string) (*domain.Charge, error) {
	if m.GetByKeyFunc != nil {
		return m.GetByKeyFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.byKey[key], nil
}

func (m *MockChargeRepository) GetByKeyForUpdate(ctx context.Context, tx usecase.Transaction, key string) (*domain.Charge, error) {
	if m.GetByKeyForUpdateFunc != nil {
		return m.GetByKeyForUpdateFunc(ctx, tx, key)
	}
	return m.GetByKey(ctx, key)
}

func (m *MockChargeRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Charge, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var charges []*domain.Charge
	for _, c := range m.charges {
		if c.AccountID == accountID {
			charges = append(charges, c)
		}
	}
	return charges, nil
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	Committed  bool
	RolledBack bool
}

func NewMockTransaction() *MockTransaction {
	return &MockTransaction{}
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	m.Committed = true
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	m.RolledBack = true
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)

	LastTx *MockTransaction
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.LastTx = NewMockTransaction()
	return m.LastTx, nil
}

// MockCache is a mock implementation of Cache backed by a map.
type MockCache struct {
	mu      sync.RWMutex
	entries map[string][]byte

	GetFunc func(ctx context.Context, key string) ([]byte, error)
	SetFunc func(ctx context.Context, key string, value []byte, ttl time.Duration) error

	SetCalls int
}

func NewMockCache() *MockCache {
	return &MockCache{
		entries: make(map[string][]byte),
	}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.entries[key], nil
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	m.SetCalls++
	m.mu.Unlock()
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

// Stored returns the raw payload for key, or nil.
func (m *MockCache) Stored(key string) []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.entries[key]
}

// MockRetrier is a pass-through Retrier.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return "mock-id-" + strconv.Itoa(m.counter)
}

// MockMetricsRecorder records outcomes for assertions.
type MockMetricsRecorder struct {
	mu       sync.Mutex
	Outcomes []usecase.Outcome
}

func NewMockMetricsRecorder() *MockMetricsRecorder {
	return &MockMetricsRecorder{}
}

func (m *MockMetricsRecorder) RecordCharge(outcome usecase.Outcome, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Outcomes = append(m.Outcomes, outcome)
}

// Last returns the most recently recorded outcome.
func (m *MockMetricsRecorder) Last() usecase.Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Outcomes) == 0 {
		return ""
	}
	return m.Outcomes[len(m.Outcomes)-1]
}
