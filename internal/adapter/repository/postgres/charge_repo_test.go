package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/picopay/engine/internal/domain"
	"github.com/picopay/engine/internal/usecase"
)

func beginMockTx(t *testing.T, mockPool pgxmock.PgxPoolIface) usecase.Transaction {
	t.Helper()

	manager := newTxManagerWithPool(mockPool)
	tx, err := manager.Begin(context.Background())
	require.NoError(t, err)

	return tx
}

func TestChargeRepositoryCreateMapsUniqueViolation(t *testing.T) {
	mockPool := newMockPool(t)
	mockPool.ExpectBegin()
	mockPool.ExpectExec("INSERT INTO charge_records").
		WithArgs(
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
		).
		WillReturnError(&pgconn.PgError{
			Code:           pgUniqueViolation,
			ConstraintName: "idx_charge_records_idempotency_key",
		})

	repo := NewChargeRepository(nil)
	tx := beginMockTx(t, mockPool)

	key := "f2f9a4d2-6a5e-4c2e-bb6d-444444444444"
	err := repo.Create(context.Background(), tx, &domain.Charge{
		ID:             "chg-1",
		AccountID:      "acc-1",
		Amount:         decimal.RequireFromString("10"),
		Currency:       "USD",
		Status:         domain.ChargeStatusCompleted,
		IdempotencyKey: &key,
		CreatedAt:      time.Now(),
	})

	require.ErrorIs(t, err, domain.ErrDuplicateIdempotencyKey)
	require.NoError(t, mockPool.ExpectationsWereMet())
}

func TestChargeRepositoryCreatePassesThroughOtherErrors(t *testing.T) {
	mockPool := newMockPool(t)
	mockPool.ExpectBegin()
	mockPool.ExpectExec("INSERT INTO charge_records").
		WillReturnError(&pgconn.PgError{Code: "23503"}) // foreign key violation

	repo := NewChargeRepository(nil)
	tx := beginMockTx(t, mockPool)

	err := repo.Create(context.Background(), tx, &domain.Charge{
		ID:        "chg-1",
		AccountID: "missing",
		Amount:    decimal.RequireFromString("10"),
		Currency:  "USD",
		Status:    domain.ChargeStatusCompleted,
		CreatedAt: time.Now(),
	})

	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrDuplicateIdempotencyKey)
}

func TestChargeRepositoryGetByKeyForUpdateAbsent(t *testing.T) {
	mockPool := newMockPool(t)
	mockPool.ExpectBegin()
	mockPool.ExpectQuery("SELECT id, account_id, amount, currency, status, idempotency_key, created_at").
		WithArgs(pgxmock.AnyArg()).
		WillReturnError(pgx.ErrNoRows)

	repo := NewChargeRepository(nil)
	tx := beginMockTx(t, mockPool)

	charge, err := repo.GetByKeyForUpdate(context.Background(), tx, "absent-key")

	require.NoError(t, err)
	require.Nil(t, charge)
}
