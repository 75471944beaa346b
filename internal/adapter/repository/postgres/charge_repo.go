package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/picopay/engine/internal/domain"
	"github.com/picopay/engine/internal/usecase"
)

const pgUniqueViolation = "23505"

// ChargeRepository implements usecase.ChargeRepository.
type ChargeRepository struct {
	pool *pgxpool.Pool
}

// NewChargeRepository creates a new ChargeRepository.
func NewChargeRepository(pool *pgxpool.Pool) *ChargeRepository {
	return &ChargeRepository{pool: pool}
}

// Create inserts a charge record inside the given transaction. A unique
// violation on the idempotency key maps to domain.ErrDuplicateIdempotencyKey
// so the caller can fall back to the already-recorded charge.
func (r *ChargeRepository) Create(ctx context.Context, tx usecase.Transaction, charge *domain.Charge) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO charge_records (id, account_id, amount, currency, status, idempotency_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := pgxTx.Exec(ctx, query,
		charge.ID,
		charge.AccountID,
		decimalToNumeric(charge.Amount),
		charge.Currency,
		string(charge.Status),
		charge.IdempotencyKey,
		charge.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateIdempotencyKey, pgErr.ConstraintName)
		}

		return err
	}

	return nil
}

// GetByID retrieves a charge by ID.
func (r *ChargeRepository) GetByID(ctx context.Context, id string) (*domain.Charge, error) {
	query := chargeSelect + ` WHERE id = $1`

	charge, err := scanCharge(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrChargeNotFound
	}

	return charge, err
}

// GetByKey retrieves a charge by idempotency key. Returns (nil, nil) when no
// record carries the key.
func (r *ChargeRepository) GetByKey(ctx context.Context, key string) (*domain.Charge, error) {
	query := chargeSelect + ` WHERE idempotency_key = $1`

	charge, err := scanCharge(r.pool.QueryRow(ctx, query, key))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}

	return charge, err
}

// GetByKeyForUpdate retrieves a charge by idempotency key with a FOR UPDATE
// lock inside the given transaction. Returns (nil, nil) when no record carries
// the key.
func (r *ChargeRepository) GetByKeyForUpdate(ctx context.Context, tx usecase.Transaction, key string) (*domain.Charge, error) {
	pgxTx := tx.(*Tx).PgxTx()

	query := chargeSelect + ` WHERE idempotency_key = $1 FOR UPDATE`

	charge, err := scanCharge(pgxTx.QueryRow(ctx, query, key))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}

	return charge, err
}

// ListByAccount retrieves charges for an account, newest first.
func (r *ChargeRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Charge, error) {
	query := chargeSelect + `
		WHERE account_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var charges []*domain.Charge
	for rows.Next() {
		charge, err := scanCharge(rows)
		if err != nil {
			return nil, err
		}

		charges = append(charges, charge)
	}

	return charges, rows.Err()
}

const chargeSelect = `
	SELECT id, account_id, amount, currency, status, idempotency_key, created_at
	FROM charge_records`

func scanCharge(row pgx.Row) (*domain.Charge, error) {
	var (
		charge    domain.Charge
		amount    pgtype.Numeric
		status    string
		key       *string
		createdAt pgtype.Timestamptz
	)

	err := row.Scan(
		&charge.ID,
		&charge.AccountID,
		&amount,
		&charge.Currency,
		&status,
		&key,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	charge.Amount = numericToDecimal(amount)
	charge.Status = domain.ChargeStatus(status)
	charge.IdempotencyKey = key
	charge.CreatedAt = createdAt.Time

	return &charge, nil
}
