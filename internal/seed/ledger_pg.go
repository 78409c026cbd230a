package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ledgerPG struct {
	pool *pgxpool.Pool
}

func NewLedgerRepo(pool *pgxpool.Pool) LedgerRepository {
	return &ledgerPG{pool: pool}
}

func (r *ledgerPG) Applied(ctx context.Context, sourceID string) (bool, error) {
	var seeded bool
	err := r.pool.QueryRow(ctx, `SELECT seeded FROM seed_flag WHERE key = $1`, sourceID).Scan(&seeded)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("seed flag lookup: %w", err)
	}
	return seeded, nil
}

func (r *ledgerPG) MarkApplied(ctx context.Context, sourceID string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO seed_flag (key, seeded) VALUES ($1, true)
		ON CONFLICT (key) DO UPDATE SET seeded = true`, sourceID)
	if err != nil {
		return fmt.Errorf("seed flag mark: %w", err)
	}
	return nil
}
