package nutricoach

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type tipRepoPG struct {
	pool *pgxpool.Pool
}

func NewTipRepo(pool *pgxpool.Pool) TipRepository {
	return &tipRepoPG{pool: pool}
}

func (r *tipRepoPG) Create(ctx context.Context, tip *Tip) error {
	tip.ID = uuid.New()
	err := r.pool.QueryRow(ctx, `
		INSERT INTO nutri_coach_tip (id, user_id, tip_text)
		VALUES ($1, $2, $3)
		RETURNING created_at`,
		tip.ID, tip.UserID, tip.TipText).Scan(&tip.CreatedAt)
	if err != nil {
		return fmt.Errorf("tip create: %w", err)
	}
	return nil
}

func (r *tipRepoPG) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Tip, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM nutri_coach_tip WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("tip count: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, tip_text, created_at
		FROM nutri_coach_tip
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("tip list: %w", err)
	}
	defer rows.Close()

	var tips []Tip
	for rows.Next() {
		var tip Tip
		if err := rows.Scan(&tip.ID, &tip.UserID, &tip.TipText, &tip.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("tip list: %w", err)
		}
		tips = append(tips, tip)
	}
	return tips, total, rows.Err()
}
