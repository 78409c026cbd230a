package questionnaire

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) Upsert(ctx context.Context, resp *Response) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO food_questionnaire (user_id, selected_foods, persona, meal_time, sleep_time, wake_time, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (user_id) DO UPDATE SET
			selected_foods = EXCLUDED.selected_foods,
			persona = EXCLUDED.persona,
			meal_time = EXCLUDED.meal_time,
			sleep_time = EXCLUDED.sleep_time,
			wake_time = EXCLUDED.wake_time,
			updated_at = now()`,
		resp.UserID, JoinFoods(resp.SelectedFoods), resp.Persona, resp.MealTime, resp.SleepTime, resp.WakeTime)
	if err != nil {
		return fmt.Errorf("questionnaire upsert: %w", err)
	}
	return nil
}

func (r *repoPG) GetByUserID(ctx context.Context, userID string) (*Response, error) {
	var resp Response
	var foods string
	err := r.pool.QueryRow(ctx, `
		SELECT user_id, selected_foods, persona, meal_time, sleep_time, wake_time, updated_at
		FROM food_questionnaire WHERE user_id = $1`, userID).
		Scan(&resp.UserID, &foods, &resp.Persona, &resp.MealTime, &resp.SleepTime, &resp.WakeTime, &resp.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoResponse
		}
		return nil, fmt.Errorf("questionnaire get: %w", err)
	}
	resp.SelectedFoods = SplitFoods(foods)
	return &resp, nil
}

func (r *repoPG) HasResponse(ctx context.Context, userID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM food_questionnaire WHERE user_id = $1)`, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("questionnaire exists: %w", err)
	}
	return exists, nil
}
