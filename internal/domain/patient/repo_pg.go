package patient

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

const recordCols = `user_id, name, phone_number, password_hash, sex,
	heifa_total_score, discretionary_score, vegetables_score, fruits_score,
	grains_cereals_score, whole_grains_score, meat_alternatives_score,
	dairy_alternatives_score, sodium_score, alcohol_score, water_score,
	sugar_score, saturated_fat_score, unsaturated_fat_score`

func (r *repoPG) InsertAll(ctx context.Context, records []Record) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("patient insert all: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	for _, rec := range records {
		_, err := tx.Exec(ctx, `
			INSERT INTO patient (
				user_id, name, phone_number, password_hash, sex,
				heifa_total_score, discretionary_score, vegetables_score, fruits_score,
				grains_cereals_score, whole_grains_score, meat_alternatives_score,
				dairy_alternatives_score, sodium_score, alcohol_score, water_score,
				sugar_score, saturated_fat_score, unsaturated_fat_score
			) VALUES (
				$1,$2,$3,$4,$5,
				$6,$7,$8,$9,
				$10,$11,$12,
				$13,$14,$15,$16,
				$17,$18,$19
			)
			ON CONFLICT (user_id) DO UPDATE SET
				phone_number = EXCLUDED.phone_number,
				sex = EXCLUDED.sex,
				heifa_total_score = EXCLUDED.heifa_total_score,
				discretionary_score = EXCLUDED.discretionary_score,
				vegetables_score = EXCLUDED.vegetables_score,
				fruits_score = EXCLUDED.fruits_score,
				grains_cereals_score = EXCLUDED.grains_cereals_score,
				whole_grains_score = EXCLUDED.whole_grains_score,
				meat_alternatives_score = EXCLUDED.meat_alternatives_score,
				dairy_alternatives_score = EXCLUDED.dairy_alternatives_score,
				sodium_score = EXCLUDED.sodium_score,
				alcohol_score = EXCLUDED.alcohol_score,
				water_score = EXCLUDED.water_score,
				sugar_score = EXCLUDED.sugar_score,
				saturated_fat_score = EXCLUDED.saturated_fat_score,
				unsaturated_fat_score = EXCLUDED.unsaturated_fat_score`,
			rec.UserID, rec.Name, rec.PhoneNumber, rec.PasswordHash, rec.Sex,
			rec.Scores.HEIFATotal, rec.Scores.Discretionary, rec.Scores.Vegetables, rec.Scores.Fruits,
			rec.Scores.GrainsCereals, rec.Scores.WholeGrains, rec.Scores.MeatAlternatives,
			rec.Scores.DairyAlternatives, rec.Scores.Sodium, rec.Scores.Alcohol, rec.Scores.Water,
			rec.Scores.Sugar, rec.Scores.SaturatedFat, rec.Scores.UnsaturatedFat,
		)
		if err != nil {
			return fmt.Errorf("patient insert all: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *repoPG) GetByID(ctx context.Context, userID string) (*Record, error) {
	rec, err := scanRecord(r.pool.QueryRow(ctx, `SELECT `+recordCols+` FROM patient WHERE user_id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUnknownUser
		}
		return nil, fmt.Errorf("patient get by id: %w", err)
	}
	return rec, nil
}

func (r *repoPG) AllUserIDs(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT user_id FROM patient`)
	if err != nil {
		return nil, fmt.Errorf("patient all user ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("patient all user ids: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *repoPG) All(ctx context.Context) ([]Record, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+recordCols+` FROM patient`)
	if err != nil {
		return nil, fmt.Errorf("patient all: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("patient all: %w", err)
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

func (r *repoPG) SetCredentials(ctx context.Context, userID, name, passwordHash string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE patient SET name = $2, password_hash = $3 WHERE user_id = $1`,
		userID, name, passwordHash)
	if err != nil {
		return fmt.Errorf("patient set credentials: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUnknownUser
	}
	return nil
}

func (r *repoPG) SetPassword(ctx context.Context, userID, passwordHash string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE patient SET password_hash = $2 WHERE user_id = $1`,
		userID, passwordHash)
	if err != nil {
		return fmt.Errorf("patient set password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUnknownUser
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*Record, error) {
	var rec Record
	err := row.Scan(
		&rec.UserID, &rec.Name, &rec.PhoneNumber, &rec.PasswordHash, &rec.Sex,
		&rec.Scores.HEIFATotal, &rec.Scores.Discretionary, &rec.Scores.Vegetables, &rec.Scores.Fruits,
		&rec.Scores.GrainsCereals, &rec.Scores.WholeGrains, &rec.Scores.MeatAlternatives,
		&rec.Scores.DairyAlternatives, &rec.Scores.Sodium, &rec.Scores.Alcohol, &rec.Scores.Water,
		&rec.Scores.Sugar, &rec.Scores.SaturatedFat, &rec.Scores.UnsaturatedFat,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
