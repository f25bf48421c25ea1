package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"scoreboard/internal/models"
)

type ScoreRepository struct {
	db      *sql.DB
	timeout time.Duration
}

func NewScoreRepository(db *sql.DB, timeout time.Duration) *ScoreRepository {
	return &ScoreRepository{db: db, timeout: timeout}
}

var _ ScoreRepo = (*ScoreRepository)(nil)

const (
	selectScoresSQL       = `SELECT id, house, score FROM scores ORDER BY id ASC`
	updateScoreSQL        = `UPDATE scores SET score = ? WHERE house = ?`
	selectScoreByHouseSQL = `SELECT id, house, score FROM scores WHERE house = ?`
)

// List returns every house row.
func (r *ScoreRepository) List(ctx context.Context) ([]models.Score, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, selectScoresSQL)
	if err != nil {
		return nil, fmt.Errorf("select scores: %w", err)
	}
	defer rows.Close()

	out := make([]models.Score, 0, 4)
	for rows.Next() {
		var s models.Score
		if err := rows.Scan(&s.ID, &s.House, &s.Score); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scores: %w", err)
	}
	return out, nil
}

// Update overwrites the score of house (exact match) and returns the row.
// There is no concurrency token: concurrent writers race and the last one wins.
func (r *ScoreRepository) Update(ctx context.Context, house string, score int) (models.Score, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, updateScoreSQL, score, house)
	if err != nil {
		return models.Score{}, fmt.Errorf("update score of %q: %w", house, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.Score{}, fmt.Errorf("rows affected for %q: %w", house, err)
	}
	if n == 0 {
		return models.Score{}, fmt.Errorf("house %q: %w", house, ErrNotFound)
	}

	var s models.Score
	if err := r.db.QueryRowContext(ctx, selectScoreByHouseSQL, house).Scan(&s.ID, &s.House, &s.Score); err != nil {
		return models.Score{}, fmt.Errorf("reload score of %q: %w", house, err)
	}
	return s, nil
}
