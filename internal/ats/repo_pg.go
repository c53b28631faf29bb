package ats

import (
	"context"
	"database/sql"
	"encoding/json"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

var _ Repo = (*PGRepo)(nil)

// Create inserts a new resume check record.
func (r *PGRepo) Create(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO ats_analyses (id, user_id, score, result, created_at)
VALUES ($1, $2, $3, $4, $5)`
	payload, err := json.Marshal(analysis.Result)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		analysis.ID,
		analysis.UserID,
		analysis.Score,
		payload,
		analysis.CreatedAt,
	)
	return err
}

// ListRecentByUser returns a user's records ordered newest-first.
func (r *PGRepo) ListRecentByUser(ctx context.Context, userID string, limit int) ([]Analysis, error) {
	if limit <= 0 {
		limit = 5
	}
	if limit > 100 {
		limit = 100
	}

	const query = `
SELECT id, user_id, score, result, created_at
FROM ats_analyses
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Analysis
	for rows.Next() {
		var a Analysis
		var payload []byte
		if err := rows.Scan(&a.ID, &a.UserID, &a.Score, &payload, &a.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(payload, &a.Result); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
