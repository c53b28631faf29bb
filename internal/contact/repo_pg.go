package contact

import (
	"context"
	"database/sql"
	"errors"
)

var ErrNotFound = errors.New("message not found")

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

var _ Repo = (*PGRepo)(nil)

func (r *PGRepo) Create(ctx context.Context, msg Message) error {
	const query = `
INSERT INTO contact_messages (id, name, email, subject, message, is_read, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.ExecContext(ctx, query,
		msg.ID,
		msg.Name,
		msg.Email,
		msg.Subject,
		msg.Message,
		msg.IsRead,
		msg.CreatedAt,
	)
	return err
}

func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Message, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	const query = `
SELECT id, name, email, subject, message, is_read, created_at
FROM contact_messages
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.IsRead, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PGRepo) MarkRead(ctx context.Context, messageID string) error {
	const query = `UPDATE contact_messages SET is_read = TRUE WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, messageID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
