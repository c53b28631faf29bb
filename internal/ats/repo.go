package ats

import "context"

// Repo defines persistence operations for resume check records. Records are
// append-only: the application never mutates or deletes them.
type Repo interface {
	Create(ctx context.Context, analysis Analysis) error
	ListRecentByUser(ctx context.Context, userID string, limit int) ([]Analysis, error)
}
