package contact

import "context"

// Repo defines persistence operations for contact messages.
type Repo interface {
	Create(ctx context.Context, msg Message) error
	List(ctx context.Context, limit, offset int) ([]Message, error)
	MarkRead(ctx context.Context, messageID string) error
}
