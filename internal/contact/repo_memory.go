package contact

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory Repo for dev mode and tests.
type MemoryRepo struct {
	mu       sync.RWMutex
	messages map[string]Message
}

var _ Repo = (*MemoryRepo)(nil)

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{messages: make(map[string]Message)}
}

func (r *MemoryRepo) Create(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages[msg.ID] = msg
	return nil
}

func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Message, 0, len(r.messages))
	for _, m := range r.messages {
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryRepo) MarkRead(ctx context.Context, messageID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.messages[messageID]
	if !ok {
		return ErrNotFound
	}
	m.IsRead = true
	r.messages[messageID] = m
	return nil
}
