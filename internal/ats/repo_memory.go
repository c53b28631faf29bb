package ats

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory Repo for dev mode and tests.
type MemoryRepo struct {
	mu      sync.RWMutex
	records []Analysis
}

var _ Repo = (*MemoryRepo)(nil)

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Create(ctx context.Context, analysis Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, analysis)
	return nil
}

func (r *MemoryRepo) ListRecentByUser(ctx context.Context, userID string, limit int) ([]Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 5
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Analysis
	for _, a := range r.records {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
