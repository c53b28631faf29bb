package jobs

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryRepo is an in-memory Repo for dev mode and tests.
type MemoryRepo struct {
	mu         sync.RWMutex
	government []GovernmentJob
	private    []PrivateJob
	now        func() time.Time
}

var _ Repo = (*MemoryRepo)(nil)

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{now: time.Now}
}

func (r *MemoryRepo) CreateGovernment(ctx context.Context, job GovernmentJob) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now().UTC()
	job.CreatedAt = now
	job.UpdatedAt = now
	r.government = append(r.government, job)
	return nil
}

func (r *MemoryRepo) ListGovernment(ctx context.Context, filter GovernmentFilter, limit, offset int) ([]GovernmentJob, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	today := truncateToDay(r.now())
	var matched []GovernmentJob
	for _, j := range r.government {
		if !j.IsActive {
			continue
		}
		if q := strings.TrimSpace(filter.Query); q != "" {
			if !containsFold(j.Company, q) && !containsFold(j.PostName, q) && !containsFold(j.Education, q) {
				continue
			}
		}
		if loc := strings.TrimSpace(filter.Location); loc != "" && !containsFold(j.Location, loc) {
			continue
		}
		switch filter.Status {
		case StatusActive:
			if j.LastDate.Before(today) {
				continue
			}
		case StatusExpired:
			if !j.LastDate.Before(today) {
				continue
			}
		}
		matched = append(matched, j)
	}

	sort.SliceStable(matched, func(i, k int) bool {
		if !matched[i].LastDate.Equal(matched[k].LastDate) {
			return matched[i].LastDate.After(matched[k].LastDate)
		}
		return matched[i].CreatedAt.After(matched[k].CreatedAt)
	})

	return paginate(matched, limit, offset), len(matched), nil
}

func (r *MemoryRepo) CreatePrivate(ctx context.Context, job PrivateJob) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now().UTC()
	job.CreatedAt = now
	job.UpdatedAt = now
	r.private = append(r.private, job)
	return nil
}

func (r *MemoryRepo) ListPrivate(ctx context.Context, filter PrivateFilter, limit, offset int) ([]PrivateJob, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []PrivateJob
	for _, j := range r.private {
		if !j.IsActive {
			continue
		}
		if q := strings.TrimSpace(filter.Query); q != "" {
			if !containsFold(j.CompanyName, q) && !containsFold(j.Role, q) && !containsFold(j.Qualification, q) {
				continue
			}
		}
		if loc := strings.TrimSpace(filter.Location); loc != "" && !containsFold(j.Location, loc) {
			continue
		}
		matched = append(matched, j)
	}

	sort.SliceStable(matched, func(i, k int) bool {
		return matched[i].CreatedAt.After(matched[k].CreatedAt)
	})

	return paginate(matched, limit, offset), len(matched), nil
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
