package jobs

import "context"

// Repo defines persistence operations for job postings. Listings only serve
// active postings; creation exists for seeding and administrative tooling.
type Repo interface {
	CreateGovernment(ctx context.Context, job GovernmentJob) error
	ListGovernment(ctx context.Context, filter GovernmentFilter, limit, offset int) ([]GovernmentJob, int, error)
	CreatePrivate(ctx context.Context, job PrivateJob) error
	ListPrivate(ctx context.Context, filter PrivateFilter, limit, offset int) ([]PrivateJob, int, error)
}
