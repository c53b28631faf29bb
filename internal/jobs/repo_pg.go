package jobs

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

var _ Repo = (*PGRepo)(nil)

// CreateGovernment inserts a government job posting.
func (r *PGRepo) CreateGovernment(ctx context.Context, job GovernmentJob) error {
	const query = `
INSERT INTO government_jobs (id, company, post_name, education, total_posts, location, last_date, apply_link, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())`
	_, err := r.DB.ExecContext(ctx, query,
		job.ID,
		job.Company,
		job.PostName,
		job.Education,
		job.TotalPosts,
		job.Location,
		job.LastDate,
		job.ApplyLink,
		job.IsActive,
	)
	return err
}

// ListGovernment returns active government postings matching the filter,
// newest deadline first, plus the total match count for pagination.
func (r *PGRepo) ListGovernment(ctx context.Context, filter GovernmentFilter, limit, offset int) ([]GovernmentJob, int, error) {
	where, args := governmentWhere(filter)

	countQuery := "SELECT count(*) FROM government_jobs " + where
	var total int
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listQuery := fmt.Sprintf(`
SELECT id, company, post_name, education, total_posts, location, last_date, apply_link, is_active, created_at, updated_at
FROM government_jobs
%s
ORDER BY last_date DESC, created_at DESC
LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.DB.QueryContext(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []GovernmentJob
	for rows.Next() {
		var j GovernmentJob
		if err := rows.Scan(
			&j.ID,
			&j.Company,
			&j.PostName,
			&j.Education,
			&j.TotalPosts,
			&j.Location,
			&j.LastDate,
			&j.ApplyLink,
			&j.IsActive,
			&j.CreatedAt,
			&j.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, j)
	}
	return out, total, rows.Err()
}

// CreatePrivate inserts a private job posting.
func (r *PGRepo) CreatePrivate(ctx context.Context, job PrivateJob) error {
	const query = `
INSERT INTO private_jobs (id, company_name, role, salary, location, qualification, experience, apply_link, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())`
	_, err := r.DB.ExecContext(ctx, query,
		job.ID,
		job.CompanyName,
		job.Role,
		job.Salary,
		job.Location,
		job.Qualification,
		job.Experience,
		job.ApplyLink,
		job.IsActive,
	)
	return err
}

// ListPrivate returns active private postings matching the filter, newest
// first, plus the total match count.
func (r *PGRepo) ListPrivate(ctx context.Context, filter PrivateFilter, limit, offset int) ([]PrivateJob, int, error) {
	where, args := privateWhere(filter)

	countQuery := "SELECT count(*) FROM private_jobs " + where
	var total int
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listQuery := fmt.Sprintf(`
SELECT id, company_name, role, salary, location, qualification, experience, apply_link, is_active, created_at, updated_at
FROM private_jobs
%s
ORDER BY created_at DESC
LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.DB.QueryContext(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []PrivateJob
	for rows.Next() {
		var j PrivateJob
		if err := rows.Scan(
			&j.ID,
			&j.CompanyName,
			&j.Role,
			&j.Salary,
			&j.Location,
			&j.Qualification,
			&j.Experience,
			&j.ApplyLink,
			&j.IsActive,
			&j.CreatedAt,
			&j.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, j)
	}
	return out, total, rows.Err()
}

func governmentWhere(filter GovernmentFilter) (string, []any) {
	clauses := []string{"is_active"}
	var args []any

	if q := strings.TrimSpace(filter.Query); q != "" {
		args = append(args, "%"+q+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf("(company ILIKE $%d OR post_name ILIKE $%d OR education ILIKE $%d)", n, n, n))
	}
	if loc := strings.TrimSpace(filter.Location); loc != "" {
		args = append(args, "%"+loc+"%")
		clauses = append(clauses, fmt.Sprintf("location ILIKE $%d", len(args)))
	}
	switch filter.Status {
	case StatusActive:
		clauses = append(clauses, "last_date >= CURRENT_DATE")
	case StatusExpired:
		clauses = append(clauses, "last_date < CURRENT_DATE")
	}

	return "WHERE " + strings.Join(clauses, " AND "), args
}

func privateWhere(filter PrivateFilter) (string, []any) {
	clauses := []string{"is_active"}
	var args []any

	if q := strings.TrimSpace(filter.Query); q != "" {
		args = append(args, "%"+q+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf("(company_name ILIKE $%d OR role ILIKE $%d OR qualification ILIKE $%d)", n, n, n))
	}
	if loc := strings.TrimSpace(filter.Location); loc != "" {
		args = append(args, "%"+loc+"%")
		clauses = append(clauses, fmt.Sprintf("location ILIKE $%d", len(args)))
	}

	return "WHERE " + strings.Join(clauses, " AND "), args
}
