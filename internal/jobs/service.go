package jobs

import (
	"context"
	"errors"
)

const pageSize = 15

// Page is one page of listings plus pagination metadata.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// Service contains listing logic for job postings.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Government lists government postings for the given filter and 1-based page.
func (s *Service) Government(ctx context.Context, filter GovernmentFilter, page int) (Page[GovernmentJob], error) {
	if s == nil || s.Repo == nil {
		return Page[GovernmentJob]{}, errors.New("jobs service not configured")
	}
	if filter.Status == "" {
		filter.Status = StatusAll
	}
	page = clampPage(page)

	items, total, err := s.Repo.ListGovernment(ctx, filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return Page[GovernmentJob]{}, err
	}
	return Page[GovernmentJob]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total),
	}, nil
}

// Private lists private postings for the given filter and 1-based page.
func (s *Service) Private(ctx context.Context, filter PrivateFilter, page int) (Page[PrivateJob], error) {
	if s == nil || s.Repo == nil {
		return Page[PrivateJob]{}, errors.New("jobs service not configured")
	}
	page = clampPage(page)

	items, total, err := s.Repo.ListPrivate(ctx, filter, pageSize, (page-1)*pageSize)
	if err != nil {
		return Page[PrivateJob]{}, err
	}
	return Page[PrivateJob]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total),
	}, nil
}

func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func totalPages(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
