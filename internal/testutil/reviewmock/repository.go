package reviewmock

import (
	"context"

	domain "lenddesk-backend/internal/domain/review"
)

// Repo is a function-backed mock satisfying review.Repository.
type Repo struct {
	CreateFn              func(ctx context.Context, r *domain.LoanReview) error
	ListByApplicationIDFn func(ctx context.Context, applicationNumericID uint64) ([]domain.LoanReview, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, r *domain.LoanReview) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) ListByApplicationID(ctx context.Context, applicationNumericID uint64) ([]domain.LoanReview, error) {
	if m.ListByApplicationIDFn != nil {
		return m.ListByApplicationIDFn(ctx, applicationNumericID)
	}
	return nil, nil
}
