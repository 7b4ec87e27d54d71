package review

import "context"

type Repository interface {
	Create(ctx context.Context, r *LoanReview) error
	ListByApplicationID(ctx context.Context, applicationNumericID uint64) ([]LoanReview, error)
}
