package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	GetByApplicationID(ctx context.Context, applicationNumericID uint64) (*Loan, error)
	Save(ctx context.Context, l *Loan) error
}
