package loanmock

import (
	"context"

	domain "lenddesk-backend/internal/domain/loan"
)

// Repo is a function-backed mock satisfying loan.Repository.
type Repo struct {
	CreateFn             func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn        func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByApplicationIDFn func(ctx context.Context, applicationNumericID uint64) (*domain.Loan, error)
	SaveFn               func(ctx context.Context, l *domain.Loan) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByApplicationID(ctx context.Context, applicationNumericID uint64) (*domain.Loan, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationNumericID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
