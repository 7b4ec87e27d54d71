package appmock

import (
	"context"

	domain "lenddesk-backend/internal/domain/application"
)

// Repo is a function-backed mock satisfying application.Repository.
// Fill in only the fields a test needs.
type Repo struct {
	CreateFn                      func(ctx context.Context, a *domain.LoanApplication) error
	GetByApplicationIDFn          func(ctx context.Context, applicationID string) (*domain.LoanApplication, error)
	GetByNumericIDFn              func(ctx context.Context, id uint64) (*domain.LoanApplication, error)
	GetByApplicationIDForUpdateFn func(ctx context.Context, applicationID string) (*domain.LoanApplication, error)
	TransitionStatusFn            func(ctx context.Context, id uint64, from domain.Status, cols map[string]any) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, a *domain.LoanApplication) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByApplicationID(ctx context.Context, applicationID string) (*domain.LoanApplication, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByNumericID(ctx context.Context, id uint64) (*domain.LoanApplication, error) {
	if m.GetByNumericIDFn != nil {
		return m.GetByNumericIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*domain.LoanApplication, error) {
	if m.GetByApplicationIDForUpdateFn != nil {
		return m.GetByApplicationIDForUpdateFn(ctx, applicationID)
	}
	return nil, context.Canceled
}

func (m *Repo) TransitionStatus(ctx context.Context, id uint64, from domain.Status, cols map[string]any) error {
	if m.TransitionStatusFn != nil {
		return m.TransitionStatusFn(ctx, id, from, cols)
	}
	return nil
}
