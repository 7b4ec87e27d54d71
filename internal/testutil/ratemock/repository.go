package ratemock

import (
	"context"

	domain "lenddesk-backend/internal/domain/rate"
)

// Repo is a function-backed mock satisfying rate.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, t *domain.RateTier) error
	SaveFn            func(ctx context.Context, t *domain.RateTier) error
	GetByTierIDFn     func(ctx context.Context, tierID string) (*domain.RateTier, error)
	ListActiveFn      func(ctx context.Context) ([]domain.RateTier, error)
	FindForDurationFn func(ctx context.Context, months int) (*domain.RateTier, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, t *domain.RateTier) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, t *domain.RateTier) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, t)
	}
	return nil
}

func (m *Repo) GetByTierID(ctx context.Context, tierID string) (*domain.RateTier, error) {
	if m.GetByTierIDFn != nil {
		return m.GetByTierIDFn(ctx, tierID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListActive(ctx context.Context) ([]domain.RateTier, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return nil, nil
}

func (m *Repo) FindForDuration(ctx context.Context, months int) (*domain.RateTier, error) {
	if m.FindForDurationFn != nil {
		return m.FindForDurationFn(ctx, months)
	}
	return nil, domain.ErrNoActiveTier
}
