package rate

import "context"

type Repository interface {
	Create(ctx context.Context, t *RateTier) error
	Save(ctx context.Context, t *RateTier) error
	GetByTierID(ctx context.Context, tierID string) (*RateTier, error)
	ListActive(ctx context.Context) ([]RateTier, error)
	// FindForDuration returns the active tier covering months, preferring the
	// narrowest range. ErrNoActiveTier when none covers it.
	FindForDuration(ctx context.Context, months int) (*RateTier, error)
}
