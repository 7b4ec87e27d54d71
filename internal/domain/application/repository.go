package application

import "context"

type Repository interface {
	Create(ctx context.Context, a *LoanApplication) error
	GetByApplicationID(ctx context.Context, applicationID string) (*LoanApplication, error)
	GetByNumericID(ctx context.Context, id uint64) (*LoanApplication, error)
	// Row-locked read; only valid inside a transaction.
	GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*LoanApplication, error)
	// TransitionStatus applies cols only while the row is still in from
	// status (conditional update). Returns ErrStaleStatus when no row matched.
	TransitionStatus(ctx context.Context, id uint64, from Status, cols map[string]any) error
}
