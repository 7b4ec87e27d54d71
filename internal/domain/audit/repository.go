package audit

import "context"

type Repository interface {
	Create(ctx context.Context, l *AuditLog) error
	// Newest first.
	ListByEntity(ctx context.Context, entityType, entityID string) ([]AuditLog, error)
}
