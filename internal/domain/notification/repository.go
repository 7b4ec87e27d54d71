package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	// Newest first.
	ListByUserID(ctx context.Context, userID string, limit int) ([]Notification, error)
}
