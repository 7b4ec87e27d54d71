// Package trailmock provides recording mocks for the notification and
// audit-log repositories, so tests can assert on the side-effect rows a
// workflow writes.
package trailmock

import (
	"context"

	auditDomain "lenddesk-backend/internal/domain/audit"
	notifDomain "lenddesk-backend/internal/domain/notification"
)

// NotifRepo records every created notification.
type NotifRepo struct {
	CreateFn func(ctx context.Context, n *notifDomain.Notification) error
	Created  []notifDomain.Notification
}

var _ notifDomain.Repository = (*NotifRepo)(nil)

func (m *NotifRepo) Create(ctx context.Context, n *notifDomain.Notification) error {
	if m.CreateFn != nil {
		if err := m.CreateFn(ctx, n); err != nil {
			return err
		}
	}
	m.Created = append(m.Created, *n)
	return nil
}

func (m *NotifRepo) ListByUserID(ctx context.Context, userID string, limit int) ([]notifDomain.Notification, error) {
	var out []notifDomain.Notification
	for _, n := range m.Created {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

// AuditRepo records every created audit row.
type AuditRepo struct {
	CreateFn func(ctx context.Context, l *auditDomain.AuditLog) error
	Created  []auditDomain.AuditLog
}

var _ auditDomain.Repository = (*AuditRepo)(nil)

func (m *AuditRepo) Create(ctx context.Context, l *auditDomain.AuditLog) error {
	if m.CreateFn != nil {
		if err := m.CreateFn(ctx, l); err != nil {
			return err
		}
	}
	m.Created = append(m.Created, *l)
	return nil
}

func (m *AuditRepo) ListByEntity(ctx context.Context, entityType, entityID string) ([]auditDomain.AuditLog, error) {
	var out []auditDomain.AuditLog
	for _, l := range m.Created {
		if l.EntityType == entityType && l.EntityID == entityID {
			out = append(out, l)
		}
	}
	return out, nil
}
