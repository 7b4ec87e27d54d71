package mysql

import (
	"context"

	auditDomain "lenddesk-backend/internal/domain/audit"

	"gorm.io/gorm"
)

type AuditRepository struct{ db *gorm.DB }

func NewAuditRepository(db *gorm.DB) *AuditRepository { return &AuditRepository{db: db} }

func (r *AuditRepository) Create(ctx context.Context, l *auditDomain.AuditLog) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *AuditRepository) ListByEntity(ctx context.Context, entityType, entityID string) ([]auditDomain.AuditLog, error) {
	var out []auditDomain.AuditLog
	res := r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("id DESC").
		Find(&out)
	return out, res.Error
}
