package mysql

import (
	"context"

	reviewDomain "lenddesk-backend/internal/domain/review"

	"gorm.io/gorm"
)

type ReviewRepository struct{ db *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository { return &ReviewRepository{db: db} }

func (r *ReviewRepository) Create(ctx context.Context, rv *reviewDomain.LoanReview) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *ReviewRepository) ListByApplicationID(ctx context.Context, applicationNumericID uint64) ([]reviewDomain.LoanReview, error) {
	var out []reviewDomain.LoanReview
	res := r.db.WithContext(ctx).
		Where("application_id = ?", applicationNumericID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
