package mysql

import (
	"context"
	"errors"

	rateDomain "lenddesk-backend/internal/domain/rate"

	"gorm.io/gorm"
)

type RateRepository struct{ db *gorm.DB }

func NewRateRepository(db *gorm.DB) *RateRepository { return &RateRepository{db: db} }

func (r *RateRepository) Create(ctx context.Context, t *rateDomain.RateTier) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *RateRepository) Save(ctx context.Context, t *rateDomain.RateTier) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *RateRepository) GetByTierID(ctx context.Context, tierID string) (*rateDomain.RateTier, error) {
	var out rateDomain.RateTier
	res := r.db.WithContext(ctx).Where("tier_id = ?", tierID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, rateDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *RateRepository) ListActive(ctx context.Context) ([]rateDomain.RateTier, error) {
	var out []rateDomain.RateTier
	res := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("min_months ASC").
		Find(&out)
	return out, res.Error
}

func (r *RateRepository) FindForDuration(ctx context.Context, months int) (*rateDomain.RateTier, error) {
	var out rateDomain.RateTier
	res := r.db.WithContext(ctx).
		Where("active = ? AND min_months <= ? AND max_months >= ?", true, months, months).
		Order("(max_months - min_months) ASC").
		First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, rateDomain.ErrNoActiveTier
	}
	return &out, res.Error
}
