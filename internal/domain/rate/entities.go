package rate

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("rate tier not found")
	ErrNoActiveTier = errors.New("no active rate tier covers this duration")
)

// RateTier maps a loan duration range (months, inclusive) to an annual
// interest rate. Admin-managed; the loan-term step defaults the rate from
// the active tier matching the requested duration.
type RateTier struct {
	ID         uint64         `gorm:"primaryKey;column:id" json:"-"`
	TierID     string         `gorm:"size:32;uniqueIndex:ux_rate_tiers_tier_id" json:"tier_id"`
	Name       string         `gorm:"size:128;not null" json:"name"`
	MinMonths  int            `gorm:"not null" json:"min_months"`
	MaxMonths  int            `gorm:"not null" json:"max_months"`
	AnnualRate float64        `gorm:"type:decimal(6,4)" json:"annual_rate"`
	Active     bool           `gorm:"default:true" json:"active"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (RateTier) TableName() string { return "rate_tiers" }

func (t *RateTier) Covers(months int) bool {
	return t.Active && months >= t.MinMonths && months <= t.MaxMonths
}
