package review

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("review not found")

type Type string

const (
	TypeOfficer  Type = "OFFICER_REVIEW"
	TypeApprover Type = "APPROVER_REVIEW"
)

// LoanReview is append-only: a new decision produces a new row, existing
// rows are never edited or deleted.
type LoanReview struct {
	ID       uint64 `gorm:"primaryKey;column:id" json:"-"`
	ReviewID string `gorm:"size:32;uniqueIndex:ux_reviews_review_id" json:"review_id"`
	// FK to loan_applications.id (numeric)
	ApplicationID uint64    `gorm:"not null;index:idx_reviews_application" json:"-"`
	ReviewerID    string    `gorm:"size:32;not null" json:"reviewer_id"`
	ReviewType    Type      `gorm:"type:enum('OFFICER_REVIEW','APPROVER_REVIEW');not null" json:"review_type"`
	Decision      string    `gorm:"type:enum('APPROVED','REJECTED','REQUEST_INFO');not null" json:"decision"`
	Comments      string    `gorm:"type:text" json:"comments"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (LoanReview) TableName() string { return "loan_reviews" }
