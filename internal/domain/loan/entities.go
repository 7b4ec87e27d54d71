package loan

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound               = errors.New("loan not found")
	ErrExists                 = errors.New("loan already exists for this application")
	ErrApplicationNotApproved = errors.New("application is not approved")
)

// Loan holds the finalized terms of an approved application. At most one
// loan per application, enforced by the unique index on application_id.
type Loan struct {
	ID     uint64 `gorm:"primaryKey;column:id" json:"-"`
	LoanID string `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	// FK to loan_applications.id (numeric)
	ApplicationID      uint64         `gorm:"not null;uniqueIndex:ux_loans_application" json:"-"`
	ApprovedAmount     float64        `gorm:"type:decimal(18,2)" json:"approved_amount"`
	DisbursementAmount float64        `gorm:"type:decimal(18,2)" json:"disbursement_amount"`
	InterestRate       float64        `gorm:"type:decimal(6,4)" json:"interest_rate"`
	DurationMonths     int            `gorm:"not null" json:"duration_months"`
	MonthlyPayment     float64        `gorm:"type:decimal(18,2)" json:"monthly_payment"`
	BankAccount        string         `gorm:"size:64" json:"bank_account,omitempty"`
	BankName           string         `gorm:"size:128" json:"bank_name,omitempty"`
	DisbursementDate   *time.Time     `json:"disbursement_date,omitempty"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }
