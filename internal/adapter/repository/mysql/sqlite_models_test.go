package mysql

import (
	"encoding/json"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM) ---

type applicationSQLite struct {
	ID                      uint64         `gorm:"primaryKey;column:id"`
	ApplicationID           string         `gorm:"size:32;column:application_id"`
	ApplicantID             string         `gorm:"size:32;column:applicant_id"`
	Amount                  float64        `gorm:"column:amount"`
	Purpose                 string         `gorm:"column:purpose"`
	Status                  string         `gorm:"type:text;column:status"` // ← no enum
	AdditionalInfoRequested *string        `gorm:"column:additional_info_requested"`
	ApprovedAt              *time.Time     `gorm:"column:approved_at"`
	RejectedAt              *time.Time     `gorm:"column:rejected_at"`
	DisbursedAt             *time.Time     `gorm:"column:disbursed_at"`
	StatusUpdatedAt         time.Time      `gorm:"column:status_updated_at"`
	CreatedAt               time.Time      `gorm:"column:created_at"`
	UpdatedAt               time.Time      `gorm:"column:updated_at"`
	DeletedAt               gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (applicationSQLite) TableName() string { return "loan_applications" }

type reviewSQLite struct {
	ID            uint64    `gorm:"primaryKey;column:id"`
	ReviewID      string    `gorm:"size:32;column:review_id"`
	ApplicationID uint64    `gorm:"column:application_id"`
	ReviewerID    string    `gorm:"size:32;column:reviewer_id"`
	ReviewType    string    `gorm:"type:text;column:review_type"` // ← no enum
	Decision      string    `gorm:"type:text;column:decision"`
	Comments      string    `gorm:"column:comments"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (reviewSQLite) TableName() string { return "loan_reviews" }

type loanSQLite struct {
	ID                 uint64         `gorm:"primaryKey;column:id"`
	LoanID             string         `gorm:"size:32;column:loan_id"`
	ApplicationID      uint64         `gorm:"column:application_id"`
	ApprovedAmount     float64        `gorm:"column:approved_amount"`
	DisbursementAmount float64        `gorm:"column:disbursement_amount"`
	InterestRate       float64        `gorm:"column:interest_rate"`
	DurationMonths     int            `gorm:"column:duration_months"`
	MonthlyPayment     float64        `gorm:"column:monthly_payment"`
	BankAccount        string         `gorm:"column:bank_account"`
	BankName           string         `gorm:"column:bank_name"`
	DisbursementDate   *time.Time     `gorm:"column:disbursement_date"`
	CreatedAt          time.Time      `gorm:"column:created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type notificationSQLite struct {
	ID             uint64    `gorm:"primaryKey;column:id"`
	NotificationID string    `gorm:"size:32;column:notification_id"`
	UserID         string    `gorm:"size:32;column:user_id"`
	Type           string    `gorm:"column:type"`
	Title          string    `gorm:"column:title"`
	Message        string    `gorm:"column:message"`
	ApplicationID  *uint64   `gorm:"column:application_id"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (notificationSQLite) TableName() string { return "notifications" }

type auditSQLite struct {
	ID         uint64          `gorm:"primaryKey;column:id"`
	AuditID    string          `gorm:"size:32;column:audit_id"`
	ActorID    string          `gorm:"size:32;column:actor_id"`
	Action     string          `gorm:"column:action"`
	EntityType string          `gorm:"column:entity_type"`
	EntityID   string          `gorm:"column:entity_id"`
	OldValues  json.RawMessage `gorm:"type:text;column:old_values"`
	NewValues  json.RawMessage `gorm:"type:text;column:new_values"`
	IPAddress  string          `gorm:"column:ip_address"`
	UserAgent  string          `gorm:"column:user_agent"`
	CreatedAt  time.Time       `gorm:"column:created_at"`
}

func (auditSQLite) TableName() string { return "audit_logs" }

type rateTierSQLite struct {
	ID         uint64         `gorm:"primaryKey;column:id"`
	TierID     string         `gorm:"size:32;column:tier_id"`
	Name       string         `gorm:"column:name"`
	MinMonths  int            `gorm:"column:min_months"`
	MaxMonths  int            `gorm:"column:max_months"`
	AnnualRate float64        `gorm:"column:annual_rate"`
	Active     bool           `gorm:"column:active"`
	CreatedAt  time.Time      `gorm:"column:created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (rateTierSQLite) TableName() string { return "rate_tiers" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas, NOT the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&applicationSQLite{},
		&reviewSQLite{},
		&loanSQLite{},
		&notificationSQLite{},
		&auditSQLite{},
		&rateTierSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
