package notification

import "time"

const (
	TypeApplicationSubmitted   = "APPLICATION_SUBMITTED"
	TypeApplicationUnderReview = "APPLICATION_UNDER_REVIEW"
	TypeApplicationApproved    = "APPLICATION_APPROVED"
	TypeApplicationRejected    = "APPLICATION_REJECTED"
	TypeInfoRequested          = "ADDITIONAL_INFO_REQUESTED"
	TypeLoanCreated            = "LOAN_CREATED"
	TypeLoanDisbursed          = "LOAN_DISBURSED"
)

// Notification rows are written as a side effect of workflow transitions
// and never mutated afterwards.
type Notification struct {
	ID             uint64 `gorm:"primaryKey;column:id" json:"-"`
	NotificationID string `gorm:"size:32;uniqueIndex:ux_notifications_notification_id" json:"notification_id"`
	UserID         string `gorm:"size:32;index:idx_notifications_user" json:"user_id"`
	Type           string `gorm:"size:64;not null" json:"type"`
	Title          string `gorm:"size:255;not null" json:"title"`
	Message        string `gorm:"type:text" json:"message"`
	// Back-reference to loan_applications.id, when the notification is about
	// a specific application.
	ApplicationID *uint64   `gorm:"index:idx_notifications_application" json:"-"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
