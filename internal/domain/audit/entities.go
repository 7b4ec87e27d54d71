package audit

import (
	"encoding/json"
	"time"
)

const (
	ActionApplicationCreated   = "APPLICATION_CREATED"
	ActionApplicationReviewed  = "APPLICATION_REVIEWED"
	ActionApplicationDisbursed = "APPLICATION_DISBURSED"
	ActionInfoSubmitted        = "APPLICATION_INFO_SUBMITTED"
	ActionLoanCreated          = "LOAN_CREATED"
	ActionRateTierCreated      = "RATE_TIER_CREATED"
	ActionRateTierUpdated      = "RATE_TIER_UPDATED"
)

const (
	EntityApplication = "loan_application"
	EntityLoan        = "loan"
	EntityRateTier    = "rate_tier"
)

// AuditLog is append-only; one row per mutating action.
type AuditLog struct {
	ID         uint64          `gorm:"primaryKey;column:id" json:"-"`
	AuditID    string          `gorm:"size:32;uniqueIndex:ux_audit_logs_audit_id" json:"audit_id"`
	ActorID    string          `gorm:"size:32;index:idx_audit_logs_actor" json:"actor_id"`
	Action     string          `gorm:"size:64;not null" json:"action"`
	EntityType string          `gorm:"size:64;not null;index:idx_audit_logs_entity" json:"entity_type"`
	EntityID   string          `gorm:"size:64;not null;index:idx_audit_logs_entity" json:"entity_id"`
	OldValues  json.RawMessage `gorm:"type:json" json:"old_values,omitempty"`
	NewValues  json.RawMessage `gorm:"type:json" json:"new_values,omitempty"`
	IPAddress  string          `gorm:"size:64" json:"ip_address"`
	UserAgent  string          `gorm:"size:255" json:"user_agent"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (AuditLog) TableName() string { return "audit_logs" }

// RequestMeta carries requester fingerprints into audit rows.
type RequestMeta struct {
	IP        string
	UserAgent string
}

// NewRequestMeta substitutes "unknown" for absent fields so audit rows are
// never blank on those columns.
func NewRequestMeta(ip, userAgent string) RequestMeta {
	if ip == "" {
		ip = "unknown"
	}
	if userAgent == "" {
		userAgent = "unknown"
	}
	return RequestMeta{IP: ip, UserAgent: userAgent}
}

// StatusSnapshot serializes a {"status": ...} snapshot for old/new values.
func StatusSnapshot(status string) json.RawMessage {
	b, _ := json.Marshal(map[string]string{"status": status})
	return b
}

// Snapshot serializes an arbitrary value, for audit rows covering more than
// a status change. Marshal failures degrade to null rather than failing the
// calling transaction.
func Snapshot(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage("null")
	}
	return b
}
