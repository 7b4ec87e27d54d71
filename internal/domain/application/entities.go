package application

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending       Status = "PENDING"
	StatusUnderReview   Status = "UNDER_REVIEW"
	StatusApproved      Status = "APPROVED"
	StatusRejected      Status = "REJECTED"
	StatusInfoRequested Status = "ADDITIONAL_INFO_REQUESTED"
	StatusDisbursed     Status = "DISBURSED"
)

type Role string

const (
	RoleApplicant Role = "APPLICANT"
	RoleOfficer   Role = "LOAN_OFFICER"
	RoleApprover  Role = "APPROVER"
	RoleAdmin     Role = "ADMIN"
)

type Decision string

const (
	DecisionApproved    Decision = "APPROVED"
	DecisionRejected    Decision = "REJECTED"
	DecisionRequestInfo Decision = "REQUEST_INFO"
)

var (
	ErrNotFound         = errors.New("application not found")
	ErrInvalidDecision  = errors.New("decision must be one of APPROVED, REJECTED, REQUEST_INFO")
	ErrNotReviewable    = errors.New("application not in reviewable state for this role")
	ErrNotDisbursable   = errors.New("application not in approved state")
	ErrAlreadyDisbursed = errors.New("application already disbursed")
	ErrNotOwner         = errors.New("application belongs to another applicant")
	ErrRoleNotAllowed   = errors.New("role not permitted for this operation")
	// Returned by the repository when a conditional status update matched no
	// row, i.e. a concurrent request changed the status first.
	ErrStaleStatus = errors.New("application status changed concurrently")
)

// Actor is the per-request authorization context resolved by the auth
// middleware and threaded into every workflow call.
type Actor struct {
	ID   string
	Role Role
}

func (a Actor) IsStaff() bool {
	return a.Role == RoleOfficer || a.Role == RoleApprover || a.Role == RoleAdmin
}

type transitionKey struct {
	From     Status
	Actor    Role
	Decision Decision
}

// transitions is the closed table of legal review transitions. Disbursement
// is not decision-driven and is handled separately.
var transitions = map[transitionKey]Status{
	{StatusPending, RoleOfficer, DecisionApproved}:         StatusUnderReview,
	{StatusPending, RoleOfficer, DecisionRejected}:         StatusRejected,
	{StatusPending, RoleOfficer, DecisionRequestInfo}:      StatusInfoRequested,
	{StatusUnderReview, RoleApprover, DecisionApproved}:    StatusApproved,
	{StatusUnderReview, RoleApprover, DecisionRejected}:    StatusRejected,
	{StatusUnderReview, RoleApprover, DecisionRequestInfo}: StatusInfoRequested,
}

// NextStatus resolves the outcome of a review decision. An unknown decision
// is a validation error; a known decision against the wrong (state, role)
// pair is a conflict, never coerced.
func NextStatus(from Status, actor Role, decision Decision) (Status, error) {
	switch decision {
	case DecisionApproved, DecisionRejected, DecisionRequestInfo:
	default:
		return "", ErrInvalidDecision
	}
	next, ok := transitions[transitionKey{From: from, Actor: actor, Decision: decision}]
	if !ok {
		return "", ErrNotReviewable
	}
	return next, nil
}

type LoanApplication struct {
	ID            uint64  `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID string  `gorm:"size:32;uniqueIndex:ux_applications_application_id" json:"application_id"`
	ApplicantID   string  `gorm:"size:32;index:idx_applications_applicant" json:"applicant_id"`
	Amount        float64 `gorm:"type:decimal(18,2)" json:"amount"`
	Purpose       string  `gorm:"type:text" json:"purpose"`
	Status        Status  `gorm:"type:enum('PENDING','UNDER_REVIEW','APPROVED','REJECTED','ADDITIONAL_INFO_REQUESTED','DISBURSED');default:'PENDING'" json:"status"`
	// Text of the most recent REQUEST_INFO decision; kept across resubmission.
	AdditionalInfoRequested *string        `gorm:"type:text" json:"additional_info_requested,omitempty"`
	ApprovedAt              *time.Time     `json:"approved_at,omitempty"`
	RejectedAt              *time.Time     `json:"rejected_at,omitempty"`
	DisbursedAt             *time.Time     `json:"disbursed_at,omitempty"`
	StatusUpdatedAt         time.Time      `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt               time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt               time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt               gorm.DeletedAt `gorm:"index" json:"-"`
}

func (LoanApplication) TableName() string { return "loan_applications" }
