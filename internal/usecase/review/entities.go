package review

import (
	"time"

	"lenddesk-backend/internal/domain/application"
	"lenddesk-backend/internal/domain/audit"
	reviewDomain "lenddesk-backend/internal/domain/review"
)

type ReviewInput struct {
	ApplicationID string
	Actor         application.Actor
	Decision      application.Decision
	Comments      string
	Meta          audit.RequestMeta
}

type ApplicationDTO struct {
	ApplicationID           string     `json:"application_id"`
	ApplicantID             string     `json:"applicant_id"`
	Amount                  float64    `json:"amount"`
	Purpose                 string     `json:"purpose"`
	Status                  string     `json:"status"`
	AdditionalInfoRequested *string    `json:"additional_info_requested,omitempty"`
	ApprovedAt              *time.Time `json:"approved_at,omitempty"`
	RejectedAt              *time.Time `json:"rejected_at,omitempty"`
	DisbursedAt             *time.Time `json:"disbursed_at,omitempty"`
	CreatedAt               time.Time  `json:"created_at"`
}

type ReviewDTO struct {
	ReviewID      string    `json:"review_id"`
	ApplicationID string    `json:"application_id"`
	ReviewerID    string    `json:"reviewer_id"`
	ReviewType    string    `json:"review_type"`
	Decision      string    `json:"decision"`
	Comments      string    `json:"comments,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type ReviewResult struct {
	Application *ApplicationDTO `json:"application"`
	Review      *ReviewDTO      `json:"review"`
}

func ToApplicationDTO(a *application.LoanApplication) *ApplicationDTO {
	return &ApplicationDTO{
		ApplicationID:           a.ApplicationID,
		ApplicantID:             a.ApplicantID,
		Amount:                  a.Amount,
		Purpose:                 a.Purpose,
		Status:                  string(a.Status),
		AdditionalInfoRequested: a.AdditionalInfoRequested,
		ApprovedAt:              a.ApprovedAt,
		RejectedAt:              a.RejectedAt,
		DisbursedAt:             a.DisbursedAt,
		CreatedAt:               a.CreatedAt,
	}
}

func toReviewDTO(rv *reviewDomain.LoanReview, publicAppID string) *ReviewDTO {
	return &ReviewDTO{
		ReviewID:      rv.ReviewID,
		ApplicationID: publicAppID,
		ReviewerID:    rv.ReviewerID,
		ReviewType:    string(rv.ReviewType),
		Decision:      rv.Decision,
		Comments:      rv.Comments,
		CreatedAt:     rv.CreatedAt,
	}
}
