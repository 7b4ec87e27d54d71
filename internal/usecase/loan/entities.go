package loan

import (
	"time"

	"lenddesk-backend/internal/domain/application"
	"lenddesk-backend/internal/domain/audit"
	loanDomain "lenddesk-backend/internal/domain/loan"
)

type CreateLoanInput struct {
	ApplicationID      string
	ApprovedAmount     float64
	DisbursementAmount float64 // defaults to ApprovedAmount
	InterestRate       float64 // annual; defaults from the matching rate tier
	DurationMonths     int
	MonthlyPayment     float64 // computed (annuity) when zero
	BankAccount        string
	BankName           string
	Actor              application.Actor
	Meta               audit.RequestMeta
}

type LoanDTO struct {
	LoanID             string     `json:"loan_id"`
	ApplicationID      string     `json:"application_id"`
	ApprovedAmount     float64    `json:"approved_amount"`
	DisbursementAmount float64    `json:"disbursement_amount"`
	InterestRate       float64    `json:"interest_rate"`
	DurationMonths     int        `json:"duration_months"`
	MonthlyPayment     float64    `json:"monthly_payment"`
	BankAccount        string     `json:"bank_account,omitempty"`
	BankName           string     `json:"bank_name,omitempty"`
	DisbursementDate   *time.Time `json:"disbursement_date,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

func toLoanDTO(l *loanDomain.Loan, publicAppID string) *LoanDTO {
	return &LoanDTO{
		LoanID:             l.LoanID,
		ApplicationID:      publicAppID,
		ApprovedAmount:     l.ApprovedAmount,
		DisbursementAmount: l.DisbursementAmount,
		InterestRate:       l.InterestRate,
		DurationMonths:     l.DurationMonths,
		MonthlyPayment:     l.MonthlyPayment,
		BankAccount:        l.BankAccount,
		BankName:           l.BankName,
		DisbursementDate:   l.DisbursementDate,
		CreatedAt:          l.CreatedAt,
	}
}
