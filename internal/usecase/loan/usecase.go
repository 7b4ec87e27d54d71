package loan

import (
	"context"
	"errors"
	"fmt"

	"lenddesk-backend/internal/domain/application"
	"lenddesk-backend/internal/domain/audit"
	loanDomain "lenddesk-backend/internal/domain/loan"
	"lenddesk-backend/internal/domain/notification"
	"lenddesk-backend/internal/domain/uow"
	"lenddesk-backend/pkg/id"

	"gorm.io/gorm"
)

var ErrInvalidInput = errors.New("invalid loan input")

type Usecase struct {
	loanRepo loanDomain.Repository
	appRepo  application.Repository
	uow      uow.UnitOfWork
}

func NewUsecase(loans loanDomain.Repository, apps application.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{loanRepo: loans, appRepo: apps, uow: tx}
}

// Create finalizes loan terms for an APPROVED application. At most one loan
// per application; a second attempt is a conflict.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	switch in.Actor.Role {
	case application.RoleOfficer, application.RoleAdmin:
	default:
		return nil, application.ErrRoleNotAllowed
	}
	if in.ApprovedAmount <= 0 || in.DurationMonths <= 0 {
		return nil, ErrInvalidInput
	}

	var dto *LoanDTO
	err := u.uow.WithinApplicationTx(ctx, in.ApplicationID, func(r uow.Repos, app *application.LoanApplication) error {
		if app.Status != application.StatusApproved {
			return loanDomain.ErrApplicationNotApproved
		}

		_, err := r.Loans.GetByApplicationID(ctx, app.ID)
		switch {
		case err == nil:
			return loanDomain.ErrExists
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		rateValue := in.InterestRate
		if rateValue == 0 {
			tier, err := r.Rates.FindForDuration(ctx, in.DurationMonths)
			if err != nil {
				return err
			}
			rateValue = tier.AnnualRate
		}
		disburseAmount := in.DisbursementAmount
		if disburseAmount == 0 {
			disburseAmount = in.ApprovedAmount
		}
		payment := in.MonthlyPayment
		if payment == 0 {
			payment = MonthlyPayment(in.ApprovedAmount, rateValue, in.DurationMonths)
		}

		l := &loanDomain.Loan{
			LoanID:             id.New(),
			ApplicationID:      app.ID,
			ApprovedAmount:     in.ApprovedAmount,
			DisbursementAmount: disburseAmount,
			InterestRate:       rateValue,
			DurationMonths:     in.DurationMonths,
			MonthlyPayment:     payment,
			BankAccount:        in.BankAccount,
			BankName:           in.BankName,
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}

		if err := r.Notifications.Create(ctx, &notification.Notification{
			NotificationID: id.New(),
			UserID:         app.ApplicantID,
			Type:           notification.TypeLoanCreated,
			Title:          "Loan terms finalized",
			Message: fmt.Sprintf("Your loan terms are ready: %.2f over %d months at %.2f%% per year, %.2f per month.",
				l.ApprovedAmount, l.DurationMonths, l.InterestRate*100, l.MonthlyPayment),
			ApplicationID: &app.ID,
		}); err != nil {
			return err
		}
		if err := r.Audits.Create(ctx, &audit.AuditLog{
			AuditID:    id.New(),
			ActorID:    in.Actor.ID,
			Action:     audit.ActionLoanCreated,
			EntityType: audit.EntityLoan,
			EntityID:   l.LoanID,
			NewValues:  audit.Snapshot(l),
			IPAddress:  in.Meta.IP,
			UserAgent:  in.Meta.UserAgent,
		}); err != nil {
			return err
		}

		dto = toLoanDTO(l, app.ApplicationID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	l, err := u.loanRepo.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	publicAppID := ""
	if app, err := u.appRepo.GetByNumericID(ctx, l.ApplicationID); err == nil {
		publicAppID = app.ApplicationID
	}
	return toLoanDTO(l, publicAppID), nil
}
