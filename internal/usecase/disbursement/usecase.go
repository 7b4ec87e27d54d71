package disbursement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lenddesk-backend/internal/domain/application"
	"lenddesk-backend/internal/domain/audit"
	"lenddesk-backend/internal/domain/notification"
	"lenddesk-backend/internal/domain/uow"
	ucReview "lenddesk-backend/internal/usecase/review"
	"lenddesk-backend/pkg/id"

	"gorm.io/gorm"
)

type DisburseInput struct {
	ApplicationID string
	Actor         application.Actor
	Meta          audit.RequestMeta
}

type DisburseResult struct {
	Application *ucReview.ApplicationDTO `json:"application"`
}

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// Disburse finalizes an APPROVED application: status moves to DISBURSED,
// disbursed_at is stamped, and an existing loan (if terms were already
// finalized) gets its disbursement date. A second call is rejected, never
// silently repeated.
func (u *Usecase) Disburse(ctx context.Context, in DisburseInput) (*DisburseResult, error) {
	switch in.Actor.Role {
	case application.RoleApprover, application.RoleAdmin:
	default:
		return nil, application.ErrRoleNotAllowed
	}

	var out *DisburseResult
	err := u.uow.WithinApplicationTx(ctx, in.ApplicationID, func(r uow.Repos, app *application.LoanApplication) error {
		switch app.Status {
		case application.StatusApproved:
		case application.StatusDisbursed:
			return application.ErrAlreadyDisbursed
		default:
			return application.ErrNotDisbursable
		}

		now := time.Now().UTC()
		if err := r.Applications.TransitionStatus(ctx, app.ID, application.StatusApproved, map[string]any{
			"status":            application.StatusDisbursed,
			"status_updated_at": now,
			"disbursed_at":      now,
		}); err != nil {
			if errors.Is(err, application.ErrStaleStatus) {
				return application.ErrNotDisbursable
			}
			return err
		}
		app.Status = application.StatusDisbursed
		app.StatusUpdatedAt = now
		app.DisbursedAt = &now

		amount := app.Amount
		l, err := r.Loans.GetByApplicationID(ctx, app.ID)
		switch {
		case err == nil:
			l.DisbursementDate = &now
			if err := r.Loans.Save(ctx, l); err != nil {
				return err
			}
			amount = l.DisbursementAmount
		case errors.Is(err, gorm.ErrRecordNotFound):
			// terms not finalized yet; application amount stands in
		default:
			return err
		}

		if err := r.Notifications.Create(ctx, &notification.Notification{
			NotificationID: id.New(),
			UserID:         app.ApplicantID,
			Type:           notification.TypeLoanDisbursed,
			Title:          "Loan disbursed",
			Message:        fmt.Sprintf("Your loan of %.2f has been disbursed.", amount),
			ApplicationID:  &app.ID,
		}); err != nil {
			return err
		}
		if err := r.Audits.Create(ctx, &audit.AuditLog{
			AuditID:    id.New(),
			ActorID:    in.Actor.ID,
			Action:     audit.ActionApplicationDisbursed,
			EntityType: audit.EntityApplication,
			EntityID:   app.ApplicationID,
			OldValues:  audit.StatusSnapshot(string(application.StatusApproved)),
			NewValues:  audit.StatusSnapshot(string(application.StatusDisbursed)),
			IPAddress:  in.Meta.IP,
			UserAgent:  in.Meta.UserAgent,
		}); err != nil {
			return err
		}

		out = &DisburseResult{Application: ucReview.ToApplicationDTO(app)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
