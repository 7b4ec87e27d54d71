package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lenddesk-backend/internal/domain/application"
	"lenddesk-backend/internal/domain/audit"
	"lenddesk-backend/internal/domain/notification"
	reviewDomain "lenddesk-backend/internal/domain/review"
	"lenddesk-backend/internal/domain/uow"
	"lenddesk-backend/pkg/id"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

// Review records a reviewer's decision on an application and moves it to
// the next status. The review row, the status update, the applicant
// notification and the audit row are written in one transaction.
func (u *Usecase) Review(ctx context.Context, in ReviewInput) (*ReviewResult, error) {
	reviewType, err := reviewTypeFor(in.Actor.Role)
	if err != nil {
		return nil, err
	}

	var out *ReviewResult
	err = u.uow.WithinApplicationTx(ctx, in.ApplicationID, func(r uow.Repos, app *application.LoanApplication) error {
		from := app.Status
		next, err := application.NextStatus(from, in.Actor.Role, in.Decision)
		if err != nil {
			return err
		}

		rv := &reviewDomain.LoanReview{
			ReviewID:      id.New(),
			ApplicationID: app.ID,
			ReviewerID:    in.Actor.ID,
			ReviewType:    reviewType,
			Decision:      string(in.Decision),
			Comments:      in.Comments,
		}
		if err := r.Reviews.Create(ctx, rv); err != nil {
			return err
		}

		now := time.Now().UTC()
		cols := map[string]any{"status": next, "status_updated_at": now}
		switch next {
		case application.StatusApproved:
			cols["approved_at"] = now
			app.ApprovedAt = &now
		case application.StatusRejected:
			cols["rejected_at"] = now
			app.RejectedAt = &now
		case application.StatusInfoRequested:
			cols["additional_info_requested"] = in.Comments
			comments := in.Comments
			app.AdditionalInfoRequested = &comments
		}
		// The row is locked, but re-check the status in the UPDATE itself so
		// a lost update can never slip through.
		if err := r.Applications.TransitionStatus(ctx, app.ID, from, cols); err != nil {
			if errors.Is(err, application.ErrStaleStatus) {
				return application.ErrNotReviewable
			}
			return err
		}
		app.Status = next
		app.StatusUpdatedAt = now

		if err := r.Notifications.Create(ctx, outcomeNotification(app, in.Comments)); err != nil {
			return err
		}
		if err := r.Audits.Create(ctx, &audit.AuditLog{
			AuditID:    id.New(),
			ActorID:    in.Actor.ID,
			Action:     audit.ActionApplicationReviewed,
			EntityType: audit.EntityApplication,
			EntityID:   app.ApplicationID,
			OldValues:  audit.StatusSnapshot(string(from)),
			NewValues:  audit.StatusSnapshot(string(next)),
			IPAddress:  in.Meta.IP,
			UserAgent:  in.Meta.UserAgent,
		}); err != nil {
			return err
		}

		out = &ReviewResult{Application: ToApplicationDTO(app), Review: toReviewDTO(rv, app.ApplicationID)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func reviewTypeFor(role application.Role) (reviewDomain.Type, error) {
	switch role {
	case application.RoleOfficer:
		return reviewDomain.TypeOfficer, nil
	case application.RoleApprover:
		return reviewDomain.TypeApprover, nil
	default:
		return "", application.ErrRoleNotAllowed
	}
}

func outcomeNotification(app *application.LoanApplication, comments string) *notification.Notification {
	n := &notification.Notification{
		NotificationID: id.New(),
		UserID:         app.ApplicantID,
		ApplicationID:  &app.ID,
	}
	switch app.Status {
	case application.StatusUnderReview:
		n.Type = notification.TypeApplicationUnderReview
		n.Title = "Application under review"
		n.Message = "Your loan application passed the initial review and is awaiting final approval."
	case application.StatusApproved:
		n.Type = notification.TypeApplicationApproved
		n.Title = "Application approved"
		n.Message = fmt.Sprintf("Your loan application for %.2f has been approved.", app.Amount)
	case application.StatusRejected:
		n.Type = notification.TypeApplicationRejected
		n.Title = "Application rejected"
		n.Message = "Your loan application has been rejected."
		if comments != "" {
			n.Message += " Reason: " + comments
		}
	case application.StatusInfoRequested:
		n.Type = notification.TypeInfoRequested
		n.Title = "Additional information requested"
		n.Message = "A reviewer needs more information on your loan application."
		if comments != "" {
			n.Message += " Requested: " + comments
		}
	}
	return n
}
