package application

import (
	"context"
	"errors"
	"strings"
	"time"

	appDomain "lenddesk-backend/internal/domain/application"
	"lenddesk-backend/internal/domain/audit"
	"lenddesk-backend/internal/domain/notification"
	"lenddesk-backend/internal/domain/uow"
	ucReview "lenddesk-backend/internal/usecase/review"
	"lenddesk-backend/pkg/id"

	"gorm.io/gorm"
)

var ErrInvalidInput = errors.New("invalid application input")

type Usecase struct {
	repo appDomain.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(repo appDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: repo, uow: tx}
}

type CreateInput struct {
	Actor   appDomain.Actor
	Amount  float64
	Purpose string
	Meta    audit.RequestMeta
}

type SubmitInfoInput struct {
	ApplicationID string
	Actor         appDomain.Actor
	Info          string
	Meta          audit.RequestMeta
}

// Create is the intake step: a new application starts in PENDING.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*ucReview.ApplicationDTO, error) {
	if in.Amount <= 0 || strings.TrimSpace(in.Purpose) == "" {
		return nil, ErrInvalidInput
	}

	app := &appDomain.LoanApplication{
		ApplicationID: id.New(),
		ApplicantID:   in.Actor.ID,
		Amount:        in.Amount,
		Purpose:       strings.TrimSpace(in.Purpose),
		Status:        appDomain.StatusPending,
	}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Applications.Create(ctx, app); err != nil {
			return err
		}
		if err := r.Notifications.Create(ctx, &notification.Notification{
			NotificationID: id.New(),
			UserID:         app.ApplicantID,
			Type:           notification.TypeApplicationSubmitted,
			Title:          "Application received",
			Message:        "Your loan application has been received and is pending review.",
			ApplicationID:  &app.ID,
		}); err != nil {
			return err
		}
		return r.Audits.Create(ctx, &audit.AuditLog{
			AuditID:    id.New(),
			ActorID:    in.Actor.ID,
			Action:     audit.ActionApplicationCreated,
			EntityType: audit.EntityApplication,
			EntityID:   app.ApplicationID,
			NewValues:  audit.StatusSnapshot(string(appDomain.StatusPending)),
			IPAddress:  in.Meta.IP,
			UserAgent:  in.Meta.UserAgent,
		})
	})
	if err != nil {
		return nil, err
	}
	return ucReview.ToApplicationDTO(app), nil
}

// Get returns an application to its owner or to staff.
func (u *Usecase) Get(ctx context.Context, actor appDomain.Actor, applicationID string) (*ucReview.ApplicationDTO, error) {
	app, err := u.repo.GetByApplicationID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appDomain.ErrNotFound
		}
		return nil, err
	}
	if !actor.IsStaff() && app.ApplicantID != actor.ID {
		return nil, appDomain.ErrNotOwner
	}
	return ucReview.ToApplicationDTO(app), nil
}

// SubmitInfo lets the applicant answer an ADDITIONAL_INFO_REQUESTED
// decision; the application re-enters the officer queue as PENDING.
func (u *Usecase) SubmitInfo(ctx context.Context, in SubmitInfoInput) (*ucReview.ApplicationDTO, error) {
	if strings.TrimSpace(in.Info) == "" {
		return nil, ErrInvalidInput
	}

	var dto *ucReview.ApplicationDTO
	err := u.uow.WithinApplicationTx(ctx, in.ApplicationID, func(r uow.Repos, app *appDomain.LoanApplication) error {
		if app.ApplicantID != in.Actor.ID {
			return appDomain.ErrNotOwner
		}
		if app.Status != appDomain.StatusInfoRequested {
			return appDomain.ErrNotReviewable
		}
		// Purpose keeps the original text; the supplied info is appended so
		// reviewers see both.
		purpose := app.Purpose + "\n\n[additional info] " + strings.TrimSpace(in.Info)
		now := time.Now().UTC()
		if err := r.Applications.TransitionStatus(ctx, app.ID, appDomain.StatusInfoRequested, map[string]any{
			"status":            appDomain.StatusPending,
			"status_updated_at": now,
			"purpose":           purpose,
		}); err != nil {
			if errors.Is(err, appDomain.ErrStaleStatus) {
				return appDomain.ErrNotReviewable
			}
			return err
		}
		app.Purpose = purpose
		app.Status = appDomain.StatusPending
		app.StatusUpdatedAt = now

		if err := r.Audits.Create(ctx, &audit.AuditLog{
			AuditID:    id.New(),
			ActorID:    in.Actor.ID,
			Action:     audit.ActionInfoSubmitted,
			EntityType: audit.EntityApplication,
			EntityID:   app.ApplicationID,
			OldValues:  audit.StatusSnapshot(string(appDomain.StatusInfoRequested)),
			NewValues:  audit.StatusSnapshot(string(appDomain.StatusPending)),
			IPAddress:  in.Meta.IP,
			UserAgent:  in.Meta.UserAgent,
		}); err != nil {
			return err
		}
		dto = ucReview.ToApplicationDTO(app)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
