package notification

import (
	"context"

	"lenddesk-backend/internal/domain/application"
	notifDomain "lenddesk-backend/internal/domain/notification"
)

type Usecase struct{ repo notifDomain.Repository }

func NewUsecase(repo notifDomain.Repository) *Usecase { return &Usecase{repo: repo} }

// List returns the actor's own notifications, newest first.
func (u *Usecase) List(ctx context.Context, actor application.Actor, limit int) ([]notifDomain.Notification, error) {
	return u.repo.ListByUserID(ctx, actor.ID, limit)
}
