package uow

import (
	"context"

	"lenddesk-backend/internal/domain/application"
	"lenddesk-backend/internal/domain/audit"
	"lenddesk-backend/internal/domain/loan"
	"lenddesk-backend/internal/domain/notification"
	"lenddesk-backend/internal/domain/rate"
	"lenddesk-backend/internal/domain/review"
)

type Repos struct {
	Applications  application.Repository
	Reviews       review.Repository
	Loans         loan.Repository
	Notifications notification.Repository
	Audits        audit.Repository
	Rates         rate.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the application row first, then pass it in
	WithinApplicationTx(ctx context.Context, applicationID string, fn func(r Repos, app *application.LoanApplication) error) error
}
