package rate

import (
	"context"
	"errors"
	"strings"

	"lenddesk-backend/internal/domain/application"
	"lenddesk-backend/internal/domain/audit"
	rateDomain "lenddesk-backend/internal/domain/rate"
	"lenddesk-backend/internal/domain/uow"
	"lenddesk-backend/pkg/id"
)

var ErrInvalidInput = errors.New("invalid rate tier input")

type Usecase struct {
	repo rateDomain.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(repo rateDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: repo, uow: tx}
}

type UpsertInput struct {
	TierID     string // empty creates a new tier
	Name       string
	MinMonths  int
	MaxMonths  int
	AnnualRate float64
	Active     bool
	Actor      application.Actor
	Meta       audit.RequestMeta
}

// Upsert creates or updates an interest-rate tier. Admin only; every change
// leaves an audit row with before/after snapshots.
func (u *Usecase) Upsert(ctx context.Context, in UpsertInput) (*rateDomain.RateTier, error) {
	if in.Actor.Role != application.RoleAdmin {
		return nil, application.ErrRoleNotAllowed
	}
	if strings.TrimSpace(in.Name) == "" || in.MinMonths <= 0 || in.MaxMonths < in.MinMonths || in.AnnualRate < 0 {
		return nil, ErrInvalidInput
	}

	var out *rateDomain.RateTier
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var (
			tier   *rateDomain.RateTier
			action string
			oldVal []byte
		)
		if in.TierID == "" {
			tier = &rateDomain.RateTier{TierID: id.New()}
			action = audit.ActionRateTierCreated
		} else {
			existing, err := r.Rates.GetByTierID(ctx, in.TierID)
			if err != nil {
				return err
			}
			tier = existing
			action = audit.ActionRateTierUpdated
			oldVal = audit.Snapshot(existing)
		}

		tier.Name = strings.TrimSpace(in.Name)
		tier.MinMonths = in.MinMonths
		tier.MaxMonths = in.MaxMonths
		tier.AnnualRate = in.AnnualRate
		tier.Active = in.Active

		var err error
		if action == audit.ActionRateTierCreated {
			err = r.Rates.Create(ctx, tier)
		} else {
			err = r.Rates.Save(ctx, tier)
		}
		if err != nil {
			return err
		}

		if err := r.Audits.Create(ctx, &audit.AuditLog{
			AuditID:    id.New(),
			ActorID:    in.Actor.ID,
			Action:     action,
			EntityType: audit.EntityRateTier,
			EntityID:   tier.TierID,
			OldValues:  oldVal,
			NewValues:  audit.Snapshot(tier),
			IPAddress:  in.Meta.IP,
			UserAgent:  in.Meta.UserAgent,
		}); err != nil {
			return err
		}
		out = tier
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) ListActive(ctx context.Context) ([]rateDomain.RateTier, error) {
	return u.repo.ListActive(ctx)
}
