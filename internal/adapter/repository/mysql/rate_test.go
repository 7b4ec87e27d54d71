package mysql

import (
	"context"
	"errors"
	"testing"

	rateDomain "lenddesk-backend/internal/domain/rate"
	"lenddesk-backend/pkg/id"
)

func seedTier(t *testing.T, repo *RateRepository, name string, min, max int, rate float64, active bool) *rateDomain.RateTier {
	t.Helper()
	tier := &rateDomain.RateTier{
		TierID:     id.New(),
		Name:       name,
		MinMonths:  min,
		MaxMonths:  max,
		AnnualRate: rate,
		Active:     active,
	}
	if err := repo.Create(context.Background(), tier); err != nil {
		t.Fatalf("seed tier %s: %v", name, err)
	}
	return tier
}

func TestRateRepository_FindForDuration(t *testing.T) {
	repo := NewRateRepository(openTestDB(t))
	seedTier(t, repo, "catch-all", 1, 60, 0.22, true)
	seedTier(t, repo, "standard", 1, 24, 0.18, true)
	seedTier(t, repo, "promo", 6, 12, 0.10, false) // inactive, must be skipped

	// narrowest covering tier wins over the catch-all
	tier, err := repo.FindForDuration(context.Background(), 12)
	if err != nil {
		t.Fatalf("FindForDuration: %v", err)
	}
	if tier.Name != "standard" {
		t.Fatalf("tier = %s, want standard", tier.Name)
	}

	tier, err = repo.FindForDuration(context.Background(), 48)
	if err != nil || tier.Name != "catch-all" {
		t.Fatalf("tier = %v, err = %v, want catch-all", tier, err)
	}

	if _, err := repo.FindForDuration(context.Background(), 72); !errors.Is(err, rateDomain.ErrNoActiveTier) {
		t.Fatalf("want ErrNoActiveTier, got %v", err)
	}
}

func TestRateRepository_ListActive(t *testing.T) {
	repo := NewRateRepository(openTestDB(t))
	seedTier(t, repo, "long", 25, 60, 0.22, true)
	seedTier(t, repo, "short", 1, 24, 0.18, true)
	seedTier(t, repo, "retired", 1, 12, 0.30, false)

	tiers, err := repo.ListActive(context.Background())
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(tiers) != 2 || tiers[0].Name != "short" || tiers[1].Name != "long" {
		t.Fatalf("tiers = %+v", tiers)
	}
}
